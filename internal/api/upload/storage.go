package upload

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
	"path/filepath"
	"strings"

	"docuchat/config"
	"docuchat/internal/core/docprep"
	s3client "docuchat/pkg/s3"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// storeFile writes one uploaded file to the configured backend while hashing
// it, and returns the stored path plus the content hash.
func storeFile(f docprep.File) (string, string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", "", fmt.Errorf("open %s: %w", f.Name(), err)
	}
	defer rc.Close()

	hasher := sha256.New()
	tee := io.TeeReader(rc, hasher)

	if strings.TrimSpace(config.Cfg.S3.Bucket) != "" {
		return storeToS3(tee, f, hasher)
	}
	return storeToLocal(tee, f, hasher)
}

func storeToLocal(r io.Reader, f docprep.File, hasher hash.Hash) (string, string, error) {
	baseDir := filepath.Join("storage", "documents")
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create storage dir: %w", err)
	}

	tmpFile, err := os.CreateTemp(baseDir, "upload-*.tmp")
	if err != nil {
		return "", "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		tmpFile.Close()
		_ = os.Remove(tmpFile.Name())
	}()

	if _, err := io.Copy(tmpFile, r); err != nil {
		return "", "", fmt.Errorf("failed to write file: %w", err)
	}

	shaHex := hex.EncodeToString(hasher.Sum(nil))
	ext := strings.ToLower(filepath.Ext(f.Name()))
	finalPath := filepath.Join(baseDir, shaHex+ext)

	if err := os.Rename(tmpFile.Name(), finalPath); err != nil {
		return "", "", fmt.Errorf("failed to finalize file: %w", err)
	}
	return finalPath, shaHex, nil
}

func storeToS3(r io.Reader, f docprep.File, hasher hash.Hash) (string, string, error) {
	client, err := s3client.GetClient()
	if err != nil {
		return "", "", fmt.Errorf("s3 client: %w", err)
	}

	bucket := config.Cfg.S3.Bucket
	ctx := context.Background()
	if _, err := client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)}); err != nil {
		_, crtErr := client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(bucket)})
		if crtErr != nil {
			var bErr *s3types.BucketAlreadyOwnedByYou
			if !errors.As(crtErr, &bErr) {
				return "", "", fmt.Errorf("create bucket: %w", crtErr)
			}
		}
	}

	// Body is needed twice (hash + upload); buffer to a temp file while hashing.
	tmp, err := os.CreateTemp("", "s3-upload-*.tmp")
	if err != nil {
		return "", "", fmt.Errorf("tempfile: %w", err)
	}
	defer func() {
		tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	if _, err := io.Copy(tmp, r); err != nil {
		return "", "", fmt.Errorf("stream copy: %w", err)
	}

	shaHex := hex.EncodeToString(hasher.Sum(nil))
	ext := strings.ToLower(filepath.Ext(f.Name()))
	key := fmt.Sprintf("documents/%s%s", shaHex, ext)

	if _, err := tmp.Seek(0, 0); err != nil {
		return "", "", fmt.Errorf("seek: %w", err)
	}
	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        tmp,
		ContentType: aws.String(f.ContentType()),
	})
	if err != nil {
		return "", "", fmt.Errorf("put object: %w", err)
	}

	return fmt.Sprintf("s3://%s/%s", bucket, key), shaHex, nil
}
