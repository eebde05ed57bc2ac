package healthcheck

import (
	"context"
	"time"

	"docuchat/config"
	"docuchat/internal/database"
	"docuchat/pkg/apperror"
	s3client "docuchat/pkg/s3"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v3"
)

func ApiHealthCheck(c fiber.Ctx) error {
	return c.SendString("ok")
}

func DatabaseHealthCheck(c fiber.Ctx) error {
	db, err := database.GetDB()
	if err != nil {
		return apperror.InternalError(config.ModuleDatabase, c, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return apperror.InternalError(config.ModuleDatabase, c, err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return apperror.InternalError(config.ModuleDatabase, c, err)
	}
	return c.SendString("ok")
}

func StorageHealthCheck(c fiber.Ctx) error {
	cli, err := s3client.GetClient()
	if err != nil {
		return apperror.InternalError(config.ModuleS3, c, err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := cli.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(config.Cfg.S3.Bucket),
	}); err != nil {
		return apperror.InternalError(config.ModuleS3, c, err)
	}
	return c.SendString("ok")
}
