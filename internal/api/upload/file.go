package upload

import (
	"io"
	"mime/multipart"

	"docuchat/internal/core/docprep"
)

// multipartFile adapts *multipart.FileHeader to the pipeline's File
// abstraction.
type multipartFile struct {
	fh *multipart.FileHeader
}

func (m multipartFile) Name() string        { return m.fh.Filename }
func (m multipartFile) ContentType() string { return m.fh.Header.Get("Content-Type") }
func (m multipartFile) Size() int64         { return m.fh.Size }
func (m multipartFile) Open() (io.ReadCloser, error) {
	f, err := m.fh.Open()
	if err != nil {
		return nil, err
	}
	return f, nil
}

func adaptFiles(headers []*multipart.FileHeader) []docprep.File {
	files := make([]docprep.File, 0, len(headers))
	for _, fh := range headers {
		files = append(files, multipartFile{fh: fh})
	}
	return files
}
