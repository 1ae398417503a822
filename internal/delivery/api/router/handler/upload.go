package handler

import (
	"io"

	"boral/internal/errors"
	"boral/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	uploadFormField    = "file"
	defaultContentType = "image/jpeg"
)

// readUploadedFile reads the multipart "file" field into memory.
func readUploadedFile(c echo.Context) (*usecase.UploadedFile, error) {
	header, err := c.FormFile(uploadFormField)
	if err != nil {
		return nil, errors.Wrap(err, "missing upload field")
	}

	src, err := header.Open()
	if err != nil {
		return nil, errors.Wrap(err, "open upload")
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return nil, errors.Wrap(err, "read upload")
	}

	contentType := header.Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = defaultContentType
	}

	return &usecase.UploadedFile{ContentType: contentType, Content: content}, nil
}
