package usecase

import "context"

// UploadedFile is the content of a multipart upload.
type UploadedFile struct {
	ContentType string
	Content     []byte
}

// UploadUsecase turns uploaded images into inline data URLs.
type UploadUsecase interface {
	EncodeImage(ctx context.Context, file *UploadedFile) (string, error)
}
