package impl

import (
	"context"
	"log/slog"

	deliverycontext "boral/internal/delivery/context"
	"boral/internal/usecase"
	"boral/internal/util"
)

type uploadService struct {
	logger *slog.Logger
}

// NewUploadService creates a new upload service instance
func NewUploadService(logger *slog.Logger) usecase.UploadUsecase {
	return &uploadService{logger: logger}
}

// EncodeImage returns the upload as a data URL. File type and size are not checked.
func (s *uploadService) EncodeImage(ctx context.Context, file *usecase.UploadedFile) (string, error) {
	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Encoding uploaded image",
		slog.String("contentType", file.ContentType),
		slog.String("size", util.FormatBytes(int64(len(file.Content)))),
	)

	return util.DataURL(file.ContentType, file.Content), nil
}
