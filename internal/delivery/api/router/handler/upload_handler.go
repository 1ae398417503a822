package handler

import (
	"log/slog"
	"net/http"

	"boral/internal/delivery/api/response"
	"boral/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	UploadUC usecase.UploadUsecase
	Logger   *slog.Logger
}

// UploadHandler holds dependencies for the image upload handler
type UploadHandler struct {
	uploadUC usecase.UploadUsecase
	logger   *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{
		uploadUC: params.UploadUC,
		logger:   params.Logger,
	}
}

// UploadImage encodes the uploaded image as a data URL
func (h *UploadHandler) UploadImage(c echo.Context) error {
	file, err := readUploadedFile(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_FILE", "A file field is required")
	}

	imageURL, err := h.uploadUC.EncodeImage(c.Request().Context(), file)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"image_url": imageURL})
}
