package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"boral/internal/delivery/api/response"
	"boral/internal/domain/entity"
	domainerrors "boral/internal/domain/errors"
	"boral/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
	Logger   *slog.Logger
}

// SearchHandler holds dependencies for the search handler
type SearchHandler struct {
	searchUC usecase.SearchUsecase
	logger   *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{
		searchUC: params.SearchUC,
		logger:   params.Logger,
	}
}

// Search matches q against the collections selected by scope
func (h *SearchHandler) Search(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	if query == "" {
		return response.Error(c, http.StatusBadRequest, domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(), map[string]string{"q": "required"})
	}

	scope, err := entity.ParseSearchScope(c.QueryParam("scope"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidSearchScope.WrapMessage(err.Error()))
	}

	result, err := h.searchUC.Search(c.Request().Context(), query, scope)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
