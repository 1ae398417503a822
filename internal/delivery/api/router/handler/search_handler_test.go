package handler

import (
	"net/http"
	"testing"

	"boral/internal/domain/entity"
	mockUsecase "boral/internal/mocks/usecase"
	"boral/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSearchHandler_Search(t *testing.T) {
	t.Run("scope products", func(t *testing.T) {
		searchUC := mockUsecase.NewMockSearchUsecase(t)
		h := NewSearchHandler(SearchHandlerParams{SearchUC: searchUC})
		searchUC.EXPECT().Search(mock.Anything, "tea", entity.SearchScopeProducts).
			Return(&usecase.SearchResult{
				Stores:   []*entity.Store{},
				Services: []*entity.Service{},
				Products: []*entity.Product{{ID: "p1", Name: "Green tea"}},
			}, nil).
			Once()

		c, rec := newContext(http.MethodGet, "/api/search?q=tea&scope=products", "", nil)
		require.NoError(t, h.Search(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var out usecase.SearchResult
		decodeData(t, rec, &out)
		assert.Empty(t, out.Stores)
		require.Len(t, out.Products, 1)
		assert.Equal(t, "p1", out.Products[0].ID)
	})

	t.Run("missing query", func(t *testing.T) {
		h := NewSearchHandler(SearchHandlerParams{SearchUC: mockUsecase.NewMockSearchUsecase(t)})

		c, rec := newContext(http.MethodGet, "/api/search?q=%20", "", nil)
		require.NoError(t, h.Search(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "required", decodeEnvelope(t, rec).Error.Details["q"])
	})

	t.Run("unknown scope", func(t *testing.T) {
		h := NewSearchHandler(SearchHandlerParams{SearchUC: mockUsecase.NewMockSearchUsecase(t)})

		c, rec := newContext(http.MethodGet, "/api/search?q=tea&scope=people", "", nil)
		require.NoError(t, h.Search(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_SEARCH_SCOPE", decodeEnvelope(t, rec).Error.Code)
	})
}
