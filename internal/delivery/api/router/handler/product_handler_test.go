package handler

import (
	"net/http"
	"testing"

	"boral/internal/domain/entity"
	domainerrors "boral/internal/domain/errors"
	mockUsecase "boral/internal/mocks/usecase"
	"boral/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductHandler(t *testing.T) (*ProductHandler, *mockUsecase.MockProductUsecase) {
	productUC := mockUsecase.NewMockProductUsecase(t)

	return NewProductHandler(ProductHandlerParams{ProductUC: productUC}), productUC
}

func TestProductHandler_LikeProduct(t *testing.T) {
	h, productUC := newProductHandler(t)
	productUC.EXPECT().LikeProduct(mock.Anything, "alice", "p1").
		Return(&entity.Product{ID: "p1", Likes: 1, LikedBy: []string{"alice"}}, nil).
		Once()

	c, rec := newContext(http.MethodPost, "/api/products/p1/like", "", testUser("alice"))
	require.NoError(t, h.LikeProduct(withParam(c, "id", "p1")))

	assert.Equal(t, http.StatusOK, rec.Code)
	var out LikeResponse
	decodeData(t, rec, &out)
	assert.Equal(t, 1, out.Likes)
	assert.Equal(t, "Product liked", out.Message)
}

func TestProductHandler_UnlikeProduct_NotLiked(t *testing.T) {
	h, productUC := newProductHandler(t)
	productUC.EXPECT().UnlikeProduct(mock.Anything, "alice", "p1").
		Return(nil, domainerrors.ErrNotLiked).
		Once()

	c, rec := newContext(http.MethodDelete, "/api/products/p1/like", "", testUser("alice"))
	require.NoError(t, h.UnlikeProduct(withParam(c, "id", "p1")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "NOT_LIKED", decodeEnvelope(t, rec).Error.Code)
}

func TestProductHandler_LikeProduct_Unauthenticated(t *testing.T) {
	h, _ := newProductHandler(t)

	c, rec := newContext(http.MethodPost, "/api/products/p1/like", "", nil)
	require.NoError(t, h.LikeProduct(withParam(c, "id", "p1")))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProductHandler_UpdateProduct_Partial(t *testing.T) {
	h, productUC := newProductHandler(t)
	productUC.EXPECT().
		UpdateProduct(mock.Anything, "owner", "p1", mock.MatchedBy(func(u *usecase.ProductUpdate) bool {
			return u.Price != nil && *u.Price == 12.5 &&
				u.Name == nil && u.Description == nil && u.Images == nil && u.Stock == nil && u.Category == nil
		})).
		Return(&entity.Product{ID: "p1", Name: "Tea", Price: 12.5}, nil).
		Once()

	c, rec := newContext(http.MethodPut, "/api/products/p1", `{"price":12.5}`, testUser("owner"))
	require.NoError(t, h.UpdateProduct(withParam(c, "id", "p1")))

	assert.Equal(t, http.StatusOK, rec.Code)
	var out entity.Product
	decodeData(t, rec, &out)
	assert.Equal(t, "Tea", out.Name)
}

func TestProductHandler_UpdateProduct_NegativePrice(t *testing.T) {
	h, _ := newProductHandler(t)

	c, rec := newContext(http.MethodPut, "/api/products/p1", `{"price":-1}`, testUser("owner"))
	require.NoError(t, h.UpdateProduct(withParam(c, "id", "p1")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "gte=0", decodeEnvelope(t, rec).Error.Details["price"])
}

func TestProductHandler_CreateProduct_Forbidden(t *testing.T) {
	h, productUC := newProductHandler(t)
	productUC.EXPECT().
		CreateProduct(mock.Anything, "intruder", "s1", &usecase.ProductInput{
			Name:     "Tea",
			Price:    3,
			Stock:    10,
			Category: "drinks",
		}).
		Return(nil, domainerrors.ErrNotStoreOwner).
		Once()

	body := `{"name":"Tea","price":3,"stock":10,"category":"drinks"}`
	c, rec := newContext(http.MethodPost, "/api/stores/s1/products", body, testUser("intruder"))
	require.NoError(t, h.CreateProduct(withParam(c, "id", "s1")))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "NOT_STORE_OWNER", decodeEnvelope(t, rec).Error.Code)
}
