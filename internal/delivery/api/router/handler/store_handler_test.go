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

func newStoreHandler(t *testing.T) (*StoreHandler, *mockUsecase.MockStoreUsecase) {
	storeUC := mockUsecase.NewMockStoreUsecase(t)

	return NewStoreHandler(StoreHandlerParams{StoreUC: storeUC}), storeUC
}

func TestStoreHandler_ListStores_PassesFilters(t *testing.T) {
	h, storeUC := newStoreHandler(t)
	storeUC.EXPECT().
		ListStores(mock.Anything, usecase.ListStoresInput{Category: "cafe", Search: "bean"}).
		Return([]*entity.Store{{ID: "s1", Name: "Bean There"}}, nil).
		Once()

	c, rec := newContext(http.MethodGet, "/api/stores?category=cafe&search=bean", "", nil)
	require.NoError(t, h.ListStores(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var out []*entity.Store
	decodeData(t, rec, &out)
	require.Len(t, out, 1)
	assert.Equal(t, "Bean There", out[0].Name)
}

func TestStoreHandler_NearbyStores(t *testing.T) {
	t.Run("binds coordinates and radius", func(t *testing.T) {
		h, storeUC := newStoreHandler(t)
		storeUC.EXPECT().
			NearbyStores(mock.Anything, usecase.NearbyStoresInput{Latitude: 24.7, Longitude: 46.6, RadiusKm: 3}).
			Return([]*entity.NearbyStore{{Store: &entity.Store{ID: "s1"}, DistanceKm: 1.2}}, nil).
			Once()

		c, rec := newContext(http.MethodGet, "/api/stores/nearby?lat=24.7&lng=46.6&radius_km=3", "", nil)
		require.NoError(t, h.NearbyStores(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"distance_km":1.2`)
	})

	t.Run("missing lng", func(t *testing.T) {
		h, _ := newStoreHandler(t)

		c, rec := newContext(http.MethodGet, "/api/stores/nearby?lat=24.7", "", nil)
		require.NoError(t, h.NearbyStores(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("latitude out of range", func(t *testing.T) {
		h, _ := newStoreHandler(t)

		c, rec := newContext(http.MethodGet, "/api/stores/nearby?lat=95&lng=46.6", "", nil)
		require.NoError(t, h.NearbyStores(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "lte=90", decodeEnvelope(t, rec).Error.Details["lat"])
	})
}

func TestStoreHandler_StoreQRCode(t *testing.T) {
	h, storeUC := newStoreHandler(t)
	png := []byte{0x89, 'P', 'N', 'G'}
	storeUC.EXPECT().StoreQRCode(mock.Anything, "s1").Return(png, nil).Once()

	c, rec := newContext(http.MethodGet, "/api/stores/s1/qrcode", "", nil)
	require.NoError(t, h.StoreQRCode(withParam(c, "id", "s1")))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestStoreHandler_UpdateStore(t *testing.T) {
	body := `{"name":"Bean There","description":"coffee","category":"cafe","address":"Main St",` +
		`"latitude":24.7,"longitude":46.6,"email":"hi@bean.example"}`

	t.Run("non-owner is forbidden", func(t *testing.T) {
		h, storeUC := newStoreHandler(t)
		storeUC.EXPECT().UpdateStore(mock.Anything, "intruder", "s1", mock.Anything).
			Return(nil, domainerrors.ErrNotStoreOwner).
			Once()

		c, rec := newContext(http.MethodPut, "/api/stores/s1", body, testUser("intruder"))
		require.NoError(t, h.UpdateStore(withParam(c, "id", "s1")))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("owner", func(t *testing.T) {
		h, storeUC := newStoreHandler(t)
		storeUC.EXPECT().
			UpdateStore(mock.Anything, "owner", "s1", mock.MatchedBy(func(in *usecase.StoreInput) bool {
				return in.Name == "Bean There" && in.Email != nil && *in.Email == "hi@bean.example" && in.Phone == nil
			})).
			Return(&entity.Store{ID: "s1", Name: "Bean There", OwnerID: "owner"}, nil).
			Once()

		c, rec := newContext(http.MethodPut, "/api/stores/s1", body, testUser("owner"))
		require.NoError(t, h.UpdateStore(withParam(c, "id", "s1")))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing coordinates", func(t *testing.T) {
		h, _ := newStoreHandler(t)
		noCoords := `{"name":"Bean There","category":"cafe","address":"Main St","latitude":24.7}`

		c, rec := newContext(http.MethodPut, "/api/stores/s1", noCoords, testUser("owner"))
		require.NoError(t, h.UpdateStore(withParam(c, "id", "s1")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		details := decodeEnvelope(t, rec).Error.Details
		assert.Equal(t, "required", details["longitude"])
		assert.NotContains(t, details, "latitude")
	})

	t.Run("equator and prime meridian are valid coordinates", func(t *testing.T) {
		h, storeUC := newStoreHandler(t)
		storeUC.EXPECT().
			UpdateStore(mock.Anything, "owner", "s1", mock.MatchedBy(func(in *usecase.StoreInput) bool {
				return in.Latitude == 0 && in.Longitude == 0
			})).
			Return(&entity.Store{ID: "s1", OwnerID: "owner"}, nil).
			Once()

		zero := `{"name":"Null Island","category":"cafe","address":"Gulf of Guinea","latitude":0,"longitude":0}`
		c, rec := newContext(http.MethodPut, "/api/stores/s1", zero, testUser("owner"))
		require.NoError(t, h.UpdateStore(withParam(c, "id", "s1")))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid email", func(t *testing.T) {
		h, _ := newStoreHandler(t)
		bad := `{"name":"Bean There","category":"cafe","address":"Main St","email":"nope"}`

		c, rec := newContext(http.MethodPut, "/api/stores/s1", bad, testUser("owner"))
		require.NoError(t, h.UpdateStore(withParam(c, "id", "s1")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "email", decodeEnvelope(t, rec).Error.Details["email"])
	})
}

func TestStoreHandler_DeleteStore(t *testing.T) {
	h, storeUC := newStoreHandler(t)
	storeUC.EXPECT().DeleteStore(mock.Anything, "owner", "s1").
		Return(&usecase.DeleteStoreOutput{ProductsDeleted: 2, ServicesDeleted: 1}, nil).
		Once()

	c, rec := newContext(http.MethodDelete, "/api/stores/s1", "", testUser("owner"))
	require.NoError(t, h.DeleteStore(withParam(c, "id", "s1")))

	assert.Equal(t, http.StatusOK, rec.Code)
	var out map[string]any
	decodeData(t, rec, &out)
	assert.EqualValues(t, 2, out["products_deleted"])
	assert.EqualValues(t, 1, out["services_deleted"])
}
