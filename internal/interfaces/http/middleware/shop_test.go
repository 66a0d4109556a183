package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jewelerp/backend/internal/domain/identity"
	"github.com/jewelerp/backend/internal/domain/shared"
	"github.com/jewelerp/backend/internal/infrastructure/auth"
)

type fakeShopDirectory struct {
	shops map[uuid.UUID]*identity.Shop
}

func (d *fakeShopDirectory) FindByID(_ context.Context, id uuid.UUID) (*identity.Shop, error) {
	shop, ok := d.shops[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return shop, nil
}

func newTenantRequest(t *testing.T, claims *auth.Claims, header string, dir ShopDirectory) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	engine := gin.New()
	engine.GET("/resource",
		func(c *gin.Context) { c.Set(JWTClaimsKey, claims) },
		ShopContext(dir),
		func(c *gin.Context) {
			shopID, ok := GetShopID(c)
			require.True(t, ok)
			c.JSON(http.StatusOK, gin.H{"shop_id": shopID})
		})

	req := httptest.NewRequest(http.MethodGet, "/resource", nil)
	if header != "" {
		req.Header.Set(ShopHeaderKey, header)
	}
	engine.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error.Code
}

func operationalShop(t *testing.T) *identity.Shop {
	t.Helper()
	shop, err := identity.NewShop("Aurum Jewellers")
	require.NoError(t, err)
	return shop
}

func TestShopContext(t *testing.T) {
	t.Run("admits a token bound to an operating shop", func(t *testing.T) {
		shop := operationalShop(t)
		dir := &fakeShopDirectory{shops: map[uuid.UUID]*identity.Shop{shop.ID: shop}}

		rec := newTenantRequest(t, &auth.Claims{ShopID: shop.ID.String(), Role: "OWNER"}, "", dir)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects a paused shop even with a valid token", func(t *testing.T) {
		shop := operationalShop(t)
		require.NoError(t, shop.Pause())
		dir := &fakeShopDirectory{shops: map[uuid.UUID]*identity.Shop{shop.ID: shop}}

		rec := newTenantRequest(t, &auth.Claims{ShopID: shop.ID.String(), Role: "OWNER"}, "", dir)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "SHOP_SUSPENDED", errorCode(t, rec))
	})

	t.Run("rejects a shop with a lapsed subscription", func(t *testing.T) {
		shop := operationalShop(t)
		from := time.Now().AddDate(-1, 0, 0)
		to := time.Now().AddDate(0, 0, -1)
		require.NoError(t, shop.SetSubscription(&from, &to))
		dir := &fakeShopDirectory{shops: map[uuid.UUID]*identity.Shop{shop.ID: shop}}

		rec := newTenantRequest(t, &auth.Claims{ShopID: shop.ID.String(), Role: "STAFF"}, "", dir)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "SHOP_SUSPENDED", errorCode(t, rec))
	})

	t.Run("rejects a shopless token that is not a super admin", func(t *testing.T) {
		dir := &fakeShopDirectory{}

		rec := newTenantRequest(t, &auth.Claims{Role: "OWNER"}, "", dir)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "NO_SHOP_CONTEXT", errorCode(t, rec))
	})

	t.Run("super admin selects an operating tenant by header", func(t *testing.T) {
		shop := operationalShop(t)
		dir := &fakeShopDirectory{shops: map[uuid.UUID]*identity.Shop{shop.ID: shop}}

		rec := newTenantRequest(t, &auth.Claims{Role: "SUPER_ADMIN"}, shop.ID.String(), dir)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("super admin without a header is rejected", func(t *testing.T) {
		dir := &fakeShopDirectory{}

		rec := newTenantRequest(t, &auth.Claims{Role: "SUPER_ADMIN"}, "", dir)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "NO_SHOP_CONTEXT", errorCode(t, rec))
	})

	t.Run("an unknown shop id is rejected", func(t *testing.T) {
		dir := &fakeShopDirectory{}

		rec := newTenantRequest(t, &auth.Claims{ShopID: uuid.New().String(), Role: "OWNER"}, "", dir)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "NO_SHOP_CONTEXT", errorCode(t, rec))
	})
}
