package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jewelerp/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-for-unit-tests-only",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "jewelerp-test",
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := testService()
	shopID := uuid.New()
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{
		ShopID:   &shopID,
		UserID:   userID,
		Username: "owner1",
		Role:     "OWNER",
	})
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "owner1", claims.Username)
	assert.Equal(t, "OWNER", claims.Role)

	gotShop, err := claims.ShopUUID()
	require.NoError(t, err)
	require.NotNil(t, gotShop)
	assert.Equal(t, shopID, *gotShop)

	gotUser, err := claims.UserUUID()
	require.NoError(t, err)
	assert.Equal(t, userID, gotUser)
}

func TestJWTService_SuperAdminHasNoShop(t *testing.T) {
	svc := testService()

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{
		ShopID:   nil,
		UserID:   uuid.New(),
		Username: "root",
		Role:     "SUPER_ADMIN",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	shop, err := claims.ShopUUID()
	require.NoError(t, err)
	assert.Nil(t, shop)
}

func TestJWTService_TokenTypeMismatch(t *testing.T) {
	svc := testService()
	pair, err := svc.GenerateTokenPair(GenerateTokenInput{
		UserID:   uuid.New(),
		Username: "u",
		Role:     "STAFF",
	})
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidTokenType)

	_, err = svc.ValidateRefreshToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidTokenType)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := testService()
	_, err := svc.ValidateAccessToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := testService()
	other := NewJWTService(config.JWTConfig{
		Secret:                 "a-completely-different-secret-value",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "jewelerp-test",
	})

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{UserID: uuid.New(), Username: "u", Role: "STAFF"})
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
