package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	domainidentity "github.com/jewelerp/backend/internal/domain/identity"
	"github.com/jewelerp/backend/internal/domain/shared"
	"github.com/jewelerp/backend/internal/infrastructure/auth"
	"github.com/jewelerp/backend/internal/infrastructure/config"
)

// ============================================================================
// Mocks
// ============================================================================

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*domainidentity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainidentity.User), args.Error(1)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*domainidentity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainidentity.User), args.Error(1)
}

func (m *mockUserRepo) FindAllForShop(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]domainidentity.User, error) {
	args := m.Called(ctx, shopID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domainidentity.User), args.Error(1)
}

func (m *mockUserRepo) Save(ctx context.Context, user *domainidentity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockShopRepo struct {
	mock.Mock
}

func (m *mockShopRepo) FindByID(ctx context.Context, id uuid.UUID) (*domainidentity.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainidentity.Shop), args.Error(1)
}

func (m *mockShopRepo) FindAll(ctx context.Context, filter shared.Filter) ([]domainidentity.Shop, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domainidentity.Shop), args.Error(1)
}

func (m *mockShopRepo) Save(ctx context.Context, shop *domainidentity.Shop) error {
	return m.Called(ctx, shop).Error(0)
}

func (m *mockShopRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockShopRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// ============================================================================
// Helpers
// ============================================================================

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-for-unit-tests-only",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "jewelerp-test",
	})
}

func testUser(t *testing.T, shopID *uuid.UUID, password string) *domainidentity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	role := domainidentity.RoleOwner
	if shopID == nil {
		role = domainidentity.RoleSuperAdmin
	}
	user, err := domainidentity.NewUser(shopID, "owner1", string(hash), role)
	require.NoError(t, err)
	return user
}

func domainCode(t *testing.T, err error) string {
	t.Helper()
	var derr *shared.DomainError
	require.ErrorAs(t, err, &derr)
	return derr.Code
}

// ============================================================================
// Login
// ============================================================================

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	shopID := uuid.New()

	t.Run("succeeds and records login time", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		shopRepo := new(mockShopRepo)
		user := testUser(t, &shopID, "s3cretpass")
		shop, err := domainidentity.NewShop("Shree Jewellers")
		require.NoError(t, err)
		shop.ID = shopID

		userRepo.On("FindByUsername", ctx, "owner1").Return(user, nil)
		shopRepo.On("FindByID", ctx, shopID).Return(shop, nil)
		userRepo.On("Save", ctx, user).Return(nil)

		svc := NewAuthService(userRepo, shopRepo, testJWTService(), zap.NewNop())
		resp, err := svc.Login(ctx, LoginRequest{Username: "owner1", Password: "s3cretpass"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Tokens.AccessToken)
		assert.Equal(t, "owner1", resp.User.Username)
		assert.NotNil(t, user.LastLoginAt)
		userRepo.AssertExpectations(t)
	})

	t.Run("unknown username and wrong password yield the same error", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		shopRepo := new(mockShopRepo)
		user := testUser(t, &shopID, "s3cretpass")

		userRepo.On("FindByUsername", ctx, "ghost").Return(nil, shared.ErrNotFound)
		userRepo.On("FindByUsername", ctx, "owner1").Return(user, nil)

		svc := NewAuthService(userRepo, shopRepo, testJWTService(), zap.NewNop())

		_, err1 := svc.Login(ctx, LoginRequest{Username: "ghost", Password: "whatever"})
		_, err2 := svc.Login(ctx, LoginRequest{Username: "owner1", Password: "wrong"})
		assert.Equal(t, "INVALID_CREDENTIALS", domainCode(t, err1))
		assert.Equal(t, "INVALID_CREDENTIALS", domainCode(t, err2))
	})

	t.Run("rejects disabled user", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		shopRepo := new(mockShopRepo)
		user := testUser(t, &shopID, "s3cretpass")
		user.Deactivate()

		userRepo.On("FindByUsername", ctx, "owner1").Return(user, nil)

		svc := NewAuthService(userRepo, shopRepo, testJWTService(), zap.NewNop())
		_, err := svc.Login(ctx, LoginRequest{Username: "owner1", Password: "s3cretpass"})
		assert.Equal(t, "USER_DISABLED", domainCode(t, err))
	})

	t.Run("rejects login while shop is paused", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		shopRepo := new(mockShopRepo)
		user := testUser(t, &shopID, "s3cretpass")
		shop, err := domainidentity.NewShop("Shree Jewellers")
		require.NoError(t, err)
		shop.ID = shopID
		require.NoError(t, shop.Pause())

		userRepo.On("FindByUsername", ctx, "owner1").Return(user, nil)
		shopRepo.On("FindByID", ctx, shopID).Return(shop, nil)

		svc := NewAuthService(userRepo, shopRepo, testJWTService(), zap.NewNop())
		_, err = svc.Login(ctx, LoginRequest{Username: "owner1", Password: "s3cretpass"})
		assert.Equal(t, "SHOP_SUSPENDED", domainCode(t, err))
	})

	t.Run("super admin logs in without a shop", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		shopRepo := new(mockShopRepo)
		user := testUser(t, nil, "s3cretpass")

		userRepo.On("FindByUsername", ctx, "owner1").Return(user, nil)
		userRepo.On("Save", ctx, user).Return(nil)

		svc := NewAuthService(userRepo, shopRepo, testJWTService(), zap.NewNop())
		resp, err := svc.Login(ctx, LoginRequest{Username: "owner1", Password: "s3cretpass"})
		require.NoError(t, err)
		assert.Nil(t, resp.User.ShopID)
		shopRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

// ============================================================================
// Refresh
// ============================================================================

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()
	shopID := uuid.New()

	t.Run("exchanges a valid refresh token", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		shopRepo := new(mockShopRepo)
		user := testUser(t, &shopID, "s3cretpass")

		jwtService := testJWTService()
		pair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
			ShopID:   user.ShopID,
			UserID:   user.ID,
			Username: user.Username,
			Role:     user.Role.String(),
		})
		require.NoError(t, err)

		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

		svc := NewAuthService(userRepo, shopRepo, jwtService, zap.NewNop())
		tokens, err := svc.Refresh(ctx, RefreshRequest{RefreshToken: pair.RefreshToken})
		require.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)
	})

	t.Run("rejects an access token used as refresh token", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		shopRepo := new(mockShopRepo)
		user := testUser(t, &shopID, "s3cretpass")

		jwtService := testJWTService()
		pair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
			ShopID:   user.ShopID,
			UserID:   user.ID,
			Username: user.Username,
			Role:     user.Role.String(),
		})
		require.NoError(t, err)

		svc := NewAuthService(userRepo, shopRepo, jwtService, zap.NewNop())
		_, err = svc.Refresh(ctx, RefreshRequest{RefreshToken: pair.AccessToken})
		assert.Equal(t, "INVALID_TOKEN", domainCode(t, err))
	})

	t.Run("rejects refresh for a disabled user", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		shopRepo := new(mockShopRepo)
		user := testUser(t, &shopID, "s3cretpass")
		user.Deactivate()

		jwtService := testJWTService()
		pair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
			ShopID:   user.ShopID,
			UserID:   user.ID,
			Username: user.Username,
			Role:     user.Role.String(),
		})
		require.NoError(t, err)

		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

		svc := NewAuthService(userRepo, shopRepo, jwtService, zap.NewNop())
		_, err = svc.Refresh(ctx, RefreshRequest{RefreshToken: pair.RefreshToken})
		assert.Equal(t, "USER_DISABLED", domainCode(t, err))
	})
}
