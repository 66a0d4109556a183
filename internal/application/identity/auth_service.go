package identity

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/jewelerp/backend/internal/domain/identity"
	"github.com/jewelerp/backend/internal/domain/shared"
	"github.com/jewelerp/backend/internal/infrastructure/auth"
)

// AuthService handles authentication
type AuthService struct {
	userRepo   identity.UserRepository
	shopRepo   identity.ShopRepository
	jwtService *auth.JWTService
	logger     *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo identity.UserRepository, shopRepo identity.ShopRepository, jwtService *auth.JWTService, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		shopRepo:   shopRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

var errInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")

// Login authenticates a user and returns a token pair. Unknown usernames and
// wrong passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		s.logger.Warn("login failed: unknown username", zap.String("username", req.Username))
		return nil, errInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("login failed: wrong password", zap.String("username", req.Username))
		return nil, errInvalidCredentials
	}

	if !user.IsActive {
		return nil, shared.NewDomainError("USER_DISABLED", "User account is disabled")
	}

	// Shop-bound users can only log in while their shop can operate.
	if user.ShopID != nil {
		shop, err := s.shopRepo.FindByID(ctx, *user.ShopID)
		if err != nil {
			return nil, err
		}
		if !shop.CanOperate() {
			return nil, shared.NewDomainError("SHOP_SUSPENDED", "Shop is paused or its subscription has lapsed")
		}
	}

	tokens, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		ShopID:   user.ShopID,
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role.String(),
	})
	if err != nil {
		return nil, err
	}

	user.RecordLogin()
	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Warn("failed to record login time", zap.Error(err))
	}

	return &LoginResponse{
		User:   ToUserResponse(user),
		Tokens: tokens,
	}, nil
}

// Refresh exchanges a valid refresh token for a new token pair
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (*auth.TokenPair, error) {
	claims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Refresh token is invalid or expired")
	}

	userID, err := claims.UserUUID()
	if err != nil {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Refresh token is invalid or expired")
	}

	// Re-check the user on every refresh so disabling takes effect.
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Refresh token is invalid or expired")
	}
	if !user.IsActive {
		return nil, shared.NewDomainError("USER_DISABLED", "User account is disabled")
	}

	return s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		ShopID:   user.ShopID,
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role.String(),
	})
}
