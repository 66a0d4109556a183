package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/jewelerp/backend/internal/domain/identity"
	"github.com/jewelerp/backend/internal/infrastructure/auth"
)

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest represents a token refresh request
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LoginResponse is returned after a successful login
type LoginResponse struct {
	User   UserResponse    `json:"user"`
	Tokens *auth.TokenPair `json:"tokens"`
}

// CreateUserRequest represents a request to create a staff user
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"max=200"`
	Role     string `json:"role" binding:"required,oneof=OWNER MANAGER STAFF"`
}

// UpdateUserRequest represents a partial user update
type UpdateUserRequest struct {
	FullName *string `json:"full_name"`
	Password *string `json:"password"`
	IsActive *bool   `json:"is_active"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	ShopID      *uuid.UUID `json:"shop_id,omitempty"`
	Username    string     `json:"username"`
	FullName    string     `json:"full_name"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ToUserResponse converts a user aggregate to a response DTO
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		ShopID:      u.ShopID,
		Username:    u.Username,
		FullName:    u.FullName,
		Role:        u.Role.String(),
		IsActive:    u.IsActive,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}

// CreateShopRequest represents a super-admin request to onboard a shop
type CreateShopRequest struct {
	Name          string `json:"name" binding:"required,max=200"`
	LegalName     string `json:"legal_name" binding:"max=200"`
	GSTIN         string `json:"gstin" binding:"max=20"`
	Address       string `json:"address" binding:"max=500"`
	Phone         string `json:"phone" binding:"max=20"`
	Email         string `json:"email" binding:"omitempty,email"`
	OwnerUsername string `json:"owner_username" binding:"required,min=3,max=100"`
	OwnerPassword string `json:"owner_password" binding:"required,min=8"`
	OwnerFullName string `json:"owner_full_name" binding:"max=200"`
}

// UpdateShopRequest represents a partial shop update
type UpdateShopRequest struct {
	Name      *string `json:"name"`
	LegalName *string `json:"legal_name"`
	GSTIN     *string `json:"gstin"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
}

// SetSubscriptionRequest sets the shop subscription window
type SetSubscriptionRequest struct {
	From *time.Time `json:"from"`
	To   *time.Time `json:"to"`
}

// ShopResponse represents a shop in API responses
type ShopResponse struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	LegalName        string     `json:"legal_name,omitempty"`
	GSTIN            string     `json:"gstin,omitempty"`
	Address          string     `json:"address,omitempty"`
	Phone            string     `json:"phone,omitempty"`
	Email            string     `json:"email,omitempty"`
	IsActive         bool       `json:"is_active"`
	IsPaused         bool       `json:"is_paused"`
	SubscriptionFrom *time.Time `json:"subscription_from,omitempty"`
	SubscriptionTo   *time.Time `json:"subscription_to,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// ToShopResponse converts a shop aggregate to a response DTO
func ToShopResponse(s *identity.Shop) ShopResponse {
	return ShopResponse{
		ID:               s.ID,
		Name:             s.Name,
		LegalName:        s.LegalName,
		GSTIN:            s.GSTIN,
		Address:          s.Address,
		Phone:            s.Phone,
		Email:            s.Email,
		IsActive:         s.IsActive,
		IsPaused:         s.IsPaused,
		SubscriptionFrom: s.SubscriptionFrom,
		SubscriptionTo:   s.SubscriptionTo,
		CreatedAt:        s.CreatedAt,
	}
}
