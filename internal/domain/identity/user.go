package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/jewelerp/backend/internal/domain/shared"
)

// Role represents a user's role within the platform
type Role string

const (
	// RoleSuperAdmin is the platform operator; the only role without a shop.
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleOwner      Role = "OWNER"
	RoleManager    Role = "MANAGER"
	RoleStaff      Role = "STAFF"
)

// IsValid checks if the role is known
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleOwner, RoleManager, RoleStaff:
		return true
	}
	return false
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// User is an authenticated principal. ShopID is nil only for super admins.
type User struct {
	shared.BaseAggregateRoot
	ShopID       *uuid.UUID `gorm:"type:uuid;index"`
	Username     string     `gorm:"type:varchar(100);not null;uniqueIndex"`
	PasswordHash string     `gorm:"type:varchar(200);not null"`
	FullName     string     `gorm:"type:varchar(200)"`
	Role         Role       `gorm:"type:varchar(20);not null"`
	IsActive     bool       `gorm:"not null;default:true"`
	LastLoginAt  *time.Time
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new active user. Non-super-admin roles require a shop.
func NewUser(shopID *uuid.UUID, username, passwordHash string, role Role) (*User, error) {
	if username == "" {
		return nil, shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	}
	if passwordHash == "" {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password hash cannot be empty")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown role")
	}
	if role != RoleSuperAdmin && shopID == nil {
		return nil, shared.ErrNoShopContext
	}
	if role == RoleSuperAdmin && shopID != nil {
		return nil, shared.NewDomainError("INVALID_ROLE", "Super admin cannot belong to a shop")
	}
	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ShopID:            shopID,
		Username:          username,
		PasswordHash:      passwordHash,
		Role:              role,
		IsActive:          true,
	}, nil
}

// IsSuperAdmin returns true for platform operators
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// RecordLogin stamps the last login time
func (u *User) RecordLogin() {
	now := time.Now()
	u.LastLoginAt = &now
	u.UpdatedAt = now
}

// Deactivate disables the user
func (u *User) Deactivate() {
	u.IsActive = false
	u.UpdatedAt = time.Now()
}
