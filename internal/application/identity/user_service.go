package identity

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jewelerp/backend/internal/domain/identity"
	"github.com/jewelerp/backend/internal/domain/shared"
)

// UserService manages the users of a shop
type UserService struct {
	userRepo identity.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Create creates a new user in the given shop
func (s *UserService) Create(ctx context.Context, shopID uuid.UUID, req CreateUserRequest) (*UserResponse, error) {
	if existing, err := s.userRepo.FindByUsername(ctx, req.Username); err == nil && existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Username is already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := identity.NewUser(&shopID, req.Username, string(hash), identity.Role(req.Role))
	if err != nil {
		return nil, err
	}
	user.FullName = req.FullName

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// Update applies a partial update to a user of the shop
func (s *UserService) Update(ctx context.Context, shopID, userID uuid.UUID, req UpdateUserRequest) (*UserResponse, error) {
	user, err := s.findForShop(ctx, userID, shopID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// GetByID retrieves a user of the shop
func (s *UserService) GetByID(ctx context.Context, shopID, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.findForShop(ctx, userID, shopID)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// List retrieves the users of a shop
func (s *UserService) List(ctx context.Context, shopID uuid.UUID, filter shared.Filter) ([]UserResponse, error) {
	users, err := s.userRepo.FindAllForShop(ctx, shopID, filter)
	if err != nil {
		return nil, err
	}
	items := make([]UserResponse, 0, len(users))
	for idx := range users {
		items = append(items, ToUserResponse(&users[idx]))
	}
	return items, nil
}

// Delete soft-deletes a user of the shop
func (s *UserService) Delete(ctx context.Context, shopID, userID uuid.UUID) error {
	if _, err := s.findForShop(ctx, userID, shopID); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, userID)
}

// findForShop loads a user and hides users of other shops behind NOT_FOUND.
func (s *UserService) findForShop(ctx context.Context, userID, shopID uuid.UUID) (*identity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.ShopID == nil || *user.ShopID != shopID {
		return nil, shared.ErrNotFound
	}
	return user, nil
}
