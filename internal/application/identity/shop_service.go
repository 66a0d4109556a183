package identity

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/jewelerp/backend/internal/domain/identity"
	"github.com/jewelerp/backend/internal/domain/shared"
)

// ShopService handles super-admin shop management
type ShopService struct {
	shopRepo identity.ShopRepository
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewShopService creates a new ShopService
func NewShopService(shopRepo identity.ShopRepository, userRepo identity.UserRepository, logger *zap.Logger) *ShopService {
	return &ShopService{
		shopRepo: shopRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Create onboards a new shop together with its owner account
func (s *ShopService) Create(ctx context.Context, req CreateShopRequest) (*ShopResponse, error) {
	if existing, err := s.userRepo.FindByUsername(ctx, req.OwnerUsername); err == nil && existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Owner username is already taken")
	}

	shop, err := identity.NewShop(req.Name)
	if err != nil {
		return nil, err
	}
	shop.LegalName = req.LegalName
	shop.GSTIN = req.GSTIN
	shop.Address = req.Address
	shop.Phone = req.Phone
	shop.Email = req.Email

	if err := s.shopRepo.Save(ctx, shop); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.OwnerPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	owner, err := identity.NewUser(&shop.ID, req.OwnerUsername, string(hash), identity.RoleOwner)
	if err != nil {
		return nil, err
	}
	owner.FullName = req.OwnerFullName

	if err := s.userRepo.Save(ctx, owner); err != nil {
		return nil, err
	}

	s.logger.Info("shop onboarded",
		zap.String("shop_id", shop.ID.String()),
		zap.String("owner", owner.Username),
	)

	resp := ToShopResponse(shop)
	return &resp, nil
}

// Update applies a partial update to a shop
func (s *ShopService) Update(ctx context.Context, shopID uuid.UUID, req UpdateShopRequest) (*ShopResponse, error) {
	shop, err := s.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, shared.NewDomainError("INVALID_NAME", "Shop name cannot be empty")
		}
		shop.Name = *req.Name
	}
	if req.LegalName != nil {
		shop.LegalName = *req.LegalName
	}
	if req.GSTIN != nil {
		shop.GSTIN = *req.GSTIN
	}
	if req.Address != nil {
		shop.Address = *req.Address
	}
	if req.Phone != nil {
		shop.Phone = *req.Phone
	}
	if req.Email != nil {
		shop.Email = *req.Email
	}

	if err := s.shopRepo.Save(ctx, shop); err != nil {
		return nil, err
	}
	resp := ToShopResponse(shop)
	return &resp, nil
}

// GetByID retrieves a shop
func (s *ShopService) GetByID(ctx context.Context, shopID uuid.UUID) (*ShopResponse, error) {
	shop, err := s.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		return nil, err
	}
	resp := ToShopResponse(shop)
	return &resp, nil
}

// List retrieves shops with pagination
func (s *ShopService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[ShopResponse], error) {
	shops, err := s.shopRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.shopRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]ShopResponse, 0, len(shops))
	for idx := range shops {
		items = append(items, ToShopResponse(&shops[idx]))
	}
	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Pause suspends a shop; its users cannot log in until resumed
func (s *ShopService) Pause(ctx context.Context, shopID uuid.UUID) (*ShopResponse, error) {
	shop, err := s.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if err := shop.Pause(); err != nil {
		return nil, err
	}
	if err := s.shopRepo.Save(ctx, shop); err != nil {
		return nil, err
	}
	s.logger.Info("shop paused", zap.String("shop_id", shopID.String()))
	resp := ToShopResponse(shop)
	return &resp, nil
}

// Resume lifts a pause on a shop
func (s *ShopService) Resume(ctx context.Context, shopID uuid.UUID) (*ShopResponse, error) {
	shop, err := s.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		return nil, err
	}
	shop.Resume()
	if err := s.shopRepo.Save(ctx, shop); err != nil {
		return nil, err
	}
	s.logger.Info("shop resumed", zap.String("shop_id", shopID.String()))
	resp := ToShopResponse(shop)
	return &resp, nil
}

// SetSubscription sets the subscription window of a shop
func (s *ShopService) SetSubscription(ctx context.Context, shopID uuid.UUID, req SetSubscriptionRequest) (*ShopResponse, error) {
	shop, err := s.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if err := shop.SetSubscription(req.From, req.To); err != nil {
		return nil, err
	}
	if err := s.shopRepo.Save(ctx, shop); err != nil {
		return nil, err
	}
	resp := ToShopResponse(shop)
	return &resp, nil
}

// Delete soft-deletes a shop
func (s *ShopService) Delete(ctx context.Context, shopID uuid.UUID) error {
	return s.shopRepo.Delete(ctx, shopID)
}
