package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/jewelerp/backend/internal/domain/partner"
	"github.com/jewelerp/backend/internal/domain/shared"
)

// SupplierService handles supplier operations
type SupplierService struct {
	supplierRepo partner.SupplierRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// Create creates a new supplier
func (s *SupplierService) Create(ctx context.Context, shopID uuid.UUID, userID *uuid.UUID, req CreateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := partner.NewSupplier(shopID, req.Name)
	if err != nil {
		return nil, err
	}
	supplier.ContactPerson = req.ContactPerson
	supplier.Phone = req.Phone
	supplier.Email = req.Email
	supplier.Address = req.Address
	supplier.GSTIN = req.GSTIN
	supplier.Notes = req.Notes
	supplier.CreatedBy = userID

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}
	resp := ToSupplierResponse(supplier)
	return &resp, nil
}

// Update applies a partial update to a supplier
func (s *SupplierService) Update(ctx context.Context, shopID, supplierID uuid.UUID, req UpdateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByIDForShop(ctx, supplierID, shopID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
		}
		supplier.Name = *req.Name
	}
	if req.ContactPerson != nil {
		supplier.ContactPerson = *req.ContactPerson
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.Email != nil {
		supplier.Email = *req.Email
	}
	if req.Address != nil {
		supplier.Address = *req.Address
	}
	if req.GSTIN != nil {
		supplier.GSTIN = *req.GSTIN
	}
	if req.Notes != nil {
		supplier.Notes = *req.Notes
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}
	resp := ToSupplierResponse(supplier)
	return &resp, nil
}

// GetByID retrieves a supplier by ID
func (s *SupplierService) GetByID(ctx context.Context, shopID, supplierID uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByIDForShop(ctx, supplierID, shopID)
	if err != nil {
		return nil, err
	}
	resp := ToSupplierResponse(supplier)
	return &resp, nil
}

// List retrieves suppliers with pagination
func (s *SupplierService) List(ctx context.Context, shopID uuid.UUID, filter shared.Filter) (*shared.Paginated[SupplierResponse], error) {
	suppliers, err := s.supplierRepo.FindAllForShop(ctx, shopID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.supplierRepo.CountForShop(ctx, shopID, filter)
	if err != nil {
		return nil, err
	}
	items := make([]SupplierResponse, 0, len(suppliers))
	for idx := range suppliers {
		items = append(items, ToSupplierResponse(&suppliers[idx]))
	}
	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Delete soft-deletes a supplier
func (s *SupplierService) Delete(ctx context.Context, shopID, supplierID uuid.UUID) error {
	return s.supplierRepo.DeleteForShop(ctx, supplierID, shopID)
}

// SetActive activates or deactivates a supplier
func (s *SupplierService) SetActive(ctx context.Context, shopID, supplierID uuid.UUID, active bool) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByIDForShop(ctx, supplierID, shopID)
	if err != nil {
		return nil, err
	}
	if active {
		supplier.Activate()
	} else {
		supplier.Deactivate()
	}
	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}
	resp := ToSupplierResponse(supplier)
	return &resp, nil
}
