package partner

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jewelerp/backend/internal/domain/partner"
	"github.com/jewelerp/backend/internal/domain/shared"
)

// CustomerService handles customer operations
type CustomerService struct {
	customerRepo partner.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// Create creates a new customer. Phone numbers are unique per shop.
func (s *CustomerService) Create(ctx context.Context, shopID uuid.UUID, userID *uuid.UUID, req CreateCustomerRequest) (*CustomerResponse, error) {
	existing, err := s.customerRepo.FindByPhoneForShop(ctx, req.Phone, shopID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A customer with this phone already exists")
	}

	customer, err := partner.NewCustomer(shopID, req.Name, req.Phone)
	if err != nil {
		return nil, err
	}
	customer.Email = req.Email
	customer.Address = req.Address
	customer.IDProof = req.IDProof
	customer.Notes = req.Notes
	customer.CreatedBy = userID

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// Update applies a partial update to a customer
func (s *CustomerService) Update(ctx context.Context, shopID, customerID uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByIDForShop(ctx, customerID, shopID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
		}
		customer.Name = *req.Name
	}
	phone := customer.Phone
	email := customer.Email
	address := customer.Address
	if req.Phone != nil {
		phone = *req.Phone
	}
	if req.Email != nil {
		email = *req.Email
	}
	if req.Address != nil {
		address = *req.Address
	}
	if err := customer.UpdateContact(phone, email, address); err != nil {
		return nil, err
	}
	if req.IDProof != nil {
		customer.IDProof = *req.IDProof
	}
	if req.Notes != nil {
		customer.Notes = *req.Notes
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, shopID, customerID uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByIDForShop(ctx, customerID, shopID)
	if err != nil {
		return nil, err
	}
	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// GetByPhone retrieves a customer by phone, the counter-side lookup
func (s *CustomerService) GetByPhone(ctx context.Context, shopID uuid.UUID, phone string) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByPhoneForShop(ctx, phone, shopID)
	if err != nil {
		return nil, err
	}
	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// List retrieves customers with pagination
func (s *CustomerService) List(ctx context.Context, shopID uuid.UUID, filter shared.Filter) (*shared.Paginated[CustomerResponse], error) {
	customers, err := s.customerRepo.FindAllForShop(ctx, shopID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.customerRepo.CountForShop(ctx, shopID, filter)
	if err != nil {
		return nil, err
	}
	items := make([]CustomerResponse, 0, len(customers))
	for idx := range customers {
		items = append(items, ToCustomerResponse(&customers[idx]))
	}
	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Delete soft-deletes a customer
func (s *CustomerService) Delete(ctx context.Context, shopID, customerID uuid.UUID) error {
	return s.customerRepo.DeleteForShop(ctx, customerID, shopID)
}

// SetBlocked blocks or unblocks a customer
func (s *CustomerService) SetBlocked(ctx context.Context, shopID, customerID uuid.UUID, blocked bool) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByIDForShop(ctx, customerID, shopID)
	if err != nil {
		return nil, err
	}
	if blocked {
		customer.Block()
	} else {
		customer.Unblock()
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	resp := ToCustomerResponse(customer)
	return &resp, nil
}
