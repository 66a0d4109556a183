package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jewelerp/backend/internal/domain/catalog"
	"github.com/jewelerp/backend/internal/domain/shared"
)

// ProductService handles catalog product operations
type ProductService struct {
	productRepo catalog.ProductRepository
	rateService *RateService
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, rateService *RateService) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		rateService: rateService,
	}
}

// Create creates a new product. Barcodes are unique per shop.
func (s *ProductService) Create(ctx context.Context, shopID uuid.UUID, userID *uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	exists, err := s.productRepo.ExistsByBarcodeForShop(ctx, req.Barcode, shopID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A product with this barcode already exists")
	}

	product, err := catalog.NewProduct(shopID, req.Name, catalog.MetalType(req.MetalType),
		req.Purity, req.Barcode, req.GrossWeight, req.NetWeight)
	if err != nil {
		return nil, err
	}
	if err := product.SetMarkup(req.MakingCharge, req.WastagePercent); err != nil {
		return nil, err
	}
	product.HUID = req.HUID
	product.TagNumber = req.TagNumber
	product.Collection = req.Collection
	product.Description = req.Description
	product.CreatedBy = userID

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// Update applies a partial update to a product
func (s *ProductService) Update(ctx context.Context, shopID, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForShop(ctx, productID, shopID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
		}
		product.Name = *req.Name
	}
	if req.MakingCharge != nil || req.WastagePercent != nil {
		making := product.MakingCharge
		wastage := product.WastagePercent
		if req.MakingCharge != nil {
			making = *req.MakingCharge
		}
		if req.WastagePercent != nil {
			wastage = *req.WastagePercent
		}
		if err := product.SetMarkup(making, wastage); err != nil {
			return nil, err
		}
	}
	if req.Collection != nil {
		product.Collection = *req.Collection
	}
	if req.Description != nil {
		product.Description = *req.Description
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, shopID, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForShop(ctx, productID, shopID)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// GetByBarcode retrieves a product by barcode, the counter-side lookup
func (s *ProductService) GetByBarcode(ctx context.Context, shopID uuid.UUID, barcode string) (*ProductResponse, error) {
	product, err := s.productRepo.FindByBarcodeForShop(ctx, barcode, shopID)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// List retrieves products with pagination
func (s *ProductService) List(ctx context.Context, shopID uuid.UUID, filter shared.Filter) (*shared.Paginated[ProductResponse], error) {
	products, err := s.productRepo.FindAllForShop(ctx, shopID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.productRepo.CountForShop(ctx, shopID, filter)
	if err != nil {
		return nil, err
	}
	items := make([]ProductResponse, 0, len(products))
	for idx := range products {
		items = append(items, ToProductResponse(&products[idx]))
	}
	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Delete soft-deletes a product
func (s *ProductService) Delete(ctx context.Context, shopID, productID uuid.UUID) error {
	return s.productRepo.DeleteForShop(ctx, productID, shopID)
}

// QuotePrice computes the current selling price of one unit from the active
// rate. Nothing is persisted; a quote is only valid at the moment it is made.
func (s *ProductService) QuotePrice(ctx context.Context, shopID, productID uuid.UUID) (*PriceQuoteResponse, error) {
	product, err := s.productRepo.FindByIDForShop(ctx, productID, shopID)
	if err != nil {
		return nil, err
	}
	rate, err := s.rateService.ActiveRate(ctx, shopID, product.MetalType, product.Purity)
	if err != nil {
		return nil, err
	}
	return &PriceQuoteResponse{
		ProductID:    product.ID,
		RateID:       rate.ID,
		PricePerGram: rate.PricePerGram,
		MetalValue:   product.NetWeight.Mul(rate.PricePerGram).Round(2),
		UnitPrice:    product.PriceAt(rate.PricePerGram),
		QuotedAt:     time.Now(),
	}, nil
}
