package catalog

import (
	"context"
	"errors"

	"github.com/fuelpos/backend/internal/domain/catalog"
	"github.com/fuelpos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProductService handles catalog product management
type ProductService struct {
	repo   catalog.Repository
	logger *zap.Logger
}

// NewProductService creates a new product service
func NewProductService(repo catalog.Repository, logger *zap.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

// Create creates a new catalog product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	existing, err := s.repo.FindBySKU(ctx, req.SKU)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this SKU already exists")
	}

	p, err := catalog.NewProduct(req.SKU, req.Name, catalog.ProductType(req.Type), req.Unit, req.SellPrice, req.PurchasePrice)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("Product created",
		zap.String("product_id", p.ID.String()),
		zap.String("sku", p.SKU))

	resp := toProductResponse(p)
	return &resp, nil
}

// Get returns one product by id
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(p)
	return &resp, nil
}

// List returns products matching the filter
func (s *ProductService) List(ctx context.Context, req ListProductsRequest) ([]ProductResponse, error) {
	filter := catalog.Filter{
		Search: req.Search,
		Limit:  req.Limit,
		Offset: req.Offset,
	}
	if req.Type != "" {
		productType := catalog.ProductType(req.Type)
		filter.Type = &productType
	}

	products, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, toProductResponse(p))
	}
	return responses, nil
}

// Update applies partial updates to a product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := p.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.SellPrice != nil || req.PurchasePrice != nil {
		sell := p.SellPrice
		purchase := p.PurchasePrice
		if req.SellPrice != nil {
			sell = *req.SellPrice
		}
		if req.PurchasePrice != nil {
			purchase = *req.PurchasePrice
		}
		if err := p.UpdatePrices(sell, purchase); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	resp := toProductResponse(p)
	return &resp, nil
}

// Delete removes a product from the catalog
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
