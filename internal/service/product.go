package service

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/kahvecikaan/product-registry/internal/domain"
	"github.com/kahvecikaan/product-registry/internal/events"
	"github.com/kahvecikaan/product-registry/internal/port"
)

type ProductService interface {
	AddProduct(ctx context.Context, request domain.AddProductRequest) (*domain.Product, error)
	GetProduct(ctx context.Context, id domain.ProductID) (*domain.Product, error)
}

type productService struct {
	port     port.ProductPort
	eventBus *events.EventBus[any]
	logger   hclog.Logger
}

// NewProductService returns a ProductService saving through p. eventBus may be nil.
func NewProductService(
	p port.ProductPort,
	eventBus *events.EventBus[any],
	logger hclog.Logger) ProductService {
	return &productService{
		port:     p,
		eventBus: eventBus,
		logger:   logger,
	}
}

func (s *productService) AddProduct(ctx context.Context, request domain.AddProductRequest) (*domain.Product, error) {
	s.logger.Debug("Adding new product", "name", request.Name, "price", request.Price)

	product, err := domain.NewProduct(request.Name, request.Price, request.DiscountPolicy)
	if err != nil {
		s.logger.Error("Invalid product", "name", request.Name, "error", err)
		return nil, err
	}

	if err := s.port.Save(ctx, product); err != nil {
		s.logger.Error("Unable to save product", "name", request.Name, "error", err)
		return nil, fmt.Errorf("saving product: %w", err)
	}

	id, _ := product.ID()
	s.logger.Info("Product registered", "id", id, "name", product.Name())

	if s.eventBus != nil {
		s.eventBus.Publish(events.ProductAdded{
			ProductID:      id,
			Name:           product.Name(),
			Price:          product.Price(),
			DiscountPolicy: product.DiscountPolicy().String(),
		})
	}
	return product, nil
}

func (s *productService) GetProduct(ctx context.Context, id domain.ProductID) (*domain.Product, error) {
	s.logger.Debug("Getting product by ID", "id", id)

	product, err := s.port.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Unable to get the product by ID", "id", id, "error", err)
		return nil, err
	}
	return product, nil
}
