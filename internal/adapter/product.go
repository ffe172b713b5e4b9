package adapter

import (
	"context"

	"github.com/kahvecikaan/product-registry/internal/domain"
	"github.com/kahvecikaan/product-registry/internal/port"
	"github.com/kahvecikaan/product-registry/internal/repository"
)

var _ port.ProductPort = (*ProductAdapter)(nil)

// ProductAdapter implements port.ProductPort on top of a ProductRepository.
type ProductAdapter struct {
	repo repository.ProductRepository
}

func NewProductAdapter(repo repository.ProductRepository) *ProductAdapter {
	return &ProductAdapter{repo: repo}
}

func (a *ProductAdapter) Save(ctx context.Context, product *domain.Product) error {
	return a.repo.Save(ctx, product)
}

func (a *ProductAdapter) FindByID(ctx context.Context, id domain.ProductID) (*domain.Product, error) {
	return a.repo.GetByID(ctx, id)
}
