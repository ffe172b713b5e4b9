// Package port declares the capabilities the product service needs from
// its collaborators, without naming their implementations.
package port

import (
	"context"

	"github.com/kahvecikaan/product-registry/internal/domain"
)

// ProductPort persists products and looks them up by id.
type ProductPort interface {
	// Save stores product and assigns its id.
	Save(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id domain.ProductID) (*domain.Product, error)
}
