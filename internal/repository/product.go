package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/kahvecikaan/product-registry/internal/domain"
)

type ProductRepository interface {
	Save(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id domain.ProductID) (*domain.Product, error)
	GetAll(ctx context.Context) ([]*domain.Product, error)
	Count(ctx context.Context) (int, error)
}

type memoryProductRepository struct {
	products map[domain.ProductID]*domain.Product
	sequence domain.ProductID
	mutex    sync.RWMutex
}

func NewMemoryProductRepository() ProductRepository {
	return &memoryProductRepository{
		products: make(map[domain.ProductID]*domain.Product),
	}
}

// Save assigns the next sequence number to product and stores it under that id.
// Products that already carry an id are rejected without advancing the sequence.
func (r *memoryProductRepository) Save(ctx context.Context, product *domain.Product) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := product.ID(); ok {
		return domain.ErrProductAlreadyPersisted
	}

	id := r.sequence + 1
	if err := product.AssignID(id); err != nil {
		return err
	}
	r.sequence = id
	r.products[id] = product
	return nil
}

func (r *memoryProductRepository) GetByID(ctx context.Context, id domain.ProductID) (*domain.Product, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

// GetAll returns every stored product in save order.
func (r *memoryProductRepository) GetAll(ctx context.Context) ([]*domain.Product, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	products := make([]*domain.Product, 0, len(r.products))
	for _, product := range r.products {
		products = append(products, product)
	}
	sort.Slice(products, func(i, j int) bool {
		a, _ := products[i].ID()
		b, _ := products[j].ID()
		return a < b
	})
	return products, nil
}

func (r *memoryProductRepository) Count(ctx context.Context) (int, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.products), nil
}
