package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kahvecikaan/product-registry/internal/domain"
)

type MockProductPort struct {
	mock.Mock
}

func (m *MockProductPort) Save(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductPort) FindByID(ctx context.Context, id domain.ProductID) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}
