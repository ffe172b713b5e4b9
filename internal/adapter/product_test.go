package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kahvecikaan/product-registry/internal/domain"
	"github.com/kahvecikaan/product-registry/internal/repository"
)

func TestProductAdapter_DelegatesToRepository(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryProductRepository()
	a := NewProductAdapter(repo)

	p, err := domain.NewProduct("상품명", 1000, domain.DiscountPolicyNone)
	require.NoError(t, err)
	require.NoError(t, a.Save(ctx, p))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := a.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Same(t, p, got)

	assert.ErrorIs(t, a.Save(ctx, p), domain.ErrProductAlreadyPersisted)

	_, err = a.FindByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
