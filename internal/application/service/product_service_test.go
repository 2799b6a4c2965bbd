package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swipelite/swipelite-api/pkg/pagination"
)

func TestListProductsSearch(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.products.ListProducts(env.ctx, pagination.DefaultPagination(), "coffee")
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Premium Coffee Beans", result.Items[0].Name)

	// SKU matches too.
	result, err = env.products.ListProducts(env.ctx, pagination.DefaultPagination(), "hon-002")
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Organic Honey 500g", result.Items[0].Name)
}

func TestFindProductByName(t *testing.T) {
	env := newTestEnv(t)

	exact, err := env.products.FindProductByName(env.ctx, "premium coffee beans")
	require.NoError(t, err)
	require.NotNil(t, exact)
	assert.Equal(t, "Premium Coffee Beans", exact.Name)

	partial, err := env.products.FindProductByName(env.ctx, "honey")
	require.NoError(t, err)
	require.NotNil(t, partial)
	assert.Equal(t, "Organic Honey 500g", partial.Name)

	none, err := env.products.FindProductByName(env.ctx, "unobtanium")
	require.NoError(t, err)
	assert.Nil(t, none)
}
