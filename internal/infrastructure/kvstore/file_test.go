package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Put(ctx, KeyProducts, []byte(`[{"name":"x"}]`)))

	data, err := store.Get(ctx, KeyProducts)
	require.NoError(t, err)
	assert.Equal(t, `[{"name":"x"}]`, string(data))
}

func TestFileStoreMissingKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Get(context.Background(), KeyInvoices)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreOverwrite(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Put(ctx, KeyCustomers, []byte(`[]`)))
	require.NoError(t, store.Put(ctx, KeyCustomers, []byte(`[{"name":"y"}]`)))

	data, err := store.Get(ctx, KeyCustomers)
	require.NoError(t, err)
	assert.Equal(t, `[{"name":"y"}]`, string(data))
}

func TestFileStoreReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, KeyTemplates, []byte(`[1,2,3]`)))
	require.NoError(t, store.Close())

	reopened, err := NewFileStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	data, err := reopened.Get(ctx, KeyTemplates)
	require.NoError(t, err)
	assert.Equal(t, `[1,2,3]`, string(data))
}
