// Package kvstore provides the namespaced key-value persistence layer every
// entity collection is serialized into. One JSON value per key, last write
// wins; there is no batching and no cross-key transaction.
package kvstore

import (
	"context"
	"errors"
)

// Namespaced keys, one per persisted collection. The namespace prefix is kept
// from the original local-storage layout so exported data stays portable.
const (
	KeyInvoices        = "swipelite_invoices"
	KeyProfiles        = "swipelite_profiles"
	KeyActiveProfileID = "swipelite_active_profile_id"
	KeyProducts        = "swipelite_products"
	KeyCustomers       = "swipelite_customers"
	KeyTemplates       = "swipelite_templates"
)

// ErrNotFound is returned by Get when a key has never been written.
var ErrNotFound = errors.New("kvstore: key not found")

// Store is a minimal key-value store holding one JSON-serialized value per key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}
