// Package blob defines the key-value blob store the application state is
// mirrored to, with a database-backed implementation and an in-memory one
// for tests.
package blob

import "errors"

// ErrKeyNotFound is returned by Get when no value exists for a key.
var ErrKeyNotFound = errors.New("blob: key not found")

// Store is an opaque key-value store holding serialized collections.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}
