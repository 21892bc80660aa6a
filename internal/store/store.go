package store

import "errors"

var (
	ErrNotFound = errors.New("not found")
)

// KV is the durable string-keyed store the engine persists into.
// Values are opaque serialized blobs; callers own their namespaces and
// never update a value in place, only get and set whole blobs.
type KV interface {
	// Get returns the blob stored under key, or ErrNotFound.
	Get(key string) (string, error)
	// Set writes the blob under key, replacing any prior value.
	Set(key, value string) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error
}
