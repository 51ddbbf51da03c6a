package interfaces

import "errors"

// ErrNotFound is returned by KVStore.Get when the key has no value.
var ErrNotFound = errors.New("key not found")

// KVStore is the synchronous key-value store the ledger persists to.
// Values are opaque serialized strings; callers own the encoding.
type KVStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}
