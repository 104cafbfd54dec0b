// Package kv provides the key-value persistence adapter the CMS
// document lives in. No other package touches storage directly.
package kv

// Store is a synchronous string key-value store. Writes are durable
// on return. Errors from the backing store (disk full, permissions)
// propagate to the caller untouched; the adapter never masks them.
type Store interface {
	// Get returns the raw stored string for key. The boolean is false
	// when the key was never written.
	Get(key string) (string, bool, error)

	// Set stores value verbatim under key, replacing any prior value.
	Set(key, value string) error

	// Remove deletes key. Removing an absent key is a no-op, never an
	// error.
	Remove(key string) error

	// Close releases the backing store.
	Close() error
}
