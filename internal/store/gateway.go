package store

import "context"

// Gateway loads and saves string blobs by key. Implementations must be
// safe for concurrent use.
type Gateway interface {
	// Load returns the value stored under key. ok is false when the key
	// has never been saved.
	Load(ctx context.Context, key string) (value string, ok bool, err error)

	// Save stores value under key, replacing any previous value.
	Save(ctx context.Context, key, value string) error
}
