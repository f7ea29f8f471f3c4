// Package media persists uploaded profile-picture bytes and returns the
// reference (path or URL) stored against the user.
package media

import "context"

// Storage writes an uploaded image and returns the reference to store.
// The profile manager only records the returned reference; it never
// validates that the object behind it exists or is well-formed.
type Storage interface {
	Save(ctx context.Context, name, mimeType string, data []byte) (string, error)
}
