package store

import (
	"context"
	"errors"

	"github.com/dietlens/platescan/internal/scan/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable; each repository owns exactly one table.
type Store interface {
	Users() Users
	Scans() Scans
	Feedback() Feedback

	// ApplyMigrations applies the embedded versioned migration list.
	// Idempotent; meant to run once at startup.
	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, rolling back when fn
	// returns an error and committing otherwise. Prefer this over Tx.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying database handle.
	Close() error

	// Ping verifies the database is still reachable.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user row. The username primary key makes
	// a duplicate insert fail with ErrAlreadyExists, which is the final
	// arbiter of concurrent duplicate registrations.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByUsername returns the full row or ErrNotFound.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// UpdateProfilePicture overwrites the stored picture reference and
	// bumps updated_at. ErrNotFound when the user does not exist.
	UpdateProfilePicture(ctx context.Context, username, ref string) error
}

type Scans interface {
	// AddScan appends an immutable scan record. No dedup, no size cap.
	AddScan(ctx context.Context, username string, result domain.ScanResult) (domain.ScanRecord, error)

	// ListScans returns all records for username in insertion order.
	// A user with no records gets an empty slice, not an error.
	ListScans(ctx context.Context, username string) ([]domain.ScanRecord, error)
}

type Feedback interface {
	// AddFeedback appends an immutable feedback record.
	AddFeedback(ctx context.Context, username, text string) (domain.FeedbackRecord, error)
}
