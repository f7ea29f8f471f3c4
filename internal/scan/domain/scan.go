package domain

import "time"

// ScanResult is the vision collaborator's textual report. It is stored
// opaquely today; keeping it a distinct type means structured parsing
// can be layered on later without a storage migration.
type ScanResult string

func (r ScanResult) String() string { return string(r) }

// ScanRecord is one persisted scan. Records are immutable and append-only;
// the SQLite surrogate key doubles as the insertion-order sort key.
type ScanRecord struct {
	ID        int64
	Username  string // references users.username (not constraint-enforced)
	Result    ScanResult
	CreatedAt time.Time
}
