package service

import (
	"context"

	"github.com/dietlens/platescan/internal/scan/domain"
	"github.com/dietlens/platescan/internal/scan/store"
)

// HistoryService exposes a user's scan history.
type HistoryService struct {
	Store store.Store
}

// Add appends a result to username's history directly, bypassing the
// vision pipeline. Used for imports and tests.
func (s *HistoryService) Add(
	ctx context.Context,
	username string,
	result domain.ScanResult,
) (domain.ScanRecord, error) {
	return s.Store.Scans().AddScan(ctx, username, result)
}

// List returns username's scans oldest first. A user with no scans gets
// an empty slice, not nil.
func (s *HistoryService) List(ctx context.Context, username string) ([]domain.ScanRecord, error) {
	return s.Store.Scans().ListScans(ctx, username)
}
