package sqlite

import (
	"context"
	"time"

	"github.com/dietlens/platescan/internal/scan/domain"
)

type scansRepo struct {
	db dbtx
}

func (r *scansRepo) AddScan(
	ctx context.Context,
	username string,
	result domain.ScanResult,
) (domain.ScanRecord, error) {
	now := time.Now().UTC()
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO scan_history (username, scan_result, created_at)
		VALUES (?, ?, ?)
		RETURNING id`,
		username, string(result), now,
	)

	rec := domain.ScanRecord{Username: username, Result: result, CreatedAt: now}
	if err := row.Scan(&rec.ID); err != nil {
		return domain.ScanRecord{}, err
	}
	return rec, nil
}

func (r *scansRepo) ListScans(ctx context.Context, username string) ([]domain.ScanRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, username, scan_result, created_at
		FROM scan_history
		WHERE username = ?
		ORDER BY id ASC`,
		username,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Empty history is a valid result, never an error.
	records := []domain.ScanRecord{}
	for rows.Next() {
		var rec domain.ScanRecord
		var result string
		if err := rows.Scan(&rec.ID, &rec.Username, &result, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.Result = domain.ScanResult(result)
		records = append(records, rec)
	}
	return records, rows.Err()
}
