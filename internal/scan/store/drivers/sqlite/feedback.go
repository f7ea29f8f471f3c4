package sqlite

import (
	"context"
	"time"

	"github.com/dietlens/platescan/internal/scan/domain"
)

type feedbackRepo struct {
	db dbtx
}

func (r *feedbackRepo) AddFeedback(
	ctx context.Context,
	username, text string,
) (domain.FeedbackRecord, error) {
	now := time.Now().UTC()
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO feedback (username, feedback, created_at)
		VALUES (?, ?, ?)
		RETURNING id`,
		username, text, now,
	)

	rec := domain.FeedbackRecord{Username: username, Feedback: text, CreatedAt: now}
	if err := row.Scan(&rec.ID); err != nil {
		return domain.FeedbackRecord{}, err
	}
	return rec, nil
}
