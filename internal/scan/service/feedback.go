package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dietlens/platescan/internal/scan/domain"
	"github.com/dietlens/platescan/internal/scan/store"
	"github.com/dietlens/platescan/pkg/slogx"
)

var ErrEmptyFeedback = errors.New("feedback text is empty")

// FeedbackService records free-form feedback from signed-in users.
type FeedbackService struct {
	Store store.Store
}

// Add appends a feedback entry for username. Duplicate submissions are
// stored as separate rows.
func (s *FeedbackService) Add(
	ctx context.Context,
	username, feedback string,
) (domain.FeedbackRecord, error) {
	if feedback == "" {
		return domain.FeedbackRecord{}, ErrEmptyFeedback
	}

	record, err := s.Store.Feedback().AddFeedback(ctx, username, feedback)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to record feedback",
			slog.String("username", username),
			slog.Any("error", err),
		)
		return domain.FeedbackRecord{}, err
	}
	return record, nil
}
