package domain

import "time"

// FeedbackRecord is one free-text feedback submission. Immutable.
type FeedbackRecord struct {
	ID        int64
	Username  string // references users.username (not constraint-enforced)
	Feedback  string
	CreatedAt time.Time
}
