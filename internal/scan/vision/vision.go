// Package vision talks to the external image-understanding service that
// turns a meal photo and a prompt into a textual food report.
package vision

import (
	"context"
	"errors"
)

var (
	// ErrUnavailable reports a failed or non-2xx upstream request.
	ErrUnavailable = errors.New("vision: upstream request failed")

	// ErrEmptyResponse reports an upstream reply with no usable text.
	ErrEmptyResponse = errors.New("vision: empty response")
)

// Image is the raw payload handed to the collaborator.
type Image struct {
	Data     []byte
	MIMEType string
}

// Client is the external AI collaborator. Implementations receive a
// fixed system instruction, the image and the caller's free-text prompt,
// and return the collaborator's textual report.
type Client interface {
	Describe(ctx context.Context, instruction, prompt string, img Image) (string, error)
}
