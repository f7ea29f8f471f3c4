package service

import (
	"context"
	"log/slog"

	"github.com/dietlens/platescan/internal/scan/domain"
	"github.com/dietlens/platescan/internal/scan/media"
	"github.com/dietlens/platescan/internal/scan/store"
	"github.com/dietlens/platescan/pkg/slogx"
)

// ProfileService serves profile data and profile picture uploads.
type ProfileService struct {
	Store store.Store
	Media media.Storage
}

// Get returns username's profile.
func (s *ProfileService) Get(ctx context.Context, username string) (domain.User, error) {
	return s.Store.Users().GetUserByUsername(ctx, username)
}

// UpdatePicture stores the uploaded image and points username's profile
// at it. The returned string is the stored picture reference.
func (s *ProfileService) UpdatePicture(
	ctx context.Context,
	username, filename, mimeType string,
	data []byte,
) (string, error) {
	log := slogx.FromContext(ctx)

	if len(data) == 0 {
		return "", ErrNoImage
	}

	ref, err := s.Media.Save(ctx, filename, mimeType, data)
	if err != nil {
		log.Error("failed to store profile picture",
			slog.String("username", username),
			slog.Any("error", err),
		)
		return "", err
	}

	if err := s.Store.Users().UpdateProfilePicture(ctx, username, ref); err != nil {
		log.Error("failed to update profile picture reference",
			slog.String("username", username),
			slog.Any("error", err),
		)
		return "", err
	}

	log.Info("profile picture updated", slog.String("username", username))
	return ref, nil
}
