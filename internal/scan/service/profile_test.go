package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dietlens/platescan/internal/scan/domain"
	"github.com/dietlens/platescan/internal/scan/media"
	"github.com/stretchr/testify/require"
)

func TestProfileService(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)

	users := &UserService{Store: st}
	_, err := users.Register(ctx, "alice", "Alice A", "secret123")
	require.NoError(t, err)

	storage, err := media.NewDirStorage(t.TempDir())
	require.NoError(t, err)
	svc := &ProfileService{Store: st, Media: storage}

	t.Run("new accounts fall back to the default picture", func(t *testing.T) {
		user, err := svc.Get(ctx, "alice")
		require.NoError(t, err)
		require.Nil(t, user.ProfilePicture)
		require.Equal(t, domain.DefaultProfilePicture, user.Picture())
	})

	t.Run("upload replaces the picture reference", func(t *testing.T) {
		ref, err := svc.UpdatePicture(ctx, "alice", "avatar.png", "image/png", []byte("png-bytes"))
		require.NoError(t, err)
		require.Equal(t, "avatar.png", filepath.Base(ref))

		user, err := svc.Get(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, ref, user.Picture())
	})

	t.Run("rejects empty uploads", func(t *testing.T) {
		_, err := svc.UpdatePicture(ctx, "alice", "avatar.png", "image/png", nil)
		require.ErrorIs(t, err, ErrNoImage)
	})
}
