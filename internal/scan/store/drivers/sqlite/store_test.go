package sqlite_test

import (
	"context"
	"testing"

	"github.com/dietlens/platescan/internal/scan/domain"
	"github.com/dietlens/platescan/internal/scan/store"
	"github.com/dietlens/platescan/internal/scan/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestUsersCreateAndGet(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	u := domain.User{Username: "alice", Name: "Alice A", PasswordHash: "hash"}
	require.NoError(t, st.Users().CreateUser(ctx, u))

	got, err := st.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "alice", got.Username)
	require.Equal(t, "Alice A", got.Name)
	require.Equal(t, "hash", got.PasswordHash)
	require.Nil(t, got.ProfilePicture)
	require.False(t, got.CreatedAt.IsZero())
}

func TestUsersGetUnknown(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	_, err := st.Users().GetUserByUsername(ctx, "nobody")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsersDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	u := domain.User{Username: "alice", Name: "Alice A", PasswordHash: "hash"}
	require.NoError(t, st.Users().CreateUser(ctx, u))

	dup := domain.User{Username: "alice", Name: "Impostor", PasswordHash: "other"}
	err := st.Users().CreateUser(ctx, dup)
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	// The original row is untouched by the failed insert.
	got, err := st.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "Alice A", got.Name)
	require.Equal(t, "hash", got.PasswordHash)
}

func TestUsersUpdateProfilePicture(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	u := domain.User{Username: "alice", Name: "Alice A", PasswordHash: "hash"}
	require.NoError(t, st.Users().CreateUser(ctx, u))

	require.NoError(t, st.Users().UpdateProfilePicture(ctx, "alice", "media/alice.jpg"))

	got, err := st.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, got.ProfilePicture)
	require.Equal(t, "media/alice.jpg", *got.ProfilePicture)

	t.Run("unknown user", func(t *testing.T) {
		err := st.Users().UpdateProfilePicture(ctx, "nobody", "x.jpg")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestScansInsertionOrder(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	results := []domain.ScanResult{
		"Apple detected, top-left",
		"Banana detected, centre",
		"Toast detected, bottom-right",
	}
	for _, r := range results {
		_, err := st.Scans().AddScan(ctx, "alice", r)
		require.NoError(t, err)
	}
	_, err := st.Scans().AddScan(ctx, "bob", "Soup detected, centre")
	require.NoError(t, err)

	records, err := st.Scans().ListScans(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i, rec := range records {
		require.Equal(t, results[i], rec.Result)
		require.Equal(t, "alice", rec.Username)
	}

	// Surrogate keys carry the insertion order.
	require.Less(t, records[0].ID, records[1].ID)
	require.Less(t, records[1].ID, records[2].ID)

	// Bob's history is unaffected by alice's scans.
	bobRecords, err := st.Scans().ListScans(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, bobRecords, 1)
}

func TestScansEmptyHistory(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	records, err := st.Scans().ListScans(ctx, "nobody")
	require.NoError(t, err)
	require.Empty(t, records)
	require.NotNil(t, records)
}

func TestFeedbackAppend(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	first, err := st.Feedback().AddFeedback(ctx, "alice", "love it")
	require.NoError(t, err)
	require.Equal(t, "alice", first.Username)
	require.Equal(t, "love it", first.Feedback)

	second, err := st.Feedback().AddFeedback(ctx, "alice", "still love it")
	require.NoError(t, err)
	require.Less(t, first.ID, second.ID)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	sentinel := require.New(t)
	err := st.WithTx(ctx, func(tx store.Tx) error {
		u := domain.User{Username: "alice", Name: "Alice A", PasswordHash: "hash"}
		if err := tx.Users().CreateUser(ctx, u); err != nil {
			return err
		}
		return context.Canceled // force rollback
	})
	sentinel.Error(err)

	_, err = st.Users().GetUserByUsername(ctx, "alice")
	sentinel.ErrorIs(err, store.ErrNotFound)
}

func TestApplyMigrationsIdempotent(t *testing.T) {
	st := newTestStore(t)
	// Second application is a no-op, not an error.
	require.NoError(t, st.ApplyMigrations())
}
