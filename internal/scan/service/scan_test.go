package service

import (
	"context"
	"testing"

	"github.com/dietlens/platescan/internal/scan/domain"
	"github.com/dietlens/platescan/internal/scan/vision"
	"github.com/stretchr/testify/require"
)

// fakeVision returns a canned description and records what it was asked.
type fakeVision struct {
	text        string
	err         error
	instruction string
	prompt      string
	image       vision.Image
	calls       int
}

func (f *fakeVision) Describe(
	_ context.Context,
	instruction, prompt string,
	img vision.Image,
) (string, error) {
	f.calls++
	f.instruction = instruction
	f.prompt = prompt
	f.image = img
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func TestScanServiceScan(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	history := &HistoryService{Store: st}

	img := vision.Image{Data: []byte("jpeg-bytes"), MIMEType: "image/jpeg"}

	t.Run("records result in history", func(t *testing.T) {
		fake := &fakeVision{text: "Apple detected, top-left"}
		svc := &ScanService{Store: st, Vision: fake}

		record, err := svc.Scan(ctx, "alice", "what is on my plate?", img)
		require.NoError(t, err)
		require.Equal(t, domain.ScanResult("Apple detected, top-left"), record.Result)
		require.NotZero(t, record.ID)

		// The fixed instruction rides alongside the user's prompt.
		require.Equal(t, foodInstruction, fake.instruction)
		require.Equal(t, "what is on my plate?", fake.prompt)
		require.Equal(t, img, fake.image)

		records, err := history.List(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, records, 1)
		require.Equal(t, domain.ScanResult("Apple detected, top-left"), records[0].Result)
	})

	t.Run("rejects missing image without calling the model", func(t *testing.T) {
		fake := &fakeVision{text: "should not be used"}
		svc := &ScanService{Store: st, Vision: fake}

		_, err := svc.Scan(ctx, "bob", "prompt", vision.Image{})
		require.ErrorIs(t, err, ErrNoImage)
		require.Zero(t, fake.calls)

		records, err := history.List(ctx, "bob")
		require.NoError(t, err)
		require.Empty(t, records)
	})

	t.Run("upstream failure leaves history untouched", func(t *testing.T) {
		fake := &fakeVision{err: vision.ErrUnavailable}
		svc := &ScanService{Store: st, Vision: fake}

		_, err := svc.Scan(ctx, "carol", "prompt", img)
		require.ErrorIs(t, err, ErrUpstream)
		require.ErrorIs(t, err, vision.ErrUnavailable)

		records, err := history.List(ctx, "carol")
		require.NoError(t, err)
		require.Empty(t, records)
	})

	t.Run("empty model response is an upstream error", func(t *testing.T) {
		fake := &fakeVision{err: vision.ErrEmptyResponse}
		svc := &ScanService{Store: st, Vision: fake}

		_, err := svc.Scan(ctx, "carol", "prompt", img)
		require.ErrorIs(t, err, ErrUpstream)
	})
}

func TestHistoryService(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := &HistoryService{Store: newTestStore(t)}

	_, err := svc.Add(ctx, "alice", "Apple detected, top-left")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "alice", "Banana detected, bottom-right")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "bob", "Toast detected, center")
	require.NoError(t, err)

	t.Run("lists own scans oldest first", func(t *testing.T) {
		records, err := svc.List(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, records, 2)
		require.Equal(t, domain.ScanResult("Apple detected, top-left"), records[0].Result)
		require.Equal(t, domain.ScanResult("Banana detected, bottom-right"), records[1].Result)
	})

	t.Run("empty history is an empty slice", func(t *testing.T) {
		records, err := svc.List(ctx, "carol")
		require.NoError(t, err)
		require.NotNil(t, records)
		require.Empty(t, records)
	})
}

func TestFeedbackService(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := &FeedbackService{Store: newTestStore(t)}

	t.Run("stores duplicate submissions separately", func(t *testing.T) {
		first, err := svc.Add(ctx, "alice", "love the app")
		require.NoError(t, err)
		second, err := svc.Add(ctx, "alice", "love the app")
		require.NoError(t, err)
		require.NotEqual(t, first.ID, second.ID)
	})

	t.Run("rejects empty feedback", func(t *testing.T) {
		_, err := svc.Add(ctx, "alice", "")
		require.ErrorIs(t, err, ErrEmptyFeedback)
	})
}
