package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dietlens/platescan/internal/scan/domain"
	"github.com/dietlens/platescan/internal/scan/store"
	"github.com/dietlens/platescan/internal/scan/vision"
	"github.com/dietlens/platescan/pkg/slogx"
)

var (
	ErrNoImage  = errors.New("no image provided")
	ErrUpstream = errors.New("image analysis unavailable")
)

// foodInstruction steers the model toward structured food detection. The
// per-request prompt from the user is sent alongside it, never instead
// of it.
const foodInstruction = "You have to identify different types of food in images. " +
	"The system should accurately detect and label various foods displayed " +
	"in the image, providing the name of the food and its location within " +
	"the image (e.g., bottom left, right corner, etc.). The output should " +
	"include a comprehensive report or display showing the identified foods, " +
	"their positions, names, and corresponding dietary details."

// ScanService analyzes meal photos through a vision model and records
// successful results in the caller's history.
type ScanService struct {
	Store  store.Store
	Vision vision.Client
}

// Scan submits the image and prompt for analysis. The result is written
// to username's history only when the model produced one; failed scans
// leave history untouched.
func (s *ScanService) Scan(
	ctx context.Context,
	username, prompt string,
	img vision.Image,
) (domain.ScanRecord, error) {
	log := slogx.FromContext(ctx)

	if len(img.Data) == 0 {
		return domain.ScanRecord{}, ErrNoImage
	}

	text, err := s.Vision.Describe(ctx, foodInstruction, prompt, img)
	if err != nil {
		log.Error("vision request failed",
			slog.String("username", username),
			slog.Any("error", err),
		)
		return domain.ScanRecord{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	record, err := s.Store.Scans().AddScan(ctx, username, domain.ScanResult(text))
	if err != nil {
		log.Error("failed to record scan result",
			slog.String("username", username),
			slog.Any("error", err),
		)
		return domain.ScanRecord{}, err
	}

	log.Info("scan completed",
		slog.String("username", username),
		slog.Int64("scan_id", record.ID),
	)
	return record, nil
}
