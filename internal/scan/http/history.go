package http

import (
	"net/http"

	"github.com/dietlens/platescan/internal/scan/service"
	"github.com/dietlens/platescan/pkg/httpx"
	"github.com/dietlens/platescan/pkg/scanapi"
	"github.com/dietlens/platescan/pkg/slogx"
)

type HistoryHandler struct {
	HistoryService *service.HistoryService
}

// ServeHTTP lists the caller's scan history.
//
//	@Summary		List scan history
//	@Description	Returns every stored scan for the authenticated user, oldest
//	@Description	first. A user with no scans gets an empty list.
//	@Tags			Scans
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	scanapi.HistoryResponse
//	@Failure		401	{object}	scanapi.APIError	"Invalid or missing session token"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Router			/v1/history [get].
func (h *HistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	username := httpx.UsernameFromContext(ctx)
	if username == "" {
		scanapi.ErrInvalidToken.WriteError(w)
		return
	}

	records, err := h.HistoryService.List(ctx, username)
	if err != nil {
		log.Error("failed to list scan history", "username", username, "err", err)
		scanapi.ErrServerError.WriteError(w)
		return
	}

	entries := make([]scanapi.HistoryEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, scanapi.HistoryEntry{
			ID:        rec.ID,
			Result:    string(rec.Result),
			CreatedAt: rec.CreatedAt,
		})
	}

	httpx.WriteJSON(w, http.StatusOK, scanapi.HistoryResponse{Scans: entries})
}
