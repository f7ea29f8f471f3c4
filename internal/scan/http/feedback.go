package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dietlens/platescan/internal/scan/service"
	"github.com/dietlens/platescan/pkg/httpx"
	"github.com/dietlens/platescan/pkg/scanapi"
	"github.com/dietlens/platescan/pkg/slogx"
)

type FeedbackHandler struct {
	FeedbackService *service.FeedbackService
}

type feedbackRequest struct {
	Feedback string `json:"feedback"`
}

// ServeHTTP records feedback from the caller.
//
//	@Summary		Submit feedback
//	@Description	Stores a free-form feedback entry for the authenticated user.
//	@Description	Repeat submissions are kept as separate entries.
//	@Tags			Feedback
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		feedbackRequest	true	"Feedback text"
//	@Success		201	{object}	scanapi.FeedbackResponse
//	@Failure		400	{object}	scanapi.APIError	"Empty or malformed body"
//	@Failure		401	{object}	scanapi.APIError	"Invalid or missing session token"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Router			/v1/feedback [post].
func (h *FeedbackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	username := httpx.UsernameFromContext(ctx)
	if username == "" {
		scanapi.ErrInvalidToken.WriteError(w)
		return
	}

	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		scanapi.ErrInvalidRequest.WithDescription("expected a JSON body with a feedback field").WriteError(w)
		return
	}

	record, err := h.FeedbackService.Add(ctx, username, req.Feedback)
	switch {
	case errors.Is(err, service.ErrEmptyFeedback):
		scanapi.ErrInvalidRequest.WithDescription("feedback must not be empty").WriteError(w)
		return
	case err != nil:
		log.Error("failed to store feedback", "username", username, "err", err)
		scanapi.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, scanapi.FeedbackResponse{
		ID:        record.ID,
		CreatedAt: record.CreatedAt,
	})
}
