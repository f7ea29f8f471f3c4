package http

import (
	"errors"
	"net/http"

	"github.com/dietlens/platescan/internal/scan/service"
	"github.com/dietlens/platescan/internal/scan/store"
	"github.com/dietlens/platescan/pkg/httpx"
	"github.com/dietlens/platescan/pkg/scanapi"
	"github.com/dietlens/platescan/pkg/slogx"
)

type ProfileHandler struct {
	ProfileService *service.ProfileService
}

// ServeHTTP returns the caller's profile.
//
//	@Summary		Get profile
//	@Description	Returns the authenticated user's profile. Accounts without an
//	@Description	uploaded picture get the default one.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	scanapi.ProfileResponse
//	@Failure		401	{object}	scanapi.APIError	"Invalid or missing session token"
//	@Failure		404	{object}	scanapi.APIError	"Account no longer exists"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Router			/v1/profile [get].
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	username := httpx.UsernameFromContext(ctx)
	if username == "" {
		scanapi.ErrInvalidToken.WriteError(w)
		return
	}

	user, err := h.ProfileService.Get(ctx, username)
	switch {
	case errors.Is(err, store.ErrNotFound):
		// Valid token for an account that has since been removed.
		scanapi.ErrNotFound.WriteError(w)
		return
	case err != nil:
		log.Error("failed to load profile", "username", username, "err", err)
		scanapi.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, scanapi.ProfileResponse{
		Username:       user.Username,
		Name:           user.Name,
		ProfilePicture: user.Picture(),
	})
}
