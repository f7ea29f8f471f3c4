package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/dietlens/platescan/internal/scan/service"
	"github.com/dietlens/platescan/internal/scan/store"
	"github.com/dietlens/platescan/pkg/httpx"
	"github.com/dietlens/platescan/pkg/scanapi"
	"github.com/dietlens/platescan/pkg/slogx"
)

// maxPictureUploadBytes bounds profile picture uploads.
const maxPictureUploadBytes = 5 << 20 // 5 MiB

type ProfilePictureHandler struct {
	ProfileService *service.ProfileService
}

// ServeHTTP replaces the caller's profile picture.
//
//	@Summary		Update profile picture
//	@Description	Uploads a new profile picture and points the profile at it.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Accept			mpfd
//	@Produce		json
//	@Param			picture	formData	file	true	"Picture file"
//	@Success		200	{object}	scanapi.ProfilePictureResponse
//	@Failure		400	{object}	scanapi.APIError	"No picture provided"
//	@Failure		401	{object}	scanapi.APIError	"Invalid or missing session token"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Router			/v1/profile/picture [put].
func (h *ProfilePictureHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	username := httpx.UsernameFromContext(ctx)
	if username == "" {
		scanapi.ErrInvalidToken.WriteError(w)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPictureUploadBytes)
	if err := r.ParseMultipartForm(maxPictureUploadBytes); err != nil {
		scanapi.ErrInvalidRequest.WithDescription("expected a multipart form with a picture file").WriteError(w)
		return
	}

	file, header, err := r.FormFile("picture")
	if err != nil {
		scanapi.ErrNoImage.WithDescription("a picture file is required").WriteError(w)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		scanapi.ErrInvalidRequest.WriteError(w)
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	ref, err := h.ProfileService.UpdatePicture(ctx, username, header.Filename, mimeType, data)
	switch {
	case errors.Is(err, service.ErrNoImage):
		scanapi.ErrNoImage.WithDescription("a picture file is required").WriteError(w)
		return
	case errors.Is(err, store.ErrNotFound):
		scanapi.ErrNotFound.WriteError(w)
		return
	case err != nil:
		log.Error("failed to update profile picture", "username", username, "err", err)
		scanapi.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, scanapi.ProfilePictureResponse{
		ProfilePicture: ref,
	})
}
