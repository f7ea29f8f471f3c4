package http

import (
	"errors"
	"net/http"

	"github.com/dietlens/platescan/internal/scan/service"
	"github.com/dietlens/platescan/pkg/httpx"
	"github.com/dietlens/platescan/pkg/scanapi"
	"github.com/dietlens/platescan/pkg/slogx"
)

type RegisterHandler struct {
	UserService *service.UserService
}

// ServeHTTP handles account registration.
//
//	@Summary		Register a new account
//	@Description	Creates an account from username, display name, and password.
//	@Description	Usernames are unique; a taken username is rejected with 409.
//	@Tags			Auth
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			username	formData	string	true	"Unique username"
//	@Param			name		formData	string	true	"Display name"
//	@Param			password	formData	string	true	"Password"
//	@Success		201	{object}	scanapi.RegisterResponse
//	@Failure		400	{object}	scanapi.APIError	"Missing or malformed fields"
//	@Failure		409	{object}	scanapi.APIError	"Username already registered"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := r.ParseForm(); err != nil {
		scanapi.ErrInvalidRequest.WriteError(w)
		return
	}

	username := r.PostFormValue("username")
	name := r.PostFormValue("name")
	password := r.PostFormValue("password")

	user, err := h.UserService.Register(ctx, username, name, password)
	switch {
	case errors.Is(err, service.ErrInvalidRegistration):
		scanapi.ErrInvalidRequest.WithDescription("username, name, and password are required").WriteError(w)
		return
	case errors.Is(err, service.ErrUsernameAlreadyTaken):
		scanapi.ErrUsernameTaken.WriteError(w)
		return
	case err != nil:
		log.Error("registration failed", "err", err)
		scanapi.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, scanapi.RegisterResponse{
		Username: user.Username,
		Name:     user.Name,
	})
}
