package http

import (
	"errors"
	"net/http"

	"github.com/dietlens/platescan/internal/scan/service"
	"github.com/dietlens/platescan/pkg/httpx"
	"github.com/dietlens/platescan/pkg/jwtx"
	"github.com/dietlens/platescan/pkg/scanapi"
	"github.com/dietlens/platescan/pkg/slogx"
)

type LoginHandler struct {
	UserService *service.UserService
	Signer      *jwtx.Signer
}

// ServeHTTP handles credential login.
//
//	@Summary		Log in
//	@Description	Exchanges username and password for a bearer session token.
//	@Description	Unknown users and wrong passwords get the same 401 response.
//	@Tags			Auth
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			username	formData	string	true	"Username"
//	@Param			password	formData	string	true	"Password"
//	@Success		200	{object}	scanapi.TokenResponse
//	@Failure		401	{object}	scanapi.APIError	"Invalid username or password"
//	@Failure		500	{object}	scanapi.APIError	"Internal server error"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := r.ParseForm(); err != nil {
		scanapi.ErrInvalidRequest.WriteError(w)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.UserService.Authenticate(ctx, username, password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		scanapi.ErrInvalidCredentials.WriteError(w)
		return
	case err != nil:
		log.Error("login failed", "err", err)
		scanapi.ErrServerError.WriteError(w)
		return
	}

	token, err := h.Signer.Sign(user.Username)
	if err != nil {
		log.Error("failed to sign session token", "err", err)
		scanapi.ErrServerError.WriteError(w)
		return
	}

	ttl := h.Signer.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, scanapi.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(ttl.Seconds()),
	})
}
