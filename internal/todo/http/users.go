package http

import (
	"net/http"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/todosdk"
)

type UsersHandler struct {
	UserService *service.UserService
}

func toUser(u domain.User) todosdk.UserResponse {
	return todosdk.UserResponse{ID: u.ID, Email: u.Email}
}

// HandleRegister creates an account and signs it in.
//
//	@Summary		Register
//	@Description	Creates an account and returns it. The new session token is in the X-Auth response header.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		todosdk.CredentialsRequest	true	"Email and password"
//	@Success		200		{object}	todosdk.UserResponse		"The new user"
//	@Header			200		{string}	X-Auth						"Session token"
//	@Failure		400		{object}	todosdk.ErrorResponse		"Invalid body or email already registered"
//	@Failure		429		{object}	todosdk.ErrorResponse		"Rate limit exceeded"
//	@Router			/users [post].
func (h *UsersHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req todosdk.CredentialsRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	u, token, err := h.UserService.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set(httpx.AuthHeader, token)
	httpx.WriteJSON(w, http.StatusOK, toUser(u))
}

// HandleLogin signs in with email and password.
//
//	@Summary		Login
//	@Description	Verifies credentials and starts a new session. The token is in the X-Auth response header.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		todosdk.CredentialsRequest	true	"Email and password"
//	@Success		200		{object}	todosdk.UserResponse		"The user"
//	@Header			200		{string}	X-Auth						"Session token"
//	@Failure		400		{object}	todosdk.ErrorResponse		"Invalid body or credentials"
//	@Failure		429		{object}	todosdk.ErrorResponse		"Rate limit exceeded"
//	@Router			/users/login [post].
func (h *UsersHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req todosdk.CredentialsRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	u, token, err := h.UserService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set(httpx.AuthHeader, token)
	httpx.WriteJSON(w, http.StatusOK, toUser(u))
}

// HandleMe returns the signed in user.
//
//	@Summary		Current user
//	@Tags			Users
//	@Security		XAuth
//	@Produce		json
//	@Success		200	{object}	todosdk.UserResponse	"The user"
//	@Failure		401	"Missing, invalid or revoked token"
//	@Router			/users/me [get].
func (h *UsersHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	u, ok := userFromContext(r.Context())
	if !ok {
		httpx.Unauthorized(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUser(u))
}

// HandleLogout revokes the token the request was made with.
//
//	@Summary		Logout
//	@Tags			Users
//	@Security		XAuth
//	@Success		200	"Token revoked"
//	@Failure		401	"Missing, invalid or revoked token"
//	@Router			/users/me/token [delete].
func (h *UsersHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.UserService.RemoveToken(ctx, httpx.UserID(ctx), httpx.Token(ctx)); err != nil {
		writeError(w, r, err)
		return
	}

	httpx.NoCache(w)
	w.WriteHeader(http.StatusOK)
}
