package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/jwtx"
	"github.com/aussiebroadwan/todo/pkg/slogx"
	"github.com/aussiebroadwan/todo/pkg/todosdk"
	"github.com/aussiebroadwan/todo/pkg/validx"
)

// writeError maps service errors onto the wire. Anything unrecognised is
// logged and reported as a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *service.ValidationError

	switch {
	case errors.As(err, &ve):
		todosdk.NewValidationError(ve.Details).WriteError(w)
	case errors.Is(err, service.ErrValidation):
		todosdk.NewValidationError(nil).WriteError(w)
	case errors.Is(err, service.ErrDuplicateEmail):
		todosdk.ErrEmailTaken.WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		todosdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrUnauthenticated), errors.Is(err, jwtx.ErrInvalidToken):
		httpx.Unauthorized(w)
	case errors.Is(err, service.ErrNotFound):
		todosdk.ErrNotFound.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		todosdk.ErrServerError.WriteError(w)
	}
}

// decodeRequest reads and validates the body into dst. It writes the error
// response itself and reports whether the handler should continue.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := httpx.DecodeJSON(w, r, dst); err != nil {
		writeBadBody(w, r, err)
		return false
	}

	if err := validx.Struct(dst); err != nil {
		var fe validx.FieldErrors
		if errors.As(err, &fe) {
			todosdk.NewValidationError(fe).WriteError(w)
			return false
		}
		writeError(w, r, err)
		return false
	}
	return true
}

func writeBadBody(w http.ResponseWriter, r *http.Request, err error) {
	slogx.FromContext(r.Context()).Debug("bad request body", "err", err)
	todosdk.ErrInvalidRequest.WriteError(w)
}
