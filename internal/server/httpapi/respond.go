// Package httpapi is the HTTP transport boundary. Handlers decode JSON and
// multipart requests, call the services, and translate sentinel errors to
// status codes in exactly one place.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/meetscribe/meetscribe/internal/common"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a service error to a status code. The mapping lives here
// and nowhere else; handlers never pick status codes for service failures.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	detail := "internal server error"

	switch {
	case errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrTokenRevoked),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrWrongTokenType),
		errors.Is(err, common.ErrorUnauthorized):
		status = http.StatusUnauthorized
		detail = err.Error()
		w.Header().Set("WWW-Authenticate", "Bearer")
	case errors.Is(err, common.ErrorForbidden):
		status = http.StatusForbidden
		detail = err.Error()
	case errors.Is(err, common.ErrorNotFound):
		status = http.StatusNotFound
		detail = err.Error()
	case errors.Is(err, common.ErrorConflict),
		errors.Is(err, common.ErrNoSourceText),
		errors.Is(err, common.ErrSelfStatusChange):
		status = http.StatusBadRequest
		detail = err.Error()
	case errors.Is(err, common.ErrUpstreamFailure):
		status = http.StatusInternalServerError
		detail = common.ErrUpstreamFailure.Error()
	}

	writeJSON(w, status, errorResponse{Detail: detail})
}

// badRequest reports a malformed request (invalid JSON, missing file, bad
// query parameter). These never originate in the services.
func badRequest(w http.ResponseWriter, detail string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Detail: detail})
}
