// Package http provides HTTP utilities shared by the service handlers,
// including chi-compatible error handling.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/ledgerline/mpt-middleware/pkg/app/errors"
)

// HandlerFunc defines a handler that returns an error instead of
// writing error responses itself.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// HandleError wraps an error-returning HandlerFunc into a standard
// http.HandlerFunc.
//
// Usage with chi:
//
//	r.Post("/payments", apphttp.HandleError(h.submit))
func HandleError(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			DefaultErrorHandler(w, err)
		}
	}
}

// DefaultErrorHandler renders errors returned from HTTP handlers.
// ServiceError values keep their category's status code and message;
// anything else becomes an opaque 500.
func DefaultErrorHandler(w http.ResponseWriter, err error) {
	type errorResponse struct {
		ErrMsg     string `json:"error"`
		ErrMsgCode int    `json:"code"`
	}

	var svcErr *apperrors.ServiceError
	if errors.As(err, &svcErr) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(svcErr.StatusCode())
		_ = json.NewEncoder(w).Encode(&errorResponse{
			ErrMsg:     svcErr.Message,
			ErrMsgCode: svcErr.StatusCode(),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(&errorResponse{
		ErrMsg:     "Unexpected Service Error",
		ErrMsgCode: http.StatusInternalServerError,
	})
}
