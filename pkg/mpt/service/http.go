package service

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/ledgerline/mpt-middleware/pkg/app/errors"
	apphttp "github.com/ledgerline/mpt-middleware/pkg/app/http"
	"github.com/ledgerline/mpt-middleware/pkg/mpt"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the issuance lifecycle endpoints on the
// given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Route("/mpt", func(r chi.Router) {
		r.Post("/issuances", apphttp.HandleError(h.create))
		r.Post("/issuances/destroy", apphttp.HandleError(h.destroy))
		r.Post("/authorizations", apphttp.HandleError(h.authorize))
	})
}

func (h *HTTP) create(w http.ResponseWriter, r *http.Request) error {
	var req CreateSubmitRequest
	if err := h.readRequest(r, &req); err != nil {
		return err
	}
	return h.respond(w, func() (*SubmitResponse, error) {
		return h.service.Create(r.Context(), &req)
	})
}

func (h *HTTP) authorize(w http.ResponseWriter, r *http.Request) error {
	var req AuthorizeSubmitRequest
	if err := h.readRequest(r, &req); err != nil {
		return err
	}
	return h.respond(w, func() (*SubmitResponse, error) {
		return h.service.Authorize(r.Context(), &req)
	})
}

func (h *HTTP) destroy(w http.ResponseWriter, r *http.Request) error {
	var req DestroySubmitRequest
	if err := h.readRequest(r, &req); err != nil {
		return err
	}
	return h.respond(w, func() (*SubmitResponse, error) {
		return h.service.Destroy(r.Context(), &req)
	})
}

// fieldErrorsBody is the 400 payload for failed form validation.
type fieldErrorsBody struct {
	Valid  bool                 `json:"valid"`
	Errors mpt.ValidationResult `json:"errors"`
}

func (h *HTTP) respond(w http.ResponseWriter, call func() (*SubmitResponse, error)) error {
	resp, err := call()
	if err != nil {
		var invalid *InvalidInputError
		if errors.As(err, &invalid) {
			h.writeJSON(w, http.StatusBadRequest, &fieldErrorsBody{Errors: invalid.Fields})
			return nil
		}
		return err
	}

	h.writeJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) readRequest(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20)) // 1MB limit
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	return nil
}

func (h *HTTP) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
