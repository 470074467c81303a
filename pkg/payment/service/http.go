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
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the payment endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Post("/payments", apphttp.HandleError(h.send))
	r.Post("/payments/validate", apphttp.HandleError(h.validate))
}

func (h *HTTP) send(w http.ResponseWriter, r *http.Request) error {
	req, err := h.readRequest(r)
	if err != nil {
		return err
	}

	resp, err := h.service.Send(r.Context(), req)
	if err != nil {
		var invalid *InvalidInputError
		if errors.As(err, &invalid) {
			// Field errors are a form outcome, not a server fault.
			h.writeJSON(w, http.StatusBadRequest, &ValidateResponse{
				Valid:  false,
				Errors: invalid.Fields,
			})
			return nil
		}
		return err
	}

	h.writeJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) validate(w http.ResponseWriter, r *http.Request) error {
	req, err := h.readRequest(r)
	if err != nil {
		return err
	}

	resp, err := h.service.Validate(r.Context(), req)
	if err != nil {
		return err
	}

	h.writeJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) readRequest(r *http.Request) (*SubmitRequest, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20)) // 1MB limit
	if err != nil {
		return nil, apperrors.BadRequestError(err, "failed to read request")
	}

	var req SubmitRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, apperrors.BadRequestError(err, "invalid JSON")
	}
	return &req, nil
}

func (h *HTTP) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
