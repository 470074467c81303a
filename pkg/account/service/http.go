package service

import (
	"encoding/json"
	"net/http"
	"strconv"

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

// RegisterRoutes registers the account endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Route("/accounts", func(r chi.Router) {
		r.Get("/", apphttp.HandleError(h.list))
		r.Get("/{address}/balances", apphttp.HandleError(h.balances))
		r.Get("/{address}/transactions", apphttp.HandleError(h.transactions))
	})
}

func (h *HTTP) list(w http.ResponseWriter, r *http.Request) error {
	accounts, err := h.service.List(r.Context())
	if err != nil {
		return err
	}

	h.writeJSON(w, http.StatusOK, accounts)
	return nil
}

func (h *HTTP) balances(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.Balances(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		return err
	}

	h.writeJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) transactions(w http.ResponseWriter, r *http.Request) error {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return apperrors.BadRequestError(err, "limit must be a non-negative integer")
		}
		limit = parsed
	}

	txs, err := h.service.Transactions(r.Context(), chi.URLParam(r, "address"), limit)
	if err != nil {
		return err
	}

	h.writeJSON(w, http.StatusOK, txs)
	return nil
}

func (h *HTTP) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
