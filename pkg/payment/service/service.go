// Package service implements the payment business logic: validating
// form input, building the canonical payment record, and handing it to
// the ledger gateway for signing and submission.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ledgerline/mpt-middleware/internal/metrics"
	apperrors "github.com/ledgerline/mpt-middleware/pkg/app/errors"
	"github.com/ledgerline/mpt-middleware/pkg/payment"
	"github.com/ledgerline/mpt-middleware/pkg/wallet"
	"github.com/ledgerline/mpt-middleware/pkg/xrpl"
)

const metricKind = "payment"

// SubmitRequest is the payload of the payment endpoints: the vault
// account paying, plus the raw form input.
type SubmitRequest struct {
	Account string `json:"account"`
	payment.Input
}

// ValidateResponse reports the outcome of a dry-run validation. When
// the input is valid, Request previews the transaction that a send
// would submit.
type ValidateResponse struct {
	Valid   bool                     `json:"valid"`
	Errors  payment.ValidationResult `json:"errors,omitempty"`
	Request *payment.Request         `json:"request,omitempty"`
}

// SendResponse reports a validated submission.
type SendResponse struct {
	CorrelationID string          `json:"correlation_id"`
	Hash          string          `json:"hash"`
	EngineResult  string          `json:"engine_result"`
	Validated     bool            `json:"validated"`
	Request       payment.Request `json:"request"`
}

// InvalidInputError carries field-level validation messages out of
// Send so the HTTP layer can render them.
type InvalidInputError struct {
	Fields payment.ValidationResult
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("payment input failed validation (%d field(s))", len(e.Fields))
}

// Service defines the payment business logic.
type Service interface {
	// Validate dry-runs the form rules without touching the ledger.
	Validate(ctx context.Context, req *SubmitRequest) (*ValidateResponse, error)

	// Send validates, builds, signs and submits a payment, blocking
	// until the ledger validates or rejects it. Invalid input is
	// reported as *InvalidInputError.
	Send(ctx context.Context, req *SubmitRequest) (*SendResponse, error)
}

type paymentService struct {
	gateway xrpl.Gateway
	vault   *wallet.Vault
	logger  *zap.Logger
}

// NewService creates a new payment service.
func NewService(gateway xrpl.Gateway, vault *wallet.Vault, logger *zap.Logger) Service {
	return &paymentService{
		gateway: gateway,
		vault:   vault,
		logger:  logger,
	}
}

func (s *paymentService) Validate(_ context.Context, req *SubmitRequest) (*ValidateResponse, error) {
	if err := s.checkAccount(req.Account); err != nil {
		return nil, err
	}

	result := payment.Validate(req.Input, req.Account != "")
	if !result.Valid() {
		countValidationFailures(result)
		return &ValidateResponse{Valid: false, Errors: result}, nil
	}

	preview := payment.Build(req.Input, req.Account)
	return &ValidateResponse{Valid: true, Request: &preview}, nil
}

func (s *paymentService) Send(ctx context.Context, req *SubmitRequest) (*SendResponse, error) {
	correlationID := uuid.NewString()

	if err := s.checkAccount(req.Account); err != nil {
		return nil, err
	}
	if req.Account == "" {
		return nil, apperrors.BadRequestError(nil, "no source account selected")
	}

	result := payment.Validate(req.Input, true)
	if !result.Valid() {
		countValidationFailures(result)
		return nil, &InvalidInputError{Fields: result}
	}

	built := payment.Build(req.Input, req.Account)
	signer, ok := s.vault.Lookup(req.Account)
	if !ok {
		return nil, apperrors.ResourceNotFoundError(nil, "unknown account")
	}

	start := time.Now()
	res, err := s.gateway.Submit(ctx, xrpl.FlattenPayment(built), signer)
	metrics.SubmissionDuration.WithLabelValues(metricKind).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SubmissionsTotal.WithLabelValues(metricKind, "error").Inc()
		if code := xrpl.EngineResultFromError(err); code != "" {
			metrics.EngineResults.WithLabelValues(code).Inc()
		}
		s.logger.Warn("payment submission failed",
			zap.String("correlation_id", correlationID),
			zap.Error(err))
		return nil, xrpl.ClassifyError(err)
	}

	metrics.SubmissionsTotal.WithLabelValues(metricKind, "success").Inc()

	return &SendResponse{
		CorrelationID: correlationID,
		Hash:          res.Hash,
		EngineResult:  res.EngineResult,
		Validated:     res.Validated,
		Request:       built,
	}, nil
}

// checkAccount rejects a non-empty account that the vault does not
// hold. An empty account is left to the form rules, which report it as
// a field error rather than a lookup failure.
func (s *paymentService) checkAccount(account string) error {
	if account != "" && !s.vault.Has(account) {
		return apperrors.ResourceNotFoundError(nil, "unknown account")
	}
	return nil
}

func countValidationFailures(result payment.ValidationResult) {
	for field := range result {
		metrics.ValidationFailures.WithLabelValues(metricKind, field).Inc()
	}
}
