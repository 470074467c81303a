// Package service implements the MPT issuance lifecycle business
// logic: creating issuances, authorizing holders, and destroying
// issuances through the ledger gateway.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Peersyst/xrpl-go/xrpl/transaction"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ledgerline/mpt-middleware/internal/metrics"
	apperrors "github.com/ledgerline/mpt-middleware/pkg/app/errors"
	"github.com/ledgerline/mpt-middleware/pkg/mpt"
	"github.com/ledgerline/mpt-middleware/pkg/wallet"
	"github.com/ledgerline/mpt-middleware/pkg/xrpl"
)

// CreateSubmitRequest is the payload of POST /mpt/issuances.
type CreateSubmitRequest struct {
	Account string `json:"account"`
	mpt.CreateInput
}

// AuthorizeSubmitRequest is the payload of POST /mpt/authorizations.
type AuthorizeSubmitRequest struct {
	Account string `json:"account"`
	mpt.AuthorizeInput
}

// DestroySubmitRequest is the payload of POST /mpt/issuances/destroy.
type DestroySubmitRequest struct {
	Account string `json:"account"`
	mpt.DestroyInput
}

// SubmitResponse reports a validated issuance-lifecycle submission.
type SubmitResponse struct {
	CorrelationID   string `json:"correlation_id"`
	TransactionType string `json:"transaction_type"`
	Hash            string `json:"hash"`
	EngineResult    string `json:"engine_result"`
	Validated       bool   `json:"validated"`
}

// InvalidInputError carries field-level validation messages out of the
// lifecycle operations so the HTTP layer can render them.
type InvalidInputError struct {
	Fields mpt.ValidationResult
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("issuance input failed validation (%d field(s))", len(e.Fields))
}

// Service defines the issuance lifecycle business logic.
type Service interface {
	Create(ctx context.Context, req *CreateSubmitRequest) (*SubmitResponse, error)
	Authorize(ctx context.Context, req *AuthorizeSubmitRequest) (*SubmitResponse, error)
	Destroy(ctx context.Context, req *DestroySubmitRequest) (*SubmitResponse, error)
}

type mptService struct {
	gateway xrpl.Gateway
	vault   *wallet.Vault
	logger  *zap.Logger
}

// NewService creates a new issuance lifecycle service.
func NewService(gateway xrpl.Gateway, vault *wallet.Vault, logger *zap.Logger) Service {
	return &mptService{
		gateway: gateway,
		vault:   vault,
		logger:  logger,
	}
}

func (s *mptService) Create(ctx context.Context, req *CreateSubmitRequest) (*SubmitResponse, error) {
	result := mpt.ValidateCreate(req.CreateInput, req.Account != "")
	return s.submit(ctx, "issuance_create", req.Account, result, func() transaction.FlatTransaction {
		return xrpl.FlattenIssuanceCreate(mpt.BuildCreate(req.CreateInput, req.Account))
	})
}

func (s *mptService) Authorize(ctx context.Context, req *AuthorizeSubmitRequest) (*SubmitResponse, error) {
	result := mpt.ValidateAuthorize(req.AuthorizeInput, req.Account != "")
	return s.submit(ctx, "authorize", req.Account, result, func() transaction.FlatTransaction {
		return xrpl.FlattenIssuanceAuthorize(mpt.BuildAuthorize(req.AuthorizeInput, req.Account))
	})
}

func (s *mptService) Destroy(ctx context.Context, req *DestroySubmitRequest) (*SubmitResponse, error) {
	result := mpt.ValidateDestroy(req.DestroyInput, req.Account != "")
	return s.submit(ctx, "issuance_destroy", req.Account, result, func() transaction.FlatTransaction {
		return xrpl.FlattenIssuanceDestroy(mpt.BuildDestroy(req.DestroyInput, req.Account))
	})
}

// submit is the shared validate-build-submit path of the lifecycle
// operations. flatten is only invoked once the input passed validation.
func (s *mptService) submit(
	ctx context.Context,
	kind string,
	account string,
	result mpt.ValidationResult,
	flatten func() transaction.FlatTransaction,
) (*SubmitResponse, error) {
	correlationID := uuid.NewString()

	if account != "" && !s.vault.Has(account) {
		return nil, apperrors.ResourceNotFoundError(nil, "unknown account")
	}

	if !result.Valid() {
		for field := range result {
			metrics.ValidationFailures.WithLabelValues(kind, field).Inc()
		}
		return nil, &InvalidInputError{Fields: result}
	}

	signer, ok := s.vault.Lookup(account)
	if !ok {
		return nil, apperrors.ResourceNotFoundError(nil, "unknown account")
	}

	flat := flatten()

	start := time.Now()
	res, err := s.gateway.Submit(ctx, flat, signer)
	metrics.SubmissionDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SubmissionsTotal.WithLabelValues(kind, "error").Inc()
		if code := xrpl.EngineResultFromError(err); code != "" {
			metrics.EngineResults.WithLabelValues(code).Inc()
		}
		s.logger.Warn("issuance submission failed",
			zap.String("correlation_id", correlationID),
			zap.String("kind", kind),
			zap.Error(err))
		return nil, xrpl.ClassifyError(err)
	}

	metrics.SubmissionsTotal.WithLabelValues(kind, "success").Inc()

	txType, _ := flat["TransactionType"].(string)
	return &SubmitResponse{
		CorrelationID:   correlationID,
		TransactionType: txType,
		Hash:            res.Hash,
		EngineResult:    res.EngineResult,
		Validated:       res.Validated,
	}, nil
}
