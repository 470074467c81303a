// Package service exposes the read side of the middleware: the vault
// account list and per-account ledger state (XRP balance, MPT
// positions, recent transactions).
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/ledgerline/mpt-middleware/internal/metrics"
	apperrors "github.com/ledgerline/mpt-middleware/pkg/app/errors"
	"github.com/ledgerline/mpt-middleware/pkg/wallet"
	"github.com/ledgerline/mpt-middleware/pkg/xrpl"
)

const (
	// DefaultTransactionLimit bounds account_tx pages when the client
	// does not ask for a specific size.
	DefaultTransactionLimit = 20

	// MaxTransactionLimit caps client-requested page sizes.
	MaxTransactionLimit = 200
)

// Account is one vault entry as listed by GET /accounts.
type Account struct {
	Address string `json:"address"`

	// Peers are the other vault addresses, offered as destination
	// choices when paying from this account.
	Peers []string `json:"peers"`
}

// BalancesResponse combines basic account state with MPT positions.
type BalancesResponse struct {
	Account  xrpl.AccountInfo  `json:"account"`
	Balances []xrpl.MPTBalance `json:"balances"`
}

// Service defines the account read operations.
type Service interface {
	// List returns the vault accounts in configuration order.
	List(ctx context.Context) ([]Account, error)

	// Balances fetches the XRP balance and MPT positions of a vault
	// account.
	Balances(ctx context.Context, address string) (*BalancesResponse, error)

	// Transactions lists the most recent transactions of a vault
	// account, newest first.
	Transactions(ctx context.Context, address string, limit int) ([]xrpl.TransactionSummary, error)
}

type accountService struct {
	gateway xrpl.Gateway
	vault   *wallet.Vault
	logger  *zap.Logger
}

// NewService creates a new account service.
func NewService(gateway xrpl.Gateway, vault *wallet.Vault, logger *zap.Logger) Service {
	return &accountService{
		gateway: gateway,
		vault:   vault,
		logger:  logger,
	}
}

func (s *accountService) List(context.Context) ([]Account, error) {
	addrs := s.vault.Addresses()
	accounts := make([]Account, 0, len(addrs))
	for _, addr := range addrs {
		accounts = append(accounts, Account{
			Address: addr,
			Peers:   s.vault.Peers(addr),
		})
	}
	return accounts, nil
}

func (s *accountService) Balances(ctx context.Context, address string) (*BalancesResponse, error) {
	if !s.vault.Has(address) {
		return nil, apperrors.ResourceNotFoundError(nil, "unknown account")
	}

	info, err := s.gateway.AccountInfo(ctx, address)
	if err != nil {
		metrics.LedgerRequests.WithLabelValues("account_info", "error").Inc()
		return nil, xrpl.ClassifyError(err)
	}
	metrics.LedgerRequests.WithLabelValues("account_info", "success").Inc()

	balances, err := s.gateway.MPTBalances(ctx, address)
	if err != nil {
		metrics.LedgerRequests.WithLabelValues("account_objects", "error").Inc()
		return nil, xrpl.ClassifyError(err)
	}
	metrics.LedgerRequests.WithLabelValues("account_objects", "success").Inc()

	return &BalancesResponse{
		Account:  *info,
		Balances: balances,
	}, nil
}

func (s *accountService) Transactions(ctx context.Context, address string, limit int) ([]xrpl.TransactionSummary, error) {
	if !s.vault.Has(address) {
		return nil, apperrors.ResourceNotFoundError(nil, "unknown account")
	}

	if limit <= 0 {
		limit = DefaultTransactionLimit
	}
	if limit > MaxTransactionLimit {
		limit = MaxTransactionLimit
	}

	txs, err := s.gateway.AccountTransactions(ctx, address, limit)
	if err != nil {
		metrics.LedgerRequests.WithLabelValues("account_tx", "error").Inc()
		return nil, xrpl.ClassifyError(err)
	}
	metrics.LedgerRequests.WithLabelValues("account_tx", "success").Inc()

	return txs, nil
}
