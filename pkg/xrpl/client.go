package xrpl

import (
	"context"
	"fmt"

	"github.com/Peersyst/xrpl-go/xrpl/faucet"
	"github.com/Peersyst/xrpl-go/xrpl/queries/account"
	"github.com/Peersyst/xrpl-go/xrpl/transaction"
	"github.com/Peersyst/xrpl-go/xrpl/transaction/types"
	xrplwallet "github.com/Peersyst/xrpl-go/xrpl/wallet"
	"github.com/Peersyst/xrpl-go/xrpl/websocket"
	"go.uber.org/zap"

	"github.com/ledgerline/mpt-middleware/pkg/config"
)

// Client is the websocket-backed Gateway implementation.
type Client struct {
	ws     *websocket.Client
	cfg    *config.XRPLConfig
	logger *zap.Logger
}

var _ Gateway = (*Client)(nil)

// NewClient builds a ledger client for the configured node. The client
// does not connect until Connect is called.
func NewClient(cfg *config.XRPLConfig, logger *zap.Logger) *Client {
	wsCfg := websocket.NewClientConfig().WithHost(cfg.WebsocketURL)
	if cfg.FaucetFunding {
		switch cfg.Network {
		case "testnet":
			wsCfg = wsCfg.WithFaucetProvider(faucet.NewTestnetFaucetProvider())
		default:
			wsCfg = wsCfg.WithFaucetProvider(faucet.NewDevnetFaucetProvider())
		}
	}

	return &Client{
		ws:     websocket.NewClient(wsCfg),
		cfg:    cfg,
		logger: logger,
	}
}

// Connect opens the websocket session to the configured node.
func (c *Client) Connect() error {
	if err := c.ws.Connect(); err != nil {
		return fmt.Errorf("failed to connect to %s: %w", c.cfg.WebsocketURL, err)
	}
	c.logger.Info("connected to ledger node",
		zap.String("url", c.cfg.WebsocketURL),
		zap.String("network", c.cfg.Network))
	return nil
}

// Close tears down the websocket session.
func (c *Client) Close() error {
	return c.ws.Disconnect()
}

// FundWallet tops up an account from the network faucet. Only valid
// when faucet funding is enabled in the configuration.
func (c *Client) FundWallet(w *xrplwallet.Wallet) error {
	if !c.cfg.FaucetFunding {
		return fmt.Errorf("faucet funding is disabled for network %s", c.cfg.Network)
	}
	return c.ws.FundWallet(w)
}

// submitContext derives the configured per-submission deadline from
// the request context. A zero SubmitTimeout leaves the context as-is.
func (c *Client) submitContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.SubmitTimeout > 0 {
		return context.WithTimeout(ctx, c.cfg.SubmitTimeout)
	}
	return ctx, func() {}
}

// Submit autofills, signs, and submits a transaction, waiting for it to
// be included in a validated ledger. The round trip is bounded by the
// configured submit timeout. Failures are wrapped in a SubmissionError
// tagged with the stage that produced them.
func (c *Client) Submit(ctx context.Context, tx transaction.FlatTransaction, signer xrplwallet.Wallet) (*SubmitResult, error) {
	ctx, cancel := c.submitContext(ctx)
	defer cancel()

	if err := ctx.Err(); err != nil {
		return nil, &SubmissionError{Stage: StageSubmit, Err: err}
	}

	if err := c.ws.Autofill(&tx); err != nil {
		return nil, &SubmissionError{Stage: StageAutofill, Err: err}
	}

	if err := ctx.Err(); err != nil {
		return nil, &SubmissionError{Stage: StageSubmit, Err: err}
	}

	blob, hash, err := signer.Sign(tx)
	if err != nil {
		return nil, &SubmissionError{Stage: StageSign, Err: err}
	}

	res, err := c.ws.SubmitTxBlobAndWait(blob, false)
	if err != nil {
		return nil, &SubmissionError{
			Stage:        StageSubmit,
			EngineResult: EngineResultFromError(err),
			Err:          err,
		}
	}

	c.logger.Debug("transaction validated", zap.String("hash", hash))

	// SubmitTxBlobAndWait only returns once the transaction made it
	// into a validated ledger with a successful engine result.
	return &SubmitResult{
		Hash:         hash,
		EngineResult: "tesSUCCESS",
		Validated:    res.Validated,
	}, nil
}

// AccountInfo returns the XRP balance and sequence of an account.
func (c *Client) AccountInfo(ctx context.Context, address string) (*AccountInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := c.ws.GetAccountInfo(&account.InfoRequest{
		Account: types.Address(address),
	})
	if err != nil {
		return nil, fmt.Errorf("account_info %s: %w", address, err)
	}

	return &AccountInfo{
		Address:      address,
		BalanceDrops: uint64(resp.AccountData.Balance),
		Sequence:     resp.AccountData.Sequence,
	}, nil
}

// MPTBalances lists the MPT positions of an account: issuances it holds
// and issuances it created.
func (c *Client) MPTBalances(ctx context.Context, address string) ([]MPTBalance, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := c.ws.GetAccountObjects(&account.ObjectsRequest{
		Account: types.Address(address),
	})
	if err != nil {
		return nil, fmt.Errorf("account_objects %s: %w", address, err)
	}

	balances := make([]MPTBalance, 0, len(resp.AccountObjects))
	for _, obj := range resp.AccountObjects {
		switch objString(obj, "LedgerEntryType") {
		case "MPToken":
			balances = append(balances, MPTBalance{
				IssuanceID: objString(obj, "MPTokenIssuanceID"),
				Amount:     objString(obj, "MPTAmount"),
				Role:       RoleHolder,
			})
		case "MPTokenIssuance":
			balances = append(balances, MPTBalance{
				IssuanceID: objString(obj, "mpt_issuance_id"),
				Amount:     objString(obj, "OutstandingAmount"),
				Role:       RoleIssuer,
			})
		}
	}
	return balances, nil
}

// AccountTransactions returns the most recent transactions touching an
// account, newest first.
func (c *Client) AccountTransactions(ctx context.Context, address string, limit int) ([]TransactionSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := c.ws.GetAccountTransactions(&account.TransactionsRequest{
		Account: types.Address(address),
		Limit:   limit,
	})
	if err != nil {
		return nil, fmt.Errorf("account_tx %s: %w", address, err)
	}

	summaries := make([]TransactionSummary, 0, len(resp.Transactions))
	for _, entry := range resp.Transactions {
		summaries = append(summaries, transactionSummary(entry))
	}
	return summaries, nil
}

// transactionSummary reduces one account_tx entry to display fields.
// The hash lives at the entry level of the response, not inside the
// transaction body.
func transactionSummary(entry account.Transaction) TransactionSummary {
	return TransactionSummary{
		Hash:            string(entry.Hash),
		TransactionType: objString(entry.Tx, "TransactionType"),
		Account:         objString(entry.Tx, "Account"),
		Destination:     objString(entry.Tx, "Destination"),
		Validated:       entry.Validated,
	}
}

// objString reads a string field from a map-shaped ledger object,
// returning "" when absent or of another type.
func objString(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}
