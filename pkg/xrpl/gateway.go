// Package xrpl wraps the xrpl-go client behind the narrow gateway
// interface the services consume. Everything network- or
// crypto-related (autofill, signing, submit-and-wait, account queries)
// happens inside this package; the domain packages never touch the
// ledger client directly.
package xrpl

import (
	"context"

	"github.com/Peersyst/xrpl-go/xrpl/transaction"
	xrplwallet "github.com/Peersyst/xrpl-go/xrpl/wallet"
)

// SubmitResult reports the outcome of a validated submission.
type SubmitResult struct {
	// Hash is the transaction hash computed at signing time.
	Hash string `json:"hash"`

	// EngineResult is the ledger engine code, tesSUCCESS on success.
	EngineResult string `json:"engine_result"`

	// Validated reports whether the transaction made it into a
	// validated ledger.
	Validated bool `json:"validated"`
}

// AccountInfo is the subset of account_info this middleware surfaces.
type AccountInfo struct {
	Address      string `json:"address"`
	BalanceDrops uint64 `json:"balance_drops"`
	Sequence     uint32 `json:"sequence"`
}

// Roles an account can have relative to an MPT issuance.
const (
	RoleHolder = "holder"
	RoleIssuer = "issuer"
)

// MPTBalance is one MPT position of an account: either tokens held
// (Role "holder") or an issuance owned (Role "issuer").
type MPTBalance struct {
	IssuanceID string `json:"mpt_issuance_id"`
	Amount     string `json:"amount"`
	Role       string `json:"role"`
}

// TransactionSummary is one account_tx entry reduced to display fields.
type TransactionSummary struct {
	Hash            string `json:"hash"`
	TransactionType string `json:"transaction_type"`
	Account         string `json:"account"`
	Destination     string `json:"destination,omitempty"`
	Validated       bool   `json:"validated"`
}

// Gateway is the capability handle the services hold on the ledger. It
// is passed explicitly; there is no package-level client.
type Gateway interface {
	// Submit autofills, signs and submits a flattened transaction,
	// blocking until the network validates or rejects it. Failures are
	// reported as *SubmissionError carrying the stage that failed.
	Submit(ctx context.Context, tx transaction.FlatTransaction, signer xrplwallet.Wallet) (*SubmitResult, error)

	// AccountInfo fetches basic account state.
	AccountInfo(ctx context.Context, address string) (*AccountInfo, error)

	// MPTBalances lists the account's MPT holdings and issuances.
	MPTBalances(ctx context.Context, address string) ([]MPTBalance, error)

	// AccountTransactions lists the account's most recent transactions.
	AccountTransactions(ctx context.Context, address string, limit int) ([]TransactionSummary, error)
}
