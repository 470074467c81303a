package xrpl

import (
	"context"
	"testing"
	"time"

	"github.com/Peersyst/xrpl-go/xrpl/queries/account"
	"go.uber.org/zap"

	"github.com/ledgerline/mpt-middleware/pkg/config"
)

const testTxHash = "E3FE6EA3D48F0C2B639448020EA4F16D4F4F8F077DB03CE31572BAAA25C8D9A1"

func TestTransactionSummaryReadsEntryLevelHash(t *testing.T) {
	entry := account.Transaction{
		Hash:      testTxHash,
		Validated: true,
		Tx: map[string]any{
			"TransactionType": "Payment",
			"Account":         "rSourceAddress1234567890abcdefgh",
			"Destination":     "rDestinationAddress1234567890ABCD",
		},
	}

	got := transactionSummary(entry)

	if got.Hash != testTxHash {
		t.Fatalf("Hash = %q, want %q", got.Hash, testTxHash)
	}
	if got.TransactionType != "Payment" {
		t.Fatalf("TransactionType = %q", got.TransactionType)
	}
	if got.Account != "rSourceAddress1234567890abcdefgh" {
		t.Fatalf("Account = %q", got.Account)
	}
	if got.Destination != "rDestinationAddress1234567890ABCD" {
		t.Fatalf("Destination = %q", got.Destination)
	}
	if !got.Validated {
		t.Fatal("Validated lost in mapping")
	}
}

func TestTransactionSummaryWithoutDestination(t *testing.T) {
	entry := account.Transaction{
		Hash: testTxHash,
		Tx: map[string]any{
			"TransactionType": "MPTokenIssuanceCreate",
			"Account":         "rSourceAddress1234567890abcdefgh",
		},
	}

	got := transactionSummary(entry)

	if got.Destination != "" {
		t.Fatalf("Destination = %q, want empty", got.Destination)
	}
	if got.Hash != testTxHash {
		t.Fatalf("Hash = %q", got.Hash)
	}
}

func TestSubmitContextAppliesConfiguredTimeout(t *testing.T) {
	client := NewClient(&config.XRPLConfig{
		WebsocketURL:  "wss://example.invalid:51233",
		SubmitTimeout: 5 * time.Second,
	}, zap.NewNop())

	ctx, cancel := client.submitContext(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatal("expected a deadline from the configured submit timeout")
	}
	if remaining := time.Until(deadline); remaining <= 0 || remaining > 5*time.Second {
		t.Fatalf("deadline %v out of expected range", remaining)
	}
}

func TestSubmitContextWithoutTimeout(t *testing.T) {
	client := NewClient(&config.XRPLConfig{
		WebsocketURL: "wss://example.invalid:51233",
	}, zap.NewNop())

	ctx, cancel := client.submitContext(context.Background())
	defer cancel()

	if _, ok := ctx.Deadline(); ok {
		t.Fatal("no deadline expected when submit timeout is zero")
	}
}
