// Package payment contains the MPT payment model: the raw form input
// supplied by the presentation layer, the per-field validation result,
// and the canonical immutable payment request handed to the ledger
// gateway for signing and submission.
package payment

// Transaction kind tag and the fixed fee (in drops) this middleware
// attaches to every MPT payment. The fee is deliberately static; fee
// escalation is out of scope for a demo transfer.
const (
	TransactionTypePayment = "Payment"
	FeeDrops               = "120"
)

// Form field identifiers, used as keys in ValidationResult.
const (
	FieldAccount        = "account"
	FieldTokenID        = "token_id"
	FieldAmount         = "amount"
	FieldDestination    = "destination"
	FieldDestinationTag = "destination_tag"
	FieldInvoiceID      = "invoice_id"
)

// Input is the raw, string-typed form state for a token transfer as the
// presentation layer collects it. Nothing here is trusted; Validate
// decides whether an Input can become a Request.
type Input struct {
	// TokenID is the MPT issuance identifier of the token being sent.
	TokenID string `json:"token_id" validate:"required"`

	// Amount is the string-encoded decimal quantity to deliver.
	Amount string `json:"amount" validate:"required,positivedecimal"`

	// Destination is the classic address of the receiving account.
	Destination string `json:"destination" validate:"required,xrpladdress"`

	// DestinationTag is an optional routing hint for hosted wallets.
	DestinationTag string `json:"destination_tag" validate:"omitempty,uint32str"`

	// InvoiceID is an optional 64-hex correlation identifier.
	InvoiceID string `json:"invoice_id" validate:"omitempty,hex64"`
}

// ValidationResult maps a form field to a human-readable error message.
// An empty result means the input is safe to build.
type ValidationResult map[string]string

// Valid reports whether no rule was violated.
func (r ValidationResult) Valid() bool { return len(r) == 0 }

// Amount is one token-amount slot of a payment: an MPT issuance
// identifier paired with a decimal value.
type Amount struct {
	IssuanceID string `json:"mpt_issuance_id"`
	Value      string `json:"value"`
}

// Request is the canonical, validated payment record. It is built once
// per submission attempt, never mutated, and discarded after hand-off
// to the ledger gateway.
//
// Invariant: Amount, SendMax and DeliverMax always carry identical
// issuance/value pairs. This middleware never performs partial-path
// routing, so the delivered amount and both bounds are set from the
// same source field.
type Request struct {
	TransactionType string  `json:"transaction_type"`
	Account         string  `json:"account"`
	Destination     string  `json:"destination"`
	DestinationTag  *uint32 `json:"destination_tag,omitempty"`
	InvoiceID       *string `json:"invoice_id,omitempty"`
	Amount          Amount  `json:"amount"`
	SendMax         Amount  `json:"send_max"`
	DeliverMax      Amount  `json:"deliver_max"`
	Fee             string  `json:"fee"`
	Flags           uint32  `json:"flags"`
}
