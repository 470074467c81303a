// Package mpt models the Multi-Purpose Token issuance lifecycle:
// creating an issuance, authorizing (or unauthorizing) holders, and
// destroying an issuance. Like the payment package, it turns raw form
// input into canonical, immutable transaction records for the ledger
// gateway.
package mpt

// Transaction kind tags for the issuance lifecycle.
const (
	TransactionTypeIssuanceCreate  = "MPTokenIssuanceCreate"
	TransactionTypeIssuanceDestroy = "MPTokenIssuanceDestroy"
	TransactionTypeAuthorize       = "MPTokenAuthorize"
)

// FeeDrops is the fixed fee attached to every issuance transaction,
// matching the payment fee policy.
const FeeDrops = "120"

// MPTokenIssuanceCreate flag bits.
const (
	FlagCanLock     uint32 = 0x0002
	FlagRequireAuth uint32 = 0x0004
	FlagCanEscrow   uint32 = 0x0008
	FlagCanTrade    uint32 = 0x0010
	FlagCanTransfer uint32 = 0x0020
	FlagCanClawback uint32 = 0x0040
)

// FlagUnauthorize is the MPTokenAuthorize flag bit that revokes a
// holder's authorization instead of granting it.
const FlagUnauthorize uint32 = 0x0001

// Issuance field limits.
const (
	MaxAssetScale    = 19
	MaxTransferFee   = 50000 // units of 1/100000, i.e. at most 50%
	MaxMetadataBytes = 1024
)

// Form field identifiers, used as keys in ValidationResult.
const (
	FieldAccount       = "account"
	FieldAssetScale    = "asset_scale"
	FieldMaximumAmount = "maximum_amount"
	FieldTransferFee   = "transfer_fee"
	FieldMetadata      = "metadata"
	FieldIssuanceID    = "issuance_id"
	FieldHolder        = "holder"
)

// ValidationResult maps a form field to a human-readable error message.
// An empty result means the input is safe to build.
type ValidationResult map[string]string

// Valid reports whether no rule was violated.
func (r ValidationResult) Valid() bool { return len(r) == 0 }

// CreateInput is the raw form state for creating an MPT issuance.
// Numeric fields arrive as strings; flag checkboxes arrive as booleans.
type CreateInput struct {
	// AssetScale is the number of decimal places of the token, 0-19.
	// Empty means the ledger default of zero.
	AssetScale string `json:"asset_scale"`

	// MaximumAmount caps the number of token units that can ever be
	// issued. Optional; must be a positive integer when present.
	MaximumAmount string `json:"maximum_amount"`

	// TransferFee is charged on secondary transfers, in units of
	// 1/100000. Requires the CanTransfer flag when non-zero.
	TransferFee string `json:"transfer_fee"`

	// Metadata is arbitrary issuer metadata, at most 1024 bytes. It is
	// hex-encoded when the transaction record is built.
	Metadata string `json:"metadata"`

	CanLock     bool `json:"can_lock"`
	RequireAuth bool `json:"require_auth"`
	CanEscrow   bool `json:"can_escrow"`
	CanTrade    bool `json:"can_trade"`
	CanTransfer bool `json:"can_transfer"`
	CanClawback bool `json:"can_clawback"`
}

// AuthorizeInput is the raw form state for authorizing (or revoking)
// an MPT holder.
type AuthorizeInput struct {
	// IssuanceID is the 48-hex MPT issuance identifier.
	IssuanceID string `json:"issuance_id"`

	// Holder is the account being authorized. Empty when a would-be
	// holder opts in to the issuance themselves.
	Holder string `json:"holder"`

	// Unauthorize revokes a previously granted authorization.
	Unauthorize bool `json:"unauthorize"`
}

// DestroyInput is the raw form state for destroying an MPT issuance.
type DestroyInput struct {
	IssuanceID string `json:"issuance_id"`
}

// CreateRequest is the canonical record for an MPTokenIssuanceCreate
// transaction. Optional fields are present only when the form supplied
// them.
type CreateRequest struct {
	TransactionType string  `json:"transaction_type"`
	Account         string  `json:"account"`
	AssetScale      *uint8  `json:"asset_scale,omitempty"`
	MaximumAmount   *string `json:"maximum_amount,omitempty"`
	TransferFee     *uint16 `json:"transfer_fee,omitempty"`
	Metadata        *string `json:"metadata,omitempty"`
	Fee             string  `json:"fee"`
	Flags           uint32  `json:"flags"`
}

// AuthorizeRequest is the canonical record for an MPTokenAuthorize
// transaction.
type AuthorizeRequest struct {
	TransactionType string  `json:"transaction_type"`
	Account         string  `json:"account"`
	IssuanceID      string  `json:"issuance_id"`
	Holder          *string `json:"holder,omitempty"`
	Fee             string  `json:"fee"`
	Flags           uint32  `json:"flags"`
}

// DestroyRequest is the canonical record for an MPTokenIssuanceDestroy
// transaction.
type DestroyRequest struct {
	TransactionType string `json:"transaction_type"`
	Account         string `json:"account"`
	IssuanceID      string `json:"issuance_id"`
	Fee             string `json:"fee"`
	Flags           uint32 `json:"flags"`
}
