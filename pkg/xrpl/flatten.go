package xrpl

import (
	"github.com/Peersyst/xrpl-go/xrpl/transaction"

	"github.com/ledgerline/mpt-middleware/pkg/mpt"
	"github.com/ledgerline/mpt-middleware/pkg/payment"
)

// The flatteners translate the canonical domain records into the
// ledger's wire field names. The domain packages stay free of client
// library types; this is the only place the two vocabularies meet.

func mptAmount(a payment.Amount) map[string]any {
	return map[string]any{
		"mpt_issuance_id": a.IssuanceID,
		"value":           a.Value,
	}
}

// FlattenPayment maps a payment request onto ledger field names. All
// three token-amount slots are forwarded, mirroring the request record.
func FlattenPayment(req payment.Request) transaction.FlatTransaction {
	flat := transaction.FlatTransaction{
		"TransactionType": req.TransactionType,
		"Account":         req.Account,
		"Destination":     req.Destination,
		"Amount":          mptAmount(req.Amount),
		"SendMax":         mptAmount(req.SendMax),
		"DeliverMax":      mptAmount(req.DeliverMax),
		"Fee":             req.Fee,
		"Flags":           req.Flags,
	}
	if req.DestinationTag != nil {
		flat["DestinationTag"] = *req.DestinationTag
	}
	if req.InvoiceID != nil {
		flat["InvoiceID"] = *req.InvoiceID
	}
	return flat
}

// FlattenIssuanceCreate maps an issuance-create request onto ledger
// field names.
func FlattenIssuanceCreate(req mpt.CreateRequest) transaction.FlatTransaction {
	flat := transaction.FlatTransaction{
		"TransactionType": req.TransactionType,
		"Account":         req.Account,
		"Fee":             req.Fee,
		"Flags":           req.Flags,
	}
	if req.AssetScale != nil {
		flat["AssetScale"] = *req.AssetScale
	}
	if req.MaximumAmount != nil {
		flat["MaximumAmount"] = *req.MaximumAmount
	}
	if req.TransferFee != nil {
		flat["TransferFee"] = *req.TransferFee
	}
	if req.Metadata != nil {
		flat["MPTokenMetadata"] = *req.Metadata
	}
	return flat
}

// FlattenIssuanceAuthorize maps an authorize request onto ledger field
// names.
func FlattenIssuanceAuthorize(req mpt.AuthorizeRequest) transaction.FlatTransaction {
	flat := transaction.FlatTransaction{
		"TransactionType":   req.TransactionType,
		"Account":           req.Account,
		"MPTokenIssuanceID": req.IssuanceID,
		"Fee":               req.Fee,
		"Flags":             req.Flags,
	}
	if req.Holder != nil {
		flat["Holder"] = *req.Holder
	}
	return flat
}

// FlattenIssuanceDestroy maps a destroy request onto ledger field names.
func FlattenIssuanceDestroy(req mpt.DestroyRequest) transaction.FlatTransaction {
	return transaction.FlatTransaction{
		"TransactionType":   req.TransactionType,
		"Account":           req.Account,
		"MPTokenIssuanceID": req.IssuanceID,
		"Fee":               req.Fee,
		"Flags":             req.Flags,
	}
}
