package payment

import (
	"strconv"
	"strings"
)

// Build deterministically maps validated form input into the canonical
// payment request. It performs no I/O and has no error path of its own:
// the caller must have obtained an empty ValidationResult from Validate
// first; behavior on unvalidated input is unspecified.
//
// All three token-amount slots are filled from the same (token, amount)
// pair, the fee is the fixed minimal fee and no payment flags are set.
func Build(in Input, sourceAddress string) Request {
	in = in.trimmed()

	amt := Amount{
		IssuanceID: in.TokenID,
		Value:      in.Amount,
	}

	req := Request{
		TransactionType: TransactionTypePayment,
		Account:         sourceAddress,
		Destination:     in.Destination,
		Amount:          amt,
		SendMax:         amt,
		DeliverMax:      amt,
		Fee:             FeeDrops,
		Flags:           0,
	}

	if in.DestinationTag != "" {
		// Validate guarantees this parses as a uint32.
		tag64, _ := strconv.ParseUint(in.DestinationTag, 10, 32)
		tag := uint32(tag64)
		req.DestinationTag = &tag
	}

	if in.InvoiceID != "" {
		invoice := strings.ToUpper(in.InvoiceID)
		req.InvoiceID = &invoice
	}

	return req
}
