package xrpl

import (
	"reflect"
	"testing"

	"github.com/ledgerline/mpt-middleware/pkg/mpt"
	"github.com/ledgerline/mpt-middleware/pkg/payment"
)

const testIssuanceID = "00001234A5B6C7D8E9F0A1B2C3D4E5F6A7B8C9D000001111"

func TestFlattenPayment(t *testing.T) {
	tag := uint32(12345)
	invoice := "ABCDEF0123456789ABCDEF0123456789ABCDEF0123456789ABCDEF0123456789"
	amt := payment.Amount{IssuanceID: testIssuanceID, Value: "100"}

	req := payment.Request{
		TransactionType: payment.TransactionTypePayment,
		Account:         "rSourceAddress1234567890abcdefgh",
		Destination:     "rDestinationAddress1234567890ABCD",
		DestinationTag:  &tag,
		InvoiceID:       &invoice,
		Amount:          amt,
		SendMax:         amt,
		DeliverMax:      amt,
		Fee:             payment.FeeDrops,
		Flags:           0,
	}

	flat := FlattenPayment(req)

	if got := flat["TransactionType"]; got != "Payment" {
		t.Fatalf("TransactionType = %v, want Payment", got)
	}
	wantAmt := map[string]any{"mpt_issuance_id": testIssuanceID, "value": "100"}
	for _, slot := range []string{"Amount", "SendMax", "DeliverMax"} {
		if !reflect.DeepEqual(flat[slot], wantAmt) {
			t.Fatalf("%s = %v, want %v", slot, flat[slot], wantAmt)
		}
	}
	if got := flat["DestinationTag"]; got != tag {
		t.Fatalf("DestinationTag = %v, want %d", got, tag)
	}
	if got := flat["InvoiceID"]; got != invoice {
		t.Fatalf("InvoiceID = %v", got)
	}
	if got := flat["Fee"]; got != "120" {
		t.Fatalf("Fee = %v, want 120", got)
	}
}

func TestFlattenPaymentOmitsAbsentOptionals(t *testing.T) {
	amt := payment.Amount{IssuanceID: testIssuanceID, Value: "1"}
	flat := FlattenPayment(payment.Request{
		TransactionType: payment.TransactionTypePayment,
		Account:         "rSourceAddress1234567890abcdefgh",
		Destination:     "rDestinationAddress1234567890ABCD",
		Amount:          amt,
		SendMax:         amt,
		DeliverMax:      amt,
		Fee:             payment.FeeDrops,
	})

	for _, key := range []string{"DestinationTag", "InvoiceID"} {
		if _, ok := flat[key]; ok {
			t.Fatalf("%s should be absent", key)
		}
	}
}

func TestFlattenIssuanceCreate(t *testing.T) {
	scale := uint8(2)
	maxAmt := "1000000"
	fee := uint16(250)
	meta := "68656C6C6F"

	flat := FlattenIssuanceCreate(mpt.CreateRequest{
		TransactionType: mpt.TransactionTypeIssuanceCreate,
		Account:         "rSourceAddress1234567890abcdefgh",
		AssetScale:      &scale,
		MaximumAmount:   &maxAmt,
		TransferFee:     &fee,
		Metadata:        &meta,
		Fee:             mpt.FeeDrops,
		Flags:           mpt.FlagCanTransfer,
	})

	if got := flat["TransactionType"]; got != "MPTokenIssuanceCreate" {
		t.Fatalf("TransactionType = %v", got)
	}
	if got := flat["AssetScale"]; got != scale {
		t.Fatalf("AssetScale = %v", got)
	}
	if got := flat["MPTokenMetadata"]; got != meta {
		t.Fatalf("MPTokenMetadata = %v", got)
	}
	if got := flat["Flags"]; got != mpt.FlagCanTransfer {
		t.Fatalf("Flags = %v", got)
	}
}

func TestFlattenIssuanceCreateMinimal(t *testing.T) {
	flat := FlattenIssuanceCreate(mpt.CreateRequest{
		TransactionType: mpt.TransactionTypeIssuanceCreate,
		Account:         "rSourceAddress1234567890abcdefgh",
		Fee:             mpt.FeeDrops,
	})

	for _, key := range []string{"AssetScale", "MaximumAmount", "TransferFee", "MPTokenMetadata"} {
		if _, ok := flat[key]; ok {
			t.Fatalf("%s should be absent", key)
		}
	}
}

func TestFlattenIssuanceAuthorize(t *testing.T) {
	holder := "rHolderAddress1234567890abcdefgh"

	flat := FlattenIssuanceAuthorize(mpt.AuthorizeRequest{
		TransactionType: mpt.TransactionTypeAuthorize,
		Account:         "rSourceAddress1234567890abcdefgh",
		IssuanceID:      testIssuanceID,
		Holder:          &holder,
		Fee:             mpt.FeeDrops,
		Flags:           mpt.FlagUnauthorize,
	})

	if got := flat["MPTokenIssuanceID"]; got != testIssuanceID {
		t.Fatalf("MPTokenIssuanceID = %v", got)
	}
	if got := flat["Holder"]; got != holder {
		t.Fatalf("Holder = %v", got)
	}
	if got := flat["Flags"]; got != mpt.FlagUnauthorize {
		t.Fatalf("Flags = %v", got)
	}
}

func TestFlattenIssuanceDestroy(t *testing.T) {
	flat := FlattenIssuanceDestroy(mpt.DestroyRequest{
		TransactionType: mpt.TransactionTypeIssuanceDestroy,
		Account:         "rSourceAddress1234567890abcdefgh",
		IssuanceID:      testIssuanceID,
		Fee:             mpt.FeeDrops,
	})

	if got := flat["TransactionType"]; got != "MPTokenIssuanceDestroy" {
		t.Fatalf("TransactionType = %v", got)
	}
	if got := flat["MPTokenIssuanceID"]; got != testIssuanceID {
		t.Fatalf("MPTokenIssuanceID = %v", got)
	}
	if _, ok := flat["Holder"]; ok {
		t.Fatal("Holder should be absent")
	}
}
