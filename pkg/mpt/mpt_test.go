package mpt

import (
	"strings"
	"testing"
)

const testIssuanceID = "00001234a5b6c7d8e9f0a1b2c3d4e5f6a7b8c9d000001111"

func TestValidateCreate_EmptyInputIsValid(t *testing.T) {
	res := ValidateCreate(CreateInput{}, true)
	if !res.Valid() {
		t.Fatalf("expected empty result, got %v", res)
	}
}

func TestValidateCreate_NoSelectedAccount(t *testing.T) {
	res := ValidateCreate(CreateInput{}, false)
	if res[FieldAccount] != "no source account selected" {
		t.Fatalf("expected account error, got %v", res)
	}
}

func TestValidateCreate_AssetScale(t *testing.T) {
	cases := []struct {
		scale   string
		wantErr bool
	}{
		{"", false},
		{"0", false},
		{"19", false},
		{"20", true},
		{"-1", true},
		{"abc", true},
		{"2.5", true},
	}
	for _, tc := range cases {
		res := ValidateCreate(CreateInput{AssetScale: tc.scale}, true)
		_, got := res[FieldAssetScale]
		if got != tc.wantErr {
			t.Fatalf("scale %q: error reported = %v, want %v", tc.scale, got, tc.wantErr)
		}
	}
}

func TestValidateCreate_MaximumAmount(t *testing.T) {
	cases := []struct {
		amount  string
		wantErr bool
	}{
		{"", false},
		{"1000000", false},
		{"0", true},
		{"-5", true},
		{"1.5", true},
		{"abc", true},
	}
	for _, tc := range cases {
		res := ValidateCreate(CreateInput{MaximumAmount: tc.amount}, true)
		_, got := res[FieldMaximumAmount]
		if got != tc.wantErr {
			t.Fatalf("maximum amount %q: error reported = %v, want %v", tc.amount, got, tc.wantErr)
		}
	}
}

func TestValidateCreate_TransferFee(t *testing.T) {
	// A non-zero fee is only meaningful on transferable tokens.
	res := ValidateCreate(CreateInput{TransferFee: "100"}, true)
	if res[FieldTransferFee] != "transfer fee requires the can-transfer flag" {
		t.Fatalf("expected can-transfer rule violation, got %v", res)
	}

	res = ValidateCreate(CreateInput{TransferFee: "100", CanTransfer: true}, true)
	if !res.Valid() {
		t.Fatalf("expected valid input, got %v", res)
	}

	res = ValidateCreate(CreateInput{TransferFee: "50001", CanTransfer: true}, true)
	if res[FieldTransferFee] != "transfer fee must be an integer between 0 and 50000" {
		t.Fatalf("expected range violation, got %v", res)
	}

	res = ValidateCreate(CreateInput{TransferFee: "0"}, true)
	if !res.Valid() {
		t.Fatalf("zero fee must not require the transfer flag, got %v", res)
	}
}

func TestValidateCreate_MetadataSize(t *testing.T) {
	res := ValidateCreate(CreateInput{Metadata: strings.Repeat("x", MaxMetadataBytes)}, true)
	if !res.Valid() {
		t.Fatalf("metadata at the limit must validate, got %v", res)
	}

	res = ValidateCreate(CreateInput{Metadata: strings.Repeat("x", MaxMetadataBytes+1)}, true)
	if _, ok := res[FieldMetadata]; !ok {
		t.Fatalf("expected metadata error, got %v", res)
	}
}

func TestBuildCreate_FlagsAndFields(t *testing.T) {
	in := CreateInput{
		AssetScale:    "2",
		MaximumAmount: "1000000",
		TransferFee:   "250",
		Metadata:      "hello",
		RequireAuth:   true,
		CanTransfer:   true,
		CanClawback:   true,
	}
	if res := ValidateCreate(in, true); !res.Valid() {
		t.Fatalf("fixture must validate, got %v", res)
	}

	req := BuildCreate(in, "rIssuerAddress1234567890abcdEFGH")

	if req.TransactionType != TransactionTypeIssuanceCreate {
		t.Fatalf("unexpected transaction type %q", req.TransactionType)
	}
	if req.AssetScale == nil || *req.AssetScale != 2 {
		t.Fatalf("unexpected asset scale %v", req.AssetScale)
	}
	if req.MaximumAmount == nil || *req.MaximumAmount != "1000000" {
		t.Fatalf("unexpected maximum amount %v", req.MaximumAmount)
	}
	if req.TransferFee == nil || *req.TransferFee != 250 {
		t.Fatalf("unexpected transfer fee %v", req.TransferFee)
	}
	if req.Metadata == nil || *req.Metadata != "68656C6C6F" {
		t.Fatalf("unexpected metadata %v", req.Metadata)
	}
	if req.Fee != "120" {
		t.Fatalf("unexpected fee %q", req.Fee)
	}

	want := FlagRequireAuth | FlagCanTransfer | FlagCanClawback
	if req.Flags != want {
		t.Fatalf("flags = %#x, want %#x", req.Flags, want)
	}
}

func TestBuildCreate_OmitsAbsentOptionalFields(t *testing.T) {
	req := BuildCreate(CreateInput{}, "rIssuerAddress1234567890abcdEFGH")
	if req.AssetScale != nil || req.MaximumAmount != nil || req.TransferFee != nil || req.Metadata != nil {
		t.Fatalf("expected all optional fields absent, got %+v", req)
	}
	if req.Flags != 0 {
		t.Fatalf("expected no flags, got %#x", req.Flags)
	}
}

func TestValidateAuthorize(t *testing.T) {
	res := ValidateAuthorize(AuthorizeInput{IssuanceID: testIssuanceID}, true)
	if !res.Valid() {
		t.Fatalf("expected valid input, got %v", res)
	}

	res = ValidateAuthorize(AuthorizeInput{IssuanceID: "tooshort"}, true)
	if res[FieldIssuanceID] != "invalid issuance identifier" {
		t.Fatalf("expected issuance id error, got %v", res)
	}

	res = ValidateAuthorize(AuthorizeInput{IssuanceID: testIssuanceID, Holder: "nonsense"}, true)
	if res[FieldHolder] != "invalid holder address" {
		t.Fatalf("expected holder error, got %v", res)
	}

	res = ValidateAuthorize(AuthorizeInput{IssuanceID: testIssuanceID}, false)
	if _, ok := res[FieldAccount]; !ok {
		t.Fatalf("expected account error, got %v", res)
	}
}

func TestBuildAuthorize(t *testing.T) {
	req := BuildAuthorize(AuthorizeInput{
		IssuanceID:  testIssuanceID,
		Holder:      "rHolderAddress1234567890abcdEFGH",
		Unauthorize: true,
	}, "rIssuerAddress1234567890abcdEFGH")

	if req.TransactionType != TransactionTypeAuthorize {
		t.Fatalf("unexpected transaction type %q", req.TransactionType)
	}
	if req.IssuanceID != strings.ToUpper(testIssuanceID) {
		t.Fatalf("issuance id not normalized: %q", req.IssuanceID)
	}
	if req.Holder == nil || *req.Holder != "rHolderAddress1234567890abcdEFGH" {
		t.Fatalf("unexpected holder %v", req.Holder)
	}
	if req.Flags != FlagUnauthorize {
		t.Fatalf("flags = %#x, want %#x", req.Flags, FlagUnauthorize)
	}

	optIn := BuildAuthorize(AuthorizeInput{IssuanceID: testIssuanceID}, "rHolderAddress1234567890abcdEFGH")
	if optIn.Holder != nil {
		t.Fatalf("expected no holder on self opt-in, got %v", optIn.Holder)
	}
	if optIn.Flags != 0 {
		t.Fatalf("expected no flags, got %#x", optIn.Flags)
	}
}

func TestValidateAndBuildDestroy(t *testing.T) {
	res := ValidateDestroy(DestroyInput{IssuanceID: "zzz"}, true)
	if _, ok := res[FieldIssuanceID]; !ok {
		t.Fatalf("expected issuance id error, got %v", res)
	}

	req := BuildDestroy(DestroyInput{IssuanceID: testIssuanceID}, "rIssuerAddress1234567890abcdEFGH")
	if req.TransactionType != TransactionTypeIssuanceDestroy {
		t.Fatalf("unexpected transaction type %q", req.TransactionType)
	}
	if req.IssuanceID != strings.ToUpper(testIssuanceID) {
		t.Fatalf("issuance id not normalized: %q", req.IssuanceID)
	}
	if req.Fee != "120" || req.Flags != 0 {
		t.Fatalf("unexpected fee/flags: %q/%d", req.Fee, req.Flags)
	}
}
