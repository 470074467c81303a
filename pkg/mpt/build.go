package mpt

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// BuildCreate maps validated issuance-create input into the canonical
// transaction record. Pure and deterministic; the caller must have
// obtained an empty result from ValidateCreate first.
func BuildCreate(in CreateInput, sourceAddress string) CreateRequest {
	req := CreateRequest{
		TransactionType: TransactionTypeIssuanceCreate,
		Account:         sourceAddress,
		Fee:             FeeDrops,
		Flags:           createFlags(in),
	}

	if scale := strings.TrimSpace(in.AssetScale); scale != "" {
		// ValidateCreate guarantees this parses into 0..19.
		n, _ := strconv.ParseUint(scale, 10, 8)
		s := uint8(n)
		req.AssetScale = &s
	}

	if maxAmount := strings.TrimSpace(in.MaximumAmount); maxAmount != "" {
		req.MaximumAmount = &maxAmount
	}

	if fee := strings.TrimSpace(in.TransferFee); fee != "" {
		n, _ := strconv.ParseUint(fee, 10, 16)
		f := uint16(n)
		req.TransferFee = &f
	}

	if in.Metadata != "" {
		meta := strings.ToUpper(hex.EncodeToString([]byte(in.Metadata)))
		req.Metadata = &meta
	}

	return req
}

func createFlags(in CreateInput) uint32 {
	var flags uint32
	if in.CanLock {
		flags |= FlagCanLock
	}
	if in.RequireAuth {
		flags |= FlagRequireAuth
	}
	if in.CanEscrow {
		flags |= FlagCanEscrow
	}
	if in.CanTrade {
		flags |= FlagCanTrade
	}
	if in.CanTransfer {
		flags |= FlagCanTransfer
	}
	if in.CanClawback {
		flags |= FlagCanClawback
	}
	return flags
}

// BuildAuthorize maps validated authorization input into the canonical
// transaction record.
func BuildAuthorize(in AuthorizeInput, sourceAddress string) AuthorizeRequest {
	req := AuthorizeRequest{
		TransactionType: TransactionTypeAuthorize,
		Account:         sourceAddress,
		IssuanceID:      strings.ToUpper(strings.TrimSpace(in.IssuanceID)),
		Fee:             FeeDrops,
	}

	if holder := strings.TrimSpace(in.Holder); holder != "" {
		req.Holder = &holder
	}
	if in.Unauthorize {
		req.Flags |= FlagUnauthorize
	}

	return req
}

// BuildDestroy maps validated destroy input into the canonical
// transaction record.
func BuildDestroy(in DestroyInput, sourceAddress string) DestroyRequest {
	return DestroyRequest{
		TransactionType: TransactionTypeIssuanceDestroy,
		Account:         sourceAddress,
		IssuanceID:      strings.ToUpper(strings.TrimSpace(in.IssuanceID)),
		Fee:             FeeDrops,
		Flags:           0,
	}
}
