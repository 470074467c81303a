package mpt

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	issuanceIDRE = regexp.MustCompile(`^[0-9a-fA-F]{48}$`)
	holderRE     = regexp.MustCompile(`^r[0-9a-zA-Z]{24,34}$`)
)

const (
	msgNoAccount         = "no source account selected"
	msgInvalidScale      = "asset scale must be an integer between 0 and 19"
	msgInvalidMaxAmount  = "maximum amount must be a positive integer"
	msgInvalidFee        = "transfer fee must be an integer between 0 and 50000"
	msgFeeNeedsTransfer  = "transfer fee requires the can-transfer flag"
	msgMetadataTooLarge  = "metadata must be at most 1024 bytes"
	msgInvalidIssuanceID = "invalid issuance identifier"
	msgInvalidHolder     = "invalid holder address"
)

// ValidateCreate checks issuance-create form input. Rules are
// independent; every violation contributes one entry.
func ValidateCreate(in CreateInput, hasSelectedAccount bool) ValidationResult {
	res := ValidationResult{}

	if !hasSelectedAccount {
		res[FieldAccount] = msgNoAccount
	}

	scale := strings.TrimSpace(in.AssetScale)
	if scale != "" {
		n, err := strconv.ParseUint(scale, 10, 8)
		if err != nil || n > MaxAssetScale {
			res[FieldAssetScale] = msgInvalidScale
		}
	}

	maxAmount := strings.TrimSpace(in.MaximumAmount)
	if maxAmount != "" {
		d, err := decimal.NewFromString(maxAmount)
		if err != nil || !d.IsPositive() || !d.IsInteger() {
			res[FieldMaximumAmount] = msgInvalidMaxAmount
		}
	}

	fee := strings.TrimSpace(in.TransferFee)
	if fee != "" {
		n, err := strconv.ParseUint(fee, 10, 16)
		switch {
		case err != nil || n > MaxTransferFee:
			res[FieldTransferFee] = msgInvalidFee
		case n > 0 && !in.CanTransfer:
			res[FieldTransferFee] = msgFeeNeedsTransfer
		}
	}

	if len(in.Metadata) > MaxMetadataBytes {
		res[FieldMetadata] = msgMetadataTooLarge
	}

	return res
}

// ValidateAuthorize checks holder-authorization form input.
func ValidateAuthorize(in AuthorizeInput, hasSelectedAccount bool) ValidationResult {
	res := ValidationResult{}

	if !hasSelectedAccount {
		res[FieldAccount] = msgNoAccount
	}

	if !issuanceIDRE.MatchString(strings.TrimSpace(in.IssuanceID)) {
		res[FieldIssuanceID] = msgInvalidIssuanceID
	}

	holder := strings.TrimSpace(in.Holder)
	if holder != "" && !holderRE.MatchString(holder) {
		res[FieldHolder] = msgInvalidHolder
	}

	return res
}

// ValidateDestroy checks issuance-destroy form input.
func ValidateDestroy(in DestroyInput, hasSelectedAccount bool) ValidationResult {
	res := ValidationResult{}

	if !hasSelectedAccount {
		res[FieldAccount] = msgNoAccount
	}

	if !issuanceIDRE.MatchString(strings.TrimSpace(in.IssuanceID)) {
		res[FieldIssuanceID] = msgInvalidIssuanceID
	}

	return res
}
