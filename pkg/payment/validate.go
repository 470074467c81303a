package payment

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	// classicAddressRE matches the classic address shape: the fixed 'r'
	// prefix followed by 24-34 alphanumeric characters. Checksum
	// verification is left to the ledger client.
	classicAddressRE = regexp.MustCompile(`^r[0-9a-zA-Z]{24,34}$`)

	// invoiceIDRE matches the documented invoice ID format, a 256-bit
	// hash as 64 hex characters.
	invoiceIDRE = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)
)

// Error messages surfaced to the presentation layer, keyed by rule.
const (
	msgNoAccount      = "no source account selected"
	msgMissingTokenID = "missing token identifier"
	msgInvalidAmount  = "invalid amount"
	msgInvalidDest    = "invalid destination address"
	msgInvalidTag     = "destination tag must be numeric"
	msgInvalidInvoice = "invoice id must be 64 hexadecimal characters"
)

var fieldMessages = map[string]string{
	FieldTokenID:        msgMissingTokenID,
	FieldAmount:         msgInvalidAmount,
	FieldDestination:    msgInvalidDest,
	FieldDestinationTag: msgInvalidTag,
	FieldInvoiceID:      msgInvalidInvoice,
}

var inputValidator = newInputValidator()

func newInputValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report violations under the JSON field name so the presentation
	// layer can attach messages to form controls directly.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "positivedecimal", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && d.IsPositive()
	})
	mustRegister(v, "xrpladdress", func(fl validator.FieldLevel) bool {
		return classicAddressRE.MatchString(fl.Field().String())
	})
	mustRegister(v, "uint32str", func(fl validator.FieldLevel) bool {
		_, err := strconv.ParseUint(fl.Field().String(), 10, 32)
		return err == nil
	})
	mustRegister(v, "hex64", func(fl validator.FieldLevel) bool {
		return invoiceIDRE.MatchString(fl.Field().String())
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Validate checks raw form input against the payment rules. It is a
// pure function of its arguments: every violated rule contributes one
// entry to the result, independently of the others, and an empty result
// signals the input is safe to pass to Build.
//
// Inputs are whitespace-trimmed before the rules run, so a field of
// spaces counts as absent.
func Validate(in Input, hasSelectedAccount bool) ValidationResult {
	res := ValidationResult{}

	if !hasSelectedAccount {
		res[FieldAccount] = msgNoAccount
	}

	err := inputValidator.Struct(in.trimmed())
	if err == nil {
		return res
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Struct-level failures cannot happen for a flat string struct;
		// treat anything unexpected as an amount-independent no-op.
		return res
	}

	for _, fe := range verrs {
		field := fe.Field()
		if msg, ok := fieldMessages[field]; ok {
			res[field] = msg
		}
	}
	return res
}

// trimmed returns a copy of the input with surrounding whitespace
// removed from every field.
func (in Input) trimmed() Input {
	return Input{
		TokenID:        strings.TrimSpace(in.TokenID),
		Amount:         strings.TrimSpace(in.Amount),
		Destination:    strings.TrimSpace(in.Destination),
		DestinationTag: strings.TrimSpace(in.DestinationTag),
		InvoiceID:      strings.TrimSpace(in.InvoiceID),
	}
}
