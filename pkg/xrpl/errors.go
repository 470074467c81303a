package xrpl

import (
	"context"
	"errors"
	"fmt"
	"net"
	"regexp"

	apperrors "github.com/ledgerline/mpt-middleware/pkg/app/errors"
)

// Stage identifies which step of a submission failed.
type Stage string

const (
	StageAutofill Stage = "autofill"
	StageSign     Stage = "sign"
	StageSubmit   Stage = "submit"
)

// SubmissionError is the gateway's failure report. It keeps the stage
// and, when the ledger answered, the engine result code, so callers can
// distinguish network trouble from rejection.
type SubmissionError struct {
	Stage        Stage
	EngineResult string
	Err          error
}

func (e *SubmissionError) Error() string {
	if e.EngineResult != "" {
		return fmt.Sprintf("%s failed (%s): %v", e.Stage, e.EngineResult, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// engineResultRE picks a rippled engine code out of an error message
// when the client library reports rejection as a plain error.
var engineResultRE = regexp.MustCompile(`\b(tec|tef|tel|tem|ter)[A-Z_0-9]+\b`)

// EngineResultFromError extracts an engine result code from an error,
// or returns the empty string.
func EngineResultFromError(err error) string {
	if err == nil {
		return ""
	}
	var subErr *SubmissionError
	if errors.As(err, &subErr) && subErr.EngineResult != "" {
		return subErr.EngineResult
	}
	return engineResultRE.FindString(err.Error())
}

// ClassifyError maps a gateway failure onto the service error taxonomy:
//
//   - ledger rejections (an engine result is present) are client data
//     errors; the code is included in the message,
//   - timeouts map to the timeout category,
//   - signing failures are internal (the middleware owns the keys),
//   - anything else is a ledger dependency failure.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	if code := EngineResultFromError(err); code != "" {
		return apperrors.BadRequestError(err, fmt.Sprintf("transaction rejected by the ledger: %s", code))
	}

	if errors.Is(err, context.DeadlineExceeded) || isNetTimeout(err) {
		return apperrors.TimeoutError(err, "ledger request timed out")
	}

	var subErr *SubmissionError
	if errors.As(err, &subErr) && subErr.Stage == StageSign {
		return apperrors.GeneralError(err)
	}

	return apperrors.DependencyError(err, "ledger submission failed")
}

func isNetTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
