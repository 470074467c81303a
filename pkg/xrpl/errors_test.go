package xrpl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	apperrors "github.com/ledgerline/mpt-middleware/pkg/app/errors"
)

func TestEngineResultFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"plain error", errors.New("connection refused"), ""},
		{"tec code in message", errors.New("transaction failed: tecNO_AUTH"), "tecNO_AUTH"},
		{"tem code in message", errors.New("temBAD_AMOUNT: malformed"), "temBAD_AMOUNT"},
		{"code on submission error", &SubmissionError{Stage: StageSubmit, EngineResult: "tecPATH_DRY", Err: errors.New("rejected")}, "tecPATH_DRY"},
		{"wrapped submission error", fmt.Errorf("send: %w", &SubmissionError{Stage: StageSubmit, EngineResult: "tefPAST_SEQ", Err: errors.New("rejected")}), "tefPAST_SEQ"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := EngineResultFromError(tc.err); got != tc.want {
				t.Fatalf("EngineResultFromError() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestClassifyErrorEngineRejection(t *testing.T) {
	err := ClassifyError(&SubmissionError{
		Stage:        StageSubmit,
		EngineResult: "tecNO_AUTH",
		Err:          errors.New("rejected"),
	})

	if !apperrors.Is(err, apperrors.CategoryDataError) {
		t.Fatalf("want DataError category, got %v", err)
	}
	if !strings.Contains(err.Error(), "tecNO_AUTH") {
		t.Fatalf("message should carry the engine code, got %q", err.Error())
	}
}

func TestClassifyErrorTimeout(t *testing.T) {
	err := ClassifyError(&SubmissionError{
		Stage: StageSubmit,
		Err:   context.DeadlineExceeded,
	})

	if !apperrors.Is(err, apperrors.CategoryConnectionTimeout) {
		t.Fatalf("want ConnectionTimeout category, got %v", err)
	}
}

func TestClassifyErrorSigning(t *testing.T) {
	err := ClassifyError(&SubmissionError{
		Stage: StageSign,
		Err:   errors.New("bad keypair"),
	})

	if !apperrors.Is(err, apperrors.CategoryGeneralError) {
		t.Fatalf("want GeneralError category, got %v", err)
	}
}

func TestClassifyErrorDependencyFallback(t *testing.T) {
	err := ClassifyError(&SubmissionError{
		Stage: StageAutofill,
		Err:   errors.New("websocket closed"),
	})

	if !apperrors.Is(err, apperrors.CategoryDependencyFailure) {
		t.Fatalf("want DependencyFailure category, got %v", err)
	}
}

func TestClassifyErrorNil(t *testing.T) {
	if got := ClassifyError(nil); got != nil {
		t.Fatalf("ClassifyError(nil) = %v, want nil", got)
	}
}

func TestSubmissionErrorMessage(t *testing.T) {
	err := &SubmissionError{Stage: StageAutofill, Err: errors.New("no connection")}
	if got := err.Error(); got != "autofill failed: no connection" {
		t.Fatalf("Error() = %q", got)
	}

	err = &SubmissionError{Stage: StageSubmit, EngineResult: "tecNO_AUTH", Err: errors.New("rejected")}
	if got := err.Error(); got != "submit failed (tecNO_AUTH): rejected" {
		t.Fatalf("Error() = %q", got)
	}
}
