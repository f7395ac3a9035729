package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInfeasibleSpec, "need %.1f m², have %.1f m²", 120.0, 80.0)

	if err.Code != ErrCodeInfeasibleSpec {
		t.Errorf("Code = %s, want %s", err.Code, ErrCodeInfeasibleSpec)
	}
	if !strings.Contains(err.Error(), "INFEASIBLE_SPEC") {
		t.Errorf("Error() missing code: %s", err.Error())
	}
	if !strings.Contains(err.Message, "120.0") {
		t.Errorf("Message not formatted: %s", err.Message)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(ErrCodeInternal, cause, "solve variation %d", 3)

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error lost its cause")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("Error() missing cause: %s", err.Error())
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeValidationFailed, "overlap pass failed")

	if !Is(err, ErrCodeValidationFailed) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeInfeasibleSpec) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("Is should not match plain errors")
	}

	// Matching through wrapping layers.
	wrapped := fmt.Errorf("outer: %w", err)
	if !Is(wrapped, ErrCodeValidationFailed) {
		t.Error("Is should unwrap to find the code")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeTimeout, "deadline")); got != ErrCodeTimeout {
		t.Errorf("GetCode = %s, want %s", got, ErrCodeTimeout)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %s, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidSpec, "room list is empty")
	if got := UserMessage(err); got != "room list is empty" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(stderrors.New("raw")); got != "raw" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
