package errors

import (
	stderrors "errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidConfiguration, "gap %d: %d connections requested, %d possible", 0, 5, 4)

	want := "INVALID_CONFIGURATION: gap 0: 5 connections requested, 4 possible"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if err.Cause != nil {
		t.Errorf("Cause = %v, want nil", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(ErrCodeInvalidInput, cause, "parse --layers")

	want := "INVALID_INPUT: parse --layers: boom"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeMalformedArrangement, "layer 1: identity 3 missing")

	if !Is(err, ErrCodeMalformedArrangement) {
		t.Error("Is(err, ErrCodeMalformedArrangement) = false, want true")
	}
	if Is(err, ErrCodeInvalidConfiguration) {
		t.Error("Is(err, ErrCodeInvalidConfiguration) = true, want false")
	}
	if Is(stderrors.New("plain"), ErrCodeMalformedArrangement) {
		t.Error("Is(plain, code) = true, want false")
	}
}

func TestIs_Wrapped(t *testing.T) {
	inner := New(ErrCodeMalformedArrangement, "layer 0: duplicate identity 2")
	outer := Wrap(ErrCodeInternal, inner, "trial 7")

	// GetCode sees the outermost structured error.
	if got := GetCode(outer); got != ErrCodeInternal {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeInternal)
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidConfiguration, "x")); got != ErrCodeInvalidConfiguration {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeInvalidConfiguration)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidConfiguration, "trials must be positive")
	if got := UserMessage(err); got != "trials must be positive" {
		t.Errorf("UserMessage() = %q, want %q", got, "trials must be positive")
	}

	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage(plain) = %q, want %q", got, "plain failure")
	}
}
