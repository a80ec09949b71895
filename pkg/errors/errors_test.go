package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeRootNotFound, "shortcut root %s does not exist", "/menus")
	msg := err.Error()

	if !strings.Contains(msg, "ROOT_NOT_FOUND") {
		t.Errorf("Error() = %q, want code prefix", msg)
	}
	if !strings.Contains(msg, "/menus") {
		t.Errorf("Error() = %q, want formatted message", msg)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := Wrap(ErrCodeWriteFailed, cause, "write layout to %s", "out.xml")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if !strings.Contains(err.Error(), "permission denied") {
		t.Errorf("Error() = %q, want cause included", err.Error())
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeCatalog, "lookup failed")

	if !Is(err, ErrCodeCatalog) {
		t.Error("Is() should match the error's code")
	}
	if Is(err, ErrCodeWriteFailed) {
		t.Error("Is() should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeCatalog) {
		t.Error("Is() should not match plain errors")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeUnsupported, "no")); got != ErrCodeUnsupported {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeUnsupported)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode() = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidInput, "width must be even")
	if got := UserMessage(err); got != "width must be even" {
		t.Errorf("UserMessage() = %q, want message without code", got)
	}

	plain := stderrors.New("boom")
	if got := UserMessage(plain); got != "boom" {
		t.Errorf("UserMessage() = %q, want %q", got, "boom")
	}
}
