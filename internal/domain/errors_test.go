package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestMessagesFlattensValidationErrors(t *testing.T) {
	err := ValidationErrors{
		{Field: "full_name", Msg: "Full name is required."},
		{Field: "phone", Msg: "Phone is required."},
	}
	got := Messages(fmt.Errorf("wrapped: %w", err))
	if len(got) != 2 || got[0] != "Full name is required." || got[1] != "Phone is required." {
		t.Fatalf("unexpected messages %v", got)
	}
	if !IsValidation(err) {
		t.Fatalf("ValidationErrors should count as validation")
	}
}

func TestMessagesSingleAndConflict(t *testing.T) {
	if got := Messages(ValidationError{Msg: "All fields are required."}); len(got) != 1 || got[0] != "All fields are required." {
		t.Fatalf("unexpected messages %v", got)
	}
	if got := Messages(ConflictError{Msg: "Not enough seats available."}); len(got) != 1 {
		t.Fatalf("conflict should yield one message, got %v", got)
	}
	if got := Messages(errors.New("boom")); got != nil {
		t.Fatalf("plain errors should yield nil, got %v", got)
	}
}

func TestNotFoundUnwrap(t *testing.T) {
	base := errors.New("no rows")
	err := NotFoundError{Resource: "booking", Err: base}
	if !IsNotFound(err) || !errors.Is(err, base) {
		t.Fatalf("NotFoundError should match and unwrap")
	}
	if err.Error() != "booking not found" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
