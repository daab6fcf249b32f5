package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("items", "must be a JSON array of strings")

	if got := err.Error(); got != "validation: items: must be a JSON array of strings" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Errors: []FieldError{
		{Field: "word", Message: "required"},
		{Field: "definition", Message: "required"},
	}}

	if got := err.Error(); got != "validation: 2 errors" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("decode request: %w", NewValidationError("body", "invalid JSON"))
	if !errors.Is(err, ErrValidation) {
		t.Fatal("wrapped ValidationError should match ErrValidation")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatal("errors.As should find *ValidationError")
	}
	if ve.Errors[0].Field != "body" {
		t.Errorf("field = %q, want %q", ve.Errors[0].Field, "body")
	}
}
