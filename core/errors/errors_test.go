package errors

import (
	"io/fs"
	"testing"
)

func TestNotFoundErrorUnwrap(t *testing.T) {
	plain := &NotFoundError{Resource: "plan", ID: "missing"}
	if !Is(plain, ErrNotFound) {
		t.Error("plain NotFoundError should match ErrNotFound")
	}

	// A cause must not detach the sentinel: both the sentinel and the
	// underlying error stay matchable.
	caused := &NotFoundError{Resource: "plan", ID: "missing", Err: fs.ErrNotExist}
	if !Is(caused, ErrNotFound) {
		t.Error("NotFoundError with cause should still match ErrNotFound")
	}
	if !Is(caused, fs.ErrNotExist) {
		t.Error("NotFoundError with cause should match the cause")
	}
}

func TestValidationErrorUnwrap(t *testing.T) {
	plain := &ValidationError{Field: "locale", Message: "unknown"}
	if !Is(plain, ErrInvalidInput) {
		t.Error("plain ValidationError should match ErrInvalidInput")
	}

	cause := New("bad date")
	caused := &ValidationError{Field: "start-date", Message: "want YYYY-MM-DD", Err: cause}
	if !Is(caused, ErrInvalidInput) {
		t.Error("ValidationError with cause should still match ErrInvalidInput")
	}
	if !Is(caused, cause) {
		t.Error("ValidationError with cause should match the cause")
	}
}

func TestAs(t *testing.T) {
	var nf *NotFoundError
	err := error(&NotFoundError{Resource: "chapter audio", ID: "1:1"})
	if !As(err, &nf) || nf.Resource != "chapter audio" {
		t.Errorf("As failed to extract NotFoundError: %+v", nf)
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&NotFoundError{Resource: "plan", ID: "x"}, "plan not found: x"},
		{&NotFoundError{Resource: "plan"}, "plan not found"},
		{&ValidationError{Field: "books", Message: "books run 1-66"}, "validation failed for books: books run 1-66"},
		{&ValidationError{Message: "empty"}, "validation failed: empty"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
