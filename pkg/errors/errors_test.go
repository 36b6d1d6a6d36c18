package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code      Code
		status    int
		publicMsg string
	}{
		{code: CodeTransport, status: http.StatusBadGateway, publicMsg: "upstream request failed"},
		{code: CodeDecode, status: http.StatusBadGateway, publicMsg: "upstream response unreadable"},
		{code: CodePrecondition, status: http.StatusConflict, publicMsg: "required state missing"},
		{code: CodeValidation, status: http.StatusBadRequest, publicMsg: "validation failed"},
		{code: CodeNotFound, status: http.StatusNotFound, publicMsg: "resource not found"},
		{code: CodeInternal, status: http.StatusInternalServerError, publicMsg: "internal server error"},
	}

	for _, tt := range tests {
		meta := MetadataFor(tt.code)
		if meta.HTTPStatus != tt.status {
			t.Fatalf("code %s expected status %d got %d", tt.code, tt.status, meta.HTTPStatus)
		}
		if meta.PublicMessage != tt.publicMsg {
			t.Fatalf("code %s expected public message %q got %q", tt.code, tt.publicMsg, meta.PublicMessage)
		}
	}
}

func TestMetadataForUnknownCodeDefaultsToInternal(t *testing.T) {
	meta := MetadataFor("SOMETHING_UNKNOWN")
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal status, got %d", meta.HTTPStatus)
	}
}

func TestErrorConstructors(t *testing.T) {
	base := New(CodePrecondition, "no session user")
	if base.Code() != CodePrecondition {
		t.Fatalf("expected precondition code, got %s", base.Code())
	}
	if base.Message() != "no session user" {
		t.Fatalf("unexpected message %q", base.Message())
	}

	cause := stdErrors.New("connection refused")
	wrapped := Wrap(CodeTransport, cause, "execute cart request")
	if !stdErrors.Is(wrapped, cause) {
		t.Fatalf("Wrap did not preserve cause")
	}
	if wrapped.Code() != CodeTransport {
		t.Fatalf("unexpected code %s", wrapped.Code())
	}
}

func TestCodeOf(t *testing.T) {
	if CodeOf(New(CodeDecode, "bad json")) != CodeDecode {
		t.Fatalf("CodeOf failed on typed error")
	}
	wrapped := fmt.Errorf("handler: %w", New(CodeValidation, "cart is empty"))
	if CodeOf(wrapped) != CodeValidation {
		t.Fatalf("CodeOf failed through wrapping")
	}
	if CodeOf(stdErrors.New("plain")) != CodeInternal {
		t.Fatalf("plain errors should map to internal")
	}
}

func TestAsReturnsTypedError(t *testing.T) {
	err := New(CodeNotFound, "cart not found")
	if got := As(err); got == nil || got.Code() != CodeNotFound {
		t.Fatalf("As failed to return typed error")
	}
	if As(nil) != nil {
		t.Fatalf("As(nil) should return nil")
	}
}
