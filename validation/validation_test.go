package validation

import (
	"strings"
	"testing"

	"github.com/kbukum/fetchkit/errors"
)

type header struct {
	Name  string `json:"name" validate:"required,header_name"`
	Value string `json:"value" validate:"header_value"`
}

func TestValidate_HeaderTags(t *testing.T) {
	tests := []struct {
		name    string
		in      header
		wantErr string
	}{
		{"valid", header{Name: "X-Api-Key", Value: "secret"}, ""},
		{"missing name", header{Value: "secret"}, "name: is required"},
		{"space in name", header{Name: "X Api", Value: "v"}, "name: must be a valid HTTP header name"},
		{"colon in name", header{Name: "X:Key", Value: "v"}, "name: must be a valid HTTP header name"},
		{"newline in value", header{Name: "X-Key", Value: "a\nb"}, "value: must be a valid HTTP header value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.in)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected %q in %q", tt.wantErr, err.Error())
			}
			if !errors.HasCode(err, errors.ErrCodeInvalidInput) {
				t.Errorf("expected INVALID_INPUT code, got %v", err)
			}
		})
	}
}

func TestVar_HTTPMethod(t *testing.T) {
	tests := []struct {
		method  string
		wantErr string
	}{
		{"GET", ""},
		{"PROPFIND", ""},
		{"get", ""},
		{"", "method: is required"},
		{"BAD VERB", "method: must be a valid HTTP method token"},
		{"GET\n", "method: must be a valid HTTP method token"},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			err := Var("method", tt.method, "required,http_method")
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.HasCode(err, errors.ErrCodeInvalidInput) || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected INVALID_INPUT containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidator_Check(t *testing.T) {
	v := New()
	v.Check(true, "a", "never")
	if v.HasErrors() {
		t.Fatal("expected no errors")
	}

	v.Check(false, "timeout", "must be positive").Required("name", "  ")
	if len(v.Errors()) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(v.Errors()))
	}

	err := v.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); !strings.Contains(got, "timeout: must be positive; name: is required") {
		t.Errorf("unexpected message %q", got)
	}
	appErr, _ := errors.AsAppError(err)
	if fields, ok := appErr.Details["fields"].([]FieldError); !ok || len(fields) != 2 {
		t.Errorf("expected fields detail, got %v", appErr.Details["fields"])
	}
}

func TestValidator_NoErrors(t *testing.T) {
	if err := New().Required("name", "x").Validate(); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestToSnakeCase(t *testing.T) {
	if got := toSnakeCase("HeaderName"); got != "header_name" {
		t.Errorf("got %q", got)
	}
}
