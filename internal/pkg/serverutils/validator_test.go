package serverutils

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

type sampleRequest struct {
	Email  string `validate:"required,email"`
	Amount string `validate:"required"`
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name       string
		req        sampleRequest
		wantFields []string
	}{
		{
			name: "valid request",
			req:  sampleRequest{Email: "ap@acme.test", Amount: "$10"},
		},
		{
			name:       "missing everything",
			req:        sampleRequest{},
			wantFields: []string{"Email (required)", "Amount (required)"},
		},
		{
			name:       "malformed email",
			req:        sampleRequest{Email: "not-an-email", Amount: "$10"},
			wantFields: []string{"Email (email)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.req)

			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var clientErr *ClientError
			if !errors.As(err, &clientErr) {
				t.Fatalf("validation failures must be client errors, got %T", err)
			}
			for _, field := range tt.wantFields {
				if !strings.Contains(err.Error(), field) {
					t.Errorf("error %q does not report %q", err, field)
				}
			}
		})
	}
}

func TestClientErrorUnwrapsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("handling request: %w", NewClientError("message is required"))

	var clientErr *ClientError
	if !errors.As(err, &clientErr) {
		t.Fatal("ClientError must survive wrapping")
	}
	if clientErr.Message != "message is required" {
		t.Errorf("message = %q", clientErr.Message)
	}
}
