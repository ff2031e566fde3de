package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

func TestSanitizeStruct_TrimsAndEscapes(t *testing.T) {
	req := VoidRequest{Reason: "  customer <script>alert('x')</script> request  "}
	SanitizeStruct(&req)

	assert.Contains(t, req.Reason, "&lt;script&gt;")
	assert.NotContains(t, req.Reason, "<script>")
	assert.Equal(t, "customer", req.Reason[:8])
}

func TestSanitizeStruct_HandlesPointerString(t *testing.T) {
	type withPtr struct {
		Note *string
		Nil  *string
	}
	note := "  hello  "
	v := withPtr{Note: &note}
	SanitizeStruct(&v)

	assert.Equal(t, "hello", *v.Note)
	assert.Nil(t, v.Nil)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s)
	assert.Equal(t, "hello", s)
}

func TestSafeID_ThroughBinding(t *testing.T) {
	tests := []struct {
		token string
		valid bool
	}{
		{"tok_0f8e3c2a-1111-4222-8333-944455556666", true},
		{"REF_002", true},
		{"a.b.c", true},
		{"simple123", true},
		{"tok 001", false},
		{"tok<001>", false},
		{"tok;DROP", false},
		{"tok\n001", false},
		{"tok_é", false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&DetokenizeRequest{Token: tt.token})
			if tt.valid {
				assert.NoError(t, err)
				assert.True(t, tokenAlphabet.MatchString(tt.token))
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestAuthorizeRequest_Binding(t *testing.T) {
	tests := []struct {
		name    string
		req     AuthorizeRequest
		wantErr bool
	}{
		{"valid", AuthorizeRequest{Amount: 1000, CardToken: "tok_abc", CVV: "123", Installments: 3}, false},
		{"defaults", AuthorizeRequest{Amount: 1000, CardToken: "tok_abc"}, false},
		{"zero amount", AuthorizeRequest{Amount: 0, CardToken: "tok_abc"}, true},
		{"negative amount", AuthorizeRequest{Amount: -5, CardToken: "tok_abc"}, true},
		{"missing token", AuthorizeRequest{Amount: 1000}, true},
		{"unsafe token", AuthorizeRequest{Amount: 1000, CardToken: "tok abc"}, true},
		{"cvv letters", AuthorizeRequest{Amount: 1000, CardToken: "tok_abc", CVV: "12a"}, true},
		{"too many installments", AuthorizeRequest{Amount: 1000, CardToken: "tok_abc", Installments: 13}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAdminRequests_Binding(t *testing.T) {
	assert.NoError(t, binding.Validator.ValidateStruct(&SetHealthRequest{Health: "UP"}))
	assert.Error(t, binding.Validator.ValidateStruct(&SetHealthRequest{Health: "DEGRADED"}))
	assert.NoError(t, binding.Validator.ValidateStruct(&SetStatusRequest{Status: "INACTIVE"}))
	assert.Error(t, binding.Validator.ValidateStruct(&SetStatusRequest{Status: ""}))
	assert.NoError(t, binding.Validator.ValidateStruct(&TokenizeRequest{Value: "4111111111111111"}))
	assert.Error(t, binding.Validator.ValidateStruct(&TokenizeRequest{Value: "4111-1111"}))
}
