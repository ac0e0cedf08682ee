package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Method  string `json:"method" validate:"required,oneof=card esewa"`
	Count   int    `json:"count" validate:"gte=1,lte=20"`
	Session string `json:"session_id" validate:"omitempty,uuid4"`
}

func TestValidateStruct(t *testing.T) {
	assert.Nil(t, ValidateStruct(sampleRequest{Method: "card", Count: 2}))

	errs := ValidateStruct(sampleRequest{Method: "paypal", Count: 21, Session: "nope"})

	assert.Equal(t, map[string]string{
		"method":     "Must be one of: card, esewa",
		"count":      "Must be at most 20",
		"session_id": "Must be a valid UUID",
	}, errs)
	assert.Equal(t, "count: Must be at most 20; method: Must be one of: card, esewa; session_id: Must be a valid UUID",
		FormatValidationErrors(errs))
}
