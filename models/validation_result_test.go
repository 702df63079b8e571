package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationResult_Accepted(t *testing.T) {
	assert.True(t, ValidationResult{Errors: []string{}}.Accepted())
	assert.True(t, ValidationResult{}.Accepted())
	assert.False(t, ValidationResult{Errors: []string{"x"}}.Accepted())
}
