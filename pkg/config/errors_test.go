package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	base := errors.New("boom")

	withField := NewValidationError("tool", "serper", "tier", base)
	assert.Equal(t, "tool 'serper': field 'tier': boom", withField.Error())
	assert.ErrorIs(t, withField, base)

	withoutField := NewValidationError("route", "web_search", "", base)
	assert.Equal(t, "route 'web_search': boom", withoutField.Error())
}

func TestLoadError(t *testing.T) {
	err := NewLoadError("prospector.yaml", ErrConfigNotFound)
	assert.Contains(t, err.Error(), "prospector.yaml")
	assert.ErrorIs(t, err, ErrConfigNotFound)
}
