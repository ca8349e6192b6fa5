package config_test

import (
	"testing"

	"github.com/randalmurphal/exprlang/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestReservedFunctionsEnabled(t *testing.T) {
	assert.True(t, config.New(nil).ReservedFunctionsEnabled())
	assert.False(t, config.New(map[string]any{"reserved_functions_enabled": false}).ReservedFunctionsEnabled())
}

func TestMaxStringLength(t *testing.T) {
	assert.Equal(t, 0, config.New(nil).MaxStringLength())
	assert.Equal(t, 256, config.New(map[string]any{"max_string_length": 256}).MaxStringLength())
}

func TestMaxListLength(t *testing.T) {
	assert.Equal(t, 0, config.New(nil).MaxListLength())
	assert.Equal(t, 64, config.New(map[string]any{"max_list_length": 64}).MaxListLength())
}
