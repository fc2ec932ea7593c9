package interfaces

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionType(t *testing.T) {
	tests := []struct {
		input    string
		expected OptionType
		wantErr  bool
	}{
		{"call", Call, false},
		{"CALL", Call, false},
		{"  Put \n", Put, false},
		{"put", Put, false},
		{"stock", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		result, err := ParseOptionType(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input=%q", tt.input)
			continue
		}
		require.NoError(t, err, "input=%q", tt.input)
		assert.Equal(t, tt.expected, result)
	}
}

func TestParsePositionSide(t *testing.T) {
	tests := []struct {
		input    string
		expected PositionSide
		wantErr  bool
	}{
		{"long", Long, false},
		{"LONG", Long, false},
		{"Short", Short, false},
		{"buy", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		result, err := ParsePositionSide(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input=%q", tt.input)
			continue
		}
		require.NoError(t, err, "input=%q", tt.input)
		assert.Equal(t, tt.expected, result)
	}
}

func TestMoneyValue_String(t *testing.T) {
	assert.Equal(t, "$5.00", MoneyValue{Amount: 5}.String())
	assert.Equal(t, "$-5.00", MoneyValue{Amount: -5}.String())
	assert.Equal(t, "$0.00", MoneyValue{}.String())
	assert.Equal(t, "$52.50", MoneyValue{Amount: 52.499999}.String())
	assert.Equal(t, "Unlimited", MoneyValue{Unbounded: true}.String())
}
