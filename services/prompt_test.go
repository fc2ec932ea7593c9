package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payoff-viz/interfaces"
)

func TestCollect_ValidSession(t *testing.T) {
	in := strings.NewReader("call\nlong\n100\n100\n5\n")
	var out bytes.Buffer
	prompts := NewPromptService(in, &out)

	input, err := prompts.Collect()
	require.NoError(t, err)

	assert.Equal(t, interfaces.Call, input.Position.Type)
	assert.Equal(t, interfaces.Long, input.Position.Side)
	assert.Equal(t, 100.0, input.CurrentPrice)
	assert.Equal(t, 100.0, input.Position.Strike)
	assert.Equal(t, 5.0, input.Position.Premium)
	assert.Contains(t, out.String(), "Enter the premium paid per share:")
}

func TestCollect_RepromptsInvalidEnums(t *testing.T) {
	in := strings.NewReader("banana\nCALL\nsideways\nShort\n50\n55\n3\n")
	var out bytes.Buffer
	prompts := NewPromptService(in, &out)

	input, err := prompts.Collect()
	require.NoError(t, err)

	assert.Equal(t, interfaces.Call, input.Position.Type)
	assert.Equal(t, interfaces.Short, input.Position.Side)
	assert.Contains(t, out.String(), "Please enter 'call' or 'put'.")
	assert.Contains(t, out.String(), "Please enter 'long' or 'short'.")
	assert.Contains(t, out.String(), "Enter the premium received per share:")
}

func TestCollect_NonNumericPriceAborts(t *testing.T) {
	in := strings.NewReader("call\nlong\nabc\n")
	var out bytes.Buffer
	prompts := NewPromptService(in, &out)

	_, err := prompts.Collect()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid numeric input")
}

func TestCollect_ExhaustedInputFails(t *testing.T) {
	in := strings.NewReader("call\n")
	var out bytes.Buffer
	prompts := NewPromptService(in, &out)

	_, err := prompts.Collect()
	require.Error(t, err)
}

func TestPrintSummary_LongCall(t *testing.T) {
	calc := NewPayoffCalculator()
	input := &SessionInput{
		Position: interfaces.OptionPosition{
			Type:    interfaces.Call,
			Side:    interfaces.Long,
			Strike:  100,
			Premium: 5,
		},
		CurrentPrice: 100,
	}

	var out bytes.Buffer
	prompts := NewPromptService(strings.NewReader(""), &out)
	prompts.PrintSummary(input, calc.Summarize(input.CurrentPrice, input.Position))

	text := out.String()
	assert.Contains(t, text, "Premium Paid")
	assert.Contains(t, text, "$105.00")
	assert.Contains(t, text, "$-5.00")
	assert.Contains(t, text, "Unlimited")
}

func TestPrintSummary_ShortPut(t *testing.T) {
	calc := NewPayoffCalculator()
	input := &SessionInput{
		Position: interfaces.OptionPosition{
			Type:    interfaces.Put,
			Side:    interfaces.Short,
			Strike:  55,
			Premium: 3,
		},
		CurrentPrice: 50,
	}

	var out bytes.Buffer
	prompts := NewPromptService(strings.NewReader(""), &out)
	prompts.PrintSummary(input, calc.Summarize(input.CurrentPrice, input.Position))

	text := out.String()
	assert.Contains(t, text, "Premium Received")
	assert.Contains(t, text, "$52.00")
	assert.Contains(t, text, "$-2.00")
}
