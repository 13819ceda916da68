package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeMarkdownV2(t *testing.T) {
	assert.Equal(t, "Layer\\_Layd", EscapeMarkdownV2("Layer_Layd"))
	assert.Equal(t, "\\*star\\* \\`tick\\` \\[link\\]", EscapeMarkdownV2("*star* `tick` [link]"))
	assert.Equal(t, "0\\.0000050000", EscapeMarkdownV2("0.0000050000"))
	assert.Equal(t, "a\\\\b \\(c\\) \\- d\\!", EscapeMarkdownV2("a\\b (c) - d!"))
	assert.Equal(t, "N/A", EscapeMarkdownV2("N/A"))
}

func TestFormatAmount(t *testing.T) {
	tests := map[float64]string{
		5000:     "5000",
		120:      "120",
		120.5:    "120.5",
		1234.567: "1234.57",
		0.004:    "0",
		0:        "0",
		99.999:   "100",
		42.10:    "42.1",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatAmount(in), "FormatAmount(%v)", in)
	}
}

func TestFormatFixed(t *testing.T) {
	assert.Equal(t, "0.0000050000", FormatFixed(5000.0/1_000_000_000, 10))
	assert.Equal(t, "6250.00", FormatFixed(6250, 2))
}

func TestSameSymbol(t *testing.T) {
	assert.True(t, SameSymbol("layld", "LAYLD"))
	assert.True(t, SameSymbol(" Alph ", "ALPH"))
	assert.False(t, SameSymbol("layl", "LAYLD"))
	assert.False(t, SameSymbol("", "LAYLD"))
}

func TestLower(t *testing.T) {
	assert.Equal(t, "layld", Lower("LAYLD"))
}
