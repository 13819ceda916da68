package helpers

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NotAvailable is rendered in place of any value that cannot be computed.
const NotAvailable = "N/A"

// EscapeMarkdownV2 escapes every character that Telegram MarkdownV2 reserves. Escapes are honoured
// inside entities too, so the result is safe within bold, italic and code spans.
func EscapeMarkdownV2(text string) string {
	charactersToEscape := []string{"\\", ".", "-", "_", "*", "[", "]", "(", ")", "~", "`", ">", "#", "+", "=", "|", "{", "}", "!"}

	for _, char := range charactersToEscape {
		text = strings.ReplaceAll(text, char, "\\"+char)
	}
	return text
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatAmount renders a native amount rounded to two decimals without trailing zeros: 5000 -> "5000", 120.5 -> "120.5".
func FormatAmount(v float64) string {
	return humanize.FtoaWithDigits(Round2(v), 2)
}

func FormatFixed(v float64, decimals int) string {
	return fmt.Sprintf("%.*f", decimals, v)
}

// SameSymbol reports whether two tickers are equal under Unicode case folding.
// Casers are stateful, so each call builds its own.
func SameSymbol(a, b string) bool {
	fold := cases.Fold()
	return fold.String(strings.TrimSpace(a)) == fold.String(strings.TrimSpace(b))
}

func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
