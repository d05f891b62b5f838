package tooltip

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatValue renders v for display with en-US digit grouping.
func FormatValue(v float64) string {
	return message.NewPrinter(language.AmericanEnglish).Sprint(number.Decimal(v))
}
