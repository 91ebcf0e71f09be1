package i18n

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const defaultDatePattern = "%{month} %{day}, %{year}"

// DateFormatter renders the instant shown in the until clause.
type DateFormatter func(t time.Time) string

// DateFormatOptions control DefaultDateFormatter. Pattern understands
// %{day}, %{month} and %{year}; MonthNames lists January first and falls
// back to English names when it does not hold twelve entries.
type DateFormatOptions struct {
	Pattern    string   `yaml:"pattern"`
	MonthNames []string `yaml:"month_names"`
}

// DefaultDateFormatter formats dates in the calendar date of t (no zone
// conversion). Day and year digits follow the locale's numbering system.
// An unparsable locale falls back to the root locale.
func DefaultDateFormatter(locale string, opts DateFormatOptions) DateFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}

	pattern := opts.Pattern
	if pattern == "" {
		pattern = defaultDatePattern
	}
	months := opts.MonthNames
	if len(months) != 12 {
		months = englishMonthNames
	}

	return func(t time.Time) string {
		p := message.NewPrinter(tag)
		out := strings.Replace(pattern, "%{day}", p.Sprintf("%v", number.Decimal(t.Day(), number.NoSeparator())), 1)
		out = strings.Replace(out, "%{month}", months[t.Month()-1], 1)
		out = strings.Replace(out, "%{year}", p.Sprintf("%v", number.Decimal(t.Year(), number.NoSeparator())), 1)
		return out
	}
}
