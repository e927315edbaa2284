// Package money holds monetary amounts as integer minor units.
//
// All arithmetic in the till happens on Amount values so that repeated
// add/remove cycles never drift. Formatting for display lives here too, but
// formatted strings are never fed back into calculations except through
// ParseTender.
package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Amount is a monetary value in minor units of the till currency.
type Amount int64

const (
	// MaxAmount is the largest representable amount. ParseTender, Add and Mul
	// saturate here.
	MaxAmount = Amount(math.MaxInt64)
	// MinAmount is the smallest representable amount.
	MinAmount = Amount(math.MinInt64)

	// MaxPrice is the highest unit price a catalog product may carry.
	MaxPrice = Amount(1_000_000_000_000)
)

// Add returns a+b, clamped to [MinAmount, MaxAmount].
func (a Amount) Add(b Amount) Amount {
	switch {
	case b > 0 && a > MaxAmount-b:
		return MaxAmount
	case b < 0 && a < MinAmount-b:
		return MinAmount
	}
	return a + b
}

// Mul returns the amount multiplied by a whole quantity, clamped to
// [MinAmount, MaxAmount].
func (a Amount) Mul(qty int) Amount {
	if a == 0 || qty == 0 {
		return 0
	}
	q := Amount(qty)
	p := a * q
	if p/q != a || (a == -1 && q == MinAmount) || (q == -1 && a == MinAmount) {
		if (a > 0) == (q > 0) {
			return MaxAmount
		}
		return MinAmount
	}
	return p
}

// Saturated reports whether a sits at either bound, meaning the true value
// may not have fit.
func (a Amount) Saturated() bool {
	return a == MaxAmount || a == MinAmount
}

// Int64 returns the raw minor-unit count.
func (a Amount) Int64() int64 {
	return int64(a)
}

// ParseTender interprets free-form cash input by discarding every non-digit
// character. "Rp 29.700", "29,700" and "29700" all parse to 29700. An input
// without digits parses to zero.
//
// Decimal separators are discarded as well, so "100.50" parses to 10050.
func ParseTender(raw string) Amount {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := strings.TrimLeft(b.String(), "0")
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return MaxAmount
	}
	return Amount(n)
}

// Formatter renders amounts with locale digit grouping and a fixed prefix.
type Formatter struct {
	printer *message.Printer
	prefix  string
}

// NewFormatter builds a Formatter for a BCP 47 locale such as "id-ID".
func NewFormatter(locale, prefix string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return &Formatter{
		printer: message.NewPrinter(tag),
		prefix:  prefix,
	}, nil
}

// Format returns e.g. "Rp 29.700" for the id-ID locale.
func (f *Formatter) Format(a Amount) string {
	n := f.printer.Sprintf("%d", int64(a))
	if f.prefix == "" {
		return n
	}
	return f.prefix + " " + n
}
