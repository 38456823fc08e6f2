package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a currency amount read from the data feed. The feed is plain decimal
// text, occasionally with a leading "$" or thousands separators. A field that
// fails to parse contributes nothing, so decoding never aborts a row.
//
// Amounts keep full precision through every accumulation step; rounding to two
// decimals happens only when a value is emitted.
type Money struct {
	decimal.Decimal
}

// NewMoney builds a Money from a float, mainly for tests and derived values.
func NewMoney(f float64) Money {
	return Money{decimal.NewFromFloat(f)}
}

// UnmarshalCSV implements gocsv.TypeUnmarshaller. Malformed input decodes to 0.
func (m *Money) UnmarshalCSV(s string) error {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		m.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		m.Decimal = decimal.Zero
		return nil
	}
	m.Decimal = d
	return nil
}

// MarshalCSV emits the amount rounded to two decimals.
func (m Money) MarshalCSV() (string, error) {
	return m.StringFixed(2), nil
}

// Display renders the amount for a report cell, two decimals.
func (m Money) Display() string {
	return m.StringFixed(2)
}

// Float returns the amount rounded to two decimals as a float64. Used when a
// series point is emitted.
func (m Money) Float() float64 {
	f, _ := m.Round(2).Float64()
	return f
}

// Add returns m + other at full precision.
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Abs returns |m|.
func (m Money) Abs() Money {
	return Money{m.Decimal.Abs()}
}

// Sub returns m - other at full precision.
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}
