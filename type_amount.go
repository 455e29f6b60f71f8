package budget

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// displayCurrency is only used to format amounts, the ledger itself has no currency.
const displayCurrency = money.USD

// Amount represents a monetary value, in major units.
type Amount struct {
	value decimal.Decimal
}

// A creates an Amount from a numeric value.
func A[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Amount {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return Amount{value: v}
	case float32:
		return Amount{value: decimal.NewFromFloat32(v)}
	case float64:
		return Amount{value: decimal.NewFromFloat(v)}
	case int:
		return Amount{value: decimal.NewFromInt(int64(v))}
	case int32:
		return Amount{value: decimal.NewFromInt32(v)}
	case int64:
		return Amount{value: decimal.NewFromInt(v)}
	case uint:
		return Amount{value: decimal.NewFromUint64(uint64(v))}
	case uint32:
		return Amount{value: decimal.NewFromUint64(uint64(v))}
	case uint64:
		return Amount{value: decimal.NewFromUint64(v)}
	}
	panic(fmt.Sprintf("unsupported amount type %T", value))
}

// ParseAmount parses a user provided amount like "12.50", "$1200" or "1e3".
//
// It fails with ErrInput if s is not a finite number, or if it has more than
// 18 integer digits or 12 decimal places.
func ParseAmount(s string) (Amount, error) {
	txt := strings.TrimSpace(s)
	txt = strings.TrimSpace(strings.TrimPrefix(txt, "$"))
	if txt == "" {
		return Amount{}, fmt.Errorf("%w: amount is empty", ErrInput)
	}
	d, err := decimal.NewFromString(txt)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q is not a number", ErrInput, s)
	}
	if err := checkRange(d); err != nil {
		return Amount{}, fmt.Errorf("%w: %q %w", ErrInput, s, err)
	}
	return Amount{value: d}, nil
}

// Limits of a single amount.
const (
	maxAmountScale  = 12 // digits after the decimal point
	maxAmountDigits = 18 // digits before the decimal point
)

// checkRange rejects values with more digits than an amount can hold.
func checkRange(d decimal.Decimal) error {
	if d.IsZero() {
		return nil
	}
	digits := len(strings.TrimPrefix(d.Coefficient().String(), "-"))
	exp := int(d.Exponent())
	if exp < -maxAmountScale {
		return fmt.Errorf("has more than %d decimal places", maxAmountScale)
	}
	if digits+exp > maxAmountDigits {
		return fmt.Errorf("has more than %d integer digits", maxAmountDigits)
	}
	return nil
}

// String returns the amount formatted in dollars, e.g. "$1,000.00".
//
// It follows the currency formatter of go-money, but works on the decimal
// digits so that no amount overflows.
func (a Amount) String() string {
	// to get a never nil currency I need to call the Money constructor
	f := money.New(0, displayCurrency).Currency().Formatter()
	v := a.value.Round(int32(f.Fraction))

	integer, fraction, _ := strings.Cut(v.Abs().StringFixed(int32(f.Fraction)), ".")
	number := groupThousands(integer, f.Thousand)
	if fraction != "" {
		number += f.Decimal + fraction
	}
	result := strings.Replace(f.Template, "1", number, 1)
	result = strings.Replace(result, "$", f.Grapheme, 1)
	if v.IsNegative() {
		result = "-" + result
	}
	return result
}

// groupThousands inserts sep every three digits, from the right.
func groupThousands(digits, sep string) string {
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteString(sep)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Simple wrappers around decimal.Decimal.

func (a Amount) Decimal() decimal.Decimal  { return a.value }
func (a Amount) Equal(b Amount) bool       { return a.value.Equal(b.value) }
func (a Amount) IsZero() bool              { return a.value.IsZero() }
func (a Amount) IsNegative() bool          { return a.value.IsNegative() }
func (a Amount) GreaterThan(b Amount) bool { return a.value.GreaterThan(b.value) }
func (a Amount) Add(b Amount) Amount       { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount       { return Amount{value: a.value.Sub(b.value)} }

// Ratio returns a/total, or 0 if total is zero.
func (a Amount) Ratio(total Amount) float64 {
	if total.value.IsZero() {
		return 0
	}
	return a.value.Div(total.value).InexactFloat64()
}

// MarshalJSON writes the amount as a bare JSON number, with all its digits.
func (a Amount) MarshalJSON() ([]byte, error) {
	return a.value.MarshalJSON()
}

// UnmarshalJSON reads a JSON number (or a quoted number).
func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	if err := checkRange(d); err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	a.value = d
	return nil
}
