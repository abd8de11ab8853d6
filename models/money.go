package models

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a currency amount with two fraction digits. It is encoded in JSON
// as a plain number (25.90) and stored as NUMERIC(10,2).
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d.Round(2)}
}

func MustParseMoney(s string) Money {
	return NewMoney(decimal.RequireFromString(s))
}

func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return NewMoney(d), nil
}

func (m Money) String() string {
	return m.StringFixed(2)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.StringFixed(2)), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		return fmt.Errorf("invalid amount: empty")
	}
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", data, err)
	}
	m.Decimal = d.Round(2)
	return nil
}
