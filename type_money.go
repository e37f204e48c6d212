package fixedincome

import (
	"encoding/json"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a display currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M builds a Money from a float amount and an ISO currency code. The ""
// currency is valid and totally weak: it formats without a symbol.
func M(value float64, currency string) Money {
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// currency returns the money's currency, never nil.
func (m Money) currency() *money.Currency {
	return money.New(0, m.cur).Currency()
}

// String renders the amount with the currency formatter.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string      { return m.cur }
func (m Money) Equal(n Money) bool    { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool          { return m.value.IsZero() }
func (m Money) LessThan(n Money) bool { return m.value.LessThan(n.value) }
func (m Money) Add(n Money) Money     { return Money{value: m.value.Add(n.value), cur: m.cur} }
func (m Money) AsFloat() float64      { return m.value.InexactFloat64() }

// MarshalJSON encodes the amount as a decimal string plus its currency code,
// for the dashboard API.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Amount   string `json:"amount"`
		Currency string `json:"currency,omitempty"`
	}{Amount: m.value.StringFixed(2), Currency: m.cur})
}
