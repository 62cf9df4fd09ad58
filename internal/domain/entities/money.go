package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxMoneyCents bounds every amount, R$ 1 trillion. Sums of two bounded
// amounts never overflow int64.
const MaxMoneyCents int64 = 100_000_000_000_000

var maxMoney = Money{cents: MaxMoneyCents}

// Money is an amount in cents within [0, MaxMoneyCents]. The zero value is a
// valid amount of zero.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, fmt.Errorf("%w: %d", ErrNegativeMoney, cents)
	}
	if cents > MaxMoneyCents {
		return Money{}, fmt.Errorf("%w: %d", ErrMoneyOutOfRange, cents)
	}
	return Money{cents: cents}, nil
}

// MustMoney is NewMoney for literals known to be valid.
func MustMoney(cents int64) Money {
	m, err := NewMoney(cents)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) (Money, error) {
	return NewMoney(m.cents + other.cents)
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

// Decimal converts to the display unit (cents / 100). Used only at
// presentation boundaries.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.cents, -2)
}

func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

// SumMoney adds up a list of amounts and fails once the running total leaves
// the Money range.
func SumMoney(amounts ...Money) (Money, error) {
	var total Money
	for _, a := range amounts {
		next, err := total.Add(a)
		if err != nil {
			return Money{}, err
		}
		total = next
	}
	return total, nil
}
