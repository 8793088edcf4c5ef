package catalog

import (
	"fmt"
	"math"

	"github.com/go-leo/valueobject/ddd"
	"github.com/go-leo/valueobject/valueobject"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	_ ddd.ValueObject[Money] = Money{}
	_ ddd.Comparable[Money]  = Money{}
	_ ddd.Copyable[Money]    = Money{}
	_ ddd.ValueObject[Price] = Price{}
	_ ddd.Comparable[Price]  = Price{}
	_ ddd.Copyable[Price]    = Price{}
)

var moneyType = valueobject.Define[float64](KindMoney,
	valueobject.NewRule("Money amount is invalid", func(v float64) bool {
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	}),
)

var priceType = valueobject.Extend(moneyType, KindPrice,
	valueobject.NewRule("Price cannot be negative", func(v float64) bool {
		return v >= 0
	}),
)

// Money is an amount of some currency. It is immutable: Add and Subtract
// return new values.
type Money struct {
	valueobject.Base[float64]
}

func NewMoney(amount float64) (Money, error) {
	b, err := moneyType.New(amount)
	if err != nil {
		return Money{}, err
	}
	return Money{Base: b}, nil
}

func (m Money) Equals(other Money) bool {
	return m.Base.Equals(other.Base)
}

func (m Money) IsLessThan(other Money) bool {
	less, err := valueobject.Less(m.Base, other.Base)
	return err == nil && less
}

func (m Money) Copy() Money {
	return m
}

// Add returns a new Money holding m + amount.
func (m Money) Add(amount float64) (Money, error) {
	sum, err := combine(m.Value(), amount, decimal.Decimal.Add)
	if err != nil {
		return Money{}, err
	}
	return NewMoney(sum)
}

// Subtract returns a new Money holding m - amount.
func (m Money) Subtract(amount float64) (Money, error) {
	diff, err := combine(m.Value(), amount, decimal.Decimal.Sub)
	if err != nil {
		return Money{}, err
	}
	return NewMoney(diff)
}

// Format renders the amount with the currency symbol, localized for locale,
// e.g. Format("en-US", "USD").
func (m Money) Format(locale string, currencyCode string) (string, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return "", fmt.Errorf("catalog: invalid locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return "", fmt.Errorf("catalog: invalid currency code %q: %w", currencyCode, err)
	}
	return message.NewPrinter(tag).Sprint(currency.Symbol(unit.Amount(m.Value()))), nil
}

// combine runs op on decimal representations so that 0.1 + 0.2 == 0.3.
func combine(a float64, b float64, op func(decimal.Decimal, decimal.Decimal) decimal.Decimal) (float64, error) {
	if err := moneyType.Validate(b); err != nil {
		return 0, err
	}
	result, _ := op(decimal.NewFromFloat(a), decimal.NewFromFloat(b)).Float64()
	return result, nil
}

// Price is a Money that can not be negative.
type Price struct {
	valueobject.Base[float64]
}

func NewPrice(amount float64) (Price, error) {
	b, err := priceType.New(amount)
	if err != nil {
		return Price{}, err
	}
	return Price{Base: b}, nil
}

// Money returns the price as a plain Money.
func (p Price) Money() Money {
	return Money{Base: moneyType.Must(p.Value())}
}

func (p Price) Equals(other Price) bool {
	return p.Base.Equals(other.Base)
}

func (p Price) IsLessThan(other Price) bool {
	less, err := valueobject.Less(p.Base, other.Base)
	return err == nil && less
}

func (p Price) Copy() Price {
	return p
}

// Add returns a new Price holding p + amount.
func (p Price) Add(amount float64) (Price, error) {
	sum, err := p.Money().Add(amount)
	if err != nil {
		return Price{}, err
	}
	return NewPrice(sum.Value())
}

// Subtract returns a new Price holding p - amount. It fails when the result is negative.
func (p Price) Subtract(amount float64) (Price, error) {
	diff, err := p.Money().Subtract(amount)
	if err != nil {
		return Price{}, err
	}
	return NewPrice(diff.Value())
}

func (p Price) Format(locale string, currencyCode string) (string, error) {
	return p.Money().Format(locale, currencyCode)
}
