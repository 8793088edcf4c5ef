package catalog

import (
	"math"
	"testing"

	"github.com/go-leo/gox/errorx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyArithmetic(t *testing.T) {
	t.Run("add returns a new value", func(t *testing.T) {
		five := errorx.Ignore(NewMoney(5))
		eight, err := five.Add(3)
		require.NoError(t, err)
		assert.Equal(t, 8.0, eight.Value())
		assert.Equal(t, 5.0, five.Value())
		assert.Equal(t, KindMoney, eight.Kind())
	})

	t.Run("subtract returns a new value", func(t *testing.T) {
		five := errorx.Ignore(NewMoney(5))
		negative, err := five.Subtract(7.5)
		require.NoError(t, err)
		assert.Equal(t, -2.5, negative.Value())
		assert.Equal(t, 5.0, five.Value())
	})

	t.Run("decimal arithmetic", func(t *testing.T) {
		m := errorx.Ignore(NewMoney(0.1))
		sum, err := m.Add(0.2)
		require.NoError(t, err)
		assert.Equal(t, 0.3, sum.Value())
		assert.True(t, sum.Equals(errorx.Ignore(NewMoney(0.3))))
	})

	t.Run("rejects invalid operands", func(t *testing.T) {
		m := errorx.Ignore(NewMoney(1))
		_, err := m.Add(math.NaN())
		assertReason(t, err, KindMoney, "Money amount is invalid")
		_, err = m.Subtract(math.Inf(1))
		assertReason(t, err, KindMoney, "Money amount is invalid")
	})
}

func TestMoneyCompare(t *testing.T) {
	one := errorx.Ignore(NewMoney(1))
	two := errorx.Ignore(NewMoney(2))
	assert.True(t, one.IsLessThan(two))
	assert.False(t, two.IsLessThan(one))
	assert.False(t, one.IsLessThan(one.Copy()))
	assert.False(t, one.IsLessThan(Money{}))
}

func TestPriceArithmetic(t *testing.T) {
	price := errorx.Ignore(NewPrice(10))

	raised, err := price.Add(2.5)
	require.NoError(t, err)
	assert.Equal(t, 12.5, raised.Value())
	assert.Equal(t, KindPrice, raised.Kind())
	assert.Equal(t, 10.0, price.Value())

	free, err := price.Subtract(10)
	require.NoError(t, err)
	assert.Equal(t, 0.0, free.Value())

	_, err = price.Subtract(10.01)
	assertReason(t, err, KindPrice, "Price cannot be negative")

	assert.True(t, price.IsLessThan(raised))
	assert.True(t, price.Equals(price.Copy()))

	m := price.Money()
	assert.Equal(t, KindMoney, m.Kind())
	assert.Equal(t, 10.0, m.Value())
}

func TestMoneyFormat(t *testing.T) {
	m := errorx.Ignore(NewMoney(5))

	s, err := m.Format("en-US", "USD")
	require.NoError(t, err)
	assert.Contains(t, s, "$")
	assert.Contains(t, s, "5")

	s, err = m.Format("de-DE", "EUR")
	require.NoError(t, err)
	assert.Contains(t, s, "€")

	_, err = m.Format("!!", "USD")
	assert.Error(t, err)

	_, err = m.Format("en-US", "not-a-code")
	assert.Error(t, err)

	price := errorx.Ignore(NewPrice(5))
	fromPrice, err := price.Format("en-US", "USD")
	require.NoError(t, err)
	fromMoney, err := m.Format("en-US", "USD")
	require.NoError(t, err)
	assert.Equal(t, fromMoney, fromPrice)
}
