package valueobject

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-leo/valueobject/specification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	code = Define[string]("Code",
		Tag[string]("required", "Code can not be empty"),
		Tag[string]("max=3", "Code can not be longer than 3 characters"),
	)
	label = Define[string]("Label",
		Tag[string]("required", "Label can not be empty"),
	)
	amount = Define[int]("Amount",
		NewRule("Amount must be even", func(v int) bool { return v%2 == 0 }),
	)
	positiveAmount = Extend(amount, "PositiveAmount",
		Satisfies(specification.New(func(v int) bool { return v > 0 }), "Amount must be positive"),
	)
)

func TestDefinePanicsOnEmptyKind(t *testing.T) {
	assert.Panics(t, func() {
		Define[string]("")
	})
}

func TestTypeNew(t *testing.T) {
	t.Run("accepts values within the rule", func(t *testing.T) {
		v, err := code.New("abc")
		require.NoError(t, err)
		assert.Equal(t, "abc", v.Value())
		assert.Equal(t, Kind("Code"), v.Kind())
		assert.False(t, v.IsZero())
		assert.True(t, v.IsValid())
	})

	t.Run("counts characters, not bytes", func(t *testing.T) {
		_, err := code.New("äöü")
		assert.NoError(t, err)
	})

	t.Run("reports the first failing rule", func(t *testing.T) {
		v, err := code.New("")
		require.Error(t, err)
		assert.True(t, v.IsZero())
		assert.True(t, errors.Is(err, ErrValidation))

		verr, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, Kind("Code"), verr.Kind)
		assert.Equal(t, "Code can not be empty", verr.Reason)
		assert.Equal(t, "", verr.Value)
		assert.Equal(t, "valueobject: Code: Code can not be empty", err.Error())

		_, err = code.New("abcd")
		verr, ok = AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "Code can not be longer than 3 characters", verr.Reason)
	})

	t.Run("validate is callable without constructing", func(t *testing.T) {
		assert.NoError(t, code.Validate("ab"))
		assert.Error(t, code.Validate("abcd"))
	})

	t.Run("must panics on invalid input", func(t *testing.T) {
		assert.NotPanics(t, func() { code.Must("a") })
		assert.Panics(t, func() { code.Must("") })
	})
}

func TestExtend(t *testing.T) {
	_, err := positiveAmount.New(3)
	verr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "Amount must be even", verr.Reason, "parent rules run first")
	assert.Equal(t, Kind("PositiveAmount"), verr.Kind)

	_, err = positiveAmount.New(-2)
	verr, ok = AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "Amount must be positive", verr.Reason)

	v, err := positiveAmount.New(4)
	require.NoError(t, err)
	assert.Equal(t, Kind("PositiveAmount"), v.Kind())

	// the parent is untouched by the extension
	_, err = amount.New(-2)
	assert.NoError(t, err)
}

func TestEquals(t *testing.T) {
	a := code.Must("a")
	b := code.Must("b")
	l := label.Must("a")

	assert.True(t, a.Equals(code.Must("a")))
	assert.True(t, code.Must("a").Equals(a))
	assert.False(t, a.Equals(b))
	assert.False(t, a.Equals(l), "same primitive, different kind")

	assert.True(t, Equal(a, code.Must("a")))
	assert.False(t, Equal(a, l))
	assert.False(t, Equal(a, nil))
	assert.True(t, Equal(nil, nil))
}

func TestZeroBase(t *testing.T) {
	var zero Base[string]
	assert.True(t, zero.IsZero())
	assert.Equal(t, Kind(""), zero.Kind())
	assert.False(t, zero.IsValid())
	assert.True(t, errors.Is(zero.Validate(), ErrValidation))
	assert.False(t, zero.Equals(code.Must("a")))
}

func TestLess(t *testing.T) {
	less, err := Less(amount.Must(2), amount.Must(4))
	require.NoError(t, err)
	assert.True(t, less)

	less, err = Less(amount.Must(4), amount.Must(2))
	require.NoError(t, err)
	assert.False(t, less)

	_, err = Less(amount.Must(2), positiveAmount.Must(4))
	assert.ErrorIs(t, err, ErrKindMismatch)
}

func TestString(t *testing.T) {
	assert.Equal(t, "abc", code.Must("abc").String())
	assert.Equal(t, "42", amount.Must(42).String())
}

func TestRuleAccessors(t *testing.T) {
	rule := Tag[string]("ne=123", "Id is invalid")
	assert.Equal(t, "Id is invalid", rule.Reason())
	assert.False(t, rule.Specification().IsSatisfiedBy("123"))
	assert.True(t, rule.Specification().IsSatisfiedBy("1234"))
	assert.NoError(t, rule.Check("VendorId", "1234"))
	assert.True(t, strings.HasSuffix(rule.Check("VendorId", "123").Error(), "Id is invalid"))

	var empty Rule[string]
	assert.Error(t, empty.Check("Any", "x"))
}
