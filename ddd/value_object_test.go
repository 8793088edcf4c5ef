package ddd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	_ ValueObject[Sku] = Sku("")
	_ Comparable[Sku]  = Sku("")
	_ Copyable[Sku]    = Sku("")
)

type Sku string

func (s Sku) Equals(other Sku) bool {
	return s == other
}

func (s Sku) IsLessThan(other Sku) bool {
	return s < other
}

func (s Sku) Copy() Sku {
	return s
}

func (s Sku) Validate() error {
	if s == "" {
		return errors.New("sku is empty")
	}
	return nil
}

func (s Sku) IsValid() bool {
	return s.Validate() == nil
}

func TestValueObject(t *testing.T) {
	a := Sku("A-1")
	b := Sku("B-2")

	assert.True(t, a.Equals(a.Copy()))
	assert.False(t, a.Equals(b))
	assert.True(t, a.IsLessThan(b))
	assert.False(t, b.IsLessThan(a))
	assert.True(t, a.IsValid())
	assert.False(t, Sku("").IsValid())
}
