package valueobject

// Kind names a concrete value object variant, e.g. "ProductId".
// Two values are only ever equal when their kinds are equal.
type Kind string

func (k Kind) String() string {
	return string(k)
}
