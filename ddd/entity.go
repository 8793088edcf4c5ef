package ddd

// Entity as explained in the DDD book.
// Entities compare by identity, not by attributes.
type Entity[T any, ID any] interface {

	// SameIdentityAs return true if the identities are the same, regardless of other attributes.
	SameIdentityAs(other T) bool

	// Identity return the identity of this entity.
	Identity() ID
}

// SameIdentity compares two entities by their identity value objects.
func SameIdentity[T Entity[T, ID], ID Equatable[ID]](a, b T) bool {
	return a.Identity().Equals(b.Identity())
}
