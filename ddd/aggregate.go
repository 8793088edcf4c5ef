package ddd

// Aggregate is a cluster of objects treated as one unit for changes.
// Outside objects hold references to the Root only.
type Aggregate[T any, ID any] interface {
	Root() Entity[T, ID]
}
