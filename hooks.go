package variant

// The interfaces below let an alternative take over one of its special
// operations. They are looked up on *T once, when the alternative is
// described with Of. Without a hook the variant falls back to plain Go
// assignment, zeroing, == (or reflect.DeepEqual) and a structural hash.
//
// Implementing any of Cloner, Destroyer, Mover, Assigner or Swapper removes
// the alternative from the byte-copy fast path.

// Cloner copies a value so the copy shares no mutable state with it.
type Cloner[T any] interface {
	Clone() T
}

// Destroyer releases what a value owns. It runs exactly once per value
// the variant drops, moved-from values included.
type Destroyer interface {
	Destroy()
}

// Mover builds the receiver, a zero value, from src. src must stay valid
// for destruction afterwards. A Mover is assumed to be able to fail, which
// downgrades replacing another alternative from strong to basic safety.
type Mover[T any] interface {
	MoveFrom(src *T) error
}

// Assigner replaces a live receiver with src, taking ownership of src.
type Assigner[T any] interface {
	Assign(src T) error
}

// Swapper exchanges two live values of the same alternative.
type Swapper[T any] interface {
	Swap(other *T) error
}

// Equaler reports value equality.
type Equaler[T any] interface {
	Equal(other T) bool
}

// Hasher computes the hash of a value.
type Hasher interface {
	Hash() uint64
}
