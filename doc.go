// Package variant implements a closed tagged union: a value that holds at
// most one of a fixed list of alternative types, kept in a single region
// sized and aligned for the largest of them.
//
// A Set fixes the alternatives and owns the dispatch table that routes
// copy, move, destroy, swap, equality and hashing to the held alternative's
// own operations. When every alternative is pointer-free and declares no
// lifecycle hook, the set takes a fast path that copies, swaps and drops the
// raw bytes directly.
//
//	u := variant.NewUnion3[int, float32, string](variant.Options{})
//	v := u.Alt0.New(4)
//	v.Which()          // 0
//	u.Alt0.Is(v, 4)    // true
//	u.Alt1.Is(v, 3)    // false
//	u.Alt2.Emplace(v, "hello")
//	*u.Alt2.Get(v)     // "hello"
//
// Replacing one alternative with another gives the strong guarantee when the
// new value is built by a fallible initializer and its type's move can not
// fail: the new value is built aside and the old one survives an error.
// Otherwise only the basic guarantee holds: the variant ends up empty.
//
// Variants are single-goroutine values. Sets are immutable and may be
// shared.
package variant
