package variant

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/rawbytedev/variant/pkg/rawstorage"
)

// Options tunes how a Set is built.
type Options struct {
	// DisableFastPath routes every operation through the per-alternative
	// dispatch table even when all alternatives could be copied bytewise.
	DisableFastPath bool
	// Logger receives debug records about the built set. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// Set is a closed, ordered list of alternative types together with their
// dispatch table. A Set is immutable once built and may be shared freely;
// the variants created from it are not safe for concurrent use.
type Set struct {
	entries []*entry
	byType  map[reflect.Type]int
	layout  rawstorage.Layout
	trivial bool
}

// NewSet builds a set from the given alternatives, in order. Interface types
// and duplicate types are rejected.
func NewSet(opts Options, alts ...Descriptor) (*Set, error) {
	if len(alts) == 0 {
		return nil, ErrNoAlternatives
	}
	s := &Set{
		entries: make([]*entry, len(alts)),
		byType:  make(map[reflect.Type]int, len(alts)),
		trivial: !opts.DisableFastPath,
	}
	layouts := make([]rawstorage.Layout, len(alts))
	for i, d := range alts {
		if d.e == nil {
			return nil, fmt.Errorf("alternative %d: %w", i, ErrInvalidAlternative)
		}
		if d.e.typ.Kind() == reflect.Interface {
			return nil, fmt.Errorf("alternative %d: %w", i, ErrInvalidAlternative)
		}
		if prev, ok := s.byType[d.e.typ]; ok {
			return nil, fmt.Errorf("alternatives %d and %d: %w", prev, i, ErrDuplicateAlternative)
		}
		e := d.at(i)
		s.entries[i] = e
		s.byType[e.typ] = i
		layouts[i] = e.layout
		s.trivial = s.trivial && e.trivial
	}
	s.layout = rawstorage.MaxLayout(layouts...)

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("variant set built",
		"alternatives", len(s.entries),
		"size", s.layout.Size,
		"align", s.layout.Align,
		"fast_path", s.trivial)
	for _, e := range s.entries {
		logger.Debug("variant alternative",
			"index", e.index,
			"size", e.layout.Size,
			"trivial", e.trivial,
			"nothrow_move", e.nothrowMove,
			"pointers", !e.shape.Plain())
	}
	return s, nil
}

// MustSet is like NewSet but panics on error.
func MustSet(opts Options, alts ...Descriptor) *Set {
	s, err := NewSet(opts, alts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of alternatives, which is also the index reported
// by an empty variant.
func (s *Set) Len() int { return len(s.entries) }

// Trivial reports whether the set uses the byte-copy fast path.
func (s *Set) Trivial() bool { return s.trivial }

// Layout returns the size and alignment of the shared storage region.
func (s *Set) Layout() rawstorage.Layout { return s.layout }

// New returns an empty variant of the set.
func (s *Set) New() *Variant {
	return &Variant{
		set:   s,
		store: rawstorage.New(s.layout),
		which: len(s.entries),
	}
}

func alternativeAt[T any](s *Set, i int) Alternative[T] {
	a, err := Lookup[T](s)
	if err != nil || a.index != i {
		panic(fmt.Errorf("alternative %d: %w", i, ErrNotAlternative))
	}
	return a
}

// Union1 is a set of one alternative.
type Union1[A any] struct {
	*Set
	Alt0 Alternative[A]
}

// NewUnion1 builds a one-alternative set. It panics if A is an interface
// type.
func NewUnion1[A any](opts Options) *Union1[A] {
	s := MustSet(opts, Of[A]())
	return &Union1[A]{Set: s, Alt0: alternativeAt[A](s, 0)}
}

// Union2 is a set of two alternatives.
type Union2[A, B any] struct {
	*Set
	Alt0 Alternative[A]
	Alt1 Alternative[B]
}

// NewUnion2 builds a two-alternative set. It panics on interface or
// duplicate types.
func NewUnion2[A, B any](opts Options) *Union2[A, B] {
	s := MustSet(opts, Of[A](), Of[B]())
	return &Union2[A, B]{Set: s, Alt0: alternativeAt[A](s, 0), Alt1: alternativeAt[B](s, 1)}
}

// Union3 is a set of three alternatives.
type Union3[A, B, C any] struct {
	*Set
	Alt0 Alternative[A]
	Alt1 Alternative[B]
	Alt2 Alternative[C]
}

// NewUnion3 builds a three-alternative set. It panics on interface or
// duplicate types.
func NewUnion3[A, B, C any](opts Options) *Union3[A, B, C] {
	s := MustSet(opts, Of[A](), Of[B](), Of[C]())
	return &Union3[A, B, C]{
		Set:  s,
		Alt0: alternativeAt[A](s, 0),
		Alt1: alternativeAt[B](s, 1),
		Alt2: alternativeAt[C](s, 2),
	}
}

// Union4 is a set of four alternatives.
type Union4[A, B, C, D any] struct {
	*Set
	Alt0 Alternative[A]
	Alt1 Alternative[B]
	Alt2 Alternative[C]
	Alt3 Alternative[D]
}

// NewUnion4 builds a four-alternative set. It panics on interface or
// duplicate types.
func NewUnion4[A, B, C, D any](opts Options) *Union4[A, B, C, D] {
	s := MustSet(opts, Of[A](), Of[B](), Of[C](), Of[D]())
	return &Union4[A, B, C, D]{
		Set:  s,
		Alt0: alternativeAt[A](s, 0),
		Alt1: alternativeAt[B](s, 1),
		Alt2: alternativeAt[C](s, 2),
		Alt3: alternativeAt[D](s, 3),
	}
}
