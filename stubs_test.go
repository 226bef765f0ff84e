package variant

import "errors"

var errRigged = errors.New("rigged construction")

// counters records lifecycle events of tracked values.
type counters struct {
	destroyed int
	assigned  int
	cloned    int
}

// tracked is a non-trivial alternative that reports to its counters.
// Zero (moved-from) values carry no counters and report nothing.
type tracked struct {
	ID int
	c  *counters
}

func (t *tracked) Destroy() {
	if t.c != nil {
		t.c.destroyed++
	}
}

func (t *tracked) Assign(src tracked) error {
	if src.c != nil {
		src.c.assigned++
	}
	t.ID, t.c = src.ID, src.c
	return nil
}

func (t *tracked) Clone() tracked {
	if t.c != nil {
		t.c.cloned++
	}
	return *t
}

func (t tracked) Equal(o tracked) bool { return t.ID == o.ID }

// rigged can be moved without failure; its initializer fails on negative
// input.
type rigged struct {
	N int
	S []int
}

func buildRigged(n int) func(*rigged) error {
	return func(r *rigged) error {
		r.N = n
		if n < 0 {
			return errRigged
		}
		r.S = []int{n}
		return nil
	}
}

// sticky has a move that may fail, which downgrades replacement to basic
// safety.
type sticky struct {
	N    int
	Fail bool
}

func (s *sticky) MoveFrom(src *sticky) error {
	if src.Fail {
		return errRigged
	}
	*s, *src = *src, sticky{}
	return nil
}

// refusing rejects assignment.
type refusing struct{ N int }

func (r *refusing) Assign(src refusing) error {
	if src.N < 0 {
		return errRigged
	}
	r.N = src.N
	return nil
}

// swapCounter counts its own swaps.
type swapCounter struct {
	N     int
	swaps *int
}

func (s *swapCounter) Swap(other *swapCounter) error {
	*s, *other = *other, *s
	if s.swaps != nil {
		*s.swaps++
	}
	return nil
}

// fixedHash hashes to its Key.
type fixedHash struct{ Key uint64 }

func (f fixedHash) Hash() uint64 { return f.Key }

// flaky counts the moves of its value and fails the one numbered FailAt.
type flaky struct {
	ID     int
	FailAt int
	moves  *int
	c      *counters
}

func (f *flaky) MoveFrom(src *flaky) error {
	*src.moves++
	if *src.moves == src.FailAt {
		return errRigged
	}
	*f, *src = *src, flaky{}
	return nil
}

func (f *flaky) Destroy() {
	if f.c != nil {
		f.c.destroyed++
	}
}

// halfMover copies itself into the destination and then fails when Fail is
// set, leaving a half-built destination behind. dst records where it went.
type halfMover struct {
	S    []int
	Fail bool
	dst  **halfMover
}

func (h *halfMover) MoveFrom(src *halfMover) error {
	*h = *src
	if src.dst != nil {
		*src.dst = h
	}
	if src.Fail {
		return errRigged
	}
	*src = halfMover{}
	return nil
}
