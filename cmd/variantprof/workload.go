package main

import (
	"log/slog"

	"github.com/rawbytedev/variant"
)

type record struct {
	Val      []string
	Integers []int16
	Float6   []float64
}

type coord struct {
	X, Y int32
}

type stats struct {
	emplaced int
	swapped  int
	visited  int
	checksum uint64
}

// workload cycles a heap-carrying set and a plain set through every
// replacement path.
type workload struct {
	mixed *variant.Union3[int64, string, record]
	plain *variant.Union3[int64, float64, coord]
	vis   *variant.Visitor
	seen  int
}

func newWorkload(logger *slog.Logger, noFastPath bool) *workload {
	w := &workload{
		mixed: variant.NewUnion3[int64, string, record](variant.Options{Logger: logger}),
		plain: variant.NewUnion3[int64, float64, coord](variant.Options{Logger: logger, DisableFastPath: noFastPath}),
	}
	// the cases below belong to w.mixed, so building can not fail
	w.vis, _ = variant.NewVisitor(w.mixed.Set,
		variant.On(w.mixed.Alt1, func(s *string) { w.seen += len(*s) }),
		variant.On(w.mixed.Alt2, func(r *record) { w.seen += len(r.Val) }),
		variant.Default(func(int) { w.seen++ }),
	)
	return w
}

func (w *workload) run(n int) (stats, error) {
	var st stats
	a, b := w.mixed.New(), w.mixed.New()
	p, q := w.plain.New(), w.plain.New()
	rec := record{
		Val:      []string{"azerty", "hello", "world", "random"},
		Integers: []int16{100, 250, 300},
		Float6:   []float64{100.5, 165.63, 153.5},
	}
	for i := 0; i < n; i++ {
		var err error
		switch i % 3 {
		case 0:
			err = w.mixed.Alt0.Emplace(a, int64(i))
		case 1:
			err = w.mixed.Alt1.Emplace(a, "azerty")
		default:
			err = w.mixed.Alt2.EmplaceWith(a, func(r *record) error {
				r.Val = append(r.Val, rec.Val...)
				r.Integers = append(r.Integers, rec.Integers...)
				r.Float6 = append(r.Float6, rec.Float6...)
				return nil
			})
		}
		if err != nil {
			return st, err
		}
		if err := w.plain.Alt2.Emplace(p, coord{X: int32(i), Y: -int32(i)}); err != nil {
			return st, err
		}
		if err := w.plain.Alt1.Emplace(q, float64(i)/2); err != nil {
			return st, err
		}
		st.emplaced += 3

		if err := variant.Swap(a, b); err != nil {
			return st, err
		}
		if err := variant.Swap(p, q); err != nil {
			return st, err
		}
		st.swapped += 2

		c := b.Clone()
		if w.vis.Apply(c) {
			st.visited++
		}
		st.checksum ^= c.Hash() ^ p.Hash()
	}
	st.checksum ^= uint64(w.seen)
	return st, nil
}
