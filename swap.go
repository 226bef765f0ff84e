package variant

import (
	"errors"
	"unsafe"
)

// Swap exchanges the contents of a and b.
//
// When both hold the same alternative its own swap is used, so the outcome
// of a failure is the alternative's. When only one holds a value, it is
// moved into the other and the source is reset.
//
// When they hold different alternatives the exchange goes through a
// temporary variant in three moves: a into the temporary, b into a, the
// temporary into b. If the second move fails, a's original value is moved
// back from the temporary. If the third fails, a holds b's original value,
// b is empty or holds a moved-from value, and a's original value is lost.
func Swap(a, b *Variant) error {
	if err := a.sameSet(b); err != nil {
		return err
	}
	if a == b {
		return nil
	}
	if a.set.trivial {
		a.store.Swap(&b.store)
		a.which, b.which = b.which, a.which
		return nil
	}
	switch {
	case a.HasValue() && b.HasValue():
		if a.which == b.which {
			var err error
			b.dispatch(func(e *entry, p unsafe.Pointer) {
				err = e.swap(a.store.Pointer(), p)
			})
			return err
		}
		return swapDistinct(a, b)
	case a.HasValue():
		return moveOver(b, a)
	case b.HasValue():
		return moveOver(a, b)
	}
	return nil
}

// moveOver moves src's value into the empty dst and resets src.
func moveOver(dst, src *Variant) error {
	var err error
	src.dispatch(func(e *entry, p unsafe.Pointer) {
		q := dst.store.Prepare(e.shape)
		if err = e.moveTo(q, p); err != nil {
			e.clear(q)
			return
		}
		dst.which = e.index
	})
	if err != nil {
		return err
	}
	src.destroy()
	return nil
}

func swapDistinct(a, b *Variant) error {
	tmp, err := a.Move()
	if err != nil {
		return err
	}
	if err := a.MoveFrom(b); err != nil {
		if rerr := a.MoveFrom(tmp); rerr != nil {
			err = errors.Join(err, rerr)
		}
		tmp.destroy()
		return err
	}
	err = b.MoveFrom(tmp)
	tmp.destroy()
	return err
}

// Swap exchanges the contents of v and o; see the package-level Swap.
func (v *Variant) Swap(o *Variant) error { return Swap(v, o) }
