package variant

import "unsafe"

// source produces the value an emplace installs.
type source struct {
	// construct builds the value into dst, a zeroed region of the target
	// alternative.
	construct func(dst unsafe.Pointer) error
	// value points at a ready value of the target alternative when the
	// target is directly assignable from the source. It is consumed by the
	// emplace.
	value unsafe.Pointer
	// owned marks value as belonging to the emplace, so it is destroyed if
	// the emplace fails to consume it.
	owned    bool
	fallible bool
}

// valueSource moves a ready value of e's alternative into place.
func valueSource(e *entry, p unsafe.Pointer, owned bool) source {
	return source{
		construct: func(dst unsafe.Pointer) error { return e.moveTo(dst, p) },
		value:     p,
		owned:     owned,
		fallible:  !e.nothrowMove,
	}
}

func (src source) abandon(e *entry) {
	if src.owned && src.value != nil {
		e.destroy(src.value)
	}
}

// emplace installs a value of alternative e. The tag moves to e's index
// only once the value is in place.
func (v *Variant) emplace(e *entry, src source) error {
	switch {
	case v.which == v.set.Len():
		return v.constructInPlace(e, src)
	case v.set.trivial:
		// Nothing to destroy, but a failed build must not clobber the
		// held bytes.
		if src.fallible {
			return v.replaceViaTemp(e, src)
		}
		return v.constructInPlace(e, src)
	case v.which == e.index:
		return v.assignInPlace(e, src)
	case src.fallible && e.nothrowMove:
		return v.replaceViaTemp(e, src)
	default:
		v.destroy()
		return v.constructInPlace(e, src)
	}
}

// constructInPlace builds directly into storage. Any value previously held
// is already gone or trivially overwritable. On failure v is left empty.
func (v *Variant) constructInPlace(e *entry, src source) (err error) {
	v.which = v.set.Len()
	p := v.store.Prepare(e.shape)
	done := false
	defer func() {
		if !done {
			e.clear(p)
			src.abandon(e)
		}
	}()
	if err = src.construct(p); err != nil {
		return err
	}
	done = true
	v.which = e.index
	return nil
}

// assignInPlace updates a held value of the same alternative without
// destroying it. Failure safety is whatever the alternative's assignment
// provides.
func (v *Variant) assignInPlace(e *entry, src source) error {
	p := v.store.Pointer()
	if src.value != nil {
		if err := e.assign(p, src.value); err != nil {
			src.abandon(e)
			return err
		}
		return nil
	}
	tmp := e.newTemp()
	if err := src.construct(tmp); err != nil {
		e.clear(tmp)
		return err
	}
	if err := e.assign(p, tmp); err != nil {
		e.destroy(tmp)
		return err
	}
	return nil
}

// replaceViaTemp builds the new value aside so that a failure leaves the
// held value untouched, then swaps it in with a move that can not fail.
func (v *Variant) replaceViaTemp(e *entry, src source) error {
	tmp := e.newTemp()
	done := false
	defer func() {
		if !done {
			src.abandon(e)
		}
	}()
	if err := src.construct(tmp); err != nil {
		e.clear(tmp)
		return err
	}
	done = true
	v.destroy()
	p := v.store.Prepare(e.shape)
	_ = e.moveTo(p, tmp) // nothrowMove
	v.which = e.index
	return nil
}
