package variant

import (
	"errors"
	"fmt"
)

var (
	ErrNoAlternatives       = errors.New("set has no alternatives")
	ErrDuplicateAlternative = errors.New("duplicate alternative type")
	ErrInvalidAlternative   = errors.New("interface types can not be alternatives")
	ErrNotAlternative       = errors.New("type is not an alternative of the set")
	ErrWrongAlternative     = errors.New("alternative not currently held")
	ErrSetMismatch          = errors.New("variants belong to different sets")
)

// EmptyHash is the hash of a variant holding nothing, whatever its set.
const EmptyHash uint64 = 19937

// AccessError reports a typed access to an alternative that is not held.
// It is the panic value of Get.
type AccessError struct {
	Want int // index asked for
	Held int // index held, the set's Len when empty
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("access to alternative %d while holding %d: %v", e.Want, e.Held, ErrWrongAlternative)
}

func (e *AccessError) Unwrap() error { return ErrWrongAlternative }
