package reactive

import "fmt"

// CycleLimitExceededError is returned from a flush when a single cell
// recomputes more than the scheduler's configured limit within one flush,
// almost always caused by an effect writing back to one of its own
// (possibly indirect) dependencies.
type CycleLimitExceededError struct {
	NodeID uint64
	Limit  int
}

func (e *CycleLimitExceededError) Error() string {
	return fmt.Sprintf("reactive: cell %d recomputed more than %d times in a single flush (E102 CycleLimitExceeded)", e.NodeID, e.Limit)
}

// DisposedAccessError describes an access to a cell whose owner has already
// been disposed. It is never panicked or returned: a disposed read logs one
// of these and returns the cell's last known value, and a disposed write
// logs one and is otherwise ignored — the type exists so that diagnostic
// formats (slog fields, error taxonomies) have a concrete value to carry.
type DisposedAccessError struct {
	NodeID uint64
}

func (e *DisposedAccessError) Error() string {
	return fmt.Sprintf("reactive: cell %d accessed after its owner was disposed (E103 DisposedAccess)", e.NodeID)
}

// UserError is what this package panics with in response to misuse it can
// detect but not prevent (an Effect writing a Signal while
// Config.EffectStrictMode is StrictEffectPanic), so a boundary like
// render.Catch can decide what to do with it. Values panicked by
// application code inside a reaction are not wrapped in a UserError; they
// propagate unchanged.
type UserError struct {
	NodeID uint64
	Reason string
	Cause  error
}

func (e *UserError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("reactive: %s (E101 UserError): %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("reactive: %s (E101 UserError)", e.Reason)
}

func (e *UserError) Unwrap() error { return e.Cause }
