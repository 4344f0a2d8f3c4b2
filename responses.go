package gosnooze

import "fmt"

// Response defines the outcome of a single postpone request.
// The response is the whole contract of Handle.Postpone,
// callers are expected to inspect it rather than drop it.
type Response uint8

const (
	// Postponed reports that the delay resolution
	// has been successfully pushed back to the requested instant.
	Postponed Response = iota
	// AlreadyResolved reports that the delay
	// can't be postponed because it has already resolved.
	AlreadyResolved
	// CantResolveEarlier reports that the request has been refused
	// because it would need the delay to resolve earlier
	// than its currently held target.
	CantResolveEarlier
)

func (resp Response) String() string {
	switch resp {
	case Postponed:
		return "postponed"
	case AlreadyResolved:
		return "already_resolved"
	case CantResolveEarlier:
		return "cant_resolve_earlier"
	default:
		return fmt.Sprintf("unknown_%d", uint8(resp))
	}
}

// Must panics unless the response is Postponed.
// It makes test assumptions explicit
// and has no place in production control flow.
func (resp Response) Must() {
	if resp != Postponed {
		panic(fmt.Sprintf("delay postpone error has happened %s", resp))
	}
}
