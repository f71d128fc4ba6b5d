package treap

import "fmt"

// InvariantError reports a broken structural invariant. It is raised with
// panic, never returned: a tree that violates it cannot be trusted by any
// later operation.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return "treap invariant violated: " + e.Msg
}

func invariantf(format string, args ...any) *InvariantError {
	return &InvariantError{Msg: fmt.Sprintf(format, args...)}
}
