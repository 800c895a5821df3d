package depdag

import "errors"

var (
	// ErrDuplicateVertex is returned by [Graph.Create] when a vertex with the
	// same name already exists in the graph.
	ErrDuplicateVertex = errors.New("duplicate vertex")

	// ErrCycleDetected is matched by every [*CycleError]. It is returned by
	// [Graph.EnsureAcyclic], and by [Vertex.DependsOn] on graphs built with
	// [WithFailOnCycle].
	ErrCycleDetected = errors.New("cycle detected")
)

// CycleError reports a cycle found by an acyclicity check. Message describes
// the check that failed, e.g. the edges that were just added.
type CycleError struct {
	Message string
}

func (e *CycleError) Error() string {
	if e.Message == "" {
		return ErrCycleDetected.Error()
	}
	return ErrCycleDetected.Error() + ": " + e.Message
}

// Is makes errors.Is(err, ErrCycleDetected) hold for any *CycleError.
func (e *CycleError) Is(target error) bool { return target == ErrCycleDetected }
