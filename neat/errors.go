package neat

import (
	"fmt"
	"strings"
)

// InvalidDataError reports a dataset record that cannot be fed to a genome,
// such as a record missing the value of an input node.
type InvalidDataError struct {
	NodeID int    // Offending node id, or -1 when the problem is not tied to a node.
	Reason string // Human readable description.
}

func (e *InvalidDataError) Error() string {
	if e.NodeID < 0 {
		return "invalid data: " + e.Reason
	}
	return fmt.Sprintf("invalid data for node %d: %s", e.NodeID, e.Reason)
}

// UnevaluableGraphError reports a genome whose forward pass cannot make
// progress: an enabled gene touches a missing node, loops onto itself,
// or the enabled genes form a cycle.
type UnevaluableGraphError struct {
	Unresolved []int  // Node ids that could not be computed.
	Reason     string // Human readable description.
}

func (e *UnevaluableGraphError) Error() string {
	if len(e.Unresolved) == 0 {
		return "unevaluable graph: " + e.Reason
	}
	ids := make([]string, len(e.Unresolved))
	for i, id := range e.Unresolved {
		ids[i] = fmt.Sprint(id)
	}
	return fmt.Sprintf("unevaluable graph: %s (nodes %s)", e.Reason, strings.Join(ids, ", "))
}
