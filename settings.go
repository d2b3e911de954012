package typeson

import (
	"github.com/argonlab/typeson/model"
	"github.com/argonlab/typeson/result"
)

// SerializerSettings configures one save call. A nil settings pointer at the
// API boundary behaves like a zero value, which fails for lack of a registry;
// callers always pass the registry explicitly rather than relying on shared
// process state.
type SerializerSettings struct {
	// Registry resolves type ids to descriptors.
	Registry model.Registry
	// Reporting, when set, receives every field-level event during the save.
	Reporting result.IssueCallback
}

// DeserializerSettings configures one load call. The load path wraps
// Reporting with its own aggregating callback and chains to this one, so
// callers can add handling without losing the built-in diagnostics.
type DeserializerSettings struct {
	Registry  model.Registry
	Reporting result.IssueCallback
}
