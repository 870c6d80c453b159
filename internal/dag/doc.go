// Package dag holds the directed prerequisite graph derived from a loaded
// skill catalog, plus the builder that constructs it.
//
// An edge a -> b means skill a is a declared prerequisite of skill b. The
// graph is a pure value: Build never fails and never mutates the catalog,
// and once Build returns the graph is treated as immutable by every
// consumer. Whether the graph is actually acyclic is not assumed here; that
// is established by the validator.
package dag
