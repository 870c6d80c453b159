// Package app wires the analysis pipeline together: it owns the logger,
// validates configuration, and runs one load -> build -> analyze/validate ->
// emit pass over a catalog. The engine is read-only over one loaded
// snapshot; each Run works on its own independently constructed graph.
package app
