// Package analyzer derives analytics from a prerequisite graph: root and
// leaf sets, critical-path length, per-node layer assignment, per-level
// tallies, and degree-based rankings.
//
// Analyze expects a DAG. It still terminates on cyclic input: the result is
// flagged Cyclic, nodes trapped in cycles get layer -1, and the critical
// path covers only the acyclic portion.
package analyzer
