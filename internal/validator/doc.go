// Package validator checks the structural integrity of a prerequisite graph
// against its catalog: acyclicity, referential integrity, reachability from
// the root skills, and duplicate ids.
//
// Validation never fails. Every finding is data in the returned Report, and
// the caller decides whether a non-empty report is fatal. The only bounded
// resource here is simple-cycle enumeration, which is capped at MaxCycles;
// the Report carries a truncation flag when the cap is hit.
package validator
