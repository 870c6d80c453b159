package validator

// MissingRef records a prerequisite reference to an id that is not present
// in the catalog.
type MissingRef struct {
	// SkillID is the skill declaring the reference.
	SkillID string
	// PrerequisiteID is the referenced id that does not exist.
	PrerequisiteID string
}

// Report is the outcome of one validation pass. An empty report means the
// catalog is structurally well-formed.
type Report struct {
	// Cycles holds the simple cycles found in the graph. Each cycle is a
	// sequence of ids forming a closed loop, rotated so the smallest id
	// comes first; the closing edge back to the first id is implied.
	Cycles [][]string
	// CyclesTruncated is true when enumeration stopped at MaxCycles and
	// more cycles may exist.
	CyclesTruncated bool
	// MissingPrerequisites lists references to undeclared skill ids.
	MissingPrerequisites []MissingRef
	// Orphans lists skills not reachable from any root skill. Skills caught
	// in a cycle with no external root appear here as well.
	Orphans []string
	// DuplicateIDs lists skill ids that were declared more than once.
	DuplicateIDs []string
}

// Empty reports whether the validation pass found no issues of any category.
func (r *Report) Empty() bool {
	return len(r.Cycles) == 0 &&
		!r.CyclesTruncated &&
		len(r.MissingPrerequisites) == 0 &&
		len(r.Orphans) == 0 &&
		len(r.DuplicateIDs) == 0
}

// IssueCount returns the total number of findings across all categories.
func (r *Report) IssueCount() int {
	return len(r.Cycles) + len(r.MissingPrerequisites) + len(r.Orphans) + len(r.DuplicateIDs)
}
