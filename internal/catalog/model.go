package catalog

// DefaultLevel is assigned to skills that do not declare a level tag.
const DefaultLevel = "core"

// Skill is the atomic curriculum unit.
type Skill struct {
	// ID is the unique, stable identifier of the skill across the catalog.
	ID string
	// Name is the human-readable label.
	Name string
	// Description is optional free-form text.
	Description string
	// Level is a categorical tag such as "foundational" or "advanced". The
	// set is open-ended; DefaultLevel applies when absent.
	Level string
	// XP is the non-negative reward value for completing the skill.
	XP int
	// Prerequisites lists skill ids this skill depends on, in declaration
	// order. Entries may reference ids that do not exist in the catalog.
	Prerequisites []string
}

// Catalog is one fully loaded, flattened skill snapshot.
type Catalog struct {
	// Skills maps id to skill definition.
	Skills map[string]*Skill
	// Order holds ids in first-seen order, so iteration over the catalog is
	// deterministic regardless of map layout.
	Order []string
	// Duplicates holds ids that were declared more than once, in the order
	// the first collision was observed. Populated regardless of the
	// DuplicatePolicy in effect so the validator can surface them.
	Duplicates []string
}

// Len returns the number of distinct skills in the catalog.
func (c *Catalog) Len() int {
	return len(c.Skills)
}
