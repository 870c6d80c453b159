package catalog

import "fmt"

// DuplicatePolicy controls how the loader treats a skill id that has already
// been defined earlier in the load.
type DuplicatePolicy int

const (
	// FirstWins keeps the first definition encountered and ignores later
	// ones. This is the default.
	FirstWins DuplicatePolicy = iota
	// LastWins lets later definitions overwrite earlier ones.
	LastWins
	// Reject fails the load on the first collision.
	Reject
)

// String returns the CLI spelling of the policy.
func (p DuplicatePolicy) String() string {
	switch p {
	case FirstWins:
		return "first"
	case LastWins:
		return "last"
	case Reject:
		return "reject"
	default:
		return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
	}
}

// ParseDuplicatePolicy converts a CLI spelling into a DuplicatePolicy.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch s {
	case "first":
		return FirstWins, nil
	case "last":
		return LastWins, nil
	case "reject":
		return Reject, nil
	default:
		return FirstWins, fmt.Errorf("invalid duplicate policy %q: must be 'first', 'last', or 'reject'", s)
	}
}
