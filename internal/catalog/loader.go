package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/skilltreego/internal/ctxlog"
	"github.com/vk/skilltreego/internal/fsutil"
)

// catalogExtensions are the file extensions the loader recognizes when given
// a directory.
var catalogExtensions = []string{".hcl", ".yaml", ".yml"}

// Loader reads catalog files into a flattened Catalog snapshot. It is
// agnostic to how skills are grouped on disk and performs no cross-reference
// validation.
type Loader struct {
	policy DuplicatePolicy
}

// NewLoader creates a catalog loader with the given duplicate-id policy.
func NewLoader(policy DuplicatePolicy) *Loader {
	return &Loader{policy: policy}
}

// Load reads the catalog at path, which may be a single file or a directory
// searched recursively for catalog files. Files merge into one catalog in
// sorted-path order.
func (l *Loader) Load(ctx context.Context, path string) (*Catalog, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Catalog loader started.", "path", path, "duplicate_policy", l.policy.String())

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot access catalog path %s: %w", path, err)
	}

	var files []string
	if info.IsDir() {
		files, err = fsutil.FindFilesByExtensions(path, catalogExtensions...)
		if err != nil {
			return nil, fmt.Errorf("error scanning catalog directory %s: %w", path, err)
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("no catalog files found under %s", path)
		}
	} else {
		files = []string{path}
	}
	logger.Debug("Catalog files discovered.", "count", len(files))

	var skills []*Skill
	for _, file := range files {
		fileSkills, err := l.parseFile(ctx, file)
		if err != nil {
			return nil, err
		}
		skills = append(skills, fileSkills...)
	}

	cat, err := l.merge(skills)
	if err != nil {
		return nil, err
	}
	logger.Debug("Catalog loading complete.", "skills", cat.Len(), "duplicates", len(cat.Duplicates))
	return cat, nil
}

// parseFile dispatches to a format-specific parser based on file extension.
func (l *Loader) parseFile(ctx context.Context, path string) ([]*Skill, error) {
	switch filepath.Ext(path) {
	case ".hcl":
		return parseHCLFile(ctx, path)
	case ".yaml", ".yml":
		return parseYAMLFile(ctx, path)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q (expected .hcl, .yaml, or .yml)", path)
	}
}

// merge flattens the parsed skills into a catalog, applying the duplicate-id
// policy. Collisions are always recorded so the validator can report them
// even when the policy resolves them silently.
func (l *Loader) merge(skills []*Skill) (*Catalog, error) {
	cat := &Catalog{Skills: make(map[string]*Skill, len(skills))}
	collided := make(map[string]bool)

	for _, skill := range skills {
		if _, exists := cat.Skills[skill.ID]; exists {
			if !collided[skill.ID] {
				collided[skill.ID] = true
				cat.Duplicates = append(cat.Duplicates, skill.ID)
			}
			switch l.policy {
			case Reject:
				return nil, fmt.Errorf("duplicate skill id %q", skill.ID)
			case LastWins:
				cat.Skills[skill.ID] = skill
			case FirstWins:
				// Keep the definition already in place.
			}
			continue
		}
		cat.Skills[skill.ID] = skill
		cat.Order = append(cat.Order, skill.ID)
	}

	return cat, nil
}
