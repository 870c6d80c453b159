package catalog

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vk/skilltreego/internal/ctxlog"
)

// parseYAMLFile parses a .yaml/.yml catalog file and returns the skills it
// defines, flattened in document order.
//
// The format has no fixed section names. The walk applies a structural
// predicate instead: any mapping that carries both an `id` and a `name`
// scalar is a skill; every other mapping or sequence is a group and is
// descended into. Working on yaml.Node rather than a decoded map preserves
// the document order of definitions.
func parseYAMLFile(ctx context.Context, path string) ([]*Skill, error) {
	logger := ctxlog.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		// Empty document, empty catalog.
		return nil, nil
	}

	var skills []*Skill
	if err := walkYAML(root.Content[0], path, &skills); err != nil {
		return nil, err
	}

	logger.Debug("Parsed YAML catalog file.", "path", path, "skill_count", len(skills))
	return skills, nil
}

// walkYAML recursively descends the node tree, collecting skill mappings.
func walkYAML(node *yaml.Node, path string, skills *[]*Skill) error {
	switch node.Kind {
	case yaml.MappingNode:
		if looksLikeSkill(node) {
			skill, err := decodeYAMLSkill(node, path)
			if err != nil {
				return err
			}
			*skills = append(*skills, skill)
			return nil
		}
		// Not a skill: treat every value as a potential group.
		for i := 1; i < len(node.Content); i += 2 {
			if err := walkYAML(node.Content[i], path, skills); err != nil {
				return err
			}
		}
	case yaml.SequenceNode:
		for _, child := range node.Content {
			if err := walkYAML(child, path, skills); err != nil {
				return err
			}
		}
	case yaml.AliasNode:
		return walkYAML(node.Alias, path, skills)
	}
	// Scalars carry no skills.
	return nil
}

// looksLikeSkill reports whether a mapping node carries both `id` and `name`
// scalar entries.
func looksLikeSkill(node *yaml.Node) bool {
	var hasID, hasName bool
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode || val.Kind != yaml.ScalarNode {
			continue
		}
		switch key.Value {
		case "id":
			hasID = true
		case "name":
			hasName = true
		}
	}
	return hasID && hasName
}

// yamlSkill mirrors the on-disk shape of a skill mapping.
type yamlSkill struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Description   string   `yaml:"description"`
	Level         string   `yaml:"level"`
	XP            int      `yaml:"xp"`
	Prerequisites []string `yaml:"prerequisites"`
}

// decodeYAMLSkill converts a skill mapping into the catalog model, applying
// the same defaults as the HCL loader.
func decodeYAMLSkill(node *yaml.Node, path string) (*Skill, error) {
	var raw yamlSkill
	if err := node.Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid skill definition in %s: %w", path, err)
	}
	if raw.XP < 0 {
		return nil, fmt.Errorf("skill %q in %s: xp must be non-negative, got %d", raw.ID, path, raw.XP)
	}
	skill := &Skill{
		ID:            raw.ID,
		Name:          raw.Name,
		Description:   raw.Description,
		Level:         raw.Level,
		XP:            raw.XP,
		Prerequisites: raw.Prerequisites,
	}
	if skill.Level == "" {
		skill.Level = DefaultLevel
	}
	return skill, nil
}
