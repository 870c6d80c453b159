package catalog

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/skilltreego/internal/ctxlog"
)

// fileRoot decodes the top level of a catalog file. Skills may appear both
// inside groups and at the top level. Unknown block types are tolerated via
// the remain body so a catalog can share files with other tooling.
type fileRoot struct {
	Groups []*groupBlock `hcl:"group,block"`
	Skills []*skillBlock `hcl:"skill,block"`
	Remain hcl.Body      `hcl:",remain"`
}

// groupBlock is a named grouping of skills. Groups nest to arbitrary depth;
// the nesting carries no semantic meaning beyond organization, so flattening
// discards it.
type groupBlock struct {
	Name   string        `hcl:"name,label"`
	Groups []*groupBlock `hcl:"group,block"`
	Skills []*skillBlock `hcl:"skill,block"`
	Remain hcl.Body      `hcl:",remain"`
}

// skillBlock is the raw decoded form of a skill definition. The xp and
// prerequisites attributes are kept as expressions and translated through cty
// so the loader accepts any expression that converts to the expected type.
type skillBlock struct {
	ID            string         `hcl:"id,label"`
	Name          string         `hcl:"name"`
	Description   string         `hcl:"description,optional"`
	Level         string         `hcl:"level,optional"`
	XP            hcl.Expression `hcl:"xp,optional"`
	Prerequisites hcl.Expression `hcl:"prerequisites,optional"`
}

// parseHCLFile parses a single .hcl catalog file and returns the skills it
// defines, flattened in document order.
func parseHCLFile(ctx context.Context, path string) ([]*Skill, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode catalog file %s: %w", path, diags)
	}

	var skills []*Skill
	for _, block := range root.Skills {
		skill, err := translateSkill(block, path)
		if err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	for _, group := range root.Groups {
		groupSkills, err := flattenGroup(group, path)
		if err != nil {
			return nil, err
		}
		skills = append(skills, groupSkills...)
	}

	logger.Debug("Parsed HCL catalog file.", "path", path, "skill_count", len(skills))
	return skills, nil
}

// flattenGroup recursively collects the skills of a group and all its
// sub-groups in document order.
func flattenGroup(group *groupBlock, path string) ([]*Skill, error) {
	var skills []*Skill
	for _, block := range group.Skills {
		skill, err := translateSkill(block, path)
		if err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	for _, sub := range group.Groups {
		subSkills, err := flattenGroup(sub, path)
		if err != nil {
			return nil, err
		}
		skills = append(skills, subSkills...)
	}
	return skills, nil
}

// translateSkill converts a decoded skill block into the catalog model,
// applying defaults and evaluating the expression-typed attributes.
func translateSkill(block *skillBlock, path string) (*Skill, error) {
	skill := &Skill{
		ID:          block.ID,
		Name:        block.Name,
		Description: block.Description,
		Level:       block.Level,
	}
	if skill.Level == "" {
		skill.Level = DefaultLevel
	}

	xp, err := evalXP(block.XP)
	if err != nil {
		return nil, fmt.Errorf("skill %q in %s: %w", block.ID, path, err)
	}
	skill.XP = xp

	prereqs, err := evalPrerequisites(block.Prerequisites)
	if err != nil {
		return nil, fmt.Errorf("skill %q in %s: %w", block.ID, path, err)
	}
	skill.Prerequisites = prereqs

	return skill, nil
}

// evalXP evaluates an xp attribute expression into a non-negative integer.
// A nil expression means the attribute was absent and defaults to zero.
func evalXP(expr hcl.Expression) (int, error) {
	if expr == nil {
		return 0, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return 0, fmt.Errorf("invalid xp expression: %w", diags)
	}
	if val.IsNull() {
		return 0, nil
	}
	converted, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("xp must be a number: %w", err)
	}
	var xp int
	if err := gocty.FromCtyValue(converted, &xp); err != nil {
		return 0, fmt.Errorf("xp must be an integer: %w", err)
	}
	if xp < 0 {
		return 0, fmt.Errorf("xp must be non-negative, got %d", xp)
	}
	return xp, nil
}

// evalPrerequisites evaluates a prerequisites attribute expression into a
// list of skill ids, preserving declaration order.
func evalPrerequisites(expr hcl.Expression) ([]string, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid prerequisites expression: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	converted, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, fmt.Errorf("prerequisites must be a list of strings: %w", err)
	}
	var prereqs []string
	for it := converted.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		prereqs = append(prereqs, elem.AsString())
	}
	return prereqs, nil
}
