package emitter

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/vk/skilltreego/internal/analyzer"
	"github.com/vk/skilltreego/internal/catalog"
	"github.com/vk/skilltreego/internal/validator"
)

// WriteSummary prints the short analysis overview shown by the default CLI
// invocation.
func WriteSummary(w io.Writer, result *analyzer.Result) error {
	fmt.Fprintf(w, "Skills:              %d\n", result.TotalSkills)
	fmt.Fprintf(w, "Prerequisite edges:  %d\n", result.TotalEdges)
	fmt.Fprintf(w, "Critical path:       %d\n", result.CriticalPathLength)
	if result.Cyclic {
		fmt.Fprintln(w, "Warning: the graph contains cycles; figures cover the acyclic portion only.")
	}

	fmt.Fprintln(w, "\nBy level:")
	for _, level := range sortedLevelTags(result.LevelBreakdown) {
		stats := result.LevelBreakdown[level]
		fmt.Fprintf(w, "  %-14s %3d skills  %6d XP\n", level, stats.Count, stats.TotalXP)
	}
	return nil
}

// WriteReport prints the full analytics report: overview, per-level
// breakdown, root and leaf skills by name, and both top-10 rankings.
func WriteReport(w io.Writer, result *analyzer.Result, cat *catalog.Catalog) error {
	title := "Skill Catalog Analytics"
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", len(title)))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Total skills:         %d\n", result.TotalSkills)
	fmt.Fprintf(w, "Prerequisite edges:   %d\n", result.TotalEdges)
	fmt.Fprintf(w, "Total XP available:   %d\n", result.TotalXP)
	fmt.Fprintf(w, "Critical path length: %d\n", result.CriticalPathLength)
	if result.Cyclic {
		fmt.Fprintln(w, "Warning: the graph contains cycles; figures cover the acyclic portion only.")
	}

	fmt.Fprintln(w, "\nBreakdown by level:")
	for _, level := range sortedLevelTags(result.LevelBreakdown) {
		stats := result.LevelBreakdown[level]
		fmt.Fprintf(w, "  %-14s %3d skills  %6d XP\n", level, stats.Count, stats.TotalXP)
	}

	fmt.Fprintln(w, "\nRoot skills (no prerequisites):")
	writeSkillList(w, result.Roots, cat)
	fmt.Fprintln(w, "\nLeaf skills (no dependents):")
	writeSkillList(w, result.Leaves, cat)

	fmt.Fprintln(w, "\nTop skills by declared prerequisites:")
	writeRanking(w, result.TopByPrerequisites, "prerequisites")
	fmt.Fprintln(w, "\nTop skills by dependents:")
	writeRanking(w, result.TopByDependents, "dependents")

	return nil
}

// WriteValidation prints the categorized findings of a validation pass, or a
// well-formed notice when the report is empty.
func WriteValidation(w io.Writer, report *validator.Report) error {
	if report.Empty() {
		fmt.Fprintln(w, "Catalog is well-formed: no structural issues found.")
		return nil
	}

	fmt.Fprintln(w, "Catalog loaded but has structural issues:")

	if len(report.Cycles) > 0 {
		fmt.Fprintf(w, "\nCircular dependencies (%d):\n", len(report.Cycles))
		for _, cycle := range report.Cycles {
			fmt.Fprintf(w, "  - %s -> %s\n", strings.Join(cycle, " -> "), cycle[0])
		}
		if report.CyclesTruncated {
			fmt.Fprintf(w, "  (enumeration stopped at %d cycles; more may exist)\n", validator.MaxCycles)
		}
	}

	if len(report.MissingPrerequisites) > 0 {
		fmt.Fprintf(w, "\nMissing prerequisites (%d):\n", len(report.MissingPrerequisites))
		for _, ref := range report.MissingPrerequisites {
			fmt.Fprintf(w, "  - skill %q references unknown prerequisite %q\n", ref.SkillID, ref.PrerequisiteID)
		}
	}

	if len(report.Orphans) > 0 {
		fmt.Fprintf(w, "\nOrphaned skills, unreachable from any root (%d):\n", len(report.Orphans))
		for _, id := range report.Orphans {
			fmt.Fprintf(w, "  - %s\n", id)
		}
	}

	if len(report.DuplicateIDs) > 0 {
		fmt.Fprintf(w, "\nDuplicate skill ids (%d):\n", len(report.DuplicateIDs))
		for _, id := range report.DuplicateIDs {
			fmt.Fprintf(w, "  - %s\n", id)
		}
	}

	return nil
}

// writeSkillList prints ids with their display names, one per line.
func writeSkillList(w io.Writer, ids []string, cat *catalog.Catalog) {
	if len(ids) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for _, id := range ids {
		name := id
		if skill, ok := cat.Skills[id]; ok {
			name = skill.Name
		}
		fmt.Fprintf(w, "  - %s (%s)\n", name, id)
	}
}

// writeRanking prints a ranking with 1-based positions.
func writeRanking(w io.Writer, ranked []analyzer.RankedSkill, noun string) {
	if len(ranked) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for i, entry := range ranked {
		fmt.Fprintf(w, "  %2d. %s (%s): %d %s\n", i+1, entry.Name, entry.ID, entry.Count, noun)
	}
}

// sortedLevelTags returns the level tags present in the breakdown, sorted
// for stable report output.
func sortedLevelTags(breakdown map[string]analyzer.LevelStats) []string {
	tags := make([]string, 0, len(breakdown))
	for tag := range breakdown {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
