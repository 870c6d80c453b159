// Package catalog loads skill definitions from declarative catalog files and
// flattens them into a single immutable snapshot.
//
// A catalog is a nested-group document: groups may nest to arbitrary depth and
// skills may appear at any level. Two on-disk formats are supported, selected
// by file extension:
//
//   - HCL (.hcl): `group` blocks containing `skill` blocks.
//   - YAML (.yaml/.yml): any mapping carrying both `id` and `name` is treated
//     as a skill; everything else is descended into as a group.
//
// Loading is purely structural. Prerequisite references are carried through
// as-is and are NOT resolved or checked here; referential integrity is the
// validator's job. The only load-time policy decision is what to do with
// duplicate skill ids, controlled by DuplicatePolicy.
//
// The resulting Catalog value is treated as immutable by every downstream
// component: the graph builder, validator, analyzer and path finder all share
// one loaded snapshot and never write to it.
package catalog
