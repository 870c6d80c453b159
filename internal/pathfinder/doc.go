// Package pathfinder answers reachability questions over a prerequisite
// graph: enumerating the simple paths between two skills and computing
// ancestor/descendant closures.
//
// Unknown skill ids are not errors here. A query about a skill that does not
// exist returns an empty result, because "no such skill" and "no path" look
// identical to a caller that only wants paths.
package pathfinder
