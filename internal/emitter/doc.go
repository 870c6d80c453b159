// Package emitter turns analysis and validation results into caller-facing
// artifacts: a plain-text analytics report, a categorized validation
// listing, and a layout document assigning every skill a position for
// downstream rendering. No drawing happens here; the contract ends at
// structured text and position data.
package emitter
