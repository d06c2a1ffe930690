// Package frame provides an in-memory labeled tabular container with
// multi-level row indexes and boolean row masks.
//
// A Frame holds ordered named columns sharing a row Index; a Series is the
// 1-D counterpart. Masks select rows without reordering or duplicating them,
// so filtering always preserves the original row order and index labels.
//
// # Basic Usage
//
// Build a frame from columns and filter it with a mask:
//
//	f, err := frame.New([]frame.Column{
//	    {Name: "gid", Values: []any{0, 2, 3, 7, 8}},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	mask := frame.NewMask(f.Len())
//	mask.Set(2)
//	mask.Set(3)
//	filtered := f.Select(mask)
//
// # Multi-level Indexes
//
// Columns can be promoted to index levels, mirroring how simulation results
// are usually keyed:
//
//	f, err = f.SetIndex("simulation_id", "circuit_id")
//
// Named index levels take part in query field resolution alongside columns.
//
// # Concatenation
//
// Concat and ConcatSeries combine inputs while preserving index-level
// identity: levels are matched by name and reordered to the first input's
// order, instead of being concatenated blindly by position.
package frame
