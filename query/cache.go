package query

import (
	"github.com/vegasq/frameq/frame"
)

// Pair is one ordered (field, value) step of a cached query. Go maps do not
// preserve insertion order, and the order of the fields is semantic for the
// cache, so cached queries are expressed as pair slices.
type Pair struct {
	Key   string
	Value any
}

// CachedItem is one entry of the cache stack: the frame filtered by its own
// key and value and by every previous entry in the stack.
type CachedItem struct {
	Frame *frame.Frame
	Key   string
	Value any
}

// CachedFrame wraps a frame to cache partial query results.
//
// The stack holds one CachedItem per applied (field, value) pair; each item's
// frame is derived exclusively from the item below it. A new query reuses the
// longest prefix of the stack whose keys and values both match, truncates the
// rest, and extends the stack field by field for the remaining pairs.
//
// CachedFrame is not safe for concurrent use.
type CachedFrame struct {
	base      *frame.Frame
	validKeys map[string]bool
	stack     []CachedItem
	matched   int
}

// NewCachedFrame creates a cache over the given base frame. The base frame is
// referenced, not copied, and must not change while the cache is in use.
func NewCachedFrame(f *frame.Frame) *CachedFrame {
	valid := make(map[string]bool)
	for _, name := range f.Columns() {
		valid[name] = true
	}
	for _, name := range f.Index().Names() {
		if name != "" {
			valid[name] = true
		}
	}
	return &CachedFrame{base: f, validKeys: valid}
}

// Query returns the frame filtered by the given pairs, reusing cached views
// where possible.
//
// The order of the pairs is significant: the cache is reused only for the
// leading pairs whose keys and values both match the stack. The result is
// always identical to filtering the base frame by the full conjunction of
// the pairs; caching affects performance only.
//
// With ignoreUnknownKeys set, pairs whose key is neither a column nor a named
// index level are silently dropped; otherwise such a pair fails with
// UnknownFieldError.
func (c *CachedFrame) Query(pairs []Pair, ignoreUnknownKeys bool) (*frame.Frame, error) {
	if ignoreUnknownKeys {
		kept := make([]Pair, 0, len(pairs))
		for _, pair := range pairs {
			if c.validKeys[pair.Key] {
				kept = append(kept, pair)
			}
		}
		pairs = kept
	}

	// find the cached frame with the longest matching prefix
	c.matched = min(c.longestKeysCount(pairs), c.longestValuesCount(pairs))
	c.stack = c.stack[:c.matched]
	f := c.base
	if len(c.stack) > 0 {
		f = c.stack[len(c.stack)-1].Frame
	}

	// extend the cache for every remaining pair
	for len(c.stack) < len(pairs) {
		pair := pairs[len(c.stack)]
		filtered, err := FilterFrame(f, []Filter{{pair.Key: pair.Value}})
		if err != nil {
			return nil, err
		}
		f = filtered
		c.stack = append(c.stack, CachedItem{Frame: f, Key: pair.Key, Value: pair.Value})
	}
	return f, nil
}

// Matched returns the prefix length reused by the most recent Query call.
func (c *CachedFrame) Matched() int {
	return c.matched
}

func (c *CachedFrame) longestKeysCount(pairs []Pair) int {
	count := 0
	for i := range c.stack {
		if i >= len(pairs) || c.stack[i].Key != pairs[i].Key {
			break
		}
		count++
	}
	return count
}

func (c *CachedFrame) longestValuesCount(pairs []Pair) int {
	count := 0
	for i := range c.stack {
		if i >= len(pairs) || !frame.ValuesEqual(c.stack[i].Value, pairs[i].Value) {
			break
		}
		count++
	}
	return count
}
