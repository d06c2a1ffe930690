// Package query provides declarative filtering over frames: boolean masks
// built from filter dictionaries, a containment relation between filters,
// and a prefix cache that reuses partial results across key-ordered queries.
//
// # Filters
//
// A Filter maps field names to filter values. A value is a scalar (equality),
// a list (membership) or an operator map; operators within one map are AND-ed:
//
//	query.Filter{"gid": 3}
//	query.Filter{"gid": []any{3, 5, 8}}
//	query.Filter{"gid": map[string]any{"ge": 3, "lt": 8}}
//
// A query list is OR across filters, AND within each filter. Field names
// resolve to columns first, then to named index levels.
//
//	result, err := query.FilterFrame(f, []query.Filter{
//	    {"simulation_id": 1, "window": "w0"},
//	    {"simulation_id": 0},
//	})
//
// # Subfilter Comparison
//
// IsSubfilter decides whether one filter can only match a subset of the rows
// another filter matches, after normalizing both to membership sets and
// bounds:
//
//	ok, err := query.IsSubfilter(
//	    query.Filter{"key": 1},
//	    query.Filter{"key": []any{1, 2}},
//	    false,
//	)
//
// # Prefix Cache
//
// CachedFrame caches the intermediate view produced by each (field, value)
// pair of a query, and reuses the longest prefix shared with the next query:
//
//	cache := query.NewCachedFrame(f)
//	view, err := cache.Query([]query.Pair{
//	    {Key: "simulation_id", Value: 1},
//	    {Key: "window", Value: "w0"},
//	}, false)
//
// CachedFrame is not safe for concurrent use; wrap calls in a mutex or use
// one instance per worker.
package query
