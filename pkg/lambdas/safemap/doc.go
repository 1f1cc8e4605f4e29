// Package safemap maps collections through partial functions, keeping only
// the results that are present.
//
// Mappers are usually built by wrapping a fallible function with
// adapt.ToOptional:
//
//	ports := safemap.Slice(raw, adapt.ToOptional(strconv.Atoi))
//
// Slice keeps input order and duplicates, Set deduplicates, and Into
// collects into any container through a Collector.
package safemap
