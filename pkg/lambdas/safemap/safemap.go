package safemap

import (
	"iter"
	"slices"

	"github.com/emirpasic/gods/v2/sets/linkedhashset"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Collector gathers a sequence of mapped values into a container.
type Collector[R, C any] func(iter.Seq[R]) C

// Slice applies mapper to every element of in, in order, and keeps the
// present results.
func Slice[T, R any](in []T, mapper func(T) mo.Option[R]) []R {
	return lo.FilterMap(in, func(item T, _ int) (R, bool) {
		return mapper(item).Get()
	})
}

// Set applies mapper to every element of in and keeps the distinct present
// results.
func Set[T, R comparable](in map[T]struct{}, mapper func(T) mo.Option[R]) map[R]struct{} {
	return lo.Keyify(Slice(lo.Keys(in), mapper))
}

// Into applies mapper to every element of seq and hands the present results
// to collect, in the order seq yields them.
func Into[T, R, C any](seq iter.Seq[T], mapper func(T) mo.Option[R], collect Collector[R, C]) C {
	return collect(func(yield func(R) bool) {
		for t := range seq {
			if r, ok := mapper(t).Get(); ok {
				if !yield(r) {
					return
				}
			}
		}
	})
}

func ToSlice[R any]() Collector[R, []R] {
	return slices.Collect[R]
}

func ToSet[R comparable]() Collector[R, map[R]struct{}] {
	return func(seq iter.Seq[R]) map[R]struct{} {
		out := make(map[R]struct{})
		for r := range seq {
			out[r] = struct{}{}
		}
		return out
	}
}

// ToLinkedHashSet collects distinct values, keeping the order in which they
// were first seen.
func ToLinkedHashSet[R comparable]() Collector[R, *linkedhashset.Set[R]] {
	return func(seq iter.Seq[R]) *linkedhashset.Set[R] {
		out := linkedhashset.New[R]()
		for r := range seq {
			out.Add(r)
		}
		return out
	}
}
