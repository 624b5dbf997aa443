// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package sets

// FoldLeft threads acc through the elements in enumeration order. The seed is
// returned unchanged for an empty collection.
func FoldLeft[T, A any](c Collection[T], zero A, f func(acc A, v T) A) A {
	acc := zero
	c.IterAll(func(v T) {
		acc = f(acc, v)
	})
	return acc
}

// FoldRight threads acc through the elements in reverse enumeration order,
// which for sorted sets is descending order. The seed is returned unchanged
// for an empty collection.
func FoldRight[T, A any](c Collection[T], zero A, f func(v T, acc A) A) A {
	vs := c.ToSlice()
	acc := zero
	for i := len(vs) - 1; i >= 0; i-- {
		acc = f(vs[i], acc)
	}
	return acc
}

// GroupBy splits s by key. Every group is a set minted by s's family.
func GroupBy[T any, K comparable](s Set[T], key func(v T) K) map[K]Set[T] {
	out := map[K]Set[T]{}
	s.IterAll(func(v T) {
		k := key(v)
		g, ok := out[k]
		if !ok {
			g = s.fam.Empty()
		}
		out[k] = g.Insert(v)
	})
	return out
}

// GroupBySorted splits s by key. Every group is a sorted set minted by s's
// family.
func GroupBySorted[T any, K comparable](s SortedSet[T], key func(v T) K) map[K]SortedSet[T] {
	out := map[K]SortedSet[T]{}
	s.IterAll(func(v T) {
		k := key(v)
		g, ok := out[k]
		if !ok {
			g = s.fam.Empty()
		}
		out[k] = g.Insert(v)
	})
	return out
}
