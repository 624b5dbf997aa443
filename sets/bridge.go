// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package sets

import "github.com/attic-labs/equiv/d"

// Bridge carries elements captured from one collection toward a destination
// family, possibly over a different element type. The capture is an ordered
// snapshot taken when the bridge is built, so the projection is decoupled
// from the source backing. A bridge is the only way for an element to cross
// between families: the destination's invariants are established from
// scratch by its own rules, never inherited from the source.
type Bridge[S, T any] struct {
	vals []S
	dest *Family[T]
}

// Into captures src's elements, in enumeration order, for projection into
// dest. O(n).
func Into[S, T any](src Collection[S], dest *Family[T]) Bridge[S, T] {
	d.Chk.NotNil(dest, "sets.Into: nil destination family")
	return Bridge[S, T]{vals: src.ToSlice(), dest: dest}
}

// Collect applies a partial projection to the captured elements and folds the
// defined results into a new set minted by the destination family. Later
// policy-equal results overwrite earlier ones, consistent with Insert.
func (b Bridge[S, T]) Collect(fn func(v S) (T, bool)) Set[T] {
	return b.dest.NewSet(project(b.vals, fn)...)
}

// SortedBridge is a Bridge with an order-backed destination.
type SortedBridge[S, T any] struct {
	vals []S
	dest *SortedFamily[T]
}

// IntoSorted captures src's elements, in enumeration order, for projection
// into the sorted family dest. O(n).
func IntoSorted[S, T any](src Collection[S], dest *SortedFamily[T]) SortedBridge[S, T] {
	d.Chk.NotNil(dest, "sets.IntoSorted: nil destination family")
	return SortedBridge[S, T]{vals: src.ToSlice(), dest: dest}
}

// Collect applies a partial projection to the captured elements and folds the
// defined results into a new sorted set minted by the destination family.
// Later policy-equal results overwrite earlier ones, consistent with Insert.
func (b SortedBridge[S, T]) Collect(fn func(v S) (T, bool)) SortedSet[T] {
	return b.dest.NewSet(project(b.vals, fn)...)
}

// CollectInto is the one-step form of Into(src, dest).Collect(fn).
func CollectInto[S, T any](src Collection[S], dest *Family[T], fn func(v S) (T, bool)) Set[T] {
	return Into(src, dest).Collect(fn)
}

// CollectIntoSorted is the one-step form of IntoSorted(src, dest).Collect(fn).
func CollectIntoSorted[S, T any](src Collection[S], dest *SortedFamily[T], fn func(v S) (T, bool)) SortedSet[T] {
	return IntoSorted(src, dest).Collect(fn)
}

func project[S, T any](vals []S, fn func(v S) (T, bool)) []T {
	out := make([]T, 0, len(vals))
	for _, v := range vals {
		if u, ok := fn(v); ok {
			out = append(out, u)
		}
	}
	return out
}
