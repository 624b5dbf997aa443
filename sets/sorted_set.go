// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package sets

import (
	"sort"

	"github.com/attic-labs/equiv/d"
)

// SortedSet is an immutable set of T backed by a slice kept sorted under the
// owning family's OrderedRules. It has the same contract as Set, with the
// total order substituted for hash bucketing: enumeration is always the total
// order, First and Last are O(1), and Range queries become possible.
//
// The zero SortedSet is empty, belongs to no family, and supports read-only
// operations; use a SortedFamily to mint sets that can be modified.
type SortedSet[T any] struct {
	fam *SortedFamily[T]
	// sorted by fam.r.Less; no two elements are policy-equal
	elems []Box[T]
}

var _ Collection[int] = SortedSet[int]{}

// Family returns the family that minted s, or nil for the zero SortedSet.
func (s SortedSet[T]) Family() *SortedFamily[T] {
	return s.fam
}

func (s SortedSet[T]) Len() int {
	return len(s.elems)
}

func (s SortedSet[T]) Empty() bool {
	return len(s.elems) == 0
}

// Has reports whether the set holds an element policy-equal to v.
func (s SortedSet[T]) Has(v T) bool {
	if len(s.elems) == 0 {
		return false
	}
	idx := s.search(v)
	return idx < len(s.elems) && s.fam.r.Equivalent(s.elems[idx].v, v)
}

// Insert returns a set that contains vs. A value policy-equal to an existing
// element replaces it, so the latest insert wins on the value even though the
// element was already present.
func (s SortedSet[T]) Insert(vs ...T) SortedSet[T] {
	if len(vs) == 0 {
		return s
	}
	s.requireFamily()
	r := s.fam.r
	elems := append([]Box[T](nil), s.elems...)
	for _, v := range vs {
		idx := searchBoxes(elems, r, v)
		if idx < len(elems) && r.Equivalent(elems[idx].v, v) {
			elems[idx] = s.fam.Box(v)
			continue
		}
		elems = append(elems, Box[T]{})
		copy(elems[idx+1:], elems[idx:])
		elems[idx] = s.fam.Box(v)
	}
	return SortedSet[T]{fam: s.fam, elems: elems}
}

// Remove returns a set without any element policy-equal to one of vs. Absent
// values are ignored.
func (s SortedSet[T]) Remove(vs ...T) SortedSet[T] {
	if len(s.elems) == 0 || len(vs) == 0 {
		return s
	}
	r := s.fam.r
	elems := append([]Box[T](nil), s.elems...)
	for _, v := range vs {
		idx := searchBoxes(elems, r, v)
		if idx < len(elems) && r.Equivalent(elems[idx].v, v) {
			elems = append(elems[:idx], elems[idx+1:]...)
		}
	}
	return SortedSet[T]{fam: s.fam, elems: elems}
}

// Union returns the elements present in s or in any of others. Where operands
// hold policy-equal values the rightmost value survives, consistent with
// Insert. All operands must share s's family.
func (s SortedSet[T]) Union(others ...SortedSet[T]) SortedSet[T] {
	s.checkFamily("Union", others...)
	result := s
	for _, other := range others {
		result = result.Insert(other.ToSlice()...)
	}
	return result
}

// Intersect returns the elements of s present in every other, keeping s's own
// values. All operands must share s's family.
func (s SortedSet[T]) Intersect(others ...SortedSet[T]) SortedSet[T] {
	s.checkFamily("Intersect", others...)
	return s.Filter(func(v T) bool {
		for _, other := range others {
			if !other.Has(v) {
				return false
			}
		}
		return true
	})
}

// Diff returns the elements of s not present in any other. All operands must
// share s's family.
func (s SortedSet[T]) Diff(others ...SortedSet[T]) SortedSet[T] {
	s.checkFamily("Diff", others...)
	return s.Filter(func(v T) bool {
		for _, other := range others {
			if other.Has(v) {
				return false
			}
		}
		return true
	})
}

// SymDiff returns the elements present in exactly one of s and other.
func (s SortedSet[T]) SymDiff(other SortedSet[T]) SortedSet[T] {
	s.checkFamily("SymDiff", other)
	return s.Diff(other).Union(other.Diff(s))
}

// Filter returns the elements for which pred holds. The backing is already
// sorted, so the relative order is preserved without re-sorting.
func (s SortedSet[T]) Filter(pred func(v T) bool) SortedSet[T] {
	if len(s.elems) == 0 {
		return s
	}
	elems := make([]Box[T], 0, len(s.elems))
	for _, b := range s.elems {
		if pred(b.v) {
			elems = append(elems, b)
		}
	}
	return SortedSet[T]{fam: s.fam, elems: elems}
}

// FilterNot returns the elements for which pred does not hold.
func (s SortedSet[T]) FilterNot(pred func(v T) bool) SortedSet[T] {
	return s.Filter(func(v T) bool {
		return !pred(v)
	})
}

// Partition splits s into the elements satisfying pred and the rest.
func (s SortedSet[T]) Partition(pred func(v T) bool) (SortedSet[T], SortedSet[T]) {
	return s.Filter(pred), s.FilterNot(pred)
}

// Collect applies a partial projection closed under T, keeping only defined
// results. The projection may land anywhere in the order, so results are
// re-inserted from scratch; later policy-equal results overwrite earlier
// ones.
func (s SortedSet[T]) Collect(fn func(v T) (T, bool)) SortedSet[T] {
	if len(s.elems) == 0 {
		return s
	}
	out := make([]T, 0, len(s.elems))
	for _, b := range s.elems {
		if u, ok := fn(b.v); ok {
			out = append(out, u)
		}
	}
	return s.fam.NewSet(out...)
}

// Reduce combines the elements in ascending order. It panics with
// EmptyCollectionError on an empty set.
func (s SortedSet[T]) Reduce(f func(a, b T) T) T {
	return reduce[T](s, f)
}

// First returns the least element. O(1).
func (s SortedSet[T]) First() T {
	if len(s.elems) == 0 {
		panic(EmptyCollectionError{Op: "First"})
	}
	return s.elems[0].v
}

// Head returns the least element; enumeration order is the total order, so
// Head and First agree.
func (s SortedSet[T]) Head() T {
	if len(s.elems) == 0 {
		panic(EmptyCollectionError{Op: "Head"})
	}
	return s.elems[0].v
}

// Last returns the greatest element. O(1).
func (s SortedSet[T]) Last() T {
	if len(s.elems) == 0 {
		panic(EmptyCollectionError{Op: "Last"})
	}
	return s.elems[len(s.elems)-1].v
}

// Init returns s without its greatest element.
func (s SortedSet[T]) Init() SortedSet[T] {
	if len(s.elems) == 0 {
		panic(EmptyCollectionError{Op: "Init"})
	}
	return SortedSet[T]{fam: s.fam, elems: s.elems[:len(s.elems)-1]}
}

// Tail returns s without its least element.
func (s SortedSet[T]) Tail() SortedSet[T] {
	if len(s.elems) == 0 {
		panic(EmptyCollectionError{Op: "Tail"})
	}
	return SortedSet[T]{fam: s.fam, elems: s.elems[1:]}
}

// At returns the element at position idx in ascending order. O(1).
func (s SortedSet[T]) At(idx int) T {
	if idx < 0 || idx >= len(s.elems) {
		panic(IndexOutOfRangeError{Index: idx, Len: len(s.elems)})
	}
	return s.elems[idx].v
}

// Min returns the least element under less. For the family's own order, use
// First.
func (s SortedSet[T]) Min(less func(a, b T) bool) T {
	return minBy[T](s, less, "Min")
}

// Max returns the greatest element under less. For the family's own order,
// use Last.
func (s SortedSet[T]) Max(less func(a, b T) bool) T {
	return maxBy[T](s, less, "Max")
}

// Range returns the elements v with lo <= v < hi under the family's order.
func (s SortedSet[T]) Range(lo, hi T) SortedSet[T] {
	if len(s.elems) == 0 {
		return s
	}
	i := s.search(lo)
	j := s.search(hi)
	if j < i {
		j = i
	}
	return SortedSet[T]{fam: s.fam, elems: s.elems[i:j]}
}

// Equals reports set equality under the family's rules. Sets from different
// families are never equal, even with identical contents. Both backings are
// sorted, so this is a single pairwise pass.
func (s SortedSet[T]) Equals(other SortedSet[T]) bool {
	if s.fam != other.fam || len(s.elems) != len(other.elems) {
		return false
	}
	for i, b := range s.elems {
		if !s.fam.r.Equivalent(b.v, other.elems[i].v) {
			return false
		}
	}
	return true
}

// Iter visits elements in ascending order until cb returns true.
func (s SortedSet[T]) Iter(cb func(v T) (stop bool)) {
	for _, b := range s.elems {
		if cb(b.v) {
			return
		}
	}
}

// IterAll visits every element in ascending order.
func (s SortedSet[T]) IterAll(cb func(v T)) {
	for _, b := range s.elems {
		cb(b.v)
	}
}

// ToSlice returns the elements as a plain slice in ascending order.
func (s SortedSet[T]) ToSlice() []T {
	out := make([]T, len(s.elems))
	for i, b := range s.elems {
		out[i] = b.v
	}
	return out
}

// CopyTo copies up to len(dst) elements into dst in ascending order and
// returns the number copied.
func (s SortedSet[T]) CopyTo(dst []T) int {
	return copyTo[T](s, dst)
}

// Format renders the elements between start and end, separated by sep.
func (s SortedSet[T]) Format(start, sep, end string) string {
	return format[T](s, start, sep, end)
}

func (s SortedSet[T]) String() string {
	return s.Format("SortedSet{", ", ", "}")
}

func (s SortedSet[T]) requireFamily() {
	d.Chk.NotNil(s.fam, "sets: the zero SortedSet has no family; mint sets from a SortedFamily")
}

func (s SortedSet[T]) checkFamily(op string, others ...SortedSet[T]) {
	s.requireFamily()
	for _, other := range others {
		if other.fam != s.fam {
			panic(FamilyMismatchError{Op: op})
		}
	}
}

func (s SortedSet[T]) search(v T) int {
	return searchBoxes(s.elems, s.fam.r, v)
}

func searchBoxes[T any](elems []Box[T], r OrderedRules[T], v T) int {
	return sort.Search(len(elems), func(i int) bool {
		return !r.Less(elems[i].v, v)
	})
}
