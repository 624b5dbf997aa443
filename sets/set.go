// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package sets

import (
	"slices"

	"github.com/attic-labs/equiv/d"
)

// Set is an immutable set of T whose membership is decided by the owning
// family's rules rather than by T's own equality. It is backed by hash
// buckets of boxes keyed by the rules' hash. Operations that change contents
// return a new Set and leave the receiver untouched, so a Set value can be
// shared freely.
//
// Enumeration order is unspecified but deterministic for a given Set value:
// ascending bucket hash, then bucket insertion order.
//
// The zero Set is empty, belongs to no family, and supports read-only
// operations; use a Family to mint sets that can be modified.
type Set[T any] struct {
	fam     *Family[T]
	buckets map[uint64][]Box[T]
	size    int
}

var _ Collection[int] = Set[int]{}

// Family returns the family that minted s, or nil for the zero Set.
func (s Set[T]) Family() *Family[T] {
	return s.fam
}

func (s Set[T]) Len() int {
	return s.size
}

func (s Set[T]) Empty() bool {
	return s.size == 0
}

// Has reports whether the set holds an element policy-equal to v.
func (s Set[T]) Has(v T) bool {
	if s.size == 0 {
		return false
	}
	r := s.fam.r
	for _, b := range s.buckets[r.Hash(v)] {
		if r.Equivalent(b.v, v) {
			return true
		}
	}
	return false
}

// Insert returns a set that contains vs. A value policy-equal to an existing
// element replaces it, so the latest insert wins on the value even though the
// element was already present.
func (s Set[T]) Insert(vs ...T) Set[T] {
	if len(vs) == 0 {
		return s
	}
	s.requireFamily()
	m := copyBuckets(s.buckets)
	size := s.size
	for _, v := range vs {
		if insertBox(m, s.fam.r, s.fam.Box(v)) {
			size++
		}
	}
	return Set[T]{fam: s.fam, buckets: m, size: size}
}

// Remove returns a set without any element policy-equal to one of vs. Absent
// values are ignored.
func (s Set[T]) Remove(vs ...T) Set[T] {
	if s.size == 0 || len(vs) == 0 {
		return s
	}
	m := copyBuckets(s.buckets)
	size := s.size
	r := s.fam.r
	for _, v := range vs {
		h := r.Hash(v)
		bucket := m[h]
		for i, b := range bucket {
			if r.Equivalent(b.v, v) {
				bucket = append(bucket[:i], bucket[i+1:]...)
				size--
				break
			}
		}
		if len(bucket) == 0 {
			delete(m, h)
		} else {
			m[h] = bucket
		}
	}
	return Set[T]{fam: s.fam, buckets: m, size: size}
}

// Union returns the elements present in s or in any of others. Where operands
// hold policy-equal values the rightmost value survives, consistent with
// Insert. All operands must share s's family.
func (s Set[T]) Union(others ...Set[T]) Set[T] {
	s.checkFamily("Union", others...)
	result := s
	for _, other := range others {
		result = result.Insert(other.ToSlice()...)
	}
	return result
}

// Intersect returns the elements of s present in every other, keeping s's own
// values. All operands must share s's family.
func (s Set[T]) Intersect(others ...Set[T]) Set[T] {
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
func (s Set[T]) Diff(others ...Set[T]) Set[T] {
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
func (s Set[T]) SymDiff(other Set[T]) Set[T] {
	s.checkFamily("SymDiff", other)
	return s.Diff(other).Union(other.Diff(s))
}

// Filter returns the elements for which pred holds.
func (s Set[T]) Filter(pred func(v T) bool) Set[T] {
	if s.size == 0 {
		return s
	}
	m := map[uint64][]Box[T]{}
	size := 0
	s.IterAll(func(v T) {
		if pred(v) {
			if insertBox(m, s.fam.r, s.fam.Box(v)) {
				size++
			}
		}
	})
	return Set[T]{fam: s.fam, buckets: m, size: size}
}

// FilterNot returns the elements for which pred does not hold.
func (s Set[T]) FilterNot(pred func(v T) bool) Set[T] {
	return s.Filter(func(v T) bool {
		return !pred(v)
	})
}

// Partition splits s into the elements satisfying pred and the rest.
func (s Set[T]) Partition(pred func(v T) bool) (Set[T], Set[T]) {
	return s.Filter(pred), s.FilterNot(pred)
}

// Collect applies a partial projection closed under T: fn reports whether it
// is defined for v, and only defined results are kept. Results land in a new
// set of the same family, so later policy-equal results overwrite earlier
// ones.
func (s Set[T]) Collect(fn func(v T) (T, bool)) Set[T] {
	if s.size == 0 {
		return s
	}
	m := map[uint64][]Box[T]{}
	size := 0
	s.IterAll(func(v T) {
		if u, ok := fn(v); ok {
			if insertBox(m, s.fam.r, s.fam.Box(u)) {
				size++
			}
		}
	})
	return Set[T]{fam: s.fam, buckets: m, size: size}
}

// Reduce combines the elements in enumeration order. It panics with
// EmptyCollectionError on an empty set.
func (s Set[T]) Reduce(f func(a, b T) T) T {
	return reduce[T](s, f)
}

// Head returns the first element in enumeration order.
func (s Set[T]) Head() T {
	return head[T](s, "Head")
}

// Last returns the last element in enumeration order.
func (s Set[T]) Last() T {
	return last[T](s, "Last")
}

// Init returns s without its last element in enumeration order.
func (s Set[T]) Init() Set[T] {
	if s.size == 0 {
		panic(EmptyCollectionError{Op: "Init"})
	}
	return s.Remove(s.Last())
}

// Tail returns s without its first element in enumeration order.
func (s Set[T]) Tail() Set[T] {
	if s.size == 0 {
		panic(EmptyCollectionError{Op: "Tail"})
	}
	return s.Remove(s.Head())
}

// At returns the element at position idx in enumeration order.
func (s Set[T]) At(idx int) T {
	return at[T](s, idx)
}

// Min returns the least element under less.
func (s Set[T]) Min(less func(a, b T) bool) T {
	return minBy[T](s, less, "Min")
}

// Max returns the greatest element under less.
func (s Set[T]) Max(less func(a, b T) bool) T {
	return maxBy[T](s, less, "Max")
}

// Equals reports set equality under the family's rules: every element of one
// operand is policy-equal to exactly one element of the other. Sets from
// different families are never equal, even with identical contents.
func (s Set[T]) Equals(other Set[T]) bool {
	if s.fam != other.fam || s.size != other.size {
		return false
	}
	eq := true
	s.Iter(func(v T) bool {
		if !other.Has(v) {
			eq = false
			return true
		}
		return false
	})
	return eq
}

// Iter visits elements in enumeration order until cb returns true.
func (s Set[T]) Iter(cb func(v T) (stop bool)) {
	for _, h := range s.sortedHashes() {
		for _, b := range s.buckets[h] {
			if cb(b.v) {
				return
			}
		}
	}
}

// IterAll visits every element in enumeration order.
func (s Set[T]) IterAll(cb func(v T)) {
	s.Iter(func(v T) bool {
		cb(v)
		return false
	})
}

// ToSlice returns the elements as a plain slice in enumeration order.
func (s Set[T]) ToSlice() []T {
	return toSlice[T](s)
}

// CopyTo copies up to len(dst) elements into dst in enumeration order and
// returns the number copied.
func (s Set[T]) CopyTo(dst []T) int {
	return copyTo[T](s, dst)
}

// Format renders the elements between start and end, separated by sep.
func (s Set[T]) Format(start, sep, end string) string {
	return format[T](s, start, sep, end)
}

func (s Set[T]) String() string {
	return s.Format("Set{", ", ", "}")
}

func (s Set[T]) requireFamily() {
	d.Chk.NotNil(s.fam, "sets: the zero Set has no family; mint sets from a Family")
}

func (s Set[T]) checkFamily(op string, others ...Set[T]) {
	s.requireFamily()
	for _, other := range others {
		if other.fam != s.fam {
			panic(FamilyMismatchError{Op: op})
		}
	}
}

func (s Set[T]) sortedHashes() []uint64 {
	hs := make([]uint64, 0, len(s.buckets))
	for h := range s.buckets {
		hs = append(hs, h)
	}
	slices.Sort(hs)
	return hs
}

func copyBuckets[T any](m map[uint64][]Box[T]) map[uint64][]Box[T] {
	out := make(map[uint64][]Box[T], len(m))
	for h, bucket := range m {
		out[h] = append([]Box[T](nil), bucket...)
	}
	return out
}

// insertBox adds b to its hash bucket, replacing a policy-equal box in place
// so the latest value wins. It reports whether the set grew.
func insertBox[T any](m map[uint64][]Box[T], r Rules[T], b Box[T]) bool {
	h := r.Hash(b.v)
	bucket := m[h]
	for i, old := range bucket {
		if r.Equivalent(old.v, b.v) {
			bucket[i] = b
			return false
		}
	}
	m[h] = append(bucket, b)
	return true
}
