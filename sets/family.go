// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

// Package sets implements immutable sets whose membership, equality and
// hashing follow a caller-supplied equivalence relation instead of the
// element type's own equality. A Family owns one Rules value and mints sets
// scoped to it; every operation that changes contents returns a new set and
// leaves its receiver untouched.
package sets

import "github.com/attic-labs/equiv/d"

// handle is the back reference from boxes to the family that minted them.
// Handles are compared by identity, never by rules contents, so two families
// built from behaviorally identical rules are still distinct scopes.
type handle[T any] interface {
	eqRules() Rules[T]
}

// Family mints hash-backed sets and boxes that all share one Rules value.
type Family[T any] struct {
	r Rules[T]
}

// NewFamily returns a family scoped to r.
func NewFamily[T any](r Rules[T]) *Family[T] {
	d.Chk.NotNil(r, "sets.NewFamily: nil rules")
	return &Family[T]{r: r}
}

// Rules returns the equality rules the family was built with. The rules are
// read-only after construction.
func (f *Family[T]) Rules() Rules[T] {
	return f.r
}

func (f *Family[T]) eqRules() Rules[T] {
	return f.r
}

// Box wraps v so that its equality and hashing follow this family's rules.
func (f *Family[T]) Box(v T) Box[T] {
	return Box[T]{v: v, owner: f}
}

// Empty returns the family's empty set.
func (f *Family[T]) Empty() Set[T] {
	return Set[T]{fam: f}
}

// NewSet builds a set by repeated insertion in argument order, so a later
// argument overwrites an earlier policy-equal one.
func (f *Family[T]) NewSet(vs ...T) Set[T] {
	return f.Empty().Insert(vs...)
}

// SortedFamily mints order-backed sets. Its OrderedRules carry the
// consistency obligation documented on that type.
type SortedFamily[T any] struct {
	r OrderedRules[T]
}

// NewSortedFamily returns a sorted family scoped to r.
func NewSortedFamily[T any](r OrderedRules[T]) *SortedFamily[T] {
	d.Chk.NotNil(r, "sets.NewSortedFamily: nil rules")
	return &SortedFamily[T]{r: r}
}

// Rules returns the ordered rules the family was built with.
func (f *SortedFamily[T]) Rules() OrderedRules[T] {
	return f.r
}

func (f *SortedFamily[T]) eqRules() Rules[T] {
	return f.r
}

// Box wraps v so that its equality and hashing follow this family's rules.
func (f *SortedFamily[T]) Box(v T) Box[T] {
	return Box[T]{v: v, owner: f}
}

// Empty returns the family's empty set.
func (f *SortedFamily[T]) Empty() SortedSet[T] {
	return SortedSet[T]{fam: f}
}

// NewSet builds a set by repeated insertion in argument order, so a later
// argument overwrites an earlier policy-equal one.
func (f *SortedFamily[T]) NewSet(vs ...T) SortedSet[T] {
	return f.Empty().Insert(vs...)
}
