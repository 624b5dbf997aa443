// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package sets

import (
	"fmt"
	"strings"
)

// Collection is the read-only surface shared by Set and SortedSet. Mutating
// operations return the concrete type and live on each implementation; the
// algorithms both kinds share (folds, grouping, bridges) are free functions
// over Collection.
type Collection[T any] interface {
	Len() int
	Empty() bool
	Has(v T) bool

	// Iter visits elements in enumeration order until cb returns true.
	Iter(cb func(v T) (stop bool))
	// IterAll visits every element in enumeration order.
	IterAll(cb func(v T))

	// ToSlice returns the elements as a plain slice in enumeration order.
	ToSlice() []T
	// CopyTo copies up to len(dst) elements into dst in enumeration order
	// and returns the number copied.
	CopyTo(dst []T) int
	// At returns the element at position idx in enumeration order. It
	// panics with IndexOutOfRangeError when idx is out of range.
	At(idx int) T

	// Head and Last return the first and last element in enumeration
	// order. They panic with EmptyCollectionError on an empty collection.
	Head() T
	Last() T

	// Format renders the elements in enumeration order between start and
	// end, separated by sep.
	Format(start, sep, end string) string
}

func toSlice[T any](c Collection[T]) []T {
	out := make([]T, 0, c.Len())
	c.IterAll(func(v T) {
		out = append(out, v)
	})
	return out
}

func copyTo[T any](c Collection[T], dst []T) int {
	n := 0
	c.Iter(func(v T) bool {
		if n == len(dst) {
			return true
		}
		dst[n] = v
		n++
		return false
	})
	return n
}

func at[T any](c Collection[T], idx int) T {
	if idx < 0 || idx >= c.Len() {
		panic(IndexOutOfRangeError{Index: idx, Len: c.Len()})
	}
	var out T
	i := 0
	c.Iter(func(v T) bool {
		if i == idx {
			out = v
			return true
		}
		i++
		return false
	})
	return out
}

func head[T any](c Collection[T], op string) T {
	if c.Empty() {
		panic(EmptyCollectionError{Op: op})
	}
	var out T
	c.Iter(func(v T) bool {
		out = v
		return true
	})
	return out
}

func last[T any](c Collection[T], op string) T {
	if c.Empty() {
		panic(EmptyCollectionError{Op: op})
	}
	var out T
	c.IterAll(func(v T) {
		out = v
	})
	return out
}

func minBy[T any](c Collection[T], less func(a, b T) bool, op string) T {
	if c.Empty() {
		panic(EmptyCollectionError{Op: op})
	}
	var out T
	first := true
	c.IterAll(func(v T) {
		if first || less(v, out) {
			out = v
			first = false
		}
	})
	return out
}

func maxBy[T any](c Collection[T], less func(a, b T) bool, op string) T {
	if c.Empty() {
		panic(EmptyCollectionError{Op: op})
	}
	var out T
	first := true
	c.IterAll(func(v T) {
		if first || less(out, v) {
			out = v
			first = false
		}
	})
	return out
}

func reduce[T any](c Collection[T], f func(a, b T) T) T {
	if c.Empty() {
		panic(EmptyCollectionError{Op: "Reduce"})
	}
	var acc T
	first := true
	c.IterAll(func(v T) {
		if first {
			acc = v
			first = false
			return
		}
		acc = f(acc, v)
	})
	return acc
}

func format[T any](c Collection[T], start, sep, end string) string {
	var sb strings.Builder
	sb.WriteString(start)
	first := true
	c.IterAll(func(v T) {
		if !first {
			sb.WriteString(sep)
		}
		first = false
		fmt.Fprintf(&sb, "%v", v)
	})
	sb.WriteString(end)
	return sb.String()
}
