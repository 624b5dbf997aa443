// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package sets

import "fmt"

// EmptyCollectionError is the panic value of operations that need at least
// one element, such as Head, Last, Min, Max and Reduce. It can be recovered
// with d.Try.
type EmptyCollectionError struct {
	Op string
}

func (e EmptyCollectionError) Error() string {
	return fmt.Sprintf("sets: %s on empty collection", e.Op)
}

// FamilyMismatchError is the panic value of binary set operations whose
// operands were minted by different families. Equality differs between
// families, so cross-family algebra is meaningless; move elements through a
// Bridge instead.
type FamilyMismatchError struct {
	Op string
}

func (e FamilyMismatchError) Error() string {
	return fmt.Sprintf("sets: %s operands belong to different families", e.Op)
}

// IndexOutOfRangeError is the panic value of positional access beyond the
// current size.
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("sets: index %d out of range for collection of size %d", e.Index, e.Len)
}
