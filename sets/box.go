// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package sets

// Box wraps a single value so that equality and hashing are redirected to the
// owning family's rules instead of T's own equality. Boxes are immutable and
// cheap to copy.
type Box[T any] struct {
	v     T
	owner handle[T]
}

// Value returns the wrapped value.
func (b Box[T]) Value() T {
	return b.v
}

// Hash returns the value's hash under the owning family's rules.
func (b Box[T]) Hash() uint64 {
	return b.owner.eqRules().Hash(b.v)
}

// Equals reports whether other holds a policy-equal value. Owner identity is
// checked first, so boxes from different families compare unequal without one
// family's rules ever being applied to another family's values.
func (b Box[T]) Equals(other Box[T]) bool {
	if b.owner != other.owner {
		return false
	}
	return b.owner.eqRules().Equivalent(b.v, other.v)
}
