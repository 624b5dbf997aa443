// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package sets

// Rules decides what "the same element" means for every set minted by one
// family. Implementations must provide an equivalence relation (reflexive,
// symmetric, transitive) and a hash consistent with it: whenever
// Equivalent(a, b) holds, Hash(a) == Hash(b) must hold too.
//
// The sets package never implements Rules itself; callers supply a value when
// constructing a Family. The rules package has ready-made implementations for
// common cases.
type Rules[T any] interface {
	Hash(v T) uint64
	Equivalent(a, b T) bool
}

// OrderedRules extends Rules with a total order, required by sorted families.
// The order must agree with the equivalence: Equivalent(a, b) holds exactly
// when neither Less(a, b) nor Less(b, a). This is a caller obligation; it is
// not checked, and violating it silently collapses or misplaces elements in
// sorted sets.
type OrderedRules[T any] interface {
	Rules[T]
	Less(a, b T) bool
}
