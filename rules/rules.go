// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

// Package rules provides ready-made equality rules for common element types.
// The sets package only consumes the Rules contract; nothing here is part of
// the engine.
package rules

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/attic-labs/equiv/sets"
)

// Ordered returns rules for any ordered primitive, using the type's own
// equality and order. Float NaNs break the reflexivity obligation and must
// not be used as elements.
func Ordered[T cmp.Ordered]() sets.OrderedRules[T] {
	return ordered[T]{}
}

type ordered[T cmp.Ordered] struct{}

func (ordered[T]) Hash(v T) uint64 {
	return xxhash.Sum64(fmt.Append(nil, v))
}

func (ordered[T]) Equivalent(a, b T) bool {
	return a == b
}

func (ordered[T]) Less(a, b T) bool {
	return a < b
}

// Strings returns rules for strings with their natural equality and order.
func Strings() sets.OrderedRules[string] {
	return stringRules{}
}

type stringRules struct{}

func (stringRules) Hash(v string) uint64 {
	return xxhash.Sum64String(v)
}

func (stringRules) Equivalent(a, b string) bool {
	return a == b
}

func (stringRules) Less(a, b string) bool {
	return a < b
}

// FoldedStrings returns case-insensitive string rules: values whose lowercase
// forms match are policy-equal, hash equal, and ordered by lowercase form.
func FoldedStrings() sets.OrderedRules[string] {
	return foldedStrings{}
}

type foldedStrings struct{}

func (foldedStrings) Hash(v string) uint64 {
	return xxhash.Sum64String(strings.ToLower(v))
}

func (foldedStrings) Equivalent(a, b string) bool {
	return strings.ToLower(a) == strings.ToLower(b)
}

func (foldedStrings) Less(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}

// By returns rules that treat two values as equal when key maps them to the
// same ordered primitive. Hash and order follow the key as well.
func By[T any, K cmp.Ordered](key func(v T) K) sets.OrderedRules[T] {
	return byKey[T, K]{key: key}
}

type byKey[T any, K cmp.Ordered] struct {
	key func(v T) K
}

func (r byKey[T, K]) Hash(v T) uint64 {
	return xxhash.Sum64(fmt.Append(nil, r.key(v)))
}

func (r byKey[T, K]) Equivalent(a, b T) bool {
	return r.key(a) == r.key(b)
}

func (r byKey[T, K]) Less(a, b T) bool {
	return r.key(a) < r.key(b)
}
