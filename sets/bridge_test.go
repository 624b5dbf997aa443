// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package sets

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBridgeAcrossFamilies(t *testing.T) {
	assert := assert.New(t)
	src := NewFamily[int](intRules{}).NewSet(1, 2, 3, 4)
	dest := NewFamily[int](intRules{})

	got := Into[int, int](src, dest).Collect(func(v int) (int, bool) {
		return v, v%2 == 0
	})
	assert.Same(dest, got.Family())
	assert.True(got.Equals(dest.NewSet(2, 4)))
}

func TestBridgeRoundTripIdentity(t *testing.T) {
	assert := assert.New(t)
	fam := NewFamily[string](foldedRules{})
	s := fam.NewSet("a", "B", "c")

	got := Into[string, string](s, fam).Collect(func(v string) (string, bool) {
		return v, true
	})
	assert.True(got.Equals(s))
}

func TestBridgeChangesElementType(t *testing.T) {
	assert := assert.New(t)
	src := NewFamily[int](intRules{}).NewSet(1, 2, 10)
	dest := NewFamily[string](strRules{})

	got := Into[int, string](src, dest).Collect(func(v int) (string, bool) {
		return strconv.Itoa(v), true
	})
	assert.True(got.Equals(dest.NewSet("1", "2", "10")))
}

func TestBridgeAppliesDestinationRules(t *testing.T) {
	assert := assert.New(t)
	src := NewFamily[string](strRules{}).NewSet("Foo", "foo", "bar")
	dest := NewFamily[string](foldedRules{})

	// Under the source's rules "Foo" and "foo" are distinct; the
	// destination folds them into one element.
	assert.Equal(3, src.Len())
	got := Into[string, string](src, dest).Collect(func(v string) (string, bool) {
		return v, true
	})
	assert.Equal(2, got.Len())
	assert.True(got.Has("FOO"))
	assert.True(got.Has("BAR"))
}

func TestBridgeIntoSorted(t *testing.T) {
	assert := assert.New(t)
	src := NewFamily[int](intRules{}).NewSet(3, 1, 4, 2)
	dest := NewSortedFamily[int](intRules{})

	got := IntoSorted[int, int](src, dest).Collect(func(v int) (int, bool) {
		return v * 10, true
	})
	assert.Equal([]int{10, 20, 30, 40}, got.ToSlice())
	assert.Same(dest, got.Family())
}

func TestBridgeFromSortedSource(t *testing.T) {
	assert := assert.New(t)
	src := NewSortedFamily[int](intRules{}).NewSet(5, 3, 8)
	dest := NewFamily[string](strRules{})

	got := Into[int, string](src, dest).Collect(func(v int) (string, bool) {
		return strconv.Itoa(v), v > 3
	})
	assert.True(got.Equals(dest.NewSet("5", "8")))
}

func TestCollectIntoConvenience(t *testing.T) {
	assert := assert.New(t)
	src := NewFamily[int](intRules{}).NewSet(1, 2, 3, 4)
	dest := NewFamily[int](intRules{})
	evens := func(v int) (int, bool) { return v, v%2 == 0 }

	oneStep := CollectInto[int, int](src, dest, evens)
	twoStep := Into[int, int](src, dest).Collect(evens)
	assert.True(oneStep.Equals(twoStep))

	sortedDest := NewSortedFamily[int](intRules{})
	assert.Equal([]int{2, 4}, CollectIntoSorted[int, int](src, sortedDest, evens).ToSlice())
}
