// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/attic-labs/equiv/sets"
)

func TestOrdered(t *testing.T) {
	assert := assert.New(t)
	r := Ordered[int]()

	assert.True(r.Equivalent(3, 3))
	assert.False(r.Equivalent(3, 4))
	assert.Equal(r.Hash(3), r.Hash(3))
	assert.True(r.Less(3, 4))
	assert.False(r.Less(4, 3))

	s := sets.NewSortedFamily[int](r).NewSet(3, 1, 2)
	assert.Equal([]int{1, 2, 3}, s.ToSlice())
}

func TestStrings(t *testing.T) {
	assert := assert.New(t)
	r := Strings()

	assert.True(r.Equivalent("a", "a"))
	assert.False(r.Equivalent("a", "A"))
	assert.True(r.Less("a", "b"))
}

func TestFoldedStrings(t *testing.T) {
	assert := assert.New(t)
	r := FoldedStrings()

	assert.True(r.Equivalent("Foo", "fOO"))
	assert.Equal(r.Hash("Foo"), r.Hash("fOO"))
	assert.False(r.Less("Foo", "fOO"))
	assert.False(r.Less("fOO", "Foo"))
	assert.True(r.Less("BAR", "foo"))

	s := sets.NewFamily[string](r).NewSet("Foo", "foo")
	assert.Equal(1, s.Len())
	assert.Equal([]string{"foo"}, s.ToSlice())
}

type user struct {
	ID   int
	Name string
}

func TestBy(t *testing.T) {
	assert := assert.New(t)
	r := By(func(u user) int { return u.ID })

	a := user{ID: 1, Name: "ada"}
	b := user{ID: 1, Name: "babbage"}
	c := user{ID: 2, Name: "curie"}

	assert.True(r.Equivalent(a, b))
	assert.Equal(r.Hash(a), r.Hash(b))
	assert.False(r.Equivalent(a, c))
	assert.True(r.Less(a, c))

	// Replace-on-insert keeps the latest value for the same key.
	s := sets.NewFamily[user](r).NewSet(a, b)
	assert.Equal(1, s.Len())
	assert.Equal("babbage", s.Head().Name)

	sorted := sets.NewSortedFamily[user](r).NewSet(c, a)
	assert.Equal([]user{a, c}, sorted.ToSlice())
}
