package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultimap_OrderAndDuplicates(t *testing.T) {
	m := NewMultimap[string, int]()
	m.Put("b", 1)
	m.Put("a", 2)
	m.Put("b", 1)
	m.Put("b", 3)

	assert.Equal(t, []string{"b", "a"}, m.Keys())
	assert.Equal(t, []int{1, 1, 3}, m.Get("b"))
	assert.Equal(t, []int{2}, m.Get("a"))
	assert.Equal(t, 4, m.Len())
	assert.Nil(t, m.Get("missing"))
}
