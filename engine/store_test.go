package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/floorsim/core"
)

func TestStoreIteratesAscending(t *testing.T) {
	s := NewStore[int]()
	s.Set(5, 50)
	s.Set(2, 20)
	s.Set(9, 90)
	s.Set(2, 21) // update keeps a single entry

	assert.Equal(t, []core.Entity{2, 5, 9}, s.All())
	assert.Equal(t, 3, s.Count())

	v, ok := s.Get(2)
	assert.True(t, ok)
	assert.Equal(t, 21, v)
}

func TestStoreRemove(t *testing.T) {
	s := NewStore[string]()
	s.Set(1, "a")
	s.Set(2, "b")
	s.Set(3, "c")

	s.Remove(2)
	s.Remove(42) // absent is a no-op

	assert.Equal(t, []core.Entity{1, 3}, s.All())
	assert.False(t, s.Has(2))

	s.Clear()
	assert.Equal(t, 0, s.Count())
	assert.Empty(t, s.All())
}

func TestStoreAllIsSnapshot(t *testing.T) {
	s := NewStore[int]()
	s.Set(1, 1)
	all := s.All()
	s.Set(2, 2)
	assert.Len(t, all, 1)
}
