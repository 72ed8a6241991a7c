package sharded

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShardAllocatesLazily(t *testing.T) {
	shard := NewShard[string, int](0, 16)
	require.Nil(t, shard.items)

	// Reads and removals on an untouched shard must not allocate storage.
	_, found := shard.Find("missing")
	assert.False(t, found)
	assert.Equal(t, 0, shard.Erase("missing"))
	assert.Equal(t, 0, shard.EraseIf(func(string, int) bool { return true }))
	assert.Nil(t, shard.items)

	_, inserted := shard.TryEmplace("a", func() int { return 1 })
	assert.True(t, inserted)
	assert.NotNil(t, shard.items)
}

func TestShardTryEmplaceKeepsExisting(t *testing.T) {
	shard := NewShard[string, int](0, 16)

	value, inserted := shard.TryEmplace("a", func() int { return 10 })
	require.True(t, inserted)
	require.Equal(t, 10, value)

	constructed := false
	value, inserted = shard.TryEmplace("a", func() int {
		constructed = true
		return 20
	})
	assert.False(t, inserted)
	assert.Equal(t, 10, value)
	assert.False(t, constructed, "construct must only run on actual insertion")
}

func TestShardEraseIf(t *testing.T) {
	shard := NewShard[int, int](0, 16)
	for i := 0; i < 10; i++ {
		shard.TryEmplace(i, func() int { return i })
	}

	removed := shard.EraseIf(func(_ int, value int) bool { return value%2 == 0 })
	assert.Equal(t, 5, removed)
	assert.Equal(t, 5, shard.Len())

	_, found := shard.Find(4)
	assert.False(t, found)
	_, found = shard.Find(5)
	assert.True(t, found)
}

func TestShardForEachCondStopsEarly(t *testing.T) {
	shard := NewShard[int, int](0, 16)
	for i := 0; i < 10; i++ {
		shard.TryEmplace(i, func() int { return i })
	}

	visited := 0
	completed := shard.ForEachCond(func(int, int) bool {
		visited++
		return visited < 3
	})
	assert.False(t, completed)
	assert.Equal(t, 3, visited)

	visited = 0
	completed = shard.ForEachCond(func(int, int) bool {
		visited++
		return true
	})
	assert.True(t, completed)
	assert.Equal(t, 10, visited)
}

func TestShardForEachVisitsAll(t *testing.T) {
	shard := NewShard[int, int](0, 16)
	sum := 0
	shard.ForEach(func(_ int, value int) { sum += value })
	assert.Zero(t, sum, "untouched shard visits nothing")

	for i := 1; i <= 4; i++ {
		shard.TryEmplace(i, func() int { return i })
	}
	shard.ForEach(func(_ int, value int) { sum += value })
	assert.Equal(t, 10, sum)
}
