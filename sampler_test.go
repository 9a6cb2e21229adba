package main

import (
	"fmt"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeCatalog(n int) []Cosmetic {
	items := make([]Cosmetic, n)
	for i := range items {
		items[i] = Cosmetic{Id: fmt.Sprintf("Item:%d", i), Price: (i + 1) * 100}
	}
	return items
}

func TestGenerateRandomItems_RemovesFromPool(t *testing.T) {
	catalog := makeCatalog(10)
	pool := append([]Cosmetic(nil), catalog...)

	picked, err := NewSampler(7).GenerateRandomItems(&pool, 4)
	require.NoError(t, err)
	assert.Len(t, picked, 4)
	assert.Len(t, pool, 6)
	assert.Len(t, lo.Uniq(cosmeticIDs(picked)), 4)

	// Remaining items are exactly the ones not drawn, in catalog order.
	want := lo.Reject(catalog, func(c Cosmetic, _ int) bool { return lo.Contains(picked, c) })
	assert.Equal(t, want, pool)
}

func TestGenerateRandomItems_WholePool(t *testing.T) {
	catalog := makeCatalog(5)
	pool := append([]Cosmetic(nil), catalog...)

	picked, err := NewSampler(1).GenerateRandomItems(&pool, 5)
	require.NoError(t, err)
	assert.Empty(t, pool)
	assert.ElementsMatch(t, catalog, picked)
}

func TestGenerateRandomItems_Insufficient(t *testing.T) {
	pool := makeCatalog(3)

	_, err := NewSampler(1).GenerateRandomItems(&pool, 4)
	assert.ErrorIs(t, err, ErrInsufficientItems)
	assert.Len(t, pool, 3, "pool must be untouched on failure")

	_, err = NewSampler(1).GenerateRandomItems(&pool, -1)
	assert.ErrorIs(t, err, ErrInsufficientItems)
}

func TestGenerateRandomItems_Zero(t *testing.T) {
	var pool []Cosmetic
	picked, err := NewSampler(1).GenerateRandomItems(&pool, 0)
	require.NoError(t, err)
	assert.Empty(t, picked)
}

func TestSampler_SameSeedSameDraws(t *testing.T) {
	draw := func(seed int64) []Cosmetic {
		pool := makeCatalog(20)
		picked, err := NewSampler(seed).GenerateRandomItems(&pool, 8)
		require.NoError(t, err)
		return picked
	}
	assert.Equal(t, draw(99), draw(99))
	assert.Equal(t, int64(99), NewSampler(99).Seed())
}
