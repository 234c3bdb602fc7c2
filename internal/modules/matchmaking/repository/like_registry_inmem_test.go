package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikeRegistryInMem_CheckAndAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("Testcase #1: Positive, first like then repeat", func(t *testing.T) {
		registry := NewLikeRegistryInMem()

		alreadyLiked, err := registry.CheckAndAdd(ctx, "bob@research.org", "alice@example.com")
		assert.NoError(t, err)
		assert.False(t, alreadyLiked)

		alreadyLiked, err = registry.CheckAndAdd(ctx, "bob@research.org", "alice@example.com")
		assert.NoError(t, err)
		assert.True(t, alreadyLiked)
	})

	t.Run("Testcase #2: Positive, like sets are per researcher", func(t *testing.T) {
		registry := NewLikeRegistryInMem()

		alreadyLiked, _ := registry.CheckAndAdd(ctx, "bob@research.org", "alice@example.com")
		assert.False(t, alreadyLiked)
		alreadyLiked, _ = registry.CheckAndAdd(ctx, "carol@research.org", "alice@example.com")
		assert.False(t, alreadyLiked)
	})

	t.Run("Testcase #3: Positive, concurrent repeats report exactly one first like", func(t *testing.T) {
		registry := NewLikeRegistryInMem()

		const attempts = 50
		var wg sync.WaitGroup
		var mu sync.Mutex
		firstLikes := 0
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				alreadyLiked, err := registry.CheckAndAdd(ctx, "bob@research.org", "alice@example.com")
				assert.NoError(t, err)
				if !alreadyLiked {
					mu.Lock()
					firstLikes++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, firstLikes)
	})
}

func TestLikeRegistryInMem_Likes(t *testing.T) {
	ctx := context.Background()

	t.Run("Testcase #1: Positive", func(t *testing.T) {
		registry := NewLikeRegistryInMem()
		registry.CheckAndAdd(ctx, "bob@research.org", "alice@example.com")
		registry.CheckAndAdd(ctx, "bob@research.org", "dave@example.com")

		likes, err := registry.Likes(ctx, "bob@research.org")
		assert.NoError(t, err)
		assert.ElementsMatch(t, []string{"alice@example.com", "dave@example.com"}, likes)
	})

	t.Run("Testcase #2: Positive, unknown researcher yields empty set", func(t *testing.T) {
		registry := NewLikeRegistryInMem()

		likes, err := registry.Likes(ctx, "nobody@research.org")
		assert.NoError(t, err)
		assert.Empty(t, likes)
	})
}
