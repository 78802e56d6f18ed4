package services

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFavoritesStore_AddIsIdempotent(t *testing.T) {
	store := NewFavoritesStore()

	assert.True(t, store.Add("42"))
	assert.False(t, store.Add("42"))

	assert.Equal(t, []string{"42"}, store.List())
	assert.Equal(t, 1, store.Len())
	assert.True(t, store.Contains("42"))
	assert.False(t, store.Contains("7"))
}

func TestFavoritesStore_IgnoresEmptyID(t *testing.T) {
	store := NewFavoritesStore()

	assert.False(t, store.Add(""))
	assert.Empty(t, store.List())
}

func TestFavoritesStore_ListIsSnapshot(t *testing.T) {
	store := NewFavoritesStore()
	store.Add("b")
	store.Add("a")

	ids := store.List()
	assert.Equal(t, []string{"a", "b"}, ids)

	ids[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, store.List())
}

func TestFavoritesStore_ConcurrentAdds(t *testing.T) {
	store := NewFavoritesStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store.Add(fmt.Sprintf("%d", i%10))
			store.List()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, store.Len())
}
