// CineGraph - MovieLens Scoring and Analytics Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package cache

import (
	"fmt"
	"sync"
	"testing"
)

func TestLRU_BasicOperations(t *testing.T) {
	cache := NewLRU[string, int](3)

	cache.Add("a", 1)
	cache.Add("b", 2)
	cache.Add("c", 3)

	if v, found := cache.Get("a"); !found || v != 1 {
		t.Errorf("Get(a) = %d, %v; want 1, true", v, found)
	}
	if cache.Len() != 3 {
		t.Errorf("Len() = %d, want 3", cache.Len())
	}
}

func TestLRU_Eviction(t *testing.T) {
	cache := NewLRU[string, int](3)

	cache.Add("a", 1)
	cache.Add("b", 2)
	cache.Add("c", 3)

	// Touch 'a' so 'b' becomes the eviction candidate.
	cache.Get("a")
	cache.Add("d", 4)

	if _, found := cache.Get("b"); found {
		t.Error("expected 'b' to be evicted")
	}
	for _, key := range []string{"a", "c", "d"} {
		if _, found := cache.Get(key); !found {
			t.Errorf("expected %q to be present", key)
		}
	}
}

func TestLRU_UpdateExisting(t *testing.T) {
	cache := NewLRU[string, int](2)

	cache.Add("a", 1)
	cache.Add("a", 10)

	if cache.Len() != 1 {
		t.Errorf("Len() = %d, want 1", cache.Len())
	}
	if v, _ := cache.Get("a"); v != 10 {
		t.Errorf("Get(a) = %d, want 10", v)
	}
}

func TestLRU_GetOrCompute(t *testing.T) {
	cache := NewLRU[string, int](4)

	calls := 0
	compute := func() int {
		calls++
		return 42
	}

	if v := cache.GetOrCompute("k", compute); v != 42 {
		t.Errorf("GetOrCompute = %d, want 42", v)
	}
	if v := cache.GetOrCompute("k", compute); v != 42 {
		t.Errorf("GetOrCompute = %d, want 42", v)
	}
	if calls != 1 {
		t.Errorf("compute ran %d times, want 1", calls)
	}
}

func TestLRU_Purge(t *testing.T) {
	cache := NewLRU[string, int](4)

	cache.Add("a", 1)
	cache.Add("b", 2)
	cache.Purge()

	if cache.Len() != 0 {
		t.Errorf("Len() after Purge = %d, want 0", cache.Len())
	}
	if _, found := cache.Get("a"); found {
		t.Error("expected 'a' gone after Purge")
	}

	// The cache must stay usable after a purge.
	cache.Add("c", 3)
	if v, found := cache.Get("c"); !found || v != 3 {
		t.Errorf("Get(c) = %d, %v; want 3, true", v, found)
	}
}

func TestLRU_Stats(t *testing.T) {
	cache := NewLRU[string, int](4)

	cache.Add("a", 1)
	cache.Get("a")
	cache.Get("missing")

	hits, misses := cache.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("Stats() = %d, %d; want 1, 1", hits, misses)
	}
}

func TestLRU_Concurrent(t *testing.T) {
	cache := NewLRU[string, int](64)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				key := fmt.Sprintf("k%d", j%32)
				cache.Add(key, n)
				cache.Get(key)
			}
		}(i)
	}
	wg.Wait()

	if cache.Len() > 64 {
		t.Errorf("Len() = %d exceeds capacity", cache.Len())
	}
}
