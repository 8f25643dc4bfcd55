package cache

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestCache_GetSet(t *testing.T) {
	c := New[string, int](4)
	if _, ok := c.Get("a"); ok {
		t.Fatal("Get on empty cache hit")
	}
	c.Set("a", 1)
	c.Set("a", 2)
	if v, ok := c.Get("a"); !ok || v != 2 {
		t.Errorf("Get(a) = %v, %v, want 2, true", v, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](3)
	for i := range 3 {
		c.Set(i, i)
	}
	c.Get(0)
	c.Set(3, 3)

	if _, ok := c.Get(1); ok {
		t.Error("1 should have been evicted")
	}
	for _, k := range []int{0, 2, 3} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("%d evicted, want kept", k)
		}
	}
	if s := c.Stats(); s.Evictions != 1 || s.Len != 3 || s.Capacity != 3 {
		t.Errorf("Stats() = %+v", s)
	}
}

func TestCache_Unlimited(t *testing.T) {
	c := New[int, int](0)
	for i := range 1000 {
		c.Set(i, i)
	}
	if c.Len() != 1000 || c.Capacity() != 0 {
		t.Errorf("Len() = %d, Capacity() = %d", c.Len(), c.Capacity())
	}
}

func TestCache_GetOrCreate(t *testing.T) {
	c := New[string, int](8)
	calls := 0
	create := func() int { calls++; return 7 }

	for range 3 {
		if v := c.GetOrCreate("k", create); v != 7 {
			t.Errorf("GetOrCreate = %d, want 7", v)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 {
		t.Errorf("hits/misses = %d/%d, want 2/1", s.Hits, s.Misses)
	}
	if r := s.HitRate(); r < 0.66 || r > 0.67 {
		t.Errorf("HitRate() = %v, want 2/3", r)
	}
}

func TestCache_DeleteClear(t *testing.T) {
	c := New[int, string](4)
	c.Set(1, "a")
	c.Set(2, "b")
	if !c.Delete(1) || c.Delete(1) {
		t.Error("Delete should report presence once")
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d", c.Len())
	}
	c.Set(3, "c")
	if v, ok := c.Get(3); !ok || v != "c" {
		t.Error("cache unusable after Clear")
	}
}

func TestCache_Concurrent(t *testing.T) {
	c := New[int, int](16)
	var created atomic.Int64
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				k := (g + i) % 32
				v := c.GetOrCreate(k, func() int { created.Add(1); return k * 2 })
				if v != k*2 {
					t.Errorf("GetOrCreate(%d) = %d", k, v)
					return
				}
			}
		}()
	}
	wg.Wait()
	if c.Len() > 16 {
		t.Errorf("Len() = %d, want <= 16", c.Len())
	}
}
