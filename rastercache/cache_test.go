package rastercache

import (
	"sync"
	"testing"

	"github.com/gogpu/ggtext"
)

func key(glyphIndex uint16) ggtext.RasterKey {
	return ggtext.NewRasterKey(glyphIndex, 16, 0xabc123)
}

func TestNew(t *testing.T) {
	c := New[int](100)
	if c == nil {
		t.Fatal("New returned nil")
	}
	if c.Len() != 0 {
		t.Errorf("expected empty cache, got %d entries", c.Len())
	}
}

func TestCacheGetSet(t *testing.T) {
	c := New[int](10)

	c.Set(key(1), 42)

	val, ok := c.Get(key(1))
	if !ok {
		t.Error("expected key to exist")
	}
	if val != 42 {
		t.Errorf("expected 42, got %d", val)
	}

	if _, ok := c.Get(key(2)); ok {
		t.Error("expected missing key to not exist")
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[int](10)
	createCalled := 0

	val := c.GetOrCreate(key(1), func() int {
		createCalled++
		return 100
	})
	if val != 100 {
		t.Errorf("expected 100, got %d", val)
	}
	if createCalled != 1 {
		t.Errorf("expected create called once, got %d", createCalled)
	}

	val = c.GetOrCreate(key(1), func() int {
		createCalled++
		return 200
	})
	if val != 100 {
		t.Errorf("expected 100 (cached), got %d", val)
	}
	if createCalled != 1 {
		t.Errorf("expected create still called once, got %d", createCalled)
	}
}

func TestCacheDelete(t *testing.T) {
	c := New[int](10)

	c.Set(key(1), 42)

	if !c.Delete(key(1)) {
		t.Error("expected Delete to return true for existing key")
	}
	if _, ok := c.Get(key(1)); ok {
		t.Error("expected key to be deleted")
	}
	if c.Delete(key(1)) {
		t.Error("expected Delete to return false for already-deleted key")
	}
}

func TestCacheClear(t *testing.T) {
	c := New[int](10)

	c.Set(key(1), 1)
	c.Set(key(2), 2)
	c.Set(key(3), 3)

	if c.Len() != 3 {
		t.Errorf("expected 3 entries, got %d", c.Len())
	}

	c.Clear()

	if c.Len() != 0 {
		t.Errorf("expected 0 entries after clear, got %d", c.Len())
	}
}

func TestCacheEviction(t *testing.T) {
	c := New[int](4)

	for i := 0; i < 100; i++ {
		c.Set(key(uint16(i)), i)
	}

	stats := c.Stats()
	if stats.Evictions == 0 {
		t.Log("no evictions occurred, may depend on hash distribution")
	}
	if c.Len() > 4*ShardCount {
		t.Errorf("expected at most %d entries, got %d", 4*ShardCount, c.Len())
	}
}

func TestCacheStats(t *testing.T) {
	c := New[int](10)

	c.Set(key(1), 1)
	c.Set(key(2), 2)

	c.Get(key(1))
	c.Get(key(1))
	c.Get(key(99))

	stats := c.Stats()
	if stats.Len != 2 {
		t.Errorf("expected Len=2, got %d", stats.Len)
	}
	if stats.Hits != 2 {
		t.Errorf("expected Hits=2, got %d", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("expected Misses=1, got %d", stats.Misses)
	}
}

func TestCacheDistinctPixelSizeIsDistinctKey(t *testing.T) {
	c := New[int](10)

	a := ggtext.NewRasterKey(5, 16, 0x1)
	b := ggtext.NewRasterKey(5, 32, 0x1)

	c.Set(a, 1)
	c.Set(b, 2)

	va, _ := c.Get(a)
	vb, _ := c.Get(b)
	if va == vb {
		t.Errorf("expected distinct pixel sizes to produce distinct cache entries")
	}
	if c.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", c.Len())
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[int](1000)
	var wg sync.WaitGroup

	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				c.Set(key(uint16(n*50+j)), n*50+j)
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				c.Get(key(uint16(n*50 + j)))
			}
		}(i)
	}
	wg.Wait()

	if c.Len() == 0 {
		t.Error("expected non-empty cache after concurrent operations")
	}
}

func TestLRUList(t *testing.T) {
	l := &lruList{}

	n1 := l.PushFront(key(1))
	l.PushFront(key(2))
	n3 := l.PushFront(key(3))

	if l.Len() != 3 {
		t.Errorf("expected 3 elements, got %d", l.Len())
	}

	l.MoveToFront(n1)
	oldest, ok := l.RemoveOldest()
	if !ok || oldest != key(2) {
		t.Errorf("expected oldest to be key(2) after moving key(1) to front")
	}
	if l.Len() != 2 {
		t.Errorf("expected 2 elements after RemoveOldest, got %d", l.Len())
	}

	l.Remove(n3)
	if l.Len() != 1 {
		t.Errorf("expected 1 element after Remove, got %d", l.Len())
	}

	l.Clear()
	if l.Len() != 0 {
		t.Errorf("expected empty list after clear, got %d", l.Len())
	}
}

func TestLRUListEmptyOperations(t *testing.T) {
	l := &lruList{}

	if _, ok := l.RemoveOldest(); ok {
		t.Error("expected RemoveOldest to return false on empty list")
	}
	l.Remove(nil)
	l.MoveToFront(nil)
}
