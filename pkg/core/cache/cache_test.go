package cache

import (
	"errors"
	"testing"
	"time"
)

func TestGetSet(t *testing.T) {
	c := New[int](Config{MaxItems: 4})

	if _, ok := c.Get("a"); ok {
		t.Fatal("empty cache should miss")
	}
	c.Set("a", 1)
	v, ok := c.Get("a")
	if !ok || v != 1 {
		t.Errorf("Get(a) = %v, %v; want 1, true", v, ok)
	}

	c.Set("a", 2)
	if v, _ := c.Get("a"); v != 2 {
		t.Errorf("overwrite: got %v, want 2", v)
	}
	if c.Size() != 1 {
		t.Errorf("Size() = %d, want 1", c.Size())
	}

	stats := c.Stats()
	if stats.Hits != 2 || stats.Misses != 1 {
		t.Errorf("Stats() = %+v, want 2 hits and 1 miss", stats)
	}
}

func TestLRUEviction(t *testing.T) {
	c := New[string](Config{MaxItems: 2})
	c.Set("a", "A")
	c.Set("b", "B")
	c.Get("a") // a is now most recently used
	c.Set("c", "C")

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("a should still be cached")
	}
	if c.Stats().Evictions != 1 {
		t.Errorf("Evictions = %d, want 1", c.Stats().Evictions)
	}
}

func TestExpiration(t *testing.T) {
	c := New[int](Config{MaxItems: 2, TTL: time.Minute})
	now := time.Date(2025, 10, 19, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Set("a", 1)
	now = now.Add(30 * time.Second)
	if _, ok := c.Get("a"); !ok {
		t.Error("entry should be valid before its TTL")
	}
	now = now.Add(time.Minute)
	if _, ok := c.Get("a"); ok {
		t.Error("entry should expire after its TTL")
	}
	if c.Size() != 0 {
		t.Errorf("expired entry not removed, Size() = %d", c.Size())
	}
}

func TestGetOrSet(t *testing.T) {
	c := New[int](DefaultConfig())
	calls := 0
	fn := func() (int, error) {
		calls++
		return 42, nil
	}

	v, hit, err := c.GetOrSet("k", fn)
	if err != nil || hit || v != 42 {
		t.Fatalf("first GetOrSet = %v, %v, %v", v, hit, err)
	}
	v, hit, _ = c.GetOrSet("k", fn)
	if !hit || v != 42 || calls != 1 {
		t.Errorf("second GetOrSet = %v, hit=%v, calls=%d", v, hit, calls)
	}

	boom := errors.New("boom")
	if _, _, err := c.GetOrSet("bad", func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Errorf("error not propagated: %v", err)
	}
	if _, ok := c.Get("bad"); ok {
		t.Error("failed computation must not be cached")
	}
}

func TestKeyAndClear(t *testing.T) {
	if Key("ab", "c") == Key("a", "bc") {
		t.Error("Key must separate its parts")
	}
	if len(Key("x")) != 64 {
		t.Errorf("Key length = %d, want 64", len(Key("x")))
	}

	c := New[int](Config{MaxItems: 3})
	c.Set("a", 1)
	c.Set("b", 2)
	c.Delete("a")
	if c.Size() != 1 {
		t.Errorf("Size() after Delete = %d, want 1", c.Size())
	}
	c.Clear()
	if c.Size() != 0 {
		t.Errorf("Size() after Clear = %d, want 0", c.Size())
	}
}
