package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func TestTTL_FreshThenExpired(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewTTL[string, int](3*time.Second, clock)

	c.Set("position", 42)
	clock.Advance(2 * time.Second)

	v, age, ok := c.Get("position")
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, 2*time.Second, age)

	clock.Advance(time.Second)
	_, _, ok = c.Get("position")
	assert.False(t, ok, "entry at exactly ttl is expired")

	v, age, ok = c.Stale("position")
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, 3*time.Second, age)
}

func TestTTL_MissingKey(t *testing.T) {
	c := NewTTL[string, string](time.Minute, nil)

	_, _, ok := c.Get("nope")
	assert.False(t, ok)
	_, _, ok = c.Stale("nope")
	assert.False(t, ok)
}

func TestTTL_SetResetsAge(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	c := NewTTL[string, int](time.Minute, clock)

	c.Set("k", 1)
	clock.Advance(90 * time.Second)
	c.Set("k", 2)

	v, age, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Zero(t, age)
}

func TestTTL_Clear(t *testing.T) {
	c := NewTTL[int, int](time.Minute, nil)
	c.Set(1, 1)
	c.Set(2, 2)
	assert.Equal(t, 2, c.Len())

	c.Clear()

	assert.Zero(t, c.Len())
	_, _, ok := c.Stale(1)
	assert.False(t, ok)
}

func TestTTL_ConcurrentAccess(t *testing.T) {
	c := NewTTL[int, int](time.Minute, nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Set(i%5, i)
			c.Get(i % 5)
			if i%10 == 0 {
				c.Clear()
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 5)
}
