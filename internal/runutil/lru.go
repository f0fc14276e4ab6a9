// internal/runutil/lru.go
package runutil

import "container/list"

// LRU is a size-bounded map with O(1) get/put and least-recently-used
// eviction. It is not safe for concurrent use; callers hold their own lock.
type LRU[K comparable, V any] struct {
	cap int
	ll  *list.List
	m   map[K]*list.Element
}

type lruNode[K comparable, V any] struct {
	k K
	v V
}

// NewLRU returns an LRU holding at most capacity entries (default 256).
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity <= 0 {
		capacity = 256
	}
	return &LRU[K, V]{cap: capacity, ll: list.New(), m: make(map[K]*list.Element, capacity)}
}

// Get returns the value for k and marks it most recently used.
func (c *LRU[K, V]) Get(k K) (V, bool) {
	if e, ok := c.m[k]; ok {
		c.ll.MoveToFront(e)
		return e.Value.(*lruNode[K, V]).v, true
	}
	var zero V
	return zero, false
}

// Put inserts or replaces k. It reports whether an entry was evicted.
func (c *LRU[K, V]) Put(k K, v V) bool {
	if e, ok := c.m[k]; ok {
		e.Value.(*lruNode[K, V]).v = v
		c.ll.MoveToFront(e)
		return false
	}
	c.m[k] = c.ll.PushFront(&lruNode[K, V]{k: k, v: v})
	if c.ll.Len() <= c.cap {
		return false
	}
	tail := c.ll.Back()
	c.ll.Remove(tail)
	delete(c.m, tail.Value.(*lruNode[K, V]).k)
	return true
}

func (c *LRU[K, V]) Len() int { return c.ll.Len() }
