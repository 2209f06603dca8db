// Package memory implements the outbound repositories on process memory.
// Each repository owns its collection; values are copied in and out so no
// caller ever holds a reference into the store.
package memory

import (
	"slices"
	"sync"
)

type entry[T any] struct {
	seq   uint64
	value T
}

// collection is a mutex-guarded map that remembers insertion order.
// Overwriting a key keeps its original position.
type collection[T any] struct {
	mu    sync.RWMutex
	next  uint64
	items map[string]entry[T]
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{items: make(map[string]entry[T])}
}

func (c *collection[T]) get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.items[id]
	return e.value, ok
}

// insert stores v under id unless the id is taken.
func (c *collection[T]) insert(id string, v T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; ok {
		return false
	}
	c.next++
	c.items[id] = entry[T]{seq: c.next, value: v}
	return true
}

// put stores v under id, replacing any previous value.
func (c *collection[T]) put(id string, v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.items[id]
	if !ok {
		c.next++
		e.seq = c.next
	}
	e.value = v
	c.items[id] = e
}

// modify applies fn to the value under id and stores the result.
func (c *collection[T]) modify(id string, fn func(T) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	e.value = fn(e.value)
	c.items[id] = e
	return e.value, true
}

func (c *collection[T]) remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	return true
}

// removeWhere deletes every value matching match and returns the count.
func (c *collection[T]) removeWhere(match func(T) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for id, e := range c.items {
		if match(e.value) {
			delete(c.items, id)
			n++
		}
	}
	return n
}

// filter returns matching values in insertion order. A nil match returns
// everything.
func (c *collection[T]) filter(match func(T) bool) []T {
	c.mu.RLock()
	matched := make([]entry[T], 0, len(c.items))
	for _, e := range c.items {
		if match == nil || match(e.value) {
			matched = append(matched, e)
		}
	}
	c.mu.RUnlock()

	slices.SortFunc(matched, func(a, b entry[T]) int {
		switch {
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		}
		return 0
	})
	out := make([]T, len(matched))
	for i, e := range matched {
		out[i] = e.value
	}
	return out
}

func (c *collection[T]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
