package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache is a bounded LRU keyed cache. It replaces the unbounded ambient
// map pattern: a capacity is fixed at construction and the least recently
// used entry is evicted when it fills. Handlers receive it injected, never
// as package state.
type Cache[K comparable, V any] struct {
	lru *lru.Cache[K, V]
}

func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	inner, err := lru.New[K, V](capacity)
	if err != nil {
		return nil, err
	}
	return &Cache[K, V]{lru: inner}, nil
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	return c.lru.Get(key)
}

func (c *Cache[K, V]) Add(key K, value V) {
	c.lru.Add(key, value)
}

func (c *Cache[K, V]) Len() int {
	return c.lru.Len()
}
