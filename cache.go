package regexpp

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheKey identifies one parse result: the exact source window plus every
// option that affects the grammar.
type CacheKey struct {
	Source      string
	Literal     bool
	Strict      bool
	ECMAVersion int
	Unicode     bool
	UnicodeSets bool
}

// Cache is the optional parse-cache collaborator. Implementations must be
// safe for concurrent use and must hand out mutation-isolated trees: a tree
// returned from Get shares no nodes with the stored one.
type Cache interface {
	Get(key CacheKey) (Node, bool)
	Put(key CacheKey, ast Node)
}

// LRUCache is a bounded parse cache backed by hashicorp's LRU, which guards
// its table with an internal mutex. Trees are deep-copied on both Put and
// Get, so neither the cache nor any caller can observe another's mutations.
type LRUCache struct {
	c *lru.Cache[CacheKey, Node]
}

// NewLRUCache returns an LRUCache holding up to size parse results.
func NewLRUCache(size int) (*LRUCache, error) {
	c, err := lru.New[CacheKey, Node](size)
	if err != nil {
		return nil, err
	}
	return &LRUCache{c: c}, nil
}

func (l *LRUCache) Get(key CacheKey) (Node, bool) {
	n, ok := l.c.Get(key)
	if !ok {
		return nil, false
	}
	return CloneNode(n), true
}

func (l *LRUCache) Put(key CacheKey, ast Node) {
	l.c.Add(key, CloneNode(ast))
}

// Len reports the number of cached parse results.
func (l *LRUCache) Len() int { return l.c.Len() }

var _ Cache = (*LRUCache)(nil)
