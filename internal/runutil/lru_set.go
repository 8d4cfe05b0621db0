// internal/runutil/lru_set.go
package runutil

import "container/list"

// LRUSet is a size-bounded set with O(1) hit/insert and eviction of the
// least recently seen key. Add returns true if the key was already present.
type LRUSet[K comparable] struct {
	cap int
	ll  *list.List
	m   map[K]*list.Element
}

// DefaultSeenCap bounds the job IDs remembered for duplicate warnings.
const DefaultSeenCap = 200_000

func NewLRUSet[K comparable](capacity int) *LRUSet[K] {
	if capacity <= 0 {
		capacity = DefaultSeenCap
	}
	return &LRUSet[K]{cap: capacity, ll: list.New(), m: make(map[K]*list.Element)}
}

// Add inserts k; returns true if it was already present.
func (s *LRUSet[K]) Add(k K) bool {
	if e, ok := s.m[k]; ok {
		s.ll.MoveToFront(e)
		return true
	}
	s.m[k] = s.ll.PushFront(k)
	if s.ll.Len() > s.cap {
		if tail := s.ll.Back(); tail != nil {
			s.ll.Remove(tail)
			delete(s.m, tail.Value.(K))
		}
	}
	return false
}

// Len is the number of keys currently held.
func (s *LRUSet[K]) Len() int { return s.ll.Len() }
