// File: sync.go
// Role: SyncGraph, an external-mutex wrapper that serializes access to a Graph.
// Concurrency:
//   - Mutations take the write lock; queries take the read lock.
//   - Map-returning queries hand out copies, so nothing live escapes the lock.

package core

import (
	"iter"
	"sync"
)

// SyncGraph guards a Graph with a sync.RWMutex so it can be shared between
// goroutines. Each method is atomic with respect to the others; use Do to
// make a batch of calls atomic.
type SyncGraph[K comparable] struct {
	mu sync.RWMutex
	g  *Graph[K]
}

// NewSyncGraph creates a SyncGraph over a fresh Graph built from opts.
func NewSyncGraph[K comparable](opts ...GraphOption[K]) *SyncGraph[K] {
	return &SyncGraph[K]{g: NewGraph(opts...)}
}

// Do runs fn with exclusive access to the underlying Graph.
// fn must not retain g or any live map obtained from it after returning.
func (s *SyncGraph[K]) Do(fn func(g *Graph[K])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.g)
}

// View runs fn with shared read access to the underlying Graph.
// fn must not mutate g.
func (s *SyncGraph[K]) View(fn func(g *Graph[K])) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.g)
}

// AddNode is Graph.AddNode under the write lock.
func (s *SyncGraph[K]) AddNode(id K, attrs ...Attrs) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.g.AddNode(id, attrs...)
}

// RemoveNode is Graph.RemoveNode under the write lock.
func (s *SyncGraph[K]) RemoveNode(id K) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.RemoveNode(id)
}

// AddEdge is Graph.AddEdge under the write lock.
func (s *SyncGraph[K]) AddEdge(u, v K, attrs ...Attrs) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.g.AddEdge(u, v, attrs...)
}

// RemoveEdge is Graph.RemoveEdge under the write lock.
func (s *SyncGraph[K]) RemoveEdge(u, v K) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.RemoveEdge(u, v)
}

// SetName is Graph.SetName under the write lock.
func (s *SyncGraph[K]) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.g.SetName(name)
}

// HasNode is Graph.HasNode under the read lock.
func (s *SyncGraph[K]) HasNode(id K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.HasNode(id)
}

// Contains is Graph.Contains under the read lock.
func (s *SyncGraph[K]) Contains(x any) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Contains(x)
}

// HasEdge is Graph.HasEdge under the read lock.
func (s *SyncGraph[K]) HasEdge(u, v K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.HasEdge(u, v)
}

// NodeCount is Graph.NodeCount under the read lock.
func (s *SyncGraph[K]) NodeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.NodeCount()
}

// EdgeCount is Graph.EdgeCount under the read lock.
func (s *SyncGraph[K]) EdgeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.EdgeCount()
}

// Nodes is Graph.Nodes under the read lock.
func (s *SyncGraph[K]) Nodes() []K {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Nodes()
}

// All is Graph.All; the snapshot is taken under the read lock.
func (s *SyncGraph[K]) All() iter.Seq[K] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.All()
}

// Neighbors is Graph.Neighbors under the read lock.
func (s *SyncGraph[K]) Neighbors(id K) ([]K, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Neighbors(id)
}

// NeighborsOf returns a copy of Graph.NeighborsOf taken under the read lock;
// the edge attribute maps are copied too.
func (s *SyncGraph[K]) NeighborsOf(id K) (map[K]Attrs, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	nbrs, err := s.g.NeighborsOf(id)
	if err != nil {
		return nil, err
	}
	for w, a := range nbrs {
		nbrs[w] = a.clone()
	}

	return nbrs, nil
}

// NodeAttrs returns a copy of the node's attribute map.
func (s *SyncGraph[K]) NodeAttrs(id K) (Attrs, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, err := s.g.NodeAttrs(id)
	if err != nil {
		return nil, err
	}

	return a.clone(), nil
}

// EdgeAttrs returns a copy of the edge's attribute map.
func (s *SyncGraph[K]) EdgeAttrs(u, v K) (Attrs, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, err := s.g.EdgeAttrs(u, v)
	if err != nil {
		return nil, err
	}

	return a.clone(), nil
}

// Name is Graph.Name under the read lock.
func (s *SyncGraph[K]) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Name()
}

// String is Graph.String under the read lock.
func (s *SyncGraph[K]) String() string { return s.Name() }

// Snapshot returns a deep copy of the guarded Graph, free to use without locking.
func (s *SyncGraph[K]) Snapshot() *Graph[K] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Clone()
}
