// Package core_test verifies that SyncGraph serializes concurrent use of a Graph.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/attrgraph/core"
)

// TestSyncGraph_ConcurrentAddEdge ensures concurrent AddEdge calls all land.
func TestSyncGraph_ConcurrentAddEdge(t *testing.T) {
	s := core.NewSyncGraph[string]()
	var wg sync.WaitGroup
	wg.Add(NConcurrentAdds)

	for i := 0; i < NConcurrentAdds; i++ {
		go func(id int) {
			defer wg.Done()
			s.AddEdge(NodeX, fmt.Sprintf("V%d", id), core.Attrs{KeyWeight: id})
		}(i)
	}
	wg.Wait()

	nbrs, err := s.Neighbors(NodeX)
	require.NoError(t, err)
	require.Len(t, nbrs, NConcurrentAdds)
	require.Equal(t, NConcurrentAdds, s.EdgeCount())
	require.Equal(t, NConcurrentAdds+1, s.NodeCount())
}

// TestSyncGraph_ConcurrentAddRemove mixes mutations and reads; it must be race-free.
func TestSyncGraph_ConcurrentAddRemove(t *testing.T) {
	s := core.NewSyncGraph(core.WithNodes(0))
	var wg sync.WaitGroup
	wg.Add(3 * NRounds)

	for i := 0; i < NRounds; i++ {
		go func(id int) {
			defer wg.Done()
			s.AddEdge(0, id+1)
		}(i)
		go func(id int) {
			defer wg.Done()
			_ = s.RemoveEdge(0, id+1) // may run before the add; NotFound is fine
		}(i)
		go func() {
			defer wg.Done()
			if nbrs, err := s.NeighborsOf(0); err == nil {
				for _, attrs := range nbrs {
					attrs["seen"] = true // copies, so no race with the graph
				}
			}
		}()
	}
	wg.Wait()

	s.View(func(g *core.Graph[int]) {
		MustSymmetric(t, g)
	})
}

// TestSyncGraph_DoAndSnapshot validates batch mutation and lock-free snapshots.
func TestSyncGraph_DoAndSnapshot(t *testing.T) {
	s := core.NewSyncGraph[int]()
	s.SetName(NameDemo)

	var wg sync.WaitGroup
	wg.Add(NReaders)
	for i := 0; i < NReaders; i++ {
		go func(id int) {
			defer wg.Done()
			s.Do(func(g *core.Graph[int]) {
				g.AddNode(id)
				g.AddEdge(id, id)
			})
		}(i)
	}
	wg.Wait()

	snap := s.Snapshot()
	require.Equal(t, NReaders, snap.NodeCount())
	require.Equal(t, NReaders, snap.Stats().SelfLoopCount)
	require.Equal(t, NameDemo, s.String())

	snap.Clear()
	require.Equal(t, NReaders, s.NodeCount(), "snapshot is independent")
	require.True(t, s.HasNode(0))
	require.True(t, s.Contains(0))
	require.True(t, s.HasEdge(1, 1))

	attrs, err := s.NodeAttrs(0)
	require.NoError(t, err)
	attrs[KeyColor] = "red"
	fresh, err := s.NodeAttrs(0)
	require.NoError(t, err)
	require.NotContains(t, fresh, KeyColor)

	_, err = s.EdgeAttrs(0, 1)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
	require.NoError(t, s.RemoveNode(0))
	require.Len(t, s.Nodes(), NReaders-1)

	count := 0
	for range s.All() {
		count++
	}
	require.Equal(t, NReaders-1, count)
	require.Equal(t, NameDemo, s.Name())
}

// TestSyncGraph_ParallelReaders runs bounded readers next to a writer and
// fails on the first inconsistent read.
func TestSyncGraph_ParallelReaders(t *testing.T) {
	s := core.NewSyncGraph(core.WithEdges(core.Edge(Node1, Node2), core.Edge(Node2, Node3)))

	var eg errgroup.Group
	eg.SetLimit(NReaders / 5)
	eg.Go(func() error {
		for i := 0; i < NRounds; i++ {
			s.AddEdge(Node4, Node5, core.Attrs{KeyWeight: i})
		}

		return nil
	})
	for i := 0; i < NReaders; i++ {
		eg.Go(func() error {
			nbrs, err := s.Neighbors(Node2)
			if err != nil {
				return err
			}
			if len(nbrs) != 2 {
				return fmt.Errorf("Neighbors(%d) = %v, want 2 entries", Node2, nbrs)
			}
			if s.HasEdge(Node4, Node5) {
				if _, err = s.EdgeAttrs(Node5, Node4); err != nil {
					return err
				}
			}

			return nil
		})
	}
	require.NoError(t, eg.Wait())

	attrs, err := s.EdgeAttrs(Node4, Node5)
	require.NoError(t, err)
	require.Equal(t, NRounds-1, attrs[KeyWeight])
}
