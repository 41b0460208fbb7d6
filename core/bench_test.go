// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/attrgraph/core"
)

// BenchmarkAddEdge measures adding distinct edges around a hub node.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph[int]()
	// Report memory allocations per operation
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.AddEdge(0, i+1)
	}
}

// BenchmarkAddEdge_Merge measures the update path on one existing edge.
func BenchmarkAddEdge_Merge(b *testing.B) {
	g := core.NewGraph[int]()
	g.AddEdge(0, 1)
	attrs := core.Attrs{"weight": 1}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.AddEdge(0, 1, attrs)
	}
}

// BenchmarkHasEdge measures constant-time edge membership checks.
func BenchmarkHasEdge(b *testing.B) {
	g := core.NewGraph[string]()
	for i := 0; i < 1000; i++ {
		g.AddEdge("Root", fmt.Sprintf("N%d", i))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.HasEdge("Root", "N500")
	}
}

// BenchmarkRemoveNode measures node removal with a fan of incident edges.
func BenchmarkRemoveNode(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := core.NewGraph[int]()
		for j := 1; j <= 100; j++ {
			g.AddEdge(0, j)
		}
		b.StartTimer()
		_ = g.RemoveNode(0)
	}
}

// BenchmarkNeighbors measures ordered neighbor listing.
func BenchmarkNeighbors(b *testing.B) {
	g := core.NewGraph[int]()
	for j := 1; j <= 100; j++ {
		g.AddEdge(0, j)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors(0)
	}
}
