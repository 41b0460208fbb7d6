// Package builder provides deterministic, functional-options constructors for
// common topologies on top of core.Graph[string]. It is used for fixtures,
// examples and tests that need a known graph shape with predictable ids.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): new graph + constructors in order.
//     – Apply(g, bopts, cons...):          run constructors on an existing graph.
//   - Topologies (Constructor factories):
//     – Path(n), Cycle(n), Star(n), Wheel(n)
//     – Complete(n), CompleteBipartite(n1, n2), Grid(rows, cols)
//     – RandomSparse(n, p)
//   - Node-ID schemes (IDFn):
//     – DefaultIDFn:      decimal strings ("0","1",…).
//     – SymbolIDFn:       single letters ("A","B",…).
//     – ExcelColumnIDFn:  spreadsheet columns ("A","Z","AA",…).
//     – PrefixIDFn(p):    p+"0", p+"1", …
//     – UUIDIDFn(ns):     version-5 UUIDs of the index under ns.
//   - Attribute generators:
//     – EdgeAttrFn, ConstantAttrs, UniformWeight; WithNodeAttrs for nodes.
//
// Guarantees:
//
//   - Idempotent: re-running a constructor on g merges into existing nodes and
//     edges (core.Graph has no parallel edges), so nothing is duplicated.
//   - Fast-fail on meaningless option values via panics in option constructors.
//   - Sentinel runtime errors (ErrTooFewNodes, ErrInvalidProbability,
//     ErrNeedRandSource, ErrIDSpaceExhausted, ErrConstructFailed) wrapped with
//     method context. Ids are resolved before the first mutation.
package builder
