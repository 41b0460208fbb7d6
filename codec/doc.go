// Package codec moves core.Graph values in and out of a node-link document,
// the interchange layout also used by other graph toolkits:
//
//	graph: {name: roads, ...}        # graph-level attributes
//	nodes: [{id: A, attrs: {...}}]   # node insertion order
//	links: [{source: A, target: B, attrs: {...}}]
//
// Two wire formats are supported, JSON (encoding/json) and YAML (gopkg.in/yaml.v3).
// Export/Import convert between *core.Graph[K] and Document[K]; Encode/Decode
// stream a document through an io.Writer / io.Reader in the chosen Format.
//
// Ordering: Export lists nodes and links in the graph's enumeration order, and
// Import replays them in document order. A round-trip keeps Nodes() order and
// the edge set; neighbor buckets are rebuilt in link order, so Neighbors()
// order can differ when edges were originally added out of node order.
//
// Numbers: both formats decode integral attribute numbers as int and the rest
// as float64, including inside nested maps and lists. A float64 with no
// fractional part (2.0) is written by encoding/json as 2 and so comes back as
// int. Attribute values are otherwise passed through untouched.
package codec
