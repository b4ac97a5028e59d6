// Package enumerate implements the subgraph enumerator (component B):
// given an edge event (u, v) on a graph.Index, it returns exactly the
// k-node vertex sets whose induced connected subgraph is created or
// altered by that event, without rescanning the graph.
//
// Two entry points exist per supported k:
//
//	NewSubgraphsK3 / AllSubgraphsK3   — closed-form k=3
//	NewSubgraphsK4 / AllSubgraphsK4   — seven-subcase k=4
//	NewSubgraphsGeneric / AllSubgraphsGeneric — arbitrary k fallback
//
// "New" returns only the vertex sets newly connected by the edge
// (additions); "All" partitions the candidates containing both u and
// v into additions and replacements (sets already connected that
// merely gain an edge). Both flavors operate on the graph as it
// stands at call time — callers commit the edge to the Index only
// after consulting the enumerator: the k=4 case must see the graph
// *without* the event edge whether that edge is being inserted or
// removed, because
// "subgraphs newly connected by adding edge (u,v)" and "subgraphs that
// would disconnect if edge (u,v) were removed" are the same query
// against the same edge-free graph.
//
// Vertex sets are represented as graph.NodeIDSet (map[int]struct{}):
// only IDs are known during enumeration; the mining session resolves
// full induced subgraphs (with labels) afterward via
// graph.Index.InducedEdges.
package enumerate
