// Package mining composes the graph index, enumerator, canonical
// labeler, subgraph reservoir and skip samplers into the six mining
// algorithm variants: every combination of
//
//	Mode:   Exact | NaiveReservoir | OptimizedReservoir
//	Stream: Incremental | Dynamic
//
// is handled by one Session type rather than a class per combination.
// Mode and Stream are sealed enums (unexported underlying int,
// exported constants only) so a caller can never construct an invalid
// combination by hand; Session.AddEdge/RemoveEdge dispatch on the pair
// at call time.
//
// A Session is a single-threaded, synchronous resource: one RNG
// (*rand.Rand), one graph.Index, one pattern counter, and — for the
// two reservoir modes — one reservoir.Reservoir plus whichever skip
// samplers that mode's stream variant needs. Multiple independent
// Sessions may run concurrently from independent goroutines, but a
// single Session must never be driven from more than one goroutine.
package mining
