// Package subgraphfsm mines frequent k-node connected, edge-labeled
// subgraph patterns from a streaming sequence of edge insertions (and,
// in the fully dynamic setting, deletions).
//
// 🚀 What is subgraphfsm?
//
//	A small, dependency-light engine that brings together:
//
//	  • A streaming graph index — incremental edge insert/remove,
//	    O(1)/O(degree) neighborhood queries, no full-graph rescans.
//	  • A subgraph enumerator — given one edge event, returns exactly the
//	    k-node connected subgraphs it creates, destroys, or alters.
//	  • A canonical labeler — an isomorphism-invariant string key for
//	    each induced labeled subgraph, used to count pattern frequency.
//	  • A subgraph reservoir — a uniform sample of size M over every
//	    k-subgraph ever formed, maintained under Vitter's skip-sampling
//	    and Gemulla et al.'s Random Pairing deletion compensation.
//
// ✨ Why a dedicated mining core?
//
//   - Single-threaded by design  — one session, one mutator, no locks.
//   - Local work per event       — skip sampling avoids a coin flip per
//     candidate subgraph; enumeration never rescans the graph.
//   - Exact and sampled side by side — the same Session API drives
//     exhaustive counting or either reservoir variant.
//
// Under the hood, everything is organized under the core subpackages:
//
//	graph/      — streaming adjacency index (component A)
//	enumerate/  — k=3/k=4 closed-form enumerators + generic fallback (B)
//	canon/      — canonical subgraph labeler (C)
//	reservoir/  — uniform-sample container with vertex index (D)
//	skip/       — Vitter reservoir-sampling and Random-Pairing skips (E)
//	mining/     — Session: composes A-E into the six algorithm variants (F)
//
// and the surrounding driver layer:
//
//	metrics/           — per-event metric recording
//	accuracy/          — precision/recall/ARE and reservoir-size sizing
//	randomgraph/       — Erdos-Renyi synthetic stream generation
//	edgefile/          — edge-stream and pattern-count CSV I/O
//	internal/config/   — CLI configuration loading
//	cmd/subgraphfsm/   — the simulate/continuous-accuracy/accuracy/
//	                     random-graph/plot command-line driver
//
package subgraphfsm
