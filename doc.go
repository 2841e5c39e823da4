// Package gspan (gspan-go) mines frequent connected subgraphs from a
// transaction database of labeled graphs.
//
// 🚀 What is gspan-go?
//
//	A focused implementation of the gSpan canonical-DFS-code algorithm:
//
//	  • Canonical pattern naming — every subgraph pattern has exactly one
//	    minimum DFS code, so the miner visits it exactly once
//	  • Right-most extension — candidate growths are generated from the
//	    embeddings of the pattern already found, not by re-scanning the
//	    corpus from scratch
//	  • Support pruning — branches below minsup are discarded before a
//	    single extension is attempted
//
// ✨ Why choose gspan-go?
//
//   - Deterministic   — adjacency and DFS-code order are both fixed, so
//     two runs over the same corpus always emit patterns in the same order
//   - Single-threaded — the engine is synchronous by design (§5); the only
//     side effect is the visitor callback
//   - Arena-scoped    — every embedding allocated during one Mine call is
//     released together when it returns
//
// Under the hood, everything is organized one package per concern:
//
//	graph/       — immutable labeled multigraph with adjacency queries
//	label/       — label ordering, void handling, directed/bidirectional policy
//	dfscode/     — EdgeCode/DFSCode and the canonical DFS-code order
//	embedding/   — arena-backed SBG chains and Projections
//	rmpath/      — right-most-path extension and seed enumeration
//	minimality/  — the canonicality test that prunes non-canonical codes
//	miner/       — the recursive mining driver
//	reader/      — line-oriented transaction-graph parser
//	writer/      — transaction-graph and DFS-code output modes
//	cliapp/      — CLI argument parsing and stdin/stdout plumbing
//	httpapi/     — optional HTTP transport over the same engine
//
// See cmd/gspan for the command-line entry point.
package gspan
