// Package reader parses the line-oriented transaction-graph format of
// spec.md §6 from an io.Reader: `t # name` starts a transaction, `v idx
// label` declares a vertex, `e from to label` declares an edge. Next
// streams one transaction at a time so the miner never needs the whole
// corpus resident as text.
package reader
