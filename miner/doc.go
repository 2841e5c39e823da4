// Package miner implements the top-level recursive mining driver of
// spec.md §4.G: seed enumeration, right-most-extension growth, support
// pruning, the minimality test, and emission to a caller-supplied
// Visitor, all under one run-scoped embedding.Arena.
package miner
