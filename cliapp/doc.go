// Package cliapp wires the mining engine to a command-line surface:
// positional minsup, -dir/-dfsc/-v flags, an optional YAML config file
// overlay, the `#directed`/`#undirected` banner, and process exit codes
// (spec.md §6, grounded on original_source/main.cpp's argv handling).
package cliapp
