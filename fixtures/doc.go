// Package fixtures builds small, deterministic transaction Graphs used
// across the engine's test suite (triangles, cycles, paths, stars) in
// the style of the teacher's builder package: one constructor per
// topology, stable vertex/edge emission order, sentinel errors on bad
// parameters, never a panic.
package fixtures
