// Package httpapi exposes the mining engine over HTTP: a small gin
// control-plane service sitting in front of the library, the way
// flxj-graphlib's workflow.Service fronts its own engine. It is a
// supplemental transport surface (SPEC_FULL.md §3/§4 httpapi module),
// not part of the gSpan core itself.
package httpapi
