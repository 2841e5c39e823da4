// Package rmpath implements the right-most extension generator of
// spec.md §4.E: given a DFSCode and its Projection (or, for the empty
// code, the whole transaction corpus), it enumerates every legal
// one-edge growth and groups the resulting embeddings by the candidate
// EdgeCode they share.
package rmpath
