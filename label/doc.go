// Package label defines the opaque, totally-ordered vertex/edge label
// tokens the gspan engine matches and orders patterns by, along with the
// Policy that fixes a run's label ordering, void-label handling, and
// directed-vs-bidirectional edge semantics (spec §3, §4.H).
//
// Labels are plain strings. A distinguished void token ("" by default,
// overridable via WithVoidToken) denotes "unlabeled" and sorts strictly
// below every concrete label under Policy.Less. Ordering itself is
// delegated to golang.org/x/text/collate so that label comparisons are
// deterministic independent of the host's locale or raw byte order
// (mirrors how tawesoft-golib leans on golang.org/x/text for text
// normalization rather than hand-rolled byte comparison).
package label
