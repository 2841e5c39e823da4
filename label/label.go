package label

// Label is an opaque, comparable token drawn from a totally-ordered set
// (VL for vertices, EL for edges). The zero value is not special by
// itself — whether it denotes "void" depends on the active Policy's
// configured void token (§3).
type Label string
