package label

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Policy fixes, for one mining run, the total order over Labels, which
// token denotes "void", whether void vertices are admitted at all, and
// whether the run's edges are directed or bidirectional (§4.H).
//
// A Policy's settings are immutable once built by New. Less and Compare
// share the collator's internal buffers, so a Policy is not safe for
// concurrent label comparisons from several goroutines.
type Policy struct {
	voidToken   Label
	allowVoid   bool
	directed    bool
	collator    *collate.Collator
}

// PolicyOption configures a Policy under construction via New.
type PolicyOption func(*policyConfig)

type policyConfig struct {
	voidToken Label
	allowVoid bool
	directed  bool
	lang      language.Tag
}

// WithVoidToken overrides the token that denotes "unlabeled / void".
// The default is the empty string.
func WithVoidToken(tok Label) PolicyOption {
	return func(c *policyConfig) { c.voidToken = tok }
}

// WithVoidAllowed permits void-labeled vertices to survive graph
// construction instead of causing the transaction to be rejected (§4.H).
func WithVoidAllowed() PolicyOption {
	return func(c *policyConfig) { c.allowVoid = true }
}

// WithDirected selects directed (out-edges only) adjacency semantics for
// the run. The default is bidirectional (spec.md §6 `-dir` flag).
func WithDirected() PolicyOption {
	return func(c *policyConfig) { c.directed = true }
}

// WithCollationLanguage selects the BCP 47 language tag used to order
// concrete labels. The default is language.Und (root collation), which
// gives a stable, locale-independent order.
func WithCollationLanguage(tag language.Tag) PolicyOption {
	return func(c *policyConfig) { c.lang = tag }
}

// New builds a Policy from the given options. By default the run is
// bidirectional, void labels are rejected at construction, and the void
// token is the empty string.
func New(opts ...PolicyOption) *Policy {
	cfg := policyConfig{
		voidToken: Label(""),
		allowVoid: false,
		directed:  false,
		lang:      language.Und,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Policy{
		voidToken: cfg.voidToken,
		allowVoid: cfg.allowVoid,
		directed:  cfg.directed,
		collator:  collate.New(cfg.lang),
	}
}

// IsVoid reports whether l is this Policy's void token.
func (p *Policy) IsVoid(l Label) bool {
	return l == p.voidToken
}

// VoidAllowed reports whether void-labeled vertices may survive graph
// construction under this Policy.
func (p *Policy) VoidAllowed() bool {
	return p.allowVoid
}

// Directed reports whether the run treats edges as directed (out-edges
// only) rather than bidirectional.
func (p *Policy) Directed() bool {
	return p.directed
}

// VoidToken returns the token this Policy treats as void.
func (p *Policy) VoidToken() Label {
	return p.voidToken
}

// Less implements the total order on Labels required by the DFS-code
// order (§4.B): void sorts strictly below every concrete label; among
// concrete labels, order is delegated to the collator so comparisons are
// deterministic regardless of raw byte order.
func (p *Policy) Less(a, b Label) bool {
	av, bv := p.IsVoid(a), p.IsVoid(b)
	if av && !bv {
		return true
	}
	if !av && bv {
		return false
	}
	if av && bv {
		return false // equal (both void)
	}

	return p.collator.CompareString(string(a), string(b)) < 0
}

// Compare returns -1, 0, or +1 as a is less than, equal to, or greater
// than b under Less (and void-aware equality).
func (p *Policy) Compare(a, b Label) int {
	if a == b {
		return 0
	}
	if p.Less(a, b) {
		return -1
	}

	return 1
}
