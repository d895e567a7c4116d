package derive

import (
	"github.com/npillmayer/gocfg"
	"github.com/npillmayer/gocfg/cfg"
)

// Step is an immutable snapshot of a sentential form at one point of a
// derivation. Expanded identifies the variable whose substitution produced
// this form; it is the zero Symbol for the initial step.
type Step struct {
	Form     gocfg.SententialForm
	Expanded gocfg.Symbol
}

func (step Step) String() string {
	return step.Form.String()
}

// Edge records one substitution for parse-tree construction: the expanded
// head variable and the symbols produced for it, in left-to-right order.
// An epsilon body is recorded as a single epsilon child.
type Edge struct {
	Head     gocfg.Symbol
	Children []gocfg.Symbol
}

// Derivation is the result of a successful trace: the ordered sequence of
// sentential forms, from the bare start symbol to the target string, plus
// the expansion edges in the order the strategy visited them.
type Derivation struct {
	Target   string
	Strategy gocfg.Strategy
	Steps    []Step
	edges    []Edge
}

// Edges returns the recorded expansion edges. Each edge corresponds to
// exactly one substitution; package ptree consumes them.
func (d *Derivation) Edges() []Edge {
	return d.edges
}

// Tracer wraps the derivation search to additionally record the sequence
// of sentential forms and the expansion edges of a successful search.
// Like a Searcher, a Tracer holds no per-query state.
type Tracer struct {
	searcher *Searcher
}

// NewTracer creates a tracer for a grammar.
func NewTracer(g *cfg.Grammar, opts ...Option) *Tracer {
	return &Tracer{searcher: NewSearcher(g, opts...)}
}

// Trace searches for target under the given strategy and records the
// derivation found. It returns nil if the target is not derivable: no
// partial derivation is ever surfaced for a failed search. Recording does
// not influence the search, so Trace finds a derivation exactly when
// Searcher.Derivable answers true on the same query.
func (t *Tracer) Trace(target string, strat gocfg.Strategy) (*Derivation, error) {
	q := t.searcher.newQuery(target, strat, true)
	ok, err := q.run()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	tracer().Infof("%s derivation of %q in %d steps", strat, target, len(q.steps))
	d := &Derivation{
		Target:   target,
		Strategy: strat,
		Steps:    q.steps,
		edges:    make([]Edge, q.edges.Size()),
	}
	for i := 0; i < q.edges.Size(); i++ {
		e, _ := q.edges.Get(i)
		d.edges[i] = e.(Edge)
	}
	return d, nil
}
