package derive

import (
	"errors"
	"fmt"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/gocfg"
	"github.com/npillmayer/gocfg/cfg"
)

// ErrBudgetExceeded is returned when a search gives up after exploring
// the configured maximum number of states. It is a safety cutoff, not a
// statement about the target string.
var ErrBudgetExceeded = errors.New("search budget exceeded")

// Searcher answers membership queries against a grammar. A searcher holds
// no per-query state: independent queries against the same grammar may run
// concurrently on separate goroutines.
type Searcher struct {
	g      *cfg.Grammar
	budget int // maximum explored states, 0 = unlimited
}

// Option configures a Searcher or Tracer.
type Option func(*Searcher)

// Budget limits the number of search states a single query may explore.
// Exceeding the budget aborts the query with ErrBudgetExceeded. The
// search is otherwise not guaranteed to terminate quickly, or for
// pathological grammars with unbounded non-cycling growth, at all.
func Budget(maxStates int) Option {
	return func(s *Searcher) {
		s.budget = maxStates
	}
}

// NewSearcher creates a searcher for a grammar.
func NewSearcher(g *cfg.Grammar, opts ...Option) *Searcher {
	s := &Searcher{g: g}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Derivable decides whether target is derivable from the grammar's start
// symbol under the given strategy. A false result with a nil error means
// the target is not in the language, which is a normal outcome and not
// an error.
func (s *Searcher) Derivable(target string, strat gocfg.Strategy) (bool, error) {
	q := s.newQuery(target, strat, false)
	return q.run()
}

// --- Search state ----------------------------------------------------------

// searchState identifies a point of the search for cycle detection: the
// rendered sentential form plus the number of target characters already
// matched. Two descents reaching the same pair are recognized as a repeat
// and the second one is pruned.
type searchState struct {
	Form    string
	Matched int
}

func (st searchState) key() string {
	return fmt.Sprintf("%x", structhash.Sha1(st, 1))
}

// --- Query -----------------------------------------------------------------

// A query owns all mutable state of one search invocation.
type query struct {
	g        *cfg.Grammar
	target   []rune
	strat    gocfg.Strategy
	visited  map[string]struct{} // memoized unproductive states
	budget   int
	explored int
	record   bool            // accumulate steps and edges?
	steps    []Step
	edges    *arraylist.List // of Edge, in expansion order
}

func (s *Searcher) newQuery(target string, strat gocfg.Strategy, record bool) *query {
	return &query{
		g:       s.g,
		target:  []rune(target),
		strat:   strat,
		visited: map[string]struct{}{},
		budget:  s.budget,
		record:  record,
		edges:   arraylist.New(),
	}
}

// run starts the search at the bare start symbol. Targets containing
// characters outside the terminal alphabet fail immediately, without
// exploring any search state.
func (q *query) run() (bool, error) {
	if !q.g.InAlphabet(string(q.target)) {
		tracer().Debugf("target %q contains characters outside the terminal alphabet", string(q.target))
		return false, nil
	}
	start := gocfg.SententialForm{q.g.Start()}
	if q.record {
		q.steps = append(q.steps, Step{Form: start})
	}
	ok, err := q.search(start)
	if err != nil {
		return false, err
	}
	return ok, nil
}

// matchedPrefix compares the leading terminal run of a form against the
// target. It returns the number of target characters confirmed, and false
// if the run disagrees with the target's prefix.
func (q *query) matchedPrefix(form gocfg.SententialForm) (int, bool) {
	matched := 0
	for _, sym := range form {
		if sym.IsVariable() {
			break
		}
		if matched >= len(q.target) || q.target[matched] != sym.Char {
			return matched, false
		}
		matched++
	}
	return matched, true
}

// search performs one depth-first descent. It returns true as soon as a
// rewriting of form derives the target; sibling alternatives of a failed
// substitution are tried in declaration order after reverting it.
func (q *query) search(form gocfg.SententialForm) (bool, error) {
	q.explored++
	if q.budget > 0 && q.explored > q.budget {
		return false, fmt.Errorf("after %d states: %w", q.explored-1, ErrBudgetExceeded)
	}
	matched, agrees := q.matchedPrefix(form)
	if !agrees {
		return false, nil
	}
	varAt := q.pickVariable(form)
	if varAt < 0 { // no variable left: the form is terminal-only
		return string(q.target) == form.Terminals(), nil
	}
	state := searchState{Form: form.String(), Matched: matched}
	if _, seen := q.visited[state.key()]; seen {
		tracer().Debugf("pruning repeated state (%s | %d)", state.Form, state.Matched)
		return false, nil
	}
	q.visited[state.key()] = struct{}{} // memoized failure: never retried
	v := form[varAt]
	for _, p := range q.g.ProductionsOf(v.Char) {
		next := substitute(form, varAt, p)
		if q.record {
			q.steps = append(q.steps, Step{Form: next, Expanded: v})
			q.edges.Add(edgeFor(p))
		}
		ok, err := q.search(next)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		if q.record { // revert: drop the step and edge of the failed attempt
			q.steps = q.steps[:len(q.steps)-1]
			q.edges.Remove(q.edges.Size() - 1)
		}
	}
	return false, nil
}

// pickVariable returns the index of the variable occurrence to expand
// next, or -1 if the form contains none. Leftmost scans left to right,
// rightmost scans right to left; the strategies share everything else.
func (q *query) pickVariable(form gocfg.SententialForm) int {
	if q.strat == gocfg.Rightmost {
		for i := len(form) - 1; i >= 0; i-- {
			if form[i].IsVariable() {
				return i
			}
		}
		return -1
	}
	for i, sym := range form {
		if sym.IsVariable() {
			return i
		}
	}
	return -1
}

// substitute replaces the variable at index i with the body of p,
// creating a new form. An epsilon body contributes no symbols.
func substitute(form gocfg.SententialForm, i int, p *cfg.Production) gocfg.SententialForm {
	next := make(gocfg.SententialForm, 0, len(form)+len(p.Body)-1)
	next = append(next, form[:i]...)
	if !p.IsEpsilon() {
		next = append(next, p.Body...)
	}
	next = append(next, form[i+1:]...)
	return next
}

func edgeFor(p *cfg.Production) Edge {
	return Edge{
		Head:     p.Head,
		Children: append([]gocfg.Symbol(nil), p.Body...),
	}
}
