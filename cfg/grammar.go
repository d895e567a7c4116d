package cfg

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/gocfg"
)

// Errors signalled by the grammar builder. Callers test with errors.Is;
// the returned errors carry the offending symbol in their message.
var (
	// ErrInvalidSymbol flags a variable or terminal failing its
	// character-class rule.
	ErrInvalidSymbol = errors.New("invalid symbol")
	// ErrUnknownHead flags a production head which has not been declared
	// as a variable.
	ErrUnknownHead = errors.New("unknown production head")
	// ErrUnknownBodySymbol flags a production body symbol which is
	// neither a declared variable, a declared terminal, nor epsilon.
	ErrUnknownBodySymbol = errors.New("unknown symbol in production body")
	// ErrIncompleteGrammar flags finalization of a grammar missing
	// variables, terminals, productions or a start symbol.
	ErrIncompleteGrammar = errors.New("incomplete grammar")
)

// --- Productions -----------------------------------------------------------

// A Production is the right-hand side of a grammar rule, owned by exactly
// one grammar under a given head variable. A body of exactly one epsilon
// marker denotes the empty string.
type Production struct {
	Head   gocfg.Symbol   // left-hand side variable
	Body   []gocfg.Symbol // ordered right-hand side
	Serial int            // declaration ordinal within the grammar
}

// IsEpsilon returns true for the empty-string production.
func (p *Production) IsEpsilon() bool {
	return len(p.Body) == 1 && p.Body[0].IsEps()
}

func (p *Production) String() string {
	var b bytes.Buffer
	b.WriteString("[")
	b.WriteString(p.Head.String())
	b.WriteString("] ::= [")
	for i, sym := range p.Body {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(sym.String())
	}
	b.WriteString("]")
	return b.String()
}

// --- Grammar ---------------------------------------------------------------

// Grammar is the validated in-memory representation of a context-free
// grammar. Construct one with a Builder; a Grammar handed out by a builder
// is read-only.
type Grammar struct {
	Name        string                        // a grammar has a name, for documentation only
	variables   *treeset.Set                  // declared variables, sorted
	terminals   *treeset.Set                  // declared terminals, sorted
	productions map[rune][]*Production        // per head variable, in declaration order
	prodSerial  []*Production                 // all productions, by serial
	start       gocfg.Symbol                  // designated start variable
}

func newGrammar(name string) *Grammar {
	return &Grammar{
		Name:        name,
		variables:   treeset.NewWith(utils.RuneComparator),
		terminals:   treeset.NewWith(utils.RuneComparator),
		productions: map[rune][]*Production{},
	}
}

// IsVariable returns true if ch has been declared as a variable.
func (g *Grammar) IsVariable(ch rune) bool {
	return g.variables.Contains(ch)
}

// IsTerminal returns true if ch has been declared as a terminal.
func (g *Grammar) IsTerminal(ch rune) bool {
	return g.terminals.Contains(ch)
}

// Classify maps a character onto the declared symbol it denotes. Variables
// take precedence, but the character classes are disjoint anyway. The
// second return value is false for undeclared characters.
func (g *Grammar) Classify(ch rune) (gocfg.Symbol, bool) {
	if g.IsVariable(ch) {
		return gocfg.Var(ch), true
	}
	if g.IsTerminal(ch) {
		return gocfg.Term(ch), true
	}
	return gocfg.Symbol{}, false
}

// InAlphabet checks that every character of s is a declared terminal.
// The derivation engine rejects targets outside the alphabet without
// starting a search.
func (g *Grammar) InAlphabet(s string) bool {
	for _, ch := range s {
		if !g.IsTerminal(ch) {
			return false
		}
	}
	return true
}

// Start returns the start variable.
func (g *Grammar) Start() gocfg.Symbol {
	return g.start
}

// ProductionsOf returns the productions for a head variable, in
// declaration order. Clients must not modify the returned slice.
func (g *Grammar) ProductionsOf(head rune) []*Production {
	return g.productions[head]
}

// Production returns a production by its declaration ordinal.
func (g *Grammar) Production(serial int) *Production {
	if serial < 0 || serial >= len(g.prodSerial) {
		return nil
	}
	return g.prodSerial[serial]
}

// ProductionCount returns the total number of productions.
func (g *Grammar) ProductionCount() int {
	return len(g.prodSerial)
}

// EachVariable iterates over all declared variables, in sorted order.
func (g *Grammar) EachVariable(mapper func(v gocfg.Symbol) interface{}) {
	it := g.variables.Iterator()
	for it.Next() {
		mapper(gocfg.Var(it.Value().(rune)))
	}
}

// EachTerminal iterates over all declared terminals, in sorted order.
func (g *Grammar) EachTerminal(mapper func(t gocfg.Symbol) interface{}) {
	it := g.terminals.Iterator()
	for it.Next() {
		mapper(gocfg.Term(it.Value().(rune)))
	}
}

// Dump is a debugging helper, printing the grammar to the tracer at
// debug level.
func (g *Grammar) Dump() {
	tracer().Debugf("grammar %s:", g.Name)
	tracer().Debugf("start symbol = %s", g.start)
	for _, p := range g.prodSerial {
		tracer().Debugf("%3d: %s", p.Serial, p.String())
	}
}

// --- Builder ---------------------------------------------------------------

// A Builder constructs a Grammar incrementally. Every mutator validates
// its argument and, on rejection, leaves the model unchanged. The builder
// performs no I/O; loaders (package loader) own all text-format decisions
// and feed the builder record by record.
type Builder struct {
	g         *Grammar
	finalized bool
}

// NewBuilder creates a grammar builder for a named grammar.
func NewBuilder(name string) *Builder {
	return &Builder{g: newGrammar(name)}
}

// The grammar is read-only once handed out.
var errFinalized = errors.New("grammar already finalized")

// AddVariable declares a variable. Variables are single uppercase letters;
// anything else is rejected with ErrInvalidSymbol. Re-declaring a variable
// is a no-op.
func (b *Builder) AddVariable(ch rune) error {
	if b.finalized {
		return errFinalized
	}
	if !gocfg.IsValidVariable(ch) {
		return fmt.Errorf("variable %q: %w", ch, ErrInvalidSymbol)
	}
	b.g.variables.Add(ch)
	if _, ok := b.g.productions[ch]; !ok {
		b.g.productions[ch] = nil
	}
	return nil
}

// AddTerminal declares a terminal. Terminals are single lowercase letters,
// digits, or punctuation from a fixed set; anything else is rejected with
// ErrInvalidSymbol.
func (b *Builder) AddTerminal(ch rune) error {
	if b.finalized {
		return errFinalized
	}
	if !gocfg.IsValidTerminal(ch) {
		return fmt.Errorf("terminal %q: %w", ch, ErrInvalidSymbol)
	}
	b.g.terminals.Add(ch)
	return nil
}

// AddProduction adds a production body for a head variable. The head must
// have been declared, and every body symbol must be a declared variable, a
// declared terminal, or the epsilon marker. An epsilon body must consist
// of the marker alone. Production order is preserved: it defines the
// search priority of the derivation engine.
func (b *Builder) AddProduction(head rune, body []gocfg.Symbol) error {
	if b.finalized {
		return errFinalized
	}
	if !b.g.IsVariable(head) {
		return fmt.Errorf("head %q: %w", head, ErrUnknownHead)
	}
	if len(body) == 0 {
		return fmt.Errorf("empty body for %q: %w", head, ErrUnknownBodySymbol)
	}
	for _, sym := range body {
		switch sym.Kind {
		case gocfg.Epsilon:
			if len(body) > 1 {
				return fmt.Errorf("epsilon mixed with other symbols in body of %q: %w",
					head, ErrInvalidSymbol)
			}
		case gocfg.Variable:
			if !b.g.IsVariable(sym.Char) {
				return fmt.Errorf("body symbol %q: %w", sym.Char, ErrUnknownBodySymbol)
			}
		case gocfg.Terminal:
			if !b.g.IsTerminal(sym.Char) {
				return fmt.Errorf("body symbol %q: %w", sym.Char, ErrUnknownBodySymbol)
			}
		default:
			return fmt.Errorf("body symbol of kind %d: %w", sym.Kind, ErrInvalidSymbol)
		}
	}
	p := &Production{
		Head:   gocfg.Var(head),
		Body:   append([]gocfg.Symbol(nil), body...), // callers may reuse their slice
		Serial: len(b.g.prodSerial),
	}
	b.g.productions[head] = append(b.g.productions[head], p)
	b.g.prodSerial = append(b.g.prodSerial, p)
	tracer().Debugf("add production %s", p)
	return nil
}

// SetStart designates the start variable, which must have been declared.
func (b *Builder) SetStart(ch rune) error {
	if b.finalized {
		return errFinalized
	}
	if !gocfg.IsValidVariable(ch) {
		return fmt.Errorf("start symbol %q: %w", ch, ErrInvalidSymbol)
	}
	if !b.g.IsVariable(ch) {
		return fmt.Errorf("start symbol %q: %w", ch, ErrUnknownHead)
	}
	b.g.start = gocfg.Var(ch)
	return nil
}

// IsComplete returns true iff variables, terminals, productions and the
// start symbol are all present.
func (b *Builder) IsComplete() bool {
	return b.g.variables.Size() > 0 &&
		b.g.terminals.Size() > 0 &&
		len(b.g.prodSerial) > 0 &&
		b.g.start.IsVariable()
}

// Grammar finalizes the build and hands out the grammar. An incomplete
// grammar is rejected as a whole with ErrIncompleteGrammar: no partially
// loaded model is ever exposed to the derivation engine. The builder must
// not be used afterwards.
func (b *Builder) Grammar() (*Grammar, error) {
	if !b.IsComplete() {
		return nil, fmt.Errorf("grammar %s: %w", b.g.Name, ErrIncompleteGrammar)
	}
	b.finalized = true
	return b.g, nil
}
