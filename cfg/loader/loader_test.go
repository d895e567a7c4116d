package loader

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/gocfg"
	"github.com/npillmayer/gocfg/cfg"
)

const anbn = `
# the classic aⁿbⁿ language
VARIABLES
S
TERMINALS
a
b
PRODUCTIONS
S -> a S b | epsilon
START
S
`

func TestLoadAnBn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocfg.loader")
	defer teardown()
	//
	g, err := Load("anbn", strings.NewReader(anbn))
	if err != nil {
		t.Fatal(err)
	}
	if g.ProductionCount() != 2 {
		t.Errorf("expected 2 productions, got %d", g.ProductionCount())
	}
	if g.Start() != gocfg.Var('S') {
		t.Errorf("expected start symbol S, got %v", g.Start())
	}
	prods := g.ProductionsOf('S')
	if prods[0].String() != "[S] ::= [a S b]" {
		t.Errorf("unexpected first production: %s", prods[0])
	}
	if !prods[1].IsEpsilon() {
		t.Errorf("expected second production to be epsilon, got %s", prods[1])
	}
}

func TestLoadMultiSymbolGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocfg.loader")
	defer teardown()
	//
	input := `
VARIABLES
S
A
B
TERMINALS
a
b
PRODUCTIONS
S -> A B
A -> a A | epsilon
B -> b B | epsilon
START
S
`
	g, err := Load("G", strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if g.ProductionCount() != 5 {
		t.Errorf("expected 5 productions, got %d", g.ProductionCount())
	}
	if len(g.ProductionsOf('A')) != 2 {
		t.Errorf("expected 2 alternatives for A")
	}
}

func TestLoadReportsLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocfg.loader")
	defer teardown()
	//
	input := `VARIABLES
S
x
`
	_, err := Load("bad", strings.NewReader(input))
	if err == nil {
		t.Fatal("expected rejection of lowercase variable")
	}
	if !errors.Is(err, cfg.ErrInvalidSymbol) {
		t.Errorf("expected ErrInvalidSymbol, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("expected error to name line 3, got %q", err.Error())
	}
}

func TestLoadRecordOutsideSection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocfg.loader")
	defer teardown()
	//
	if _, err := Load("bad", strings.NewReader("S\n")); err == nil {
		t.Error("expected rejection of record before any section header")
	}
}

func TestLoadIncomplete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocfg.loader")
	defer teardown()
	//
	input := `VARIABLES
S
TERMINALS
a
`
	_, err := Load("partial", strings.NewReader(input))
	if !errors.Is(err, cfg.ErrIncompleteGrammar) {
		t.Errorf("expected ErrIncompleteGrammar, got %v", err)
	}
}

func TestParseRuleAlternatives(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocfg.loader")
	defer teardown()
	//
	b := cfg.NewBuilder("G")
	b.AddVariable('S')
	b.AddVariable('A')
	b.AddTerminal('a')
	b.AddTerminal('+')
	if err := ParseRule(b, "S -> A + A | a | epsilon"); err != nil {
		t.Fatal(err)
	}
	b.SetStart('S')
	b.AddProduction('A', []gocfg.Symbol{gocfg.Term('a')})
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	prods := g.ProductionsOf('S')
	if len(prods) != 3 {
		t.Fatalf("expected 3 alternatives, got %d", len(prods))
	}
	if prods[0].String() != "[S] ::= [A + A]" {
		t.Errorf("unexpected first alternative: %s", prods[0])
	}
	if !prods[2].IsEpsilon() {
		t.Errorf("expected third alternative to be epsilon, got %s", prods[2])
	}
}

func TestParseRuleEmptyAlternative(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocfg.loader")
	defer teardown()
	//
	b := cfg.NewBuilder("G")
	b.AddVariable('S')
	b.AddTerminal('a')
	// an empty alternative reads as epsilon, as in the original format
	if err := ParseRule(b, "S -> a |"); err != nil {
		t.Fatal(err)
	}
	b.SetStart('S')
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	prods := g.ProductionsOf('S')
	if len(prods) != 2 || !prods[1].IsEpsilon() {
		t.Errorf("expected epsilon for empty alternative, got %v", prods)
	}
}

func TestParseRuleFormatErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocfg.loader")
	defer teardown()
	//
	b := cfg.NewBuilder("G")
	b.AddVariable('S')
	b.AddTerminal('a')
	for _, line := range []string{"S a", "-> a", "S -> ä"} {
		if err := ParseRule(b, line); err == nil {
			t.Errorf("expected format error for %q", line)
		}
	}
	// undeclared body symbols are the builder's business
	if err := ParseRule(b, "S -> b"); !errors.Is(err, cfg.ErrUnknownBodySymbol) {
		t.Errorf("expected ErrUnknownBodySymbol, got %v", err)
	}
}

func TestRuleScanner(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocfg.loader")
	defer teardown()
	//
	tokens, err := scanRule("S -> a S b | epsilon")
	if err != nil {
		t.Fatal(err)
	}
	types := make([]int, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	expected := []int{tokSymbol, tokArrow, tokSymbol, tokSymbol, tokSymbol, tokPipe, tokEpsilon}
	if len(types) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(types), types)
	}
	for i := range expected {
		if types[i] != expected[i] {
			t.Errorf("token %d: expected type %d, got %d", i, expected[i], types[i])
		}
	}
}
