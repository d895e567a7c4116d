package cfg

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/gocfg"
)

func TestBuilderValidation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocfg.grammar")
	defer teardown()
	//
	b := NewBuilder("G")
	if err := b.AddVariable('s'); !errors.Is(err, ErrInvalidSymbol) {
		t.Errorf("expected lowercase variable to be rejected, got %v", err)
	}
	if err := b.AddTerminal('A'); !errors.Is(err, ErrInvalidSymbol) {
		t.Errorf("expected uppercase terminal to be rejected, got %v", err)
	}
	if err := b.AddTerminal('?'); !errors.Is(err, ErrInvalidSymbol) {
		t.Errorf("expected '?' terminal to be rejected, got %v", err)
	}
	if err := b.AddVariable('S'); err != nil {
		t.Error(err)
	}
	if err := b.AddTerminal('a'); err != nil {
		t.Error(err)
	}
	if err := b.AddTerminal('+'); err != nil { // punctuation is allowed
		t.Error(err)
	}
	if err := b.AddProduction('A', []gocfg.Symbol{gocfg.Term('a')}); !errors.Is(err, ErrUnknownHead) {
		t.Errorf("expected undeclared head to be rejected, got %v", err)
	}
	if err := b.AddProduction('S', []gocfg.Symbol{gocfg.Term('b')}); !errors.Is(err, ErrUnknownBodySymbol) {
		t.Errorf("expected undeclared body terminal to be rejected, got %v", err)
	}
	if err := b.AddProduction('S', []gocfg.Symbol{gocfg.Var('B')}); !errors.Is(err, ErrUnknownBodySymbol) {
		t.Errorf("expected undeclared body variable to be rejected, got %v", err)
	}
	err := b.AddProduction('S', []gocfg.Symbol{gocfg.Eps(), gocfg.Term('a')})
	if !errors.Is(err, ErrInvalidSymbol) {
		t.Errorf("expected mixed epsilon body to be rejected, got %v", err)
	}
}

func TestBuilderRejectionLeavesModelIntact(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocfg.grammar")
	defer teardown()
	//
	b := NewBuilder("G")
	b.AddVariable('S')
	b.AddTerminal('a')
	b.AddProduction('S', []gocfg.Symbol{gocfg.Term('a')})
	if err := b.AddProduction('S', []gocfg.Symbol{gocfg.Term('x')}); err == nil {
		t.Error("expected rejection of undeclared body symbol")
	}
	b.SetStart('S')
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if g.ProductionCount() != 1 {
		t.Errorf("expected 1 production after one rejection, got %d", g.ProductionCount())
	}
}

func TestIncompleteGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocfg.grammar")
	defer teardown()
	//
	b := NewBuilder("G")
	b.AddVariable('S')
	b.AddTerminal('a')
	b.AddProduction('S', []gocfg.Symbol{gocfg.Term('a')})
	if b.IsComplete() {
		t.Error("grammar without start symbol reported complete")
	}
	if _, err := b.Grammar(); !errors.Is(err, ErrIncompleteGrammar) {
		t.Errorf("expected ErrIncompleteGrammar, got %v", err)
	}
	b.SetStart('S')
	if !b.IsComplete() {
		t.Error("complete grammar not reported complete")
	}
	if _, err := b.Grammar(); err != nil {
		t.Error(err)
	}
}

func TestStartMustBeDeclared(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocfg.grammar")
	defer teardown()
	//
	b := NewBuilder("G")
	b.AddVariable('S')
	if err := b.SetStart('T'); !errors.Is(err, ErrUnknownHead) {
		t.Errorf("expected undeclared start symbol to be rejected, got %v", err)
	}
	if err := b.SetStart('S'); err != nil {
		t.Error(err)
	}
}

func TestProductionOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocfg.grammar")
	defer teardown()
	//
	b := NewBuilder("G")
	b.AddVariable('S')
	b.AddTerminal('a')
	b.AddTerminal('b')
	b.AddProduction('S', []gocfg.Symbol{gocfg.Term('a'), gocfg.Var('S'), gocfg.Term('b')})
	b.AddProduction('S', []gocfg.Symbol{gocfg.Eps()})
	b.SetStart('S')
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	prods := g.ProductionsOf('S')
	if len(prods) != 2 {
		t.Fatalf("expected 2 productions for S, got %d", len(prods))
	}
	if prods[0].IsEpsilon() || !prods[1].IsEpsilon() {
		t.Error("production declaration order not preserved")
	}
	if prods[0].String() != "[S] ::= [a S b]" {
		t.Errorf("unexpected production string: %s", prods[0])
	}
}

func TestClassify(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocfg.grammar")
	defer teardown()
	//
	b := NewBuilder("G")
	b.AddVariable('S')
	b.AddTerminal('a')
	b.AddProduction('S', []gocfg.Symbol{gocfg.Term('a')})
	b.SetStart('S')
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if sym, ok := g.Classify('S'); !ok || !sym.IsVariable() {
		t.Errorf("expected S to classify as variable, got %v/%v", sym, ok)
	}
	if sym, ok := g.Classify('a'); !ok || !sym.IsTerminal() {
		t.Errorf("expected a to classify as terminal, got %v/%v", sym, ok)
	}
	if _, ok := g.Classify('x'); ok {
		t.Error("expected x to be undeclared")
	}
	if !g.InAlphabet("aaa") || g.InAlphabet("ab") {
		t.Error("alphabet check failed")
	}
}
