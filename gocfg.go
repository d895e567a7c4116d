package gocfg

import (
	"fmt"
	"strings"
)

// --- Grammar symbols -------------------------------------------------------

// SymKind is a category type for grammar symbols. Every symbol is either a
// variable (non-terminal), a terminal, or the empty-string marker epsilon.
type SymKind int8

// Symbol categories. Epsilon is a distinguished marker, not a terminal: a
// production body of exactly one epsilon denotes the empty string.
// Unknown is the zero value; the zero Symbol is not a valid grammar symbol.
const (
	Unknown SymKind = iota
	Variable
	Terminal
	Epsilon
)

func (k SymKind) String() string {
	switch k {
	case Unknown:
		return "unknown"
	case Variable:
		return "variable"
	case Terminal:
		return "terminal"
	case Epsilon:
		return "epsilon"
	}
	return "<illegal>"
}

// Symbol is a tagged grammar symbol. Symbols are value types and are
// compared with ==. For epsilon, Char is 0.
//
// Grammar-authoring convention: variables are single uppercase letters,
// terminals single characters from a fixed alphabet (see IsValidTerminal).
// Constructors Var and Term do not validate; validation happens when a
// symbol is added to a grammar.
type Symbol struct {
	Kind SymKind
	Char rune
}

// Var creates a variable symbol.
func Var(ch rune) Symbol {
	return Symbol{Kind: Variable, Char: ch}
}

// Term creates a terminal symbol.
func Term(ch rune) Symbol {
	return Symbol{Kind: Terminal, Char: ch}
}

// Eps returns the epsilon marker symbol.
func Eps() Symbol {
	return Symbol{Kind: Epsilon}
}

// IsVariable returns true for variable (non-terminal) symbols.
func (sym Symbol) IsVariable() bool {
	return sym.Kind == Variable
}

// IsTerminal returns true for terminal symbols. Epsilon is not a terminal.
func (sym Symbol) IsTerminal() bool {
	return sym.Kind == Terminal
}

// IsEps returns true for the epsilon marker.
func (sym Symbol) IsEps() bool {
	return sym.Kind == Epsilon
}

func (sym Symbol) String() string {
	switch sym.Kind {
	case Epsilon:
		return "ε"
	case Unknown:
		return "?"
	}
	return string(sym.Char)
}

// --- Character classes -----------------------------------------------------

// terminalPunct is the set of punctuation characters allowed as terminals,
// besides lowercase letters and digits.
const terminalPunct = "+-*/(){}[]:;.,><=!"

// IsValidVariable checks the authoring convention for variables:
// a single uppercase letter.
func IsValidVariable(ch rune) bool {
	return ch >= 'A' && ch <= 'Z'
}

// IsValidTerminal checks the authoring convention for terminals: a single
// lowercase letter, digit, or one of a fixed set of punctuation characters.
func IsValidTerminal(ch rune) bool {
	if ch >= 'a' && ch <= 'z' || ch >= '0' && ch <= '9' {
		return true
	}
	return strings.ContainsRune(terminalPunct, ch)
}

// --- Sentential forms ------------------------------------------------------

// SententialForm is an ordered sequence of symbols, reachable from a
// grammar's start symbol by applying productions. A form never contains
// epsilon markers: substituting an epsilon body removes the variable.
type SententialForm []Symbol

// HasVariable returns true if the form still contains a variable.
func (form SententialForm) HasVariable() bool {
	for _, sym := range form {
		if sym.IsVariable() {
			return true
		}
	}
	return false
}

// Terminals concatenates the terminal symbols of the form, in order.
// For a form without variables this is the derived string.
func (form SententialForm) Terminals() string {
	var b strings.Builder
	for _, sym := range form {
		if sym.IsTerminal() {
			b.WriteRune(sym.Char)
		}
	}
	return b.String()
}

// String renders a form with spaces between symbols, the way derivation
// steps are usually printed. The empty form renders as "ε".
func (form SententialForm) String() string {
	if len(form) == 0 {
		return "ε"
	}
	var b strings.Builder
	for i, sym := range form {
		if i > 0 {
			b.WriteRune(' ')
		}
		b.WriteString(sym.String())
	}
	return b.String()
}

// --- Derivation strategies -------------------------------------------------

// Strategy selects which variable occurrence of a sentential form is
// expanded next: the leftmost one or the rightmost one. This is the only
// difference between the two derivation disciplines.
type Strategy int

// A derivation always expands the first (Leftmost) or the last (Rightmost)
// remaining variable of the current sentential form.
const (
	Leftmost  Strategy = 1
	Rightmost Strategy = -1
)

func (s Strategy) String() string {
	switch s {
	case Leftmost:
		return "leftmost"
	case Rightmost:
		return "rightmost"
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}
