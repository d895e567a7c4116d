package loader

import (
	"fmt"
	"strings"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine based scanner for production lines

// Token types of the rule scanner.
const (
	tokSymbol int = iota + 1 // a single-character grammar symbol
	tokArrow                 // ->
	tokPipe                  // |
	tokEpsilon               // the keyword 'epsilon'
)

// punctuation characters allowed as terminal symbols
const symbolPunct = "+-*/(){}[]:;.,><=!"

var (
	ruleLexer    *lexmachine.Lexer
	ruleLexerErr error
	compileOnce  sync.Once
)

// ruleScanner returns the shared lexer for production lines, compiling
// its DFA on first use.
func ruleScanner() (*lexmachine.Lexer, error) {
	compileOnce.Do(func() {
		lexer := lexmachine.NewLexer()
		lexer.Add([]byte(`( |\t)+`), skip)
		lexer.Add([]byte(`\-\>`), makeToken(tokArrow))
		lexer.Add([]byte(`\|`), makeToken(tokPipe))
		lexer.Add([]byte(`epsilon`), makeToken(tokEpsilon))
		lexer.Add([]byte(`[A-Z]`), makeToken(tokSymbol))
		lexer.Add([]byte(`[a-z0-9]`), makeToken(tokSymbol))
		for _, lit := range strings.Split(symbolPunct, "") {
			r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
			lexer.Add([]byte(r), makeToken(tokSymbol))
		}
		if err := lexer.Compile(); err != nil {
			tracer().Errorf("error compiling DFA: %v", err)
			ruleLexerErr = err
			return
		}
		ruleLexer = lexer
	})
	return ruleLexer, ruleLexerErr
}

// skip is an action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is an action which wraps a scanned match into a token.
func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// scanRule tokenizes one production line. Unconsumable input is a format
// error: production lines carry no free text.
func scanRule(line string) ([]*lexmachine.Token, error) {
	lexer, err := ruleScanner()
	if err != nil {
		return nil, err
	}
	s, err := lexer.Scanner([]byte(line))
	if err != nil {
		return nil, err
	}
	var tokens []*lexmachine.Token
	tok, err, eof := s.Next()
	for !eof {
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				return nil, fmt.Errorf("invalid production format at column %d: %q",
					ui.StartColumn, line)
			}
			return nil, err
		}
		if tok != nil {
			tokens = append(tokens, tok.(*lexmachine.Token))
		}
		tok, err, eof = s.Next()
	}
	return tokens, nil
}
