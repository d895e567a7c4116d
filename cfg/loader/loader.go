package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/npillmayer/gocfg"
	"github.com/npillmayer/gocfg/cfg"
)

// Section identifies the part of the grammar format a record belongs to.
type Section int

// Sections of the grammar text format, in their customary order. Records
// before the first section header are illegal.
const (
	NoSection Section = iota
	Variables
	Terminals
	Productions
	Start
)

func sectionFor(line string) (Section, bool) {
	switch line {
	case "VARIABLES":
		return Variables, true
	case "TERMINALS":
		return Terminals, true
	case "PRODUCTIONS":
		return Productions, true
	case "START":
		return Start, true
	}
	return NoSection, false
}

// LoadFile reads a grammar from a file in the sectioned text format.
// The grammar name is the filename.
func LoadFile(filename string) (*cfg.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(filename, f)
}

// Load reads a grammar in the sectioned text format. It feeds every
// record to a validating builder and stops at the first offending line,
// reporting its line number. An incomplete grammar is rejected as a
// whole: Load never returns a partially loaded model.
func Load(name string, r io.Reader) (*cfg.Grammar, error) {
	b := cfg.NewBuilder(name)
	lines := bufio.NewScanner(r)
	sec := NoSection
	lineno := 0
	for lines.Scan() {
		lineno++
		line := trimmed(lines.Text())
		if line == "" {
			continue
		}
		if s, isHeader := sectionFor(line); isHeader {
			sec = s
			continue
		}
		if err := ApplyLine(b, sec, line); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
	}
	if err := lines.Err(); err != nil {
		return nil, err
	}
	g, err := b.Grammar()
	if err != nil {
		return nil, err
	}
	tracer().Infof("loaded grammar %s: %d productions", name, g.ProductionCount())
	return g, nil
}

// trimmed strips surrounding whitespace and treats '#' lines as blank.
func trimmed(line string) string {
	i, j := 0, len(line)
	for i < j && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	for j > i && (line[j-1] == ' ' || line[j-1] == '\t' || line[j-1] == '\r') {
		j--
	}
	line = line[i:j]
	if len(line) > 0 && line[0] == '#' {
		return ""
	}
	return line
}

// ApplyLine feeds a single record to a grammar builder. Interactive
// frontends use this to build a grammar from console input, one line at a
// time; a rejected record leaves the builder unchanged, so the caller may
// report it and carry on.
func ApplyLine(b *cfg.Builder, sec Section, line string) error {
	switch sec {
	case Variables:
		ch, ok := singleRune(line)
		if !ok {
			return fmt.Errorf("variable %q: %w", line, cfg.ErrInvalidSymbol)
		}
		return b.AddVariable(ch)
	case Terminals:
		ch, ok := singleRune(line)
		if !ok {
			return fmt.Errorf("terminal %q: %w", line, cfg.ErrInvalidSymbol)
		}
		return b.AddTerminal(ch)
	case Productions:
		return ParseRule(b, line)
	case Start:
		ch, ok := singleRune(line)
		if !ok {
			return fmt.Errorf("start symbol %q: %w", line, cfg.ErrInvalidSymbol)
		}
		return b.SetStart(ch)
	}
	return fmt.Errorf("record %q outside of any section", line)
}

func singleRune(s string) (rune, bool) {
	ch, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		return 0, false
	}
	return ch, true
}

// ParseRule parses one production line of the form
//
//	A -> B C | epsilon
//
// and adds a production per alternative to the builder. Uppercase symbols
// are read as variables, everything else as terminals; the builder rejects
// undeclared ones. An empty alternative is read as epsilon.
func ParseRule(b *cfg.Builder, line string) error {
	tokens, err := scanRule(line)
	if err != nil {
		return err
	}
	if len(tokens) < 2 || tokens[0].Type != tokSymbol || tokens[1].Type != tokArrow {
		return fmt.Errorf("invalid production format: %q", line)
	}
	head, ok := singleRune(string(tokens[0].Lexeme))
	if !ok {
		return fmt.Errorf("invalid production head: %q", line)
	}
	body := []gocfg.Symbol{}
	flush := func() error {
		if len(body) == 0 { // empty alternative reads as epsilon
			body = append(body, gocfg.Eps())
		}
		err := b.AddProduction(head, body)
		body = body[:0]
		return err
	}
	for _, tok := range tokens[2:] {
		switch tok.Type {
		case tokPipe:
			if err := flush(); err != nil {
				return err
			}
		case tokEpsilon:
			body = append(body, gocfg.Eps())
		case tokSymbol:
			ch, _ := singleRune(string(tok.Lexeme))
			if gocfg.IsValidVariable(ch) {
				body = append(body, gocfg.Var(ch))
			} else {
				body = append(body, gocfg.Term(ch))
			}
		default:
			return fmt.Errorf("invalid production format: %q", line)
		}
	}
	return flush()
}
