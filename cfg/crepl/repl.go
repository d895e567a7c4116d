package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/gocfg"
	"github.com/npillmayer/gocfg/cfg"
	"github.com/npillmayer/gocfg/cfg/derive"
	"github.com/npillmayer/gocfg/cfg/loader"
	"github.com/npillmayer/gocfg/cfg/ptree"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// tracer traces with key 'gocfg.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("gocfg.grammar")
}

// main() starts an interactive CLI ("C.REPL"), where users may load or
// enter a context-free grammar and then query it: derive strings, print
// leftmost/rightmost derivation chains, display the parse tree on the
// terminal, and export derivations and trees to Graphviz Dot files.
//
// Please refer to packages "cfg", "cfg/derive" and "cfg/ptree".
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	gfile := flag.String("grammar", "", "Grammar file to load at startup")
	budget := flag.Int("budget", 100000, "Max search states per query (0 = unlimited)")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	pterm.Info.Println("Welcome to C.REPL") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	intp := &Intp{
		builder: cfg.NewBuilder("console"),
		section: loader.NoSection,
		budget:  *budget,
	}
	if *gfile != "" {
		g, err := loader.LoadFile(*gfile)
		if err != nil {
			tracer().Errorf("%v", err)
			os.Exit(2)
		}
		intp.use(g)
	}
	repl, err := readline.New("gocfg> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp.repl = repl
	//
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl    *readline.Instance
	builder *cfg.Builder    // accumulates console grammar entry
	section loader.Section  // current entry section
	grammar *cfg.Grammar    // active grammar, nil until loaded/finalized
	tr      *derive.Tracer  // tracer for the active grammar
	budget  int
}

func (intp *Intp) use(g *cfg.Grammar) {
	intp.grammar = g
	intp.tr = derive.NewTracer(g, derive.Budget(intp.budget))
	pterm.Info.Println(fmt.Sprintf("Grammar %s with %d productions is active", g.Name,
		g.ProductionCount()))
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Execute(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Execute interprets a single command line.
func (intp *Intp) Execute(line string) (bool, error) {
	args := strings.SplitN(line, " ", 2)
	cmd, rest := args[0], ""
	if len(args) > 1 {
		rest = strings.TrimSpace(args[1])
	}
	switch cmd {
	case "quit":
		return true, nil
	case "help":
		help()
		return false, nil
	case "load":
		g, err := loader.LoadFile(rest)
		if err != nil {
			return false, err
		}
		intp.use(g)
		return false, nil
	case "VARIABLES", "TERMINALS", "PRODUCTIONS", "START":
		// same section headers as the file format, entered interactively
		intp.section, _ = sectionFor(cmd)
		return false, nil
	case "done":
		g, err := intp.builder.Grammar()
		if err != nil {
			return false, err
		}
		intp.use(g)
		return false, nil
	case "show":
		return false, intp.show()
	case "derive":
		return false, intp.derive(rest, false)
	case "tree":
		return false, intp.derive(rest, true)
	case "dot":
		return false, intp.export(rest)
	}
	// anything else is a grammar record for the current entry section
	if err := loader.ApplyLine(intp.builder, intp.section, line); err != nil {
		return false, err
	}
	return false, nil
}

func sectionFor(header string) (loader.Section, bool) {
	switch header {
	case "VARIABLES":
		return loader.Variables, true
	case "TERMINALS":
		return loader.Terminals, true
	case "PRODUCTIONS":
		return loader.Productions, true
	case "START":
		return loader.Start, true
	}
	return loader.NoSection, false
}

func help() {
	pterm.Println(`Commands:
  load <file>             load a grammar file (sectioned format)
  VARIABLES | TERMINALS | PRODUCTIONS | START
                          switch console grammar-entry section;
                          following lines are records for that section
  done                    finalize the console-entered grammar
  show                    display the active grammar
  derive <l|r> <string>   print the leftmost/rightmost derivation
  tree <l|r> <string>     derive and display the parse tree
  dot <l|r> <string>      export derivation and tree as Graphviz files
  quit                    leave (or <ctrl>D)`)
}

func (intp *Intp) show() error {
	if intp.grammar == nil {
		return fmt.Errorf("no grammar active; use 'load' or enter one and 'done'")
	}
	g := intp.grammar
	var vars, terms []string
	g.EachVariable(func(v gocfg.Symbol) interface{} {
		vars = append(vars, v.String())
		return nil
	})
	g.EachTerminal(func(t gocfg.Symbol) interface{} {
		terms = append(terms, t.String())
		return nil
	})
	pterm.Println("Variables:  " + strings.Join(vars, " "))
	pterm.Println("Terminals:  " + strings.Join(terms, " "))
	pterm.Println("Productions:")
	for i := 0; i < g.ProductionCount(); i++ {
		pterm.Println("  " + g.Production(i).String())
	}
	pterm.Println("Start:      " + g.Start().String())
	return nil
}

// derive runs a traced derivation query and prints the step chain. With
// showTree set, it additionally renders the parse tree on the terminal.
func (intp *Intp) derive(rest string, showTree bool) error {
	d, err := intp.query(rest)
	if err != nil || d == nil {
		return err
	}
	pterm.Info.Println(fmt.Sprintf("%s derivation of %q:", strings.Title(d.Strategy.String()),
		d.Target))
	for _, step := range d.Steps {
		pterm.Println("=> " + step.Form.String())
	}
	if !showTree {
		return nil
	}
	root, err := ptree.Build(d.Edges(), intp.grammar.Start(), d.Strategy)
	if err != nil {
		return err
	}
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(leveled(root))).Render()
	return nil
}

// export writes <strategy>_derivation.dot and parse_tree.dot to the
// current directory.
func (intp *Intp) export(rest string) error {
	d, err := intp.query(rest)
	if err != nil || d == nil {
		return err
	}
	dfile := d.Strategy.String() + "_derivation.dot"
	derive.Derivation2GraphViz(d, dfile)
	root, err := ptree.Build(d.Edges(), intp.grammar.Start(), d.Strategy)
	if err != nil {
		return err
	}
	ptree.Tree2GraphViz(root, "parse_tree.dot")
	pterm.Info.Println(fmt.Sprintf("Exported %s and parse_tree.dot", dfile))
	return nil
}

// query parses "<l|r> <target>" and runs the trace. A nil derivation with
// nil error means the target is not in the language (already reported).
func (intp *Intp) query(rest string) (*derive.Derivation, error) {
	if intp.grammar == nil {
		return nil, fmt.Errorf("no grammar active; use 'load' or enter one and 'done'")
	}
	args := strings.SplitN(rest, " ", 2)
	strat := gocfg.Leftmost
	switch args[0] {
	case "l", "left", "leftmost":
	case "r", "right", "rightmost":
		strat = gocfg.Rightmost
	default:
		return nil, fmt.Errorf("expected strategy l|r, got %q", args[0])
	}
	target := "" // an empty target string queries the empty word
	if len(args) > 1 {
		target = strings.TrimSpace(args[1])
	}
	d, err := intp.tr.Trace(target, strat)
	if err != nil {
		return nil, err
	}
	if d == nil {
		pterm.Info.Println(fmt.Sprintf("%q is not in the language of this grammar", target))
		return nil, nil
	}
	return d, nil
}

// leveled flattens a parse tree into a pterm leveled list for terminal
// display.
func leveled(root *ptree.Node) pterm.LeveledList {
	ll := pterm.LeveledList{}
	root.Walk(&levelLister{ll: &ll})
	return ll
}

type levelLister struct {
	ll *pterm.LeveledList
}

func (l *levelLister) Enter(node *ptree.Node, level int) bool {
	*l.ll = append(*l.ll, pterm.LeveledListItem{
		Level: level,
		Text:  node.Symbol.String(),
	})
	return true
}

func (l *levelLister) Exit(node *ptree.Node, level int) {}
