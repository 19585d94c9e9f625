// Command tokenize is an interactive driver for the tokenizer engine. It
// scans its file arguments (or lines read from a REPL) with a small demo rule
// table and prints the resulting token stream, one token per line.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/DmitrySoshnikov/tokenizer"
)

const (
	historyFile = ".tokenize_history"
	prompt      = "lex> "
)

var (
	literalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	identStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	punctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	locStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func styleFor(typ string) lipgloss.Style {
	switch typ {
	case "NUMBER", "FLOAT", "STRING_START", "STRING_CHARS", "STRING_END":
		return literalStyle
	case "IDENT":
		return identStyle
	default:
		return punctStyle
	}
}

func emit(typ string) tokenizer.Handler {
	return func(*tokenizer.Tokenizer, string) tokenizer.Action {
		return tokenizer.Emit(typ)
	}
}

func skip(*tokenizer.Tokenizer, string) tokenizer.Action {
	return tokenizer.Skip()
}

// demoTable builds the sample rule table: numbers, identifiers, operators,
// line comments, and a STRING start condition for string interiors. In a
// generated parser this table comes from the grammar compiler instead.
func demoTable() *tokenizer.Table {
	rules := []tokenizer.Rule{
		tokenizer.MustRule(`\s+`, skip),
		tokenizer.MustRule(`//[^\n]*`, skip),
		tokenizer.MustRule(`\d+\.\d+`, emit("FLOAT")),
		tokenizer.MustRule(`\d+`, emit("NUMBER")),
		tokenizer.MustRule(`[A-Za-z_][A-Za-z_0-9]*`, emit("IDENT")),
		// Split ">>" the way C++ closes nested templates.
		tokenizer.MustRule(`>>`, func(*tokenizer.Tokenizer, string) tokenizer.Action {
			return tokenizer.EmitMany(">", ">")
		}),
		tokenizer.MustRule(`"`, func(t *tokenizer.Tokenizer, _ string) tokenizer.Action {
			t.Begin("STRING")
			return tokenizer.Emit("STRING_START")
		}),
		tokenizer.MustRule(`[-+*/=<>(){};,]`, func(_ *tokenizer.Tokenizer, text string) tokenizer.Action {
			return tokenizer.Emit(text)
		}),
		tokenizer.MustRule(`[^"\n]+`, emit("STRING_CHARS")),
		tokenizer.MustRule(`"`, func(t *tokenizer.Tokenizer, _ string) tokenizer.Action {
			t.PopState()
			return tokenizer.Emit("STRING_END")
		}),
	}
	return tokenizer.NewConditionalTable(rules, map[string][]int{
		tokenizer.InitialState: {0, 1, 2, 3, 4, 5, 6, 7},
		"STRING":               {8, 9},
	})
}

func dump(tk *tokenizer.Tokenizer, input string, w io.Writer) error {
	tk.Init(input)
	for {
		tok, err := tk.Next()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s %s %s\n",
			styleFor(tok.Type).Render(fmt.Sprintf("%-14s", tok.Type)),
			valueStyle.Render(fmt.Sprintf("%-20s", strconv.Quote(tok.Value))),
			locStyle.Render(fmt.Sprintf("%d:%d-%d:%d [%d, %d)",
				tok.StartLine, tok.StartColumn, tok.EndLine, tok.EndColumn,
				tok.StartOffset, tok.EndOffset)))
		if tok.Type == tokenizer.EOF {
			return nil
		}
	}
}

func repl(tk *tokenizer.Tokenizer) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
	}

	fmt.Println("tokenize REPL. Ctrl+C clears the line, Ctrl+D exits.")
	for {
		line, err := ln.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil {
			break
		}
		if line == "" {
			continue
		}
		ln.AppendHistory(line)
		if err := dump(tk, line, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, errStyle.Render(err.Error()))
		}
	}

	if histPath != "" {
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [file ...]\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "With no arguments, starts an interactive prompt.")
		flag.PrintDefaults()
	}
	flag.Parse()

	tk := tokenizer.New(demoTable())

	if flag.NArg() == 0 {
		repl(tk)
		return
	}

	for _, name := range flag.Args() {
		src, err := os.ReadFile(name)
		if err != nil {
			fmt.Fprintln(os.Stderr, errStyle.Render(err.Error()))
			os.Exit(1)
		}
		if err := dump(tk, string(src), os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, errStyle.Render(fmt.Sprintf("%s: %v", name, err)))
			os.Exit(1)
		}
	}
}
