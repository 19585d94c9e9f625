package tokenizer_test

import (
	"fmt"

	"github.com/DmitrySoshnikov/tokenizer"
)

// Idiomatic usage: a small calculator token table.
func ExampleTokenizer() {
	rules := []tokenizer.Rule{
		tokenizer.MustRule(`\s+`, func(*tokenizer.Tokenizer, string) tokenizer.Action {
			return tokenizer.Skip()
		}),
		tokenizer.MustRule(`\d+`, func(*tokenizer.Tokenizer, string) tokenizer.Action {
			return tokenizer.Emit("NUMBER")
		}),
		tokenizer.MustRule(`[+*()]`, func(_ *tokenizer.Tokenizer, text string) tokenizer.Action {
			return tokenizer.Emit(text)
		}),
	}

	tk := tokenizer.New(tokenizer.NewTable(rules))
	tk.Init("12 + 34")

	for {
		tok, err := tk.Next()
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(tok)
		if tok.Type == tokenizer.EOF {
			return
		}
	}

	// Output:
	// NUMBER("12") [0, 2)
	// +("+") [3, 4)
	// NUMBER("34") [5, 7)
	// $("") [7, 7)
}

// Start conditions restrict the active rule subset, here for lexing string
// interiors.
func ExampleTokenizer_startConditions() {
	rules := []tokenizer.Rule{
		tokenizer.MustRule(`\s+`, func(*tokenizer.Tokenizer, string) tokenizer.Action {
			return tokenizer.Skip()
		}),
		tokenizer.MustRule(`[a-z]+`, func(*tokenizer.Tokenizer, string) tokenizer.Action {
			return tokenizer.Emit("WORD")
		}),
		tokenizer.MustRule(`"`, func(tk *tokenizer.Tokenizer, _ string) tokenizer.Action {
			tk.Begin("STRING")
			return tokenizer.Skip()
		}),
		tokenizer.MustRule(`[^"]+`, func(*tokenizer.Tokenizer, string) tokenizer.Action {
			return tokenizer.Emit("STRING")
		}),
		tokenizer.MustRule(`"`, func(tk *tokenizer.Tokenizer, _ string) tokenizer.Action {
			tk.PopState()
			return tokenizer.Skip()
		}),
	}

	table := tokenizer.NewConditionalTable(rules, map[string][]int{
		tokenizer.InitialState: {0, 1, 2},
		"STRING":               {3, 4},
	})

	tk := tokenizer.New(table)
	tk.Init(`hello "wor ld"`)

	for {
		tok, err := tk.Next()
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(tok)
		if tok.Type == tokenizer.EOF {
			return
		}
	}

	// Output:
	// WORD("hello") [0, 5)
	// STRING("wor ld") [7, 13)
	// $("") [14, 14)
}
