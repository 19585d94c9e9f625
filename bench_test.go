package tokenizer

import (
	"strings"
	"testing"
)

func BenchmarkNext(b *testing.B) {
	rules := []Rule{
		MustRule(`\s+`, func(*Tokenizer, string) Action { return Skip() }),
		MustRule(`\d+`, func(*Tokenizer, string) Action { return Emit("NUMBER") }),
		MustRule(`[a-z][a-z0-9]*`, func(*Tokenizer, string) Action { return Emit("IDENT") }),
		MustRule(`[+*/=()-]`, func(_ *Tokenizer, text string) Action { return Emit(text) }),
	}
	tk := New(NewTable(rules))
	input := strings.Repeat("alpha = 42 + beta1 * (1337 - gamma)\n", 64)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tk.Init(input)
		for {
			tok, err := tk.Next()
			if err != nil {
				b.Fatal(err)
			}
			if tok.Type == EOF {
				break
			}
		}
	}
}
