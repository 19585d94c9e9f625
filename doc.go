// Copyright 2016-2021 Dmitry Soshnikov <dmitry.soshnikov@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

/*
Package tokenizer implements a generic, table-driven lexical scanner designed
to be embedded in a generated parser.

The engine is driven entirely by an externally supplied rule table: an ordered
list of (pattern, handler) pairs, optionally partitioned into lex-style start
conditions. The package's job is the runtime matching loop plus the auxiliary
services a generated parser needs: a lexer-state stack, a token lookahead
queue and exact source-position tracking. How the table is produced (grammar
parsing, rule prioritization, handler code generation) is the table compiler's
business, not this package's.

Matching

Patterns are regular expressions matched anchored at the cursor, against the
remaining input only. Rules are tried strictly in table order and the first
match wins; match length does not participate in the tie-break. This mirrors
the semantics of hand-ordered lexical grammars, where an earlier keyword rule
deliberately shadows a later identifier rule.

A handler receives the matched lexeme and decides what the match produces:

	Skip()               the lexeme is consumed, no token is produced
	Emit("NUMBER")       one token
	EmitMany("A", "B")   several tokens sharing the single lexeme's span

For EmitMany, the first type is returned immediately and the rest are queued;
subsequent calls to Next drain the queue before any new matching occurs.

Start conditions

A handler may call PushState/Begin and PopState on the tokenizer to switch
the active rule subset, enabling context-sensitive sub-lexing such as string
or comment interiors:

	tokenizer.MustRule(`"`, func(t *tokenizer.Tokenizer, _ string) tokenizer.Action {
		t.Begin("STRING")
		return tokenizer.Skip()
	})

The state stack always has InitialState at the bottom; PopState never removes
it.

Positions

Every token carries byte offsets as well as line/column spans. Line numbers
are 1-based and columns are 0-based from the start of their line, the
convention used by the parser runtimes this engine was built for. Lexemes
spanning several lines advance the line tracker correctly: the tracker scans
each matched lexeme for newlines once, before the cursor moves.

Errors

When no active rule matches and input remains, Next returns an
*UnexpectedTokenError rendering the offending line with a caret under the
failing column. The caret offset is computed from the display width of the
preceding text, so it stays aligned on lines containing East Asian wide
characters. Malformed tables (a handler pushing a state with no registered
rules) are reported lazily via ErrUnknownState rather than treated as an
empty rule set.
*/
package tokenizer
