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

package tokenizer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// InitialState is the lexer state at the bottom of the state stack. It is
// active whenever no handler has pushed another state and can never be
// popped.
//
const InitialState = "INITIAL"

// queue is a FIFO of pending token types from a multi-token rule match.
//
type queue struct {
	items []string
	head  int
	tail  int
	count int
}

func (q *queue) push(typ string) {
	if q.head == q.tail && q.count > 0 {
		items := make([]string, len(q.items)*2)
		copy(items, q.items[q.head:])
		copy(items[len(q.items)-q.head:], q.items[:q.head])
		q.head = 0
		q.tail = len(q.items)
		q.items = items
	}
	q.items[q.tail] = typ
	q.tail = (q.tail + 1) % len(q.items)
	q.count++
}

// pop pops the first item from the queue. Callers must check that q.count > 0
// beforehand.
//
func (q *queue) pop() string {
	i := q.head
	q.head = (q.head + 1) % len(q.items)
	q.count--
	return q.items[i]
}

func (q *queue) reset() {
	q.head, q.tail, q.count = 0, 0, 0
}

// A Tokenizer scans an input string by trying the rules active in its current
// lexer state, in table order, against the input at the cursor. It owns all
// scanning state: cursor, lexer-state stack, pending token queue and location
// trackers. Nothing is shared between instances and no global state is
// involved, but a single instance must not be used from multiple goroutines
// without external locking.
//
// The same instance can be rebound to a new input with Init any number of
// times.
//
type Tokenizer struct {
	table *Table
	eof   string

	input  string
	cursor int
	states []string
	queue  queue

	// Line-based location tracking.
	line            int
	column          int
	lineBeginOffset int

	// Location of the last matched lexeme. Shared by every token the match
	// yields, including queued ones.
	text        string
	startOffset int
	endOffset   int
	startLine   int
	endLine     int
	startColumn int
	endColumn   int
}

// An Option configures a Tokenizer created by New.
//
type Option func(*Tokenizer)

// WithEOFType sets the token type of the end-of-input marker. The default is
// EOF ("$"). The marker must be distinct from every rule-declared type.
//
func WithEOFType(typ string) Option {
	return func(t *Tokenizer) { t.eof = typ }
}

// New creates a Tokenizer driven by table. The returned tokenizer has no
// input bound yet; call Init before Next.
//
func New(table *Table, opts ...Option) *Tokenizer {
	t := &Tokenizer{
		table: table,
		eof:   EOF,
		// initial queue size must be an exponent of 2
		queue: queue{items: make([]string, 2)},
		line:  1,
	}
	t.states = append(t.states, InitialState)
	for _, o := range opts {
		o(t)
	}
	return t
}

// Init binds the tokenizer to a new input and resets the cursor, the
// lexer-state stack, the pending token queue and all location tracking.
// Nothing carries over from a previous input.
//
func (t *Tokenizer) Init(input string) {
	t.input = input
	t.cursor = 0
	t.states = append(t.states[:0], InitialState)
	t.queue.reset()

	t.line = 1
	t.column = 0
	t.lineBeginOffset = 0

	t.text = ""
	t.startOffset = 0
	t.endOffset = 0
	t.startLine = 0
	t.endLine = 0
	t.startColumn = 0
	t.endColumn = 0
}

// Next returns the next token in the input. Once the end of the input is
// reached it returns the end-of-input token, and keeps returning it on every
// subsequent call. Errors are fatal to the current scan: the cursor stays
// where the error occurred, so retrying fails identically.
//
func (t *Tokenizer) Next() (Token, error) {
	if t.queue.count > 0 {
		return t.token(t.queue.pop()), nil
	}

scan:
	for {
		if !t.HasMoreTokens() {
			return t.eofToken(), nil
		}
		if t.IsEOF() {
			t.cursor++
			return t.eofToken(), nil
		}

		str := t.input[t.cursor:]
		order, err := t.table.activeRules(t.State())
		if err != nil {
			return Token{}, err
		}

		for _, i := range order {
			if i < 0 || i >= len(t.table.rules) {
				return Token{}, fmt.Errorf("%w: %d in state %q", ErrRuleIndex, i, t.State())
			}
			r := &t.table.rules[i]
			loc := r.re.FindStringIndex(str)
			if loc == nil {
				continue
			}
			text := str[:loc[1]]
			t.captureLocation(text)
			t.cursor += len(text)
			t.text = text

			act := r.handler(t, text)
			if len(act.types) == 0 {
				if len(text) == 0 {
					return Token{}, ErrNoProgress
				}
				// Match discarded: rescan from the new cursor.
				continue scan
			}
			for _, typ := range act.types[1:] {
				t.queue.push(typ)
			}
			return t.token(act.types[0]), nil
		}

		return Token{}, t.unexpectedToken(str)
	}
}

// HasMoreTokens reports whether Next can still produce new tokens from the
// input, including the single end-of-input token.
//
func (t *Tokenizer) HasMoreTokens() bool {
	return t.cursor <= len(t.input)
}

// IsEOF reports whether the cursor is exactly at the end of the input.
//
func (t *Tokenizer) IsEOF() bool {
	return t.cursor == len(t.input)
}

// Text returns the last matched lexeme.
//
func (t *Tokenizer) Text() string {
	return t.text
}

// State returns the name of the active lexer state, i.e. the top of the
// state stack.
//
func (t *Tokenizer) State() string {
	return t.states[len(t.states)-1]
}

// PushState makes state the active lexer state.
//
func (t *Tokenizer) PushState(state string) {
	t.states = append(t.states, state)
}

// Begin is an alias for PushState under the name lex-style start conditions
// traditionally use.
//
func (t *Tokenizer) Begin(state string) {
	t.PushState(state)
}

// PopState deactivates the current lexer state and returns it. The bottom
// InitialState entry is never popped: once only it remains, PopState is a
// no-op returning InitialState.
//
func (t *Tokenizer) PopState() string {
	if len(t.states) <= 1 {
		return t.State()
	}
	s := t.State()
	t.states = t.states[:len(t.states)-1]
	return s
}

// captureLocation records the span of the lexeme about to be consumed at the
// cursor, and advances the line tracker past every newline the lexeme
// contains so that multi-line lexemes (block comments, raw strings) keep the
// line count accurate. Must be called before the cursor advances.
//
func (t *Tokenizer) captureLocation(text string) {
	t.startOffset = t.cursor
	t.startLine = t.line
	t.startColumn = t.startOffset - t.lineBeginOffset

	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			t.line++
			t.lineBeginOffset = t.startOffset + i + 1
		}
	}

	t.endOffset = t.startOffset + len(text)
	t.endLine = t.line
	t.endColumn = t.endOffset - t.lineBeginOffset
	t.column = t.endColumn
}

// token materializes a Token of the given type for the last matched lexeme.
//
func (t *Tokenizer) token(typ string) Token {
	return Token{
		Type:        typ,
		Value:       t.text,
		StartOffset: t.startOffset,
		EndOffset:   t.endOffset,
		StartLine:   t.startLine,
		EndLine:     t.endLine,
		StartColumn: t.startColumn,
		EndColumn:   t.endColumn,
	}
}

// eofToken returns the end-of-input token: a zero-width virtual marker at
// position len(input).
//
func (t *Tokenizer) eofToken() Token {
	n := len(t.input)
	col := n - t.lineBeginOffset
	return Token{
		Type:        t.eof,
		StartOffset: n,
		EndOffset:   n,
		StartLine:   t.line,
		EndLine:     t.line,
		StartColumn: col,
		EndColumn:   col,
	}
}

// unexpectedToken builds the fatal scan error for unmatched input starting
// at the cursor.
//
func (t *Tokenizer) unexpectedToken(str string) error {
	r, _ := utf8.DecodeRuneInString(str)
	src := ""
	if lines := strings.Split(t.input, "\n"); t.line-1 < len(lines) {
		src = lines[t.line-1]
	}
	return &UnexpectedTokenError{
		Char:   r,
		Line:   t.line,
		Column: t.cursor - t.lineBeginOffset,
		Source: src,
	}
}
