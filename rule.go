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

import "regexp"

// A Handler is called when its rule's pattern matched at the cursor. text is
// the matched lexeme. The tokenizer is passed in so that handlers can switch
// start conditions with PushState/Begin/PopState; handlers must not call Next
// or Init.
//
type Handler func(t *Tokenizer, text string) Action

// An Action is the result of a Handler. It has three shapes, built with Skip,
// Emit and EmitMany.
//
type Action struct {
	types []string
}

// Skip discards the matched lexeme: the cursor advances past it but no token
// is produced and scanning resumes. Used for whitespace and comments.
//
func Skip() Action {
	return Action{}
}

// Emit produces a single token of the given type for the matched lexeme.
//
func Emit(typ string) Action {
	return Action{types: []string{typ}}
}

// EmitMany produces a token of the first type immediately and queues the
// remaining types for subsequent calls to Next. All of them share the one
// matched lexeme and its span. EmitMany with no arguments is equivalent to
// Skip.
//
func EmitMany(types ...string) Action {
	return Action{types: types}
}

// A Rule pairs a pattern with the Handler run on each match. Rules are
// supplied by the table compiler and are immutable for the lifetime of any
// tokenizer using them.
//
type Rule struct {
	re      *regexp.Regexp
	handler Handler
}

// NewRule compiles pattern into a Rule. The pattern is matched only at the
// very start of the remaining input; the anchoring is applied here, so the
// pattern itself needs no leading ^.
//
func NewRule(pattern string, h Handler) (Rule, error) {
	re, err := regexp.Compile(`\A(?:` + pattern + `)`)
	if err != nil {
		return Rule{}, err
	}
	return Rule{re: re, handler: h}, nil
}

// MustRule is like NewRule but panics if the pattern does not compile. It is
// intended for static rule tables emitted by the table compiler.
//
func MustRule(pattern string, h Handler) Rule {
	r, err := NewRule(pattern, h)
	if err != nil {
		panic(err)
	}
	return r
}
