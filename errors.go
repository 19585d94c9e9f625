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
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// Common errors.
var (
	// ErrUnknownState is reported when the active lexer state has no entry
	// in the table's start conditions. This is a malformed-table condition,
	// detected lazily at the first match attempt in that state.
	ErrUnknownState = errors.New("tokenizer: no rules for lexer state")

	// ErrRuleIndex is reported when a start condition references a rule
	// index outside the table.
	ErrRuleIndex = errors.New("tokenizer: rule index out of range")

	// ErrNoProgress is reported when a rule matched the empty string and its
	// handler asked to skip the match: rescanning would try the same rules
	// at the same offset forever.
	ErrNoProgress = errors.New("tokenizer: zero-width match skipped, no progress")
)

// An UnexpectedTokenError reports input that no active rule matches. It is
// fatal to the current scan: the cursor stays put and every further call to
// Next fails the same way.
//
type UnexpectedTokenError struct {
	Char   rune   // the offending character
	Line   int    // 1-based line number
	Column int    // 0-based byte column within Line
	Source string // text of the offending line
}

// Error formats the offending source line with a caret under the failing
// column:
//
//	2 + @3
//	    ^
//	Unexpected token: "@" at 1:4.
//
func (e *UnexpectedTokenError) Error() string {
	b := e.Column
	if b > len(e.Source) {
		b = len(e.Source)
	}
	pad := strings.Repeat(" ", displayWidth(e.Source[:b]))
	return fmt.Sprintf("\n\n%s\n%s^\nUnexpected token: %q at %d:%d.",
		e.Source, pad, string(e.Char), e.Line, e.Column)
}

// displayWidth computes the width in text cells of s, assuming rendering
// with a monospaced font and a UTF-8 locale. Without this, the caret drifts
// left of the failing column whenever the line contains East Asian wide
// characters.
//
func displayWidth(s string) int {
	w := 0
	for i := 0; i < len(s); {
		r, sz := utf8.DecodeRuneInString(s[i:])
		i += sz
		if !unicode.IsGraphic(r) {
			continue
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			w += 2
		default:
			// EastAsianAmbiguous renders as 2 cells only in CJK locales;
			// count 1 as for neutral runes.
			w++
		}
	}
	return w
}
