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

import "fmt"

// EOF is the default type of the end-of-input token. A table compiler that
// designates a different marker can install it with WithEOFType.
//
const EOF = "$"

// A Token is a single lexeme paired with its exact location in the input.
// Tokens are immutable value objects: the engine never retains or reuses one
// after returning it.
//
// Offsets are 0-based byte indices into the original input, with EndOffset
// exclusive. Line numbers are 1-based. Columns are 0-based byte offsets from
// the start of their line.
//
type Token struct {
	Type  string // rule-declared type, or the end-of-input marker
	Value string // the matched lexeme; empty for the end-of-input token

	StartOffset int
	EndOffset   int
	StartLine   int
	EndLine     int
	StartColumn int
	EndColumn   int
}

// String returns the token in the form TYPE("value") [start, end).
//
func (t Token) String() string {
	return fmt.Sprintf("%s(%q) [%d, %d)", t.Type, t.Value, t.StartOffset, t.EndOffset)
}
