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

// A Table is the ordered rule set driving a Tokenizer. Rule order is
// significant: the engine tries rules exactly in the order given and the
// first match wins, regardless of match length.
//
// A table is immutable once built and can be shared by any number of
// tokenizers.
//
type Table struct {
	rules      []Rule
	order      []int // identity order, used when conditions is nil
	conditions map[string][]int
}

// NewTable returns a table in which every rule is active in every lexer
// state.
//
func NewTable(rules []Rule) *Table {
	order := make([]int, len(rules))
	for i := range order {
		order[i] = i
	}
	return &Table{rules: rules, order: order}
}

// NewConditionalTable returns a table whose active rule subset depends on the
// tokenizer's current lexer state. conditions maps a state name to the
// ordered rule indices tried while that state is active; the InitialState key
// must be present. A state pushed by a handler but missing from conditions is
// reported by Tokenizer.Next when first referenced.
//
func NewConditionalTable(rules []Rule, conditions map[string][]int) *Table {
	return &Table{rules: rules, conditions: conditions}
}

// activeRules returns the ordered rule indices to try in the given state.
//
func (tb *Table) activeRules(state string) ([]int, error) {
	if tb.conditions == nil {
		return tb.order, nil
	}
	order, ok := tb.conditions[state]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownState, state)
	}
	return order, nil
}
