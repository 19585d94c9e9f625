package tokenizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DmitrySoshnikov/tokenizer"
)

func TestUnexpectedTokenError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  tokenizer.UnexpectedTokenError
		want string
	}{
		{
			name: "ascii",
			err:  tokenizer.UnexpectedTokenError{Char: '#', Line: 1, Column: 3, Source: "12+#"},
			want: "\n\n12+#\n   ^\nUnexpected token: \"#\" at 1:3.",
		},
		{
			name: "column zero",
			err:  tokenizer.UnexpectedTokenError{Char: '#', Line: 1, Column: 0, Source: "#"},
			want: "\n\n#\n^\nUnexpected token: \"#\" at 1:0.",
		},
		{
			// Column is a byte offset (6 bytes of UTF-8), but the caret pad
			// is the display width of the prefix (two double-width cells).
			name: "east asian wide prefix",
			err:  tokenizer.UnexpectedTokenError{Char: '#', Line: 2, Column: 6, Source: "世界#"},
			want: "\n\n世界#\n    ^\nUnexpected token: \"#\" at 2:6.",
		},
		{
			name: "column past end of line",
			err:  tokenizer.UnexpectedTokenError{Char: '#', Line: 1, Column: 99, Source: "ab"},
			want: "\n\nab\n  ^\nUnexpected token: \"#\" at 1:99.",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.Error())
		})
	}
}
