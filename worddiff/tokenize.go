// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.

package worddiff

import (
	"unicode"
	"unicode/utf8"
)

// Tokenize splits text into maximal runs of whitespace and non-whitespace.
// Joining the tokens yields text exactly. Punctuation stays attached to the
// word it touches: "world!" is a single token.
//
// Whitespace is what unicode.IsSpace reports: '\t', '\n', '\v', '\f', '\r',
// ' ', U+0085 (NEL), U+00A0 (NBSP) and the Unicode White_Space property.
// Unlike the JavaScript \s class, U+0085 splits tokens and U+FEFF does not.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	var tokens []string
	start := 0
	inSpace := false
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		// An invalid byte decodes to RuneError and counts as a word character.
		space := r != utf8.RuneError && unicode.IsSpace(r)
		if i > start && space != inSpace {
			tokens = append(tokens, text[start:i])
			start = i
		}
		inSpace = space
		i += size
	}
	tokens = append(tokens, text[start:])

	return tokens
}
