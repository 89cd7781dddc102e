package shell

import "strings"

const (
	// Delimiters separate tokens, runs of them are collapsed.
	Delimiters = " \t\r\n\a"

	// TokenBufferSize is the initial capacity of the token slice.
	TokenBufferSize = 64
)

func isDelimiter(r rune) bool {
	return strings.ContainsRune(Delimiters, r)
}

// Split breaks line into the maximal runs of characters that aren't in
// Delimiters. There is no quoting or escaping so a token never contains a
// delimiter. Lines consisting only of delimiters produce no tokens.
//
// Tokens are substrings of line and share its storage.
func Split(line string) []string {
	var tokens []string

	start := -1
	for i, r := range line {
		switch {
		case isDelimiter(r) && start >= 0:
			tokens = appendToken(tokens, line[start:i])
			start = -1
		case !isDelimiter(r) && start < 0:
			start = i
		}
	}
	if start >= 0 {
		tokens = appendToken(tokens, line[start:])
	}

	return tokens
}

func appendToken(tokens []string, tok string) []string {
	if tokens == nil {
		tokens = make([]string, 0, TokenBufferSize)
	}
	return append(tokens, tok)
}
