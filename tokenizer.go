package cbowdata

import "strings"

// Tokenize separates text into lowercase alphabetic words.
//
// ASCII letters are lowercased and every other character acts as a
// word separator. Empty input produces no tokens.
func Tokenize(text string) []string {
	norm := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= 'a' && c <= 'z':
			norm[i] = c
		case c >= 'A' && c <= 'Z':
			norm[i] = c + ('a' - 'A')
		default:
			norm[i] = ' '
		}
	}
	return strings.Fields(string(norm))
}
