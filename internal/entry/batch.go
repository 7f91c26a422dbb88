package entry

import (
	"strings"
	"unicode"
)

// batchDelimiters are the characters checked by the single-vs-multiple
// heuristic. This set is fixed: it covers both tag delimiter variants, so
// the batch decision does not depend on the configured tokenizer.
const batchDelimiters = "/,@"

// ParseArguments parses pre-split input tokens as one or several entries.
//
// If there is no second token, or the second token contains no DSL
// delimiter and is not purely numeric, the whole token list is treated as
// a single entry whose trailing words are title prose: the tokens are
// joined with spaces and every space is replaced by '/', which is
// harmless because '/' is literal once the title segment starts.
// Otherwise each token is parsed as an independent entry.
//
// An empty token list yields no entries.
func ParseArguments(tokens []string, opts Options) []Entry {
	if len(tokens) == 0 {
		return nil
	}

	if len(tokens) < 2 || looksLikeTitle(tokens[1]) {
		joined := strings.ReplaceAll(strings.Join(tokens, " "), " ", "/")
		return []Entry{Parse(joined, opts)}
	}

	entries := make([]Entry, 0, len(tokens))
	for _, tok := range tokens {
		entries = append(entries, Parse(tok, opts))
	}
	return entries
}

// looksLikeTitle reports whether the token reads as ordinary title prose
// rather than DSL syntax or a bare number that would start a new entry.
func looksLikeTitle(token string) bool {
	return !strings.ContainsAny(token, batchDelimiters) && !isNumeric(token)
}

// isNumeric reports whether the string is non-empty and entirely digits.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
