package sqlite

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/docboost"
)

// minTermLength is the shortest token kept by CompileQuery. Shorter tokens
// are treated as noise.
const minTermLength = 3

// ftsKeywords are FTS5 operators that cannot be used as bare terms.
var ftsKeywords = map[string]bool{
	"AND":  true,
	"OR":   true,
	"NOT":  true,
	"NEAR": true,
}

// CompileQuery turns a raw user query into an FTS5 match expression.
//
// A query containing a double quote is passed through unchanged as a phrase
// expression. Otherwise every whitespace-separated token of at least three
// characters becomes a prefix term and the terms are joined with OR, so
// "save data entity" compiles to "save* OR data* OR entity*".
//
// A token with punctuation stays one term: "entity-table" compiles to the
// quoted prefix phrase "entity-table"*, which only matches the two words
// adjacent and in order. Separate the words with spaces to match either.
//
// Returns docboost.ErrEmptyQuery when no token survives; the result is never
// an expression that matches every document.
func CompileQuery(raw string) (string, error) {
	query := strings.TrimSpace(raw)

	if strings.Contains(query, `"`) {
		return query, nil
	}

	var terms []string
	for _, token := range strings.Fields(query) {
		if utf8.RuneCountInString(token) < minTermLength || !hasWordChar(token) {
			continue
		}
		terms = append(terms, prefixTerm(token))
	}

	if len(terms) == 0 {
		return "", docboost.ErrEmptyQuery
	}

	return strings.Join(terms, " OR "), nil
}

// prefixTerm returns token as an FTS5 prefix query. Tokens that are not
// valid FTS5 barewords are quoted; the tokenizer strips the punctuation.
func prefixTerm(token string) string {
	if isBareword(token) && !ftsKeywords[strings.ToUpper(token)] {
		return token + "*"
	}
	return `"` + token + `"*`
}

// isBareword reports whether s consists only of characters FTS5 accepts in
// an unquoted string.
func isBareword(s string) bool {
	for _, r := range s {
		if r == '_' || r >= utf8.RuneSelf || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9') {
			continue
		}
		return false
	}
	return true
}

func hasWordChar(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
