package gencommon

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// Whitespace includes \v and Unicode spaces, not just RE2's ASCII \s.
	separatorRegex = regexp.MustCompile(`[_\s\v\p{Zs}\x{FEFF}\x{2028}\x{2029}-]+`)
	nonAlnumRegex  = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// ComponentSuffix is appended to every sanitized table name.
const ComponentSuffix = "Table"

// Sanitize turns a free-form table name into a component identifier:
// words split on runs of '_', whitespace or '-' get their first letter
// upper-cased, are joined, stripped to [A-Za-z0-9] and suffixed with "Table".
//
//	"Customer Orders" -> "CustomerOrdersTable"
//	"user_id"         -> "UserIdTable"
//	"123abc"          -> "123abcTable"
func Sanitize(name string) string {
	words := strings.Split(separatorRegex.ReplaceAllString(name, " "), " ")

	var b strings.Builder
	b.Grow(len(name) + len(ComponentSuffix))
	for _, word := range words {
		b.WriteString(upperFirst(word))
	}

	return nonAlnumRegex.ReplaceAllString(b.String(), "") + ComponentSuffix
}

func upperFirst(word string) string {
	if word == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(r)) + word[size:]
}

// UniqueNames sanitizes every name once and disambiguates collisions with a
// numeric suffix, keeping input order.
func UniqueNames(names []string) []string {
	out := make([]string, len(names))
	seen := make(map[string]int, len(names))
	for i, name := range names {
		id := Sanitize(name)
		seen[id]++
		if n := seen[id]; n > 1 {
			candidate := id + strconv.Itoa(n)
			for seen[candidate] > 0 {
				n++
				candidate = id + strconv.Itoa(n)
			}
			seen[candidate]++
			id = candidate
		}
		out[i] = id
	}
	return out
}
