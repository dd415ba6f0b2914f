package codegen

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var sanitizer = strings.NewReplacer(
	"&", " and ",
	"!", " exclam ",
	",", " ",
	".", " ",
	"'", "",
	"\"", "",
	"@", " at ",
	"#", " number ",
	":", " ",
	";", " ",
	"(", " ",
	")", " ",
	"[", " ",
	"]", " ",
	"{", " ",
	"}", " ",
	"/", " ",
	"\\", " ",
	"*", " ",
	"?", " ",
)

// Sanitize applies the character substitution table to name.
func Sanitize(name string) string {
	return sanitizer.Replace(name)
}

// Identifier returns the lower camel case identifier for name. It may be empty
// when name has no letters or digits.
func Identifier(name string) string {
	words := splitWords(Sanitize(name))
	// Casers keep state, so each call gets its own.
	lower := cases.Lower(language.Und)
	title := cases.Title(language.Und)

	var b strings.Builder
	for i, w := range words {
		if i == 0 {
			b.WriteString(lower.String(w))
			continue
		}
		b.WriteString(title.String(w))
	}
	return b.String()
}

// splitWords splits on every rune that is neither a letter nor a digit, on
// lower-to-upper case changes, between letters and digits, and before the last
// capital of an acronym followed by a lower case letter. "SubTheme-Name" yields
// Sub, Theme, Name and "1x2HTTPServer" yields 1, x, 2, HTTP, Server.
func splitWords(s string) []string {
	var (
		words   []string
		current []rune
	)
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(current) > 0 && isBoundary(runes[i-1], r, runes[i+1:]) {
			flush()
		}
		current = append(current, r)
	}
	flush()
	return words
}

// isBoundary reports whether a word starts at r given the rune before it and
// the runes after it.
func isBoundary(prev, r rune, rest []rune) bool {
	switch {
	case unicode.IsLower(prev) && unicode.IsUpper(r):
		return true
	case unicode.IsLetter(prev) && unicode.IsDigit(r):
		return true
	case unicode.IsDigit(prev) && unicode.IsLetter(r):
		return true
	case unicode.IsUpper(prev) && unicode.IsUpper(r):
		return len(rest) > 0 && unicode.IsLower(rest[0])
	}
	return false
}
