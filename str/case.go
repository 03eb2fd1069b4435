package str

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ─────────────────────────────────────────────────────────────────────────────
// Word splitting
// ─────────────────────────────────────────────────────────────────────────────

// words splits s into lowercase words on any non-alphanumeric separator and
// on camelCase boundaries, including acronym runs: "HTTPServer request" →
// ["http", "server", "request"].
func words(s string) []string {
	runes := []rune(s)
	out := make([]string, 0, 4)
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			out = append(out, cur.String())
			cur.Reset()
		}
	}
	for i, r := range runes {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r):
			if i > 0 {
				prev := runes[i-1]
				nextIsLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextIsLower) {
					flush()
				}
			}
			cur.WriteRune(unicode.ToLower(r))
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Case conversion
// ─────────────────────────────────────────────────────────────────────────────

// Capitalize upper-cases the first rune of s and lower-cases the rest.
func Capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
}

// Title converts s to language-aware title case ("hello world" →
// "Hello World") using Unicode casing rules. A fresh Caser is built per
// call because cases.Caser is stateful and not safe for shared use.
func Title(s string) string {
	return cases.Title(language.English).String(s)
}

// CamelCase converts s to camelCase: "user first-name" → "userFirstName".
func CamelCase(s string) string {
	ws := words(s)
	if len(ws) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(ws[0])
	for _, w := range ws[1:] {
		b.WriteString(Capitalize(w))
	}
	return b.String()
}

// PascalCase converts s to PascalCase: "user first-name" → "UserFirstName".
func PascalCase(s string) string {
	var b strings.Builder
	for _, w := range words(s) {
		b.WriteString(Capitalize(w))
	}
	return b.String()
}

// SnakeCase converts s to snake_case: "userFirstName" → "user_first_name".
func SnakeCase(s string) string {
	return strings.Join(words(s), "_")
}

// KebabCase converts s to kebab-case: "userFirstName" → "user-first-name".
func KebabCase(s string) string {
	return strings.Join(words(s), "-")
}

// Slugify converts s to a URL-safe slug: letters and digits are kept
// (lower-cased), runs of anything else collapse to a single hyphen, and
// leading/trailing hyphens are trimmed.
//
//	Slugify("My App 2.0!")  // → "my-app-20"
func Slugify(s string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(unicode.ToLower(r))
		case r == ' ' || r == '-' || r == '_':
			pendingHyphen = true
		}
	}
	return b.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// Misc
// ─────────────────────────────────────────────────────────────────────────────

// Reverse returns s with its runes in reverse order.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Truncate shortens s to at most length runes, appending "..." when
// anything was cut. A non-positive length yields just the ellipsis.
func Truncate(s string, length int) string {
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}
	if length < 0 {
		length = 0
	}
	return string(runes[:length]) + "..."
}

// WordCount returns the number of whitespace-separated words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
