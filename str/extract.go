package str

import "regexp"

// ─────────────────────────────────────────────────────────────────────────────
// Regex-based extraction & validation
// ─────────────────────────────────────────────────────────────────────────────

var (
	emailPattern = `[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`
	urlPattern   = `https?://[^\s<>"')]+`

	emailRe      = regexp.MustCompile(emailPattern)
	emailExactRe = regexp.MustCompile(`^` + emailPattern + `$`)
	urlRe        = regexp.MustCompile(urlPattern)
	urlExactRe   = regexp.MustCompile(`^` + urlPattern + `$`)
	tagRe        = regexp.MustCompile(`<[^>]*>`)
)

// ExtractEmails returns every email address found in s, in order of
// appearance. Returns an empty slice when none are found.
func ExtractEmails(s string) []string {
	out := emailRe.FindAllString(s, -1)
	if out == nil {
		return []string{}
	}
	return out
}

// ExtractURLs returns every http(s) URL found in s, in order of appearance.
// Returns an empty slice when none are found.
func ExtractURLs(s string) []string {
	out := urlRe.FindAllString(s, -1)
	if out == nil {
		return []string{}
	}
	return out
}

// StripTags removes HTML/XML tags from s, leaving the text content.
// Entities are not decoded.
func StripTags(s string) string {
	return tagRe.ReplaceAllString(s, "")
}

// IsEmail reports whether s as a whole looks like an email address. This is
// a pragmatic pattern check, not RFC 5322 validation.
func IsEmail(s string) bool {
	return emailExactRe.MatchString(s)
}

// IsURL reports whether s as a whole looks like an http(s) URL.
func IsURL(s string) bool {
	return urlExactRe.MatchString(s)
}
