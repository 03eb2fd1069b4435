// Package str provides standalone, framework-agnostic string helpers
// mirroring the string utilities of JavaScript toolkits: case conversion
// (camelCase, snake_case, kebab-case, Title Case), capitalization, slugs,
// truncation, and regex-based extraction/validation of emails, URLs, and
// HTML tags.
//
//	str.CamelCase("user first name")   // → "userFirstName"
//	str.SnakeCase("userFirstName")     // → "user_first_name"
//	str.Slugify("My App 2.0!")         // → "my-app-20"
//	str.ExtractEmails("ping a@b.io")   // → ["a@b.io"]
//
// All helpers are pure and Unicode-aware; word splitting understands
// camelCase boundaries, acronym runs (HTTPServer → http server), and any
// non-alphanumeric separator.
package str
