package schema

import (
	"regexp"
	"strings"
)

var (
	lineBreaks  = regexp.MustCompile(`[\n\r\t]+`)
	underscores = regexp.MustCompile(`_+`)
	separators  = strings.NewReplacer(".", " ", "-", " ", "/", " ")
)

// NormalizeColumn canonicalizes a raw column label into a stable lookup key.
// Extracted PDF headers arrive with newlines ("No. of\nJobs"), dots, slashes
// ("SA/TA") and arbitrary casing; the database schema uses snake_case. The
// function is pure and idempotent, so it is safe to apply to both sides of a
// column match.
func NormalizeColumn(label string) string {
	s := lineBreaks.ReplaceAllString(label, " ")
	s = separators.Replace(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = underscores.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_:- ")
	return strings.ToLower(s)
}
