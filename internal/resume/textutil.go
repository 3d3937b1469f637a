// Package resume converts layout-extracted text lines into a structured
// resume: contact info, skills, work history, education, and projects.
// Parsing failures are local and non-fatal; an unrecognized block yields an
// empty or partial value, never an error.
package resume

import "strings"

var unicodeReplacer = strings.NewReplacer(
	"–", "-", // en-dash
	"—", "-", // em-dash
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
)

// normalizeText replaces common Unicode dash and quote characters with
// their ASCII equivalents so that date patterns match reliably.
func normalizeText(text string) string {
	return unicodeReplacer.Replace(text)
}

// stripBullet removes a leading bullet marker and surrounding whitespace.
func stripBullet(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, "• -"))
}

// isBulletLine reports whether the line starts with a bullet marker.
func isBulletLine(line string) bool {
	return strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-")
}
