// Package skills provides controlled-vocabulary skill extraction,
// normalization, fuzzy matching, and gap prioritization for resumes and job
// postings.
package skills

import (
	"regexp"
	"strings"
)

// defaultAliases maps common skill name variants to canonical names.
var defaultAliases = map[string]string{
	"js":         "javascript",
	"ts":         "typescript",
	"py":         "python",
	"react.js":   "react",
	"reactjs":    "react",
	"vue.js":     "vue",
	"node.js":    "node",
	"nodejs":     "node",
	"postgresql": "postgres",
	"mongo":      "mongodb",
	"k8s":        "kubernetes",
	"ci/cd":      "cicd",
	"ml":         "machine learning",
	"ai":         "artificial intelligence",
	"nlp":        "natural language processing",
	"aws":        "amazon web services",
	"gcp":        "google cloud platform",
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	canonicalRe  = regexp.MustCompile(`[^a-z0-9 +#.]`)
)

// Normalizer canonicalizes skill strings. The alias table is fixed at
// construction so tests can substitute smaller fixtures.
type Normalizer struct {
	aliases map[string]string
}

// NewNormalizer creates a Normalizer with the given alias table.
// A nil table uses the built-in defaults.
func NewNormalizer(aliases map[string]string) *Normalizer {
	if aliases == nil {
		aliases = defaultAliases
	}
	return &Normalizer{aliases: aliases}
}

// Normalize canonicalizes a skill string: lowercase, collapsed whitespace,
// alias substitution, then stripping characters outside [a-z0-9 +#.].
// The output is already in canonical form, so Normalize is idempotent.
func (n *Normalizer) Normalize(skill string) string {
	normalized := strings.ToLower(strings.TrimSpace(skill))
	normalized = whitespaceRe.ReplaceAllString(normalized, " ")

	if canonical, ok := n.aliases[normalized]; ok {
		normalized = canonical
	}

	return canonicalRe.ReplaceAllString(normalized, "")
}
