package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Basic(t *testing.T) {
	n := NewNormalizer(nil)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Python", "python"},
		{"trims and collapses whitespace", "  machine   learning ", "machine learning"},
		{"alias js", "JS", "javascript"},
		{"alias k8s", "k8s", "kubernetes"},
		{"alias ml", "ML", "machine learning"},
		{"alias aws", "AWS", "amazon web services"},
		{"keeps plus and hash", "C++", "c++"},
		{"keeps dots", "Node.js", "node"},
		{"strips other punctuation", "react/redux!", "reactredux"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	n := NewNormalizer(nil)

	inputs := []string{
		"Python", "JS", "k8s", "  Machine   Learning ", "C#", "Node.js",
		"ci/cd", "React Native", "données", "ML",
	}
	for _, in := range inputs {
		once := n.Normalize(in)
		assert.Equal(t, once, n.Normalize(once), "normalize(normalize(%q))", in)
	}
}

func TestNormalize_CustomAliasTable(t *testing.T) {
	n := NewNormalizer(map[string]string{"gql": "graphql"})

	assert.Equal(t, "graphql", n.Normalize("GQL"))
	// Default aliases are not consulted when a table is injected.
	assert.Equal(t, "js", n.Normalize("js"))
}
