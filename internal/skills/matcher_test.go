package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillsMatch_Exact(t *testing.T) {
	m := NewMatcher(nil)

	assert.True(t, m.SkillsMatch("Python", "python"))
	assert.True(t, m.SkillsMatch("JS", "JavaScript"), "aliases normalize to the same form")
	assert.False(t, m.SkillsMatch("Python", "Java"))
}

func TestSkillsMatch_Fuzzy(t *testing.T) {
	m := NewMatcher(nil)

	// Typos within the 0.85 similarity threshold still match.
	assert.True(t, m.SkillsMatch("postgres", "postgress"))
	assert.False(t, m.SkillsMatch("sql", "nosql here totally different"))
}

func TestSkillsMatch_SubstringRule(t *testing.T) {
	m := NewMatcher(nil)

	assert.True(t, m.SkillsMatch("react", "react native"))
	// Both sides must be longer than MinSubstringLen.
	assert.False(t, m.SkillsMatch("sq", "sql server"))

	// The threshold is configurable; raising MinSubstringLen disables the
	// react/react-native style containment.
	strict := NewMatcher(nil)
	strict.MinSubstringLen = 12
	assert.False(t, strict.SkillsMatch("react", "react native"))
}

func TestSkillsMatch_Symmetry(t *testing.T) {
	m := NewMatcher(nil)

	pairs := [][2]string{
		{"react", "react native"},
		{"Python", "python"},
		{"postgres", "postgresql"},
		{"docker", "terraform"},
		{"ML", "machine learning"},
	}
	for _, pair := range pairs {
		assert.Equal(t, m.SkillsMatch(pair[0], pair[1]), m.SkillsMatch(pair[1], pair[0]),
			"skills_match(%q,%q) must be symmetric", pair[0], pair[1])
	}
}

func TestFindMatchingSkills(t *testing.T) {
	m := NewMatcher(nil)

	matched, missing := m.FindMatchingSkills(
		[]string{"Python", "SQL", "Git"},
		[]string{"Python", "AWS", "git"},
	)

	assert.Equal(t, []string{"Python", "Git"}, matched, "resume casing is kept")
	assert.Equal(t, []string{"AWS"}, missing, "job casing is kept")
}

func TestFindMatchingSkills_DisjointUnderNormalization(t *testing.T) {
	m := NewMatcher(nil)

	matched, missing := m.FindMatchingSkills(
		[]string{"JavaScript", "react", "Docker"},
		[]string{"JS", "React Native", "Kubernetes", "Terraform", "docker"},
	)

	matchedNorm := make(map[string]bool)
	for _, s := range matched {
		matchedNorm[m.Normalize(s)] = true
	}
	for _, s := range missing {
		assert.False(t, matchedNorm[m.Normalize(s)], "%q appears in both matched and missing", s)
	}
}

func TestFindMatchingSkills_Dedupes(t *testing.T) {
	m := NewMatcher(nil)

	matched, missing := m.FindMatchingSkills(
		[]string{"Python"},
		[]string{"python", "Python", "AWS", "aws"},
	)

	assert.Equal(t, []string{"Python"}, matched)
	// "AWS" and "aws" normalize identically and are reported once.
	require.Len(t, missing, 1)
	assert.Equal(t, "AWS", missing[0])
}

func TestMatchPercentage(t *testing.T) {
	assert.Equal(t, 100.0, MatchPercentage(0, 0), "zero required skills is a full match")
	assert.Equal(t, 100.0, MatchPercentage(12, 10), "capped at 100")
	assert.InDelta(t, 66.67, MatchPercentage(2, 3), 0.01)
	assert.Equal(t, 0.0, MatchPercentage(0, 4))
}

func TestMatchPercentage_Monotonic(t *testing.T) {
	prev := 0.0
	for matched := 0; matched <= 10; matched++ {
		pct := MatchPercentage(matched, 10)
		assert.GreaterOrEqual(t, pct, prev)
		assert.LessOrEqual(t, pct, 100.0)
		prev = pct
	}
}

func TestSimilarityRatio(t *testing.T) {
	assert.Equal(t, 1.0, similarityRatio("", ""))
	assert.Equal(t, 1.0, similarityRatio("abc", "abc"))
	assert.InDelta(t, 0.94, similarityRatio("postgres", "postgress"), 0.01)
	assert.Equal(t, 0.0, similarityRatio("abc", "xyz"))
}
