package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rishabhsingh11/Ascend/internal/types"
)

func TestParseExperienceSectionCompanyDateVariant(t *testing.T) {
	lines := []string{
		"Acme Corp Jan 2020 - Present",
		"Software Engineer Boston, MA",
		"• Built data pipelines processing 2TB daily",
		"• Led migration to Kubernetes",
		"Globex Mar 2018 - Dec 2019",
		"Data Analyst New York, NY",
		"• Automated weekly reporting",
	}

	experiences := parseExperienceSection(lines)

	require.Len(t, experiences, 2)
	assert.Equal(t, types.Experience{
		Company:  "Acme Corp",
		Position: "Software Engineer",
		Duration: "Jan 2020 - Present",
		Location: "Boston, MA",
		Description: []string{
			"Built data pipelines processing 2TB daily",
			"Led migration to Kubernetes",
		},
	}, experiences[0])
	assert.Equal(t, "Globex", experiences[1].Company)
	assert.Equal(t, "Data Analyst", experiences[1].Position)
	assert.Equal(t, "Mar 2018 - Dec 2019", experiences[1].Duration)
}

func TestParseExperienceSectionPipeVariant(t *testing.T) {
	lines := []string{
		"Engineer | Acme | NYC  Jan 2020 - Present",
		"• Shipped the v2 API",
		"• Reduced p99 latency by 40%",
		"across three services",
	}

	experiences := parseExperienceSection(lines)

	require.Len(t, experiences, 1)
	exp := experiences[0]
	assert.Equal(t, "Engineer", exp.Position)
	assert.Equal(t, "Acme", exp.Company)
	assert.Equal(t, "NYC", exp.Location)
	assert.Equal(t, "Jan 2020 - Present", exp.Duration)
	// The wrapped continuation line is folded into the second bullet.
	assert.Equal(t, []string{
		"Shipped the v2 API",
		"Reduced p99 latency by 40% across three services",
	}, exp.Description)
}

func TestParseExperienceSectionUnicodeDashes(t *testing.T) {
	lines := []string{
		"Acme Corp Jan 2020 – Present", // en-dash from PDF extraction
		"Engineer Boston, MA",
		"• Did things",
	}

	experiences := parseExperienceSection(lines)

	require.Len(t, experiences, 1)
	assert.Equal(t, "Jan 2020 - Present", experiences[0].Duration)
}

func TestParseExperienceSectionDropsIncompleteEntries(t *testing.T) {
	lines := []string{
		// A date line with no position line after it.
		"Acme Corp Jan 2020 - Present",
		"• Orphan bullet",
	}

	experiences := parseExperienceSection(lines)
	assert.Empty(t, experiences)
}

func TestParseExperienceSectionEmpty(t *testing.T) {
	assert.Empty(t, parseExperienceSection(nil))
	assert.Empty(t, parseExperienceSection([]string{"", "  "}))
}

func TestClassifyEntryStart(t *testing.T) {
	tests := []struct {
		name string
		line string
		want entryVariant
	}{
		{"pipe with dates", "Engineer | Acme | NYC Jan 2020 - Present", variantPipe},
		{"company with dates", "Acme Corp Jan 2020 - Present", variantCompanyDate},
		{"bullet with dates", "• Since Jan 2020 - owned releases", variantUnrecognized},
		{"plain text", "Software Engineer", variantUnrecognized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyEntryStart(tt.line))
		})
	}
}
