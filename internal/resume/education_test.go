package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rishabhsingh11/Ascend/internal/types"
)

func TestParseEducationSectionPipeVariant(t *testing.T) {
	lines := []string{
		"Master of Science in Computer Science | Northeastern University - Boston, MA  2021 - 2023",
	}

	educations := parseEducationSection(lines)

	require.Len(t, educations, 1)
	assert.Equal(t, types.Education{
		Institution:    "Northeastern University",
		Degree:         "Master of Science",
		Field:          "Computer Science",
		GraduationYear: "2023",
	}, educations[0])
}

func TestParseEducationSectionCommaDegree(t *testing.T) {
	lines := []string{
		"Bachelor of Engineering, Electronics | Mumbai University - Mumbai, India  2019",
	}

	educations := parseEducationSection(lines)

	require.Len(t, educations, 1)
	assert.Equal(t, "Bachelor of Engineering", educations[0].Degree)
	assert.Equal(t, "Electronics", educations[0].Field)
	assert.Equal(t, "2019", educations[0].GraduationYear)
}

func TestParseEducationSectionTwoLineVariant(t *testing.T) {
	lines := []string{
		"Northeastern University - Boston, MA 2023",
		"Master of Science in Information Systems",
		"Mumbai University - Mumbai, India 2019",
		"Bachelor of Engineering in Electronics",
	}

	educations := parseEducationSection(lines)

	require.Len(t, educations, 2)
	assert.Equal(t, types.Education{
		Institution:    "Northeastern University",
		Degree:         "Master of Science",
		Field:          "Information Systems",
		GraduationYear: "2023",
	}, educations[0])
	assert.Equal(t, "Mumbai University", educations[1].Institution)
	assert.Equal(t, "Bachelor of Engineering", educations[1].Degree)
}

func TestParseEducationSectionAdjacentInstitutionLines(t *testing.T) {
	// An institution line followed directly by another institution line
	// yields no entry for the first (no degree) but must not swallow the
	// second line.
	lines := []string{
		"Northeastern University - Boston, MA 2023",
		"Mumbai University - Mumbai, India 2019",
		"Bachelor of Engineering in Electronics",
	}

	educations := parseEducationSection(lines)

	require.Len(t, educations, 1)
	assert.Equal(t, "Mumbai University", educations[0].Institution)
	assert.Equal(t, "Bachelor of Engineering", educations[0].Degree)
}

func TestParseEducationSectionDropsIncomplete(t *testing.T) {
	assert.Empty(t, parseEducationSection([]string{"Relevant coursework: Algorithms"}))
	assert.Empty(t, parseEducationSection(nil))
}
