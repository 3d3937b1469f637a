package resume

import (
	"strings"

	"github.com/Rishabhsingh11/Ascend/internal/layout"
)

// Section tags produced by the segmenter.
const (
	sectionExperience     = "experience"
	sectionEducation      = "education"
	sectionSkills         = "skills"
	sectionProjects       = "projects"
	sectionSummary        = "summary"
	sectionCertifications = "certifications"
)

// headerFontSize is the minimum font size for a non-bold line to qualify as
// a section header.
const headerFontSize = 10.5

// sectionKeywords maps each section tag to the header phrases that announce
// it. Order matters: the first matching tag wins.
var sectionKeywords = []struct {
	tag     string
	phrases []string
}{
	{sectionExperience, []string{"professional experience", "work experience", "experience"}},
	{sectionEducation, []string{"education", "academic background"}},
	{sectionSkills, []string{"skills", "technical skills", "core competencies"}},
	{sectionProjects, []string{"academic projects", "projects"}},
	{sectionSummary, []string{"summary", "professional summary", "objective"}},
	{sectionCertifications, []string{"certifications", "certificates", "licenses"}},
}

// classifySection returns the section tag a line's text announces, if any.
func classifySection(text string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, entry := range sectionKeywords {
		for _, phrase := range entry.phrases {
			if phrase == lower || strings.Contains(lower, phrase) {
				return entry.tag, true
			}
		}
	}
	return "", false
}

// segmentSections splits lines into named sections. A line is a header when
// its text matches a known phrase and it is visually prominent (bold or at
// least body-size font). Lines before the first header are dropped; missing
// sections are simply absent from the result.
func segmentSections(lines []layout.Line) map[string][]string {
	sections := make(map[string][]string)

	current := ""
	var content []string

	flush := func() {
		if current != "" && len(content) > 0 {
			sections[current] = content
		}
	}

	for _, line := range lines {
		text := line.Text
		if text == "" {
			continue
		}

		tag, ok := classifySection(text)
		if ok && (line.Bold || line.FontSize >= headerFontSize) {
			flush()
			current = tag
			content = nil
			continue
		}

		if current != "" {
			content = append(content, text)
		}
	}
	flush()

	return sections
}
