package resume

import (
	"strings"

	"github.com/Rishabhsingh11/Ascend/internal/layout"
	"github.com/Rishabhsingh11/Ascend/internal/types"
)

// Parse builds a ParsedResume from positioned glyphs, one slice per page.
// Parsing is best effort: sections that cannot be recognized are left empty
// rather than failing the document.
func Parse(pages [][]layout.Glyph) *types.ParsedResume {
	lines := layout.ExtractLines(pages)
	return ParseLines(lines)
}

// ParseLines builds a ParsedResume from already-assembled lines.
func ParseLines(lines []layout.Line) *types.ParsedResume {
	contact := extractContactInfo(lines)
	sections := segmentSections(lines)

	parsed := &types.ParsedResume{
		ContactInfo: contact,
		Skills:      parseSkillsSection(sections[sectionSkills]),
		Experience:  parseExperienceSection(sections[sectionExperience]),
		Education:   parseEducationSection(sections[sectionEducation]),
		Projects:    parseProjectsSection(sections[sectionProjects]),
	}

	for _, line := range sections[sectionCertifications] {
		cert := normalizeText(strings.TrimSpace(line))
		if cert != "" {
			parsed.Certifications = append(parsed.Certifications, stripBullet(cert))
		}
	}

	if summary, ok := sections[sectionSummary]; ok {
		var parts []string
		for _, line := range summary {
			if s := normalizeText(strings.TrimSpace(line)); s != "" {
				parts = append(parts, s)
			}
		}
		parsed.Summary = strings.Join(parts, " ")
	}

	return parsed
}
