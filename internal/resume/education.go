package resume

import (
	"regexp"
	"strings"

	"github.com/Rishabhsingh11/Ascend/internal/types"
)

var yearRe = regexp.MustCompile(`\b\d{4}\b`)

// parseEducationSection parses education entries in two observed layouts:
//
//	(a) "Degree in Field | Institution - Location  2019 - 2023"
//	(b) "Institution - Location  2019 - 2023" followed by "Degree, Field"
//
// Entries without both institution and degree are dropped.
func parseEducationSection(lines []string) []types.Education {
	var educations []types.Education

	i := 0
	for i < len(lines) {
		line := normalizeText(strings.TrimSpace(lines[i]))
		if line == "" {
			i++
			continue
		}

		// Variant (a): single pipe-delimited line with a year.
		if strings.Contains(line, "|") && yearRe.MatchString(line) {
			parts := strings.SplitN(line, "|", 2)
			degree, field := splitDegreeAndField(strings.TrimSpace(parts[0]))
			institutionPart := strings.TrimSpace(parts[1])

			institution := institutionPart
			if idx := strings.Index(institutionPart, " - "); idx >= 0 {
				institution = strings.TrimSpace(institutionPart[:idx])
			}

			gradYear := lastYear(institutionPart)

			if institution != "" && degree != "" {
				educations = append(educations, types.Education{
					Institution:    institution,
					Degree:         degree,
					Field:          field,
					GraduationYear: gradYear,
				})
			}
			i++
			continue
		}

		// Variant (b): institution line with a dash and year, degree on the
		// following line.
		if strings.Contains(line, " - ") && yearRe.MatchString(line) {
			idx := strings.Index(line, " - ")
			institution := strings.TrimSpace(line[:idx])
			gradYear := lastYear(line[idx:])

			i++
			degree, field := "", ""
			if i < len(lines) {
				next := normalizeText(strings.TrimSpace(lines[i]))
				// A bulleted or date-bearing next line is another entry, not
				// a degree; leave it for the next iteration.
				if !isBulletLine(next) && !yearRe.MatchString(next) {
					degree, field = splitDegreeAndField(next)
					i++
				}
			}

			if institution != "" && degree != "" {
				educations = append(educations, types.Education{
					Institution:    institution,
					Degree:         degree,
					Field:          field,
					GraduationYear: gradYear,
				})
			}
			continue
		}

		i++
	}

	return educations
}

// splitDegreeAndField separates "Degree in Field" or "Degree, Field".
func splitDegreeAndField(text string) (degree, field string) {
	if idx := strings.Index(text, " in "); idx >= 0 {
		return strings.TrimSpace(text[:idx]), strings.TrimSpace(text[idx+len(" in "):])
	}
	if idx := strings.Index(text, ","); idx >= 0 {
		return strings.TrimSpace(text[:idx]), strings.TrimSpace(text[idx+1:])
	}
	return text, ""
}

// lastYear returns the last 4-digit token in the text, or "".
func lastYear(text string) string {
	years := yearRe.FindAllString(text, -1)
	if len(years) == 0 {
		return ""
	}
	return years[len(years)-1]
}
