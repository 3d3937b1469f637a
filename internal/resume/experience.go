package resume

import (
	"regexp"
	"strings"

	"github.com/Rishabhsingh11/Ascend/internal/types"
)

// Experience entry layout variants, detected by structural signature rather
// than a declared type.
type entryVariant int

const (
	variantUnrecognized entryVariant = iota
	// variantCompanyDate: "Company Jan 2020 - Present" line, then a merged
	// "Position Location" line, then bullets.
	variantCompanyDate
	// variantPipe: "Position | Company | Location  Jan 2020 - Present" on a
	// single line, then bullets.
	variantPipe
)

var (
	// dateRangeRe matches "Jan 2020 - Mar 2023" or "Jan 2020 - Present".
	dateRangeRe = regexp.MustCompile(`[A-Z][a-z]{2}\s+\d{4}\s*-\s*(?:[A-Z][a-z]{2}\s+\d{4}|Present)`)
	// dateStartRe marks the beginning of a date range.
	dateStartRe = regexp.MustCompile(`[A-Z][a-z]{2}\s+\d{4}\s*-\s*`)
	// monthYearRe matches a single "Jan 2020"-shaped token.
	monthYearRe = regexp.MustCompile(`[A-Z][a-z]{2}\s+\d{4}`)
	// locationTailRe matches a trailing "City, ST" or "City, Country".
	locationTailRe = regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*,\s*[A-Z]{2}|[A-Z][a-z]+,\s*[A-Z][a-z]+)$`)
)

// classifyEntryStart decides which layout variant a candidate entry-start
// line belongs to. Detection is centralized here so the splitting logic
// stays independent of it.
func classifyEntryStart(line string) entryVariant {
	if strings.Contains(line, "|") && monthYearRe.MatchString(line) {
		return variantPipe
	}
	if dateStartRe.MatchString(line) && !isBulletLine(line) {
		return variantCompanyDate
	}
	return variantUnrecognized
}

// parseExperienceSection parses a section's lines into experience entries.
// An entry is only emitted when both company and position are non-empty.
func parseExperienceSection(lines []string) []types.Experience {
	normalized := make([]string, len(lines))
	for i, line := range lines {
		normalized[i] = normalizeText(strings.TrimSpace(line))
	}

	var experiences []types.Experience
	i := 0
	for i < len(normalized) {
		line := normalized[i]
		if line == "" || isBulletLine(line) {
			i++
			continue
		}

		switch classifyEntryStart(line) {
		case variantPipe:
			exp, next := parsePipeEntry(normalized, i)
			i = next
			if exp != nil {
				experiences = append(experiences, *exp)
			}
		case variantCompanyDate:
			exp, next := parseCompanyDateEntry(normalized, i)
			i = next
			if exp != nil {
				experiences = append(experiences, *exp)
			}
		default:
			i++
		}
	}

	return experiences
}

// parsePipeEntry parses a "Position | Company | Location  Dates" entry
// starting at index i, returning the entry (nil if incomplete) and the
// index of the next unconsumed line.
func parsePipeEntry(lines []string, i int) (*types.Experience, int) {
	parts := strings.Split(lines[i], "|")
	position := strings.TrimSpace(parts[0])
	company := ""
	if len(parts) >= 2 {
		company = strings.TrimSpace(parts[1])
	}

	location, duration := "", ""
	if len(parts) >= 3 {
		locationDate := strings.TrimSpace(parts[2])
		if loc := dateRangeRe.FindStringIndex(locationDate); loc != nil {
			duration = locationDate[loc[0]:loc[1]]
			location = strings.TrimSpace(locationDate[:loc[0]])
		} else {
			location = locationDate
		}
	}

	descriptions, next := collectBullets(lines, i+1, func(line string) bool {
		// A new pipe entry or a blank line ends this entry's bullets.
		return line == "" || (strings.Contains(line, "|") && monthYearRe.MatchString(line))
	})

	if company == "" || position == "" {
		return nil, next
	}

	return &types.Experience{
		Company:     company,
		Position:    position,
		Duration:    duration,
		Location:    location,
		Description: descriptions,
	}, next
}

// parseCompanyDateEntry parses the two-line "Company Dates" / "Position
// Location" form starting at index i.
func parseCompanyDateEntry(lines []string, i int) (*types.Experience, int) {
	company, duration := splitCompanyAndDate(lines[i])

	i++
	position, location := "", ""
	if i < len(lines) && lines[i] != "" && !isBulletLine(lines[i]) {
		position, location = splitPositionAndLocation(lines[i])
		i++
	}

	descriptions, next := collectBullets(lines, i, func(line string) bool {
		return dateStartRe.MatchString(line) && !isBulletLine(line)
	})

	if company == "" || position == "" {
		return nil, next
	}

	return &types.Experience{
		Company:     company,
		Position:    position,
		Duration:    duration,
		Location:    location,
		Description: descriptions,
	}, next
}

// collectBullets gathers bullet lines starting at index i until stop
// reports an entry boundary. Non-bulleted continuation lines are joined
// onto the current bullet with a single space.
func collectBullets(lines []string, i int, stop func(string) bool) ([]string, int) {
	var bullets []string
	current := ""

	for i < len(lines) {
		line := lines[i]
		if stop(line) {
			break
		}

		switch {
		case isBulletLine(line):
			if current != "" {
				bullets = append(bullets, strings.TrimSpace(current))
			}
			current = stripBullet(line)
		case current != "":
			current += " " + line
		}
		i++
	}

	if current != "" {
		bullets = append(bullets, strings.TrimSpace(current))
	}

	return bullets, i
}

// splitCompanyAndDate splits a merged "Company Jan 2020 - Present" line.
func splitCompanyAndDate(line string) (company, duration string) {
	if loc := dateRangeRe.FindStringIndex(line); loc != nil {
		return strings.TrimSpace(line[:loc[0]]), line[loc[0]:loc[1]]
	}
	return line, ""
}

// splitPositionAndLocation splits a merged "Position City, ST" line.
func splitPositionAndLocation(line string) (position, location string) {
	if loc := locationTailRe.FindStringIndex(line); loc != nil {
		return strings.TrimSpace(line[:loc[0]]), line[loc[0]:loc[1]]
	}
	return line, ""
}
