package resume

import "strings"

// parseSkillsSection extracts individual skills from a skills section.
// Lines may carry a "Category: a, b, c" prefix, a comma-separated list, or a
// single bare skill. Single-character tokens are noise and dropped; a bare
// line must be at least three characters to count as a skill. Duplicates are
// dropped, keeping discovery order.
func parseSkillsSection(lines []string) []string {
	var skills []string
	seen := make(map[string]bool)

	add := func(s string) {
		s = strings.TrimSpace(s)
		if len(s) <= 1 {
			return
		}
		key := strings.ToLower(s)
		if seen[key] {
			return
		}
		seen[key] = true
		skills = append(skills, s)
	}

	for _, raw := range lines {
		line := normalizeText(strings.TrimSpace(raw))
		if line == "" {
			continue
		}
		line = stripBullet(line)

		if idx := strings.Index(line, ":"); idx >= 0 {
			line = line[idx+1:]
		}

		if strings.Contains(line, ",") {
			for _, part := range strings.Split(line, ",") {
				add(part)
			}
			continue
		}

		if line = strings.TrimSpace(line); len(line) > 2 {
			add(line)
		}
	}

	return skills
}
