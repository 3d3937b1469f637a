package resume

import "strings"

// parseProjectsSection groups project lines into entries. A pipe-delimited
// line that is not a bullet starts a new project; following lines are folded
// into it.
func parseProjectsSection(lines []string) []string {
	var projects []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			projects = append(projects, strings.Join(current, " "))
			current = nil
		}
	}

	for _, raw := range lines {
		line := normalizeText(strings.TrimSpace(raw))
		if line == "" {
			continue
		}
		if strings.Contains(line, "|") && !isBulletLine(line) {
			flush()
		}
		current = append(current, line)
	}
	flush()

	return projects
}
