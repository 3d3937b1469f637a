package resume

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/Rishabhsingh11/Ascend/internal/layout"
	"github.com/Rishabhsingh11/Ascend/internal/types"
)

// Header region assumptions: contact details live in the first few lines.
const (
	contactRegionLines = 10
	nameRegionLines    = 5
	nameMinFontSize    = 11
)

var (
	emailRe    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe    = regexp.MustCompile(`[+(]?[1-9][0-9 .\-()]{8,}[0-9]`)
	linkedinRe = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9_-]+`)
	stateRe    = regexp.MustCompile(`\b[A-Z]{2}\b`)
)

// extractContactInfo scans the header region for contact details. Every
// field is best-effort; absence is success, not failure.
func extractContactInfo(lines []layout.Line) types.ContactInfo {
	header := lines
	if len(header) > contactRegionLines {
		header = header[:contactRegionLines]
	}

	parts := make([]string, 0, len(header))
	for _, line := range header {
		parts = append(parts, line.Text)
	}
	headerText := strings.Join(parts, " ")

	info := types.ContactInfo{
		Email:    emailRe.FindString(headerText),
		Phone:    strings.TrimSpace(phoneRe.FindString(headerText)),
		LinkedIn: extractLinkedIn(headerText),
	}

	nameRegion := header
	if len(nameRegion) > nameRegionLines {
		nameRegion = nameRegion[:nameRegionLines]
	}

	for _, line := range nameRegion {
		if line.Text == "" || emailRe.MatchString(line.Text) {
			continue
		}
		if line.Bold || line.FontSize >= nameMinFontSize || isUpper(line.Text) {
			// Drop anything after a pipe (phone, links, etc.).
			info.Name = strings.TrimSpace(strings.SplitN(line.Text, "|", 2)[0])
			break
		}
	}

	for _, line := range nameRegion {
		text := line.Text
		if strings.Contains(text, "|") && (stateRe.MatchString(text) || strings.Contains(text, "City")) {
			info.Location = strings.TrimSpace(strings.SplitN(text, "|", 2)[0])
			break
		}
	}

	return info
}

// extractLinkedIn finds a LinkedIn profile URL, falling back to a
// pipe-delimited fragment that mentions linkedin.
func extractLinkedIn(text string) string {
	if match := linkedinRe.FindString(text); match != "" {
		return match
	}

	if strings.Contains(strings.ToLower(text), "linkedin") {
		for _, part := range strings.Split(text, "|") {
			trimmed := strings.TrimSpace(part)
			if strings.Contains(strings.ToLower(trimmed), "linkedin") && len(trimmed) > 8 {
				return trimmed
			}
		}
	}

	return ""
}

// isUpper reports whether the text has at least one letter and every letter
// is upper-case.
func isUpper(text string) bool {
	hasLetter := false
	for _, r := range text {
		if unicode.IsLetter(r) {
			if !unicode.IsUpper(r) {
				return false
			}
			hasLetter = true
		}
	}
	return hasLetter
}
