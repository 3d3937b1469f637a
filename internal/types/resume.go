// Package types provides type definitions for structured data used throughout the Ascend system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ContactInfo holds contact details extracted from a resume header.
// Every field is optional; resumes vary too much to require any of them.
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Location string `json:"location,omitempty"`
}

// Experience represents one work history entry. Company and Position are
// always non-empty for an emitted entry; the parser discards blocks where
// it could not recover both.
type Experience struct {
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	Duration    string   `json:"duration"`           // free-text date range, e.g. "Jan 2020 - Present"
	Location    string   `json:"location,omitempty"`
	Description []string `json:"description"`        // ordered bullet points
}

// Education represents one education entry.
type Education struct {
	Institution    string `json:"institution"`
	Degree         string `json:"degree"`
	Field          string `json:"field,omitempty"`
	GraduationYear string `json:"graduation_year,omitempty"` // 4-digit year
}

// ParsedResume is the structured output of document parsing. It is created
// once per document and treated as immutable afterwards.
type ParsedResume struct {
	ContactInfo    ContactInfo  `json:"contact_info"`
	Summary        string       `json:"summary,omitempty"`
	Skills         []string     `json:"skills"` // unique, in discovery order
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	Certifications []string     `json:"certifications"`
	Projects       []string     `json:"projects"`
}
