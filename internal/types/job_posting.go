//nolint:revive // types is a standard Go package name pattern
package types

// JobPosting is one externally sourced job listing. RequiredSkills starts
// empty and is populated exactly once by skill extraction; callers receive a
// new value rather than having their posting mutated in place.
type JobPosting struct {
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
	URL            string   `json:"url,omitempty"`
	Salary         string   `json:"salary,omitempty"`
	PostedDate     string   `json:"posted_date,omitempty"`
	Source         string   `json:"source"` // adzuna, jooble, jsearch, ...
}

// WithSkills returns a copy of the posting with RequiredSkills set.
func (p JobPosting) WithSkills(skills []string) JobPosting {
	p.RequiredSkills = skills
	return p
}
