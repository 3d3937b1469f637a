package skills

import "sort"

// Frequency thresholds, as a percentage of a role's postings, that decide
// gap priority.
const (
	highPriorityPct   = 60.0
	mediumPriorityPct = 30.0
)

// quickWinMinFrequency is the minimum number of postings mentioning a skill
// for it to count as a quick win.
const quickWinMinFrequency = 3

// toolKeywords mark tools and methodologies that are fast to pick up.
var toolKeywords = []string{
	"git", "jira", "docker", "jenkins", "postman",
	"figma", "slack", "confluence", "tableau", "excel",
	"cicd", "agile", "scrum",
}

// complexKeywords mark languages, major frameworks, and infrastructure
// skills that take months to learn.
var complexKeywords = []string{
	"java", "c++", "scala", "rust", "go", "ruby",
	"spring", "django", "angular", "vue",
	"kubernetes", "terraform", "amazon web services", "azure", "google cloud platform",
	"machine learning", "deep learning", "data science",
	"microservices", "distributed systems",
}

// PrioritizedSkill is one missing skill ranked by market demand.
type PrioritizedSkill struct {
	Skill        string
	Priority     string
	FrequencyPct float64
}

// Prioritizer classifies and ranks missing skills given frequency
// statistics over a set of postings.
type Prioritizer struct {
	norm *Normalizer
}

// NewPrioritizer creates a Prioritizer over the given normalizer. A nil
// normalizer uses the default alias table.
func NewPrioritizer(norm *Normalizer) *Prioritizer {
	if norm == nil {
		norm = NewNormalizer(nil)
	}
	return &Prioritizer{norm: norm}
}

// Normalize exposes the prioritizer's normalizer.
func (p *Prioritizer) Normalize(skill string) string {
	return p.norm.Normalize(skill)
}

// PrioritizeMissing ranks missing skills by how often the role's postings
// mention them. Priority is high at >=60% of postings, medium at >=30%,
// low otherwise; output is sorted by frequency descending.
func (p *Prioritizer) PrioritizeMissing(missing []string, frequency map[string]int, totalJobs int) []PrioritizedSkill {
	prioritized := make([]PrioritizedSkill, 0, len(missing))

	for _, skill := range missing {
		freq := frequency[p.norm.Normalize(skill)]
		freqPct := 0.0
		if totalJobs > 0 {
			freqPct = float64(freq) / float64(totalJobs) * 100
		}

		priority := "low"
		switch {
		case freqPct >= highPriorityPct:
			priority = "high"
		case freqPct >= mediumPriorityPct:
			priority = "medium"
		}

		prioritized = append(prioritized, PrioritizedSkill{
			Skill:        skill,
			Priority:     priority,
			FrequencyPct: freqPct,
		})
	}

	sort.SliceStable(prioritized, func(i, j int) bool {
		return prioritized[i].FrequencyPct > prioritized[j].FrequencyPct
	})

	return prioritized
}

// QuickWins returns missing skills that are both frequently required and
// tool/methodology shaped, i.e. fast to learn for high impact.
func (p *Prioritizer) QuickWins(missing []string, frequency map[string]int) []string {
	var wins []string
	for _, skill := range missing {
		norm := p.norm.Normalize(skill)
		if frequency[norm] >= quickWinMinFrequency && containsAny(norm, toolKeywords) {
			wins = append(wins, skill)
		}
	}
	return wins
}

// LongTermGoals returns missing skills that are complex, time-intensive
// technologies: languages, major frameworks, infrastructure, ML.
func (p *Prioritizer) LongTermGoals(missing []string) []string {
	var goals []string
	for _, skill := range missing {
		if containsAny(p.norm.Normalize(skill), complexKeywords) {
			goals = append(goals, skill)
		}
	}
	return goals
}

// EstimateLearningTime returns a rough time-to-learn estimate based on the
// kind of skill, falling back to a priority-based default.
func (p *Prioritizer) EstimateLearningTime(skill, priority string) string {
	norm := p.norm.Normalize(skill)

	switch {
	case containsAny(norm, []string{"git", "jira", "docker", "agile", "scrum"}):
		return "1-2 weeks"
	case containsAny(norm, []string{"react", "vue", "angular", "django", "flask"}):
		return "1-2 months"
	case containsAny(norm, []string{"java", "python", "javascript", "c++", "go"}):
		return "2-4 months"
	case containsAny(norm, []string{"kubernetes", "amazon web services", "machine learning", "deep learning"}):
		return "3-6 months"
	}

	switch priority {
	case "high":
		return "2-3 months"
	case "medium":
		return "1-2 months"
	default:
		return "2-4 weeks"
	}
}
