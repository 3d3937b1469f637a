package skills

import "strings"

// Vocabulary is the controlled set of skill terms the extractor recognizes,
// split into technical and soft skills. It is immutable after construction.
type Vocabulary struct {
	Technical map[string]bool
	Soft      map[string]bool
}

// DefaultVocabulary returns the built-in skill vocabulary covering
// languages, frameworks, databases, cloud/devops tooling, AI/ML terms, and
// workplace methodologies.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		Technical: toSet([]string{
			// Programming languages
			"python", "java", "javascript", "typescript", "c++", "c#", "ruby",
			"php", "swift", "kotlin", "go", "rust", "scala", "r", "matlab",

			// Frameworks
			"react", "angular", "vue", "django", "flask", "spring", "laravel",
			"express", "fastapi", "next.js", "nuxt.js", ".net", "asp.net",

			// Databases
			"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch",
			"oracle", "sql server", "dynamodb", "cassandra", "neo4j",

			// Cloud & DevOps
			"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "gitlab",
			"terraform", "ansible", "ci/cd", "github actions",

			// AI/ML
			"machine learning", "deep learning", "tensorflow", "pytorch",
			"scikit-learn", "keras", "nlp", "computer vision", "llm",

			// Tools
			"git", "jira", "confluence", "figma", "adobe xd", "postman",
			"slack", "tableau", "power bi", "excel", "spark", "hadoop",

			// Methodologies
			"agile", "scrum", "kanban", "devops", "microservices", "rest api",
			"graphql", "oauth", "jwt", "tdd", "bdd",
		}),
		Soft: toSet([]string{
			"leadership", "communication", "teamwork", "problem solving",
			"critical thinking", "time management", "adaptability",
			"creativity", "collaboration", "mentoring", "presentation skills",
		}),
	}
}

// Contains reports whether the term is in either vocabulary set.
// The term is expected to be lowercase.
func (v *Vocabulary) Contains(term string) bool {
	return v.Technical[term] || v.Soft[term]
}

// Terms returns all vocabulary terms, technical and soft.
func (v *Vocabulary) Terms() []string {
	terms := make([]string, 0, len(v.Technical)+len(v.Soft))
	for t := range v.Technical {
		terms = append(terms, t)
	}
	for t := range v.Soft {
		terms = append(terms, t)
	}
	return terms
}

// Categorize buckets a skill as language, framework, database, cloud,
// technical, soft, or other.
func (v *Vocabulary) Categorize(skill string) string {
	lower := strings.ToLower(skill)

	switch {
	case v.Soft[lower]:
		return "soft"
	case v.Technical[lower]:
		switch {
		case containsAny(lower, []string{"python", "java", "javascript", "c++"}):
			return "language"
		case containsAny(lower, []string{"react", "django", "spring"}):
			return "framework"
		case containsAny(lower, []string{"sql", "mongodb", "redis"}):
			return "database"
		case containsAny(lower, []string{"aws", "azure", "docker"}):
			return "cloud"
		default:
			return "technical"
		}
	default:
		return "other"
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func toSet(terms []string) map[string]bool {
	set := make(map[string]bool, len(terms))
	for _, t := range terms {
		set[t] = true
	}
	return set
}
