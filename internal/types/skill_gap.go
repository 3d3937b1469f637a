//nolint:revive // types is a standard Go package name pattern
package types

// Skill gap priorities. Priority is a deterministic function of how many of
// a role's postings mention the skill.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// SkillGap describes a single skill the candidate is missing, with market
// demand context and learning guidance.
type SkillGap struct {
	SkillName             string   `json:"skill_name"`
	Category              string   `json:"category"`
	FoundInJobsCount      int      `json:"found_in_jobs_count"`
	Priority              string   `json:"priority"` // high, medium, low
	LearningResources     []string `json:"learning_resources"`
	EstimatedLearningTime string   `json:"estimated_learning_time"`
}

// RoleSkillAnalysis is the full skill-gap report for one target role.
type RoleSkillAnalysis struct {
	JobRole            string     `json:"job_role"`
	JobsAnalyzed       int        `json:"jobs_analyzed"`
	MatchedSkills      []string   `json:"matched_skills"`
	MissingSkills      []SkillGap `json:"missing_skills"`
	EmergingSkills     []string   `json:"emerging_skills"`
	MatchPercentage    float64    `json:"match_percentage"`    // 0-100
	SkillCoverageScore float64    `json:"skill_coverage_score"` // 0-10
	TopSkillsToLearn   []string   `json:"top_skills_to_learn"`  // at most 5
	EstimatedReadiness string     `json:"estimated_readiness"`
}

// SkillGapAnalysis is the portfolio-level report across all analyzed roles.
// It is a pure value object; nothing mutates it after Analyze returns it.
type SkillGapAnalysis struct {
	RoleAnalyses    []RoleSkillAnalysis `json:"role_analyses"`
	CommonGaps      []string            `json:"common_gaps"`      // at most 10
	QuickWins       []string            `json:"quick_wins"`       // at most 8
	LongTermGoals   []string            `json:"long_term_goals"`  // at most 8
	NicheSkills     []string            `json:"niche_skills"`     // at most 10
	TrendingSkills  []string            `json:"trending_skills"`  // at most 5
	DecliningSkills []string            `json:"declining_skills"` // at most 5

	ImmediateActions []string `json:"immediate_actions"`
	OneMonthPlan     []string `json:"one_month_plan"`
	ThreeMonthPlan   []string `json:"three_month_plan"`
	SixMonthPlan     []string `json:"six_month_plan"`

	OverallMarketReadiness float64 `json:"overall_market_readiness"` // 0-100
	TotalJobsAnalyzed      int     `json:"total_jobs_analyzed"`
	AnalysisDate           string  `json:"analysis_date"` // YYYY-MM-DD
}
