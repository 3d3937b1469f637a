// Package analysis computes skill-gap reports: per-role gap breakdowns and
// a cross-role summary with market trends and time-horizon action plans.
package analysis

import (
	"context"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Rishabhsingh11/Ascend/internal/skills"
	"github.com/Rishabhsingh11/Ascend/internal/types"
)

// maxRoles bounds how many target roles a single analysis covers.
const maxRoles = 3

// roleKeywordMinLen filters out short title words ("of", "and", "sr") when
// matching postings to roles.
const roleKeywordMinLen = 3

// Analyzer orchestrates a full skill-gap analysis from resume skills, job
// postings, and target roles.
type Analyzer struct {
	extractor   *skills.Extractor
	matcher     *skills.Matcher
	prioritizer *skills.Prioritizer
	norm        *skills.Normalizer
}

// NewAnalyzer wires an analyzer from its skill components. Nil components
// fall back to defaults sharing one alias table.
func NewAnalyzer(extractor *skills.Extractor, matcher *skills.Matcher, prioritizer *skills.Prioritizer, norm *skills.Normalizer) *Analyzer {
	if norm == nil {
		norm = skills.NewNormalizer(nil)
	}
	if extractor == nil {
		extractor = skills.NewExtractor(nil, nil)
	}
	if matcher == nil {
		matcher = skills.NewMatcher(norm)
	}
	if prioritizer == nil {
		prioritizer = skills.NewPrioritizer(norm)
	}
	return &Analyzer{
		extractor:   extractor,
		matcher:     matcher,
		prioritizer: prioritizer,
		norm:        norm,
	}
}

// Analyze runs the full pipeline: enrich postings with extracted skills,
// group them by role, analyze each role, then derive cross-role insights,
// market trends, and action plans. At most the first three roles are
// considered. Input postings are not mutated.
func (a *Analyzer) Analyze(ctx context.Context, resumeSkills []string, postings []types.JobPosting, roles []string) (*types.SkillGapAnalysis, error) {
	if len(roles) > maxRoles {
		roles = roles[:maxRoles]
	}

	enriched, err := a.enrichPostings(ctx, postings)
	if err != nil {
		return nil, err
	}

	jobsByRole := groupJobsByRole(enriched, roles)

	var roleAnalyses []types.RoleSkillAnalysis
	for _, role := range roles {
		roleJobs := jobsByRole[role]
		if len(roleJobs) == 0 {
			log.Printf("skill gap analysis: no postings matched role %q, skipping", role)
			continue
		}
		log.Printf("skill gap analysis: analyzing role %q across %d postings", role, len(roleJobs))
		roleAnalyses = append(roleAnalyses, a.analyzeRole(role, resumeSkills, roleJobs))
	}

	commonGaps := a.commonGaps(roleAnalyses)
	quickWins := a.quickWins(roleAnalyses)
	longTerm := a.longTermGoals(roleAnalyses)

	var allJobSkills []string
	for _, job := range enriched {
		allJobSkills = append(allJobSkills, job.RequiredSkills...)
	}
	trending, declining := skills.SkillTrends(a.norm, allJobSkills, resumeSkills)

	immediate, oneMonth, threeMonth, sixMonth := BuildActionPlans(commonGaps, quickWins, longTerm)

	readiness := 0.0
	if len(roleAnalyses) > 0 {
		total := 0.0
		for _, r := range roleAnalyses {
			total += r.MatchPercentage
		}
		readiness = round1(total / float64(len(roleAnalyses)))
	}

	return &types.SkillGapAnalysis{
		RoleAnalyses:           roleAnalyses,
		CommonGaps:             commonGaps,
		QuickWins:              quickWins,
		LongTermGoals:          longTerm,
		NicheSkills:            a.nicheSkills(roleAnalyses),
		TrendingSkills:         trending,
		DecliningSkills:        declining,
		ImmediateActions:       immediate,
		OneMonthPlan:           oneMonth,
		ThreeMonthPlan:         threeMonth,
		SixMonthPlan:           sixMonth,
		OverallMarketReadiness: readiness,
		TotalJobsAnalyzed:      len(postings),
		AnalysisDate:           time.Now().Format("2006-01-02"),
	}, nil
}

// enrichPostings returns copies of the postings with RequiredSkills
// populated, extracting concurrently while preserving input order.
func (a *Analyzer) enrichPostings(ctx context.Context, postings []types.JobPosting) ([]types.JobPosting, error) {
	enriched := make([]types.JobPosting, len(postings))

	g, ctx := errgroup.WithContext(ctx)
	for i, posting := range postings {
		i, posting := i, posting
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			enriched[i] = a.extractor.EnsurePostingSkills(ctx, posting)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return enriched, nil
}

// groupJobsByRole assigns each posting to the first role sharing a
// meaningful title keyword with it. Unmatched postings stay ungrouped but
// still count toward totals and trends.
func groupJobsByRole(postings []types.JobPosting, roles []string) map[string][]types.JobPosting {
	jobsByRole := make(map[string][]types.JobPosting)

	for _, job := range postings {
		if role := MatchRole(job.Title, roles); role != "" {
			jobsByRole[role] = append(jobsByRole[role], job)
		}
	}
	return jobsByRole
}

// MatchRole returns the first role sharing a meaningful title keyword with
// the posting title, or "" if none does.
func MatchRole(title string, roles []string) string {
	lowerTitle := strings.ToLower(title)
	for _, role := range roles {
		if roleMatchesTitle(role, lowerTitle) {
			return role
		}
	}
	return ""
}

func roleMatchesTitle(role, lowerTitle string) bool {
	for _, keyword := range strings.Fields(strings.ToLower(role)) {
		if len(keyword) > roleKeywordMinLen && strings.Contains(lowerTitle, keyword) {
			return true
		}
	}
	return false
}
