package analysis

import (
	"math"
	"sort"

	"github.com/Rishabhsingh11/Ascend/internal/skills"
	"github.com/Rishabhsingh11/Ascend/internal/types"
)

// emergingSkillPct is the share of a role's postings that must mention a
// skill for it to count as emerging.
const emergingSkillPct = 0.4

// maxEmergingSkills caps the emerging list per role.
const maxEmergingSkills = 5

// maxTopSkillsToLearn caps the per-role learning shortlist.
const maxTopSkillsToLearn = 5

// analyzeRole produces the skill-gap report for a single role from the
// postings assigned to it. Postings must already have RequiredSkills
// populated.
func (a *Analyzer) analyzeRole(role string, resumeSkills []string, roleJobs []types.JobPosting) types.RoleSkillAnalysis {
	frequency := make(map[string]int)
	var normOrder []string

	var uniqueRequired []string
	seen := make(map[string]bool)

	for _, job := range roleJobs {
		for _, skill := range job.RequiredSkills {
			norm := a.matcher.Normalize(skill)
			if frequency[norm] == 0 {
				normOrder = append(normOrder, norm)
			}
			frequency[norm]++
			if !seen[norm] {
				seen[norm] = true
				uniqueRequired = append(uniqueRequired, skill)
			}
		}
	}

	matched, missing := a.matcher.FindMatchingSkills(resumeSkills, uniqueRequired)
	// Score and readiness use the exact percentage; only the reported
	// figure is rounded.
	matchPct := skills.MatchPercentage(len(matched), len(uniqueRequired))

	prioritized := a.prioritizer.PrioritizeMissing(missing, frequency, len(roleJobs))

	gaps := make([]types.SkillGap, 0, len(prioritized))
	for _, p := range prioritized {
		gaps = append(gaps, types.SkillGap{
			SkillName:             p.Skill,
			Category:              a.extractor.Categorize(p.Skill),
			FoundInJobsCount:      frequency[a.matcher.Normalize(p.Skill)],
			Priority:              p.Priority,
			LearningResources:     []string{},
			EstimatedLearningTime: a.prioritizer.EstimateLearningTime(p.Skill, p.Priority),
		})
	}

	return types.RoleSkillAnalysis{
		JobRole:            role,
		JobsAnalyzed:       len(roleJobs),
		MatchedSkills:      matched,
		MissingSkills:      gaps,
		EmergingSkills:     emergingSkills(frequency, normOrder, len(roleJobs)),
		MatchPercentage:    round1(matchPct),
		SkillCoverageScore: coverageScore(matchPct, len(resumeSkills), averageSkillCount(roleJobs)),
		TopSkillsToLearn:   topSkillsToLearn(gaps),
		EstimatedReadiness: estimateReadiness(matchPct),
	}
}

// emergingSkills returns the most frequent normalized skills mentioned by
// at least 40% of the role's postings. Ties keep first-mention order.
func emergingSkills(frequency map[string]int, normOrder []string, totalJobs int) []string {
	order := make(map[string]int, len(normOrder))
	for i, norm := range normOrder {
		order[norm] = i
	}

	candidates := make([]string, len(normOrder))
	copy(candidates, normOrder)
	sort.SliceStable(candidates, func(i, j int) bool {
		if frequency[candidates[i]] != frequency[candidates[j]] {
			return frequency[candidates[i]] > frequency[candidates[j]]
		}
		return order[candidates[i]] < order[candidates[j]]
	})

	threshold := float64(totalJobs) * emergingSkillPct
	var emerging []string
	for _, norm := range candidates {
		if len(emerging) == maxEmergingSkills {
			break
		}
		if float64(frequency[norm]) >= threshold {
			emerging = append(emerging, norm)
		}
	}
	return emerging
}

// topSkillsToLearn picks the gaps to tackle first: high priority before
// medium before low, more postings before fewer.
func topSkillsToLearn(gaps []types.SkillGap) []string {
	ranked := make([]types.SkillGap, len(gaps))
	copy(ranked, gaps)

	sort.SliceStable(ranked, func(i, j int) bool {
		pi, pj := priorityRank(ranked[i].Priority), priorityRank(ranked[j].Priority)
		if pi != pj {
			return pi < pj
		}
		return ranked[i].FoundInJobsCount > ranked[j].FoundInJobsCount
	})

	n := len(ranked)
	if n > maxTopSkillsToLearn {
		n = maxTopSkillsToLearn
	}
	top := make([]string, 0, n)
	for _, gap := range ranked[:n] {
		top = append(top, gap.SkillName)
	}
	return top
}

func priorityRank(priority string) int {
	switch priority {
	case types.PriorityHigh:
		return 0
	case types.PriorityMedium:
		return 1
	default:
		return 2
	}
}

// coverageScore rates overall skill coverage on a 0-10 scale: up to 7
// points for match percentage, up to 3 breadth bonus points, plus 1
// excellence point at 90%+, capped at 10.
func coverageScore(matchPct float64, resumeSkillCount int, avgJobSkillCount float64) float64 {
	base := matchPct / 100 * 7

	breadthRatio := 1.0
	if avgJobSkillCount > 0 {
		breadthRatio = math.Min(float64(resumeSkillCount)/avgJobSkillCount, 1.5)
	}
	breadthBonus := breadthRatio * 2

	excellenceBonus := 0.0
	if matchPct >= 90 {
		excellenceBonus = 1
	}

	return math.Min(round1(base+breadthBonus+excellenceBonus), 10.0)
}

func averageSkillCount(jobs []types.JobPosting) float64 {
	if len(jobs) == 0 {
		return 0
	}
	total := 0
	for _, job := range jobs {
		total += len(job.RequiredSkills)
	}
	return float64(total) / float64(len(jobs))
}

// estimateReadiness buckets a match percentage into a time-to-ready label.
func estimateReadiness(matchPct float64) string {
	switch {
	case matchPct >= 80:
		return "Ready now"
	case matchPct >= 60:
		return "1-2 months"
	case matchPct >= 40:
		return "3-4 months"
	default:
		return "6+ months"
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
