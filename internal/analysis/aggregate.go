package analysis

import "github.com/Rishabhsingh11/Ascend/internal/types"

// Cross-role list caps.
const (
	maxCommonGaps    = 10
	maxQuickWins     = 8
	maxLongTermGoals = 8
	maxNicheSkills   = 10
)

// commonGaps returns skills missing in every analyzed role, in first-seen
// casing and order.
func (a *Analyzer) commonGaps(roleAnalyses []types.RoleSkillAnalysis) []string {
	if len(roleAnalyses) == 0 {
		return nil
	}

	common := a.missingSet(roleAnalyses[0])
	for _, analysis := range roleAnalyses[1:] {
		next := a.missingSet(analysis)
		for norm := range common {
			if !next[norm] {
				delete(common, norm)
			}
		}
	}

	var gaps []string
	seen := make(map[string]bool)
	for _, analysis := range roleAnalyses {
		for _, gap := range analysis.MissingSkills {
			if len(gaps) == maxCommonGaps {
				return gaps
			}
			if common[a.matcher.Normalize(gap.SkillName)] && !seen[gap.SkillName] {
				seen[gap.SkillName] = true
				gaps = append(gaps, gap.SkillName)
			}
		}
	}
	return gaps
}

func (a *Analyzer) missingSet(analysis types.RoleSkillAnalysis) map[string]bool {
	set := make(map[string]bool, len(analysis.MissingSkills))
	for _, gap := range analysis.MissingSkills {
		set[a.matcher.Normalize(gap.SkillName)] = true
	}
	return set
}

// quickWins returns missing skills across all roles that are fast to pick
// up and in real demand, capped and deduplicated in first-seen order.
func (a *Analyzer) quickWins(roleAnalyses []types.RoleSkillAnalysis) []string {
	allMissing, frequency := a.pooledMissing(roleAnalyses)
	return dedupeCapped(a.prioritizer.QuickWins(allMissing, frequency), maxQuickWins)
}

// longTermGoals returns missing skills that represent multi-month
// investments, capped and deduplicated in first-seen order.
func (a *Analyzer) longTermGoals(roleAnalyses []types.RoleSkillAnalysis) []string {
	allMissing, _ := a.pooledMissing(roleAnalyses)
	return dedupeCapped(a.prioritizer.LongTermGoals(allMissing), maxLongTermGoals)
}

// pooledMissing flattens every role's gaps into one list plus a combined
// normalized frequency table.
func (a *Analyzer) pooledMissing(roleAnalyses []types.RoleSkillAnalysis) ([]string, map[string]int) {
	var allMissing []string
	frequency := make(map[string]int)

	for _, analysis := range roleAnalyses {
		for _, gap := range analysis.MissingSkills {
			allMissing = append(allMissing, gap.SkillName)
			frequency[a.matcher.Normalize(gap.SkillName)] += gap.FoundInJobsCount
		}
	}
	return allMissing, frequency
}

// nicheSkills returns skills missing in exactly one analyzed role. With
// fewer than two roles there is nothing to contrast against.
func (a *Analyzer) nicheSkills(roleAnalyses []types.RoleSkillAnalysis) []string {
	if len(roleAnalyses) < 2 {
		return nil
	}

	roleCount := make(map[string]int)
	firstCasing := make(map[string]string)
	var order []string

	for _, analysis := range roleAnalyses {
		perRole := make(map[string]bool)
		for _, gap := range analysis.MissingSkills {
			norm := a.matcher.Normalize(gap.SkillName)
			if perRole[norm] {
				continue
			}
			perRole[norm] = true
			roleCount[norm]++
			if _, ok := firstCasing[norm]; !ok {
				firstCasing[norm] = gap.SkillName
				order = append(order, norm)
			}
		}
	}

	var niche []string
	for _, norm := range order {
		if len(niche) == maxNicheSkills {
			break
		}
		if roleCount[norm] == 1 {
			niche = append(niche, firstCasing[norm])
		}
	}
	return niche
}

func dedupeCapped(values []string, limit int) []string {
	var out []string
	seen := make(map[string]bool)
	for _, v := range values {
		if len(out) == limit {
			break
		}
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
