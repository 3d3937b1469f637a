package skills

import "sort"

// Caps on the trend lists.
const (
	maxTrending  = 5
	maxDeclining = 5
)

// trendingMinMentions is the minimum number of postings mentioning a skill
// for it to count as trending.
const trendingMinMentions = 5

// obsoleteSkills lists technologies treated as declining regardless of
// posting frequency.
var obsoleteSkills = map[string]bool{
	"jquery":       true,
	"flash":        true,
	"silverlight":  true,
	"visual basic": true,
	"perl":         true,
	"xml":          true,
	"soap":         true,
	"jsp":          true,
	"struts":       true,
}

// SkillTrends identifies trending and declining skills from the full set of
// posting skills versus the resume.
//
// Trending skills are in high demand (mentioned by at least five postings)
// and absent from the resume; they are returned in first-encountered
// original casing, most demanded first, capped to five. Declining skills
// are resume skills that are either on the obsolete-technology list or
// never mentioned by any fetched posting, capped to five.
func SkillTrends(norm *Normalizer, allJobSkills, resumeSkills []string) (trending, declining []string) {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)  // normalized -> index of first mention
	original := make(map[string]string) // normalized -> first original casing

	for i, skill := range allJobSkills {
		n := norm.Normalize(skill)
		counts[n]++
		if _, ok := firstSeen[n]; !ok {
			firstSeen[n] = i
			original[n] = skill
		}
	}

	resumeNorm := make(map[string]bool, len(resumeSkills))
	for _, skill := range resumeSkills {
		resumeNorm[norm.Normalize(skill)] = true
	}

	candidates := make([]string, 0, len(counts))
	for n, c := range counts {
		if c >= trendingMinMentions && !resumeNorm[n] {
			candidates = append(candidates, n)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if counts[candidates[i]] != counts[candidates[j]] {
			return counts[candidates[i]] > counts[candidates[j]]
		}
		return firstSeen[candidates[i]] < firstSeen[candidates[j]]
	})
	for _, n := range candidates {
		if len(trending) == maxTrending {
			break
		}
		trending = append(trending, original[n])
	}

	for _, skill := range resumeSkills {
		if len(declining) == maxDeclining {
			break
		}
		n := norm.Normalize(skill)
		if obsoleteSkills[n] || counts[n] == 0 {
			declining = append(declining, skill)
		}
	}

	return trending, declining
}
