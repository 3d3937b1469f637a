package skills

import "strings"

// Matcher fuzzily compares skill strings after normalization.
//
// The substring rule (one normalized form contained in the other, both
// longer than MinSubstringLen) deliberately tolerates specificity
// differences like "react" vs "react native". It can over-match; the
// thresholds are exported so callers can tighten them without changing the
// default behavior.
type Matcher struct {
	// SimilarityThreshold is the minimum sequence-similarity ratio for a
	// fuzzy match. Defaults to 0.85.
	SimilarityThreshold float64
	// MinSubstringLen is the minimum normalized length, exclusive, for the
	// substring containment rule to apply. Defaults to 3.
	MinSubstringLen int

	norm *Normalizer
}

// NewMatcher creates a Matcher with default thresholds over the given
// normalizer. A nil normalizer uses the default alias table.
func NewMatcher(norm *Normalizer) *Matcher {
	if norm == nil {
		norm = NewNormalizer(nil)
	}
	return &Matcher{
		SimilarityThreshold: 0.85,
		MinSubstringLen:     3,
		norm:                norm,
	}
}

// Normalize exposes the matcher's normalizer.
func (m *Matcher) Normalize(skill string) string {
	return m.norm.Normalize(skill)
}

// SkillsMatch reports whether two skills refer to the same capability:
// equal after normalization, sequence-similar above the threshold, or one
// contained in the other with both long enough.
func (m *Matcher) SkillsMatch(a, b string) bool {
	na := m.norm.Normalize(a)
	nb := m.norm.Normalize(b)

	if na == nb {
		return true
	}

	if similarityRatio(na, nb) >= m.SimilarityThreshold {
		return true
	}

	if len(na) > m.MinSubstringLen && len(nb) > m.MinSubstringLen {
		if strings.Contains(na, nb) || strings.Contains(nb, na) {
			return true
		}
	}

	return false
}

// FindMatchingSkills compares resume skills against a job's required skills.
// For each job skill, the first resume skill that matches is recorded with
// its original resume casing; unmatched job skills are recorded as missing
// with their original job casing. Both lists are deduplicated preserving
// first-seen order, so matched and missing are disjoint under normalization.
func (m *Matcher) FindMatchingSkills(resumeSkills, jobSkills []string) (matched, missing []string) {
	seenMatched := make(map[string]bool)
	seenMissing := make(map[string]bool)

	for _, jobSkill := range jobSkills {
		found := ""
		for _, resumeSkill := range resumeSkills {
			if m.SkillsMatch(jobSkill, resumeSkill) {
				found = resumeSkill
				break
			}
		}

		if found != "" {
			if key := m.norm.Normalize(found); !seenMatched[key] {
				seenMatched[key] = true
				matched = append(matched, found)
			}
		} else if key := m.norm.Normalize(jobSkill); !seenMissing[key] {
			seenMissing[key] = true
			missing = append(missing, jobSkill)
		}
	}

	return matched, missing
}

// MatchPercentage returns matched/totalRequired as a percentage capped at
// 100. A role with zero required skills is a 100% match by definition.
func MatchPercentage(matchedCount, totalRequired int) float64 {
	if totalRequired == 0 {
		return 100.0
	}
	pct := float64(matchedCount) / float64(totalRequired) * 100
	if pct > 100 {
		return 100.0
	}
	return pct
}

// similarityRatio computes a difflib-style sequence similarity ratio:
// 2*M/T where M is the total length of matching blocks and T the combined
// length of both strings.
func similarityRatio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	m := matchingTotal(a, b)
	return 2 * float64(m) / float64(len(a)+len(b))
}

// matchingTotal sums the sizes of matching blocks found by recursively
// splitting around the longest common substring.
func matchingTotal(a, b string) int {
	ai, bi, size := longestMatch(a, b)
	if size == 0 {
		return 0
	}
	return size +
		matchingTotal(a[:ai], b[:bi]) +
		matchingTotal(a[ai+size:], b[bi+size:])
}

func longestMatch(a, b string) (bestA, bestB, bestSize int) {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > bestSize {
					bestSize = cur[j]
					bestA = i - cur[j]
					bestB = j - cur[j]
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
	}

	return bestA, bestB, bestSize
}
