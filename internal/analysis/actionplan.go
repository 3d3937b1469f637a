package analysis

import "fmt"

// BuildActionPlans turns the cross-role gap lists into four time-horizon
// plans. The output is deterministic: same inputs, same plans.
func BuildActionPlans(commonGaps, quickWins, longTerm []string) (immediate, oneMonth, threeMonth, sixMonth []string) {
	for _, skill := range head(quickWins, 3) {
		immediate = append(immediate, fmt.Sprintf("Start learning %s (quick win)", skill))
	}
	if len(commonGaps) > 0 {
		immediate = append(immediate, fmt.Sprintf("Research %s fundamentals", commonGaps[0]))
	}
	immediate = append(immediate, "Update resume with recent projects highlighting existing skills")

	for _, skill := range slice(quickWins, 3, 6) {
		oneMonth = append(oneMonth, fmt.Sprintf("Complete %s tutorial/certification", skill))
	}
	if len(commonGaps) > 1 {
		oneMonth = append(oneMonth, fmt.Sprintf("Begin structured course on %s", commonGaps[1]))
	}
	oneMonth = append(oneMonth, "Build small project using newly learned skills")

	for _, skill := range head(commonGaps, 2) {
		threeMonth = append(threeMonth, fmt.Sprintf("Achieve proficiency in %s", skill))
	}
	if len(longTerm) > 0 {
		threeMonth = append(threeMonth, fmt.Sprintf("Start learning %s (long-term goal)", longTerm[0]))
	}
	threeMonth = append(threeMonth,
		"Contribute to open-source projects showcasing new skills",
		"Apply to 2-3 stretch roles to gauge market response",
	)

	for _, skill := range head(longTerm, 2) {
		sixMonth = append(sixMonth, fmt.Sprintf("Develop intermediate skills in %s", skill))
	}
	sixMonth = append(sixMonth,
		"Complete comprehensive portfolio project",
		"Network with professionals in target roles",
		"Apply to target positions with confidence",
	)

	return immediate, oneMonth, threeMonth, sixMonth
}

func head(values []string, n int) []string {
	if len(values) < n {
		n = len(values)
	}
	return values[:n]
}

func slice(values []string, from, to int) []string {
	if from > len(values) {
		from = len(values)
	}
	if to > len(values) {
		to = len(values)
	}
	return values[from:to]
}
