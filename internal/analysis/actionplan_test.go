package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildActionPlans(t *testing.T) {
	commonGaps := []string{"Docker", "Kubernetes", "Terraform"}
	quickWins := []string{"Git", "Jira", "Postman", "Tableau", "Excel"}
	longTerm := []string{"Machine Learning", "Rust"}

	immediate, oneMonth, threeMonth, sixMonth := BuildActionPlans(commonGaps, quickWins, longTerm)

	assert.Equal(t, []string{
		"Start learning Git (quick win)",
		"Start learning Jira (quick win)",
		"Start learning Postman (quick win)",
		"Research Docker fundamentals",
		"Update resume with recent projects highlighting existing skills",
	}, immediate)

	assert.Equal(t, []string{
		"Complete Tableau tutorial/certification",
		"Complete Excel tutorial/certification",
		"Begin structured course on Kubernetes",
		"Build small project using newly learned skills",
	}, oneMonth)

	assert.Equal(t, []string{
		"Achieve proficiency in Docker",
		"Achieve proficiency in Kubernetes",
		"Start learning Machine Learning (long-term goal)",
		"Contribute to open-source projects showcasing new skills",
		"Apply to 2-3 stretch roles to gauge market response",
	}, threeMonth)

	assert.Equal(t, []string{
		"Develop intermediate skills in Machine Learning",
		"Develop intermediate skills in Rust",
		"Complete comprehensive portfolio project",
		"Network with professionals in target roles",
		"Apply to target positions with confidence",
	}, sixMonth)
}

func TestBuildActionPlansEmptyInputs(t *testing.T) {
	immediate, oneMonth, threeMonth, sixMonth := BuildActionPlans(nil, nil, nil)

	// Even with nothing to learn, the generic steps remain.
	assert.Equal(t, []string{"Update resume with recent projects highlighting existing skills"}, immediate)
	assert.Equal(t, []string{"Build small project using newly learned skills"}, oneMonth)
	assert.Equal(t, []string{
		"Contribute to open-source projects showcasing new skills",
		"Apply to 2-3 stretch roles to gauge market response",
	}, threeMonth)
	assert.Equal(t, []string{
		"Complete comprehensive portfolio project",
		"Network with professionals in target roles",
		"Apply to target positions with confidence",
	}, sixMonth)
}

func TestBuildActionPlansDeterministic(t *testing.T) {
	gaps := []string{"Docker"}
	wins := []string{"Git"}
	long := []string{"Rust"}

	i1, o1, t1, s1 := BuildActionPlans(gaps, wins, long)
	i2, o2, t2, s2 := BuildActionPlans(gaps, wins, long)

	assert.Equal(t, i1, i2)
	assert.Equal(t, o1, o2)
	assert.Equal(t, t1, t2)
	assert.Equal(t, s1, s2)
}
