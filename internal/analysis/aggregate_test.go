package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Rishabhsingh11/Ascend/internal/types"
)

func roleWithGaps(role string, gaps ...types.SkillGap) types.RoleSkillAnalysis {
	return types.RoleSkillAnalysis{JobRole: role, MissingSkills: gaps}
}

func gap(name string, count int) types.SkillGap {
	return types.SkillGap{SkillName: name, FoundInJobsCount: count}
}

func TestCommonGaps(t *testing.T) {
	a := NewAnalyzer(nil, nil, nil, nil)

	analyses := []types.RoleSkillAnalysis{
		roleWithGaps("Data Engineer", gap("Docker", 4), gap("AWS", 2)),
		roleWithGaps("Backend Developer", gap("Docker", 3), gap("React", 1)),
		roleWithGaps("DevOps Specialist", gap("docker", 5), gap("Terraform", 2)),
	}

	got := a.commonGaps(analyses)

	// Only Docker is missing in all three roles; first-seen casing wins.
	assert.Equal(t, []string{"Docker"}, got)
}

func TestCommonGapsEmptyInput(t *testing.T) {
	a := NewAnalyzer(nil, nil, nil, nil)
	assert.Empty(t, a.commonGaps(nil))
}

func TestQuickWins(t *testing.T) {
	a := NewAnalyzer(nil, nil, nil, nil)

	analyses := []types.RoleSkillAnalysis{
		roleWithGaps("Data Engineer", gap("Docker", 2), gap("Scala", 4)),
		roleWithGaps("Backend Developer", gap("Docker", 2), gap("Jira", 3)),
	}

	got := a.quickWins(analyses)

	// Docker's pooled count is 4, Jira's is 3; both are tool-shaped.
	// Scala is frequent but not a quick win.
	assert.Equal(t, []string{"Docker", "Jira"}, got)
}

func TestLongTermGoals(t *testing.T) {
	a := NewAnalyzer(nil, nil, nil, nil)

	analyses := []types.RoleSkillAnalysis{
		roleWithGaps("Data Engineer", gap("Scala", 4), gap("Jira", 3)),
		roleWithGaps("Backend Developer", gap("Kubernetes", 2), gap("Scala", 1)),
	}

	got := a.longTermGoals(analyses)

	assert.Equal(t, []string{"Scala", "Kubernetes"}, got)
}

func TestNicheSkills(t *testing.T) {
	a := NewAnalyzer(nil, nil, nil, nil)

	analyses := []types.RoleSkillAnalysis{
		roleWithGaps("Data Engineer", gap("Docker", 2), gap("GraphQL", 1)),
		roleWithGaps("Backend Developer", gap("Docker", 3), gap("Terraform", 2)),
	}

	got := a.nicheSkills(analyses)

	assert.ElementsMatch(t, []string{"GraphQL", "Terraform"}, got)
	assert.NotContains(t, got, "Docker")
}

func TestNicheSkillsNeedsTwoRoles(t *testing.T) {
	a := NewAnalyzer(nil, nil, nil, nil)

	analyses := []types.RoleSkillAnalysis{
		roleWithGaps("Data Engineer", gap("GraphQL", 1)),
	}

	assert.Empty(t, a.nicheSkills(analyses))
}

func TestDedupeCapped(t *testing.T) {
	in := []string{"a", "b", "a", "c", "d", "b", "e"}
	assert.Equal(t, []string{"a", "b", "c"}, dedupeCapped(in, 3))
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, dedupeCapped(in, 10))
}
