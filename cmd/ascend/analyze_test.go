package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rishabhsingh11/Ascend/internal/config"
	"github.com/Rishabhsingh11/Ascend/internal/types"
)

func TestSplitRoles(t *testing.T) {
	assert.Equal(t, []string{"Backend Developer", "Data Engineer"},
		splitRoles("Backend Developer, Data Engineer"))
	assert.Equal(t, []string{"DevOps Engineer"}, splitRoles(" DevOps Engineer ,, "))
	assert.Nil(t, splitRoles(""))
}

func TestLoadResumeJSON(t *testing.T) {
	parsed := types.ParsedResume{
		ContactInfo: types.ContactInfo{Name: "Jane Doe"},
		Skills:      []string{"Python", "Go"},
	}
	content, err := json.Marshal(parsed)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(path, content, 0644))

	loaded, err := loadResume(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", loaded.ContactInfo.Name)
	assert.Equal(t, []string{"Python", "Go"}, loaded.Skills)
}

func TestLoadResumeMissingFile(t *testing.T) {
	_, err := loadResume(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadResumeBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	_, err := loadResume(path)
	assert.Error(t, err)
}

func TestResumeText(t *testing.T) {
	parsed := &types.ParsedResume{
		Summary: "Backend engineer",
		Experience: []types.Experience{
			{
				Position:    "Software Engineer",
				Description: []string{"Built services with Python"},
			},
		},
		Projects: []string{"Job Board | Go, Postgres"},
	}

	text := resumeText(parsed)
	assert.Contains(t, text, "Backend engineer")
	assert.Contains(t, text, "Built services with Python")
	assert.Contains(t, text, "Job Board")
}

func TestBuildAggregatorRequiresProviders(t *testing.T) {
	_, err := buildAggregator(config.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no job search providers")
}

func TestBuildAggregatorWithCredentials(t *testing.T) {
	agg, err := buildAggregator(config.Config{
		AdzunaAppID:  "id",
		AdzunaAppKey: "key",
		JoobleAPIKey: "key",
	})
	require.NoError(t, err)
	assert.NotNil(t, agg)
}

func TestFileHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte("same bytes"), 0644))

	first, err := fileHash(path)
	require.NoError(t, err)
	second, err := fileHash(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
}

func TestBuildTaggerDisabledWithoutKey(t *testing.T) {
	tagger, closeTagger, err := buildTagger(context.Background(), config.Config{})
	require.NoError(t, err)
	assert.Nil(t, tagger)
	closeTagger()
}
