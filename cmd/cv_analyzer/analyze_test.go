package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-analyzer/internal/analyze"
	"github.com/jonathan/cv-analyzer/internal/types"
)

func TestReadResumeTextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("selenium and python testing"), 0o644))

	text, err := readResume(path)
	require.NoError(t, err)
	assert.Equal(t, "selenium and python testing", text)
}

func TestReadResumeUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.exe")
	require.NoError(t, os.WriteFile(path, []byte("binary"), 0o644))

	_, err := readResume(path)
	var unsupported *analyze.UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
}

func TestReadResumeMissingFile(t *testing.T) {
	_, err := readResume(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestWriteReport(t *testing.T) {
	report := &types.AnalysisReport{
		Role:      types.RoleManualTester,
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		ScoreInfo: types.ScoreInfo{
			Overall:       42.5,
			ByCategory:    map[string]float64{"Testing Fundamentals": 50.0},
			TotalKeywords: 10,
			TotalFound:    4,
		},
		ExperienceYears: 3,
		WordCount:       250,
		Recommendations: []string{"Add more technical detail"},
	}

	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, writeReport(path, report))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var export map[string]any
	require.NoError(t, json.Unmarshal(data, &export))
	assert.Equal(t, "Manual Tester", export["Role"])
	assert.Equal(t, 42.5, export["Score"])
	assert.Equal(t, "2025-06-01 12:00:00", export["Analysis_Date"])
}
