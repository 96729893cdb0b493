package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPack(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "AI in Healthcare Decision Aid", p.Title)
	assert.Len(t, p.Steps, 5)
	assert.Equal(t, 5, p.SummaryStep())
	assert.Equal(t, 2, p.StepOf(KindQuiz))
	assert.Equal(t, 3, p.StepOf(KindValues))
	assert.Equal(t, 4, p.StepOf(KindDecision))
	assert.Len(t, p.Sliders, SliderCount)
	assert.Len(t, p.Questions, 4)
	assert.Len(t, p.Facts, 4)
	assert.Len(t, p.Facts[0].Statements, 2)
	assert.Len(t, p.Facts[2].Statements, 1)
}

func TestDefaultPack_Lookups(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "I want more information first.", p.ChoiceLabel(GroupNextSteps, "learn"))
	assert.Equal(t, "", p.ChoiceLabel(GroupNextSteps, "nope"))
	assert.Equal(t, "", p.ChoiceLabel("nope", "learn"))

	f, ok := p.TextField(FieldConcerns)
	require.True(t, ok)
	assert.NotEmpty(t, f.Prompt)

	assert.Contains(t, p.NextStepsText["discuss"], "talk with someone")
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "AI in Healthcare Decision Aid", p.Title)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.yaml")
	require.NoError(t, os.WriteFile(path, defaultPack, 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, p.Steps, 5)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(string) string
		wantMsg string
	}{
		{
			name:    "not yaml",
			mutate:  func(string) string { return "steps: [unclosed" },
			wantMsg: "decode yaml",
		},
		{
			name: "unknown schema version",
			mutate: func(s string) string {
				return strings.Replace(s, "schema_version: v1", "schema_version: v9", 1)
			},
			wantMsg: "schema validation failed",
		},
		{
			name: "fact references unknown question",
			mutate: func(s string) string {
				return strings.Replace(s, "  - question: 4\n", "  - question: 7\n", 1)
			},
			wantMsg: "unknown question 7",
		},
		{
			name: "two correct options",
			mutate: func(s string) string {
				return strings.Replace(s, "label: No, the hospital decides for me.\n        correct: false",
					"label: No, the hospital decides for me.\n        correct: true", 1)
			},
			wantMsg: "want exactly one correct option, got 2",
		},
		{
			name: "bad min version",
			mutate: func(s string) string {
				return strings.Replace(s, "min_app_version: v0.1.0", "min_app_version: latest", 1)
			},
			wantMsg: "not a semantic version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.mutate(string(defaultPack))))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidPack)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestCheck_ReportsAllProblems(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	p.Sliders = p.Sliders[:3]
	p.Steps = p.Steps[:2]
	delete(p.NextStepsText, "ready")

	err = p.Check()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want 9 sliders, got 3")
	assert.Contains(t, err.Error(), "last step must be the summary")
	assert.Contains(t, err.Error(), `next_steps_text missing entry for "ready"`)
}

func TestCheckAppVersion(t *testing.T) {
	p := &Pack{MinAppVersion: "v1.2.0"}

	tests := []struct {
		version string
		wantErr bool
	}{
		{"(devel)", false},
		{"v1.2.0", false},
		{"1.3.0", false},
		{"v1.1.9", true},
		{"0.9.0", true},
		{"not-a-version", false},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			err := p.CheckAppVersion(tt.version)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPack)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
