package readability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"the", 1},
		{"care", 1},
		{"doctor", 2},
		{"table", 2},
		{"used", 1},
		{"decided", 3},
		{"information", 4},
		{"AI", 1},
		{"privacy", 3},
		{"123", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Syllables(tt.word), tt.word)
	}
}

func TestCount(t *testing.T) {
	st := Count("The cat sat. The dog ran! Did the bird fly?")
	assert.Equal(t, 3, st.Sentences)
	assert.Equal(t, 10, st.Words)
	assert.Equal(t, 10, st.Syllables)
	assert.Equal(t, 0, st.Polysyllables)
}

func TestCount_Empty(t *testing.T) {
	assert.Equal(t, Stats{}, Count("   "))
	assert.Equal(t, Scores{}, Score(Stats{}))
}

func TestScore_SimpleText(t *testing.T) {
	_, s := Analyze("The cat sat. The dog ran! Did the bird fly?")

	// wps = 10/3, spw = 1
	assert.InDelta(t, 118.85, s.FleschReadingEase, 0.01)
	assert.InDelta(t, -2.49, s.FleschKincaidGrade, 0.01)
	assert.InDelta(t, 3.13, s.SMOG, 0.01)
	assert.InDelta(t, 1.33, s.GunningFog, 0.01)
}

func TestScore_HarderTextScoresHigherGrade(t *testing.T) {
	_, easy := Analyze("You can say no. The doctor is in charge. You can ask.")
	_, hard := Analyze("Artificial intelligence applications increasingly facilitate diagnostic categorization. " +
		"Institutional accountability necessitates comprehensive documentation. " +
		"Algorithmic recommendations require professional verification.")

	assert.Greater(t, hard.FleschKincaidGrade, easy.FleschKincaidGrade)
	assert.Less(t, hard.FleschReadingEase, easy.FleschReadingEase)
	assert.Greater(t, hard.SMOG, easy.SMOG)
}

func TestTextFromMarkdown(t *testing.T) {
	text, err := TextFromMarkdown("# What is AI\n\nAI is a **tool**.\n\n- It helps doctors\n- It can be wrong\n\n<script>alert(1)</script>\n")
	require.NoError(t, err)
	assert.Equal(t, "What is AI.\nAI is a tool.\nIt helps doctors.\nIt can be wrong.", text)
}
