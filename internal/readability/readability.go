// Package readability scores authored text with the common grade-level
// formulas, so content authors can keep the aid at a plain-language level.
package readability

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// Stats are the raw counts the formulas are computed from.
type Stats struct {
	Sentences     int
	Words         int
	Syllables     int
	Letters       int
	Polysyllables int
}

// Scores holds one value per formula.
type Scores struct {
	FleschReadingEase    float64
	FleschKincaidGrade   float64
	SMOG                 float64
	ColemanLiau          float64
	AutomatedReadability float64
	GunningFog           float64
}

var (
	sentenceEnd = regexp.MustCompile(`[.!?]+(\s|$)`)
	wordRe      = regexp.MustCompile(`[\p{L}\p{N}]+(?:['’-][\p{L}\p{N}]+)*`)
)

// Count computes Stats for plain text.
func Count(text string) Stats {
	var st Stats
	text = strings.TrimSpace(text)
	if text == "" {
		return st
	}

	st.Sentences = len(sentenceEnd.FindAllStringIndex(text, -1))
	if st.Sentences == 0 {
		st.Sentences = 1
	}

	for _, w := range wordRe.FindAllString(text, -1) {
		st.Words++
		n := Syllables(w)
		st.Syllables += n
		if n >= 3 {
			st.Polysyllables++
		}
		for _, r := range w {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				st.Letters++
			}
		}
	}
	return st
}

// Score applies every formula to st. Text without words scores zero.
func Score(st Stats) Scores {
	if st.Words == 0 || st.Sentences == 0 {
		return Scores{}
	}
	words := float64(st.Words)
	sentences := float64(st.Sentences)
	wps := words / sentences
	spw := float64(st.Syllables) / words

	s := Scores{
		FleschReadingEase:    206.835 - 1.015*wps - 84.6*spw,
		FleschKincaidGrade:   0.39*wps + 11.8*spw - 15.59,
		ColemanLiau:          0.0588*(float64(st.Letters)/words*100) - 0.296*(sentences/words*100) - 15.8,
		AutomatedReadability: 4.71*(float64(st.Letters)/words) + 0.5*wps - 21.43,
		GunningFog:           0.4 * (wps + 100*float64(st.Polysyllables)/words),
	}
	// SMOG is only defined from three sentences up.
	if st.Sentences >= 3 {
		s.SMOG = 1.043*math.Sqrt(float64(st.Polysyllables)*30/sentences) + 3.1291
	}
	return s.rounded()
}

// Analyze counts and scores text in one call.
func Analyze(text string) (Stats, Scores) {
	st := Count(text)
	return st, Score(st)
}

func (s Scores) rounded() Scores {
	r := func(v float64) float64 { return math.Round(v*100) / 100 }
	return Scores{
		FleschReadingEase:    r(s.FleschReadingEase),
		FleschKincaidGrade:   r(s.FleschKincaidGrade),
		SMOG:                 r(s.SMOG),
		ColemanLiau:          r(s.ColemanLiau),
		AutomatedReadability: r(s.AutomatedReadability),
		GunningFog:           r(s.GunningFog),
	}
}

// Syllables estimates the syllable count of an English word from its vowel
// groups. Every word has at least one.
func Syllables(word string) int {
	w := strings.ToLower(word)
	w = strings.TrimFunc(w, func(r rune) bool { return !unicode.IsLetter(r) })
	if w == "" {
		return 1
	}

	count := 0
	prevVowel := false
	for _, r := range w {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	// Silent trailing e, but not "-le" after a consonant (table, simple).
	if strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "le") && count > 1 {
		count--
	}
	if strings.HasSuffix(w, "es") || strings.HasSuffix(w, "ed") {
		if len(w) > 3 && count > 1 && !strings.HasSuffix(w, "ted") && !strings.HasSuffix(w, "ded") && !strings.HasSuffix(w, "ses") && !strings.HasSuffix(w, "ces") {
			count--
		}
	}
	return max(count, 1)
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
