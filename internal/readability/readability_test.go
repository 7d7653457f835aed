package readability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCountsMatchesFormulas(t *testing.T) {
	// 100 words, 5 sentences, 150 syllables.
	s, err := FromCounts(Counts{Words: 100, Sentences: 5, Syllables: 150})
	require.NoError(t, err)

	assert.InDelta(t, 206.835-1.015*20-84.6*1.5, s.ReadingEase, 1e-9)
	assert.InDelta(t, 59.635, s.ReadingEase, 1e-9)
	assert.InDelta(t, 0.39*20+11.8*1.5-15.59, s.Grade, 1e-9)
	assert.InDelta(t, 9.91, s.Grade, 1e-9)
}

func TestFromCountsRejectsEmpty(t *testing.T) {
	_, err := FromCounts(Counts{})
	assert.ErrorIs(t, err, ErrNoText)

	_, err = FromCounts(Counts{Words: 3})
	assert.ErrorIs(t, err, ErrNoText)
}

func TestCountSimpleSentence(t *testing.T) {
	c := Count("The cat sat on the mat.")
	assert.Equal(t, Counts{Words: 6, Sentences: 1, Syllables: 6}, c)

	s, err := Score("The cat sat on the mat.")
	require.NoError(t, err)
	assert.InDelta(t, 116.145, s.ReadingEase, 1e-9)
	assert.InDelta(t, -1.45, s.Grade, 1e-9)
}

func TestCountMultipleSentences(t *testing.T) {
	c := Count("Solar energy is clean. It is cheap!")
	assert.Equal(t, 7, c.Words)
	assert.Equal(t, 2, c.Sentences)
	assert.Equal(t, 10, c.Syllables)
}

func TestCountKeepsDecimalsInsideSentence(t *testing.T) {
	c := Count("Solar output rose 3.5 percent in 2024.")
	assert.Equal(t, 7, c.Words)
	assert.Equal(t, 1, c.Sentences)

	c = Count("Panels are cheap, e.g. in Spain.")
	assert.Equal(t, 6, c.Words)
	assert.Equal(t, 2, c.Sentences)
}

func TestCountSyllables(t *testing.T) {
	cases := map[string]int{
		"the":         1,
		"cat":         1,
		"solar":       2,
		"energy":      3,
		"make":        1,
		"table":       2,
		"cheap":       1,
		"readability": 5,
		"Renewable,":  4,
		"2024":        1,
		"clean-power": 3,
	}
	for word, want := range cases {
		assert.Equal(t, want, CountSyllables(word), word)
	}
}

func TestPlainTextStripsMarkdown(t *testing.T) {
	src := "# Solar Power\n\nThe sun is **hot**. It helps\nus.\n\n- Clean air\n- Low cost\n\n```\ncode here.\n```\n"
	blocks := PlainText(src)
	assert.Equal(t, []string{
		"Solar Power",
		"The sun is hot. It helps us.",
		"Clean air",
		"Low cost",
	}, blocks)

	c := Count(src)
	assert.Equal(t, 13, c.Words)
	assert.Equal(t, 5, c.Sentences)
}

func TestScoreEmptyText(t *testing.T) {
	_, err := Score("")
	assert.ErrorIs(t, err, ErrNoText)

	_, err = Score("  \n ... !!! ")
	assert.ErrorIs(t, err, ErrNoText)
}

func TestScoreIsDeterministic(t *testing.T) {
	text := "## Why Solar\n\nSolar panels turn sunlight into power. They last for decades."
	a, err := Score(text)
	require.NoError(t, err)
	b, err := Score(text)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
