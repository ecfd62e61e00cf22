package pdfsource

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nickymouseeeeeee/bankstatement/internal/models"
)

func TestFakePageWordsAreSorted(t *testing.T) {
	page := &FakePage{
		Num: 1,
		Tokens: []models.Token{
			{Text: "c", X0: 10, Top: 200},
			{Text: "b", X0: 300, Top: 100},
			{Text: "a", X0: 10, Top: 100},
		},
	}

	words, err := page.Words()
	require.NoError(t, err)

	texts := make([]string, 0, len(words))
	for _, w := range words {
		texts = append(texts, w.Text)
	}
	assert.Equal(t, []string{"a", "b", "c"}, texts)
}

func TestFakePageCropFiltersTokens(t *testing.T) {
	page := &FakePage{
		Num: 1,
		Tokens: []models.Token{
			{Text: "inside", X0: 100, Top: 100},
			{Text: "below", X0: 100, Top: 400},
			{Text: "right", X0: 500, Top: 100},
		},
	}

	region, err := page.Crop(models.Rect{X0: 0, Top: 0, X1: 300, Bottom: 300})
	require.NoError(t, err)

	words, err := region.Words()
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "inside", words[0].Text)
}

func TestFakePageCropIsRelativeToBound(t *testing.T) {
	page := &FakePage{
		Num:   1,
		Bound: models.Rect{X0: 50, Top: 50, X1: 612, Bottom: 850},
		Tokens: []models.Token{
			{Text: "kept", X0: 60, Top: 60},
			{Text: "dropped", X0: 60, Top: 200},
		},
	}

	// Relative rectangle [0,0,100,100] maps to absolute [50,50,150,150].
	region, err := page.Crop(models.Rect{X0: 0, Top: 0, X1: 100, Bottom: 100})
	require.NoError(t, err)

	words, err := region.Words()
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "kept", words[0].Text)
	assert.Equal(t, models.Rect{X0: 50, Top: 50, X1: 150, Bottom: 150}, region.BBox())
}

func TestFakePageTextFallsBackToTokens(t *testing.T) {
	page := &FakePage{
		Num: 1,
		Tokens: []models.Token{
			{Text: "world", X0: 50, Top: 100},
			{Text: "hello", X0: 10, Top: 100},
		},
	}

	text, err := page.Text()
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)

	page.PageText = "override"
	text, err = page.Text()
	require.NoError(t, err)
	assert.Equal(t, "override", text)
}

func TestFakePageErrorInjection(t *testing.T) {
	wordsErr := errors.New("words failed")
	textErr := errors.New("text failed")
	page := &FakePage{Num: 1, WordsErr: wordsErr, TextErr: textErr}

	_, err := page.Words()
	assert.ErrorIs(t, err, wordsErr)
	_, err = page.Text()
	assert.ErrorIs(t, err, textErr)
}

func TestFakeSourceClose(t *testing.T) {
	src := &FakeSource{FakePages: []*FakePage{{Num: 1}, {Num: 2}}}

	assert.Len(t, src.Pages(), 2)
	require.NoError(t, src.Close())
	assert.True(t, src.Closed)
}
