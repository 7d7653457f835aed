package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TobiSchelling/seowriter/internal/article"
)

func TestReadRequest(t *testing.T) {
	in := strings.NewReader("The Future of Solar Energy\n solar energy \nrenewable, clean power\ninformal\nSHORT\n")
	var out bytes.Buffer

	req, err := NewPrompter(in, &out, true).ReadRequest()
	require.NoError(t, err)

	assert.Equal(t, article.Request{
		Title:             "The Future of Solar Energy",
		PrimaryKeyword:    "solar energy",
		SecondaryKeywords: []string{"renewable", "clean power"},
		Tone:              "informal",
		Length:            "short",
	}, req)
	assert.Contains(t, out.String(), "Enter the article title: ")
	assert.Contains(t, out.String(), "Enter the article length (short, medium, long): ")
}

func TestReadRequestQuietWithoutEcho(t *testing.T) {
	in := strings.NewReader("T\nk\n\nformal\nlong")
	var out bytes.Buffer

	req, err := NewPrompter(in, &out, false).ReadRequest()
	require.NoError(t, err)

	assert.Empty(t, out.String())
	assert.Nil(t, req.SecondaryKeywords)
	assert.Equal(t, "long", req.Length, "last line without newline is accepted")
	assert.NoError(t, req.Validate())
}

func TestReadRequestMissingTitle(t *testing.T) {
	in := strings.NewReader("\nsolar energy\n\ninformal\nshort\n")

	req, err := NewPrompter(in, &bytes.Buffer{}, false).ReadRequest()
	require.NoError(t, err)
	assert.ErrorIs(t, req.Validate(), article.ErrMissingField)
}

func TestReadRequestShortInput(t *testing.T) {
	req, err := NewPrompter(strings.NewReader("Only a title\n"), &bytes.Buffer{}, false).ReadRequest()
	require.NoError(t, err)
	assert.Equal(t, "Only a title", req.Title)
	assert.ErrorIs(t, req.Validate(), article.ErrMissingField)
}
