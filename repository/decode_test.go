package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTweets_Normalizes(t *testing.T) {
	f := NewFrame("tweets",
		[]string{"id", "lang", "cop", "categories", "author.userName", "createdAt"},
		[][]string{
			{"1", "en", "26.0", "Policy", "alice", "2021-11-01 10:30:00"},
			{"2", "", "COP27", "", "", "not a date"},
			{"3", "fr", "n/a", "Science", "bob", ""},
		})

	tweets, err := DecodeTweets(f)
	require.NoError(t, err)
	require.Len(t, tweets, 3)

	assert.Equal(t, "26", tweets[0].Cop)
	assert.Equal(t, time.Date(2021, 11, 1, 10, 30, 0, 0, time.UTC), tweets[0].CreatedAt)

	assert.Equal(t, UnknownLang, tweets[1].Lang)
	assert.Equal(t, "27", tweets[1].Cop)
	assert.Equal(t, UncategorizedLabel, tweets[1].Category)
	assert.Equal(t, UnknownAuthor, tweets[1].Author)
	assert.True(t, tweets[1].CreatedAt.IsZero())

	assert.Equal(t, "", tweets[2].Cop)
}

func TestDecodeTweets_AliasesAndMissingColumn(t *testing.T) {
	f := NewFrame("active_users", []string{"lang", "cop", "category", "author"}, [][]string{{"en", "26", "A", "x"}})
	tweets, err := DecodeTweets(f)
	require.NoError(t, err)
	assert.Equal(t, "A", tweets[0].Category)
	assert.Equal(t, "x", tweets[0].Author)

	_, err = DecodeTweets(NewFrame("tweets", []string{"lang", "categories", "author"}, nil))
	assert.True(t, errors.Is(err, ErrMissingColumn))
}

func TestDecodeWeblinks(t *testing.T) {
	f := NewFrame("weblinks", []string{"lang", "cop", "extracted_domains"}, [][]string{
		{"en", "26", "WWW.BBC.co.uk"},
		{"fr", "27", "news.bbc.co.uk"},
	})

	links, err := DecodeWeblinks(f, false)
	require.NoError(t, err)
	assert.Equal(t, "bbc.co.uk", links[0].Domain)
	assert.Equal(t, "news.bbc.co.uk", links[1].Domain)

	links, err = DecodeWeblinks(f, true)
	require.NoError(t, err)
	assert.Equal(t, "bbc.co.uk", links[1].Domain)
}

func TestDecodeWeblinks_FromURL(t *testing.T) {
	f := NewFrame("weblinks", []string{"lang", "cop", "url"}, [][]string{
		{"en", "26", "https://www.unfccc.int/cop26?x=1"},
	})
	links, err := DecodeWeblinks(f, false)
	require.NoError(t, err)
	assert.Equal(t, "unfccc.int", links[0].Domain)

	_, err = DecodeWeblinks(NewFrame("weblinks", []string{"lang", "cop"}, nil), false)
	assert.True(t, errors.Is(err, ErrMissingColumn))
}

func TestDecodeTermFrequencies(t *testing.T) {
	f := NewFrame("entities", []string{"entity", "frequency", "lang", "cop"}, [][]string{
		{"boris johnson (PER)", "12", "en", "26"},
		{"glasgow (LOC)", "3.0", "en", "26"},
		{"broken", "many", "en", "26"},
	})
	terms, err := DecodeTermFrequencies(f)
	require.NoError(t, err)
	require.Len(t, terms, 2)
	assert.Equal(t, 12, terms[0].Frequency)
	assert.Equal(t, 3, terms[1].Frequency)
	assert.Equal(t, 1, f.Skipped)

	words := NewFrame("words", []string{"word", "frequency", "lang", "cop"}, [][]string{{"climate", "40", "en", "27"}})
	terms, err = DecodeTermFrequencies(words)
	require.NoError(t, err)
	assert.Equal(t, "climate", terms[0].Term)

	_, err = DecodeTermFrequencies(NewFrame("words", []string{"word", "lang", "cop"}, nil))
	assert.True(t, errors.Is(err, ErrMissingColumn))
}
