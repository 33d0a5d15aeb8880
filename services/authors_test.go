package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cop_dashboard/models"
)

func authorTweets() []models.Tweet {
	return []models.Tweet{
		{ID: "1", Category: "Policy", Author: "carol"},
		{ID: "1", Category: "Policy", Author: "carol"}, // same tweet exported twice
		{ID: "2", Category: "Policy", Author: "carol"},
		{ID: "3", Category: "Policy", Author: "bob"},
		{ID: "4", Category: "Policy", Author: "alice"},
		{ID: "5", Category: "Science", Author: "bob"},
		{ID: "6", Category: "Science", Author: "bob"},
		{Category: "Science", Author: "dave"},
		{Category: "Science", Author: "dave"},
	}
}

func TestTopAuthors_DistinctAndTieBreak(t *testing.T) {
	got := TopAuthors(authorTweets(), "Policy", 10)
	assert.Equal(t, []models.AuthorCount{
		{Author: "carol", Category: "Policy", Count: 2},
		{Author: "alice", Category: "Policy", Count: 1},
		{Author: "bob", Category: "Policy", Count: 1},
	}, got)
}

func TestTopAuthors_AllCategories(t *testing.T) {
	got := TopAuthors(authorTweets(), AllCategories, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "bob", got[0].Author)
	assert.Equal(t, 3, got[0].Count)
	assert.Equal(t, "carol", got[1].Author)
}

func TestTopAuthors_Bounds(t *testing.T) {
	rows := authorTweets()
	for n := 0; n <= 6; n++ {
		got := TopAuthors(rows, AllCategories, n)
		assert.LessOrEqual(t, len(got), n)
		for i := 1; i < len(got); i++ {
			assert.GreaterOrEqual(t, got[i-1].Count, got[i].Count)
		}
	}
	assert.Empty(t, TopAuthors(rows, AllCategories, -1))
	assert.Empty(t, TopAuthors(rows, "Unknown category", 5))
}

func TestTopAuthorsByCategory(t *testing.T) {
	got := TopAuthorsByCategory(authorTweets(), 1)
	require.Len(t, got, 2)
	assert.Equal(t, "Policy", got[0].Category)
	assert.Equal(t, []models.AuthorCount{{Author: "carol", Category: "Policy", Count: 2}}, got[0].Authors)
	assert.Equal(t, "Science", got[1].Category)
	assert.Equal(t, "bob", got[1].Authors[0].Author)
}

func TestTopDomains(t *testing.T) {
	links := []models.Weblink{
		{Domain: "bbc.co.uk"}, {Domain: "lemonde.fr"}, {Domain: "bbc.co.uk"},
		{Domain: ""}, {Domain: "afp.com"},
	}
	assert.Equal(t, []models.DomainCount{
		{Domain: "bbc.co.uk", Count: 2},
		{Domain: "afp.com", Count: 1},
	}, TopDomains(links, 2))
	assert.Empty(t, TopDomains(links, 0))
}
