package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cop_dashboard/models"
)

func scenarioTweets() []models.Tweet {
	return []models.Tweet{
		{Lang: "en", Cop: "26", Category: "A", Author: "x"},
		{Lang: "fr", Cop: "26", Category: "A", Author: "x"},
		{Lang: "en", Cop: "27", Category: "B", Author: "y"},
	}
}

func TestApplyFilters_Scenario(t *testing.T) {
	rows := scenarioTweets()

	filtered := ApplyFilters(rows, "en", AllOption)
	assert.Len(t, filtered, 2)
	assert.Equal(t, []models.AuthorCount{{Author: "x", Category: "A", Count: 1}}, TopAuthors(filtered, "A", 1))
	assert.Equal(t, models.KPIs{TotalTweets: 3, UniqueAuthors: 2, UniqueCategories: 2}, ComputeKPIs(rows))
}

func TestApplyFilters_Identity(t *testing.T) {
	rows := scenarioTweets()
	assert.Equal(t, rows, ApplyFilters(rows, AllOption, AllOption))
	assert.Equal(t, rows, ApplyFilters(rows, "", ""))
}

func TestApplyFilters_Idempotent(t *testing.T) {
	rows := scenarioTweets()
	for _, lang := range []string{AllOption, "en", "fr", "de"} {
		for _, cop := range []string{AllOption, "26", "27", "COP26", "28"} {
			once := ApplyFilters(rows, lang, cop)
			assert.Equal(t, once, ApplyFilters(once, lang, cop), "lang=%s cop=%s", lang, cop)
		}
	}
}

func TestApplyFilters_EmptyCombination(t *testing.T) {
	filtered := ApplyFilters(scenarioTweets(), "fr", "27")
	assert.NotNil(t, filtered)
	assert.Empty(t, filtered)
	assert.Empty(t, TopAuthors(filtered, AllCategories, 10))
	assert.Empty(t, CategoryCounts(filtered))
}

func TestNewFilter(t *testing.T) {
	f := NewFilter([]string{"en", " en ", "", "fr"}, []string{"COP26", "26.0", "27"})
	assert.Equal(t, []string{"en", "fr"}, f.Langs)
	assert.Equal(t, []string{"26", "27"}, f.Cops)

	f = NewFilter([]string{"en", AllOption}, nil)
	assert.True(t, f.IsAll())

	f = NewFilter([]string{"en"}, []string{"26"}).LangOnly()
	assert.Equal(t, Filter{Langs: []string{"en"}}, f)
}

func TestApply_MultiSelect(t *testing.T) {
	rows := scenarioTweets()
	f := NewFilter([]string{"en", "fr"}, []string{"26"})
	assert.Len(t, Apply(rows, f), 2)

	links := []models.Weblink{{Lang: "en", Cop: "26", Domain: "a.org"}, {Lang: "de", Cop: "26", Domain: "b.org"}}
	assert.Len(t, Apply(links, f), 1)
}

func TestAvailableOptions(t *testing.T) {
	rows := []models.Tweet{
		{Lang: "fr", Cop: "9"},
		{Lang: "en", Cop: "27"},
		{Lang: "en", Cop: ""},
		{Lang: "de", Cop: "26"},
	}
	opts := AvailableOptions(rows)
	assert.Equal(t, []string{"de", "en", "fr"}, opts.Langs)
	assert.Equal(t, []string{"9", "26", "27"}, opts.Cops)
}
