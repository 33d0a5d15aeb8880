package services

import (
	"slices"

	"cop_dashboard/models"
)

// AllCategories selects every category in the authors table.
const AllCategories = "All categories"

// TopAuthors counts distinct tweets per author within category and returns the topN authors,
// most active first, ties broken by author name.
func TopAuthors(rows []models.Tweet, category string, topN int) []models.AuthorCount {
	if topN <= 0 {
		return []models.AuthorCount{}
	}

	counter := newDistinctCounter()
	for _, t := range rows {
		if category != AllCategories && t.Category != category {
			continue
		}
		counter.add(t.Author, t.ID)
	}

	ranked := rankCounts(counter.counts, topN)
	out := make([]models.AuthorCount, 0, len(ranked))
	for _, kc := range ranked {
		out = append(out, models.AuthorCount{Author: kc.key, Category: category, Count: kc.count})
	}
	return out
}

// TopAuthorsByCategory returns the topN authors of every category, categories in ascending order.
func TopAuthorsByCategory(rows []models.Tweet, topN int) []models.CategoryAuthors {
	groups := make(map[string][]models.Tweet)
	for _, t := range rows {
		groups[t.Category] = append(groups[t.Category], t)
	}

	categories := make([]string, 0, len(groups))
	for c := range groups {
		categories = append(categories, c)
	}
	slices.Sort(categories)

	out := make([]models.CategoryAuthors, 0, len(categories))
	for _, c := range categories {
		out = append(out, models.CategoryAuthors{
			Category: c,
			Authors:  TopAuthors(groups[c], c, topN),
		})
	}
	return out
}
