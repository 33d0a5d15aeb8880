package services

import "cop_dashboard/models"

// CategoryCounts counts rows per category, largest first. The counts sum to len(rows).
func CategoryCounts(rows []models.Tweet) []models.CategoryCount {
	counts := make(map[string]int)
	for _, t := range rows {
		counts[t.Category]++
	}

	ranked := rankCounts(counts, -1)
	out := make([]models.CategoryCount, 0, len(ranked))
	for _, kc := range ranked {
		out = append(out, models.CategoryCount{Category: kc.key, Count: kc.count})
	}
	return out
}

// ComputeKPIs returns the headline numbers of a filtered dataset.
func ComputeKPIs(rows []models.Tweet) models.KPIs {
	ids := make(map[string]struct{})
	authors := make(map[string]struct{})
	categories := make(map[string]struct{})
	anonymous := 0
	for _, t := range rows {
		if t.ID == "" {
			anonymous++
		} else {
			ids[t.ID] = struct{}{}
		}
		authors[t.Author] = struct{}{}
		categories[t.Category] = struct{}{}
	}
	return models.KPIs{
		TotalTweets:      len(ids) + anonymous,
		UniqueAuthors:    len(authors),
		UniqueCategories: len(categories),
	}
}
