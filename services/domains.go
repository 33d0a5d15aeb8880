package services

import "cop_dashboard/models"

// TopDomains returns the topN most cited web domains. Links without a domain are ignored.
func TopDomains(links []models.Weblink, topN int) []models.DomainCount {
	if topN <= 0 {
		return []models.DomainCount{}
	}

	counts := make(map[string]int)
	for _, l := range links {
		if l.Domain == "" {
			continue
		}
		counts[l.Domain]++
	}

	ranked := rankCounts(counts, topN)
	out := make([]models.DomainCount, 0, len(ranked))
	for _, kc := range ranked {
		out = append(out, models.DomainCount{Domain: kc.key, Count: kc.count})
	}
	return out
}
