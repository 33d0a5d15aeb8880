package services

import (
	"slices"

	"cop_dashboard/models"
	"cop_dashboard/utils"
)

// TopTerms sums frequencies per label and returns the topN labels, highest total first, each
// broken down per COP edition for stacked bars. With stripType the trailing entity type is
// removed from labels first, merging "glasgow (LOC)" and "glasgow (ORG)".
func TopTerms(terms []models.TermFrequency, topN int, stripType bool) []models.TermBar {
	if topN <= 0 {
		return []models.TermBar{}
	}

	totals := make(map[string]int)
	perCop := make(map[string]map[string]int)
	for _, t := range terms {
		label := t.Term
		if stripType {
			label = utils.StripEntityType(label)
		}
		if label == "" {
			continue
		}
		totals[label] += t.Frequency
		byCop, ok := perCop[label]
		if !ok {
			byCop = make(map[string]int)
			perCop[label] = byCop
		}
		byCop[t.Cop] += t.Frequency
	}

	ranked := rankCounts(totals, topN)
	out := make([]models.TermBar, 0, len(ranked))
	for _, kc := range ranked {
		bar := models.TermBar{Label: kc.key, Total: kc.count}
		for cop, v := range perCop[kc.key] {
			bar.ByCop = append(bar.ByCop, models.CopValue{Cop: cop, Value: v})
		}
		slices.SortFunc(bar.ByCop, func(a, b models.CopValue) int {
			return utils.CompareCops(a.Cop, b.Cop)
		})
		out = append(out, bar)
	}
	return out
}
