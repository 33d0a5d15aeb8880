package services

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"cop_dashboard/models"
	"cop_dashboard/utils"
)

// Bucket is the granularity of a category time series.
type Bucket string

const (
	BucketHour  Bucket = "hour"
	BucketDay   Bucket = "day"
	BucketWeek  Bucket = "week"
	BucketMonth Bucket = "month"
	BucketCop   Bucket = "cop"
)

// Buckets lists the supported granularities in display order.
var Buckets = []Bucket{BucketHour, BucketDay, BucketWeek, BucketMonth, BucketCop}

// ParseBucket validates a bucket name; empty means day.
func ParseBucket(s string) (Bucket, error) {
	if s == "" {
		return BucketDay, nil
	}
	b := Bucket(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Buckets, b) {
		return "", fmt.Errorf("unknown time bucket %q", s)
	}
	return b, nil
}

// Key returns the bucket label of a tweet, false when the tweet cannot be placed.
func (b Bucket) Key(t models.Tweet) (string, bool) {
	if b == BucketCop {
		return t.Cop, t.Cop != ""
	}
	if t.CreatedAt.IsZero() {
		return "", false
	}
	ts := t.CreatedAt.UTC()
	switch b {
	case BucketHour:
		return ts.Format("2006-01-02T15:00"), true
	case BucketWeek:
		offset := (int(ts.Weekday()) + 6) % 7 // days since Monday
		return ts.AddDate(0, 0, -offset).Format(time.DateOnly), true
	case BucketMonth:
		return ts.Format("2006-01"), true
	default:
		return ts.Format(time.DateOnly), true
	}
}

func (b Bucket) compare(x, y string) int {
	if b == BucketCop {
		return utils.CompareCops(x, y)
	}
	return strings.Compare(x, y)
}

// CategoryOverTime counts tweets per (bucket, category), ordered by bucket then category.
// Tweets that cannot be bucketed are left out.
func CategoryOverTime(rows []models.Tweet, bucket Bucket) []models.TimePoint {
	type key struct{ bucket, category string }
	counts := make(map[key]int)
	for _, t := range rows {
		k, ok := bucket.Key(t)
		if !ok {
			continue
		}
		counts[key{k, t.Category}]++
	}

	points := make([]models.TimePoint, 0, len(counts))
	for k, c := range counts {
		points = append(points, models.TimePoint{Bucket: k.bucket, Category: k.category, Count: c})
	}
	slices.SortFunc(points, func(a, b models.TimePoint) int {
		if c := bucket.compare(a.Bucket, b.Bucket); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return points
}

// EvolutionByCop splits rows per COP edition and builds one category time series each.
// Rows without an edition are left out.
func EvolutionByCop(rows []models.Tweet, bucket Bucket) []models.CopSeries {
	groups := make(map[string][]models.Tweet)
	for _, t := range rows {
		if t.Cop == "" {
			continue
		}
		groups[t.Cop] = append(groups[t.Cop], t)
	}

	cops := make([]string, 0, len(groups))
	for c := range groups {
		cops = append(cops, c)
	}
	slices.SortFunc(cops, utils.CompareCops)

	out := make([]models.CopSeries, 0, len(cops))
	for _, c := range cops {
		out = append(out, models.CopSeries{Cop: c, Points: CategoryOverTime(groups[c], bucket)})
	}
	return out
}
