package repository

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"cop_dashboard/models"
	"cop_dashboard/utils"
)

// Column aliases accepted for each field.
var (
	colID       = []string{"id", "id_str", "tweet_id"}
	colLang     = []string{"lang", "language"}
	colCop      = []string{"cop"}
	colCategory = []string{"categories", "category"}
	colAuthor   = []string{"author.userName", "author", "author_username"}
	colDate     = []string{"createdAt", "created_at", "date"}
	colDomain   = []string{"extracted_domains", "domain"}
	colURL      = []string{"expanded_url", "url"}
	colEntity   = []string{"entity"}
	colWord     = []string{"word", "term"}
	colFreq     = []string{"frequency", "count"}
)

// Placeholders for empty cells.
const (
	UncategorizedLabel = "Uncategorized"
	UnknownAuthor      = "Unknown"
	UnknownLang        = "unknown"
)

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// ParseTimestamp parses the heterogeneous createdAt formats found in tweet exports.
func ParseTimestamp(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, err := dateparse.ParseIn(raw, time.UTC)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

// DecodeTweets maps a categorization frame to tweets. lang, cop, category and author columns
// are required; id and createdAt are optional.
func DecodeTweets(f *Frame) ([]models.Tweet, error) {
	langIdx, err := f.Require(colLang...)
	if err != nil {
		return nil, err
	}
	copIdx, err := f.Require(colCop...)
	if err != nil {
		return nil, err
	}
	catIdx, err := f.Require(colCategory...)
	if err != nil {
		return nil, err
	}
	authorIdx, err := f.Require(colAuthor...)
	if err != nil {
		return nil, err
	}
	idIdx := f.Index(colID...)
	dateIdx := f.Index(colDate...)

	tweets := make([]models.Tweet, 0, f.Len())
	for _, row := range f.Rows {
		tweets = append(tweets, models.Tweet{
			ID:        Value(row, idIdx),
			Lang:      orDefault(Value(row, langIdx), UnknownLang),
			Cop:       utils.NormalizeCop(Value(row, copIdx)),
			Category:  orDefault(Value(row, catIdx), UncategorizedLabel),
			Author:    orDefault(Value(row, authorIdx), UnknownAuthor),
			CreatedAt: ParseTimestamp(Value(row, dateIdx)),
		})
	}
	return tweets, nil
}

// DecodeWeblinks maps a weblinks frame. The domain comes from extracted_domains, or from the
// hostname of a url column when the dataset has no domain column.
func DecodeWeblinks(f *Frame, registrable bool) ([]models.Weblink, error) {
	langIdx, err := f.Require(colLang...)
	if err != nil {
		return nil, err
	}
	copIdx, err := f.Require(colCop...)
	if err != nil {
		return nil, err
	}
	domainIdx := f.Index(colDomain...)
	urlIdx := -1
	if domainIdx < 0 {
		if urlIdx = f.Index(colURL...); urlIdx < 0 {
			_, err := f.Require(colDomain...)
			return nil, err
		}
	}

	links := make([]models.Weblink, 0, f.Len())
	for _, row := range f.Rows {
		host := Value(row, domainIdx)
		if domainIdx < 0 {
			host = utils.HostFromURL(Value(row, urlIdx))
		}
		links = append(links, models.Weblink{
			Lang:   orDefault(Value(row, langIdx), UnknownLang),
			Cop:    utils.NormalizeCop(Value(row, copIdx)),
			Domain: utils.NormalizeDomain(host, registrable),
		})
	}
	return links, nil
}

// DecodeTermFrequencies maps an entity or word frequency frame. Rows whose frequency is not a
// number are skipped.
func DecodeTermFrequencies(f *Frame) ([]models.TermFrequency, error) {
	termIdx := f.Index(colEntity...)
	if termIdx < 0 {
		idx, err := f.Require(colWord...)
		if err != nil {
			return nil, err
		}
		termIdx = idx
	}
	freqIdx, err := f.Require(colFreq...)
	if err != nil {
		return nil, err
	}
	langIdx, err := f.Require(colLang...)
	if err != nil {
		return nil, err
	}
	copIdx, err := f.Require(colCop...)
	if err != nil {
		return nil, err
	}

	terms := make([]models.TermFrequency, 0, f.Len())
	for _, row := range f.Rows {
		freq, ok := parseCount(Value(row, freqIdx))
		if !ok {
			f.Skipped++
			continue
		}
		terms = append(terms, models.TermFrequency{
			Term:      Value(row, termIdx),
			Frequency: freq,
			Lang:      orDefault(Value(row, langIdx), UnknownLang),
			Cop:       utils.NormalizeCop(Value(row, copIdx)),
		})
	}
	return terms, nil
}

func parseCount(s string) (int, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	fl, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil || math.IsNaN(fl) {
		return 0, false
	}
	return int(fl), true
}
