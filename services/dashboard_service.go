package services

import (
	"context"
	"errors"
	"slices"

	"cop_dashboard/config"
	"cop_dashboard/logger"
	"cop_dashboard/models"
	"cop_dashboard/repository"
)

// Stat values of the other stats page.
const (
	StatEntities = "entities"
	StatWords    = "words"
)

// Selection is the state of every widget on a page.
type Selection struct {
	Filter   Filter
	Category string
	TopN     int
	NDomains int
	NTerms   int
	Bucket   Bucket
	Stat     string
}

// DashboardService computes page reports from freshly loaded datasets.
type DashboardService struct {
	store DatasetStore
}

func NewDashboardService(store DatasetStore) *DashboardService {
	return &DashboardService{store: store}
}

// FilteredTweets loads a tweets dataset and returns the rows matching f with the sidebar options
// computed over the unfiltered rows.
func (s *DashboardService) FilteredTweets(ctx context.Context, dataset string, f Filter) ([]models.Tweet, models.Options, error) {
	rows, err := s.store.Tweets(ctx, dataset)
	if err != nil {
		return nil, models.Options{}, err
	}
	return Apply(rows, f), AvailableOptions(rows), nil
}

// FilteredWeblinks loads the weblinks dataset filtered by f.
func (s *DashboardService) FilteredWeblinks(ctx context.Context, f Filter) ([]models.Weblink, error) {
	links, err := s.store.Weblinks(ctx)
	if err != nil {
		return nil, err
	}
	return Apply(links, f), nil
}

// FilteredTerms loads a term frequency dataset filtered by f.
func (s *DashboardService) FilteredTerms(ctx context.Context, dataset string, f Filter) ([]models.TermFrequency, models.Options, error) {
	terms, err := s.store.Terms(ctx, dataset)
	if err != nil {
		return nil, models.Options{}, err
	}
	return Apply(terms, f), AvailableOptions(terms), nil
}

// Actors builds the top authors table and the most cited domains.
func (s *DashboardService) Actors(ctx context.Context, sel Selection) (*models.ActorsReport, error) {
	tweets, opts, err := s.FilteredTweets(ctx, config.DatasetTweets, sel.Filter)
	if err != nil {
		return nil, err
	}

	report := &models.ActorsReport{
		Options:  opts,
		Rows:     len(tweets),
		KPIs:     ComputeKPIs(tweets),
		Category: AllCategories,
		Authors:  []models.AuthorCount{},
		Domains:  []models.DomainCount{},
	}
	if len(tweets) == 0 {
		return report, nil
	}

	for _, c := range CategoryCounts(tweets) {
		report.Categories = append(report.Categories, c.Category)
	}
	slices.Sort(report.Categories)
	if slices.Contains(report.Categories, sel.Category) {
		report.Category = sel.Category
	}
	report.Authors = TopAuthors(tweets, report.Category, sel.TopN)

	links, err := s.FilteredWeblinks(ctx, sel.Filter)
	switch {
	case errors.Is(err, repository.ErrMissingColumn):
		logger.Warn("weblinks dataset has no domain information", "error", err)
	case err != nil:
		return nil, err
	default:
		report.DomainsAvailable = true
		report.Domains = TopDomains(links, sel.NDomains)
	}
	return report, nil
}

// Categories builds the category distribution and the per-COP evolution. The evolution charts
// only honour the language filter.
func (s *DashboardService) Categories(ctx context.Context, sel Selection) (*models.CategoriesReport, error) {
	all, err := s.store.Tweets(ctx, config.DatasetTweets)
	if err != nil {
		return nil, err
	}
	tweets := Apply(all, sel.Filter)

	report := &models.CategoriesReport{
		Options:   AvailableOptions(all),
		Rows:      len(tweets),
		KPIs:      ComputeKPIs(tweets),
		Counts:    CategoryCounts(tweets),
		Evolution: []models.CopSeries{},
		Bucket:    string(sel.Bucket),
	}
	if len(tweets) > 0 {
		report.Evolution = EvolutionByCop(Apply(all, sel.Filter.LangOnly()), sel.Bucket)
	}
	return report, nil
}

// ActiveUsers builds the category charts of the most active users dataset.
func (s *DashboardService) ActiveUsers(ctx context.Context, sel Selection) (*models.ActiveUsersReport, error) {
	tweets, opts, err := s.FilteredTweets(ctx, config.DatasetActiveUsers, sel.Filter)
	if err != nil {
		return nil, err
	}
	return &models.ActiveUsersReport{
		Options:  opts,
		Rows:     len(tweets),
		Counts:   CategoryCounts(tweets),
		Timeline: CategoryOverTime(tweets, sel.Bucket),
		Bucket:   string(sel.Bucket),
	}, nil
}

// OtherStats builds the most frequent entities or words chart.
func (s *DashboardService) OtherStats(ctx context.Context, sel Selection) (*models.TermsReport, error) {
	stat := sel.Stat
	dataset := config.DatasetWords
	if stat != StatWords {
		stat = StatEntities
		dataset = config.DatasetEntities
	}

	terms, opts, err := s.FilteredTerms(ctx, dataset, sel.Filter)
	if err != nil {
		return nil, err
	}
	return &models.TermsReport{
		Options: opts,
		Rows:    len(terms),
		Stat:    stat,
		Bars:    TopTerms(terms, sel.NTerms, stat == StatEntities),
	}, nil
}
