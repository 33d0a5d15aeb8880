package report

import (
	"context"
	"fmt"

	"cop_dashboard/config"
	"cop_dashboard/services"
)

// Report kinds.
const (
	KindAuthors    = "authors"
	KindDomains    = "domains"
	KindCategories = "categories"
	KindKPIs       = "kpis"
	KindTerms      = "terms"
)

var Kinds = []string{KindAuthors, KindDomains, KindCategories, KindKPIs, KindTerms}

// Options select the report and the rows it is computed over.
type Options struct {
	Kind     string
	Dataset  string // tweets or active_users
	Stat     string // entities or words
	Filter   services.Filter
	Category string
	Top      int
}

// Build loads the datasets the report needs and lays it out as a table.
func Build(ctx context.Context, svc *services.DashboardService, opts Options) (*Table, error) {
	dataset := opts.Dataset
	if dataset == "" {
		dataset = config.DatasetTweets
	}
	category := opts.Category
	if category == "" {
		category = services.AllCategories
	}

	switch opts.Kind {
	case KindAuthors, KindCategories, KindKPIs:
		tweets, _, err := svc.FilteredTweets(ctx, dataset, opts.Filter)
		if err != nil {
			return nil, err
		}
		switch opts.Kind {
		case KindAuthors:
			return AuthorsTable(services.TopAuthors(tweets, category, opts.Top)), nil
		case KindCategories:
			return CategoriesTable(services.CategoryCounts(tweets)), nil
		default:
			return KPIsTable(services.ComputeKPIs(tweets)), nil
		}
	case KindDomains:
		links, err := svc.FilteredWeblinks(ctx, opts.Filter)
		if err != nil {
			return nil, err
		}
		return DomainsTable(services.TopDomains(links, opts.Top)), nil
	case KindTerms:
		terms, err := svc.OtherStats(ctx, services.Selection{Filter: opts.Filter, NTerms: opts.Top, Stat: opts.Stat})
		if err != nil {
			return nil, err
		}
		return TermsTable(terms.Bars), nil
	default:
		return nil, fmt.Errorf("unknown report %q", opts.Kind)
	}
}
