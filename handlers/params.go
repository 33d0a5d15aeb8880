package handlers

import (
	"fmt"
	"net/http"

	"cop_dashboard/config"
	"cop_dashboard/services"
	"cop_dashboard/utils"
)

// paramError reports a query parameter that cannot be parsed.
type paramError struct {
	param string
	err   error
}

func (e *paramError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %v", e.param, e.err)
}

func (e *paramError) Unwrap() error {
	return e.err
}

func parseFilter(r *http.Request) services.Filter {
	return services.NewFilter(utils.QueryValues(r, "lang"), utils.QueryValues(r, "cop"))
}

// parseSelection reads every widget of a page from the query string. Numbers outside their
// slider range are clamped.
func parseSelection(r *http.Request, cfg *config.Config) (services.Selection, error) {
	d := cfg.Dashboard
	q := r.URL.Query()

	sel := services.Selection{
		Filter:   parseFilter(r),
		Category: q.Get("category"),
	}
	if sel.Category == "" {
		sel.Category = services.AllCategories
	}

	var err error
	if sel.TopN, err = utils.QueryInt(r, "top_n", d.TopNDefault, 1, d.TopNMax); err != nil {
		return sel, &paramError{param: "top_n", err: err}
	}
	if sel.NDomains, err = utils.QueryInt(r, "n_domains", d.DomainsDefault, d.DomainsMin, d.DomainsMax); err != nil {
		return sel, &paramError{param: "n_domains", err: err}
	}
	if sel.NTerms, err = utils.QueryInt(r, "n_terms", d.TermsDefault, d.TermsMin, d.TermsMax); err != nil {
		return sel, &paramError{param: "n_terms", err: err}
	}

	bucket := q.Get("bucket")
	if bucket == "" {
		bucket = d.TimeBucket
	}
	if sel.Bucket, err = services.ParseBucket(bucket); err != nil {
		return sel, &paramError{param: "bucket", err: err}
	}

	switch stat := q.Get("stat"); stat {
	case "", services.StatEntities:
		sel.Stat = services.StatEntities
	case services.StatWords:
		sel.Stat = services.StatWords
	default:
		return sel, &paramError{param: "stat", err: fmt.Errorf("unknown statistic %q", stat)}
	}
	return sel, nil
}

// tweetDataset resolves the dataset parameter of the tweet endpoints.
func tweetDataset(r *http.Request) (string, error) {
	switch ds := r.URL.Query().Get("dataset"); ds {
	case "", config.DatasetTweets:
		return config.DatasetTweets, nil
	case config.DatasetActiveUsers:
		return config.DatasetActiveUsers, nil
	default:
		return "", &paramError{param: "dataset", err: fmt.Errorf("unknown dataset %q", ds)}
	}
}
