package handlers

import (
	"net/http"

	"cop_dashboard/config"
	"cop_dashboard/models"
	"cop_dashboard/services"
	"cop_dashboard/utils"
)

// apiTweets loads the filtered tweets of the requested dataset. With langOnly the COP
// restriction is ignored.
func (d *Dashboard) apiTweets(w http.ResponseWriter, r *http.Request, langOnly bool) ([]models.Tweet, services.Selection, bool) {
	sel, err := parseSelection(r, d.cfg)
	if err != nil {
		writeAPIError(w, r, err)
		return nil, sel, false
	}
	dataset, err := tweetDataset(r)
	if err != nil {
		writeAPIError(w, r, err)
		return nil, sel, false
	}

	f := sel.Filter
	if langOnly {
		f = f.LangOnly()
	}
	rows, _, err := d.service.FilteredTweets(r.Context(), dataset, f)
	if err != nil {
		writeAPIError(w, r, err)
		return nil, sel, false
	}
	return rows, sel, true
}

// OptionsHandler godoc
// @Summary Filter options
// @Description Distinct languages and COP editions of a dataset
// @Tags filters
// @Produce json
// @Param dataset query string false "tweets, active_users, entities or words" default(tweets)
// @Success 200 {object} models.OptionsResponse
// @Failure 400 {object} models.APIResponse "invalid parameter"
// @Failure 500 {object} models.APIResponse "dataset unavailable"
// @Router /api/options [get]
func (d *Dashboard) OptionsHandler(w http.ResponseWriter, r *http.Request) {
	var (
		opts models.Options
		err  error
	)
	switch dataset := r.URL.Query().Get("dataset"); dataset {
	case config.DatasetEntities, config.DatasetWords:
		_, opts, err = d.service.FilteredTerms(r.Context(), dataset, services.Filter{})
	default:
		if dataset, err = tweetDataset(r); err == nil {
			_, opts, err = d.service.FilteredTweets(r.Context(), dataset, services.Filter{})
		}
	}
	if err != nil {
		writeAPIError(w, r, err)
		return
	}
	utils.WriteSuccessResponse(w, opts)
}

// KPIsHandler godoc
// @Summary Key figures
// @Description Number of tweets, authors and categories after filtering
// @Tags tweets
// @Produce json
// @Param dataset query string false "tweets or active_users" default(tweets)
// @Param lang query []string false "language codes" collectionFormat(multi)
// @Param cop query []string false "COP editions" collectionFormat(multi)
// @Success 200 {object} models.KPIsResponse
// @Failure 400 {object} models.APIResponse "invalid parameter"
// @Failure 500 {object} models.APIResponse "dataset unavailable"
// @Router /api/kpis [get]
func (d *Dashboard) KPIsHandler(w http.ResponseWriter, r *http.Request) {
	rows, _, ok := d.apiTweets(w, r, false)
	if !ok {
		return
	}
	utils.WriteSuccessResponse(w, services.ComputeKPIs(rows))
}

// AuthorsHandler godoc
// @Summary Most active authors
// @Description Authors ranked by number of distinct tweets, optionally within one category
// @Tags tweets
// @Produce json
// @Param dataset query string false "tweets or active_users" default(tweets)
// @Param lang query []string false "language codes" collectionFormat(multi)
// @Param cop query []string false "COP editions" collectionFormat(multi)
// @Param category query string false "category name" default(All categories)
// @Param top_n query int false "number of authors, clamped to 1..30" default(10)
// @Success 200 {object} models.AuthorsResponse
// @Failure 400 {object} models.APIResponse "invalid parameter"
// @Failure 500 {object} models.APIResponse "dataset unavailable"
// @Router /api/authors [get]
func (d *Dashboard) AuthorsHandler(w http.ResponseWriter, r *http.Request) {
	rows, sel, ok := d.apiTweets(w, r, false)
	if !ok {
		return
	}
	utils.WriteSuccessResponse(w, services.TopAuthors(rows, sel.Category, sel.TopN))
}

// AuthorsByCategoryHandler godoc
// @Summary Most active authors per category
// @Description Top authors of every category, categories in alphabetical order
// @Tags tweets
// @Produce json
// @Param dataset query string false "tweets or active_users" default(tweets)
// @Param lang query []string false "language codes" collectionFormat(multi)
// @Param cop query []string false "COP editions" collectionFormat(multi)
// @Param top_n query int false "number of authors per category, clamped to 1..30" default(10)
// @Success 200 {object} models.AuthorsByCategoryResponse
// @Failure 400 {object} models.APIResponse "invalid parameter"
// @Failure 500 {object} models.APIResponse "dataset unavailable"
// @Router /api/authors/by-category [get]
func (d *Dashboard) AuthorsByCategoryHandler(w http.ResponseWriter, r *http.Request) {
	rows, sel, ok := d.apiTweets(w, r, false)
	if !ok {
		return
	}
	utils.WriteSuccessResponse(w, services.TopAuthorsByCategory(rows, sel.TopN))
}

// DomainsHandler godoc
// @Summary Most cited domains
// @Description Domains of the links shared in tweets, most cited first
// @Tags weblinks
// @Produce json
// @Param lang query []string false "language codes" collectionFormat(multi)
// @Param cop query []string false "COP editions" collectionFormat(multi)
// @Param n_domains query int false "number of domains, clamped to 5..30" default(10)
// @Success 200 {object} models.DomainsResponse
// @Failure 400 {object} models.APIResponse "invalid parameter"
// @Failure 500 {object} models.APIResponse "dataset unavailable or missing column"
// @Router /api/domains [get]
func (d *Dashboard) DomainsHandler(w http.ResponseWriter, r *http.Request) {
	sel, err := parseSelection(r, d.cfg)
	if err != nil {
		writeAPIError(w, r, err)
		return
	}
	links, err := d.service.FilteredWeblinks(r.Context(), sel.Filter)
	if err != nil {
		writeAPIError(w, r, err)
		return
	}
	utils.WriteSuccessResponse(w, services.TopDomains(links, sel.NDomains))
}

// CategoriesHandler godoc
// @Summary Tweets per category
// @Description Category distribution, most frequent first
// @Tags tweets
// @Produce json
// @Param dataset query string false "tweets or active_users" default(tweets)
// @Param lang query []string false "language codes" collectionFormat(multi)
// @Param cop query []string false "COP editions" collectionFormat(multi)
// @Success 200 {object} models.CategoriesResponse
// @Failure 400 {object} models.APIResponse "invalid parameter"
// @Failure 500 {object} models.APIResponse "dataset unavailable"
// @Router /api/categories [get]
func (d *Dashboard) CategoriesHandler(w http.ResponseWriter, r *http.Request) {
	rows, _, ok := d.apiTweets(w, r, false)
	if !ok {
		return
	}
	utils.WriteSuccessResponse(w, services.CategoryCounts(rows))
}

// TimelineHandler godoc
// @Summary Categories over time
// @Description Tweets per category and time bucket
// @Tags tweets
// @Produce json
// @Param dataset query string false "tweets or active_users" default(tweets)
// @Param lang query []string false "language codes" collectionFormat(multi)
// @Param cop query []string false "COP editions" collectionFormat(multi)
// @Param bucket query string false "hour, day, week, month or cop" default(day)
// @Success 200 {object} models.TimelineResponse
// @Failure 400 {object} models.APIResponse "invalid parameter"
// @Failure 500 {object} models.APIResponse "dataset unavailable"
// @Router /api/categories/timeline [get]
func (d *Dashboard) TimelineHandler(w http.ResponseWriter, r *http.Request) {
	rows, sel, ok := d.apiTweets(w, r, false)
	if !ok {
		return
	}
	utils.WriteSuccessResponse(w, services.CategoryOverTime(rows, sel.Bucket))
}

// EvolutionHandler godoc
// @Summary Category evolution per COP edition
// @Description One category time series per COP edition. Only the language filter applies.
// @Tags tweets
// @Produce json
// @Param dataset query string false "tweets or active_users" default(tweets)
// @Param lang query []string false "language codes" collectionFormat(multi)
// @Param bucket query string false "hour, day, week, month or cop" default(day)
// @Success 200 {object} models.EvolutionResponse
// @Failure 400 {object} models.APIResponse "invalid parameter"
// @Failure 500 {object} models.APIResponse "dataset unavailable"
// @Router /api/categories/evolution [get]
func (d *Dashboard) EvolutionHandler(w http.ResponseWriter, r *http.Request) {
	rows, sel, ok := d.apiTweets(w, r, true)
	if !ok {
		return
	}
	utils.WriteSuccessResponse(w, services.EvolutionByCop(rows, sel.Bucket))
}

// TermsHandler godoc
// @Summary Most frequent entities or words
// @Description Summed frequencies with a breakdown per COP edition
// @Tags terms
// @Produce json
// @Param stat query string false "entities or words" default(entities)
// @Param lang query []string false "language codes" collectionFormat(multi)
// @Param cop query []string false "COP editions" collectionFormat(multi)
// @Param n_terms query int false "number of terms, clamped to 5..30" default(10)
// @Success 200 {object} models.TermsResponse
// @Failure 400 {object} models.APIResponse "invalid parameter"
// @Failure 500 {object} models.APIResponse "dataset unavailable"
// @Router /api/terms [get]
func (d *Dashboard) TermsHandler(w http.ResponseWriter, r *http.Request) {
	sel, err := parseSelection(r, d.cfg)
	if err != nil {
		writeAPIError(w, r, err)
		return
	}
	report, err := d.service.OtherStats(r.Context(), sel)
	if err != nil {
		writeAPIError(w, r, err)
		return
	}
	utils.WriteSuccessResponse(w, report.Bars)
}
