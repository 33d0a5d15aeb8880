package views

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cop_dashboard/models"
	"cop_dashboard/services"
)

var testLimits = Limits{TopNMax: 30, DomainsMin: 5, DomainsMax: 30, TermsMin: 5, TermsMax: 30}

func render(t *testing.T, name string, page Page) *goquery.Document {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, name, page))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestRender_Home(t *testing.T) {
	doc := render(t, PageHome, HomePage())

	assert.Equal(t, 4, doc.Find("ul.sections li").Length())
	assert.Equal(t, "Home", doc.Find("nav.pages a.active").Text())
	assert.Zero(t, doc.Find("aside.sidebar").Length())
}

func TestRender_Actors(t *testing.T) {
	report := &models.ActorsReport{
		Options:    models.Options{Langs: []string{"en", "fr"}, Cops: []string{"26", "27"}},
		Rows:       3,
		KPIs:       models.KPIs{TotalTweets: 1200, UniqueAuthors: 2, UniqueCategories: 1},
		Categories: []string{"Activism"},
		Category:   services.AllCategories,
		Authors: []models.AuthorCount{
			{Author: "alice", Count: 2},
			{Author: "bob", Count: 1},
		},
		Domains:          []models.DomainCount{{Domain: "bbc.co.uk", Count: 4}},
		DomainsAvailable: true,
	}
	sel := services.Selection{Filter: services.NewFilter([]string{"fr"}, nil), TopN: 10, NDomains: 10}

	doc := render(t, PageActors, ActorsPage(report, sel, testLimits))

	assert.Equal(t, "French", doc.Find(`select[name="lang"] option[selected]`).Text())
	assert.Equal(t, 2, doc.Find(`select[name="cop"] option[selected]`).Length())
	assert.Equal(t, "COP 26", doc.Find(`select[name="cop"] option`).First().Text())
	assert.Equal(t, "1,200", doc.Find(".kpi-value").First().Text())

	rows := doc.Find("table.authors tbody tr")
	require.Equal(t, 2, rows.Length())
	assert.Equal(t, "alice", rows.First().Find("td").Eq(1).Text())
	assert.Equal(t, 1, doc.Find("table.domains tbody tr").Length())

	topN, _ := doc.Find(`input[name="top_n"]`).Attr("value")
	assert.Equal(t, "10", topN)
	assert.Zero(t, doc.Find("main > .notice").Length())
}

func TestRender_ActorsEmptyAndNoDomains(t *testing.T) {
	report := &models.ActorsReport{Category: services.AllCategories}
	sel := services.Selection{TopN: 10, NDomains: 10}

	doc := render(t, PageActors, ActorsPage(report, sel, testLimits))

	assert.Equal(t, emptyNotice, doc.Find("main > .notice").Text())
	assert.Zero(t, doc.Find("table.authors tbody tr").Length())
	assert.Zero(t, doc.Find("table.domains").Length())
	assert.Contains(t, doc.Find("#domains .notice").Text(), "No domain information")
}

func TestRender_Categories(t *testing.T) {
	report := &models.CategoriesReport{
		Rows:   3,
		KPIs:   models.KPIs{TotalTweets: 3},
		Counts: []models.CategoryCount{{Category: "Activism", Count: 2}, {Category: "Policy", Count: 1}},
		Evolution: []models.CopSeries{
			{Cop: "26", Points: []models.TimePoint{{Bucket: "2021-11-01", Category: "Activism", Count: 2}}},
			{Cop: "27", Points: []models.TimePoint{{Bucket: "2022-11-07", Category: "Policy", Count: 1}}},
		},
	}
	sel := services.Selection{Bucket: services.BucketWeek}

	doc := render(t, PageCategories, CategoriesPage(report, sel))

	assert.Equal(t, 2, doc.Find("svg.bar-chart g.bar").Length())
	assert.Equal(t, 2, doc.Find("article.cop-evolution").Length())
	assert.Equal(t, "COP 26", doc.Find("article.cop-evolution h3").First().Text())
	assert.Equal(t, "week", doc.Find(`select[name="bucket"] option[selected]`).AttrOr("value", ""))
}

func TestRender_OtherStats(t *testing.T) {
	report := &models.TermsReport{
		Rows: 2,
		Stat: services.StatWords,
		Bars: []models.TermBar{{Label: "climate", Total: 5, ByCop: []models.CopValue{{Cop: "26", Value: 5}}}},
	}
	sel := services.Selection{NTerms: 10}

	doc := render(t, PageOtherStats, OtherStatsPage(report, sel, testLimits))

	assert.Equal(t, services.StatWords, doc.Find(`input[name="stat"][checked]`).AttrOr("value", ""))
	assert.Equal(t, 1, doc.Find("svg.stacked-chart rect").Length())
	assert.Contains(t, doc.Find("ul.legend").Text(), "COP 26")
}

func TestRenderer_Write(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	r.Write(rec, http.StatusInternalServerError, PageError, ErrorPage("Actors", "/actors", http.StatusInternalServerError, errors.New("dataset unavailable")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, doc.Find(".error").Text(), "dataset unavailable")
}

func TestRenderer_UnknownPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	assert.Error(t, r.Render(&bytes.Buffer{}, "missing", Page{}))
}
