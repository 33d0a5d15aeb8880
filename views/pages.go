package views

import (
	"slices"
	"strconv"

	"cop_dashboard/models"
	"cop_dashboard/services"
	"cop_dashboard/utils"
)

// Page names, one template set each.
const (
	PageHome        = "home"
	PageActors      = "actors"
	PageCategories  = "categories"
	PageActiveUsers = "active_users"
	PageOtherStats  = "other_stats"
	PageError       = "error"
)

const emptyNotice = "No data available for the selected filters."

type NavLink struct {
	Path   string
	Title  string
	Active bool
}

var navigation = []NavLink{
	{Path: "/", Title: "Home"},
	{Path: "/actors", Title: "Actors"},
	{Path: "/categories", Title: "Categories"},
	{Path: "/most-active-users", Title: "Most active users"},
	{Path: "/other-stats", Title: "Other stats"},
}

// Choice is one option of a select, radio group or multiselect.
type Choice struct {
	Value    string
	Label    string
	Selected bool
}

// Slider is a range input.
type Slider struct {
	Name  string
	Label string
	Min   int
	Max   int
	Value int
}

type KPI struct {
	Label string
	Value string
}

// Sidebar holds the language and COP multiselects.
type Sidebar struct {
	Langs []Choice
	Cops  []Choice
}

// Limits are the slider bounds.
type Limits struct {
	TopNMax    int
	DomainsMin int
	DomainsMax int
	TermsMin   int
	TermsMax   int
}

// Page is the data passed to the layout template.
type Page struct {
	Title   string
	Nav     []NavLink
	Sidebar *Sidebar
	Notice  string
	Error   string
	Content any
}

func newPage(title, path string) Page {
	nav := make([]NavLink, len(navigation))
	copy(nav, navigation)
	for i := range nav {
		nav[i].Active = nav[i].Path == path
	}
	return Page{Title: title, Nav: nav}
}

// NewSidebar marks the selected options. An unrestricted filter selects everything.
func NewSidebar(opts models.Options, f services.Filter) *Sidebar {
	sb := &Sidebar{}
	for _, l := range opts.Langs {
		sb.Langs = append(sb.Langs, Choice{
			Value:    l,
			Label:    utils.LanguageName(l),
			Selected: len(f.Langs) == 0 || slices.Contains(f.Langs, l),
		})
	}
	for _, c := range opts.Cops {
		sb.Cops = append(sb.Cops, Choice{
			Value:    c,
			Label:    utils.CopLabel(c),
			Selected: len(f.Cops) == 0 || slices.Contains(f.Cops, c),
		})
	}
	return sb
}

func bucketChoices(selected services.Bucket) []Choice {
	out := make([]Choice, 0, len(services.Buckets))
	for _, b := range services.Buckets {
		label := string(b)
		if b == services.BucketCop {
			label = "COP edition"
		}
		out = append(out, Choice{Value: string(b), Label: label, Selected: b == selected})
	}
	return out
}

func tweetKPIs(k models.KPIs) []KPI {
	return []KPI{
		{Label: "Tweets", Value: utils.FormatCount(k.TotalTweets)},
		{Label: "Authors", Value: utils.FormatCount(k.UniqueAuthors)},
		{Label: "Categories", Value: utils.FormatCount(k.UniqueCategories)},
	}
}

type HomeContent struct {
	Sections []NavLink
}

// HomePage describes the dashboard sections.
func HomePage() Page {
	p := newPage("COP social media dashboards", "/")
	p.Content = HomeContent{Sections: p.Nav[1:]}
	return p
}

type AuthorRow struct {
	Rank     int
	Author   string
	Category string
	Count    string
}

type DomainRow struct {
	Rank   int
	Domain string
	Count  string
}

type ActorsContent struct {
	KPIs             []KPI
	Categories       []Choice
	TopN             Slider
	Authors          []AuthorRow
	NDomains         Slider
	Domains          []DomainRow
	DomainsAvailable bool
}

// ActorsPage renders the most active authors and the most cited domains.
func ActorsPage(r *models.ActorsReport, sel services.Selection, lim Limits) Page {
	p := newPage("Actors", "/actors")
	p.Sidebar = NewSidebar(r.Options, sel.Filter)
	if r.Rows == 0 {
		p.Notice = emptyNotice
	}

	c := ActorsContent{
		KPIs:             tweetKPIs(r.KPIs),
		Categories:       []Choice{{Value: services.AllCategories, Label: services.AllCategories, Selected: r.Category == services.AllCategories}},
		TopN:             Slider{Name: "top_n", Label: "Number of authors", Min: 1, Max: lim.TopNMax, Value: sel.TopN},
		NDomains:         Slider{Name: "n_domains", Label: "Number of domains", Min: lim.DomainsMin, Max: lim.DomainsMax, Value: sel.NDomains},
		DomainsAvailable: r.DomainsAvailable,
	}
	for _, cat := range r.Categories {
		c.Categories = append(c.Categories, Choice{Value: cat, Label: cat, Selected: cat == r.Category})
	}
	for i, a := range r.Authors {
		c.Authors = append(c.Authors, AuthorRow{Rank: i + 1, Author: a.Author, Category: a.Category, Count: utils.FormatCount(a.Count)})
	}
	for i, d := range r.Domains {
		c.Domains = append(c.Domains, DomainRow{Rank: i + 1, Domain: d.Domain, Count: utils.FormatCount(d.Count)})
	}
	p.Content = c
	return p
}

type CopChart struct {
	Title string
	Chart LineChart
}

type CategoriesContent struct {
	KPIs      []KPI
	Chart     BarChart
	Buckets   []Choice
	Evolution []CopChart
}

// CategoriesPage renders the category distribution and its evolution per COP edition.
func CategoriesPage(r *models.CategoriesReport, sel services.Selection) Page {
	p := newPage("Categories", "/categories")
	p.Sidebar = NewSidebar(r.Options, sel.Filter)
	if r.Rows == 0 {
		p.Notice = emptyNotice
	}

	c := CategoriesContent{
		KPIs:    tweetKPIs(r.KPIs)[:1],
		Chart:   NewCategoryBarChart(r.Counts),
		Buckets: bucketChoices(sel.Bucket),
	}
	for _, s := range r.Evolution {
		c.Evolution = append(c.Evolution, CopChart{Title: utils.CopLabel(s.Cop), Chart: NewLineChart(s.Points)})
	}
	p.Content = c
	return p
}

type ActiveUsersContent struct {
	Rows     string
	Chart    BarChart
	Buckets  []Choice
	Timeline LineChart
}

// ActiveUsersPage renders the categories of the most active users' tweets.
func ActiveUsersPage(r *models.ActiveUsersReport, sel services.Selection) Page {
	p := newPage("Most active users", "/most-active-users")
	p.Sidebar = NewSidebar(r.Options, sel.Filter)
	if r.Rows == 0 {
		p.Notice = emptyNotice
	}
	p.Content = ActiveUsersContent{
		Rows:     utils.FormatCount(r.Rows),
		Chart:    NewCategoryBarChart(r.Counts),
		Buckets:  bucketChoices(sel.Bucket),
		Timeline: NewLineChart(r.Timeline),
	}
	return p
}

type OtherStatsContent struct {
	Stats  []Choice
	NTerms Slider
	Chart  StackedBarChart
}

// OtherStatsPage renders the most frequent entities or words.
func OtherStatsPage(r *models.TermsReport, sel services.Selection, lim Limits) Page {
	p := newPage("Other stats", "/other-stats")
	p.Sidebar = NewSidebar(r.Options, sel.Filter)
	if r.Rows == 0 {
		p.Notice = emptyNotice
	}

	label := "Number of entities"
	if r.Stat == services.StatWords {
		label = "Number of words"
	}
	p.Content = OtherStatsContent{
		Stats: []Choice{
			{Value: services.StatEntities, Label: "Most frequent entities", Selected: r.Stat == services.StatEntities},
			{Value: services.StatWords, Label: "Most frequent words", Selected: r.Stat == services.StatWords},
		},
		NTerms: Slider{Name: "n_terms", Label: label, Min: lim.TermsMin, Max: lim.TermsMax, Value: sel.NTerms},
		Chart:  NewStackedBarChart(r.Bars),
	}
	return p
}

// ErrorPage shows a load or rendering failure.
func ErrorPage(title, path string, status int, err error) Page {
	p := newPage(title, path)
	p.Error = strconv.Itoa(status) + ": " + err.Error()
	return p
}
