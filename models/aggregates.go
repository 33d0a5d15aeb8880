package models

// AuthorCount is one row of a top authors table.
type AuthorCount struct {
	Author   string `json:"author"`
	Category string `json:"category,omitempty"`
	Count    int    `json:"count"`
}

// CategoryAuthors groups the top authors of one category.
type CategoryAuthors struct {
	Category string        `json:"category"`
	Authors  []AuthorCount `json:"authors"`
}

type DomainCount struct {
	Domain string `json:"domain"`
	Count  int    `json:"count"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// TimePoint is the number of tweets of a category within one time bucket.
type TimePoint struct {
	Bucket   string `json:"bucket"`
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CopSeries is the category time series of one COP edition.
type CopSeries struct {
	Cop    string      `json:"cop"`
	Points []TimePoint `json:"points"`
}

type KPIs struct {
	TotalTweets      int `json:"total_tweets"`
	UniqueAuthors    int `json:"unique_authors"`
	UniqueCategories int `json:"unique_categories"`
}

type CopValue struct {
	Cop   string `json:"cop"`
	Value int    `json:"value"`
}

// TermBar is one stacked bar of the entities/words chart.
type TermBar struct {
	Label string     `json:"label"`
	Total int        `json:"total"`
	ByCop []CopValue `json:"by_cop"`
}

// Options are the values offered by the sidebar selectors.
type Options struct {
	Langs []string `json:"langs"`
	Cops  []string `json:"cops"`
}
