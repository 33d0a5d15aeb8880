package models

// ActorsReport backs the actors page.
type ActorsReport struct {
	Options          Options       `json:"options"`
	Rows             int           `json:"rows"`
	KPIs             KPIs          `json:"kpis"`
	Categories       []string      `json:"categories"`
	Category         string        `json:"category"`
	Authors          []AuthorCount `json:"authors"`
	Domains          []DomainCount `json:"domains"`
	DomainsAvailable bool          `json:"domains_available"`
}

// CategoriesReport backs the categories overview page.
type CategoriesReport struct {
	Options   Options         `json:"options"`
	Rows      int             `json:"rows"`
	KPIs      KPIs            `json:"kpis"`
	Counts    []CategoryCount `json:"counts"`
	Evolution []CopSeries     `json:"evolution"`
	Bucket    string          `json:"bucket"`
}

// ActiveUsersReport backs the most active users page.
type ActiveUsersReport struct {
	Options  Options         `json:"options"`
	Rows     int             `json:"rows"`
	Counts   []CategoryCount `json:"counts"`
	Timeline []TimePoint     `json:"timeline"`
	Bucket   string          `json:"bucket"`
}

// TermsReport backs the entities/words page.
type TermsReport struct {
	Options Options   `json:"options"`
	Rows    int       `json:"rows"`
	Stat    string    `json:"stat"`
	Bars    []TermBar `json:"bars"`
}
