package models

// APIResponse is the envelope of every API response.
type APIResponse struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message" example:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// AuthorsResponse documents GET /api/authors.
type AuthorsResponse struct {
	Code    int           `json:"code" example:"0"`
	Message string        `json:"message" example:"success"`
	Data    []AuthorCount `json:"data"`
}

// DomainsResponse documents GET /api/domains.
type DomainsResponse struct {
	Code    int           `json:"code" example:"0"`
	Message string        `json:"message" example:"success"`
	Data    []DomainCount `json:"data"`
}

// CategoriesResponse documents GET /api/categories.
type CategoriesResponse struct {
	Code    int             `json:"code" example:"0"`
	Message string          `json:"message" example:"success"`
	Data    []CategoryCount `json:"data"`
}

// KPIsResponse documents GET /api/kpis.
type KPIsResponse struct {
	Code    int    `json:"code" example:"0"`
	Message string `json:"message" example:"success"`
	Data    KPIs   `json:"data"`
}

// OptionsResponse documents GET /api/options.
type OptionsResponse struct {
	Code    int     `json:"code" example:"0"`
	Message string  `json:"message" example:"success"`
	Data    Options `json:"data"`
}

// AuthorsByCategoryResponse documents GET /api/authors/by-category.
type AuthorsByCategoryResponse struct {
	Code    int               `json:"code" example:"0"`
	Message string            `json:"message" example:"success"`
	Data    []CategoryAuthors `json:"data"`
}

// TimelineResponse documents GET /api/categories/timeline.
type TimelineResponse struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message" example:"success"`
	Data    []TimePoint `json:"data"`
}

// EvolutionResponse documents GET /api/categories/evolution.
type EvolutionResponse struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message" example:"success"`
	Data    []CopSeries `json:"data"`
}

// TermsResponse documents GET /api/terms.
type TermsResponse struct {
	Code    int       `json:"code" example:"0"`
	Message string    `json:"message" example:"success"`
	Data    []TermBar `json:"data"`
}
