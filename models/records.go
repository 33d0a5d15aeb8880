package models

import "time"

// Tweet is one row of a categorization dataset.
type Tweet struct {
	ID        string    `json:"id,omitempty"`
	Lang      string    `json:"lang"`
	Cop       string    `json:"cop"`
	Category  string    `json:"category"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at,omitempty"` // zero when missing or unparseable
}

// Weblink is one cited link of the weblinks dataset.
type Weblink struct {
	Lang   string `json:"lang"`
	Cop    string `json:"cop"`
	Domain string `json:"domain"`
}

// TermFrequency is a pre-aggregated count of a named entity or word.
type TermFrequency struct {
	Term      string `json:"term"`
	Frequency int    `json:"frequency"`
	Lang      string `json:"lang"`
	Cop       string `json:"cop"`
}

// Filterable is implemented by every record the sidebar filters apply to.
type Filterable interface {
	Language() string
	Edition() string
}

func (t Tweet) Language() string { return t.Lang }
func (t Tweet) Edition() string  { return t.Cop }

func (w Weblink) Language() string { return w.Lang }
func (w Weblink) Edition() string  { return w.Cop }

func (f TermFrequency) Language() string { return f.Lang }
func (f TermFrequency) Edition() string  { return f.Cop }
