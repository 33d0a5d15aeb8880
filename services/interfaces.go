package services

import (
	"context"

	"cop_dashboard/models"
)

// DatasetStore loads datasets. Implementations read the source on every call.
type DatasetStore interface {
	Tweets(ctx context.Context, name string) ([]models.Tweet, error)
	Weblinks(ctx context.Context) ([]models.Weblink, error)
	Terms(ctx context.Context, name string) ([]models.TermFrequency, error)
}
