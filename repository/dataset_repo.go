package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"cop_dashboard/config"
	"cop_dashboard/logger"
	"cop_dashboard/models"
)

// DatasetRepository loads datasets from their configured source on every call.
type DatasetRepository struct {
	data        config.DataConfig
	registrable bool
	sql         *SQLSource
}

// NewDatasetRepository wires the repository; conn may be nil when no dataset uses SQL.
func NewDatasetRepository(cfg *config.Config, conn *sql.DB) *DatasetRepository {
	repo := &DatasetRepository{
		data:        cfg.Data,
		registrable: cfg.Domains.Registrable,
	}
	if conn != nil {
		repo.sql = NewSQLSource(conn)
	}
	return repo
}

// Datasets lists every dataset the dashboard reads.
var Datasets = []string{
	config.DatasetTweets,
	config.DatasetWeblinks,
	config.DatasetActiveUsers,
	config.DatasetEntities,
	config.DatasetWords,
}

// Missing lists the CSV datasets whose file does not exist. Pages backed by them fail until
// the file is provided.
func (r *DatasetRepository) Missing() []string {
	var missing []string
	for _, name := range Datasets {
		ds, _ := r.data.Lookup(name)
		if ds.Source == config.SourceSQL {
			continue
		}
		if _, err := os.Stat(ds.Path); err != nil {
			missing = append(missing, name)
		}
	}
	return missing
}

// Frame reads the named dataset.
func (r *DatasetRepository) Frame(ctx context.Context, name string) (*Frame, error) {
	ds, ok := r.data.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDataset, name)
	}

	var (
		frame *Frame
		err   error
	)
	switch ds.Source {
	case config.SourceSQL:
		frame, err = r.sql.Load(ctx, name, ds.Table)
	case config.SourceCSV, "":
		frame, err = LoadCSV(name, ds.Path, ds.Comma())
	default:
		return nil, fmt.Errorf("%w: %s: unsupported source %q", ErrDatasetUnavailable, name, ds.Source)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("dataset loaded", "dataset", name, "source", ds.Source, "rows", frame.Len(), "skipped", frame.Skipped)
	return frame, nil
}

// Tweets loads a categorization dataset (tweets or active_users).
func (r *DatasetRepository) Tweets(ctx context.Context, name string) ([]models.Tweet, error) {
	if name != config.DatasetTweets && name != config.DatasetActiveUsers {
		return nil, fmt.Errorf("%w: %s does not hold tweets", ErrUnknownDataset, name)
	}
	frame, err := r.Frame(ctx, name)
	if err != nil {
		return nil, err
	}
	return DecodeTweets(frame)
}

// Weblinks loads the cited links dataset.
func (r *DatasetRepository) Weblinks(ctx context.Context) ([]models.Weblink, error) {
	frame, err := r.Frame(ctx, config.DatasetWeblinks)
	if err != nil {
		return nil, err
	}
	return DecodeWeblinks(frame, r.registrable)
}

// Terms loads a term frequency dataset (entities or words).
func (r *DatasetRepository) Terms(ctx context.Context, name string) ([]models.TermFrequency, error) {
	if name != config.DatasetEntities && name != config.DatasetWords {
		return nil, fmt.Errorf("%w: %s does not hold term frequencies", ErrUnknownDataset, name)
	}
	frame, err := r.Frame(ctx, name)
	if err != nil {
		return nil, err
	}
	return DecodeTermFrequencies(frame)
}
