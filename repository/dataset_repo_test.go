package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cop_dashboard/config"
	"cop_dashboard/db"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"combined_categorization.csv":                   "id;lang;cop;categories;author.userName;createdAt\n1;en;26;A;x;2021-11-01\n2;fr;26;A;x;2021-11-02\n3;en;27;B;y;2022-11-07\n",
		"combined_weblinks.csv":                         "lang,cop,extracted_domains\nen,26,bbc.co.uk\nfr,27,lemonde.fr\n",
		"combined_categorization_most_active_users.csv": "lang;cop;categories;author.userName\nen;26;A;x\n",
		"entity_frequencies.csv":                        "entity;frequency;lang;cop\nglasgow (LOC);5;en;26\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}

	cfg, err := config.LoadFile(writeYAML(t, "data:\n  base_dir: "+dir+"\n"))
	require.NoError(t, err)
	return cfg
}

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDatasetRepository_CSV(t *testing.T) {
	repo := NewDatasetRepository(testConfig(t), nil)
	ctx := context.Background()

	tweets, err := repo.Tweets(ctx, config.DatasetTweets)
	require.NoError(t, err)
	assert.Len(t, tweets, 3)

	active, err := repo.Tweets(ctx, config.DatasetActiveUsers)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	links, err := repo.Weblinks(ctx)
	require.NoError(t, err)
	assert.Equal(t, "lemonde.fr", links[1].Domain)

	terms, err := repo.Terms(ctx, config.DatasetEntities)
	require.NoError(t, err)
	assert.Equal(t, 5, terms[0].Frequency)
}

func TestDatasetRepository_Errors(t *testing.T) {
	repo := NewDatasetRepository(testConfig(t), nil)
	ctx := context.Background()

	_, err := repo.Terms(ctx, config.DatasetWords)
	assert.True(t, errors.Is(err, ErrDatasetUnavailable), "words file was never written")

	_, err = repo.Frame(ctx, "bogus")
	assert.True(t, errors.Is(err, ErrUnknownDataset))

	_, err = repo.Tweets(ctx, config.DatasetWeblinks)
	assert.True(t, errors.Is(err, ErrUnknownDataset))

	_, err = repo.Terms(ctx, config.DatasetTweets)
	assert.True(t, errors.Is(err, ErrUnknownDataset))
}

func TestDatasetRepository_Missing(t *testing.T) {
	cfg := testConfig(t)
	assert.Equal(t, []string{config.DatasetWords}, NewDatasetRepository(cfg, nil).Missing())

	cfg.Data.Words.Source = config.SourceSQL
	assert.Empty(t, NewDatasetRepository(cfg, nil).Missing())
}

func TestDatasetRepository_SQLWithoutDatabase(t *testing.T) {
	cfg := testConfig(t)
	cfg.Data.Tweets.Source = config.SourceSQL

	_, err := NewDatasetRepository(cfg, nil).Tweets(context.Background(), config.DatasetTweets)
	assert.True(t, errors.Is(err, ErrDatasetUnavailable))
}

func TestDatasetRepository_SQLite(t *testing.T) {
	conn, err := db.Open("sqlite", filepath.Join(t.TempDir(), "cop.db"))
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Exec(`CREATE TABLE combined_categorization (
		id INTEGER, lang TEXT, cop REAL, categories TEXT, "author.userName" TEXT, createdAt TEXT)`)
	require.NoError(t, err)
	_, err = conn.Exec(`INSERT INTO combined_categorization VALUES
		(1, 'en', 26.0, 'A', 'x', '2021-11-01'),
		(2, NULL, 27, NULL, 'y', NULL)`)
	require.NoError(t, err)

	cfg := testConfig(t)
	cfg.Data.Tweets.Source = config.SourceSQL

	tweets, err := NewDatasetRepository(cfg, conn).Tweets(context.Background(), config.DatasetTweets)
	require.NoError(t, err)
	require.Len(t, tweets, 2)

	assert.Equal(t, "1", tweets[0].ID)
	assert.Equal(t, "26", tweets[0].Cop)
	assert.Equal(t, UnknownLang, tweets[1].Lang)
	assert.Equal(t, UncategorizedLabel, tweets[1].Category)
	assert.Equal(t, "27", tweets[1].Cop)
}

func TestSQLSource_InvalidTable(t *testing.T) {
	conn, err := db.Open("sqlite", filepath.Join(t.TempDir(), "cop.db"))
	require.NoError(t, err)
	defer conn.Close()

	_, err = NewSQLSource(conn).Load(context.Background(), "tweets", "t; DROP TABLE x")
	assert.True(t, errors.Is(err, ErrDatasetUnavailable))

	_, err = NewSQLSource(conn).Load(context.Background(), "tweets", "missing_table")
	assert.True(t, errors.Is(err, ErrDatasetUnavailable))
}
