package repository

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV_SemicolonWithBOM(t *testing.T) {
	input := "\ufeffid;lang;cop\n1;en;26\n2;fr;27\n"

	f, err := ReadCSV("tweets", strings.NewReader(input), ';')
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "lang", "cop"}, f.Columns)
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, 0, f.Index("ID"))
	assert.Equal(t, "fr", Value(f.Rows[1], f.Index("lang")))
}

func TestReadCSV_ShortAndLongRows(t *testing.T) {
	input := "a,b,c\n1,2\n1,2,3,4\n5,6,7\n"

	f, err := ReadCSV("weblinks", strings.NewReader(input), ',')
	require.NoError(t, err)

	require.Equal(t, 2, f.Len())
	assert.Equal(t, []string{"1", "2", ""}, f.Rows[0])
	assert.Equal(t, []string{"5", "6", "7"}, f.Rows[1])
	assert.Equal(t, 1, f.Skipped)
}

func TestReadCSV_EmptyFile(t *testing.T) {
	_, err := ReadCSV("tweets", strings.NewReader(""), ';')
	assert.True(t, errors.Is(err, ErrDatasetUnavailable))
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := LoadCSV("tweets", filepath.Join(t.TempDir(), "nope.csv"), ';')
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDatasetUnavailable))
	assert.Contains(t, err.Error(), "tweets")
}

func TestLoadCSV_QuotedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.csv")
	require.NoError(t, os.WriteFile(path, []byte("lang,cop,extracted_domains\nen,26,\"bbc.co.uk\"\n"), 0644))

	f, err := LoadCSV("weblinks", path, ',')
	require.NoError(t, err)
	assert.Equal(t, "bbc.co.uk", Value(f.Rows[0], 2))
}

func TestFrame_Require(t *testing.T) {
	f := NewFrame("tweets", []string{"lang"}, nil)

	_, err := f.Require("cop")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingColumn))
	assert.Contains(t, err.Error(), `"cop"`)

	assert.Equal(t, "", Value([]string{"x"}, -1))
	assert.Equal(t, "", Value([]string{"x"}, 3))
}
