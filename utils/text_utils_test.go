package utils

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeduplicateSlice(t *testing.T) {
	assert.Equal(t, []string{"en", "fr"}, DeduplicateSlice([]string{" en", "", "fr", "en "}))
	assert.Empty(t, DeduplicateSlice(nil))
}

func TestNormalizeCop(t *testing.T) {
	tests := map[string]string{
		"26":     "26",
		" 26.0 ": "26",
		"COP27":  "27",
		"cop 28": "28",
		"26.5":   "26.5",
		"":       "",
		"n/a":    "",
		"NaN":    "",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeCop(in), in)
	}
}

func TestCompareCops(t *testing.T) {
	cops := []string{"9", "x", "27", "", "26"}
	slices.SortFunc(cops, CompareCops)
	assert.Equal(t, []string{"9", "26", "27", "", "x"}, cops)
}

func TestCopLabel(t *testing.T) {
	assert.Equal(t, "COP 26", CopLabel("26"))
	assert.Equal(t, "", CopLabel(""))
}

func TestNormalizeDomain(t *testing.T) {
	assert.Equal(t, "bbc.co.uk", NormalizeDomain(" WWW.BBC.co.uk. ", false))
	assert.Equal(t, "news.bbc.co.uk", NormalizeDomain("news.bbc.co.uk", false))
	assert.Equal(t, "bbc.co.uk", NormalizeDomain("news.bbc.co.uk", true))
	assert.Equal(t, "localhost", NormalizeDomain("localhost", true))
	assert.Equal(t, "", NormalizeDomain("  ", true))
}

func TestHostFromURL(t *testing.T) {
	assert.Equal(t, "www.lemonde.fr", HostFromURL("https://www.lemonde.fr/planete/article.html?x=1"))
	assert.Equal(t, "t.co", HostFromURL("t.co/abc"))
	assert.Equal(t, "", HostFromURL(""))
}

func TestStripEntityType(t *testing.T) {
	assert.Equal(t, "boris johnson", StripEntityType("boris johnson (PER)"))
	assert.Equal(t, "COP26", StripEntityType("COP26"))
	assert.Equal(t, "un (climate) summit", StripEntityType("un (climate) summit"))
}
