package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cop_dashboard/models"
)

func TestTopTerms_Entities(t *testing.T) {
	terms := []models.TermFrequency{
		{Term: "glasgow (LOC)", Frequency: 5, Cop: "26"},
		{Term: "glasgow (ORG)", Frequency: 2, Cop: "26"},
		{Term: "boris johnson (PER)", Frequency: 4, Cop: "26"},
		{Term: "boris johnson (PER)", Frequency: 1, Cop: "27"},
		{Term: "sharm el-sheikh (LOC)", Frequency: 3, Cop: "27"},
	}

	bars := TopTerms(terms, 2, true)
	require.Len(t, bars, 2)
	assert.Equal(t, models.TermBar{Label: "glasgow", Total: 7, ByCop: []models.CopValue{{Cop: "26", Value: 7}}}, bars[0])
	assert.Equal(t, "boris johnson", bars[1].Label)
	assert.Equal(t, []models.CopValue{{Cop: "26", Value: 4}, {Cop: "27", Value: 1}}, bars[1].ByCop)
}

func TestTopTerms_WordsKeepLabels(t *testing.T) {
	terms := []models.TermFrequency{
		{Term: "climate", Frequency: 3, Cop: "26"},
		{Term: "finance (x)", Frequency: 3, Cop: "26"},
	}
	bars := TopTerms(terms, 10, false)
	require.Len(t, bars, 2)
	assert.Equal(t, "climate", bars[0].Label)
	assert.Equal(t, "finance (x)", bars[1].Label)
	assert.Empty(t, TopTerms(terms, 0, false))
}
