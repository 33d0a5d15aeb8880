package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cop_dashboard/models"
)

func TestNewCategoryBarChart(t *testing.T) {
	chart := NewCategoryBarChart([]models.CategoryCount{
		{Category: "Activism", Count: 1000},
		{Category: "Policy", Count: 500},
	})

	require.Len(t, chart.Bars, 2)
	assert.Equal(t, 480, chart.Bars[0].Width)
	assert.Equal(t, 240, chart.Bars[1].Width)
	assert.Equal(t, 28, chart.Bars[1].Y)
	assert.Equal(t, "1,000", chart.Bars[0].Text)
	assert.Equal(t, 56, chart.Height)
}

func TestNewCategoryBarChart_Empty(t *testing.T) {
	chart := NewCategoryBarChart(nil)
	assert.Empty(t, chart.Bars)
	assert.Zero(t, chart.Height)
}

func TestNewLineChart(t *testing.T) {
	chart := NewLineChart([]models.TimePoint{
		{Bucket: "2021-11-01", Category: "x", Count: 2},
		{Bucket: "2021-11-01", Category: "y", Count: 1},
		{Bucket: "2021-11-02", Category: "x", Count: 4},
	})

	assert.Equal(t, 4, chart.Max)
	require.Len(t, chart.Series, 2)
	assert.Equal(t, "x", chart.Series[0].Label)
	assert.Equal(t, "50,140 740,20", chart.Series[0].Points)
	assert.Equal(t, 6, chart.Series[0].Total)
	// missing bucket plotted at zero
	assert.Equal(t, "50,200 740,260", chart.Series[1].Points)
	assert.Len(t, chart.Ticks, 2)
}

func TestNewLineChart_TickThinning(t *testing.T) {
	var points []models.TimePoint
	for _, b := range []string{"01", "02", "03", "04", "05", "06", "07", "08", "09", "10", "11", "12"} {
		points = append(points, models.TimePoint{Bucket: "2021-" + b, Category: "x", Count: 1})
	}
	chart := NewLineChart(points)
	assert.LessOrEqual(t, len(chart.Ticks), 8)
	assert.Equal(t, "2021-01", chart.Ticks[0].Label)
}

func TestNewStackedBarChart(t *testing.T) {
	chart := NewStackedBarChart([]models.TermBar{
		{Label: "Paris", Total: 10, ByCop: []models.CopValue{{Cop: "26", Value: 6}, {Cop: "27", Value: 4}}},
		{Label: "Glasgow", Total: 5, ByCop: []models.CopValue{{Cop: "27", Value: 5}}},
	})

	require.Len(t, chart.Legend, 2)
	assert.Equal(t, "COP 26", chart.Legend[0].Label)
	assert.Equal(t, "COP 27", chart.Legend[1].Label)

	require.Len(t, chart.Bars, 2)
	first := chart.Bars[0].Segments
	require.Len(t, first, 2)
	assert.Equal(t, 288, first[0].Width)
	assert.Equal(t, 288, first[1].X)
	assert.Equal(t, 192, first[1].Width)

	second := chart.Bars[1].Segments
	require.Len(t, second, 1)
	assert.Equal(t, first[1].Color, second[0].Color)
	assert.Equal(t, 240, second[0].Width)
}
