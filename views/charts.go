package views

import (
	"fmt"
	"slices"
	"strings"

	"cop_dashboard/models"
	"cop_dashboard/utils"
)

// Chart geometry in SVG user units.
const (
	chartWidth  = 760
	labelWidth  = 220
	valueGutter = 60
	barHeight   = 22
	barGap      = 6
	lineHeight  = 300
	linePadding = 40
)

const barColor = "#1f77b4"

var palette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// Color picks a palette colour for the i-th series.
func Color(i int) string {
	return palette[i%len(palette)]
}

type Bar struct {
	Label string
	Value int
	Text  string
	Y     int
	Width int
}

// BarChart is a horizontal bar chart, largest value on top.
type BarChart struct {
	Width      int
	Height     int
	LabelWidth int
	Color      string
	Bars       []Bar
}

func scale(v, top, span int) int {
	if top <= 0 {
		return 0
	}
	w := v * span / top
	if v > 0 && w < 1 {
		w = 1
	}
	return w
}

// NewCategoryBarChart lays out category counts as horizontal bars.
func NewCategoryBarChart(counts []models.CategoryCount) BarChart {
	chart := BarChart{Width: chartWidth, LabelWidth: labelWidth, Color: barColor}
	maxValue := 0
	for _, c := range counts {
		if c.Count > maxValue {
			maxValue = c.Count
		}
	}
	span := chartWidth - labelWidth - valueGutter
	for i, c := range counts {
		chart.Bars = append(chart.Bars, Bar{
			Label: c.Category,
			Value: c.Count,
			Text:  utils.FormatCount(c.Count),
			Y:     i * (barHeight + barGap),
			Width: scale(c.Count, maxValue, span),
		})
	}
	chart.Height = len(chart.Bars) * (barHeight + barGap)
	return chart
}

type Segment struct {
	Cop   string
	Value int
	X     int
	Width int
	Color string
}

type StackedBar struct {
	Label    string
	Total    int
	Text     string
	Y        int
	Width    int
	Segments []Segment
}

type LegendItem struct {
	Label string
	Color string
}

// StackedBarChart shows term totals split per COP edition.
type StackedBarChart struct {
	Width      int
	Height     int
	LabelWidth int
	Bars       []StackedBar
	Legend     []LegendItem
}

// NewStackedBarChart lays out term bars; each COP edition keeps the same colour across bars.
func NewStackedBarChart(bars []models.TermBar) StackedBarChart {
	chart := StackedBarChart{Width: chartWidth, LabelWidth: labelWidth}

	var cops []string
	maxValue := 0
	for _, b := range bars {
		if b.Total > maxValue {
			maxValue = b.Total
		}
		for _, cv := range b.ByCop {
			if !slices.Contains(cops, cv.Cop) {
				cops = append(cops, cv.Cop)
			}
		}
	}
	slices.SortFunc(cops, utils.CompareCops)
	colors := make(map[string]string, len(cops))
	for i, c := range cops {
		colors[c] = Color(i)
		label := utils.CopLabel(c)
		if label == "" {
			label = "n/a"
		}
		chart.Legend = append(chart.Legend, LegendItem{Label: label, Color: colors[c]})
	}

	span := chartWidth - labelWidth - valueGutter
	for i, b := range bars {
		sb := StackedBar{
			Label: b.Label,
			Total: b.Total,
			Text:  utils.FormatCount(b.Total),
			Y:     i * (barHeight + barGap),
			Width: scale(b.Total, maxValue, span),
		}
		x := 0
		for _, cv := range b.ByCop {
			w := scale(cv.Value, maxValue, span)
			sb.Segments = append(sb.Segments, Segment{Cop: cv.Cop, Value: cv.Value, X: x, Width: w, Color: colors[cv.Cop]})
			x += w
		}
		chart.Bars = append(chart.Bars, sb)
	}
	chart.Height = len(chart.Bars) * (barHeight + barGap)
	return chart
}

type Series struct {
	Label  string
	Color  string
	Points string // SVG polyline points
	Total  int
}

type Tick struct {
	Label string
	X     int
}

// LineChart plots one series per category over ordered buckets.
type LineChart struct {
	Width  int
	Height int
	Top    int
	Bottom int
	Left   int
	Right  int
	Max    int
	Series []Series
	Ticks  []Tick
}

// NewLineChart lays out time points. Buckets are spaced evenly in their given order and
// missing (bucket, category) pairs are plotted as zero.
func NewLineChart(points []models.TimePoint) LineChart {
	chart := LineChart{
		Width:  chartWidth,
		Height: lineHeight,
		Top:    linePadding / 2,
		Bottom: lineHeight - linePadding,
		Left:   linePadding + 10,
		Right:  chartWidth - linePadding/2,
	}

	var buckets, categories []string
	values := make(map[[2]string]int)
	for _, p := range points {
		if !slices.Contains(buckets, p.Bucket) {
			buckets = append(buckets, p.Bucket)
		}
		if !slices.Contains(categories, p.Category) {
			categories = append(categories, p.Category)
		}
		values[[2]string{p.Bucket, p.Category}] += p.Count
		if v := values[[2]string{p.Bucket, p.Category}]; v > chart.Max {
			chart.Max = v
		}
	}
	slices.Sort(categories)
	if len(buckets) == 0 {
		return chart
	}

	xOf := func(i int) int {
		if len(buckets) == 1 {
			return (chart.Left + chart.Right) / 2
		}
		return chart.Left + i*(chart.Right-chart.Left)/(len(buckets)-1)
	}
	yOf := func(v int) int {
		return chart.Bottom - scale(v, chart.Max, chart.Bottom-chart.Top)
	}

	for ci, c := range categories {
		var sb strings.Builder
		total := 0
		for bi, b := range buckets {
			v := values[[2]string{b, c}]
			total += v
			if bi > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d,%d", xOf(bi), yOf(v))
		}
		chart.Series = append(chart.Series, Series{Label: c, Color: Color(ci), Points: sb.String(), Total: total})
	}

	step := 1
	if len(buckets) > 8 {
		step = (len(buckets) + 7) / 8
	}
	for i := 0; i < len(buckets); i += step {
		chart.Ticks = append(chart.Ticks, Tick{Label: buckets[i], X: xOf(i)})
	}
	return chart
}
