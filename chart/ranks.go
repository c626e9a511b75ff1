// Package chart renders analysis results as self-contained HTML pages.
package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ColdZealDky/sleeper-scripts/controller"
)

// RenderPositionRanks writes one chart per position: weekly highest and
// at-rank scores as bars, with the range averages overlaid as flat lines.
// Weeks where a statistic was absent render as gaps rather than zeros.
func RenderPositionRanks(w io.Writer, series []controller.PositionRankSeries) error {
	page := components.NewPage()
	for _, s := range series {
		page.AddCharts(positionRankChart(s))
	}
	return page.Render(w)
}

func positionRankChart(s controller.PositionRankSeries) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s weekly scores", s.Position),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Week"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Points"}),
	)

	weeks := make([]string, 0, len(s.Weeks))
	highest := make([]opts.BarData, 0, len(s.Weeks))
	atRank := make([]opts.BarData, 0, len(s.Weeks))
	for _, wk := range s.Weeks {
		weeks = append(weeks, fmt.Sprintf("%d", wk.Week))
		highest = append(highest, opts.BarData{Value: barValue(wk.Highest)})
		atRank = append(atRank, opts.BarData{Value: barValue(wk.AtRank)})
	}

	bar.SetXAxis(weeks).
		AddSeries("Highest", highest).
		AddSeries(fmt.Sprintf("Rank %d", s.Rank), atRank)

	bar.Overlap(averageLine(weeks, "Average highest", s.AverageHighest))
	bar.Overlap(averageLine(weeks, fmt.Sprintf("Average rank %d", s.Rank), s.AverageAtRank))
	return bar
}

// averageLine draws a constant line across every week. A nil average means
// the statistic never existed in the range, which renders as an empty series.
func averageLine(weeks []string, name string, avg *float64) *charts.Line {
	data := make([]opts.LineData, 0, len(weeks))
	for range weeks {
		data = append(data, opts.LineData{Value: barValue(avg)})
	}

	line := charts.NewLine()
	line.SetXAxis(weeks).AddSeries(name, data)
	return line
}

// barValue maps an absent statistic to echarts' "-" placeholder, which
// leaves a gap in the series instead of plotting a zero.
func barValue(v *float64) any {
	if v == nil {
		return "-"
	}
	return *v
}
