package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ColdZealDky/sleeper-scripts/model"
)

// RenderFieldGoalSummary writes a combined chart: attempts and makes per
// distance bucket as bars, with the success rate as a line on a secondary
// percentage axis. Buckets with no attempts leave a gap in the rate line.
func RenderFieldGoalSummary(w io.Writer, season int, summaries []model.BucketSummary) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%d field goals by distance", season),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Distance (yards)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Kicks"}),
	)
	bar.ExtendYAxis(opts.YAxis{Name: "Success %", Type: "value"})

	labels := make([]string, 0, len(summaries))
	attempts := make([]opts.BarData, 0, len(summaries))
	makes := make([]opts.BarData, 0, len(summaries))
	rates := make([]opts.LineData, 0, len(summaries))
	for _, s := range summaries {
		labels = append(labels, s.Bucket.Label)
		attempts = append(attempts, opts.BarData{Value: s.Attempts})
		makes = append(makes, opts.BarData{Value: s.Makes})
		rates = append(rates, opts.LineData{Value: barValue(s.SuccessRate())})
	}

	bar.SetXAxis(labels).
		AddSeries("Attempts", attempts).
		AddSeries("Makes", makes)

	line := charts.NewLine()
	line.SetXAxis(labels).
		AddSeries("Success rate", rates, charts.WithLineChartOpts(opts.LineChart{YAxisIndex: 1}))

	bar.Overlap(line)
	return bar.Render(w)
}
