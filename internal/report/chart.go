// Package report renders training results: an HTML win-rate chart and
// coloured console traces of games and learned values.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/jason-s-yu/rummy/engine/agent"
)

// DefaultWindow is the rolling window used when a chart is asked for with window <= 0.
const DefaultWindow = 100

// Series is one named run plotted on the chart.
type Series struct {
	Name    string
	History []agent.EpisodeResult
}

// RollingWinRate returns, for every episode, the fraction of learner wins
// over the last window episodes (fewer at the start).
func RollingWinRate(history []agent.EpisodeResult, window int) []float64 {
	if window <= 0 {
		window = DefaultWindow
	}
	out := make([]float64, len(history))
	wins := 0
	for i, er := range history {
		if er.LearnerWon {
			wins++
		}
		if i >= window && history[i-window].LearnerWon {
			wins--
		}
		out[i] = float64(wins) / float64(min(i+1, window))
	}
	return out
}

// RollingReward is RollingWinRate for the per-episode learner reward.
func RollingReward(history []agent.EpisodeResult, window int) []float64 {
	if window <= 0 {
		window = DefaultWindow
	}
	out := make([]float64, len(history))
	sum := 0.0
	for i, er := range history {
		sum += er.Reward
		if i >= window {
			sum -= history[i-window].Reward
		}
		out[i] = sum / float64(min(i+1, window))
	}
	return out
}

// RenderChart writes an HTML page with the rolling win rate and the rolling
// reward of every series.
func RenderChart(w io.Writer, window int, series ...Series) error {
	if len(series) == 0 {
		return fmt.Errorf("render chart: no series")
	}
	if window <= 0 {
		window = DefaultWindow
	}
	longest := 0
	for _, s := range series {
		longest = max(longest, len(s.History))
	}
	steps := make([]string, longest)
	for i := range steps {
		steps[i] = fmt.Sprintf("%d", i+1)
	}

	winLine := newLine("Learner win rate", fmt.Sprintf("rolling %d episodes", window), steps)
	rewardLine := newLine("Learner reward", fmt.Sprintf("rolling %d episodes", window), steps)
	for _, s := range series {
		winLine.AddSeries(s.Name, lineData(RollingWinRate(s.History, window)))
		rewardLine.AddSeries(s.Name, lineData(RollingReward(s.History, window)))
	}

	page := components.NewPage()
	page.PageTitle = "Simple Rummy training"
	page.AddCharts(winLine, rewardLine)
	return page.Render(w)
}

// WriteChart renders the chart to path, creating parent directories.
func WriteChart(path string, window int, series ...Series) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("chart dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart: %w", err)
	}
	if err := RenderChart(f, window, series...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func newLine(title, subtitle string, steps []string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{Theme: "shine"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "episode"}),
	)
	line.SetXAxis(steps)
	return line
}

func lineData(values []float64) []opts.LineData {
	items := make([]opts.LineData, 0, len(values))
	for _, v := range values {
		items = append(items, opts.LineData{Value: v})
	}
	return items
}
