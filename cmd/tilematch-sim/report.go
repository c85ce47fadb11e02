package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/plus3/tilematch/config"
	"github.com/plus3/tilematch/game"
)

type Report struct {
	// Configuration
	RunID       string
	Config      config.Config
	ClearFailed bool

	// Results
	Cycles          int
	Selects         int
	Marked          int
	Matches         int
	FailedMatches   int
	Destroyed       int
	TileMoves       int
	TilesLeft       int
	Violations      int
	Created         int
	MovedEvents     int
	DestroyedEvents int
	TotalTime       time.Duration
	CycleTime       Stats
	Systems         []game.SystemStats
	FinalBoard      string
	MemStatsStart   runtime.MemStats
	MemStatsEnd     runtime.MemStats
}

type Stats struct {
	Min    time.Duration
	Max    time.Duration
	Mean   time.Duration
	StdDev time.Duration
	P99    time.Duration
}

// NewStats summarizes duration samples given in nanoseconds.
func NewStats(samples []float64) Stats {
	if len(samples) == 0 {
		return Stats{}
	}

	sorted := slices.Clone(samples)
	slices.Sort(sorted)
	mean, std := stat.MeanStdDev(sorted, nil)

	return Stats{
		Min:    time.Duration(sorted[0]),
		Max:    time.Duration(sorted[len(sorted)-1]),
		Mean:   time.Duration(mean),
		StdDev: time.Duration(std),
		P99:    time.Duration(stat.Quantile(0.99, stat.Empirical, sorted, nil)),
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tile Match Simulation Report

## Configuration
- **Run:** {{.RunID}}
- **Board:** {{.Config.Width}}x{{.Config.Height}}
- **Seed:** {{.Config.Seed}}
- **Gravity:** {{.Config.Gravity}}
- **Cycle Interval:** {{if .Config.Interval}}{{.Config.Interval}}{{else}}unpaced{{end}}
- **Clear Marks On Failed Match:** {{.ClearFailed}}

## Gameplay
- **Cycles:** {{.Cycles}}
- **Selects:** {{.Selects}} ({{.Marked}} hit a tile)
- **Matches:** {{.Matches}} ({{.FailedMatches}} failed attempts)
- **Tiles Destroyed:** {{.Destroyed}}
- **Tile Moves:** {{.TileMoves}}
- **Tiles Left:** {{.TilesLeft}}
- **Events:** {{.Created}} created, {{.MovedEvents}} moved, {{.DestroyedEvents}} destroyed
- **Invariant Violations:** {{.Violations}}

## Performance
- **Total Time:** {{.TotalTime}}
- **Cycle Time:**
  - **Mean:** {{.CycleTime.Mean}} (stddev {{.CycleTime.StdDev}})
  - **Min:** {{.CycleTime.Min}}
  - **Max:** {{.CycleTime.Max}}
  - **P99:** {{.CycleTime.P99}}
{{range .Systems}}- {{.Name}}: {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> {{mb .MemStatsEnd.TotalAlloc}} MiB
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .FinalBoard}}
## Final Board
` + "```" + `
{{.FinalBoard}}` + "```" + `
{{end}}`

	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
