package main

import (
	"io"
	"text/template"
	"time"

	"github.com/plus3/fallblock/game"
)

type Report struct {
	// Configuration
	Config game.Config
	Seed   uint64

	// Results
	Session   game.Stats
	Systems   []game.SystemStats
	TotalTime time.Duration
	TickTime  Stats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

const reportTemplate = `
# Simulation Report

## Configuration
- **Board:** {{.Config.Columns}}x{{.Config.Rows}}
- **Cut if blocked:** {{.Config.CutIfBlocked}}
- **Seed:** {{if .Seed}}{{.Seed}}{{else}}cycle{{end}}

## Game
- **Ticks:** {{.Session.Ticks}}
- **Pieces placed:** {{.Session.Pieces}}
- **Rows descended:** {{.Session.Descents}}
- **Pieces cut:** {{.Session.Refinements}}
- **Landings:** {{.Session.Landings}}
- **Game over:** {{.Session.GameOver}}

## Timing
- **Total:** {{.TotalTime}}
- **Tick:** avg {{.TickTime.Avg}}, min {{.TickTime.Min}}, max {{.TickTime.Max}}
{{range .Systems}}- {{.Name}}: {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}`

func (r *Report) Generate(w io.Writer) error {
	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}
