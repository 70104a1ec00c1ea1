// SPDX-License-Identifier: MIT

// Package job runs the forecast jobs of a job file and collects a report.
package job

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvforecast/accuracy"
	"github.com/katalvlaran/lvforecast/internal/config"
	"github.com/katalvlaran/lvforecast/internal/logging"
	"github.com/katalvlaran/lvforecast/regression"
)

// Result is the outcome of one job. Exactly one of the forecast fields is
// set on success; Error is set on failure.
type Result struct {
	Name          string              `json:"name"`
	Model         config.Model        `json:"model"`
	Forecast      []float64           `json:"forecast,omitempty"`
	MultiForecast [][]float64         `json:"multi_forecast,omitempty"` // one row per step
	States        [][]float64         `json:"states,omitempty"`         // kalman: filtered state after each observation
	Fitted        *regression.Summary `json:"fitted,omitempty"`         // linear: in-sample residuals
	Score         *accuracy.Score     `json:"score,omitempty"`          // forecast vs holdout
	Error         string              `json:"error,omitempty"`
	DurationMS    float64             `json:"duration_ms"`
}

// Failed reports whether the job ended in error.
func (r Result) Failed() bool { return r.Error != "" }

// Report collects the results of one run.
type Report struct {
	RunID     string    `json:"run_id"`
	StartedAt time.Time `json:"started_at"`
	Results   []Result  `json:"results"`
	Failed    int       `json:"failed"`
}

// Runner executes jobs sequentially.
type Runner struct {
	log   *logging.Logger
	now   func() time.Time
	newID func() string
}

// NewRunner returns a Runner logging to log; nil means no logging.
func NewRunner(log *logging.Logger) *Runner {
	if log == nil {
		log = logging.NewNop()
	}

	return &Runner{
		log:   log,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

// Run executes every job in order. A failing job is recorded and the run
// continues; once ctx is done the remaining jobs are marked with ctx.Err().
func (r *Runner) Run(ctx context.Context, jobs []config.Job) *Report {
	rep := &Report{
		RunID:     r.newID(),
		StartedAt: r.now().UTC(),
		Results:   make([]Result, 0, len(jobs)),
	}
	log := r.log.ForRun(rep.RunID)
	log.Info("run started", zap.Int("jobs", len(jobs)))

	for _, j := range jobs {
		jlog := log.ForJob(j.Name, string(j.Model))
		if err := ctx.Err(); err != nil {
			rep.Results = append(rep.Results, Result{Name: j.Name, Model: j.Model, Error: err.Error()})
			rep.Failed++
			jlog.Warn("job skipped", zap.Error(err))
			continue
		}

		start := r.now()
		res, err := execute(j)
		elapsed := r.now().Sub(start)
		res.Name, res.Model = j.Name, j.Model
		res.DurationMS = float64(elapsed.Microseconds()) / 1000
		if err != nil {
			res.Error = err.Error()
			rep.Failed++
			jlog.Error("job failed", zap.Error(err), zap.Duration("duration", elapsed))
		} else {
			jlog.Info("job finished", zap.Duration("duration", elapsed))
		}
		rep.Results = append(rep.Results, res)
	}

	log.Info("run finished", zap.Int("failed", rep.Failed))

	return rep
}
