// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Model names a forecasting method a job can run.
type Model string

// Supported models.
const (
	ModelLinear               Model = "linear"
	ModelVAR                  Model = "var"
	ModelKalman               Model = "kalman"
	ModelMovingAverage        Model = "moving-average"
	ModelEMA                  Model = "ema"
	ModelExponential          Model = "exponential"
	ModelDoubleAdditive       Model = "double-additive"
	ModelDoubleMultiplicative Model = "double-multiplicative"
	ModelTriple               Model = "triple"
)

// Models lists every supported model in a stable order.
func Models() []Model {
	return []Model{
		ModelLinear, ModelVAR, ModelKalman,
		ModelMovingAverage, ModelEMA, ModelExponential,
		ModelDoubleAdditive, ModelDoubleMultiplicative, ModelTriple,
	}
}

// Known reports whether m is a supported model.
func (m Model) Known() bool {
	for _, k := range Models() {
		if m == k {
			return true
		}
	}

	return false
}

// Scalar reports whether m consumes a single series.
func (m Model) Scalar() bool {
	return m.Known() && m != ModelVAR && m != ModelKalman
}

// Default parameter values applied to fields left unset in a job file.
const (
	DefaultLag    = 1
	DefaultOrder  = 1
	DefaultWindow = 3
	DefaultLevel  = 0.2
	DefaultFactor = 0.5
)

// JobFile is the root of a YAML job file.
type JobFile struct {
	Jobs []Job `yaml:"jobs"`
}

// Job describes one forecast to run.
type Job struct {
	Name        string      `yaml:"name"`
	Model       Model       `yaml:"model"`
	Series      []float64   `yaml:"series,omitempty"`
	MultiSeries [][]float64 `yaml:"multi_series,omitempty"` // one row per time step
	Horizon     int         `yaml:"horizon"`
	Holdout     []float64   `yaml:"holdout,omitempty"` // observed values to score the forecast against
	Params      Params      `yaml:"params,omitempty"`
}

// Params carries the model parameters. Each model reads only its own fields.
type Params struct {
	Lag    int     `yaml:"lag,omitempty"`    // linear
	Order  int     `yaml:"order,omitempty"`  // var
	Window int     `yaml:"window,omitempty"` // moving-average
	Factor float64 `yaml:"factor,omitempty"` // ema
	Level  float64 `yaml:"level,omitempty"`  // exponential
	Alpha  float64 `yaml:"alpha,omitempty"`  // double-*, triple
	Beta   float64 `yaml:"beta,omitempty"`   // double-*, triple
	Gamma  float64 `yaml:"gamma,omitempty"`  // triple
	Period int     `yaml:"period,omitempty"` // triple

	Kalman *KalmanParams `yaml:"kalman,omitempty"`
}

// KalmanParams describes a linear state-space model and the observations
// to filter through it.
type KalmanParams struct {
	A  [][]float64 `yaml:"a"`
	B  [][]float64 `yaml:"b"`
	C  [][]float64 `yaml:"c"`
	D  [][]float64 `yaml:"d"`
	X0 [][]float64 `yaml:"x0"`
	R  [][]float64 `yaml:"r"`
	Q  [][]float64 `yaml:"q"`
	P0 [][]float64 `yaml:"p0"`

	Observations    [][]float64 `yaml:"observations"`       // one p-vector per step
	Controls        [][]float64 `yaml:"controls,omitempty"` // one m-vector per step; zero when omitted
	CheckCovariance bool        `yaml:"check_covariance,omitempty"`
}

// Load reads, decodes and validates a job file.
func Load(path string) (*JobFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates job file contents. Unknown keys are rejected.
func Parse(data []byte) (*JobFile, error) {
	var f JobFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoJobs
		}
		return nil, fmt.Errorf("failed to parse job file: %w", err)
	}

	f.ApplyDefaults()
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Save writes the job file as YAML, creating the parent directory.
func (f *JobFile) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create job file directory: %w", err)
	}

	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal job file: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write job file: %w", err)
	}

	return nil
}

// ApplyDefaults fills unset parameters the model needs.
func (f *JobFile) ApplyDefaults() {
	for i := range f.Jobs {
		p := &f.Jobs[i].Params
		if p.Lag == 0 {
			p.Lag = DefaultLag
		}
		if p.Order == 0 {
			p.Order = DefaultOrder
		}
		if p.Window == 0 {
			p.Window = DefaultWindow
		}
		if p.Level == 0 {
			p.Level = DefaultLevel
		}
		if p.Factor == 0 {
			p.Factor = DefaultFactor
		}
	}
}

// Validate checks every job and joins all problems into one error.
// Numeric ranges the estimators enforce themselves are left to them.
func (f *JobFile) Validate() error {
	if len(f.Jobs) == 0 {
		return ErrNoJobs
	}

	var errs []error
	seen := make(map[string]bool, len(f.Jobs))
	for i, j := range f.Jobs {
		if j.Name == "" {
			errs = append(errs, fmt.Errorf("job #%d: name is required: %w", i, ErrInvalidJob))
		} else if seen[j.Name] {
			errs = append(errs, fmt.Errorf("job %q: %w", j.Name, ErrDuplicateName))
		}
		seen[j.Name] = true

		if err := j.validate(); err != nil {
			errs = append(errs, fmt.Errorf("job %q: %w", j.Name, err))
		}
	}

	return errors.Join(errs...)
}

func (j Job) validate() error {
	if !j.Model.Known() {
		return fmt.Errorf("%q: %w", j.Model, ErrUnknownModel)
	}
	if j.Horizon < 0 {
		return fmt.Errorf("horizon %d < 0: %w", j.Horizon, ErrInvalidJob)
	}
	if len(j.Holdout) > 0 {
		if !j.Model.Scalar() {
			return fmt.Errorf("holdout is only scored for single-series models: %w", ErrInvalidJob)
		}
		if len(j.Holdout) > j.Horizon {
			return fmt.Errorf("holdout longer than horizon: %w", ErrInvalidJob)
		}
	}

	switch {
	case j.Model == ModelVAR:
		if len(j.MultiSeries) == 0 {
			return fmt.Errorf("multi_series is required: %w", ErrInvalidJob)
		}
	case j.Model == ModelKalman:
		k := j.Params.Kalman
		if k == nil {
			return fmt.Errorf("params.kalman is required: %w", ErrInvalidJob)
		}
		if len(k.Observations) == 0 {
			return fmt.Errorf("params.kalman.observations is required: %w", ErrInvalidJob)
		}
		if len(k.Controls) != 0 && len(k.Controls) != len(k.Observations) {
			return fmt.Errorf("params.kalman.controls must match observations: %w", ErrInvalidJob)
		}
	default:
		if len(j.Series) == 0 {
			return fmt.Errorf("series is required: %w", ErrInvalidJob)
		}
	}

	return nil
}

// Example returns a small job file covering a single-series model, VAR and
// a Kalman filter.
func Example() *JobFile {
	return &JobFile{Jobs: []Job{
		{
			Name:    "demand-linear",
			Model:   ModelLinear,
			Series:  []float64{10, 12, 15, 13, 18, 20, 22, 25},
			Horizon: 3,
			Params:  Params{Lag: 2},
		},
		{
			Name:  "demand-price-var",
			Model: ModelVAR,
			MultiSeries: [][]float64{
				{1.0, 2.0}, {1.5, 2.5}, {1.3, 2.7}, {1.8, 3.1}, {2.0, 3.0},
				{2.2, 3.4}, {2.5, 3.7}, {2.3, 3.5}, {2.8, 4.0}, {3.0, 4.2},
			},
			Horizon: 2,
			Params:  Params{Order: 2},
		},
		{
			Name:    "position-kalman",
			Model:   ModelKalman,
			Horizon: 2,
			Params: Params{Kalman: &KalmanParams{
				A:            [][]float64{{1, 0.1}, {0, 1}},
				B:            [][]float64{{0}, {0.1}},
				C:            [][]float64{{1, 0}},
				D:            [][]float64{{0}},
				X0:           [][]float64{{0}, {0}},
				R:            [][]float64{{0.1}},
				Q:            [][]float64{{0.01, 0}, {0, 0.01}},
				P0:           [][]float64{{1, 0}, {0, 1}},
				Observations: [][]float64{{1.2}, {1.3}, {1.5}},
			}},
		},
	}}
}
