// Package pipeline runs the closest-facility lookup end to end: prechecks,
// input loading, per-employee distance aggregation and ranking, and the
// final report write.
package pipeline

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/taimone/closest-facilities-lookup/internal/config"
	"github.com/taimone/closest-facilities-lookup/internal/distance"
	"github.com/taimone/closest-facilities-lookup/internal/input"
	"github.com/taimone/closest-facilities-lookup/internal/model"
	"github.com/taimone/closest-facilities-lookup/internal/precheck"
	"github.com/taimone/closest-facilities-lookup/internal/ranking"
	"github.com/taimone/closest-facilities-lookup/internal/report"
	"github.com/taimone/closest-facilities-lookup/pkg/distancematrix"
)

// Version is reported at the start of every run.
const Version = "1.0"

// Pipeline orchestrates a single report run. Employees and facility batches
// are processed strictly one at a time.
type Pipeline struct {
	cfg        *config.Config
	provider   distancematrix.Client
	http       *http.Client
	aggregator *distance.Aggregator
}

// New creates a Pipeline. hc is used for the network precheck; nil means a
// client with the configured precheck timeout.
func New(cfg *config.Config, provider distancematrix.Client, hc *http.Client) *Pipeline {
	if hc == nil {
		hc = &http.Client{Timeout: time.Duration(cfg.Precheck.TimeoutSecs) * time.Second}
	}
	return &Pipeline{
		cfg:        cfg,
		provider:   provider,
		http:       hc,
		aggregator: distance.NewAggregator(provider, cfg.Distance.BatchSize),
	}
}

// Result summarises a completed run.
type Result struct {
	RunID      string        `json:"run_id"`
	Employees  int           `json:"employees"`
	Facilities int           `json:"facilities"`
	Output     string        `json:"output"`
	Elapsed    time.Duration `json:"elapsed"`
}

// Precheck verifies network and provider reachability.
func (p *Pipeline) Precheck(ctx context.Context) error {
	return precheck.Run(ctx, precheck.Checks{
		HTTP:              p.http,
		NetworkURL:        p.cfg.Precheck.NetworkURL,
		Provider:          p.provider,
		SampleOrigin:      p.cfg.Precheck.SampleOrigin,
		SampleDestination: p.cfg.Precheck.SampleDestination,
	})
}

// Run performs the full lookup and writes the report once at the end. No
// file is written if any step fails.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	runID := uuid.New().String()
	log := zap.L().With(zap.String("run_id", runID))
	log.Info("pipeline: starting", zap.String("version", Version))

	if err := p.Precheck(ctx); err != nil {
		return nil, err
	}

	employees, err := input.LoadEmployees(p.cfg.Input.EmployeesPath)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: load employees")
	}
	facilities, err := input.LoadFacilities(p.cfg.Input.FacilitiesPath)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: load facilities")
	}
	index := model.NewFacilityIndex(facilities)

	rep, err := p.Build(ctx, employees, index)
	if err != nil {
		return nil, err
	}
	if p.cfg.Output.Sheet != "" {
		rep.Sheet = p.cfg.Output.Sheet
	}

	log.Info("pipeline: generating output file", zap.String("path", p.cfg.Output.Path))
	if err := rep.Save(p.cfg.Output.Path); err != nil {
		return nil, eris.Wrap(err, "pipeline: save report")
	}

	res := &Result{
		RunID:      runID,
		Employees:  len(employees),
		Facilities: index.Len(),
		Output:     p.cfg.Output.Path,
		Elapsed:    time.Since(start),
	}
	log.Info("pipeline: results saved",
		zap.String("path", res.Output),
		zap.Int("employees", res.Employees),
		zap.Int("facilities", res.Facilities),
		zap.Duration("elapsed", res.Elapsed),
	)
	return res, nil
}

// Build computes the closest facilities for each employee and assembles the
// report rows in employee order.
func (p *Pipeline) Build(ctx context.Context, employees []model.Employee, index *model.FacilityIndex) (*report.Report, error) {
	zips := index.Zips()
	rows := make([]model.ReportRow, 0, len(employees))

	for i, emp := range employees {
		if err := ctx.Err(); err != nil {
			return nil, eris.Wrap(err, "pipeline: cancelled")
		}

		log := zap.L().With(
			zap.Int("index", i+1),
			zap.Int("total", len(employees)),
			zap.String("zip", emp.Zip),
		)
		log.Info("processing distances for employee")

		distances, err := p.aggregator.Aggregate(ctx, emp.Zip, zips)
		if err != nil {
			return nil, eris.Wrapf(err, "pipeline: employee %q (row %d)", emp.Name, emp.Row)
		}

		ranked, err := ranking.SelectTop3(distances)
		if err != nil {
			return nil, eris.Wrapf(err, "pipeline: employee %q (row %d)", emp.Name, emp.Row)
		}

		row, err := report.BuildRow(emp, ranked, index)
		if err != nil {
			return nil, eris.Wrap(err, "pipeline: build row")
		}
		rows = append(rows, row)

		log.Info("distances processed for employee",
			zap.Int("available", len(distances)),
			zap.Int("ranked", len(ranked)),
		)
	}

	return report.Assemble(rows), nil
}
