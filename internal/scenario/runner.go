package scenario

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerhand/poker"
)

// Outcome is the evaluation of one scenario
type Outcome struct {
	Scenario Scenario

	// Showdown results
	Result      poker.Result
	Explanation string
	Categories  [2]poker.Category

	// Best-hand results
	Best     poker.Hand
	Category poker.Category
	Summary  string

	// Passed is false only when an expectation was stated and not met.
	Passed bool
}

// Report collects the outcomes of a run in scenario order
type Report struct {
	RunID    string
	Started  time.Time
	Elapsed  time.Duration
	Outcomes []Outcome
	Failures int
}

// Runner evaluates scenarios on a bounded pool of goroutines
type Runner struct {
	logger  *log.Logger
	clock   quartz.Clock
	workers int
}

// NewRunner creates a runner. Workers below one are treated as one.
func NewRunner(logger *log.Logger, clock quartz.Clock, workers int) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{
		logger:  logger.WithPrefix("scenario"),
		clock:   clock,
		workers: workers,
	}
}

// Run evaluates every scenario and returns the outcomes in input order.
// Evaluation is pure, so the only error is cancellation of ctx.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) (*Report, error) {
	report := &Report{
		RunID:    uuid.NewString(),
		Started:  r.clock.Now(),
		Outcomes: make([]Outcome, len(scenarios)),
	}
	logger := r.logger.With("run_id", report.RunID)
	logger.Debug("Starting scenario run", "scenarios", len(scenarios), "workers", r.workers)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, s := range scenarios {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out := Evaluate(s)
			report.Outcomes[i] = out
			logger.Debug("Evaluated scenario", "name", s.Name, "kind", s.Kind, "passed", out.Passed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, out := range report.Outcomes {
		if !out.Passed {
			report.Failures++
			logger.Warn("Scenario expectation not met", "name", out.Scenario.Name)
		}
	}
	report.Elapsed = r.clock.Since(report.Started)
	logger.Info("Scenario run complete",
		"scenarios", len(scenarios),
		"failures", report.Failures,
		"elapsed", report.Elapsed)
	return report, nil
}

// Evaluate runs a single scenario
func Evaluate(s Scenario) Outcome {
	out := Outcome{Scenario: s, Passed: true}
	switch s.Kind {
	case KindShowdown:
		out.Result, out.Explanation = poker.Explain(s.First, s.Second)
		out.Categories = [2]poker.Category{poker.Classify(s.First), poker.Classify(s.Second)}
		if s.HasExpect {
			out.Passed = out.Result == s.ExpectResult
		}
	case KindBest:
		out.Best = s.Pool.Best()
		out.Category = poker.Classify(out.Best)
		out.Summary = poker.Describe(out.Best)
		if s.HasExpect {
			out.Passed = out.Category == s.ExpectCategory
		}
	}
	return out
}
