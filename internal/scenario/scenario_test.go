package scenario

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerhand/poker"
)

const sample = `
showdown "pair-of-threes" {
  first  = "2c 2d 7h 9s Kc"
  second = "3c 3d 4h 9s Kc"
  expect = "second"
}

showdown "queens-full-vs-kings-full" {
  first  = "Kc Kd Kh 2s 2c"
  second = "Qc Qd Qh Js Jc"
  expect = "first"
}

showdown "split" {
  first  = "2c 5d 9h Js Kc"
  second = "2d 5c 9s Jh Kd"
  expect = "tie"
}

best "trip-sevens" {
  private = "7h 7s"
  shared  = "2c 9d 7d Ks 4h"
  expect  = "three of a kind"
}

best "no-expectation" {
  private = "4c 5c"
  shared  = "6c 7c 8c Kd Kh"
}
`

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func TestParse(t *testing.T) {
	t.Parallel()
	scenarios, err := Parse([]byte(sample), "sample.hcl")
	require.NoError(t, err)
	require.Len(t, scenarios, 5)

	assert.Equal(t, "pair-of-threes", scenarios[0].Name)
	assert.Equal(t, KindShowdown, scenarios[0].Kind)
	assert.True(t, scenarios[0].HasExpect)
	assert.Equal(t, poker.SecondWins, scenarios[0].ExpectResult)
	assert.Equal(t, poker.MustParseHand("2c 2d 7h 9s Kc"), scenarios[0].First)

	assert.Equal(t, KindBest, scenarios[3].Kind)
	assert.Equal(t, poker.ThreeOfAKind, scenarios[3].ExpectCategory)
	assert.Equal(t, poker.MustParseCards("7h 7s"), scenarios[3].Pool.Private())

	assert.False(t, scenarios[4].HasExpect)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			name: "short hand",
			src: `showdown "x" {
  first  = "2c 2d 7h 9s"
  second = "3c 3d 4h 9s Kc"
}`,
			wantErr: "hand must contain exactly 5 cards",
		},
		{
			name: "bad pool",
			src: `best "x" {
  private = "7h"
  shared  = "2c 9d 7d Ks 4h"
}`,
			wantErr: "invalid card pool size",
		},
		{
			name: "bad card",
			src: `best "x" {
  private = "7h 7x"
  shared  = "2c 9d 7d Ks 4h"
}`,
			wantErr: "unknown suit",
		},
		{
			name: "bad expectation",
			src: `showdown "x" {
  first  = "2c 2d 7h 9s Kc"
  second = "3c 3d 4h 9s Kc"
  expect = "both"
}`,
			wantErr: "unknown expected result",
		},
		{
			name: "bad category",
			src: `best "x" {
  private = "7h 7s"
  shared  = "2c 9d 7d Ks 4h"
  expect  = "royal flush"
}`,
			wantErr: "unknown hand category",
		},
		{
			name: "duplicate names",
			src: `showdown "x" {
  first  = "2c 2d 7h 9s Kc"
  second = "3c 3d 4h 9s Kc"
}
best "x" {
  private = "7h 7s"
  shared  = "2c 9d 7d Ks 4h"
}`,
			wantErr: "duplicate scenario name",
		},
		{
			name:    "missing attribute",
			src:     `best "x" { private = "7h 7s" }`,
			wantErr: "failed to decode HCL",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.src), "test.hcl")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "scenarios.hcl")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	scenarios, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, scenarios, 5)

	_, err = Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.Error(t, err)
}

func TestRunnerRun(t *testing.T) {
	t.Parallel()
	scenarios, err := Parse([]byte(sample), "sample.hcl")
	require.NoError(t, err)

	clock := quartz.NewMock(t)
	runner := NewRunner(quietLogger(), clock, 3)
	report, err := runner.Run(context.Background(), scenarios)
	require.NoError(t, err)

	require.Len(t, report.Outcomes, len(scenarios))
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 0, report.Failures)
	assert.Equal(t, time.Duration(0), report.Elapsed, "mock clock does not move on its own")

	for i, out := range report.Outcomes {
		assert.Equal(t, scenarios[i].Name, out.Scenario.Name, "outcomes keep input order")
		assert.True(t, out.Passed, out.Scenario.Name)
	}

	assert.Equal(t, poker.SecondWins, report.Outcomes[0].Result)
	assert.Equal(t, [2]poker.Category{poker.Pair, poker.Pair}, report.Outcomes[0].Categories)
	assert.Equal(t, poker.Tie, report.Outcomes[2].Result)

	trips := report.Outcomes[3]
	assert.Equal(t, poker.ThreeOfAKind, trips.Category)
	assert.Equal(t, "7♥ 7♠ 9♦ 7♦ K♠", trips.Best.String())
	assert.Equal(t, "Three of a Kind, 7s", trips.Summary)

	assert.Equal(t, poker.StraightFlush, report.Outcomes[4].Category)
}

func TestRunnerReportsFailures(t *testing.T) {
	t.Parallel()
	scenarios, err := Parse([]byte(`
showdown "aces-full-vs-queens-full" {
  first  = "Ac Ad Ah Ks Kc"
  second = "Qc Qd Qh Js Jc"
  expect = "first"
}
`), "aces.hcl")
	require.NoError(t, err)

	report, err := NewRunner(quietLogger(), quartz.NewMock(t), 0).Run(context.Background(), scenarios)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Failures)
	assert.False(t, report.Outcomes[0].Passed)
	// Aces are low, so the Queens take it.
	assert.Equal(t, poker.SecondWins, report.Outcomes[0].Result)
}

func TestRunnerCancelled(t *testing.T) {
	t.Parallel()
	scenarios, err := Parse([]byte(sample), "sample.hcl")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewRunner(quietLogger(), quartz.NewReal(), 2).Run(ctx, scenarios)
	require.ErrorIs(t, err, context.Canceled)
}
