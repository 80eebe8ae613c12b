package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pokerhand/internal/randutil"
	"github.com/lox/pokerhand/internal/scenario"
	"github.com/lox/pokerhand/internal/tui"
	"github.com/lox/pokerhand/poker"
)

// ErrScenariosFailed is returned by run when any expectation is not met
var ErrScenariosFailed = errors.New("scenarios failed")

// ClassifyCmd names the category of a single hand.
type ClassifyCmd struct {
	Cards []string `arg:"" help:"Five cards, e.g. 'Ac Kd 7h 7s 2c'"`
}

func (cmd ClassifyCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}
	h, err := parseHand(strings.Join(cmd.Cards, " "))
	if err != nil {
		return err
	}
	e.logger.Debug("Classified hand", "hand", h, "category", h.Category())
	fmt.Fprintln(e.out, e.render.Hand(h))
	return nil
}

// CompareCmd decides which of two hands wins.
type CompareCmd struct {
	First  string `arg:"" help:"First hand"`
	Second string `arg:"" help:"Second hand"`
	Strict bool   `help:"Reject hands from different categories"`
}

func (cmd CompareCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}
	first, err := parseHand(cmd.First)
	if err != nil {
		return fmt.Errorf("first hand: %w", err)
	}
	second, err := parseHand(cmd.Second)
	if err != nil {
		return fmt.Errorf("second hand: %w", err)
	}
	if cmd.Strict {
		if _, err := poker.Compare(first, second); err != nil {
			return err
		}
	}

	res, explanation := poker.Explain(first, second)
	e.logger.Debug("Compared hands", "first", first, "second", second, "result", res)
	fmt.Fprintf(e.out, "First:  %s\n", e.render.Hand(first))
	fmt.Fprintf(e.out, "Second: %s\n", e.render.Hand(second))
	fmt.Fprintln(e.out, e.render.Result(res, "First", "Second", explanation))
	return nil
}

// BestCmd selects the strongest five cards from seven.
type BestCmd struct {
	Private string `short:"p" required:"" help:"Two private cards"`
	Shared  string `short:"s" required:"" help:"Five shared cards"`
}

func (cmd BestCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}
	private, err := poker.ParseCards(cmd.Private)
	if err != nil {
		return fmt.Errorf("private cards: %w", err)
	}
	shared, err := poker.ParseCards(cmd.Shared)
	if err != nil {
		return fmt.Errorf("shared cards: %w", err)
	}
	pool, err := poker.NewPool(private, shared)
	if err != nil {
		return err
	}

	best := pool.Best()
	e.logger.Debug("Selected best hand", "private", poker.FormatCards(private), "shared", poker.FormatCards(shared), "best", best)
	fmt.Fprintf(e.out, "Private: %s\n", e.render.Cards(pool.Private()))
	fmt.Fprintf(e.out, "Shared:  %s\n", e.render.Cards(pool.Shared()))
	fmt.Fprintf(e.out, "Best:    %s\n", e.render.Hand(best))
	return nil
}

// DealCmd shuffles a deck and plays out a two-handed showdown.
type DealCmd struct {
	Seed   int64 `help:"Random seed for a reproducible deal (0 = random)"`
	Holdem bool  `help:"Deal two private cards each and a five card board"`

	clock quartz.Clock `kong:"-"`
}

func (cmd DealCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}
	clock := cmd.clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	seed := cmd.Seed
	if seed == 0 {
		seed = e.cfg.Deal.Seed
	}
	seed = randutil.Resolve(seed, clock)
	e.logger.Info("Dealing", "seed", seed, "holdem", cmd.Holdem)

	deck := poker.NewDeck(randutil.New(seed))
	if cmd.Holdem {
		return dealHoldem(e, deck)
	}
	return dealShowdown(e, deck)
}

// dealShowdown deals two five card hands one card at a time
func dealShowdown(e *env, deck *poker.Deck) error {
	var hands [2][]poker.Card
	for range poker.HandSize {
		for i := range hands {
			card, ok := deck.DealOne()
			if !ok {
				return errors.New("deck ran out of cards")
			}
			hands[i] = append(hands[i], card)
		}
	}

	first, err := poker.NewHand(hands[0]...)
	if err != nil {
		return err
	}
	second, err := poker.NewHand(hands[1]...)
	if err != nil {
		return err
	}
	res, explanation := poker.Explain(first, second)
	fmt.Fprintf(e.out, "Hand 1: %s\n", e.render.Hand(first))
	fmt.Fprintf(e.out, "Hand 2: %s\n", e.render.Hand(second))
	fmt.Fprintln(e.out, e.render.Result(res, "Hand 1", "Hand 2", explanation))
	return nil
}

// dealHoldem deals private cards alternately, then the board
func dealHoldem(e *env, deck *poker.Deck) error {
	var private [2][]poker.Card
	for range poker.PrivateSize {
		for i := range private {
			card, ok := deck.DealOne()
			if !ok {
				return errors.New("deck ran out of cards")
			}
			private[i] = append(private[i], card)
		}
	}
	board := deck.Deal(poker.SharedSize)

	var best [2]poker.Hand
	for i := range private {
		h, err := poker.BestHand(private[i], board)
		if err != nil {
			return err
		}
		best[i] = h
	}

	res, explanation := poker.Explain(best[0], best[1])
	fmt.Fprintf(e.out, "Board:    %s\n", e.render.Cards(board))
	for i := range private {
		fmt.Fprintf(e.out, "Player %d: %s  %s\n", i+1, e.render.Cards(private[i]), e.render.Info("best "+e.render.Hand(best[i])))
	}
	fmt.Fprintln(e.out, e.render.Result(res, "Player 1", "Player 2", explanation))
	return nil
}

// RunCmd evaluates an HCL scenario file and reports mismatches.
type RunCmd struct {
	File    string `arg:"" type:"existingfile" help:"Scenario file"`
	Workers int    `help:"Parallel evaluations (0 = from config)"`

	clock quartz.Clock `kong:"-"`
}

func (cmd RunCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}
	scenarios, err := scenario.Load(cmd.File)
	if err != nil {
		return err
	}
	workers := cmd.Workers
	if workers == 0 {
		workers = e.cfg.Runner.Workers
	}
	clock := cmd.clock
	if clock == nil {
		clock = quartz.NewReal()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := scenario.NewRunner(e.logger, clock, workers).Run(ctx, scenarios)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, e.render.Report(report))
	if report.Failures > 0 {
		return fmt.Errorf("%w: %d of %d", ErrScenariosFailed, report.Failures, len(report.Outcomes))
	}
	return nil
}

// ConsoleCmd runs the interactive evaluator.
type ConsoleCmd struct {
	LogFile string `help:"Write logs to this file instead of discarding them"`
}

func (cmd ConsoleCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	// The terminal belongs to the console, so logs go to a file or nowhere.
	var w io.Writer = io.Discard
	if cmd.LogFile != "" {
		f, err := os.OpenFile(cmd.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Error("Failed to close log file", "error", err)
			}
		}()
		w = f
	}
	logger, err := newLogger(w, e.cfg.Log)
	if err != nil {
		return err
	}

	if _, err := tea.NewProgram(tui.New(logger, e.render), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("console failed: %w", err)
	}
	return nil
}

func parseHand(s string) (poker.Hand, error) {
	cards, err := poker.ParseCards(s)
	if err != nil {
		return poker.Hand{}, err
	}
	return poker.NewHand(cards...)
}
