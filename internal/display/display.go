// Package display renders cards, hands and comparison results for the terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"

	"github.com/lox/pokerhand/internal/scenario"
	"github.com/lox/pokerhand/poker"
)

// Options controls colour and card notation
type Options struct {
	Color string // auto, always or never
	ASCII bool   // render suits as letters instead of symbols
}

// Renderer styles output for one writer
type Renderer struct {
	lg    *lipgloss.Renderer
	ascii bool

	header   lipgloss.Style
	redCard  lipgloss.Style
	black    lipgloss.Style
	category lipgloss.Style
	win      lipgloss.Style
	tie      lipgloss.Style
	fail     lipgloss.Style
	info     lipgloss.Style
}

// New creates a renderer that styles for w
func New(w io.Writer, opts Options) *Renderer {
	lg := lipgloss.NewRenderer(w)
	switch opts.Color {
	case "never":
		lg.SetColorProfile(termenv.Ascii)
	case "always":
		lg.SetColorProfile(termenv.TrueColor)
	}

	return &Renderer{
		lg:       lg,
		ascii:    opts.ASCII,
		header:   lg.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		redCard:  lg.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")),
		black:    lg.NewStyle().Bold(true),
		category: lg.NewStyle().Foreground(lipgloss.Color("12")),
		win:      lg.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		tie:      lg.NewStyle().Foreground(lipgloss.Color("11")),
		fail:     lg.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		info:     lg.NewStyle().Foreground(lipgloss.Color("#626262")),
	}
}

// CardText is the unstyled notation for a card
func (r *Renderer) CardText(c poker.Card) string {
	if !r.ascii {
		return c.String()
	}
	return c.Rank.String() + suitLetter(c.Suit)
}

func suitLetter(s poker.Suit) string {
	switch s {
	case poker.Clubs:
		return "c"
	case poker.Diamonds:
		return "d"
	case poker.Hearts:
		return "h"
	case poker.Spades:
		return "s"
	default:
		return "?"
	}
}

// Card renders one card, red suits in red
func (r *Renderer) Card(c poker.Card) string {
	if c.Suit.IsRed() {
		return r.redCard.Render(r.CardText(c))
	}
	return r.black.Render(r.CardText(c))
}

// Cards renders cards separated by spaces
func (r *Renderer) Cards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = r.Card(c)
	}
	return strings.Join(parts, " ")
}

// Hand renders a hand followed by its description
func (r *Renderer) Hand(h poker.Hand) string {
	return fmt.Sprintf("%s  %s", r.Cards(h[:]), r.category.Render(poker.Describe(h)))
}

// Header renders a section heading
func (r *Renderer) Header(s string) string {
	return r.header.Render(s)
}

// Info renders secondary text
func (r *Renderer) Info(s string) string {
	return r.info.Render(s)
}

// Result announces the outcome between two named hands
func (r *Renderer) Result(res poker.Result, firstName, secondName, explanation string) string {
	var headline string
	switch res {
	case poker.FirstWins:
		headline = r.win.Render(firstName + " wins!")
	case poker.SecondWins:
		headline = r.win.Render(secondName + " wins!")
	default:
		headline = r.tie.Render("It's a tie!")
	}
	if explanation == "" {
		return headline
	}
	return headline + " " + r.info.Render(explanation)
}

// Report renders a scenario run as a table
func (r *Renderer) Report(rep *scenario.Report) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.info).
		Headers("SCENARIO", "KIND", "OUTCOME", "DETAIL", "CHECK")

	for _, out := range rep.Outcomes {
		var outcome, detail string
		switch out.Scenario.Kind {
		case scenario.KindShowdown:
			outcome = out.Result.String()
			detail = out.Explanation
		case scenario.KindBest:
			outcome = r.Cards(out.Best[:])
			detail = out.Summary
		}
		check := r.win.Render("ok")
		switch {
		case !out.Scenario.HasExpect:
			check = r.info.Render("-")
		case !out.Passed:
			check = r.fail.Render("FAIL")
		}
		t.Row(out.Scenario.Name, string(out.Scenario.Kind), outcome, detail, check)
	}

	summary := fmt.Sprintf("%d scenarios, %d failed in %s (run %s)",
		len(rep.Outcomes), rep.Failures, rep.Elapsed, rep.RunID)
	if rep.Failures > 0 {
		summary = r.fail.Render(summary)
	} else {
		summary = r.win.Render(summary)
	}
	return t.Render() + "\n" + summary
}
