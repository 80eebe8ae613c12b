// Package tui is an interactive console for classifying and comparing hands.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/pokerhand/internal/display"
	"github.com/lox/pokerhand/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

const helpText = "5 cards: classify · 7 cards: best hand (2 private + 5 shared) · A vs B: compare · esc: quit"

// Model is the Bubble Tea model for the console
type Model struct {
	logger *log.Logger
	render *display.Renderer

	input   textinput.Model
	history viewport.Model
	entries []string

	width    int
	height   int
	quitting bool
}

// New creates the console model
func New(logger *log.Logger, render *display.Renderer) *Model {
	vp := viewport.New(80, 15)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "Ac Ad Ah Ks Kc  |  7h 7s 2c 9d 7d Ks 4h  |  2c 2d 7h 9s Kc vs 3c 3d 4h 9s Kc"
	ti.Focus()
	ti.CharLimit = 120
	ti.Width = 80
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.Prompt = "> "

	return &Model{
		logger:  logger.WithPrefix("console"),
		render:  render,
		input:   ti,
		history: vp,
	}
}

// Init initializes the console
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.history.Width = msg.Width
		m.history.Height = max(msg.Height-4, 1)
		m.input.Width = max(msg.Width-4, 10)
		m.logger.Debug("Resized", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				break
			}
			if line == "quit" || line == "exit" {
				m.quitting = true
				return m, tea.Quit
			}
			m.Submit(line)
			return m, nil
		case "pgup":
			m.history.HalfPageUp()
		case "pgdown":
			m.history.HalfPageDown()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.history, cmd = m.history.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// Submit evaluates one line and appends the outcome to the history
func (m *Model) Submit(line string) {
	out, err := Evaluate(m.render, line)
	entry := "> " + line + "\n"
	if err != nil {
		m.logger.Debug("Rejected input", "line", line, "error", err)
		entry += errorStyle.Render(err.Error())
	} else {
		entry += out
	}
	m.entries = append(m.entries, entry)
	m.history.SetContent(strings.Join(m.entries, "\n\n"))
	m.history.GotoBottom()
}

// History returns every rendered entry, oldest first
func (m *Model) History() []string {
	return m.entries
}

// View renders the console
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("pokerhand console"),
		m.history.View(),
		m.input.View(),
		helpStyle.Render(helpText),
	)
}

// Evaluate interprets one console line: five cards are classified, seven
// cards yield the best hand, and two five-card hands joined by "vs" are compared.
func Evaluate(r *display.Renderer, line string) (string, error) {
	if first, second, ok := strings.Cut(strings.ToLower(line), "vs"); ok {
		a, err := parseHand(first)
		if err != nil {
			return "", fmt.Errorf("first hand: %w", err)
		}
		b, err := parseHand(second)
		if err != nil {
			return "", fmt.Errorf("second hand: %w", err)
		}
		res, why := poker.Explain(a, b)
		return strings.Join([]string{
			"Hand 1: " + r.Hand(a),
			"Hand 2: " + r.Hand(b),
			r.Result(res, "Hand 1", "Hand 2", why),
		}, "\n"), nil
	}

	cards, err := poker.ParseCards(line)
	if err != nil {
		return "", err
	}
	switch len(cards) {
	case poker.HandSize:
		h, _ := poker.NewHand(cards...)
		return r.Hand(h), nil
	case poker.PoolSize:
		best, err := poker.BestHand(cards[:poker.PrivateSize], cards[poker.PrivateSize:])
		if err != nil {
			return "", err
		}
		return "Best: " + r.Hand(best), nil
	default:
		return "", fmt.Errorf("%w: enter 5 or 7 cards, got %d", poker.ErrInvalidHandSize, len(cards))
	}
}

func parseHand(s string) (poker.Hand, error) {
	cards, err := poker.ParseCards(s)
	if err != nil {
		return poker.Hand{}, err
	}
	return poker.NewHand(cards...)
}
