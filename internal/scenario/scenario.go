// Package scenario loads hand match-ups from HCL files and evaluates them.
package scenario

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pokerhand/poker"
)

// Kind distinguishes the two scenario shapes
type Kind string

const (
	KindShowdown Kind = "showdown"
	KindBest     Kind = "best"
)

// file is the raw HCL layout:
//
//	showdown "aces-vs-kings" {
//	  first  = "As Ad 2c 5h 9s"
//	  second = "Ks Kd 2d 5c 9h"
//	  expect = "second"
//	}
//
//	best "trip-sevens" {
//	  private = "7h 7s"
//	  shared  = "2c 9d 7d Ks 4h"
//	  expect  = "three of a kind"
//	}
type file struct {
	Showdowns []showdownBlock `hcl:"showdown,block"`
	Bests     []bestBlock     `hcl:"best,block"`
}

type showdownBlock struct {
	Name   string `hcl:"name,label"`
	First  string `hcl:"first"`
	Second string `hcl:"second"`
	Expect string `hcl:"expect,optional"`
}

type bestBlock struct {
	Name    string `hcl:"name,label"`
	Private string `hcl:"private"`
	Shared  string `hcl:"shared"`
	Expect  string `hcl:"expect,optional"`
}

// Scenario is one validated match-up. Showdowns fill First and Second;
// best-hand scenarios fill Pool.
type Scenario struct {
	Name string
	Kind Kind

	First  poker.Hand
	Second poker.Hand
	Pool   poker.Pool

	// HasExpect is set when the file states the expected outcome.
	HasExpect      bool
	ExpectResult   poker.Result
	ExpectCategory poker.Category
}

// Load reads scenarios from an HCL file. Showdowns come first, then
// best-hand blocks, each in file order.
func Load(filename string) ([]Scenario, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(f.Body)
}

// Parse reads scenarios from HCL source held in memory.
func Parse(src []byte, filename string) ([]Scenario, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(f.Body)
}

func decode(body hcl.Body) ([]Scenario, error) {
	var raw file
	if diags := gohcl.DecodeBody(body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	seen := make(map[string]bool)
	scenarios := make([]Scenario, 0, len(raw.Showdowns)+len(raw.Bests))
	for _, b := range raw.Showdowns {
		s, err := b.scenario()
		if err != nil {
			return nil, fmt.Errorf("showdown %q: %w", b.Name, err)
		}
		scenarios = append(scenarios, s)
	}
	for _, b := range raw.Bests {
		s, err := b.scenario()
		if err != nil {
			return nil, fmt.Errorf("best %q: %w", b.Name, err)
		}
		scenarios = append(scenarios, s)
	}

	for _, s := range scenarios {
		if seen[s.Name] {
			return nil, fmt.Errorf("duplicate scenario name %q", s.Name)
		}
		seen[s.Name] = true
	}
	return scenarios, nil
}

func (b showdownBlock) scenario() (Scenario, error) {
	s := Scenario{Name: b.Name, Kind: KindShowdown}

	var err error
	if s.First, err = parseHand(b.First); err != nil {
		return s, fmt.Errorf("first: %w", err)
	}
	if s.Second, err = parseHand(b.Second); err != nil {
		return s, fmt.Errorf("second: %w", err)
	}

	if b.Expect != "" {
		s.HasExpect = true
		if s.ExpectResult, err = ParseResult(b.Expect); err != nil {
			return s, err
		}
	}
	return s, nil
}

func (b bestBlock) scenario() (Scenario, error) {
	s := Scenario{Name: b.Name, Kind: KindBest}

	private, err := poker.ParseCards(b.Private)
	if err != nil {
		return s, fmt.Errorf("private: %w", err)
	}
	shared, err := poker.ParseCards(b.Shared)
	if err != nil {
		return s, fmt.Errorf("shared: %w", err)
	}
	if s.Pool, err = poker.NewPool(private, shared); err != nil {
		return s, err
	}

	if b.Expect != "" {
		s.HasExpect = true
		if s.ExpectCategory, err = poker.ParseCategory(b.Expect); err != nil {
			return s, err
		}
	}
	return s, nil
}

func parseHand(s string) (poker.Hand, error) {
	cards, err := poker.ParseCards(s)
	if err != nil {
		return poker.Hand{}, err
	}
	return poker.NewHand(cards...)
}

// ParseResult accepts "first", "second" or "tie".
func ParseResult(s string) (poker.Result, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first":
		return poker.FirstWins, nil
	case "second":
		return poker.SecondWins, nil
	case "tie":
		return poker.Tie, nil
	default:
		return poker.Tie, fmt.Errorf("unknown expected result %q (want first, second or tie)", s)
	}
}
