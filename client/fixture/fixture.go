// Package fixture loads the table the sandbox client shows.
package fixture

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/cbodonnell/hanabi/pkg/game/types"
)

//go:embed default.json
var defaultFixture []byte

// Fixture is a snapshot of a table: the session flags and every visible card.
type Fixture struct {
	Variant   *types.Variant
	Session   *types.Session
	Cards     []*types.Card
	FinalTurn int
}

type fixtureCard struct {
	types.Card
	Suit string `json:"suit"`
}

type fixtureFile struct {
	Variant   string        `json:"variant"`
	FinalTurn int           `json:"finalTurn"`
	Session   types.Session `json:"session"`
	Cards     []fixtureCard `json:"cards"`
}

// Load reads a fixture file. An empty path loads the built-in table.
func Load(path string) (*Fixture, error) {
	if path == "" {
		return Parse(defaultFixture)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %v", err)
	}
	return Parse(b)
}

// Parse decodes a fixture, resolving suit names against the variant.
func Parse(b []byte) (*Fixture, error) {
	file := &fixtureFile{}
	if err := json.Unmarshal(b, file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fixture: %v", err)
	}

	name := file.Variant
	if name == "" {
		name = types.DefaultVariant
	}
	variant, err := types.LookupVariant(name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up variant: %v", err)
	}

	session := file.Session
	session.Variant = variant

	seen := make(map[int]bool, len(file.Cards))
	cards := make([]*types.Card, 0, len(file.Cards))
	for _, fc := range file.Cards {
		if seen[fc.Order] {
			return nil, fmt.Errorf("duplicate card order %d", fc.Order)
		}
		seen[fc.Order] = true

		card := fc.Card
		if fc.Suit != "" {
			suit := findSuit(variant, fc.Suit)
			if suit == nil {
				return nil, fmt.Errorf("card %d: suit %q is not in variant %s", fc.Order, fc.Suit, variant.Name)
			}
			card.TrueSuit = suit
		}
		cards = append(cards, &card)
	}

	return &Fixture{
		Variant:   variant,
		Session:   &session,
		Cards:     cards,
		FinalTurn: file.FinalTurn,
	}, nil
}

func findSuit(variant *types.Variant, name string) *types.Suit {
	for _, suit := range variant.Suits {
		if strings.EqualFold(suit.Name, name) || suit.Abbreviation == strings.ToLower(name) {
			return suit
		}
	}
	return nil
}
