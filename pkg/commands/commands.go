// Package commands defines the outcomes of a card click.
//
// A click produces at most one Command. Consumers switch on the concrete type:
//
//	switch cmd := cmd.(type) {
//	case commands.PlayAction:
//	case commands.ClueAction:
//	...
//	}
package commands

import (
	"fmt"

	"github.com/cbodonnell/hanabi/pkg/game/types"
)

type Kind int

const (
	KindPlayAction Kind = iota
	KindDiscardAction
	KindClueAction
	KindReplayArrow
	KindReplayMorph
	KindNoteSet
	KindNoteEditRequest
	KindNavigateToTurn
	KindIndicatorToggle
)

func (k Kind) String() string {
	switch k {
	case KindPlayAction:
		return "PlayAction"
	case KindDiscardAction:
		return "DiscardAction"
	case KindClueAction:
		return "ClueAction"
	case KindReplayArrow:
		return "ReplayArrow"
	case KindReplayMorph:
		return "ReplayMorph"
	case KindNoteSet:
		return "NoteSet"
	case KindNoteEditRequest:
		return "NoteEditRequest"
	case KindNavigateToTurn:
		return "NavigateToTurn"
	case KindIndicatorToggle:
		return "IndicatorToggle"
	}
	return "Unknown"
}

// Command is implemented only by the types in this package.
type Command interface {
	Kind() Kind
	fmt.Stringer
	command()
}

// PlayAction plays the card with the given order.
type PlayAction struct {
	Order int
}

// DiscardAction discards the card with the given order.
type DiscardAction struct {
	Order int
}

// ClueAction gives a clue to the player at Target.
// PreCluedOrder is the card the clue was given from, marked locally before the
// server confirms the clue.
type ClueAction struct {
	Target        int
	Clue          types.Clue
	PreCluedOrder int
}

// ReplayArrow draws an arrow on a card for every member of a shared replay.
type ReplayArrow struct {
	Order int
}

// ReplayMorph turns a card into a hypothetical suit and rank in a shared replay.
type ReplayMorph struct {
	Order int
	Suit  int
	Rank  int
}

// NoteSet replaces the note on a card.
type NoteSet struct {
	Order int
	Text  string
}

// NoteEditRequest opens the note editor for a card.
type NoteEditRequest struct {
	Order int
}

// NavigateToTurn moves the replay to a turn and highlights a card.
type NavigateToTurn struct {
	Turn  int
	Order int
}

// IndicatorToggle toggles the local arrow on a card without telling anyone.
type IndicatorToggle struct {
	Order int
}

func (PlayAction) Kind() Kind      { return KindPlayAction }
func (DiscardAction) Kind() Kind   { return KindDiscardAction }
func (ClueAction) Kind() Kind      { return KindClueAction }
func (ReplayArrow) Kind() Kind     { return KindReplayArrow }
func (ReplayMorph) Kind() Kind     { return KindReplayMorph }
func (NoteSet) Kind() Kind         { return KindNoteSet }
func (NoteEditRequest) Kind() Kind { return KindNoteEditRequest }
func (NavigateToTurn) Kind() Kind  { return KindNavigateToTurn }
func (IndicatorToggle) Kind() Kind { return KindIndicatorToggle }

func (PlayAction) command()      {}
func (DiscardAction) command()   {}
func (ClueAction) command()      {}
func (ReplayArrow) command()     {}
func (ReplayMorph) command()     {}
func (NoteSet) command()         {}
func (NoteEditRequest) command() {}
func (NavigateToTurn) command()  {}
func (IndicatorToggle) command() {}

func (c PlayAction) String() string    { return fmt.Sprintf("PlayAction(order=%d)", c.Order) }
func (c DiscardAction) String() string { return fmt.Sprintf("DiscardAction(order=%d)", c.Order) }
func (c ClueAction) String() string {
	return fmt.Sprintf("ClueAction(target=%d, %s=%d, preClued=%d)", c.Target, c.Clue.Type, c.Clue.Value, c.PreCluedOrder)
}
func (c ReplayArrow) String() string { return fmt.Sprintf("ReplayArrow(order=%d)", c.Order) }
func (c ReplayMorph) String() string {
	return fmt.Sprintf("ReplayMorph(order=%d, suit=%d, rank=%d)", c.Order, c.Suit, c.Rank)
}
func (c NoteSet) String() string         { return fmt.Sprintf("NoteSet(order=%d, text=%q)", c.Order, c.Text) }
func (c NoteEditRequest) String() string { return fmt.Sprintf("NoteEditRequest(order=%d)", c.Order) }
func (c NavigateToTurn) String() string {
	return fmt.Sprintf("NavigateToTurn(turn=%d, order=%d)", c.Turn, c.Order)
}
func (c IndicatorToggle) String() string { return fmt.Sprintf("IndicatorToggle(order=%d)", c.Order) }
