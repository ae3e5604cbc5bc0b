// Package resolver turns a routed click into the command it stands for.
package resolver

import (
	"github.com/cbodonnell/hanabi/pkg/commands"
	"github.com/cbodonnell/hanabi/pkg/game/constants"
	"github.com/cbodonnell/hanabi/pkg/game/types"
	"github.com/cbodonnell/hanabi/pkg/gesture"
	"github.com/cbodonnell/hanabi/pkg/log"
)

// Prompter asks the user for a line of text. ok is false if the prompt was cancelled.
type Prompter interface {
	PromptText(message string) (text string, ok bool)
}

// NoteReader gives access to the most recently entered note.
type NoteReader interface {
	LastNoteText() string
}

// ClueSelector reports the clue pressed in the clue type selector, if any.
type ClueSelector interface {
	PressedClue() (SelectedClue, bool)
}

// Resolver computes the command for a branch. Apart from prompting it has no side effects.
type Resolver struct {
	prompter     Prompter
	notes        NoteReader
	clueSelector ClueSelector
}

type NewResolverOptions struct {
	Prompter     Prompter
	Notes        NoteReader
	ClueSelector ClueSelector
}

func NewResolver(opts NewResolverOptions) *Resolver {
	return &Resolver{
		prompter:     opts.Prompter,
		notes:        opts.Notes,
		clueSelector: opts.ClueSelector,
	}
}

// Resolve returns the command for a branch, or nil when the click does nothing.
func (r *Resolver) Resolve(branch gesture.Branch, card *types.Card, session *types.Session) commands.Command {
	switch branch {
	case gesture.BranchNavigateDrawn:
		return commands.NavigateToTurn{Turn: card.TurnDrawn, Order: card.Order}
	case gesture.BranchNavigatePlayed:
		return commands.NavigateToTurn{Turn: card.TurnPlayed, Order: card.Order}
	case gesture.BranchNavigateDiscarded:
		return commands.NavigateToTurn{Turn: card.TurnDiscarded, Order: card.Order}
	case gesture.BranchMorph:
		return r.morph(card, session)
	case gesture.BranchLeaderArrow:
		return commands.ReplayArrow{Order: card.Order}
	case gesture.BranchLastNote:
		return commands.NoteSet{Order: card.Order, Text: r.lastNote()}
	case gesture.BranchFinesseNote, gesture.BranchSpeedrunFinesseNote:
		return commands.NoteSet{Order: card.Order, Text: constants.NoteFinessed}
	case gesture.BranchChopMoveNote, gesture.BranchSpeedrunChopMoveNote:
		return commands.NoteSet{Order: card.Order, Text: constants.NoteChopMoved}
	case gesture.BranchLocalArrow:
		return commands.IndicatorToggle{Order: card.Order}
	case gesture.BranchEditNote, gesture.BranchSpeedrunEditNote:
		return commands.NoteEditRequest{Order: card.Order}
	case gesture.BranchSpeedrunPlay:
		return commands.PlayAction{Order: card.Order}
	case gesture.BranchSpeedrunColorClue:
		return r.colorClue(card, session)
	case gesture.BranchSpeedrunDiscard:
		if !session.CanDiscard() {
			return nil
		}
		return commands.DiscardAction{Order: card.Order}
	case gesture.BranchSpeedrunRankClue:
		return commands.ClueAction{
			Target:        card.Holder,
			Clue:          types.Clue{Type: constants.ClueTypeRank, Value: card.TrueRank},
			PreCluedOrder: card.Order,
		}
	}
	return nil
}

// morph prompts for a hypothetical card. Only the shared replay leader's morph is sent;
// anyone else's is decoded and dropped.
func (r *Resolver) morph(card *types.Card, session *types.Session) commands.Command {
	if !session.InReplay() || r.prompter == nil {
		return nil
	}
	code, ok := r.prompter.PromptText(constants.MorphPrompt)
	if !ok {
		return nil
	}
	suit, rank, ok := DecodeMorph(code)
	if !ok {
		log.Debug("Ignoring morph code %q for card %d", code, card.Order)
		return nil
	}
	if !session.SharedReplayLeader {
		return nil
	}
	return commands.ReplayMorph{Order: card.Order, Suit: suit, Rank: rank}
}

func (r *Resolver) colorClue(card *types.Card, session *types.Session) commands.Command {
	var selected *SelectedClue
	if r.clueSelector != nil {
		if clue, ok := r.clueSelector.PressedClue(); ok {
			selected = &clue
		}
	}
	color, ok := ChooseClueColor(card, selected)
	if !ok {
		log.Warn("Card %d has no known clue colors", card.Order)
		return nil
	}

	variant := session.Variant
	if variant == nil {
		v, err := types.LookupVariant(types.DefaultVariant)
		if err != nil {
			log.Error("Failed to look up default variant: %v", err)
			return nil
		}
		variant = v
	}
	value := variant.ColorIndex(color)
	if value < 0 {
		log.Warn("Color %s is not a clue color of variant %s", color, variant.Name)
		return nil
	}

	return commands.ClueAction{
		Target:        card.Holder,
		Clue:          types.Clue{Type: constants.ClueTypeColor, Value: value},
		PreCluedOrder: card.Order,
	}
}

func (r *Resolver) lastNote() string {
	if r.notes == nil {
		return ""
	}
	return r.notes.LastNoteText()
}
