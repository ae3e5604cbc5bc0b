package gesture

import "github.com/cbodonnell/hanabi/pkg/game/types"

// Input is everything a rule may look at.
type Input struct {
	Event   Event
	Card    *types.Card
	Session *types.Session
}

// Rule binds a predicate to a branch. Rules of one table never match the same input.
type Rule struct {
	Branch Branch
	Match  func(in Input) bool
}

func mods(in Input) Modifiers { return in.Event.Modifiers }

func inHand(in Input) bool { return in.Card.State() == types.CardStateInHand }

// ownCard and otherCard both exclude cards in the deck.
func ownCard(in Input) bool { return inHand(in) && in.Card.Holder == in.Session.PlayerUs }

func otherCard(in Input) bool { return inHand(in) && in.Card.Holder != in.Session.PlayerUs }

// notReviewing is true while playing a live game as a player.
func notReviewing(in Input) bool { return !in.Session.InReplay() && !in.Session.Spectating }

func morphCombo(m Modifiers) bool { return m.Only(ModCtrl | ModShift | ModAlt) }

// Only alt is honored on a normal left click.
var normalLeftRules = []Rule{
	{
		Branch: BranchNavigateDrawn,
		Match:  func(in Input) bool { return mods(in).Only(ModAlt) },
	},
	{
		Branch: BranchNavigatePlayed,
		Match:  func(in Input) bool { return mods(in).None() && in.Card.IsPlayed },
	},
	{
		Branch: BranchNavigateDiscarded,
		Match:  func(in Input) bool { return mods(in).None() && !in.Card.IsPlayed && in.Card.IsDiscarded },
	},
}

var normalRightRules = []Rule{
	{
		Branch: BranchMorph,
		Match:  func(in Input) bool { return morphCombo(mods(in)) },
	},
	// The leader's arrow ignores modifiers so that it still works while a
	// push-to-talk key is held.
	{
		Branch: BranchLeaderArrow,
		Match:  func(in Input) bool { return in.Session.LeadsSharedTurns() && !morphCombo(mods(in)) },
	},
	{
		Branch: BranchLastNote,
		Match:  func(in Input) bool { return mods(in).Only(ModCtrl|ModShift) && notReviewing(in) },
	},
	{
		Branch: BranchFinesseNote,
		Match:  func(in Input) bool { return mods(in).Only(ModShift) && notReviewing(in) },
	},
	{
		Branch: BranchChopMoveNote,
		Match:  func(in Input) bool { return mods(in).Only(ModAlt) && notReviewing(in) },
	},
	// A local arrow in a shared replay would be mistaken for the leader's.
	{
		Branch: BranchLocalArrow,
		Match:  func(in Input) bool { return mods(in).Only(ModCtrl) && !in.Session.SharedReplay },
	},
	{
		Branch: BranchEditNote,
		Match:  func(in Input) bool { return mods(in).None() && notReviewing(in) },
	},
}

var speedrunLeftRules = []Rule{
	{
		Branch: BranchSpeedrunPlay,
		Match:  func(in Input) bool { return mods(in).None() && ownCard(in) },
	},
	{
		Branch: BranchSpeedrunColorClue,
		Match:  func(in Input) bool { return mods(in).None() && otherCard(in) && in.Session.Clues > 0 },
	},
}

var speedrunRightRules = []Rule{
	{
		Branch: BranchSpeedrunDiscard,
		Match:  func(in Input) bool { return mods(in).None() && ownCard(in) },
	},
	{
		Branch: BranchSpeedrunRankClue,
		Match:  func(in Input) bool { return mods(in).None() && otherCard(in) && in.Session.Clues > 0 },
	},
	{
		Branch: BranchSpeedrunEditNote,
		Match:  func(in Input) bool { return mods(in).Only(ModCtrl) },
	},
	{
		Branch: BranchSpeedrunFinesseNote,
		Match:  func(in Input) bool { return mods(in).Only(ModShift) },
	},
	{
		Branch: BranchSpeedrunChopMoveNote,
		Match:  func(in Input) bool { return mods(in).Only(ModAlt) },
	},
}

// Rules returns the ordered rule table for a mode and button.
func Rules(mode Mode, button Button) []Rule {
	switch {
	case mode == ModeNormal && button == ButtonPrimary:
		return normalLeftRules
	case mode == ModeNormal && button == ButtonSecondary:
		return normalRightRules
	case mode == ModeSpeedrun && button == ButtonPrimary:
		return speedrunLeftRules
	case mode == ModeSpeedrun && button == ButtonSecondary:
		return speedrunRightRules
	}
	return nil
}
