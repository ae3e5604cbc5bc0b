// Package gesture selects the handler branch for a click on a card.
package gesture

import "github.com/cbodonnell/hanabi/pkg/game/types"

// Router picks at most one branch per click. It holds no state.
type Router struct{}

func NewRouter() *Router {
	return &Router{}
}

// ModeFor returns the bindings the session uses.
func ModeFor(session *types.Session) Mode {
	if session.SpeedrunActive() {
		return ModeSpeedrun
	}
	return ModeNormal
}

// Route returns the branch for a click, or BranchNone if the click does nothing.
func (r *Router) Route(ev Event, card *types.Card, session *types.Session) Branch {
	if card == nil || session == nil {
		return BranchNone
	}
	mode := ModeFor(session)
	if disabled(mode, card) {
		return BranchNone
	}

	in := Input{Event: ev, Card: card, Session: session}
	for _, rule := range Rules(mode, ev.Button) {
		if rule.Match(in) {
			return rule.Branch
		}
	}
	return BranchNone
}

// Matches returns every branch whose predicate accepts the click, ignoring order.
// A well-formed table yields at most one.
func (r *Router) Matches(ev Event, card *types.Card, session *types.Session) []Branch {
	if card == nil || session == nil {
		return nil
	}
	mode := ModeFor(session)
	if disabled(mode, card) {
		return nil
	}

	in := Input{Event: ev, Card: card, Session: session}
	var matched []Branch
	for _, rule := range Rules(mode, ev.Button) {
		if rule.Match(in) {
			matched = append(matched, rule.Branch)
		}
	}
	return matched
}

// disabled reports whether a card ignores clicks in the given mode.
func disabled(mode Mode, card *types.Card) bool {
	if mode == ModeNormal {
		return card.Tweening
	}
	// Only the card sliding into the newest slot is locked while tweening;
	// the rest of the hand stays clickable.
	if card.Tweening && card.FirstInHand() {
		return true
	}
	return card.IsPlayed || card.IsDiscarded
}
