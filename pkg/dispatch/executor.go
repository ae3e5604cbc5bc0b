// Package dispatch applies click commands to the client's collaborators.
package dispatch

import (
	"github.com/cbodonnell/hanabi/pkg/commands"
	"github.com/cbodonnell/hanabi/pkg/game/constants"
	"github.com/cbodonnell/hanabi/pkg/game/types"
	"github.com/cbodonnell/hanabi/pkg/log"
	"github.com/cbodonnell/hanabi/pkg/messages"
)

// Transport sends a message to the server. It does not report delivery.
type Transport interface {
	Send(messageType messages.MessageType, payload interface{})
}

// Navigator controls the local replay.
type Navigator interface {
	EnterReplay()
	DisableFollowingLeader()
	Seek(turn int, indicateUser bool)
}

// NoteStore holds the notes written on cards.
type NoteStore interface {
	SetNote(order int, text string)
	OpenEditor(order int)
}

// Indicator draws the arrow shown next to a card.
type Indicator interface {
	ToggleIndicator(order int)
}

// PreClueMarker remembers the card a clue was just given from, so it can be
// previewed before the server confirms the clue.
type PreClueMarker interface {
	MarkPreClued(order int)
}

type Executor struct {
	transport Transport
	navigator Navigator
	notes     NoteStore
	indicator Indicator
	preClue   PreClueMarker
}

type NewExecutorOptions struct {
	Transport Transport
	Navigator Navigator
	Notes     NoteStore
	Indicator Indicator
	PreClue   PreClueMarker
}

func NewExecutor(opts NewExecutorOptions) *Executor {
	return &Executor{
		transport: opts.Transport,
		navigator: opts.Navigator,
		notes:     opts.Notes,
		indicator: opts.Indicator,
		preClue:   opts.PreClue,
	}
}

// Execute performs the side effects of a command. A nil command does nothing.
func (e *Executor) Execute(cmd commands.Command, session *types.Session) {
	switch cmd := cmd.(type) {
	case nil:
	case commands.PlayAction:
		e.send(messages.MessageTypeClientAction, messages.ClientAction{
			Type:   constants.ActionTypePlay,
			Target: cmd.Order,
		})
	case commands.DiscardAction:
		e.send(messages.MessageTypeClientAction, messages.ClientAction{
			Type:   constants.ActionTypeDiscard,
			Target: cmd.Order,
		})
	case commands.ClueAction:
		if e.preClue != nil {
			e.preClue.MarkPreClued(cmd.PreCluedOrder)
		}
		clue := cmd.Clue
		e.send(messages.MessageTypeClientAction, messages.ClientAction{
			Type:   constants.ActionTypeClue,
			Target: cmd.Target,
			Clue:   &clue,
		})
	case commands.ReplayArrow:
		e.send(messages.MessageTypeClientReplayAction, messages.ClientReplayAction{
			Type:  constants.ReplayActionTypeArrow,
			Order: cmd.Order,
		})
		// Drawn now rather than on the server's echo.
		e.toggleIndicator(cmd.Order)
	case commands.ReplayMorph:
		suit, rank := cmd.Suit, cmd.Rank
		e.send(messages.MessageTypeClientReplayAction, messages.ClientReplayAction{
			Type:  constants.ReplayActionTypeMorph,
			Order: cmd.Order,
			Suit:  &suit,
			Rank:  &rank,
		})
	case commands.NoteSet:
		if e.notes != nil {
			e.notes.SetNote(cmd.Order, cmd.Text)
		}
	case commands.NoteEditRequest:
		if e.notes != nil {
			e.notes.OpenEditor(cmd.Order)
		}
	case commands.NavigateToTurn:
		e.navigate(cmd, session)
	case commands.IndicatorToggle:
		e.toggleIndicator(cmd.Order)
	default:
		log.Warn("Unhandled command %s", cmd)
	}
}

// navigate seeks the replay to a turn. Leaving shared turns first keeps the
// leader from pulling the view back.
func (e *Executor) navigate(cmd commands.NavigateToTurn, session *types.Session) {
	if e.navigator != nil {
		if session != nil && session.InReplay() {
			if session.UseSharedTurns {
				e.navigator.DisableFollowingLeader()
			}
		} else {
			e.navigator.EnterReplay()
		}
		e.navigator.Seek(cmd.Turn, true)
	}
	e.toggleIndicator(cmd.Order)
}

func (e *Executor) send(messageType messages.MessageType, payload interface{}) {
	if e.transport == nil {
		log.Debug("No transport, dropping %s message", messageType)
		return
	}
	e.transport.Send(messageType, payload)
}

func (e *Executor) toggleIndicator(order int) {
	if e.indicator != nil {
		e.indicator.ToggleIndicator(order)
	}
}
