package dispatch

import (
	"testing"

	mocks "github.com/cbodonnell/hanabi/mocks/github.com/cbodonnell/hanabi/pkg/dispatch"
	"github.com/cbodonnell/hanabi/pkg/commands"
	"github.com/cbodonnell/hanabi/pkg/game/constants"
	"github.com/cbodonnell/hanabi/pkg/game/types"
	"github.com/cbodonnell/hanabi/pkg/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type collaborators struct {
	transport *mocks.Transport
	navigator *mocks.Navigator
	notes     *mocks.NoteStore
	indicator *mocks.Indicator
	preClue   *mocks.PreClueMarker
	calls     []string
}

func newCollaborators(t *testing.T) *collaborators {
	return &collaborators{
		transport: mocks.NewTransport(t),
		navigator: mocks.NewNavigator(t),
		notes:     mocks.NewNoteStore(t),
		indicator: mocks.NewIndicator(t),
		preClue:   mocks.NewPreClueMarker(t),
	}
}

func (c *collaborators) executor() *Executor {
	return NewExecutor(NewExecutorOptions{
		Transport: c.transport,
		Navigator: c.navigator,
		Notes:     c.notes,
		Indicator: c.indicator,
		PreClue:   c.preClue,
	})
}

func (c *collaborators) record(name string) func() {
	return func() { c.calls = append(c.calls, name) }
}

func (c *collaborators) recordSend(messages.MessageType, interface{}) { c.record("send")() }

func (c *collaborators) recordToggle(int) { c.record("toggle")() }

func intPtr(i int) *int { return &i }

func TestExecutor_gameActions(t *testing.T) {
	tests := []struct {
		name    string
		cmd     commands.Command
		payload messages.ClientAction
	}{
		{
			name:    "play",
			cmd:     commands.PlayAction{Order: 7},
			payload: messages.ClientAction{Type: constants.ActionTypePlay, Target: 7},
		},
		{
			name:    "discard",
			cmd:     commands.DiscardAction{Order: 2},
			payload: messages.ClientAction{Type: constants.ActionTypeDiscard, Target: 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCollaborators(t)
			c.transport.EXPECT().Send(messages.MessageTypeClientAction, tt.payload).Once()

			c.executor().Execute(tt.cmd, &types.Session{Speedrun: true})
		})
	}
}

func TestExecutor_clueMarksPreCluedFirst(t *testing.T) {
	c := newCollaborators(t)
	clue := types.Clue{Type: constants.ClueTypeColor, Value: 3}
	c.preClue.EXPECT().MarkPreClued(9).Run(func(int) { c.record("preClue")() }).Once()
	c.transport.EXPECT().Send(messages.MessageTypeClientAction, messages.ClientAction{
		Type:   constants.ActionTypeClue,
		Target: 2,
		Clue:   &clue,
	}).Run(c.recordSend).Once()

	c.executor().Execute(commands.ClueAction{Target: 2, Clue: clue, PreCluedOrder: 9}, &types.Session{})
	assert.Equal(t, []string{"preClue", "send"}, c.calls)
}

func TestExecutor_replayArrowTogglesOnce(t *testing.T) {
	c := newCollaborators(t)
	c.transport.EXPECT().Send(messages.MessageTypeClientReplayAction, messages.ClientReplayAction{
		Type:  constants.ReplayActionTypeArrow,
		Order: 4,
	}).Run(c.recordSend).Once()
	c.indicator.EXPECT().ToggleIndicator(4).Run(c.recordToggle).Once()

	c.executor().Execute(commands.ReplayArrow{Order: 4}, &types.Session{SharedReplay: true})
	assert.Equal(t, []string{"send", "toggle"}, c.calls)
}

func TestExecutor_replayMorph(t *testing.T) {
	c := newCollaborators(t)
	c.transport.EXPECT().Send(messages.MessageTypeClientReplayAction, messages.ClientReplayAction{
		Type:  constants.ReplayActionTypeMorph,
		Order: 12,
		Suit:  intPtr(5),
		Rank:  intPtr(3),
	}).Once()

	c.executor().Execute(commands.ReplayMorph{Order: 12, Suit: 5, Rank: 3}, &types.Session{})
}

func TestExecutor_notes(t *testing.T) {
	c := newCollaborators(t)
	c.notes.EXPECT().SetNote(3, "cm").Once()
	c.notes.EXPECT().OpenEditor(5).Once()

	e := c.executor()
	e.Execute(commands.NoteSet{Order: 3, Text: "cm"}, &types.Session{})
	e.Execute(commands.NoteEditRequest{Order: 5}, &types.Session{})
}

func TestExecutor_localIndicator(t *testing.T) {
	c := newCollaborators(t)
	c.indicator.EXPECT().ToggleIndicator(8).Once()

	c.executor().Execute(commands.IndicatorToggle{Order: 8}, &types.Session{})
	c.transport.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestExecutor_navigate(t *testing.T) {
	tests := []struct {
		name    string
		session *types.Session
		want    []string
	}{
		{
			name:    "enters replay from a game",
			session: &types.Session{},
			want:    []string{"enter", "seek", "toggle"},
		},
		{
			name:    "solo replay seeks directly",
			session: &types.Session{Replay: true},
			want:    []string{"seek", "toggle"},
		},
		{
			name:    "stops following the leader",
			session: &types.Session{Replay: true, SharedReplay: true, UseSharedTurns: true},
			want:    []string{"disable", "seek", "toggle"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCollaborators(t)
			c.navigator.EXPECT().EnterReplay().Run(c.record("enter")).Maybe()
			c.navigator.EXPECT().DisableFollowingLeader().Run(c.record("disable")).Maybe()
			c.navigator.EXPECT().Seek(5, true).Run(func(int, bool) { c.record("seek")() }).Once()
			c.indicator.EXPECT().ToggleIndicator(3).Run(c.recordToggle).Once()

			c.executor().Execute(commands.NavigateToTurn{Turn: 5, Order: 3}, tt.session)
			assert.Equal(t, tt.want, c.calls)
		})
	}
}

func TestExecutor_nilCommandAndMissingCollaborators(t *testing.T) {
	c := newCollaborators(t)
	c.executor().Execute(nil, &types.Session{})

	e := NewExecutor(NewExecutorOptions{})
	assert.NotPanics(t, func() {
		e.Execute(commands.PlayAction{Order: 1}, &types.Session{})
		e.Execute(commands.NoteSet{Order: 1, Text: "f"}, &types.Session{})
		e.Execute(commands.NavigateToTurn{Turn: 1, Order: 1}, nil)
		e.Execute(commands.ClueAction{Target: 1}, &types.Session{})
	})
}
