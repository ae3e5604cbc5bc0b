package resolver

import (
	"testing"

	"github.com/cbodonnell/hanabi/pkg/commands"
	"github.com/cbodonnell/hanabi/pkg/game/constants"
	"github.com/cbodonnell/hanabi/pkg/game/types"
	"github.com/cbodonnell/hanabi/pkg/gesture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockPrompter struct {
	mock.Mock
}

func (m *mockPrompter) PromptText(message string) (string, bool) {
	args := m.Called(message)
	return args.String(0), args.Bool(1)
}

type staticNotes string

func (n staticNotes) LastNoteText() string { return string(n) }

type staticSelector struct {
	clue    SelectedClue
	pressed bool
}

func (s staticSelector) PressedClue() (SelectedClue, bool) { return s.clue, s.pressed }

func mustVariant(t *testing.T, name string) *types.Variant {
	t.Helper()
	v, err := types.LookupVariant(name)
	if err != nil {
		t.Fatalf("failed to look up variant: %v", err)
	}
	return v
}

func TestResolver_Resolve_normal(t *testing.T) {
	card := &types.Card{Order: 3, Holder: 1, HandSlot: 0, TurnDrawn: 5, TurnPlayed: 9, TurnDiscarded: 11}
	live := &types.Session{PlayerUs: 0}
	r := NewResolver(NewResolverOptions{Notes: staticNotes("5 save")})

	tests := []struct {
		branch gesture.Branch
		want   commands.Command
	}{
		{branch: gesture.BranchNavigateDrawn, want: commands.NavigateToTurn{Turn: 5, Order: 3}},
		{branch: gesture.BranchNavigatePlayed, want: commands.NavigateToTurn{Turn: 9, Order: 3}},
		{branch: gesture.BranchNavigateDiscarded, want: commands.NavigateToTurn{Turn: 11, Order: 3}},
		{branch: gesture.BranchLeaderArrow, want: commands.ReplayArrow{Order: 3}},
		{branch: gesture.BranchLastNote, want: commands.NoteSet{Order: 3, Text: "5 save"}},
		{branch: gesture.BranchFinesseNote, want: commands.NoteSet{Order: 3, Text: "f"}},
		{branch: gesture.BranchChopMoveNote, want: commands.NoteSet{Order: 3, Text: "cm"}},
		{branch: gesture.BranchLocalArrow, want: commands.IndicatorToggle{Order: 3}},
		{branch: gesture.BranchEditNote, want: commands.NoteEditRequest{Order: 3}},
		{branch: gesture.BranchSpeedrunEditNote, want: commands.NoteEditRequest{Order: 3}},
		{branch: gesture.BranchSpeedrunFinesseNote, want: commands.NoteSet{Order: 3, Text: "f"}},
		{branch: gesture.BranchSpeedrunChopMoveNote, want: commands.NoteSet{Order: 3, Text: "cm"}},
		{branch: gesture.BranchNone, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.branch.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.branch, card, live))
		})
	}
}

func TestResolver_lastNoteWithoutStore(t *testing.T) {
	r := NewResolver(NewResolverOptions{})
	got := r.Resolve(gesture.BranchLastNote, &types.Card{Order: 1}, &types.Session{})
	assert.Equal(t, commands.NoteSet{Order: 1, Text: ""}, got)
}

func TestResolver_morph(t *testing.T) {
	card := &types.Card{Order: 12, Holder: 0}
	leader := &types.Session{Replay: true, SharedReplay: true, SharedReplayLeader: true, UseSharedTurns: true}
	follower := &types.Session{Replay: true, SharedReplay: true, UseSharedTurns: true}

	tests := []struct {
		name      string
		session   *types.Session
		input     string
		cancelled bool
		want      commands.Command
	}{
		{name: "leader b1", session: leader, input: "b1", want: commands.ReplayMorph{Order: 12, Suit: 0, Rank: 1}},
		{name: "leader m3", session: leader, input: "m3", want: commands.ReplayMorph{Order: 12, Suit: 5, Rank: 3}},
		{name: "unknown suit", session: leader, input: "z9"},
		{name: "too short", session: leader, input: "b"},
		{name: "non numeric rank", session: leader, input: "bb"},
		{name: "cancelled", session: leader, cancelled: true},
		{name: "follower is discarded", session: follower, input: "b1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompter := &mockPrompter{}
			prompter.On("PromptText", constants.MorphPrompt).Return(tt.input, !tt.cancelled).Once()
			r := NewResolver(NewResolverOptions{Prompter: prompter})

			assert.Equal(t, tt.want, r.Resolve(gesture.BranchMorph, card, tt.session))
			prompter.AssertExpectations(t)
		})
	}
}

func TestResolver_morphOutsideReplay(t *testing.T) {
	prompter := &mockPrompter{}
	r := NewResolver(NewResolverOptions{Prompter: prompter})

	got := r.Resolve(gesture.BranchMorph, &types.Card{Order: 1}, &types.Session{SharedReplayLeader: true})
	assert.Nil(t, got)
	prompter.AssertNotCalled(t, "PromptText", mock.Anything)
}

func TestResolver_speedrun(t *testing.T) {
	own := &types.Card{Order: 7, Holder: 0, HandSlot: 1, TrueSuit: types.SuitRed, TrueRank: 4}
	other := &types.Card{Order: 9, Holder: 2, HandSlot: 1, TrueSuit: types.SuitYellow, TrueRank: 2}
	r := NewResolver(NewResolverOptions{})

	for _, clues := range []int{0, 1, 7, 8} {
		session := &types.Session{Speedrun: true, Clues: clues, Variant: mustVariant(t, "No Variant")}
		assert.Equal(t, commands.PlayAction{Order: 7}, r.Resolve(gesture.BranchSpeedrunPlay, own, session))
	}

	session := &types.Session{Speedrun: true, Clues: 7}
	assert.Equal(t, commands.DiscardAction{Order: 7}, r.Resolve(gesture.BranchSpeedrunDiscard, own, session))
	session.Clues = 8
	assert.Nil(t, r.Resolve(gesture.BranchSpeedrunDiscard, own, session))

	session.Clues = 3
	assert.Equal(t, commands.ClueAction{
		Target:        2,
		Clue:          types.Clue{Type: constants.ClueTypeRank, Value: 2},
		PreCluedOrder: 9,
	}, r.Resolve(gesture.BranchSpeedrunRankClue, other, session))

	assert.Equal(t, commands.ClueAction{
		Target:        2,
		Clue:          types.Clue{Type: constants.ClueTypeColor, Value: 2},
		PreCluedOrder: 9,
	}, r.Resolve(gesture.BranchSpeedrunColorClue, other, session))
}

func TestResolver_colorClueDisambiguation(t *testing.T) {
	rainbow := &types.Card{Order: 4, Holder: 1, TrueSuit: types.SuitRainbow, TrueRank: 1}
	session := &types.Session{Speedrun: true, Clues: 5, Variant: mustVariant(t, "Rainbow (6 Suits)")}

	tests := []struct {
		name     string
		selector ClueSelector
		want     int
	}{
		{name: "nothing pressed uses first color", selector: staticSelector{}, want: 0},
		{name: "no selector uses first color", selector: nil, want: 0},
		{name: "pressed color touches card", selector: staticSelector{clue: SelectedClue{Type: constants.ClueTypeColor, Color: types.ColorRed}, pressed: true}, want: 3},
		{name: "pressed rank is ignored", selector: staticSelector{clue: SelectedClue{Type: constants.ClueTypeRank, Rank: 3}, pressed: true}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(NewResolverOptions{ClueSelector: tt.selector})
			for i := 0; i < 3; i++ {
				got := r.Resolve(gesture.BranchSpeedrunColorClue, rainbow, session)
				assert.Equal(t, commands.ClueAction{
					Target:        1,
					Clue:          types.Clue{Type: constants.ClueTypeColor, Value: tt.want},
					PreCluedOrder: 4,
				}, got)
			}
		})
	}
}

func TestResolver_colorClueUnknownColor(t *testing.T) {
	r := NewResolver(NewResolverOptions{})
	session := &types.Session{Clues: 5, Variant: mustVariant(t, "No Variant")}

	assert.Nil(t, r.Resolve(gesture.BranchSpeedrunColorClue, &types.Card{Order: 1, Holder: 1, TrueSuit: types.SuitBlack}, session))
	assert.Nil(t, r.Resolve(gesture.BranchSpeedrunColorClue, &types.Card{Order: 2, Holder: 1}, session))
}

func TestChooseClueColor(t *testing.T) {
	card := &types.Card{TrueSuit: types.SuitRainbow}

	color, ok := ChooseClueColor(card, nil)
	assert.True(t, ok)
	assert.Equal(t, types.ColorBlue, color)

	color, ok = ChooseClueColor(card, &SelectedClue{Type: constants.ClueTypeColor, Color: types.ColorPurple})
	assert.True(t, ok)
	assert.Equal(t, types.ColorPurple, color)

	color, ok = ChooseClueColor(&types.Card{TrueSuit: types.SuitGreen}, &SelectedClue{Type: constants.ClueTypeColor, Color: types.ColorPurple})
	assert.True(t, ok)
	assert.Equal(t, types.ColorGreen, color)

	_, ok = ChooseClueColor(&types.Card{}, nil)
	assert.False(t, ok)
}
