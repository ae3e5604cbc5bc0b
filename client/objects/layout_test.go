package objects

import (
	"testing"

	"github.com/cbodonnell/hanabi/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLayout(t *testing.T) *CardLayout {
	l, err := NewCardLayout(NewCardLayoutOptions{Width: 640, Height: 480, CardWidth: 50, CardHeight: 70})
	require.NoError(t, err)
	return l
}

func TestNewCardLayout_invalid(t *testing.T) {
	_, err := NewCardLayout(NewCardLayoutOptions{Width: 0, Height: 480, CardWidth: 50, CardHeight: 70})
	assert.Error(t, err)
	_, err = NewCardLayout(NewCardLayoutOptions{Width: 640, Height: 480})
	assert.Error(t, err)
}

func TestCardLayout_CardAt(t *testing.T) {
	l := newTestLayout(t)
	first := &types.Card{Order: 1}
	second := &types.Card{Order: 2}
	require.NoError(t, l.Place(first, 100, 100))
	require.NoError(t, l.Place(second, 300, 100))

	tests := []struct {
		name string
		x, y float64
		want *types.Card
	}{
		{name: "inside first", x: 110, y: 150, want: first},
		{name: "top left corner", x: 100, y: 100, want: first},
		{name: "right edge is exclusive", x: 150, y: 120, want: nil},
		{name: "inside second", x: 349, y: 169, want: second},
		{name: "between cards", x: 200, y: 120, want: nil},
		{name: "off the table", x: -5, y: 700, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.want, l.CardAt(tt.x, tt.y))
		})
	}
}

func TestCardLayout_overlapPicksTopmost(t *testing.T) {
	l := newTestLayout(t)
	bottom := &types.Card{Order: 1}
	top := &types.Card{Order: 2}
	require.NoError(t, l.Place(bottom, 100, 100))
	require.NoError(t, l.Place(top, 120, 100))

	assert.Same(t, top, l.CardAt(130, 110))
	assert.Same(t, bottom, l.CardAt(105, 110))

	require.NoError(t, l.Place(bottom, 100, 100))
	assert.Same(t, bottom, l.CardAt(130, 110))
	assert.Equal(t, []*types.Card{top, bottom}, l.Cards())
}

func TestCardLayout_moveAndRemove(t *testing.T) {
	l := newTestLayout(t)
	card := &types.Card{Order: 5}
	require.NoError(t, l.Place(card, 10, 10))
	require.NoError(t, l.Place(card, 400, 300))

	assert.Nil(t, l.CardAt(20, 20))
	assert.Same(t, card, l.CardAt(410, 310))
	x, y, ok := l.Position(5)
	assert.True(t, ok)
	assert.Equal(t, 400.0, x)
	assert.Equal(t, 300.0, y)

	l.Remove(5)
	assert.Nil(t, l.CardAt(410, 310))
	_, _, ok = l.Position(5)
	assert.False(t, ok)
	l.Remove(5)
}

func TestCardLayout_PlaceRejects(t *testing.T) {
	l := newTestLayout(t)
	assert.Error(t, l.Place(nil, 0, 0))
	assert.Error(t, l.Place(&types.Card{Order: 1}, 600, 0))
	assert.Error(t, l.Place(&types.Card{Order: 1}, -1, 0))
}
