package resolver

import (
	"github.com/cbodonnell/hanabi/pkg/game/constants"
	"github.com/cbodonnell/hanabi/pkg/game/types"
)

// SelectedClue is the clue currently pressed in the clue type selector.
type SelectedClue struct {
	Type  constants.ClueType
	Color types.Color
	Rank  int
}

// ChooseClueColor picks the color to clue a card with. A color pressed in the selector
// wins when it touches the card; otherwise the card's first clue color is used.
// ok is false when the card has no known clue colors.
func ChooseClueColor(card *types.Card, selected *SelectedClue) (color types.Color, ok bool) {
	colors := card.ClueColors()
	if len(colors) == 0 {
		return "", false
	}
	if selected != nil && selected.Type == constants.ClueTypeColor {
		for _, c := range colors {
			if c == selected.Color {
				return c, true
			}
		}
	}
	return colors[0], true
}
