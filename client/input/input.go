package input

import (
	"github.com/cbodonnell/hanabi/pkg/game/constants"
	"github.com/cbodonnell/hanabi/pkg/game/types"
	"github.com/cbodonnell/hanabi/pkg/gesture"
	"github.com/cbodonnell/hanabi/pkg/resolver"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Click is a mouse button released over the table.
type Click struct {
	Event gesture.Event
	X, Y  float64
}

// JustClicked reports a mouse button released this tick along with the
// modifiers held at the time. Left wins if both buttons are released together.
func JustClicked() (Click, bool) {
	var button gesture.Button
	switch {
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		button = gesture.ButtonPrimary
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight):
		button = gesture.ButtonSecondary
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonMiddle):
		button = gesture.ButtonOther
	default:
		return Click{}, false
	}

	x, y := ebiten.CursorPosition()
	return Click{
		Event: gesture.Event{Button: button, Modifiers: ReadModifiers()},
		X:     float64(x),
		Y:     float64(y),
	}, true
}

// ReadModifiers reads the current keyboard modifier state.
func ReadModifiers() gesture.Modifiers {
	var mods gesture.Modifiers
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= gesture.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= gesture.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= gesture.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= gesture.ModMeta
	}
	return mods
}

// IsNegativeJustPressed returns a boolean value indicating whether the generic negative input is just pressed.
func IsNegativeJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// IsReplayToggleJustPressed is bound to R.
func IsReplayToggleJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}

var colorKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6}

// ClueSelector stands in for the clue buttons of the game UI. Number keys
// 1-6 press the matching clue color of the variant and 0 releases it.
type ClueSelector struct {
	variant  *types.Variant
	selected *resolver.SelectedClue
}

func NewClueSelector(variant *types.Variant) *ClueSelector {
	return &ClueSelector{variant: variant}
}

// Update reads the number keys. Call it once per tick.
func (s *ClueSelector) Update() {
	if inpututil.IsKeyJustPressed(ebiten.Key0) {
		s.selected = nil
		return
	}
	if s.variant == nil {
		return
	}
	for i, key := range colorKeys {
		if i >= len(s.variant.ClueColors) {
			return
		}
		if inpututil.IsKeyJustPressed(key) {
			s.selected = &resolver.SelectedClue{Type: constants.ClueTypeColor, Color: s.variant.ClueColors[i]}
			return
		}
	}
}

func (s *ClueSelector) PressedClue() (resolver.SelectedClue, bool) {
	if s.selected == nil {
		return resolver.SelectedClue{}, false
	}
	return *s.selected, true
}
