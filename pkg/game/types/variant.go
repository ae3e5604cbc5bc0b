package types

import "fmt"

var (
	SuitBlue    = &Suit{Name: "Blue", Abbreviation: "b", ClueColors: []Color{ColorBlue}}
	SuitGreen   = &Suit{Name: "Green", Abbreviation: "g", ClueColors: []Color{ColorGreen}}
	SuitYellow  = &Suit{Name: "Yellow", Abbreviation: "y", ClueColors: []Color{ColorYellow}}
	SuitRed     = &Suit{Name: "Red", Abbreviation: "r", ClueColors: []Color{ColorRed}}
	SuitPurple  = &Suit{Name: "Purple", Abbreviation: "p", ClueColors: []Color{ColorPurple}}
	SuitTeal    = &Suit{Name: "Teal", Abbreviation: "t", ClueColors: []Color{ColorTeal}}
	SuitBlack   = &Suit{Name: "Black", Abbreviation: "k", ClueColors: []Color{ColorBlack}}
	SuitRainbow = &Suit{Name: "Rainbow", Abbreviation: "m", ClueColors: []Color{ColorBlue, ColorGreen, ColorYellow, ColorRed, ColorPurple}}
)

// Variant is the rule set of a game: which suits are in the deck and which colors
// can be clued. A color clue is sent as the index of its color in ClueColors.
type Variant struct {
	Name       string  `json:"name"`
	Suits      []*Suit `json:"suits"`
	ClueColors []Color `json:"clueColors"`
}

// ColorIndex returns the wire value of a color clue, or -1 if the variant has no such color.
func (v *Variant) ColorIndex(color Color) int {
	for i, c := range v.ClueColors {
		if c == color {
			return i
		}
	}
	return -1
}

var basicColors = []Color{ColorBlue, ColorGreen, ColorYellow, ColorRed, ColorPurple}

var variants = map[string]*Variant{
	"No Variant": {
		Name:       "No Variant",
		Suits:      []*Suit{SuitBlue, SuitGreen, SuitYellow, SuitRed, SuitPurple},
		ClueColors: basicColors,
	},
	"Six Suits": {
		Name:       "Six Suits",
		Suits:      []*Suit{SuitBlue, SuitGreen, SuitYellow, SuitRed, SuitPurple, SuitTeal},
		ClueColors: append(append([]Color{}, basicColors...), ColorTeal),
	},
	"Rainbow (6 Suits)": {
		Name:       "Rainbow (6 Suits)",
		Suits:      []*Suit{SuitBlue, SuitGreen, SuitYellow, SuitRed, SuitPurple, SuitRainbow},
		ClueColors: basicColors,
	},
	"Black (6 Suits)": {
		Name:       "Black (6 Suits)",
		Suits:      []*Suit{SuitBlue, SuitGreen, SuitYellow, SuitRed, SuitPurple, SuitBlack},
		ClueColors: append(append([]Color{}, basicColors...), ColorBlack),
	},
}

// DefaultVariant is used when a session does not name one.
const DefaultVariant = "No Variant"

// LookupVariant returns a built-in variant by name.
func LookupVariant(name string) (*Variant, error) {
	if name == "" {
		name = DefaultVariant
	}
	v, ok := variants[name]
	if !ok {
		return nil, fmt.Errorf("unknown variant: %s", name)
	}
	return v, nil
}
