package types

// NoHolder is the holder of a card that is not in any player's hand.
const NoHolder = -1

// Color is a clue color.
type Color string

const (
	ColorBlue   Color = "Blue"
	ColorGreen  Color = "Green"
	ColorYellow Color = "Yellow"
	ColorRed    Color = "Red"
	ColorPurple Color = "Purple"
	ColorTeal   Color = "Teal"
	ColorBlack  Color = "Black"
)

// Suit is a card suit and the clue colors that touch it.
// The first clue color is the one used when a clue must pick one.
type Suit struct {
	Name         string  `json:"name"`
	Abbreviation string  `json:"abbreviation"`
	ClueColors   []Color `json:"clueColors"`
}

// Touches reports whether a color clue of the given color touches the suit.
func (s *Suit) Touches(color Color) bool {
	if s == nil {
		return false
	}
	for _, c := range s.ClueColors {
		if c == color {
			return true
		}
	}
	return false
}

// CardState is a card's place in its interactive lifecycle.
type CardState int

const (
	CardStateHidden CardState = iota
	CardStateInHand
	CardStatePlayed
	CardStateDiscarded
)

func (s CardState) String() string {
	switch s {
	case CardStateHidden:
		return "Hidden"
	case CardStateInHand:
		return "InHand"
	case CardStatePlayed:
		return "Played"
	case CardStateDiscarded:
		return "Discarded"
	}
	return "Unknown"
}

// Card is a read-only view of a card owned by the game state.
type Card struct {
	// Order is the card's position in the deck, unique for the game.
	Order int `json:"order"`
	// Holder is the index of the player holding the card, or NoHolder.
	Holder int `json:"holder"`
	// HandSlot is the card's position in its holder's hand, where 0 is the most
	// recently drawn card. It is -1 when the card is not in a hand.
	HandSlot int `json:"handSlot"`

	IsPlayed    bool `json:"isPlayed"`
	IsDiscarded bool `json:"isDiscarded"`
	Tweening    bool `json:"tweening"`

	TurnDrawn     int `json:"turnDrawn"`
	TurnPlayed    int `json:"turnPlayed"`
	TurnDiscarded int `json:"turnDiscarded"`

	// TrueSuit and TrueRank are only known when the session reveals them.
	TrueSuit *Suit `json:"trueSuit,omitempty"`
	TrueRank int   `json:"trueRank"`
}

// State derives the lifecycle state from the card's flags.
func (c *Card) State() CardState {
	switch {
	case c.IsPlayed:
		return CardStatePlayed
	case c.IsDiscarded:
		return CardStateDiscarded
	case c.Holder != NoHolder:
		return CardStateInHand
	}
	return CardStateHidden
}

// FirstInHand reports whether the card is the newest card of its holder's hand.
func (c *Card) FirstInHand() bool {
	return c.State() == CardStateInHand && c.HandSlot == 0
}

// ClueColors returns the colors that can clue the card, or nil if its suit is unknown.
func (c *Card) ClueColors() []Color {
	if c.TrueSuit == nil {
		return nil
	}
	return c.TrueSuit.ClueColors
}
