package constants

const (
	// MaxClueNum is the clue token cap; discarding is not allowed at the cap
	MaxClueNum int = 8

	// NoteFinessed is the shortcut note for a finessed card
	NoteFinessed string = "f"
	// NoteChopMoved is the shortcut note for a chop moved card
	NoteChopMoved string = "cm"

	// MorphPrompt asks for the card a morph should turn a card into
	MorphPrompt string = "What card do you want to morph it into?\n(e.g. \"b1\", \"k2\", \"m3\", \"11\", \"65\")"
)

// ActionType is the type of a game action sent to the server
type ActionType int

const (
	ActionTypeClue ActionType = iota
	ActionTypePlay
	ActionTypeDiscard
)

func (t ActionType) String() string {
	switch t {
	case ActionTypeClue:
		return "clue"
	case ActionTypePlay:
		return "play"
	case ActionTypeDiscard:
		return "discard"
	}
	return "unknown"
}

// ClueType distinguishes rank clues from color clues
type ClueType int

const (
	ClueTypeRank ClueType = iota
	ClueTypeColor
)

func (t ClueType) String() string {
	switch t {
	case ClueTypeRank:
		return "rank"
	case ClueTypeColor:
		return "color"
	}
	return "unknown"
}

// ReplayActionType is the type of a shared replay action sent to the server
type ReplayActionType int

const (
	ReplayActionTypeTurn ReplayActionType = iota
	ReplayActionTypeArrow
	ReplayActionTypeLeaderTransfer
	ReplayActionTypeMorph
)

func (t ReplayActionType) String() string {
	switch t {
	case ReplayActionTypeTurn:
		return "turn"
	case ReplayActionTypeArrow:
		return "arrow"
	case ReplayActionTypeLeaderTransfer:
		return "leaderTransfer"
	case ReplayActionTypeMorph:
		return "morph"
	}
	return "unknown"
}
