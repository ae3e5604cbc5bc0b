package gesture

// Branch names the handler selected for a click.
type Branch int

const (
	BranchNone Branch = iota

	// Normal mode, left click
	BranchNavigateDrawn
	BranchNavigatePlayed
	BranchNavigateDiscarded

	// Normal mode, right click
	BranchMorph
	BranchLeaderArrow
	BranchLastNote
	BranchFinesseNote
	BranchChopMoveNote
	BranchLocalArrow
	BranchEditNote

	// Speedrun mode
	BranchSpeedrunPlay
	BranchSpeedrunColorClue
	BranchSpeedrunDiscard
	BranchSpeedrunRankClue
	BranchSpeedrunEditNote
	BranchSpeedrunFinesseNote
	BranchSpeedrunChopMoveNote
)

var branchNames = map[Branch]string{
	BranchNone:                 "None",
	BranchNavigateDrawn:        "NavigateDrawn",
	BranchNavigatePlayed:       "NavigatePlayed",
	BranchNavigateDiscarded:    "NavigateDiscarded",
	BranchMorph:                "Morph",
	BranchLeaderArrow:          "LeaderArrow",
	BranchLastNote:             "LastNote",
	BranchFinesseNote:          "FinesseNote",
	BranchChopMoveNote:         "ChopMoveNote",
	BranchLocalArrow:           "LocalArrow",
	BranchEditNote:             "EditNote",
	BranchSpeedrunPlay:         "SpeedrunPlay",
	BranchSpeedrunColorClue:    "SpeedrunColorClue",
	BranchSpeedrunDiscard:      "SpeedrunDiscard",
	BranchSpeedrunRankClue:     "SpeedrunRankClue",
	BranchSpeedrunEditNote:     "SpeedrunEditNote",
	BranchSpeedrunFinesseNote:  "SpeedrunFinesseNote",
	BranchSpeedrunChopMoveNote: "SpeedrunChopMoveNote",
}

func (b Branch) String() string {
	if name, ok := branchNames[b]; ok {
		return name
	}
	return "Unknown"
}

// Mode selects which set of bindings applies to a click.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSpeedrun
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeSpeedrun:
		return "speedrun"
	}
	return "unknown"
}
