package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cbodonnell/hanabi/pkg/game/types"
	"github.com/cbodonnell/hanabi/pkg/gesture"
	"github.com/cbodonnell/hanabi/pkg/log"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

func main() {
	speedrun := flag.Bool("speedrun", false, "Speedrun bindings")
	replay := flag.Bool("replay", false, "Solo replay")
	spectating := flag.Bool("spectating", false, "Spectating")
	sharedReplay := flag.Bool("shared-replay", false, "Shared replay")
	leader := flag.Bool("leader", false, "Leader of the shared replay")
	sharedTurns := flag.Bool("shared-turns", false, "Following shared turns")
	clues := flag.Int("clues", 4, "Clue tokens remaining")
	logLevel := flag.String("log-level", "warn", "Log level")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}
	log.SetDefaultLogger(log.New(os.Stderr, log.DefaultLoggerFlag, parsedLogLevel))

	session := &types.Session{
		Speedrun:           *speedrun,
		Replay:             *replay,
		Spectating:         *spectating,
		SharedReplay:       *sharedReplay,
		SharedReplayLeader: *leader,
		UseSharedTurns:     *sharedTurns,
		Clues:              *clues,
	}

	rows, conflicts := routingTable(gesture.NewRouter(), session)
	fmt.Printf("bindings: %s\n", gesture.ModeFor(session))
	fmt.Println(render(rows))

	if conflicts > 0 {
		log.Error("%d clicks match more than one branch", conflicts)
		os.Exit(1)
	}
}

// sampleCard is a card in one of the states the router distinguishes.
type sampleCard struct {
	Name string
	Card *types.Card
}

func sampleCards() []sampleCard {
	return []sampleCard{
		{Name: "own", Card: &types.Card{Order: 1, Holder: 0, HandSlot: 1}},
		{Name: "partner", Card: &types.Card{Order: 2, Holder: 1, HandSlot: 1}},
		{Name: "newest (tweening)", Card: &types.Card{Order: 3, Holder: 0, HandSlot: 0, Tweening: true}},
		{Name: "played", Card: &types.Card{Order: 4, Holder: types.NoHolder, HandSlot: -1, IsPlayed: true}},
		{Name: "discarded", Card: &types.Card{Order: 5, Holder: types.NoHolder, HandSlot: -1, IsDiscarded: true}},
	}
}

var buttons = []gesture.Button{gesture.ButtonPrimary, gesture.ButtonSecondary}

// routingTable returns one row per button and modifier combination, with the
// branch chosen for each sample card. It also counts clicks that match
// more than one rule.
func routingTable(router *gesture.Router, session *types.Session) ([][]string, int) {
	cards := sampleCards()
	header := []string{"button", "modifiers"}
	for _, c := range cards {
		header = append(header, c.Name)
	}

	rows := [][]string{header}
	conflicts := 0
	for _, button := range buttons {
		for _, mods := range gesture.AllModifiers() {
			ev := gesture.Event{Button: button, Modifiers: mods}
			row := []string{button.String(), mods.String()}
			for _, c := range cards {
				if len(router.Matches(ev, c.Card, session)) > 1 {
					conflicts++
					row = append(row, "CONFLICT")
					continue
				}
				branch := router.Route(ev, c.Card, session)
				if branch == gesture.BranchNone {
					row = append(row, "-")
					continue
				}
				row = append(row, branch.String())
			}
			rows = append(rows, row)
		}
	}
	return rows, conflicts
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func render(rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(rows[0]...).
		Rows(rows[1:]...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.String()
}
