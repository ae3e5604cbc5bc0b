package scenes

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/cbodonnell/hanabi/client/fixture"
	"github.com/cbodonnell/hanabi/client/input"
	"github.com/cbodonnell/hanabi/client/objects"
	"github.com/cbodonnell/hanabi/pkg/cardclick"
	"github.com/cbodonnell/hanabi/pkg/commands"
	"github.com/cbodonnell/hanabi/pkg/dispatch"
	"github.com/cbodonnell/hanabi/pkg/game/types"
	"github.com/cbodonnell/hanabi/pkg/gesture"
	"github.com/cbodonnell/hanabi/pkg/log"
	"github.com/cbodonnell/hanabi/pkg/notes"
	"github.com/cbodonnell/hanabi/pkg/replay"
	"github.com/cbodonnell/hanabi/pkg/resolver"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	CardWidth  = 50
	CardHeight = 70
	cardGap    = 10
	tableLeft  = 40
	handTop    = 60
	rowHeight  = CardHeight + 40
)

var suitColors = map[types.Color]color.RGBA{
	types.ColorBlue:   {0, 90, 200, 255},
	types.ColorGreen:  {0, 160, 60, 255},
	types.ColorYellow: {220, 190, 0, 255},
	types.ColorRed:    {200, 30, 30, 255},
	types.ColorPurple: {130, 40, 170, 255},
	types.ColorTeal:   {0, 160, 160, 255},
	types.ColorBlack:  {30, 30, 30, 255},
}

var (
	unknownColor   = color.RGBA{120, 120, 120, 255}
	multiColor     = color.RGBA{230, 230, 230, 255}
	indicatorColor = color.RGBA{255, 140, 0, 255}
	preClueColor   = color.RGBA{255, 255, 255, 255}
)

// TableScene shows a fixture table and turns clicks on its cards into commands.
type TableScene struct {
	session      *types.Session
	cards        []*types.Card
	layout       *objects.CardLayout
	indicators   *objects.Indicators
	notes        notes.Store
	replay       *replay.Controller
	clueSelector *input.ClueSelector
	handler      *cardclick.Handler

	width, height int
	lastCommand   string
}

type NewTableSceneOptions struct {
	Fixture   *fixture.Fixture
	Transport dispatch.Transport
	Prompter  resolver.Prompter
	Width     int
	Height    int
}

func NewTableScene(opts NewTableSceneOptions) (*TableScene, error) {
	if opts.Fixture == nil {
		return nil, fmt.Errorf("fixture is required")
	}
	layout, err := objects.NewCardLayout(objects.NewCardLayoutOptions{
		Width:      opts.Width,
		Height:     opts.Height,
		CardWidth:  CardWidth,
		CardHeight: CardHeight,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create card layout: %v", err)
	}

	session := opts.Fixture.Session
	indicators := objects.NewIndicators()
	var noteStore notes.Store = notes.NewInMemoryStore()
	replayController := replay.NewController(replay.NewControllerOptions{
		Session:   session,
		FinalTurn: opts.Fixture.FinalTurn,
		// Arrows belong to the turn they were drawn on.
		Listener: func(turn int, indicateUser bool) { indicators.Clear() },
	})
	clueSelector := input.NewClueSelector(opts.Fixture.Variant)

	handler := cardclick.NewHandler(cardclick.NewHandlerOptions{
		Router: gesture.NewRouter(),
		Resolver: resolver.NewResolver(resolver.NewResolverOptions{
			Prompter:     opts.Prompter,
			Notes:        noteStore,
			ClueSelector: clueSelector,
		}),
		Executor: dispatch.NewExecutor(dispatch.NewExecutorOptions{
			Transport: opts.Transport,
			Navigator: replayController,
			Notes:     noteStore,
			Indicator: indicators,
			PreClue:   indicators,
		}),
	})

	return &TableScene{
		session:      session,
		cards:        opts.Fixture.Cards,
		layout:       layout,
		indicators:   indicators,
		notes:        noteStore,
		replay:       replayController,
		clueSelector: clueSelector,
		handler:      handler,
		width:        opts.Width,
		height:       opts.Height,
	}, nil
}

func (s *TableScene) Init() error {
	played, discarded := 0, 0
	for _, card := range s.cards {
		var x, y float64
		switch card.State() {
		case types.CardStateInHand:
			x = tableLeft + float64(card.HandSlot*(CardWidth+cardGap))
			y = handTop + float64(card.Holder*rowHeight)
		case types.CardStatePlayed:
			x = tableLeft + float64(played*(CardWidth+cardGap))
			y = float64(s.height - 2*rowHeight)
			played++
		case types.CardStateDiscarded:
			x = tableLeft + float64(discarded*(CardWidth+cardGap))
			y = float64(s.height - rowHeight)
			discarded++
		default:
			continue
		}
		if err := s.layout.Place(card, x, y); err != nil {
			return fmt.Errorf("failed to place card: %v", err)
		}
	}
	return nil
}

func (s *TableScene) Destroy() error {
	for _, card := range s.cards {
		s.layout.Remove(card.Order)
	}
	return nil
}

func (s *TableScene) Update() error {
	s.clueSelector.Update()

	if input.IsReplayToggleJustPressed() {
		if s.session.Replay {
			s.replay.ExitReplay()
		} else {
			s.replay.EnterReplay()
		}
	}

	click, ok := input.JustClicked()
	if !ok {
		return nil
	}
	card := s.layout.CardAt(click.X, click.Y)
	if card == nil {
		return nil
	}

	cmd := s.handler.Click(click.Event, card, s.session)
	s.lastCommand = describe(click.Event, card, cmd)
	log.Info("%s", s.lastCommand)
	return nil
}

func (s *TableScene) Draw(screen *ebiten.Image) {
	preClued, hasPreClue := s.indicators.PreClued()
	for _, card := range s.layout.Cards() {
		x, y, ok := s.layout.Position(card.Order)
		if !ok {
			continue
		}
		fx, fy := float32(x), float32(y)
		vector.DrawFilledRect(screen, fx, fy, CardWidth, CardHeight, cardColor(card), false)
		if hasPreClue && preClued == card.Order {
			vector.StrokeRect(screen, fx, fy, CardWidth, CardHeight, 2, preClueColor, false)
		}
		if s.indicators.Shown(card.Order) {
			vector.DrawFilledRect(screen, fx+CardWidth/2-4, fy-12, 8, 8, indicatorColor, false)
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", card.TrueRank), int(x)+4, int(y)+4)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("#%d", card.Order), int(x)+4, int(y)+CardHeight-18)
		if note, ok := s.notes.Note(card.Order); ok {
			ebitenutil.DebugPrintAt(screen, note, int(x), int(y)+CardHeight+2)
		}
	}

	ebitenutil.DebugPrintAt(screen, s.status(), tableLeft, 4)
	if s.lastCommand != "" {
		ebitenutil.DebugPrintAt(screen, s.lastCommand, tableLeft, s.height-16)
	}
}

func (s *TableScene) status() string {
	var flags []string
	if s.session.Speedrun {
		flags = append(flags, "speedrun")
	}
	if s.session.Replay {
		flags = append(flags, fmt.Sprintf("replay@%d", s.replay.Turn()))
	}
	if s.session.SharedReplay {
		flags = append(flags, "shared")
	}
	if s.session.Spectating {
		flags = append(flags, "spectating")
	}
	mode := "game"
	if len(flags) > 0 {
		mode = strings.Join(flags, ",")
	}
	line := fmt.Sprintf("%s  clues:%d  bindings:%s", mode, s.session.Clues, gesture.ModeFor(s.session))
	if clue, ok := s.clueSelector.PressedClue(); ok {
		line += "  selected:" + string(clue.Color)
	}
	if order, ok := s.notes.Editing(); ok {
		line += fmt.Sprintf("  editing note on #%d", order)
	}
	return line
}

func cardColor(card *types.Card) color.Color {
	colors := card.ClueColors()
	switch len(colors) {
	case 0:
		return unknownColor
	case 1:
		if c, ok := suitColors[colors[0]]; ok {
			return c
		}
		return unknownColor
	}
	return multiColor
}

func describe(ev gesture.Event, card *types.Card, cmd commands.Command) string {
	if cmd == nil {
		return fmt.Sprintf("%s on #%d: nothing", ev, card.Order)
	}
	return fmt.Sprintf("%s on #%d: %s", ev, card.Order, cmd)
}
