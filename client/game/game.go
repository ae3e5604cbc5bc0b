package game

import (
	"fmt"

	"github.com/cbodonnell/hanabi/client/input"
	"github.com/cbodonnell/hanabi/client/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	ScreenWidth  = 640
	ScreenHeight = 480
)

// PingSource reports the transport's round trip time in milliseconds.
type PingSource interface {
	Ping() float64
}

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// scene is the current scene.
	scene scenes.Scene
	// ping is nil when playing offline.
	ping PingSource
}

type NewGameOptions struct {
	Debug bool
	Scene scenes.Scene
	Ping  PingSource
}

func NewGame(opts NewGameOptions) (*Game, error) {
	g := &Game{
		debug: opts.Debug,
		ping:  opts.Ping,
	}
	if err := g.SetScene(opts.Scene); err != nil {
		return nil, fmt.Errorf("failed to set scene: %v", err)
	}
	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if scene == nil {
		return fmt.Errorf("scene is nil")
	}
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) Update() error {
	if input.IsNegativeJustPressed() {
		return ebiten.Termination
	}
	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if !g.debug {
		return
	}
	debug := fmt.Sprintf("FPS: %0.2f TPS: %0.2f", ebiten.ActualFPS(), ebiten.ActualTPS())
	if g.ping != nil {
		debug += fmt.Sprintf(" Ping: %0.0fms", g.ping.Ping())
	}
	ebitenutil.DebugPrintAt(screen, debug, ScreenWidth-260, 4)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return ScreenWidth, ScreenHeight
}
