package scenes

import "github.com/hajimehoshi/ebiten/v2"

type Scene interface {
	Init() error
	Destroy() error
	Update() error
	Draw(screen *ebiten.Image)
}
