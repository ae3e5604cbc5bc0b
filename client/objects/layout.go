package objects

import (
	"fmt"
	"sort"

	"github.com/cbodonnell/hanabi/pkg/game/types"
	"github.com/solarlune/resolv"
)

const (
	// CollisionSpaceTagCard tags the hit box of a card.
	CollisionSpaceTagCard   = "card"
	collisionSpaceTagCursor = "cursor"

	DefaultCellSize = 16
)

// CardLayout places cards on the table and finds the card under the pointer.
// Later placements are drawn above earlier ones and win hit tests.
type CardLayout struct {
	space      *resolv.Space
	width      float64
	height     float64
	cardWidth  float64
	cardHeight float64
	entries    map[int]*placedCard
	nextZ      int
}

type placedCard struct {
	Card   *types.Card
	Object *resolv.Object
	Z      int
}

type NewCardLayoutOptions struct {
	// Width and Height are the size of the table in pixels.
	Width  int
	Height int
	// CardWidth and CardHeight are the size of a card's hit box.
	CardWidth  float64
	CardHeight float64
	// CellSize is the resolv cell size. Defaults to DefaultCellSize.
	CellSize int
}

func NewCardLayout(opts NewCardLayoutOptions) (*CardLayout, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid table size %dx%d", opts.Width, opts.Height)
	}
	if opts.CardWidth <= 0 || opts.CardHeight <= 0 {
		return nil, fmt.Errorf("invalid card size %vx%v", opts.CardWidth, opts.CardHeight)
	}
	cellSize := opts.CellSize
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &CardLayout{
		space:      resolv.NewSpace(opts.Width, opts.Height, cellSize, cellSize),
		width:      float64(opts.Width),
		height:     float64(opts.Height),
		cardWidth:  opts.CardWidth,
		cardHeight: opts.CardHeight,
		entries:    make(map[int]*placedCard),
	}, nil
}

// Place puts a card at x, y. Placing a card again moves it to the top.
func (l *CardLayout) Place(card *types.Card, x, y float64) error {
	if card == nil {
		return fmt.Errorf("card is nil")
	}
	if x < 0 || y < 0 || x+l.cardWidth > l.width || y+l.cardHeight > l.height {
		return fmt.Errorf("card %d at (%v, %v) is off the table", card.Order, x, y)
	}

	l.nextZ++
	if entry, ok := l.entries[card.Order]; ok {
		entry.Card = card
		entry.Z = l.nextZ
		entry.Object.Position.X = x
		entry.Object.Position.Y = y
		entry.Object.Update()
		return nil
	}

	entry := &placedCard{
		Card:   card,
		Object: resolv.NewObject(x, y, l.cardWidth, l.cardHeight, CollisionSpaceTagCard),
		Z:      l.nextZ,
	}
	entry.Object.Data = entry
	l.space.Add(entry.Object)
	l.entries[card.Order] = entry
	return nil
}

// Remove takes a card off the table.
func (l *CardLayout) Remove(order int) {
	entry, ok := l.entries[order]
	if !ok {
		return
	}
	l.space.Remove(entry.Object)
	delete(l.entries, order)
}

// CardAt returns the topmost card under a point, or nil.
func (l *CardLayout) CardAt(x, y float64) *types.Card {
	if x < 0 || y < 0 || x >= l.width || y >= l.height {
		return nil
	}

	cursor := resolv.NewObject(x, y, 1, 1, collisionSpaceTagCursor)
	l.space.Add(cursor)
	defer l.space.Remove(cursor)

	collision := cursor.Check(0, 0, CollisionSpaceTagCard)
	if collision == nil {
		return nil
	}

	var top *placedCard
	for _, obj := range collision.Objects {
		entry, ok := obj.Data.(*placedCard)
		if !ok || !l.contains(entry.Object, x, y) {
			continue
		}
		if top == nil || entry.Z > top.Z {
			top = entry
		}
	}
	if top == nil {
		return nil
	}
	return top.Card
}

// Position returns where a card was placed.
func (l *CardLayout) Position(order int) (x, y float64, ok bool) {
	entry, ok := l.entries[order]
	if !ok {
		return 0, 0, false
	}
	return entry.Object.Position.X, entry.Object.Position.Y, true
}

// Cards returns the placed cards from bottom to top.
func (l *CardLayout) Cards() []*types.Card {
	sorted := make([]*placedCard, 0, len(l.entries))
	for _, entry := range l.entries {
		sorted = append(sorted, entry)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Z < sorted[j].Z })
	cards := make([]*types.Card, len(sorted))
	for i, entry := range sorted {
		cards[i] = entry.Card
	}
	return cards
}

func (l *CardLayout) CardSize() (w, h float64) {
	return l.cardWidth, l.cardHeight
}

// contains is an exact bounds test; resolv only reports shared cells.
func (l *CardLayout) contains(obj *resolv.Object, x, y float64) bool {
	return x >= obj.Position.X && x < obj.Position.X+l.cardWidth &&
		y >= obj.Position.Y && y < obj.Position.Y+l.cardHeight
}
