package objects

import "sync"

// Indicators holds the arrows drawn next to cards and the card a clue was
// last given from. Toggling is local and overwritable.
type Indicators struct {
	lock     sync.RWMutex
	arrows   map[int]bool
	preClued int
	hasClue  bool
}

func NewIndicators() *Indicators {
	return &Indicators{
		arrows: make(map[int]bool),
	}
}

func (i *Indicators) ToggleIndicator(order int) {
	i.lock.Lock()
	defer i.lock.Unlock()
	if i.arrows[order] {
		delete(i.arrows, order)
		return
	}
	i.arrows[order] = true
}

func (i *Indicators) Shown(order int) bool {
	i.lock.RLock()
	defer i.lock.RUnlock()
	return i.arrows[order]
}

func (i *Indicators) MarkPreClued(order int) {
	i.lock.Lock()
	defer i.lock.Unlock()
	i.preClued = order
	i.hasClue = true
}

func (i *Indicators) PreClued() (int, bool) {
	i.lock.RLock()
	defer i.lock.RUnlock()
	return i.preClued, i.hasClue
}

// Clear hides every arrow, as when the turn changes.
func (i *Indicators) Clear() {
	i.lock.Lock()
	defer i.lock.Unlock()
	i.arrows = make(map[int]bool)
	i.hasClue = false
}
