// Package replay tracks the local replay position.
package replay

import (
	"sync"

	"github.com/cbodonnell/hanabi/pkg/game/types"
	"github.com/cbodonnell/hanabi/pkg/log"
)

// Listener is notified after every seek.
type Listener func(turn int, indicateUser bool)

// Controller is an in-memory replay navigator. It flips the session's replay
// flags as the user enters the replay or stops following the leader.
type Controller struct {
	lock      sync.Mutex
	session   *types.Session
	finalTurn int
	turn      int
	listener  Listener
}

type NewControllerOptions struct {
	Session *types.Session
	// FinalTurn bounds seeks. Zero leaves them unbounded.
	FinalTurn int
	Listener  Listener
}

func NewController(opts NewControllerOptions) *Controller {
	session := opts.Session
	if session == nil {
		session = &types.Session{}
	}
	return &Controller{
		session:   session,
		finalTurn: opts.FinalTurn,
		turn:      opts.FinalTurn,
		listener:  opts.Listener,
	}
}

func (c *Controller) EnterReplay() {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.session.Replay {
		return
	}
	c.session.Replay = true
	log.Info("Entered replay at turn %d", c.turn)
}

func (c *Controller) ExitReplay() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.session.Replay = false
	c.turn = c.finalTurn
}

func (c *Controller) DisableFollowingLeader() {
	c.lock.Lock()
	defer c.lock.Unlock()
	if !c.session.UseSharedTurns {
		return
	}
	c.session.UseSharedTurns = false
	log.Info("Stopped following the shared replay leader")
}

// Seek moves the replay to a turn, clamped to the turns that exist.
func (c *Controller) Seek(turn int, indicateUser bool) {
	c.lock.Lock()
	if turn < 0 {
		turn = 0
	}
	if c.finalTurn > 0 && turn > c.finalTurn {
		turn = c.finalTurn
	}
	c.turn = turn
	listener := c.listener
	c.lock.Unlock()

	log.Debug("Seeking replay to turn %d", turn)
	if listener != nil {
		listener(turn, indicateUser)
	}
}

func (c *Controller) Turn() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.turn
}

func (c *Controller) FollowingLeader() bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.session.UseSharedTurns
}
