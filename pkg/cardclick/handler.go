// Package cardclick wires the gesture router, the resolver and the executor
// into the single entry point called when a card is clicked.
package cardclick

import (
	"github.com/cbodonnell/hanabi/pkg/commands"
	"github.com/cbodonnell/hanabi/pkg/dispatch"
	"github.com/cbodonnell/hanabi/pkg/game/types"
	"github.com/cbodonnell/hanabi/pkg/gesture"
	"github.com/cbodonnell/hanabi/pkg/log"
	"github.com/cbodonnell/hanabi/pkg/resolver"
)

type Handler struct {
	router   *gesture.Router
	resolver *resolver.Resolver
	executor *dispatch.Executor
}

type NewHandlerOptions struct {
	Router   *gesture.Router
	Resolver *resolver.Resolver
	Executor *dispatch.Executor
}

func NewHandler(opts NewHandlerOptions) *Handler {
	router := opts.Router
	if router == nil {
		router = gesture.NewRouter()
	}
	res := opts.Resolver
	if res == nil {
		res = resolver.NewResolver(resolver.NewResolverOptions{})
	}
	executor := opts.Executor
	if executor == nil {
		executor = dispatch.NewExecutor(dispatch.NewExecutorOptions{})
	}
	return &Handler{
		router:   router,
		resolver: res,
		executor: executor,
	}
}

// Click handles a pointer release on a card and returns the command it
// dispatched, or nil if the click did nothing.
func (h *Handler) Click(ev gesture.Event, card *types.Card, session *types.Session) commands.Command {
	branch := h.router.Route(ev, card, session)
	if branch == gesture.BranchNone {
		log.Trace("Ignoring %s click", ev)
		return nil
	}

	cmd := h.resolver.Resolve(branch, card, session)
	if cmd == nil {
		log.Debug("Branch %s on card %d resolved to nothing", branch, card.Order)
		return nil
	}

	log.Debug("Branch %s on card %d dispatching %s", branch, card.Order, cmd)
	h.executor.Execute(cmd, session)
	return cmd
}
