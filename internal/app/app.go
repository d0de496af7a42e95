package app

import (
	"fmt"

	"listedit/internal/clipboard"
	"listedit/internal/command"
	"listedit/internal/config"
	"listedit/internal/interaction"
	"listedit/internal/listcontext"
	"listedit/internal/logger"
	"listedit/internal/store"
)

// App owns the single instance of every core collaborator. Hosts receive
// an App and reach the pieces through its fields.
type App struct {
	Config   config.Config
	Store    *store.Store
	Stack    *command.Stack
	Manager  *interaction.Manager
	Arbiter  *clipboard.Arbiter
	Contexts []*listcontext.ListContext
}

// New wires one store, stack, registry and arbiter, then one list context
// per configured context.
func New(cfg config.Config, focus interaction.FocusSource, host clipboard.Host) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := store.New(cfg.Document.Items...)
	stack := command.NewStack()
	manager := interaction.NewManager(stack, focus)
	arbiter := clipboard.NewArbiter(manager, host, clipboard.WithMirror(cfg.Clipboard.Mirror))

	a := &App{
		Config:  cfg,
		Store:   s,
		Stack:   stack,
		Manager: manager,
		Arbiter: arbiter,
	}
	for _, cc := range cfg.Contexts {
		title := cc.Title
		if title == "" {
			title = cc.ID
		}
		ctx := listcontext.New(cc.ID, title, s, stack, arbiter)
		if err := manager.Subscribe(ctx); err != nil {
			return nil, fmt.Errorf("failed to register context: %w", err)
		}
		a.Contexts = append(a.Contexts, ctx)
	}

	logger.Info("Started with %d items and %d contexts", s.Len(), len(a.Contexts))
	return a, nil
}

// Context returns the list context with id
func (a *App) Context(id string) (*listcontext.ListContext, bool) {
	for _, c := range a.Contexts {
		if c.ID() == id {
			return c, true
		}
	}
	return nil, false
}

// Close waits for pending clipboard mirrors
func (a *App) Close() {
	a.Arbiter.Flush()
}
