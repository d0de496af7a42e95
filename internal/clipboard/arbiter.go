package clipboard

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"listedit/internal/interaction"
	"listedit/internal/logger"
	"listedit/internal/transfer"
)

var (
	// ErrProtocolViolation means an event reached the handler for another kind.
	ErrProtocolViolation = errors.New("clipboard protocol violation")
	// ErrUntrustedSource means the event was not generated by the user.
	ErrUntrustedSource = errors.New("untrusted clipboard event")
)

// EventKind names the host clipboard event
type EventKind int

const (
	EventCopy EventKind = iota
	EventCut
	EventPaste
)

func (k EventKind) String() string {
	switch k {
	case EventCopy:
		return "copy"
	case EventCut:
		return "cut"
	case EventPaste:
		return "paste"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is a clipboard notification from the host. Data carries the host
// payload on paste.
type Event struct {
	Kind    EventKind
	Trusted bool
	Data    *transfer.Payload

	defaultPrevented bool
}

// PreventDefault stops the host from running its own clipboard behavior
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// ActiveContextFinder resolves the focused editing context
type ActiveContextFinder interface {
	FindActiveContext() (interaction.Context, bool)
}

// Option configures an Arbiter
type Option func(*Arbiter)

// WithMirror enables or disables copying the slot to the host clipboard
func WithMirror(enabled bool) Option {
	return func(a *Arbiter) {
		a.mirror = enabled
	}
}

// WithClock overrides the time source used for slot entries
func WithClock(now func() time.Time) Option {
	return func(a *Arbiter) {
		a.now = now
	}
}

// Arbiter routes copy, cut and paste between the host clipboard, the
// internal slot and the focused context. The internal slot wins over host
// data on paste so that rich payloads survive a round trip.
type Arbiter struct {
	contexts ActiveContextFinder
	host     Host
	mirror   bool
	now      func() time.Time

	slot slot
	wg   sync.WaitGroup

	// Mirror writes run one at a time and only the latest is written
	mirrorMu  sync.Mutex
	mirrorSeq atomic.Uint64
}

// NewArbiter creates an arbiter over the registry and host clipboard
func NewArbiter(contexts ActiveContextFinder, host Host, opts ...Option) *Arbiter {
	if host == nil {
		host = NopHost{}
	}
	a := &Arbiter{
		contexts: contexts,
		host:     host,
		mirror:   true,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Slot returns a snapshot of the internal slot
func (a *Arbiter) Slot() (Entry, bool) {
	return a.slot.get()
}

// Flush waits for in-flight host mirror writes
func (a *Arbiter) Flush() {
	a.wg.Wait()
}

func checkEvent(ev *Event, want EventKind) error {
	if ev == nil || ev.Kind != want {
		got := "nil"
		if ev != nil {
			got = ev.Kind.String()
		}
		return fmt.Errorf("%s handler got %s event: %w", want, got, ErrProtocolViolation)
	}
	if !ev.Trusted {
		return fmt.Errorf("%s event: %w", want, ErrUntrustedSource)
	}
	return nil
}

// NotifyExternalCopy handles a host copy event
func (a *Arbiter) NotifyExternalCopy(ev *Event) error {
	if err := checkEvent(ev, EventCopy); err != nil {
		return err
	}
	ctx, ok := a.contexts.FindActiveContext()
	if !ok {
		// Let the host copy whatever it has selected; our slot is stale now
		a.slot.clear()
		logger.Debug("External copy outside any context, slot cleared")
		return nil
	}
	ev.PreventDefault()
	a.store(ctx.HandleCopy(), ctx.ID(), "copy")
	return nil
}

// NotifyExternalCut handles a host cut event
func (a *Arbiter) NotifyExternalCut(ev *Event) error {
	if err := checkEvent(ev, EventCut); err != nil {
		return err
	}
	ctx, ok := a.contexts.FindActiveContext()
	if !ok {
		a.slot.clear()
		logger.Debug("External cut outside any context, slot cleared")
		return nil
	}
	ev.PreventDefault()
	return a.cut(ctx)
}

// NotifyExternalPaste handles a host paste event
func (a *Arbiter) NotifyExternalPaste(ev *Event) error {
	if err := checkEvent(ev, EventPaste); err != nil {
		return err
	}
	ctx, ok := a.contexts.FindActiveContext()
	if !ok {
		return nil
	}

	p := ev.Data
	if e, ok := a.slot.get(); ok {
		p = e.Payload
	}
	ev.PreventDefault()
	return a.paste(ctx, p)
}

// RequestInternalCopy copies the focused selection into the slot
func (a *Arbiter) RequestInternalCopy() error {
	ctx, ok := a.contexts.FindActiveContext()
	if !ok {
		a.slot.clear()
		return nil
	}
	a.store(ctx.HandleCopy(), ctx.ID(), "copy")
	return nil
}

// RequestInternalCut cuts the focused selection into the slot
func (a *Arbiter) RequestInternalCut() error {
	ctx, ok := a.contexts.FindActiveContext()
	if !ok {
		a.slot.clear()
		return nil
	}
	return a.cut(ctx)
}

// RequestInternalPaste pastes the slot into the focused context
func (a *Arbiter) RequestInternalPaste() error {
	e, ok := a.slot.get()
	if !ok {
		return nil
	}
	ctx, ok := a.contexts.FindActiveContext()
	if !ok {
		return nil
	}
	return a.paste(ctx, e.Payload)
}

func (a *Arbiter) cut(ctx interaction.Context) error {
	p, err := ctx.HandleCut()
	if err != nil {
		return fmt.Errorf("cut from %q: %w", ctx.ID(), err)
	}
	a.store(p, ctx.ID(), "cut")
	return nil
}

func (a *Arbiter) paste(ctx interaction.Context, p *transfer.Payload) error {
	if p.Empty() {
		return nil
	}
	if err := ctx.HandlePaste(p); err != nil {
		return fmt.Errorf("paste into %q: %w", ctx.ID(), err)
	}
	logger.Action("paste", fmt.Sprintf("%q into %s", p.Text(), ctx.ID()))
	return nil
}

// store keeps a non-empty payload and mirrors it to the host
func (a *Arbiter) store(p *transfer.Payload, source, event string) {
	if p.Empty() {
		return
	}
	e := a.slot.store(p, source, a.now())
	logger.Action(event, fmt.Sprintf("%s %q from %s", e.ID, p.Text(), source))

	if !a.mirror || !p.HasType(transfer.TypeText) {
		return
	}
	seq := a.mirrorSeq.Add(1)
	a.wg.Add(1)
	go func(text string) {
		defer a.wg.Done()
		a.mirrorMu.Lock()
		defer a.mirrorMu.Unlock()
		if a.mirrorSeq.Load() != seq {
			return
		}
		if err := a.host.WriteText(text); err != nil {
			logger.Debug("Host clipboard mirror failed: %v", err)
		}
	}(p.Text())
}
