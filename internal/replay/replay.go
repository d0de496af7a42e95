package replay

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"listedit/internal/app"
	"listedit/internal/clipboard"
	"listedit/internal/command"
	"listedit/internal/config"
	"listedit/internal/interaction"
	"listedit/internal/listcontext"
	"listedit/internal/logger"
	"listedit/internal/transfer"
)

// ErrNoFocus is returned by commands that need a focused context
var ErrNoFocus = errors.New("no focused context")

// ErrSyntax is returned for malformed script lines
var ErrSyntax = errors.New("syntax error")

// Runner executes line-oriented edit scripts against one application. It
// plays the role of the interactive host: it owns focus and turns each
// line into the same calls the terminal UI makes.
type Runner struct {
	app     *app.App
	focused string
	out     io.Writer
}

// New creates a runner with its own application instance
func New(cfg config.Config, host clipboard.Host, out io.Writer) (*Runner, error) {
	r := &Runner{out: out}
	a, err := app.New(cfg, interaction.FocusFunc(func() string { return r.focused }), host)
	if err != nil {
		return nil, err
	}
	r.app = a
	return r, nil
}

// App exposes the application the script runs against
func (r *Runner) App() *app.App {
	return r.app
}

// Run executes every line of in, stopping at the first failure, then
// prints the final list.
func (r *Runner) Run(in io.Reader) error {
	defer r.app.Close()

	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := r.Exec(scanner.Text()); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}
	r.print()
	return nil
}

// Exec runs a single script line
func (r *Runner) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	name, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	logger.Debug("replay: %s", line)

	switch name {
	case "focus":
		if _, ok := r.app.Context(rest); !ok {
			return fmt.Errorf("focus %q: unknown context", rest)
		}
		r.focused = rest
		return nil
	case "blur":
		r.focused = ""
		return nil
	case "select":
		ctx, err := r.active()
		if err != nil {
			return err
		}
		n, err := r.ints(rest, 1)
		if err != nil {
			return err
		}
		ctx.SelectAt(n[0])
		return nil
	case "deselect":
		ctx, err := r.active()
		if err != nil {
			return err
		}
		ctx.ClearSelection()
		return nil
	case "add", "add+":
		index, text, ok := strings.Cut(rest, " ")
		if !ok {
			return fmt.Errorf("%s needs an index and text: %w", name, ErrSyntax)
		}
		i, err := strconv.Atoi(index)
		if err != nil {
			return fmt.Errorf("%s index %q: %w", name, index, ErrSyntax)
		}
		return r.app.Stack.PerformAction(command.NewAddText(r.app.Store, text, i), name == "add+")
	case "remove":
		n, err := r.ints(rest, 1)
		if err != nil {
			return err
		}
		return r.app.Stack.PerformAction(command.NewRemoveText(r.app.Store, n[0]), false)
	case "move":
		ctx, err := r.active()
		if err != nil {
			return err
		}
		n, err := r.ints(rest, 2)
		if err != nil {
			return err
		}
		return ctx.Move(n[0], n[1])
	case "undo":
		return r.app.Stack.UndoLastAction()
	case "redo":
		return r.app.Stack.RedoAction()
	case "copy":
		return r.app.Arbiter.RequestInternalCopy()
	case "cut":
		return r.app.Arbiter.RequestInternalCut()
	case "paste":
		return r.app.Arbiter.RequestInternalPaste()
	case "xcopy":
		return r.app.Arbiter.NotifyExternalCopy(&clipboard.Event{Kind: clipboard.EventCopy, Trusted: true})
	case "xcut":
		return r.app.Arbiter.NotifyExternalCut(&clipboard.Event{Kind: clipboard.EventCut, Trusted: true})
	case "xpaste":
		ev := &clipboard.Event{Kind: clipboard.EventPaste, Trusted: true}
		if rest != "" {
			ev.Data = transfer.NewText(rest)
		}
		return r.app.Arbiter.NotifyExternalPaste(ev)
	case "drag":
		return r.drag(rest)
	case "print":
		r.print()
		return nil
	}
	return fmt.Errorf("unknown command %q: %w", name, ErrSyntax)
}

// drag runs "drag <from> <to> [effect]" inside the focused context
func (r *Runner) drag(args string) error {
	ctx, err := r.active()
	if err != nil {
		return err
	}
	fields := strings.Fields(args)
	if len(fields) < 2 || len(fields) > 3 {
		return fmt.Errorf("drag needs <from> <to> [effect]: %w", ErrSyntax)
	}
	n, err := r.ints(strings.Join(fields[:2], " "), 2)
	if err != nil {
		return err
	}

	ctx.SelectAt(n[0])
	d, ok := r.app.Manager.BeginDrag(ctx)
	if !ok {
		return nil
	}
	if len(fields) == 3 {
		effect, err := transfer.ParseEffectAllowed(fields[2])
		if err != nil {
			return fmt.Errorf("drag: %w", ErrSyntax)
		}
		d.Event().EffectAllowed = effect
	}
	d.Over(ctx.ID())
	ctx.SelectAt(n[1])
	return d.Drop(ctx.ID())
}

func (r *Runner) active() (*listcontext.ListContext, error) {
	active, ok := r.app.Manager.FindActiveContext()
	if !ok {
		return nil, ErrNoFocus
	}
	ctx, ok := r.app.Context(active.ID())
	if !ok {
		return nil, ErrNoFocus
	}
	return ctx, nil
}

func (r *Runner) ints(s string, want int) ([]int, error) {
	fields := strings.Fields(s)
	if len(fields) != want {
		return nil, fmt.Errorf("expected %d numbers, got %q: %w", want, s, ErrSyntax)
	}
	out := make([]int, want)
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number: %w", f, ErrSyntax)
		}
		out[i] = n
	}
	return out, nil
}

func (r *Runner) print() {
	fmt.Fprintf(r.out, "%q\n", r.app.Store.Items())
}
