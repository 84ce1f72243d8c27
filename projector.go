package main

import (
	"context"
	"slices"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/GcZuRi1886/barstatus/types"
)

// Handler reacts to one event. Handlers run on the listener loop and must
// finish before the next event is read.
type Handler func(ctx context.Context, ev types.Event)

// Projector turns window-manager events into status lines. Handlers are
// registered per kind before Run; Run subscribes to exactly those kinds.
type Projector struct {
	source   StatusSource
	out      *Emitter
	logger   *zap.Logger
	handlers map[types.EventKind][]Handler
}

func NewProjector(source StatusSource, out *Emitter, logger *zap.Logger) *Projector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Projector{
		source:   source,
		out:      out,
		logger:   logger,
		handlers: make(map[types.EventKind][]Handler),
	}
}

// On appends h to the handlers of kind.
func (p *Projector) On(kind types.EventKind, h Handler) {
	p.handlers[kind] = append(p.handlers[kind], h)
}

// Kinds returns the registered event kinds in sorted order.
func (p *Projector) Kinds() []types.EventKind {
	kinds := make([]types.EventKind, 0, len(p.handlers))
	for k := range p.handlers {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// Run subscribes and dispatches events until the stream ends or ctx is
// cancelled, in which case it returns ctx.Err().
func (p *Projector) Run(ctx context.Context) error {
	stream, err := p.source.Subscribe(ctx, p.Kinds()...)
	if err != nil {
		return errors.Wrap(err, "subscribe")
	}
	defer stream.Close()

	for {
		ev, err := stream.Next()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		for _, h := range p.handlers[ev.Kind] {
			h(ctx, ev)
		}
	}
}

// skip records a tick that produced no output.
func (p *Projector) skip(what string, err error) {
	p.logger.Debug("Skipping status update", zap.String("status", what), zap.Error(err))
}

func (p *Projector) emitWorkspace(ctx context.Context) {
	id, err := p.source.ActiveWorkspaceID(ctx)
	if err != nil {
		p.skip("workspace", err)
		return
	}
	p.out.Line(FormatWorkspace(id))
}

func (p *Projector) emitOpenWindows(ctx context.Context) {
	snapshots, err := p.source.WorkspaceSnapshots(ctx)
	if err != nil {
		p.skip("open_windows", err)
		return
	}
	line, err := FormatOpenWindows(snapshots)
	if err != nil {
		p.skip("open_windows", err)
		return
	}
	p.out.Line(line)
}

// TrackWorkspace prints the active workspace now and after every switch.
func (p *Projector) TrackWorkspace(ctx context.Context) {
	p.emitWorkspace(ctx)
	p.On(types.EventWorkspace, func(ctx context.Context, _ types.Event) {
		p.emitWorkspace(ctx)
	})
}

// TrackWindow prints the focused window class on focus changes, and Desktop
// when closing a window leaves nothing focused.
func (p *Projector) TrackWindow() {
	p.On(types.EventActiveWindow, func(_ context.Context, ev types.Event) {
		class := types.ActiveWindowClass(ev.Data)
		p.out.Line(FormatWindow(class, class != ""))
	})
	p.On(types.EventCloseWindow, func(ctx context.Context, _ types.Event) {
		_, ok, err := p.source.ActiveWindowClass(ctx)
		if err != nil {
			p.skip("window", err)
			return
		}
		if !ok {
			p.out.Line(desktopLabel)
		}
	})
}

// openWindowsKinds are the events that can change a workspace window count.
var openWindowsKinds = []types.EventKind{
	types.EventCreateWorkspace,
	types.EventWorkspace,
	types.EventDestroyWorkspace,
	types.EventOpenWindow,
	types.EventCloseWindow,
	types.EventMoveWindow,
	types.EventWindowTitle,
	types.EventFocusedMonitor,
	types.EventActiveWindow,
}

// TrackOpenWindows prints the window-count table now and re-queries it on
// every relevant event. Bursts are not coalesced.
func (p *Projector) TrackOpenWindows(ctx context.Context) {
	for _, kind := range openWindowsKinds {
		p.On(kind, func(ctx context.Context, _ types.Event) {
			p.emitOpenWindows(ctx)
		})
	}
	p.emitOpenWindows(ctx)
}
