package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what every subcommand needs.
type app struct {
	source     StatusSource
	compositor Compositor
	out        io.Writer
	logger     *zap.Logger
}

func (a *app) emitter() *Emitter {
	return NewEmitter(a.out, a.logger)
}

// listen runs the projector with the handlers track registers. Priming reads
// happen inside track, before the subscription opens.
func (a *app) listen(ctx context.Context, track func(*Projector)) error {
	if a.compositor != CompositorHyprland {
		return errors.Errorf("no supported compositor detected (%s)", a.compositor)
	}
	a.logger.Debug("Detected compositor", zap.Stringer("compositor", a.compositor))

	p := NewProjector(a.source, a.emitter(), a.logger)
	track(p)
	if err := p.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (a *app) battery(ctx context.Context) {
	percent, err := a.source.BatteryPercent(ctx)
	if err != nil {
		a.logger.Debug("Skipping status update", zap.String("status", "bat"), zap.Error(err))
		return
	}
	if label, ok := BatteryBucket(percent); ok {
		a.emitter().Line(label)
	}
}

func (a *app) memory(ctx context.Context) {
	text, err := a.source.MeminfoText(ctx)
	if err != nil {
		a.logger.Debug("Skipping status update", zap.String("status", "mem"), zap.Error(err))
		return
	}
	used, err := UsedMemoryMiB(text)
	if err != nil {
		a.logger.Debug("Skipping status update", zap.String("status", "mem"), zap.Error(err))
		return
	}
	a.emitter().Line(FormatMemory(used))
}

func newRootCmd(a *app) *cobra.Command {
	noop := func(*cobra.Command, []string) {}

	root := &cobra.Command{
		Use:                "barstatus <work|window|open_windows|bat|mem>",
		Short:              "Print desktop status lines for a status bar",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		Run:                noop,
	}
	root.SetHelpCommand(&cobra.Command{Use: "help", Hidden: true, Run: noop})

	sub := func(use, short string, run func(ctx context.Context) error) *cobra.Command {
		return &cobra.Command{
			Use:                use,
			Short:              short,
			Args:               cobra.ArbitraryArgs,
			DisableFlagParsing: true,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return run(cmd.Context())
			},
		}
	}

	root.AddCommand(
		sub("work", "Print the active workspace and follow changes", func(ctx context.Context) error {
			return a.listen(ctx, func(p *Projector) { p.TrackWorkspace(ctx) })
		}),
		sub("window", "Print the active window class and follow changes", func(ctx context.Context) error {
			return a.listen(ctx, func(p *Projector) { p.TrackWindow() })
		}),
		sub("open_windows", "Print window counts of workspaces 1-10 and follow changes", func(ctx context.Context) error {
			return a.listen(ctx, func(p *Projector) { p.TrackOpenWindows(ctx) })
		}),
		sub("bat", "Print the battery level bucket", func(ctx context.Context) error {
			a.battery(ctx)
			return nil
		}),
		sub("mem", "Print used memory in MiB", func(ctx context.Context) error {
			a.memory(ctx)
			return nil
		}),
	)
	return root
}

// dispatch runs the subcommand named by the first argument. Later arguments
// are ignored and unknown names do nothing.
func dispatch(ctx context.Context, a *app, args []string) error {
	switch {
	case args == nil:
		// cobra falls back to os.Args on nil
		args = []string{}
	case len(args) > 1:
		args = args[:1]
	}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(ctx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := DefaultConfig()
	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()

	a := &app{
		source:     NewLiveSource(cfg, logger),
		compositor: DetectCompositor(),
		out:        os.Stdout,
		logger:     logger,
	}

	// Failures never change the exit status; the bar just sees no output.
	if err := dispatch(ctx, a, os.Args[1:]); err != nil {
		logger.Error("Status listener stopped", zap.Error(err))
	}
}
