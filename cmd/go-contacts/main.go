package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/engine"
	"github.com/tartampluch/go-contacts/internal/ui"
)

// main is the application entry point.
// It delegates execution to runMain to ensure that deferred function calls
// are executed before the process terminates.
// os.Exit() does not run defers, so we must return an integer code first.
func main() {
	os.Exit(runMain(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// runMain builds the root command, executes it and maps the outcome to an exit code.
func runMain(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}
	return config.ExitCodeSuccess
}

// newRootCmd wires flags and the interactive loop into a cobra command.
func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var showVersion, debugMode bool

	cmd := &cobra.Command{
		Use:           config.AppCommand,
		Short:         config.AppShort,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showVersion {
				printVersion(stdout)
				return nil
			}

			// Logs go to stderr so stdout carries only the conversation.
			setupLogging(stderr, debugMode)

			// Create a root context that cancels on SIGINT (Ctrl+C) or SIGTERM.
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			logStartupInfo()

			if err := run(ctx, stdin, stdout); err != nil {
				return err
			}
			slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
			return nil
		},
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().BoolVar(&showVersion, config.FlagVersion, false, config.FlagDescVersion)
	cmd.Flags().BoolVar(&debugMode, config.FlagDebug, false, config.FlagDescDebug)
	return cmd
}

// run creates the assistant with the real clock and blocks on the command loop.
func run(ctx context.Context, in io.Reader, out io.Writer) error {
	assistant := ui.NewAssistant(engine.RealClock{})
	return assistant.Run(ctx, in, out)
}

// printVersion outputs the build information.
func printVersion(w io.Writer) {
	_, _ = fmt.Fprintf(w, config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger.
// Without --debug only warnings and errors are emitted, keeping the terminal quiet.
func setupLogging(w io.Writer, debugMode bool) {
	level := slog.LevelWarn
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(w, opts)))
}
