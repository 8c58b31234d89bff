package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/engine"
)

// Assistant is the terminal front end: it reads one command per line, runs it
// against the in-memory directory and writes back a single reply.
type Assistant struct {
	Directory  *engine.Directory
	Exporter   *engine.Exporter
	Clock      engine.Clock // Injected clock for testability (e.g. mocking time travel)
	I18nBundle *i18n.Bundle
	Localizer  *i18n.Localizer

	commands map[string]commandFunc
}

// NewAssistant wires an empty directory and the default English catalogue.
func NewAssistant(clock engine.Clock) *Assistant {
	a := &Assistant{
		Directory: engine.NewDirectory(),
		Clock:     clock,
	}
	a.Exporter = &engine.Exporter{
		Clock: clock,
		FormatSummary: func(name string) string {
			return a.Msg(config.TKeyEventSummary, map[string]any{"Name": name})
		},
	}
	a.commands = a.commandTable()
	a.SetupI18n(config.DefaultLanguage)
	return a
}

// ParseInput splits a line into a lower-cased command and its arguments.
// Arguments keep their case; an empty line yields an empty command.
func ParseInput(line string) (string, []string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil
	}
	return strings.ToLower(parts[0]), parts[1:]
}

// Handle runs a single command line and returns the reply.
// quit is true when the line asked the assistant to stop.
func (a *Assistant) Handle(line string) (reply string, quit bool) {
	cmd, args := ParseInput(line)

	slog.Debug(config.MsgCommand,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyCommand, cmd,
		config.LogKeyArgs, len(args),
	)

	switch cmd {
	case config.CmdClose, config.CmdExit:
		return a.GetMsg(config.TKeyGoodbye), true
	}

	run, ok := a.commands[cmd]
	if !ok {
		return a.GetMsg(config.TKeyInvalidCommand), false
	}

	reply, err := run(args)
	if err != nil {
		slog.Debug(config.MsgCommandFailed,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyCommand, cmd,
			config.LogKeyError, err,
		)
		return a.errorReply(err), false
	}
	return reply, false
}

// Run drives the prompt loop until close/exit, end of input or ctx cancellation.
// Lines are read on a separate goroutine so a blocked read does not delay shutdown;
// commands themselves are executed one at a time on the caller's goroutine.
func (a *Assistant) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	log := slog.With(config.LogKeyComponent, config.CompUI)

	// Releases the reader goroutine when the loop ends on close/exit.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.write(out, a.GetMsg(config.TKeyWelcome)+"\n"); err != nil {
		return err
	}

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		if err := a.write(out, a.GetMsg(config.TKeyPrompt)); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			log.Info(config.MsgCtxCancel)
			return nil

		case line, ok := <-lines:
			if !ok {
				err := <-readErr
				if ctx.Err() != nil {
					log.Info(config.MsgCtxCancel)
					return nil
				}
				log.Info(config.MsgInputClosed)
				if err != nil {
					return fmt.Errorf("%s: %w", config.ErrReadInput, err)
				}
				return nil
			}

			reply, quit := a.Handle(line)
			if err := a.write(out, reply+"\n"); err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

func (a *Assistant) write(out io.Writer, s string) error {
	if _, err := io.WriteString(out, s); err != nil {
		return fmt.Errorf("%s: %w", config.ErrWriteOutput, err)
	}
	return nil
}
