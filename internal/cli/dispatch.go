// Package cli wires flags, config and logging around one read-parse-apply pass.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/logging"
	"todo/internal/output"
	"todo/internal/task"
)

// Version is the application version. Set at build time.
var Version = "0.1.0"

// Dispatcher reads one command line, parses it and applies it to a task list.
type Dispatcher struct {
	registry *commands.Registry
	list     *task.List
}

// NewDispatcher creates a dispatcher parsing against registry and mutating list.
// A nil list starts empty.
func NewDispatcher(registry *commands.Registry, list *task.List) *Dispatcher {
	if list == nil {
		list = &task.List{}
	}
	return &Dispatcher{
		registry: registry,
		list:     list,
	}
}

// Run parses flags, reads a single line from in and applies it.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	var configPath string
	var quiet, debug, show, help, version bool

	fs.StringVar(&configPath, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")
	fs.BoolVar(&show, "show", false, "")
	fs.BoolVar(&help, "help", false, "")
	fs.BoolVar(&version, "version", false, "")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			d.writeHelp(out)
			return exitcode.Success
		}
		return flagError(errOut, err)
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", fs.Arg(0))
		return exitcode.UserError
	}

	if help {
		d.writeHelp(out)
		return exitcode.Success
	}
	if version {
		fmt.Fprintf(out, "%s %s\n", config.AppName, Version)
		return exitcode.Success
	}

	cfg, err := config.New(configPath)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.ConfigError
	}
	// Flags given on the command line win over the file, in both directions.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "quiet":
			cfg.Quiet = quiet
		case "debug":
			cfg.Debug = debug
		case "show":
			cfg.ShowList = show
		}
	})

	logger := logging.New(errOut, cfg)
	ctx = logging.WithLogger(ctx, logger)
	if cfg.Path != "" {
		logger.Debug("config loaded", "path", cfg.Path)
	}

	line, err := readLine(ctx, in)
	if err != nil {
		fmt.Fprintf(errOut, "error: reading input: %v\n", err)
		return exitcode.IOError
	}

	return d.execute(ctx, cfg, line, out, errOut)
}

// execute parses line, echoes the action and applies it to the list.
func (d *Dispatcher) execute(ctx context.Context, cfg *config.Config, line string, out, errOut io.Writer) int {
	logger := logging.FromContext(ctx)
	input := strings.TrimSpace(line)

	action, err := commands.ParseWith(d.registry, line)
	if err != nil {
		logger.Debug("parse failed", "input", input, "err", err)
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	logger.Debug("parsed", append([]any{"input", input}, actionFields(action)...)...)

	if !cfg.Quiet {
		output.FormatAction(out, action)
	}

	if err := action.Apply(d.list); err != nil {
		logger.Debug("apply failed", "action", action.String(), "err", err)
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	logger.Debug("applied", append(actionFields(action), "tasks", d.list.Len())...)

	switch action.Kind {
	case commands.KindQuit:
		logger.Debug("quit requested")
	case commands.KindUnknown:
		logger.Debug("unknown command treated as no-op", "word", action.Text)
	}

	if cfg.ShowList {
		output.FormatList(out, *d.list)
	}
	return exitcode.Success
}

// actionFields returns the log fields describing a parsed action.
func actionFields(a commands.Action) []any {
	fields := []any{"action", a.String()}
	switch a.Kind {
	case commands.KindRemove, commands.KindSetToDo, commands.KindSetDone:
		fields = append(fields, "index", a.Index)
	}
	return fields
}

// flagError reports a flag parse error in the CLI's own wording.
func flagError(errOut io.Writer, err error) int {
	errStr := err.Error()

	if strings.HasPrefix(errStr, "flag needs an argument:") {
		flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
		fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", flagName)
		return exitcode.UserError
	}

	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
		return exitcode.UserError
	}

	fmt.Fprintf(errOut, "error: %s\n", errStr)
	return exitcode.UserError
}

func (d *Dispatcher) writeHelp(out io.Writer) {
	fmt.Fprint(out, helpHeader)
	commands.WriteHelp(out, d.registry)
	fmt.Fprint(out, helpFlags)
}

const helpHeader = `Usage:
  echo '<command>' | todo [flags]

Reads one command from standard input and applies it to the task list.

Commands:
`

const helpFlags = `
Flags:
  --config <file>  Load settings from a TOML file
  --quiet          Do not echo the parsed command
  --debug          Print debug logs to stderr
  --show           Print the task list after the command
  --help           Print usage
  --version        Print version
`
