package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/saylorsolutions/sigs/internal/cli"
	"github.com/saylorsolutions/sigs/internal/env"
	flag "github.com/spf13/pflag"
	"golang.org/x/term"
)

const (
	envVerbose   = "SIGS_DEMO_VERBOSE"
	envLogFormat = "SIGS_DEMO_LOG_FORMAT"

	formatText = "text"
	formatJSON = "json"
)

func main() {
	a := &app{
		out:        os.Stdout,
		logOut:     os.Stderr,
		env:        env.OS(),
		isTerminal: term.IsTerminal(int(os.Stderr.Fd())),
	}
	if err := a.run(os.Args[1:]); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, &cli.UsageError{}) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// app holds what the demo commands need from the process, so it can be replaced in tests.
type app struct {
	out        io.Writer
	logOut     io.Writer
	env        env.Source
	isTerminal bool
}

func (a *app) run(args []string) error {
	set := cli.NewCommandSet("sigs-demo")
	set.Redirect(a.out)

	a.command(set, "button", "Replaces the action of a button, and clicks it").Does(a.withLogger(runButton))
	a.command(set, "interface", "Subscribes to a button through its restricted interface").Does(a.withLogger(runInterface))
	a.command(set, "calculator", "Sums the values returned by connected slots", "calc").Does(a.withLogger(runCalculator))
	a.command(set, "mapper", "Finds a button's signals by name").Does(a.withLogger(runMapper))
	a.command(set, "blocker", "Temporarily blocks a signal").Does(a.withLogger(runBlocker))
	a.command(set, "observe", "Observes changes to a value").Does(a.withLogger(runObserve))
	metrics := a.command(set, "metrics", "Prints Prometheus metrics for a clicked button")
	metrics.Flags().IntP("clicks", "n", 3, "How many times to click the button")
	metrics.Does(a.withLogger(runMetrics))

	return set.Exec(args)
}

// command adds a sub-command with the logging flags that every command shares.
// Flag defaults come from the environment.
func (a *app) command(set *cli.CommandSet, key, shortUsage string, aliases ...string) *cli.Command {
	defaultFormat := formatJSON
	if a.isTerminal {
		defaultFormat = formatText
	}
	cmd := set.AddCommand(key, shortUsage, aliases...)
	cmd.Usage("[FLAGS...]")
	flags := cmd.Flags()
	flags.BoolP("verbose", "v", a.env.Bool(envVerbose, false), "Enables debug logging. Defaults to $"+envVerbose)
	flags.String("log-format", a.env.OneOf(envLogFormat, defaultFormat, formatText, formatJSON), "Log output format, either 'text' or 'json'. Defaults to $"+envLogFormat)
	return cmd
}

type loggedFunc = func(flags *flag.FlagSet, printer *cli.Printer, log *slog.Logger) error

func (a *app) withLogger(fn loggedFunc) cli.CommandFunc {
	return func(flags *flag.FlagSet, printer *cli.Printer) error {
		log, err := a.logger(flags)
		if err != nil {
			return err
		}
		return fn(flags, printer, log)
	}
}

func (a *app) logger(flags *flag.FlagSet) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if cli.MustGet(flags.GetBool("verbose")) {
		opts.Level = slog.LevelDebug
	}
	switch format := cli.MustGet(flags.GetString("log-format")); format {
	case formatText:
		return slog.New(slog.NewTextHandler(a.logOut, opts)), nil
	case formatJSON:
		return slog.New(slog.NewJSONHandler(a.logOut, opts)), nil
	default:
		return nil, cli.NewUsageError("unknown log format '%s'", format)
	}
}
