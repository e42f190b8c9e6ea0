package cli

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	flag "github.com/spf13/pflag"
)

// HelpPatterns are the arguments that print usage information for a [CommandSet].
var HelpPatterns = []string{"--help", "-h"}

// CommandFunc is the function executed by a [Command], with its parsed flags.
type CommandFunc = func(flags *flag.FlagSet, printer *Printer) error

// Command is a sub-command of a [CommandSet].
type Command struct {
	key        string
	shortUsage string
	longUsage  string
	aliases    []string
	flags      *flag.FlagSet
	exec       CommandFunc
	set        *CommandSet
}

// Does specifies the [CommandFunc] that should be executed by this [Command].
func (c *Command) Does(commandFunc CommandFunc) *Command {
	if commandFunc == nil {
		return c
	}
	c.exec = commandFunc
	return c
}

// Usage sets a longer description of the [Command] that's printed along with flag usage when help is requested.
func (c *Command) Usage(format string, args ...any) *Command {
	c.longUsage = fmt.Sprintf(format, args...)
	return c
}

// Flags returns the [flag.FlagSet] for this [Command], so it can be configured.
func (c *Command) Flags() *flag.FlagSet {
	return c.flags
}

// PrintUsage prints the usage information of this [Command].
func (c *Command) PrintUsage() {
	var buf strings.Builder
	buf.WriteString(c.shortUsage + "\n")
	if len(c.longUsage) > 0 {
		buf.WriteString("\nUSAGE:\n")
		buf.WriteString(strings.TrimSuffix(c.set.name+" "+c.key+" "+c.longUsage, "\n") + "\n")
	}
	buf.WriteString("\nFLAGS\n")
	buf.WriteString(c.flags.FlagUsages())
	c.set.printer.Print(buf.String())
}

// Exec parses flags from args, then executes the [Command].
// Usage is printed instead if a help flag is given.
func (c *Command) Exec(args []string) error {
	if err := c.flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			c.PrintUsage()
			return nil
		}
		return &UsageError{Command: c.key, wrapped: err}
	}
	if val, _ := c.flags.GetBool("help"); val {
		c.PrintUsage()
		return nil
	}
	if c.exec == nil {
		c.PrintUsage()
		return nil
	}
	err := c.exec(c.flags, c.set.printer)
	var usageErr *UsageError
	if errors.As(err, &usageErr) && len(usageErr.Command) == 0 {
		usageErr.Command = c.key
	}
	return err
}

// CommandSet is a named group of [Command].
type CommandSet struct {
	name     string
	printer  *Printer
	commands map[string]*Command
	aliases  map[string]*Command
}

// NewCommandSet creates the root of a CLI's command structure.
// The name is used in usage information, and should be how the CLI is invoked.
func NewCommandSet(name string) *CommandSet {
	return &CommandSet{name: name, printer: NewPrinter(nil)}
}

// Printer returns the [Printer] shared by every [Command] in this set.
func (s *CommandSet) Printer() *Printer {
	return s.printer
}

// Redirect sends all output of this set to writer.
func (s *CommandSet) Redirect(writer io.Writer) {
	s.printer.Redirect(writer)
}

// AddCommand adds a sub-command to this [CommandSet].
// Keys and aliases are normalized to lower-case without spaces.
func (s *CommandSet) AddCommand(key, shortUsage string, aliases ...string) *Command {
	key = cleanseKey(key)
	fs := flag.NewFlagSet(key, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolP("help", "h", false, "Prints this usage information")
	fs.SetInterspersed(false)
	cmd := &Command{
		key:        key,
		shortUsage: shortUsage,
		flags:      fs,
		set:        s,
	}
	if s.commands == nil {
		s.commands = map[string]*Command{}
	}
	s.commands[key] = cmd
	for _, alias := range aliases {
		alias = cleanseKey(alias)
		if len(alias) == 0 {
			continue
		}
		if s.aliases == nil {
			s.aliases = map[string]*Command{}
		}
		s.aliases[alias] = cmd
		cmd.aliases = append(cmd.aliases, alias)
	}
	slices.Sort(cmd.aliases)
	return cmd
}

func cleanseKey(key string) string {
	return strings.Join(strings.Fields(strings.ToLower(key)), "")
}

// Exec finds the sub-command named by the first argument and executes it with the rest.
// Usage is printed if help is requested, and a [UsageError] is returned if no sub-command is given.
func (s *CommandSet) Exec(args []string) error {
	if len(args) == 0 {
		s.PrintUsage()
		return NewUsageError("%w: no command given", ErrUnknownCommand)
	}
	if slices.Contains(HelpPatterns, args[0]) {
		s.PrintUsage()
		return nil
	}
	key := strings.ToLower(args[0])
	cmd, ok := s.commands[key]
	if !ok {
		cmd, ok = s.aliases[key]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
		}
	}
	return cmd.Exec(args[1:])
}

// PrintUsage prints the usage information of this [CommandSet].
func (s *CommandSet) PrintUsage() {
	s.printer.Printf("USAGE:\n%s COMMAND [FLAGS...]\n\nCOMMANDS:\n%s", s.name, s.CommandUsages())
}

// CommandUsages returns the short usage of each sub-command, sorted by key.
func (s *CommandSet) CommandUsages() string {
	keys := make([]string, 0, len(s.commands))
	for key := range s.commands {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	var (
		buf         strings.Builder
		withAliases = make([]string, len(keys))
		maxLen      int
	)
	for i, key := range keys {
		withAliases[i] = strings.Join(append([]string{key}, s.commands[key].aliases...), ", ")
		maxLen = max(maxLen, len(withAliases[i]))
	}
	fmtStr := fmt.Sprintf("  %%-%ds\t%%s\n", maxLen)
	for i, key := range keys {
		buf.WriteString(fmt.Sprintf(fmtStr, withAliases[i], s.commands[key].shortUsage))
	}
	return buf.String()
}

// MustGet is used with a [flag.FlagSet] getter to panic if the flag is not defined, or is not the right type.
func MustGet[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
