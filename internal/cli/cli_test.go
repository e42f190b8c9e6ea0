package cli

import (
	"bytes"
	"errors"
	"testing"

	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCommandSet(t *testing.T, executed *int) (*CommandSet, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	set := NewCommandSet("test")
	set.Redirect(&buf)
	cmd := set.AddCommand("Run Me", "Runs a test command", "r", " ")
	cmd.Flags().String("name", "", "A name to print")
	cmd.Usage("[--name NAME]").Does(func(flags *flag.FlagSet, printer *Printer) error {
		*executed++
		printer.Println("hello", MustGet(flags.GetString("name")))
		return nil
	})
	return set, &buf
}

func TestCommandSet_Exec(t *testing.T) {
	executed := 0
	set, buf := testCommandSet(t, &executed)

	require.NoError(t, set.Exec([]string{"runme", "--name", "world"}))
	assert.Equal(t, 1, executed)
	assert.Equal(t, "hello world\n", buf.String())

	require.NoError(t, set.Exec([]string{"R"}), "Aliases should be case-insensitive")
	assert.Equal(t, 2, executed)

	assert.ErrorIs(t, set.Exec([]string{"does", "not", "exist"}), ErrUnknownCommand)
	assert.Equal(t, 2, executed)
}

func TestCommandSet_Exec_NoArgs(t *testing.T) {
	executed := 0
	set, buf := testCommandSet(t, &executed)

	err := set.Exec(nil)
	assert.ErrorIs(t, err, &UsageError{})
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, buf.String(), "USAGE:\ntest COMMAND")
}

func TestCommandSet_Help(t *testing.T) {
	for _, pattern := range HelpPatterns {
		executed := 0
		set, buf := testCommandSet(t, &executed)
		require.NoError(t, set.Exec([]string{pattern}))
		assert.Equal(t, 0, executed)
		assert.Contains(t, buf.String(), "runme, r\tRuns a test command")
	}
}

func TestCommand_Help(t *testing.T) {
	executed := 0
	set, buf := testCommandSet(t, &executed)
	require.NoError(t, set.Exec([]string{"runme", "-h"}))
	assert.Equal(t, 0, executed)
	out := buf.String()
	assert.Contains(t, out, "Runs a test command")
	assert.Contains(t, out, "test runme [--name NAME]")
	assert.Contains(t, out, "--name")
}

func TestCommand_Exec_BadFlag(t *testing.T) {
	executed := 0
	set, _ := testCommandSet(t, &executed)
	err := set.Exec([]string{"runme", "--unknown"})
	assert.ErrorIs(t, err, &UsageError{})
	assert.Equal(t, 0, executed)
}

func TestCommand_Exec_Error(t *testing.T) {
	errTest := errors.New("test")
	set := NewCommandSet("test")
	set.Redirect(&bytes.Buffer{})
	set.AddCommand("fail", "Always fails").Does(func(*flag.FlagSet, *Printer) error {
		return errTest
	})
	assert.ErrorIs(t, set.Exec([]string{"fail"}), errTest)
}

func TestCommand_Exec_NoFunc(t *testing.T) {
	var buf bytes.Buffer
	set := NewCommandSet("test")
	set.Redirect(&buf)
	set.AddCommand("empty", "Does nothing").Does(nil)
	assert.NoError(t, set.Exec([]string{"empty"}))
	assert.Contains(t, buf.String(), "Does nothing")
}

func TestMustGet(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Int("count", 3, "")
	assert.Equal(t, 3, MustGet(fs.GetInt("count")))
	assert.Panics(t, func() {
		MustGet(fs.GetString("count"))
	})
}

func TestCommand_Exec_UsageErrorCommand(t *testing.T) {
	set := NewCommandSet("test")
	set.Redirect(&bytes.Buffer{})
	set.AddCommand("misuse", "Returns a usage error").Does(func(*flag.FlagSet, *Printer) error {
		return NewUsageError("missing argument")
	})

	err := set.Exec([]string{"misuse"})
	var usageErr *UsageError
	require.True(t, errors.As(err, &usageErr))
	assert.Equal(t, "misuse", usageErr.Command)
	assert.EqualError(t, err, "usage error in misuse: missing argument")

	err = set.Exec([]string{"misuse", "--bad"})
	require.True(t, errors.As(err, &usageErr))
	assert.Equal(t, "misuse", usageErr.Command)
}
