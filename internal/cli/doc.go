/*
Package cli structures a small CLI with sub-commands.

  - User-visible output goes through a [Printer], which writes to STDERR unless redirected.
  - Flags are posix style, using [pflag], and are not interspersed with arguments.
  - Flags apply to the command at hand, there are no global flags.

Invoking a [CommandSet] always follows this form:

	CLI_NAME SUB-COMMAND [FLAGS...] [ARGS...]

Calling it with no sub-command, or with '-h' or '--help', prints usage information.
*/
package cli
