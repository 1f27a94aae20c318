/*
Package clix builds command line interfaces from a declarative rule tree.

A CLI here is data first. Keywords, parameters, and positional arguments are
declared as rules, a single left-to-right pass resolves the raw arguments
against them, and actions read whatever they need from the resolved context by
name. There are a few reasonable (IMHO) policies for how this operates.

  - User-visible diagnostics go to STDERR by default, supported with a
    configurable [Printer]. Output meant for other programs or pagers (help,
    version, completion proposals) goes to STDOUT, redirectable with
    [App.Output].
  - Resolution never backtracks. One pass, innermost scope first, and the
    first rule that matches a token wins. This keeps behavior predictable for
    the user and debuggable for the developer.
  - Options belong to the command scope that declared them, and an inner
    declaration shadows an outer one. Global flag soup is avoided on purpose.
  - Help, version, and bash completion are wired up by default, because every
    tool ends up needing them. [App.WithoutDefaults] turns them off.

# Invocation

Invoking an application built from rules always follows this form:

	CLI_NAME [COMMAND...] [OPTIONS...] [ARGS...]

Calling CLI_NAME with no runnable action prints usage information.

# Declaring

An application is assembled fluently:

	err := clix.New("vcs").
		Version("1.2.3").
		Help("toy version control").
		With(
			clix.Flag("--verbose", "-v"),
			clix.Subcommand("clone").Has(
				clix.Parameter("--depth").Typed(value.Int),
				clix.Argument("url").Required(),
			).Runs(doClone),
		).
		Run(os.Args[1:])

# Reading values

Actions receive [Args] and look bindings up by any declared alias, dashed or
not: "--depth", "depth", and "-d" name the same binding. [Get] reports
presence, [MustGet] panics on absence, and [GetAll] reads accumulating
bindings. The zoo of per-type getter methods found in other flag packages is
deliberately absent.

Existing pflag-based surfaces can be carried over with the pflagx package
instead of being redeclared.
*/
package clix
