package clix

import (
	"github.com/saylorsolutions/clix/rule"
)

// Aliases for the rule model, so a simple CLI only needs this one import.
type (
	Rule      = rule.Rule
	Args      = rule.Args
	Action    = rule.Action
	Converter = rule.Converter
)

// Subcommand declares a nested command scope under any of the keywords.
func Subcommand(keywords ...string) *rule.Subcommand {
	return rule.NewSubcommand(keywords...)
}

// Flag declares a boolean switch.
func Flag(keywords ...string) *rule.Flag {
	return rule.NewFlag(keywords...)
}

// Parameter declares a keyword taking a value.
func Parameter(keywords ...string) *rule.Parameter {
	return rule.NewParameter(keywords...)
}

// PrimaryOption declares a keyword that takes over the invocation, like
// --help does.
func PrimaryOption(keywords ...string) *rule.PrimaryOption {
	return rule.NewPrimaryOption(keywords...)
}

// Argument declares a positional argument slot.
func Argument(name string) *rule.Argument {
	return rule.NewArgument(name)
}

// AllArguments declares a catch-all for everything left on the command line.
func AllArguments(name string) *rule.AllArguments {
	return rule.NewAllArguments(name)
}

// Dictionary declares a keyword collecting key-value pairs.
func Dictionary(keywords ...string) *rule.Dictionary {
	return rule.NewDictionary(keywords...)
}

// DefaultAction declares what runs when no subcommand picked an action.
func DefaultAction(action rule.Action) *rule.DefaultAction {
	return rule.NewDefaultAction(action)
}
