package clix

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/saylorsolutions/clix/complete"
	"github.com/saylorsolutions/clix/help"
	"github.com/saylorsolutions/clix/parse"
	"github.com/saylorsolutions/clix/rule"
)

// App wraps a rule tree with the surroundings of a finished tool: default
// help, version, and completion options, error presentation, and output
// routing.
type App struct {
	name        string
	version     string
	help        string
	rules       []rule.Rule
	printer     *Printer
	out         io.Writer
	noDefaults  bool
	noUsageHint bool
}

// New starts an application definition with the given program name.
func New(name string) *App {
	return &App{name: name, out: os.Stdout}
}

// Version sets the version reported by the app info line and --version.
func (a *App) Version(version string) *App {
	a.version = version
	return a
}

// Help sets the one-line application description.
func (a *App) Help(text string) *App {
	a.help = text
	return a
}

// Runs sets the action invoked when no subcommand provides one.
func (a *App) Runs(action rule.Action) *App {
	a.rules = append(a.rules, rule.NewDefaultAction(action))
	return a
}

// With adds rules to the root scope.
func (a *App) With(rules ...rule.Rule) *App {
	a.rules = append(a.rules, rules...)
	return a
}

// WithoutDefaults disables the built-in help, version, and completion
// options.
func (a *App) WithoutDefaults() *App {
	a.noDefaults = true
	return a
}

// NoUsageOnError suppresses the usage hint printed under resolution errors.
func (a *App) NoUsageOnError() *App {
	a.noUsageHint = true
	return a
}

// Printer returns the cached [Printer] for this [App].
func (a *App) Printer() *Printer {
	if a.printer == nil {
		a.printer = NewPrinter()
	}
	return a.printer
}

// Output redirects machine-facing output (help, version, completion
// proposals), STDOUT by default.
func (a *App) Output(w io.Writer) *App {
	a.out = w
	return a
}

// Run resolves args, usually os.Args[1:], against the assembled rules and
// executes what they ask for. Resolution errors are printed to the [Printer]
// and returned unchanged, so callers can exit nonzero without reprinting.
func (a *App) Run(args []string) error {
	rules, defaults := a.assemble()
	resolver, err := parse.NewResolver(rules...)
	if err != nil {
		a.Printer().Errorf("%v", err)
		return err
	}
	if handled, err := a.intercept(resolver, defaults, args); handled {
		return err
	}
	ctx, err := resolver.Resolve(args)
	if err != nil {
		a.Printer().Errorf("%v", err)
		if !a.noUsageHint {
			a.Printer().Printf("Run %q for usage.\n", a.name+" --help")
		}
		return err
	}
	if action := ctx.Action(); action != nil {
		return action(ctx)
	}
	a.printHelp(rules, args)
	return nil
}

// intercept runs a tolerant pass first, so a primary option works even when
// the rest of the command line is incomplete or wrong.
func (a *App) intercept(resolver *parse.Resolver, defaults defaultPrimaries, args []string) (bool, error) {
	dry := resolver.ResolveDry(args)
	primary := dry.Primary()
	if primary == nil {
		return false, nil
	}
	switch primary {
	case defaults.help:
		a.printHelp(resolver.Rules(), without(args, primary.Keywords()))
		return true, nil
	case defaults.version:
		_, _ = fmt.Fprintln(a.out, help.FormatVersion(a.name, a.version))
		return true, nil
	case defaults.complete:
		line := strings.Join(after(args, primary.Keywords()), " ")
		for _, proposal := range complete.Propose(resolver.Rules(), line) {
			_, _ = fmt.Fprintln(a.out, proposal)
		}
		return true, nil
	case defaults.install:
		return true, a.installCompletion()
	}
	if action := primary.Action(); action != nil {
		return true, action(dry)
	}
	return false, nil
}

func (a *App) printHelp(rules []rule.Rule, subargs []string) {
	opts := help.Options{
		AppName: a.name,
		Version: a.version,
		Help:    a.help,
		Width:   a.Printer().Width(),
	}
	_, _ = fmt.Fprintln(a.out, help.Render(rules, opts, subargs))
}

func (a *App) installCompletion() error {
	path := complete.InstallPath(a.name)
	if err := os.WriteFile(path, []byte(complete.Script(a.name)), 0o755); err != nil {
		a.Printer().Errorf("installing completion script: %v", err)
		return err
	}
	a.Printer().Printf("Autocompletion installed in %s. Restart your shell to pick it up.\n", path)
	return nil
}

type defaultPrimaries struct {
	help, version, complete, install *rule.PrimaryOption
}

// assemble appends the default primary options, leaving out any whose
// keywords the caller claimed for their own rules.
func (a *App) assemble() ([]rule.Rule, defaultPrimaries) {
	rules := slices.Clone(a.rules)
	var defaults defaultPrimaries
	if a.noDefaults {
		return rules, defaults
	}
	claimed := map[string]bool{}
	for _, r := range a.rules {
		for _, keyword := range ruleKeywords(r) {
			claimed[keyword] = true
		}
	}
	add := func(helpText string, keywords ...string) *rule.PrimaryOption {
		for _, keyword := range keywords {
			if claimed[keyword] {
				return nil
			}
		}
		primary := rule.NewPrimaryOption(keywords...).Help(helpText)
		rules = append(rules, primary)
		return primary
	}
	defaults.help = add("Display this help and exit", "-h", "--help")
	if a.version != "" {
		defaults.version = add("Print version information and exit", "--version")
	}
	defaults.complete = add("List completion proposals for a command line", "--bash-autocomplete")
	defaults.install = add("Install the bash completion script", "--install-bash")
	return rules, defaults
}

func ruleKeywords(r rule.Rule) []string {
	switch t := r.(type) {
	case *rule.Subcommand:
		return t.Keywords()
	case *rule.Flag:
		return t.Keywords()
	case *rule.PrimaryOption:
		return t.Keywords()
	case *rule.Parameter:
		return t.Keywords()
	case *rule.Dictionary:
		return t.Keywords()
	}
	return nil
}

func without(args, keywords []string) []string {
	var out []string
	for _, arg := range args {
		if slices.Contains(keywords, arg) {
			continue
		}
		out = append(out, arg)
	}
	return out
}

func after(args, keywords []string) []string {
	for i, arg := range args {
		if slices.Contains(keywords, arg) {
			return args[i+1:]
		}
	}
	return nil
}
