// Package help renders usage text for a rule tree. The layout is the common
// three-section form: an app info line, a Usage synopsis, and padded Options
// and Commands columns. Scope discovery reuses the tolerant resolution mode,
// so "app sub --help" renders sub's scope even when sub's required rules are
// not given.
package help

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/saylorsolutions/clix/parse"
	"github.com/saylorsolutions/clix/rule"
)

// Options carries the application facts that appear in rendered help.
type Options struct {
	// AppName is the displayed program name. When empty, the base name of
	// the running binary is used.
	AppName string
	// Version is included in the app info line when set.
	Version string
	// Help is the one-line application description.
	Help string
	// Width caps rendered line length; longer descriptions wrap. Zero or
	// negative means no wrapping.
	Width int
}

// Render produces the full help text for the tree, scoped by subargs. The
// tokens are resolved tolerantly to find the scope being asked about, so an
// incomplete or partially wrong command line still renders something useful.
func Render(rules []rule.Rule, opts Options, subargs []string) string {
	reachable := rules
	var precommands []string
	if resolver, err := parse.NewResolver(rules...); err == nil {
		ctx := resolver.ResolveDry(subargs)
		reachable = ctx.Reachable()
		precommands = ctx.Path()
	}

	var (
		positionals = rule.Select[*rule.Argument](reachable)
		catchAlls   = rule.Select[*rule.AllArguments](reachable)
		options     = optionEntries(reachable)
		commands    = commandEntries(rules, "")
	)

	var lines []string
	if info := appInfo(opts); info != "" {
		lines = append(lines, info, "")
	}

	binPrefix := strings.Join(append([]string{binName(opts)}, precommands...), " ")
	usage := binPrefix
	if len(commands) > 0 {
		usage += " [COMMAND]"
	}
	if len(options) > 0 {
		usage += " [OPTIONS]"
	}
	for _, arg := range positionals {
		display := strings.ToUpper(rule.Name(arg.Name()))
		if arg.IsRequired() {
			usage += " " + display
		} else {
			usage += " [" + display + "]"
		}
	}
	for _, rest := range catchAlls {
		usage += fmt.Sprintf(" [%s...]", rest.Name())
	}
	lines = append(lines, "Usage:", "  "+usage)

	if len(options) > 0 {
		lines = append(lines, "", "Options:")
		lines = appendColumns(lines, options, opts.Width)
	}
	if len(commands) > 0 {
		lines = append(lines, "", "Commands:")
		lines = appendColumns(lines, commands, opts.Width)
		lines = append(lines, "", fmt.Sprintf("Run %q for more information on a command.", binPrefix+" COMMAND --help"))
	}
	return strings.Join(lines, "\n")
}

// FormatVersion renders the version banner, normalizing a leading "v".
func FormatVersion(appName, version string) string {
	if version == "" {
		return appName
	}
	return appName + " " + normalizeVersion(version)
}

func appInfo(opts Options) string {
	if opts.AppName == "" {
		return opts.Help
	}
	info := opts.AppName
	if opts.Version != "" {
		info += " " + normalizeVersion(opts.Version)
	}
	if opts.Help != "" {
		info += " - " + opts.Help
	}
	return info
}

func binName(opts Options) string {
	if opts.AppName != "" {
		return opts.AppName
	}
	return filepath.Base(os.Args[0])
}

func normalizeVersion(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}

// entry is one row of a padded column section.
type entry struct {
	cmd  string
	help string
}

func optionEntries(reachable []rule.Rule) []entry {
	var entries []entry
	for _, r := range reachable {
		switch t := r.(type) {
		case *rule.Flag:
			entries = append(entries, entry{cmd: keywordList(t.Keywords()), help: t.HelpText()})
		case *rule.PrimaryOption:
			entries = append(entries, entry{cmd: keywordList(t.Keywords()), help: t.HelpText()})
		case *rule.Parameter:
			display := strings.ToUpper(rule.VarName(t.Keywords(), t.Name()))
			entries = append(entries, entry{cmd: keywordList(t.Keywords()) + " " + display, help: t.HelpText()})
		case *rule.Dictionary:
			entries = append(entries, entry{cmd: keywordList(t.Keywords()) + " KEY VALUE", help: t.HelpText()})
		}
	}
	return entries
}

// commandEntries walks the whole subcommand tree, prefixing each entry with
// its parent chain so nested commands read as full invocations.
func commandEntries(rules []rule.Rule, prefix string) []entry {
	var entries []entry
	for _, sub := range rule.Select[*rule.Subcommand](rules) {
		cmd := prefix + strings.Join(rule.SortKeywords(sub.Keywords()), "|")
		entries = append(entries, entry{cmd: cmd, help: sub.HelpText()})
		entries = append(entries, commandEntries(sub.Children(), cmd+" ")...)
	}
	return entries
}

func keywordList(keywords []string) string {
	return strings.Join(rule.SortKeywords(keywords), ", ")
}

func appendColumns(lines []string, entries []entry, width int) []string {
	padding := 0
	for _, e := range entries {
		padding = max(padding, len(e.cmd))
	}
	for _, e := range entries {
		if e.help == "" {
			lines = append(lines, "  "+e.cmd)
			continue
		}
		line := fmt.Sprintf("  %-*s - %s", padding, e.cmd, e.help)
		lines = append(lines, wrap(line, padding+5, width)...)
	}
	return lines
}

// wrap breaks an option line on word boundaries, indenting continuations to
// the description column. Lines fitting the width, and widths too narrow to
// be useful, pass through unchanged.
func wrap(line string, indent, width int) []string {
	if width <= 0 || len(line) <= width || indent+10 > width {
		return []string{line}
	}
	words := strings.Fields(line[indent:])
	lines := []string{line[:indent]}
	prefix := strings.Repeat(" ", indent)
	for _, word := range words {
		last := lines[len(lines)-1]
		if len(last) > indent && len(last)+1+len(word) > width {
			lines = append(lines, prefix+word)
			continue
		}
		if len(last) > indent {
			lines[len(lines)-1] = last + " " + word
		} else {
			lines[len(lines)-1] = last + word
		}
	}
	return lines
}
