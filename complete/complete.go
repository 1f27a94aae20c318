// Package complete turns a partially typed command line into completion
// proposals. The application is its own completion engine: the installed bash
// hook calls back into the binary with COMP_LINE, and the proposals come from
// the same rule tree that drives resolution.
package complete

import (
	"regexp"
	"slices"
	"strings"

	"github.com/google/shlex"
	"github.com/saylorsolutions/clix/parse"
	"github.com/saylorsolutions/clix/rule"
	"github.com/saylorsolutions/clix/value"
)

// A "-key=value" proposal must collapse to the value alone, because bash
// treats "=" as a word break and would otherwise repeat the keyword.
var embeddedValue = regexp.MustCompile(`^-(.+)=(.+)$`)

// Propose returns completion candidates for line, the raw COMP_LINE content.
// The line is resolved tolerantly to find the scope under the cursor, then
// candidates are gathered from everything reachable and filtered by the word
// being typed.
func Propose(rules []rule.Rule, line string) []string {
	args := extractArgs(line)
	var current string
	if len(args) > 0 {
		current = args[len(args)-1]
	}
	var proposals []string
	for _, candidate := range availableCompletions(rules, args, current) {
		if strings.HasPrefix(candidate, current) {
			proposals = append(proposals, embeddedValue.ReplaceAllString(candidate, "$2"))
		}
	}
	return proposals
}

// extractArgs splits the command line the way bash sees it and drops the
// program name. A trailing whitespace means a fresh word is being started.
func extractArgs(line string) []string {
	line = stripQuotes(line)
	words, err := shlex.Split(line)
	if err != nil {
		words = strings.Fields(line)
	}
	var args []string
	if len(words) > 1 {
		args = words[1:]
	}
	if strings.HasSuffix(line, " ") || strings.HasSuffix(line, "\t") {
		args = append(args, "")
	}
	return args
}

func stripQuotes(line string) string {
	if strings.HasPrefix(line, `"`) && strings.HasSuffix(line, `"`) && len(line) >= 2 {
		return line[1 : len(line)-1]
	}
	return line
}

func availableCompletions(rules []rule.Rule, args []string, current string) []string {
	scoped := rule.Select[*rule.Subcommand](rules)
	reachable := rules
	if resolver, err := parse.NewResolver(rules...); err == nil {
		ctx := resolver.ResolveDry(args)
		reachable = ctx.Reachable()
		if entered := ctx.Commands(); len(entered) > 0 {
			deepest := entered[len(entered)-1]
			scoped = rule.Select[*rule.Subcommand](deepest.Children())
			// The word is already a complete command name, confirm it.
			if slices.Contains(deepest.Keywords(), current) {
				return []string{current}
			}
		}
	}
	params := rule.Select[*rule.Parameter](reachable)

	// "--param value" style: the keyword sits one word back.
	if len(args) > 1 {
		previous := args[len(args)-2]
		for _, param := range params {
			if slices.Contains(param.Keywords(), previous) {
				return value.ResolveChoices(param.ChoiceSource())
			}
		}
	}

	// "--param=value" style: the keyword is part of the current word.
	for _, param := range params {
		for _, keyword := range param.Keywords() {
			if strings.HasPrefix(current, keyword+"=") {
				var proposals []string
				for _, choice := range value.ResolveChoices(param.ChoiceSource()) {
					proposals = append(proposals, keyword+"="+choice)
				}
				return proposals
			}
		}
	}

	var completions []string
	for _, sub := range scoped {
		completions = append(completions, rule.SortKeywords(sub.Keywords())...)
	}
	for _, flag := range rule.Select[*rule.Flag](reachable) {
		completions = append(completions, rule.SortKeywords(flag.Keywords())...)
	}
	for _, param := range params {
		for _, keyword := range rule.SortKeywords(param.Keywords()) {
			completions = append(completions, keyword, keyword+"=")
		}
	}
	for _, primary := range rule.Select[*rule.PrimaryOption](reachable) {
		completions = append(completions, rule.SortKeywords(primary.Keywords())...)
	}
	for _, arg := range rule.Select[*rule.Argument](reachable) {
		completions = append(completions, value.ResolveChoices(arg.ChoiceSource())...)
	}
	return completions
}
