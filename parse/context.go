package parse

import (
	"github.com/saylorsolutions/clix/rule"
)

// Context is the outcome of one pass: the scope stack that was entered, every
// bound value, and the primary options seen along the way. It implements
// [rule.Args], so actions receive it directly.
type Context struct {
	frames    []*frame
	primaries []*rule.PrimaryOption
}

// Value reports the binding for name, searching scopes innermost first. The
// name may be any keyword alias of the rule, dashed or not. The search stops
// at the first scope that declares the alias, so an inner declaration shadows
// an outer one even when unbound.
func (c *Context) Value(name string) (any, bool) {
	name = rule.Name(name)
	for i := len(c.frames) - 1; i >= 0; i-- {
		val, bound, known := c.frames[i].lookup(name)
		if !known {
			continue
		}
		if !bound {
			return nil, false
		}
		return val, true
	}
	return nil, false
}

// Commands returns the subcommands entered during the pass, outermost first.
func (c *Context) Commands() []*rule.Subcommand {
	var subs []*rule.Subcommand
	for _, fr := range c.frames {
		if fr.sub != nil {
			subs = append(subs, fr.sub)
		}
	}
	return subs
}

// Path returns the short name of each entered subcommand, outermost first.
// An empty path means the pass never left the root scope.
func (c *Context) Path() []string {
	var path []string
	for _, sub := range c.Commands() {
		path = append(path, sub.ShortName())
	}
	return path
}

// Scope returns the rules of the deepest scope the pass reached.
func (c *Context) Scope() []rule.Rule {
	return c.frames[len(c.frames)-1].rules
}

// Reachable returns every rule visible from the deepest scope, innermost
// scope first.
func (c *Context) Reachable() []rule.Rule {
	var rules []rule.Rule
	for i := len(c.frames) - 1; i >= 0; i-- {
		rules = c.frames[i].reachableInto(rules)
	}
	return rules
}

// Primaries returns the primary options seen during the pass, in token order.
func (c *Context) Primaries() []*rule.PrimaryOption {
	return c.primaries
}

// Primary returns the first primary option seen, or nil when there was none.
func (c *Context) Primary() *rule.PrimaryOption {
	if len(c.primaries) == 0 {
		return nil
	}
	return c.primaries[0]
}

// Action returns the action to run for the resolved command path. The deepest
// entered subcommand's action wins; a scope without one falls back to its
// default action rule, then to enclosing scopes. Returns nil when nothing is
// runnable.
func (c *Context) Action() rule.Action {
	for i := len(c.frames) - 1; i >= 0; i-- {
		fr := c.frames[i]
		if fr.sub != nil {
			if action := fr.sub.Action(); action != nil {
				return action
			}
		}
		for _, def := range rule.Select[*rule.DefaultAction](fr.rules) {
			if action := def.Action(); action != nil {
				return action
			}
		}
	}
	return nil
}
