package parse

import (
	"strings"

	"github.com/saylorsolutions/clix/rule"
	"github.com/saylorsolutions/clix/value"
)

// Resolver matches token lists against one rule tree. Construction validates
// the tree; the Resolver is read-only afterward, so a single instance can
// serve any number of passes, concurrent ones included.
type Resolver struct {
	rules []rule.Rule
}

// NewResolver builds a Resolver over the given root scope, reporting every
// construction error found in the tree.
func NewResolver(rules ...rule.Rule) (*Resolver, error) {
	if err := rule.Validate(rules...); err != nil {
		return nil, err
	}
	return &Resolver{rules: rules}, nil
}

// Rules returns the root scope the Resolver was built with.
func (r *Resolver) Rules() []rule.Rule {
	return r.rules
}

// Resolve runs a strict pass: every token must match the grammar, values must
// coerce, and required rules must be satisfied. Failures carry the offending
// token or rule so callers can build any message they want.
func (r *Resolver) Resolve(tokens []string) (*Context, error) {
	pass := newPass(r.rules, true)
	if err := pass.consume(newCursor(tokens)); err != nil {
		return nil, err
	}
	if err := pass.finalize(); err != nil {
		return nil, err
	}
	return pass.context(), nil
}

// ResolveDry runs a tolerant pass: unknown tokens are skipped and no rule is
// required. A value that fails to bind ends the walk early; the partial
// context is still valid introspection output, which is all help and
// completion need.
func (r *Resolver) ResolveDry(tokens []string) *Context {
	pass := newPass(r.rules, false)
	_ = pass.consume(newCursor(tokens))
	return pass.context()
}

// pass is the working state of one resolution: a scope stack of frames plus
// bookkeeping that lives no longer than the pass itself.
type pass struct {
	strict    bool
	frames    []*frame
	primaries []*rule.PrimaryOption
	choices   map[rule.Rule][]string
}

func newPass(rules []rule.Rule, strict bool) *pass {
	return &pass{
		strict:  strict,
		frames:  []*frame{newFrame(nil, rules)},
		choices: map[rule.Rule][]string{},
	}
}

func (p *pass) deepest() *frame {
	return p.frames[len(p.frames)-1]
}

func (p *pass) consume(tokens *cursor) error {
	for tokens.more() {
		token := tokens.pop()
		if p.enterSubcommand(token) {
			continue
		}
		if p.matchSwitch(token) {
			continue
		}
		if p.matchCombined(token) {
			continue
		}
		matched, err := p.matchParameter(token, tokens)
		if err != nil {
			return err
		}
		if matched {
			continue
		}
		matched, err = p.matchDictionary(token, tokens)
		if err != nil {
			return err
		}
		if matched {
			continue
		}
		matched, err = p.matchPositional(token)
		if err != nil {
			return err
		}
		if matched {
			continue
		}
		if p.captureRemaining(token, tokens) {
			return nil
		}
		if p.strict {
			return &UnknownTokenError{Token: token}
		}
	}
	return nil
}

// enterSubcommand pushes a new scope when the token names a subcommand of the
// deepest one. Outer scopes are deliberately not searched: once inside a
// subcommand, its siblings and ancestors are no longer commands.
func (p *pass) enterSubcommand(token string) bool {
	sub, ok := p.deepest().subs[token]
	if !ok {
		return false
	}
	p.frames = append(p.frames, newFrame(sub, sub.Children()))
	return true
}

// matchSwitch raises a flag or records a primary option. The keyword may
// carry an embedded "=value", which is ignored for switches. Scopes are
// searched innermost first, so inner declarations shadow outer ones.
func (p *pass) matchSwitch(token string) bool {
	key, _, _ := strings.Cut(token, "=")
	for i := len(p.frames) - 1; i >= 0; i-- {
		fr := p.frames[i]
		if flag, ok := fr.flags[key]; ok {
			fr.raiseFlag(flag)
			return true
		}
		if primary, ok := fr.primaryOpts[key]; ok {
			fr.setBound(rule.VarName(primary.Keywords(), ""), true)
			p.primaries = append(p.primaries, primary)
			return true
		}
	}
	return false
}

// matchCombined expands a run of single-character flags like "-vvf". Every
// character must name a flag declared in the same scope, otherwise the token
// is left for the remaining match steps.
func (p *pass) matchCombined(token string) bool {
	if !strings.HasPrefix(token, "-") || strings.HasPrefix(token, "--") || len(token) < 3 {
		return false
	}
	for i := len(p.frames) - 1; i >= 0; i-- {
		fr := p.frames[i]
		combined := make([]*rule.Flag, 0, len(token)-1)
		for _, short := range token[1:] {
			flag, ok := fr.flags["-"+string(short)]
			if !ok {
				combined = nil
				break
			}
			combined = append(combined, flag)
		}
		if combined == nil {
			continue
		}
		for _, flag := range combined {
			fr.raiseFlag(flag)
		}
		return true
	}
	return false
}

func (p *pass) matchParameter(token string, tokens *cursor) (bool, error) {
	key, embedded, hasEmbedded := strings.Cut(token, "=")
	for i := len(p.frames) - 1; i >= 0; i-- {
		fr := p.frames[i]
		param, ok := fr.params[key]
		if !ok {
			continue
		}
		raw := embedded
		if !hasEmbedded {
			if !tokens.more() {
				return false, &MissingValueError{Keyword: key}
			}
			raw = tokens.pop()
		}
		name := rule.VarName(param.Keywords(), param.Name())
		if err := p.checkChoices(param, param.ChoiceSource(), name, raw); err != nil {
			return false, err
		}
		val, err := value.Coerce(name, param.Converter(), raw)
		if err != nil {
			return false, err
		}
		if param.IsMultiple() {
			accumulated, _ := fr.values[name].([]any)
			fr.setBound(name, append(accumulated, val))
		} else {
			// Repeats overwrite: the last occurrence wins, so an alias
			// like "cmd -p 1" can be overridden with "alias -p 2".
			fr.setBound(name, val)
		}
		return true, nil
	}
	return false, nil
}

func (p *pass) matchDictionary(token string, tokens *cursor) (bool, error) {
	for i := len(p.frames) - 1; i >= 0; i-- {
		fr := p.frames[i]
		dict, ok := fr.dicts[token]
		if !ok {
			continue
		}
		name := rule.VarName(dict.Keywords(), dict.Name())
		if !tokens.more() {
			return false, &MissingValueError{Keyword: token}
		}
		rawKey := tokens.pop()
		if !tokens.more() {
			return false, &MissingValueError{Keyword: token}
		}
		rawVal := tokens.pop()
		entryKey, err := value.Coerce(name, dict.KeyConverter(), rawKey)
		if err != nil {
			return false, err
		}
		entryVal, err := value.Coerce(name, dict.ValueConverter(), rawVal)
		if err != nil {
			return false, err
		}
		entries, _ := fr.values[name].(map[any]any)
		entries[entryKey] = entryVal
		fr.bound[name] = true
		return true, nil
	}
	return false, nil
}

// matchPositional fills the deepest scope's next open positional slot.
// Positional slots belong to the scope that declared them; outer slots are
// not fallback targets once a subcommand was entered.
func (p *pass) matchPositional(token string) (bool, error) {
	fr := p.deepest()
	if fr.posIdx >= len(fr.positional) {
		return false, nil
	}
	arg := fr.positional[fr.posIdx]
	name := rule.Name(arg.Name())
	if err := p.checkChoices(arg, arg.ChoiceSource(), name, token); err != nil {
		return false, err
	}
	val, err := value.Coerce(name, arg.Converter(), token)
	if err != nil {
		return false, err
	}
	fr.setBound(name, val)
	fr.posIdx++
	return true, nil
}

// captureRemaining sends the token and everything after it into the deepest
// scope's catch-all, verbatim and without reinterpretation, ending the walk.
func (p *pass) captureRemaining(token string, tokens *cursor) bool {
	fr := p.deepest()
	if fr.catchAll == nil {
		return false
	}
	captured := append([]string{token}, tokens.drain()...)
	name := rule.Name(fr.catchAll.Name())
	if sep, ok := fr.catchAll.Joiner(); ok {
		fr.setBound(name, strings.Join(captured, sep))
	} else {
		fr.setBound(name, captured)
	}
	return true
}

// checkChoices enforces a strict choice restriction against the raw token.
// Resolved choice lists are cached per pass, so a producer runs at most once
// no matter how often its rule binds.
func (p *pass) checkChoices(r rule.Rule, choices rule.ChoiceSource, name, raw string) error {
	if !choices.IsStrict() {
		return nil
	}
	allowed, ok := p.choices[r]
	if !ok {
		allowed = value.ResolveChoices(choices)
		p.choices[r] = allowed
	}
	return value.ValidateChoice(name, raw, allowed)
}

// finalize enforces required rules and applies declared defaults across every
// scope on the stack. Only strict passes run it.
func (p *pass) finalize() error {
	for i := len(p.frames) - 1; i >= 0; i-- {
		fr := p.frames[i]
		for _, r := range fr.rules {
			switch t := r.(type) {
			case *rule.Parameter:
				name := rule.VarName(t.Keywords(), t.Name())
				if fr.bound[name] {
					continue
				}
				if t.IsRequired() {
					return &MissingRequiredError{Name: name, Keywords: rule.SortKeywords(t.Keywords())}
				}
				if t.IsMultiple() {
					// Stays an empty sequence, never a default.
					continue
				}
				if def, ok := t.DefaultValue(); ok {
					fr.values[name] = def
				}
			case *rule.Argument:
				name := rule.Name(t.Name())
				if fr.bound[name] {
					continue
				}
				if t.IsRequired() {
					return &MissingRequiredError{Name: name}
				}
				if def, ok := t.DefaultValue(); ok {
					fr.values[name] = def
				}
			}
		}
	}
	return nil
}

func (p *pass) context() *Context {
	return &Context{frames: p.frames, primaries: p.primaries}
}

// frame is one level of the scope stack: the rules declared there, keyword
// lookup tables over them, and the frame's own bindings and positional cursor.
type frame struct {
	sub        *rule.Subcommand
	rules      []rule.Rule
	positional []*rule.Argument
	catchAll   *rule.AllArguments
	posIdx     int

	subs        map[string]*rule.Subcommand
	flags       map[string]*rule.Flag
	primaryOpts map[string]*rule.PrimaryOption
	params      map[string]*rule.Parameter
	dicts       map[string]*rule.Dictionary

	values  map[string]any
	aliases map[string]string
	bound   map[string]bool
}

func newFrame(sub *rule.Subcommand, rules []rule.Rule) *frame {
	fr := &frame{
		sub:         sub,
		rules:       rules,
		subs:        map[string]*rule.Subcommand{},
		flags:       map[string]*rule.Flag{},
		primaryOpts: map[string]*rule.PrimaryOption{},
		params:      map[string]*rule.Parameter{},
		dicts:       map[string]*rule.Dictionary{},
		values:      map[string]any{},
		aliases:     map[string]string{},
		bound:       map[string]bool{},
	}
	for _, r := range rules {
		switch t := r.(type) {
		case *rule.Subcommand:
			for _, keyword := range t.Keywords() {
				fr.subs[keyword] = t
			}
		case *rule.Flag:
			name := fr.index(t.Keywords(), "")
			for _, keyword := range t.Keywords() {
				fr.flags[keyword] = t
			}
			if t.IsCounted() {
				fr.values[name] = 0
			} else {
				fr.values[name] = false
			}
		case *rule.PrimaryOption:
			name := fr.index(t.Keywords(), "")
			for _, keyword := range t.Keywords() {
				fr.primaryOpts[keyword] = t
			}
			fr.values[name] = false
		case *rule.Parameter:
			name := fr.index(t.Keywords(), t.Name())
			for _, keyword := range t.Keywords() {
				fr.params[keyword] = t
			}
			if t.IsMultiple() {
				fr.values[name] = []any{}
			}
		case *rule.Dictionary:
			name := fr.index(t.Keywords(), t.Name())
			for _, keyword := range t.Keywords() {
				fr.dicts[keyword] = t
			}
			fr.values[name] = map[any]any{}
		case *rule.Argument:
			fr.indexName(t.Name())
			fr.positional = append(fr.positional, t)
		case *rule.AllArguments:
			name := fr.indexName(t.Name())
			if fr.catchAll == nil {
				fr.catchAll = t
			}
			if _, joined := t.Joiner(); joined {
				fr.values[name] = ""
			} else {
				fr.values[name] = []string{}
			}
		}
	}
	return fr
}

// index registers every alias of a keyword-bearing rule, returning the
// canonical binding name.
func (f *frame) index(keywords []string, explicit string) string {
	canonical := rule.VarName(keywords, explicit)
	for _, alias := range rule.Names(keywords) {
		f.aliases[alias] = canonical
	}
	f.aliases[canonical] = canonical
	return canonical
}

func (f *frame) indexName(name string) string {
	canonical := rule.Name(name)
	f.aliases[canonical] = canonical
	return canonical
}

func (f *frame) raiseFlag(flag *rule.Flag) {
	name := rule.VarName(flag.Keywords(), "")
	if flag.IsCounted() {
		count, _ := f.values[name].(int)
		f.setBound(name, count+1)
		return
	}
	f.setBound(name, true)
}

func (f *frame) setBound(name string, val any) {
	f.values[name] = val
	f.bound[name] = true
}

// lookup resolves an alias within this frame alone. Seeded zero values count
// as present, so an unraised flag reads as false rather than missing.
func (f *frame) lookup(name string) (any, bool, bool) {
	canonical, known := f.aliases[name]
	if !known {
		return nil, false, false
	}
	val, present := f.values[canonical]
	return val, present, true
}

func (f *frame) reachableInto(rules []rule.Rule) []rule.Rule {
	return append(rules, f.rules...)
}
