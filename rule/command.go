package rule

// Subcommand opens a nested scope of rules, activated when one of its
// keywords is given. Subcommands nest to any depth, forming the command tree.
type Subcommand struct {
	keywords []string
	help     string
	children []Rule
	action   Action
}

func (*Subcommand) rule() {}

// NewSubcommand declares a subcommand matched by any of the given keywords.
// Subcommand keywords are matched verbatim, so they're usually bare words
// like "push" or "remote".
func NewSubcommand(keywords ...string) *Subcommand {
	return &Subcommand{keywords: keywords}
}

// Help sets the description shown in usage listings.
func (s *Subcommand) Help(text string) *Subcommand {
	s.help = text
	return s
}

// Has appends child rules to this subcommand's scope.
func (s *Subcommand) Has(children ...Rule) *Subcommand {
	s.children = append(s.children, children...)
	return s
}

// Runs sets the action selected when this subcommand is the deepest one
// matched by a pass.
func (s *Subcommand) Runs(action Action) *Subcommand {
	s.action = action
	return s
}

// Keywords returns the declared keyword aliases.
func (s *Subcommand) Keywords() []string { return s.keywords }

// HelpText returns the description set with [Subcommand.Help].
func (s *Subcommand) HelpText() string { return s.help }

// Children returns the rules of this subcommand's scope.
func (s *Subcommand) Children() []Rule { return s.children }

// Action returns the action set with [Subcommand.Runs], or nil.
func (s *Subcommand) Action() Action { return s.action }

// ShortName returns the keyword this subcommand is listed under in a scope
// path: the shortest one, alphabetically first on ties.
func (s *Subcommand) ShortName() string {
	sorted := SortKeywords(s.keywords)
	if len(sorted) == 0 {
		return ""
	}
	return sorted[0]
}

// PrimaryOption is a flag-like marker that short-circuits normal dispatch,
// like "--help" or "--version". Matching one is recorded in the resolution
// context so a dispatcher can intercept it before strict validation would
// reject the rest of the input.
type PrimaryOption struct {
	keywords []string
	help     string
	action   Action
}

func (*PrimaryOption) rule() {}

// NewPrimaryOption declares a primary option matched by any of the given
// keywords. Bare keywords gain their dash prefix automatically.
func NewPrimaryOption(keywords ...string) *PrimaryOption {
	return &PrimaryOption{keywords: normalizeKeywords(keywords)}
}

// Help sets the description shown in usage listings.
func (p *PrimaryOption) Help(text string) *PrimaryOption {
	p.help = text
	return p
}

// Runs sets the action a dispatcher invokes when this option intercepts.
func (p *PrimaryOption) Runs(action Action) *PrimaryOption {
	p.action = action
	return p
}

// Keywords returns the declared keyword aliases.
func (p *PrimaryOption) Keywords() []string { return p.keywords }

// HelpText returns the description set with [PrimaryOption.Help].
func (p *PrimaryOption) HelpText() string { return p.help }

// Action returns the action set with [PrimaryOption.Runs], or nil.
func (p *PrimaryOption) Action() Action { return p.action }

// DefaultAction provides the fallback action of a scope, selected when the
// deepest matched subcommand declares none of its own.
type DefaultAction struct {
	action Action
}

func (*DefaultAction) rule() {}

// NewDefaultAction declares a scope's fallback action.
func NewDefaultAction(action Action) *DefaultAction {
	return &DefaultAction{action: action}
}

// Action returns the fallback action.
func (d *DefaultAction) Action() Action { return d.action }
