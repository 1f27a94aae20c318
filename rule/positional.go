package rule

// Argument binds a value by position instead of by keyword. Arguments of a
// scope fill in declaration order as unmatched tokens arrive.
type Argument struct {
	name       string
	help       string
	convert    Converter
	choices    ChoiceSource
	defaultVal any
	hasDefault bool
	required   bool
}

func (*Argument) rule() {}

// NewArgument declares a positional argument bound under the given name.
func NewArgument(name string) *Argument {
	return &Argument{name: name}
}

// Help sets the description shown in usage listings.
func (a *Argument) Help(text string) *Argument {
	a.help = text
	return a
}

// Typed sets the converter applied to the raw token; nil binds the raw string.
func (a *Argument) Typed(convert Converter) *Argument {
	a.convert = convert
	return a
}

// Default sets the value bound when the argument isn't given.
func (a *Argument) Default(val any) *Argument {
	a.defaultVal = val
	a.hasDefault = true
	return a
}

// Required makes a strict resolution pass fail when the argument is never
// given.
func (a *Argument) Required() *Argument {
	a.required = true
	return a
}

// Choices restricts the advertised values to a fixed list.
func (a *Argument) Choices(values ...string) *Argument {
	strict := a.choices.strict
	a.choices = StaticChoices(values...)
	a.choices.strict = strict
	return a
}

// ChoicesFunc restricts the advertised values to the result of a producer,
// invoked lazily at most once per resolution pass.
func (a *Argument) ChoicesFunc(produce func() []string) *Argument {
	strict := a.choices.strict
	a.choices = DynamicChoices(produce)
	a.choices.strict = strict
	return a
}

// StrictChoices makes values outside the choice set a hard failure instead of
// a suggestion.
func (a *Argument) StrictChoices() *Argument {
	a.choices.strict = true
	return a
}

// Name returns the variable name the argument binds under.
func (a *Argument) Name() string { return a.name }

// HelpText returns the description set with [Argument.Help].
func (a *Argument) HelpText() string { return a.help }

// Converter returns the converter set with [Argument.Typed], or nil.
func (a *Argument) Converter() Converter { return a.convert }

// DefaultValue returns the declared default and whether one was set.
func (a *Argument) DefaultValue() (any, bool) { return a.defaultVal, a.hasDefault }

// IsRequired reports whether the argument must be given.
func (a *Argument) IsRequired() bool { return a.required }

// ChoiceSource returns the declared choice restriction, zero when unset.
func (a *Argument) ChoiceSource() ChoiceSource { return a.choices }

// AllArguments captures every remaining token verbatim once nothing else in
// the scope matches, ending the pass. Captured tokens are never reinterpreted,
// so declared-looking flags pass through untouched. The binding is a string
// slice in encounter order, empty when never reached.
type AllArguments struct {
	name   string
	help   string
	joiner string
	joined bool
}

func (*AllArguments) rule() {}

// NewAllArguments declares a catch-all bound under the given name.
func NewAllArguments(name string) *AllArguments {
	return &AllArguments{name: name}
}

// Help sets the description shown in usage listings.
func (a *AllArguments) Help(text string) *AllArguments {
	a.help = text
	return a
}

// JoinedWith binds the captured tokens as one string joined by sep instead of
// a slice.
func (a *AllArguments) JoinedWith(sep string) *AllArguments {
	a.joiner = sep
	a.joined = true
	return a
}

// Name returns the variable name the capture binds under.
func (a *AllArguments) Name() string { return a.name }

// HelpText returns the description set with [AllArguments.Help].
func (a *AllArguments) HelpText() string { return a.help }

// Joiner returns the separator set with [AllArguments.JoinedWith] and whether
// one was set.
func (a *AllArguments) Joiner() (string, bool) { return a.joiner, a.joined }
