package rule

// Flag is a boolean presence switch. Its binding is false until one of its
// keywords is given, or an occurrence count when [Flag.Counted] is set.
type Flag struct {
	keywords []string
	help     string
	counted  bool
}

func (*Flag) rule() {}

// NewFlag declares a flag matched by any of the given keywords.
// Bare keywords gain their dash prefix automatically: "f" becomes "-f" and
// "force" becomes "--force".
func NewFlag(keywords ...string) *Flag {
	return &Flag{keywords: normalizeKeywords(keywords)}
}

// Help sets the description shown in usage listings.
func (f *Flag) Help(text string) *Flag {
	f.help = text
	return f
}

// Counted makes the flag bind the number of occurrences instead of a boolean,
// for usage like -vvv.
func (f *Flag) Counted() *Flag {
	f.counted = true
	return f
}

// Keywords returns the declared keyword aliases.
func (f *Flag) Keywords() []string { return f.keywords }

// HelpText returns the description set with [Flag.Help].
func (f *Flag) HelpText() string { return f.help }

// IsCounted reports whether the flag counts occurrences.
func (f *Flag) IsCounted() bool { return f.counted }

// Parameter is a value-bearing named option, given either as two tokens
// ("--param value") or one ("--param=value").
type Parameter struct {
	keywords   []string
	name       string
	help       string
	convert    Converter
	choices    ChoiceSource
	defaultVal any
	hasDefault bool
	required   bool
	multiple   bool
}

func (*Parameter) rule() {}

// NewParameter declares a parameter matched by any of the given keywords.
// Bare keywords gain their dash prefix automatically.
func NewParameter(keywords ...string) *Parameter {
	return &Parameter{keywords: normalizeKeywords(keywords)}
}

// Help sets the description shown in usage listings.
func (p *Parameter) Help(text string) *Parameter {
	p.help = text
	return p
}

// Named overrides the variable name that is otherwise derived from the
// longest keyword.
func (p *Parameter) Named(name string) *Parameter {
	p.name = name
	return p
}

// Typed sets the converter applied to raw values. The value package provides
// converters for common types; nil binds the raw string.
func (p *Parameter) Typed(convert Converter) *Parameter {
	p.convert = convert
	return p
}

// Default sets the value bound when the parameter isn't given.
// Ignored for [Parameter.Multiple] parameters, which always start empty.
func (p *Parameter) Default(val any) *Parameter {
	p.defaultVal = val
	p.hasDefault = true
	return p
}

// Required makes a strict resolution pass fail when the parameter is never
// given.
func (p *Parameter) Required() *Parameter {
	p.required = true
	return p
}

// Multiple accumulates every occurrence in encounter order instead of keeping
// only the last one. The binding is then a sequence, empty when never given.
func (p *Parameter) Multiple() *Parameter {
	p.multiple = true
	return p
}

// Choices restricts the advertised values to a fixed list.
func (p *Parameter) Choices(values ...string) *Parameter {
	strict := p.choices.strict
	p.choices = StaticChoices(values...)
	p.choices.strict = strict
	return p
}

// ChoicesFunc restricts the advertised values to the result of a producer,
// invoked lazily at most once per resolution pass.
func (p *Parameter) ChoicesFunc(produce func() []string) *Parameter {
	strict := p.choices.strict
	p.choices = DynamicChoices(produce)
	p.choices.strict = strict
	return p
}

// StrictChoices makes values outside the choice set a hard failure instead of
// a suggestion.
func (p *Parameter) StrictChoices() *Parameter {
	p.choices.strict = true
	return p
}

// Keywords returns the declared keyword aliases.
func (p *Parameter) Keywords() []string { return p.keywords }

// Name returns the explicit variable name, or "" when derived from keywords.
func (p *Parameter) Name() string { return p.name }

// HelpText returns the description set with [Parameter.Help].
func (p *Parameter) HelpText() string { return p.help }

// Converter returns the converter set with [Parameter.Typed], or nil.
func (p *Parameter) Converter() Converter { return p.convert }

// DefaultValue returns the declared default and whether one was set.
func (p *Parameter) DefaultValue() (any, bool) { return p.defaultVal, p.hasDefault }

// IsRequired reports whether the parameter must be given.
func (p *Parameter) IsRequired() bool { return p.required }

// IsMultiple reports whether occurrences accumulate.
func (p *Parameter) IsMultiple() bool { return p.multiple }

// ChoiceSource returns the declared choice restriction, zero when unset.
func (p *Parameter) ChoiceSource() ChoiceSource { return p.choices }

// Dictionary collects repeated key-value pairs, consuming the two tokens
// after its keyword: "--conf key value --conf other 2" binds a map with two
// entries.
type Dictionary struct {
	keywords     []string
	name         string
	help         string
	keyConvert   Converter
	valueConvert Converter
}

func (*Dictionary) rule() {}

// NewDictionary declares a dictionary option matched by any of the given
// keywords. Bare keywords gain their dash prefix automatically.
func NewDictionary(keywords ...string) *Dictionary {
	return &Dictionary{keywords: normalizeKeywords(keywords)}
}

// Help sets the description shown in usage listings.
func (d *Dictionary) Help(text string) *Dictionary {
	d.help = text
	return d
}

// Named overrides the variable name that is otherwise derived from the
// longest keyword.
func (d *Dictionary) Named(name string) *Dictionary {
	d.name = name
	return d
}

// KeyTyped sets the converter applied to entry keys. Converted keys must be
// comparable, or storing the entry will panic.
func (d *Dictionary) KeyTyped(convert Converter) *Dictionary {
	d.keyConvert = convert
	return d
}

// ValueTyped sets the converter applied to entry values.
func (d *Dictionary) ValueTyped(convert Converter) *Dictionary {
	d.valueConvert = convert
	return d
}

// Keywords returns the declared keyword aliases.
func (d *Dictionary) Keywords() []string { return d.keywords }

// Name returns the explicit variable name, or "" when derived from keywords.
func (d *Dictionary) Name() string { return d.name }

// HelpText returns the description set with [Dictionary.Help].
func (d *Dictionary) HelpText() string { return d.help }

// KeyConverter returns the key converter, or nil.
func (d *Dictionary) KeyConverter() Converter { return d.keyConvert }

// ValueConverter returns the value converter, or nil.
func (d *Dictionary) ValueConverter() Converter { return d.valueConvert }
