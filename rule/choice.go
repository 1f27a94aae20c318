package rule

// ChoiceSource supplies the allowed values of a parameter or positional
// argument. The zero value imposes no restriction.
//
// A dynamic source is invoked lazily during resolution, at most once per pass,
// so it may do real work like listing files or querying a service. Callers
// needing a timeout around a slow producer must wrap it themselves.
type ChoiceSource struct {
	static  []string
	produce func() []string
	strict  bool
}

// StaticChoices builds a ChoiceSource from a fixed list, used verbatim.
func StaticChoices(values ...string) ChoiceSource {
	return ChoiceSource{static: values}
}

// DynamicChoices builds a ChoiceSource from a zero-argument producer.
func DynamicChoices(produce func() []string) ChoiceSource {
	return ChoiceSource{produce: produce}
}

// IsSet reports whether any choice restriction was declared.
func (c ChoiceSource) IsSet() bool {
	return c.static != nil || c.produce != nil
}

// IsStrict reports whether values outside the choice set are rejected.
func (c ChoiceSource) IsStrict() bool {
	return c.strict
}

// Static returns the fixed choice list, if this source was built from one.
func (c ChoiceSource) Static() ([]string, bool) {
	return c.static, c.static != nil
}

// Producer returns the choice producer, if this source was built from one.
func (c ChoiceSource) Producer() (func() []string, bool) {
	return c.produce, c.produce != nil
}
