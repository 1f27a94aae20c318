package rule

// Rule is a single element of a command grammar: a nested command scope, an
// option, or a positional matcher.
type Rule interface {
	rule()
}

// Args provides access to the values bound during a resolution pass, keyed by
// variable name. Any keyword alias of a rule reaches the same binding, so
// Value("p") and Value("param") are equivalent for a parameter declared with
// "--param" and "-p".
type Args interface {
	Value(name string) (any, bool)
}

// Action is a function invoked when its rule is selected by a resolution pass.
type Action func(args Args) error

// Converter turns one raw token into a typed value.
// A nil Converter binds the raw string unchanged.
type Converter func(raw string) (any, error)

// Select returns the rules of concrete type T, preserving declaration order.
func Select[T Rule](rules []Rule) []T {
	var selected []T
	for _, r := range rules {
		if typed, ok := r.(T); ok {
			selected = append(selected, typed)
		}
	}
	return selected
}
