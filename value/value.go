// Package value coerces raw tokens into typed values and enforces choice
// restrictions. It provides the converters a grammar names with Typed, plus
// the operations the resolver applies to every bound value.
package value

import (
	"slices"

	"github.com/saylorsolutions/clix/rule"
)

// Coerce applies a rule's converter to one raw token. A nil converter is the
// identity: the raw string is returned unchanged. Converter failures are
// reported as a [ConversionError] naming the variable being bound.
func Coerce(name string, convert rule.Converter, raw string) (any, error) {
	if convert == nil {
		return raw, nil
	}
	val, err := convert(raw)
	if err != nil {
		return nil, &ConversionError{Name: name, Raw: raw, Err: err}
	}
	return val, nil
}

// ResolveChoices materializes a [rule.ChoiceSource]: a static list is
// returned verbatim, a producer is invoked. Unset sources yield nil.
// Callers cache the result for the duration of one resolution pass so
// producers run at most once per pass.
func ResolveChoices(choices rule.ChoiceSource) []string {
	if static, ok := choices.Static(); ok {
		return static
	}
	if produce, ok := choices.Producer(); ok {
		return produce()
	}
	return nil
}

// ValidateChoice checks a raw token against resolved choices. Comparison
// happens before any coercion, so it stays on plain strings regardless of
// what the converter produces. An empty choice list imposes no restriction.
func ValidateChoice(name, raw string, allowed []string) error {
	if len(allowed) == 0 {
		return nil
	}
	if slices.Contains(allowed, raw) {
		return nil
	}
	return &ChoiceViolationError{Name: name, Raw: raw, Allowed: allowed}
}
