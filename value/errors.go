package value

import (
	"fmt"
	"strings"
)

// ConversionError reports a raw token that a rule's converter rejected.
type ConversionError struct {
	Name string // variable name of the rule being bound
	Raw  string
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("invalid value %q for %q: %v", e.Raw, e.Name, e.Err)
}

func (e *ConversionError) Is(err error) bool {
	_, ok := err.(*ConversionError)
	return ok
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// ChoiceViolationError reports a raw token outside a rule's allowed choices.
type ChoiceViolationError struct {
	Name    string
	Raw     string
	Allowed []string
}

func (e *ChoiceViolationError) Error() string {
	return fmt.Sprintf("value %q for %q is not one of the allowed choices: %s",
		e.Raw, e.Name, strings.Join(e.Allowed, ", "))
}

func (e *ChoiceViolationError) Is(err error) bool {
	_, ok := err.(*ChoiceViolationError)
	return ok
}
