package parse

import (
	"fmt"
	"strings"
)

// UnknownTokenError reports a token that matched nothing in any reachable
// scope during a strict pass.
type UnknownTokenError struct {
	Token string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("unrecognized token %q", e.Token)
}

func (e *UnknownTokenError) Is(err error) bool {
	_, ok := err.(*UnknownTokenError)
	return ok
}

// MissingValueError reports a keyword that requires one or more value tokens
// arriving at the end of input without them.
type MissingValueError struct {
	Keyword string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("keyword %q requires a value", e.Keyword)
}

func (e *MissingValueError) Is(err error) bool {
	_, ok := err.(*MissingValueError)
	return ok
}

// MissingRequiredError reports a required parameter or positional argument
// that was never bound during a strict pass. Keywords is empty for positional
// arguments.
type MissingRequiredError struct {
	Name     string
	Keywords []string
}

func (e *MissingRequiredError) Error() string {
	if len(e.Keywords) > 0 {
		return fmt.Sprintf("required parameter %s is not given", strings.Join(e.Keywords, ", "))
	}
	return fmt.Sprintf("required argument %q is not given", e.Name)
}

func (e *MissingRequiredError) Is(err error) bool {
	_, ok := err.(*MissingRequiredError)
	return ok
}
