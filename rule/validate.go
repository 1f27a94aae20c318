package rule

import (
	"errors"
	"fmt"
)

var ErrInvalidRule = errors.New("invalid rule")

// DuplicateKeywordError reports a keyword declared by more than one sibling
// rule in the same scope.
type DuplicateKeywordError struct {
	Keyword string
}

func (e *DuplicateKeywordError) Error() string {
	return fmt.Sprintf("duplicate keyword %q among sibling rules", e.Keyword)
}

func (e *DuplicateKeywordError) Is(err error) bool {
	_, ok := err.(*DuplicateKeywordError)
	return ok
}

// Validate checks a rule tree for construction errors: empty keyword sets,
// missing names, and duplicate keywords among siblings. Keywords only need to
// be unique within their own scope, so nested subcommands may reuse them.
// Every violation found is reported in one error.
func Validate(rules ...Rule) error {
	c := &collector{}
	validateScope(rules, c)
	return c.result()
}

func validateScope(rules []Rule, c *collector) {
	seen := map[string]struct{}{}
	claim := func(keywords []string) {
		for _, keyword := range keywords {
			if _, ok := seen[keyword]; ok {
				c.add(&DuplicateKeywordError{Keyword: keyword})
				continue
			}
			seen[keyword] = struct{}{}
		}
	}
	for _, r := range rules {
		switch t := r.(type) {
		case *Subcommand:
			if len(t.keywords) == 0 {
				c.addf("%w: subcommand has no keywords", ErrInvalidRule)
			}
			claim(t.keywords)
			validateScope(t.children, c)
		case *PrimaryOption:
			if len(t.keywords) == 0 {
				c.addf("%w: primary option has no keywords", ErrInvalidRule)
			}
			claim(t.keywords)
		case *Flag:
			if len(t.keywords) == 0 {
				c.addf("%w: flag has no keywords", ErrInvalidRule)
			}
			claim(t.keywords)
		case *Parameter:
			if len(t.keywords) == 0 {
				c.addf("%w: parameter has no keywords", ErrInvalidRule)
			}
			claim(t.keywords)
		case *Dictionary:
			if len(t.keywords) == 0 {
				c.addf("%w: dictionary has no keywords", ErrInvalidRule)
			}
			claim(t.keywords)
		case *Argument:
			if t.name == "" {
				c.addf("%w: positional argument has no name", ErrInvalidRule)
			}
		case *AllArguments:
			if t.name == "" {
				c.addf("%w: remaining-arguments rule has no name", ErrInvalidRule)
			}
		}
	}
}

// collector gathers violations so one Validate call reports them all.
type collector struct {
	errs []error
}

func (c *collector) add(err error) {
	if err != nil {
		c.errs = append(c.errs, err)
	}
}

func (c *collector) addf(format string, args ...any) {
	c.add(fmt.Errorf(format, args...))
}

func (c *collector) result() error {
	return errors.Join(c.errs...)
}
