package rules

import (
	"regexp"

	"github.com/netserf/sarlac/pkg/errors"
)

// Rule is a single compiled substitution rule: a match pattern and the
// replacement template applied when it wins
type Rule struct {
	// Match is the compiled pattern. Whether a rule fires is decided by a
	// start-anchored test against the input.
	Match *regexp.Regexp

	// Replace is the replacement template, using $1 / ${name} group
	// references
	Replace string
}

// Compile builds a Rule from a pattern string and a replacement template.
// Compilation is eager: an invalid pattern fails here with
// ErrPatternInvalid rather than at evaluation time.
func Compile(match, replace string) (Rule, error) {
	re, err := regexp.Compile(match)
	if err != nil {
		return Rule{}, errors.Wrapf(err, errors.ErrPatternInvalid,
			"invalid match pattern %q", match)
	}
	return Rule{Match: re, Replace: replace}, nil
}

// matchesStart reports whether the rule's pattern matches anchored at the
// first character of input. A prefix match suffices; the pattern does not
// have to consume the whole string.
func (r Rule) matchesStart(input string) bool {
	loc := r.Match.FindStringIndex(input)
	return loc != nil && loc[0] == 0
}
