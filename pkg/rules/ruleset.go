package rules

// RuleSet is an ordered sequence of rules. Order is significant: Apply
// evaluates rules front to back and the first match wins. A RuleSet is
// immutable after construction and safe to reuse across inputs.
type RuleSet []Rule

// NewAdHoc builds a single-rule RuleSet from a caller-supplied match
// pattern and replacement template, bypassing configuration files. The
// decision of whether the ad-hoc path applies at all (both values must be
// present) belongs to the caller; NewAdHoc always produces exactly one
// rule.
func NewAdHoc(match, replace string) (RuleSet, error) {
	rule, err := Compile(match, replace)
	if err != nil {
		return nil, err
	}
	return RuleSet{rule}, nil
}

// Apply evaluates the rule set against input. The first rule whose pattern
// matches at the start of input is applied across all occurrences of the
// pattern, and the substituted string is returned with ok=true.
//
// When no rule matches, ok is false and the result is the empty string.
// Callers must distinguish this from a successful substitution that
// happens to produce "": only ok carries the no-match signal. An empty
// RuleSet never matches anything.
func (rs RuleSet) Apply(input string) (result string, ok bool) {
	for _, rule := range rs {
		if rule.matchesStart(input) {
			return rule.Match.ReplaceAllString(input, rule.Replace), true
		}
	}
	return "", false
}
