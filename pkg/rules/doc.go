// Package rules provides sarlac's substitution rule system: compiled
// match/replace pairs evaluated against input strings.
//
// # Rule Semantics
//
// A Rule pairs a compiled regular expression with a replacement template.
// Rules live in an ordered RuleSet; order is priority. Evaluation is
// first-match-wins: the first rule whose pattern matches at the start of
// the input is applied, and no later rule is consulted.
//
// Matching is start-anchored but not full-string: the pattern only has to
// match a prefix of the input to select the rule. Once a rule is selected,
// its substitution is applied to every occurrence of the pattern in the
// input, not just the leading one.
//
// Replacement templates use the regexp package's expansion syntax, so $1
// or ${name} reference capture groups:
//
//	rules.Compile(`(\w+)@example\.com`, `${1}@redacted.com`)
//
// # Construction
//
// Patterns are compiled eagerly: a syntactically invalid pattern fails at
// Compile time with a PATTERN_INVALID error, never later during Apply.
package rules
