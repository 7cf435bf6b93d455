// Package core wires sarlac's pieces together for one invocation: picking
// the rule source, loading the RuleSet, and driving it over the inputs.
package core

import (
	"github.com/netserf/sarlac/pkg/config"
	"github.com/netserf/sarlac/pkg/logging"
	"github.com/netserf/sarlac/pkg/rules"
)

// Source yields the RuleSet for one invocation. Exactly one variant is
// selected per run: ad-hoc flags or a configuration file.
type Source interface {
	// Rules builds the rule set, compiling every pattern eagerly
	Rules() (rules.RuleSet, error)
}

// AdHocSource builds a single-rule set straight from command-line values
type AdHocSource struct {
	Match   string
	Replace string
}

// Rules implements Source
func (s AdHocSource) Rules() (rules.RuleSet, error) {
	return rules.NewAdHoc(s.Match, s.Replace)
}

// FileSource loads the rule set from a configuration file
type FileSource struct {
	Path string
}

// Rules implements Source
func (s FileSource) Rules() (rules.RuleSet, error) {
	return config.Load(s.Path)
}

// SelectSource decides where this invocation's rules come from. The ad-hoc
// path is taken only when BOTH the match pattern and the replacement are
// supplied; a single flag on its own is treated as no ad-hoc rule and
// falls through to the configuration file at configPath.
func SelectSource(match, replace, configPath string) Source {
	logger := logging.GetLogger("core.source")

	if match != "" && replace != "" {
		logger.Debug().Str("match", match).Msg("Using ad-hoc rule source")
		return AdHocSource{Match: match, Replace: replace}
	}

	logger.Debug().Str("path", configPath).Msg("Using config file rule source")
	return FileSource{Path: configPath}
}
