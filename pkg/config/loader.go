// Package config handles loading sarlac's substitution rules from a
// configuration file. The document carries a top-level `substitutions`
// list of match/replace pairs; list order is rule priority. YAML is the
// primary format, with TOML accepted for files ending in .toml.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/netserf/sarlac/pkg/errors"
	"github.com/netserf/sarlac/pkg/logging"
	"github.com/netserf/sarlac/pkg/rules"
)

// fileConfig mirrors the on-disk document shape. Entry fields are pointers
// so a missing key is distinguishable from an explicit empty string.
type fileConfig struct {
	Substitutions []substitutionEntry `yaml:"substitutions" toml:"substitutions"`
}

type substitutionEntry struct {
	Match   *string `yaml:"match" toml:"match"`
	Replace *string `yaml:"replace" toml:"replace"`
}

// Load reads and parses the configuration file at path into a RuleSet,
// preserving document order as rule priority. Patterns are compiled
// eagerly, so every rule in the returned set is ready to evaluate.
//
// Failures are fatal to the whole load; no partial RuleSet is returned:
//   - ErrConfigNotFound: the file is missing or unreadable
//   - ErrConfigParse: invalid document syntax, missing `substitutions`
//     key, or an entry without both match and replace
//   - ErrPatternInvalid: an entry's pattern does not compile
//
// An explicitly empty `substitutions` list is not an error: it loads as an
// empty RuleSet that simply never matches.
func Load(path string) (rules.RuleSet, error) {
	logger := logging.GetLogger("config")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigNotFound,
			"cannot read config file %q", path)
	}

	var cfg fileConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse,
			"cannot parse config file %q", path)
	}

	if cfg.Substitutions == nil {
		return nil, errors.New(errors.ErrConfigParse,
			"config file has no substitutions key").WithDetail("path", path)
	}

	ruleSet := make(rules.RuleSet, 0, len(cfg.Substitutions))
	for i, entry := range cfg.Substitutions {
		if entry.Match == nil || entry.Replace == nil {
			return nil, errors.Newf(errors.ErrConfigParse,
				"substitution %d in %q needs both match and replace", i, path).
				WithDetail("index", i)
		}

		rule, err := rules.Compile(*entry.Match, *entry.Replace)
		if err != nil {
			return nil, err
		}
		ruleSet = append(ruleSet, rule)
	}

	logger.Debug().
		Str("path", path).
		Int("ruleCount", len(ruleSet)).
		Msg("Loaded substitution rules")

	return ruleSet, nil
}
