// pkg/config/loader_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Filesystem (t.TempDir)
// PURPOSE: Test config file loading, parse failures, and rule ordering

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/netserf/sarlac/pkg/config"
	"github.com/netserf/sarlac/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid_yaml", func(t *testing.T) {
		path := writeConfig(t, "sarlac.yaml", `
substitutions:
  - match: "foo"
    replace: "bar"
  - match: "(\\w+)@example\\.com"
    replace: "${1}@redacted.com"
`)

		ruleSet, err := config.Load(path)
		require.NoError(t, err)
		require.Len(t, ruleSet, 2)

		// Document order is rule priority
		got, ok := ruleSet.Apply("foobar")
		require.True(t, ok)
		assert.Equal(t, "barbar", got)

		got, ok = ruleSet.Apply("alice@example.com")
		require.True(t, ok)
		assert.Equal(t, "alice@redacted.com", got)
	})

	t.Run("valid_toml", func(t *testing.T) {
		path := writeConfig(t, "sarlac.toml", `
[[substitutions]]
match = "foo"
replace = "bar"
`)

		ruleSet, err := config.Load(path)
		require.NoError(t, err)
		require.Len(t, ruleSet, 1)

		got, ok := ruleSet.Apply("food")
		require.True(t, ok)
		assert.Equal(t, "bard", got)
	})

	t.Run("empty_substitutions_list_is_valid", func(t *testing.T) {
		path := writeConfig(t, "sarlac.yaml", "substitutions: []\n")

		ruleSet, err := config.Load(path)
		require.NoError(t, err)
		assert.Empty(t, ruleSet)

		_, ok := ruleSet.Apply("anything")
		assert.False(t, ok)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigNotFound))
	})

	t.Run("invalid_yaml_syntax", func(t *testing.T) {
		path := writeConfig(t, "sarlac.yaml", "substitutions: [unclosed\n")

		_, err := config.Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("missing_substitutions_key", func(t *testing.T) {
		path := writeConfig(t, "sarlac.yaml", "other_key: value\n")

		_, err := config.Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("entry_missing_match", func(t *testing.T) {
		path := writeConfig(t, "sarlac.yaml", `
substitutions:
  - replace: "bar"
`)

		_, err := config.Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("entry_missing_replace", func(t *testing.T) {
		path := writeConfig(t, "sarlac.yaml", `
substitutions:
  - match: "foo"
`)

		_, err := config.Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("explicit_empty_strings_are_present_keys", func(t *testing.T) {
		path := writeConfig(t, "sarlac.yaml", `
substitutions:
  - match: ""
    replace: ""
`)

		ruleSet, err := config.Load(path)
		require.NoError(t, err)
		assert.Len(t, ruleSet, 1)
	})

	t.Run("invalid_pattern_fails_load", func(t *testing.T) {
		path := writeConfig(t, "sarlac.yaml", `
substitutions:
  - match: "ok"
    replace: "fine"
  - match: "broken("
    replace: "never"
`)

		_, err := config.Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrPatternInvalid))
	})
}
