package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

// configGuide is the long-form documentation for the configuration file,
// rendered as markdown by the docs command.
const configGuide = `# Configuring sarlac

sarlac looks for its configuration file in order of precedence:

1. ` + "`$SARLAC_CONFIG`" + ` — explicit override, used even if the file is missing
2. ` + "`~/.sarlac.yaml`" + ` — used only when the file exists
3. ` + "`/usr/local/etc/sarlac.yaml`" + ` — system-wide fallback

## File format

The file holds a single ` + "`substitutions`" + ` list. Each entry pairs a
regular expression with a replacement template; list order is rule
priority, and the first rule matching at the start of an input wins.

    substitutions:
      - match: "(\\w+)@example\\.com"
        replace: "${1}@redacted.com"
      - match: "foo"
        replace: "bar"

Files ending in ` + "`.toml`" + ` are parsed as TOML with the same shape.

## Matching semantics

A rule fires when its pattern matches a *prefix* of the input; the whole
input does not have to match. Once a rule fires, the substitution is
applied to every occurrence of the pattern in the input. Replacement
templates use ` + "`$1`" + ` or ` + "`${name}`" + ` to reference capture groups.

Inputs that no rule matches produce no output line.
`

func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "docs",
		Short: "Show the configuration file guide",
		Long:  `Render the long-form documentation for sarlac's configuration file format.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(80),
			)
			if err != nil {
				// Fall back to the raw markdown rather than failing
				fmt.Fprint(cmd.OutOrStdout(), configGuide)
				return nil
			}

			rendered, err := renderer.Render(configGuide)
			if err != nil {
				fmt.Fprint(cmd.OutOrStdout(), configGuide)
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}
