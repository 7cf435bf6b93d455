package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/netserf/sarlac/internal/version"
	"github.com/netserf/sarlac/pkg/core"
	"github.com/netserf/sarlac/pkg/logging"
	"github.com/netserf/sarlac/pkg/paths"
)

// NewRootCmd builds the sarlac command tree
func NewRootCmd() *cobra.Command {
	var (
		matchPattern   string
		replacePattern string
		verbosity      int
	)

	rootCmd := &cobra.Command{
		Use:   "sarlac [flags] [input]... [-]",
		Short: "A regex-driven string transformation tool",
		Long: `sarlac transforms strings through regular-expression substitution rules.

Rules come from a YAML config file resolved in order of precedence
(SARLAC_CONFIG, ~/.sarlac.yaml, /usr/local/etc/sarlac.yaml), or from a
single ad-hoc --match/--replace pair supplied on the command line.

Inputs are the positional arguments; pass "-" as the final argument to
read inputs line by line from stdin instead. Each input is matched
against the rules in order, the first rule matching at the start of the
input wins, and the substituted string is printed. Inputs no rule
matches are suppressed.`,
		Version: version.Version,
		// Positional args are input strings, not subcommand names
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation prints help, matching the original tool
			if matchPattern == "" && replacePattern == "" && len(args) == 0 {
				return cmd.Help()
			}

			source := core.SelectSource(matchPattern, replacePattern, paths.DefaultConfigFilePath())
			ruleSet, err := source.Rules()
			if err != nil {
				return err
			}

			return core.Process(ruleSet, args, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	rootCmd.Flags().StringVarP(&matchPattern, "match", "m", "", "Ad-hoc match regex")
	rootCmd.Flags().StringVarP(&replacePattern, "replace", "r", "", "Regex replacement")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newDocsCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print version information for sarlac`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sarlac version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}
