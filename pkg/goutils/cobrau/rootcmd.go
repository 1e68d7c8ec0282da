/*
* Copyright (c) 2023-present unTill Pro, Ltd.
* @author Maxim Geraskin
 */

package cobrau

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voedger/dsakatas/pkg/goutils/logger"
)

/*

Persistent flags:

  -v, --verbose   Print verbose output (detailed level)
      --trace     Print trace output   (most detailed level)

*/

// PrepareRootCmd returns root command with given sub-commands, `version` command and logging flags.
//
// args[0] is the program name, args[1:] are passed to the command.
func PrepareRootCmd(use string, short string, args []string, version string, cmds ...*cobra.Command) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setLogLevelFromFlags(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolP(flagVerbose, "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().Bool(flagTrace, false, "Enable extremely verbose output")

	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the current version",
		Aliases: []string{"ver"},
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", cmd.Root().Name(), version)
		},
	}

	if len(args) > 0 {
		rootCmd.SetArgs(args[1:])
	} else {
		rootCmd.SetArgs([]string{})
	}
	rootCmd.AddCommand(cmds...)
	rootCmd.AddCommand(versionCmd)
	rootCmd.InitDefaultHelpFlag()
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	return rootCmd
}

func setLogLevelFromFlags(cmd *cobra.Command) {
	if ok, _ := cmd.Flags().GetBool(flagTrace); ok {
		logger.SetLogLevel(logger.LogLevelTrace)
		logger.Verbose("Using logger.LogLevelTrace...")
		return
	}
	if ok, _ := cmd.Flags().GetBool(flagVerbose); ok {
		logger.SetLogLevel(logger.LogLevelVerbose)
		logger.Verbose("Using logger.LogLevelVerbose...")
	}
}
