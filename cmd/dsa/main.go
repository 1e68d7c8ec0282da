/*
* Copyright (c) 2024-present unTill Software Development Group B.V.
* @author Maxim Geraskin
 */

package main

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/voedger/dsakatas/pkg/goutils/cobrau"
	"github.com/voedger/dsakatas/pkg/goutils/logger"
)

//go:embed version
var version string

// disable colored output (flag --no-color)
var noColor bool

var red = color.New(color.FgRed).SprintFunc()
var green = color.New(color.FgGreen).SprintFunc()

func main() {
	if err := execRootCmd(os.Args, strings.TrimSpace(version)); err != nil {
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	logger.PrintLine = printLogLine
	logger.SetCtxWriters(os.Stderr, os.Stderr)

	rootCmd := cobrau.PrepareRootCmd(
		"dsa",
		"Data structures and algorithms katas",
		args,
		ver,
		newLongestConsecutiveCmd(),
		newMajorityCmd(),
	)
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	err := cobrau.ExecCommandAndCatchInterrupt(rootCmd)
	if err != nil {
		logger.Error(err)
	}
	return err
}

// printLogLine keeps stdout for results only
func printLogLine(level logger.TLogLevel, line string) {
	if level == logger.LogLevelError {
		line = red(line)
	}
	fmt.Fprintln(os.Stderr, line)
}

func printResult(cmd *cobra.Command, a ...interface{}) {
	if noColor {
		color.NoColor = true
	}
	fmt.Fprintln(cmd.OutOrStdout(), green(fmt.Sprint(a...)))
}
