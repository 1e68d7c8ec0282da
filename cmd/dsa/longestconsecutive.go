/*
* Copyright (c) 2024-present unTill Software Development Group B.V.
* @author Maxim Geraskin
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voedger/dsakatas/pkg/consecutive"
	"github.com/voedger/dsakatas/pkg/goutils/logger"
	"github.com/voedger/dsakatas/pkg/goutils/strconvu"
)

func newLongestConsecutiveCmd() *cobra.Command {
	var showRun bool
	cmd := &cobra.Command{
		Use:     kataLongestConsecutive + " [-- int...]",
		Aliases: []string{"lc"},
		Short:   "Print the length of the longest run of consecutive integers",
		Long: `Print the length of the longest run of consecutive integers.
Order and duplicates of the values are ignored.
If no values are given, the sample [100 4 200 1 3 2] is used.`,
		Example: `  dsa longest-consecutive 100 4 200 1 3 2
  dsa lc --show-run -- -1 0 1 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInts(args, sampleLongestConsecutive)
			if err != nil {
				return err
			}
			ctx := logger.WithContextAttrs(cmd.Context(), logger.LogAttr_Kata, kataLongestConsecutive)
			ctx = logger.WithContextAttrs(ctx, logger.LogAttr_Len, len(nums))
			logger.VerboseCtx(ctx, "input: ", nums)

			if !showRun {
				printResult(cmd, consecutive.LongestRun(nums))
				return nil
			}
			run := consecutive.Longest(nums)
			printResult(cmd, run.Len)
			printResult(cmd, fmt.Sprint(run.Values()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&showRun, flagShowRun, false, "Also print the values of the longest run")
	return cmd
}

func parseInts(args []string, sample []int) ([]int, error) {
	if len(args) == 0 {
		logger.Verbose("no values given, using sample", sample)
		return sample, nil
	}
	nums, err := strconvu.ParseInts[int](args)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return nums, nil
}
