/*
* Copyright (c) 2024-present unTill Software Development Group B.V.
* @author Maxim Geraskin
 */

package main

import (
	"github.com/spf13/cobra"

	"github.com/voedger/dsakatas/pkg/goutils/logger"
	"github.com/voedger/dsakatas/pkg/goutils/strconvu"
	"github.com/voedger/dsakatas/pkg/majority"
)

func newMajorityCmd() *cobra.Command {
	var verify, asStrings bool
	cmd := &cobra.Command{
		Use:     kataMajority + " [-- value...]",
		Aliases: []string{"me"},
		Short:   "Print the element occurring in more than half of positions",
		Long: `Print the majority element using Boyer-Moore majority vote.
Without --verify the values must contain a majority element, otherwise the result is meaningless.
If no values are given, the sample [2 2 1 1 1 2 2] is used.`,
		Example: `  dsa majority 2 2 1 1 1 2 2
  dsa me --verify --strings a b a`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logger.WithContextAttrs(cmd.Context(), logger.LogAttr_Kata, kataMajority)
			if asStrings {
				xs := args
				if len(xs) == 0 {
					for _, v := range sampleMajority {
						xs = append(xs, strconvu.IntToString(v))
					}
				}
				logger.VerboseCtx(logger.WithContextAttrs(ctx, logger.LogAttr_Len, len(xs)), "input: ", xs)
				return printMajority(cmd, xs, verify)
			}

			nums, err := parseInts(args, sampleMajority)
			if err != nil {
				return err
			}
			logger.VerboseCtx(logger.WithContextAttrs(ctx, logger.LogAttr_Len, len(nums)), "input: ", nums)
			return printMajority(cmd, nums, verify)
		},
	}
	cmd.Flags().BoolVar(&verify, flagVerify, false, "Fail if no element occurs in more than half of positions")
	cmd.Flags().BoolVar(&asStrings, flagStrings, false, "Treat values as strings instead of integers")
	return cmd
}

func printMajority[T comparable](cmd *cobra.Command, xs []T, verify bool) error {
	find := majority.Element[T]
	if verify {
		find = majority.Verified[T]
	}
	v, err := find(xs)
	if err != nil {
		return err
	}
	printResult(cmd, v)
	return nil
}
