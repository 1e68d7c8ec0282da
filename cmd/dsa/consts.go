/*
* Copyright (c) 2024-present unTill Software Development Group B.V.
* @author Maxim Geraskin
 */

package main

// nolint
const (
	kataLongestConsecutive = "longest-consecutive"
	kataMajority           = "majority"

	flagShowRun = "show-run"
	flagVerify  = "verify"
	flagStrings = "strings"
)

// sample inputs used when no values are given
var (
	sampleLongestConsecutive = []int{100, 4, 200, 1, 3, 2}
	sampleMajority           = []int{2, 2, 1, 1, 1, 2, 2}
)
