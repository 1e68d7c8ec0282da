/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author Maxim Geraskin
 */

// Package consecutive finds the longest run of consecutive integers in an unordered collection.
package consecutive

import (
	"golang.org/x/exp/constraints"

	"github.com/voedger/dsakatas/pkg/goutils/set"
)

// LongestRun returns the length of the longest run of consecutive integers
// which are all present in nums. Order and duplicates are ignored.
//
// Returns 0 for empty nums. nums is not modified.
func LongestRun[T constraints.Integer](nums []T) int {
	return Longest(nums).Len
}

// Longest returns the longest run of consecutive integers which are all present in nums.
//
// If several runs have the same length, the one with the smallest First is returned.
// Returns zero Run for empty nums. nums is not modified.
func Longest[T constraints.Integer](nums []T) (longest Run[T]) {
	distinct := set.From(nums...)

	distinct.All(func(v T) {
		if prev, ok := pred(v); ok && distinct.Contains(prev) {
			// not a run start, will be walked from its minimum
			return
		}
		r := Run[T]{First: v, Len: 1}
		for next, ok := succ(v); ok && distinct.Contains(next); next, ok = succ(next) {
			r.Len++
		}
		if r.Len > longest.Len || (r.Len == longest.Len && r.First < longest.First) {
			longest = r
		}
	})

	return longest
}

// Last returns the largest value of the run.
//
// Result is undefined for zero Run.
func (r Run[T]) Last() T {
	return r.First + T(r.Len-1)
}

// Values returns all run values in ascending order.
func (r Run[T]) Values() []T {
	if r.Len == 0 {
		return nil
	}
	vv := make([]T, 0, r.Len)
	for i, v := 0, r.First; i < r.Len; i, v = i+1, v+1 {
		vv = append(vv, v)
	}
	return vv
}
