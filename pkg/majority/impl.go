/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

// Package majority finds a value occurring in strictly more than half of a sequence's positions.
package majority

import "fmt"

// Element returns the majority element of xs using Boyer–Moore majority vote:
// a single pass, constant space.
//
// Precondition: some value occurs in more than len(xs)/2 positions.
// If the precondition is violated the result is some element of xs without any
// majority guarantee; use Verified to detect this.
//
// Returns ErrEmptySequence if xs is empty. xs is not modified.
func Element[T comparable](xs []T) (candidate T, err error) {
	if len(xs) == 0 {
		return candidate, ErrEmptySequence
	}
	count := 0
	for _, x := range xs {
		if count == 0 {
			candidate = x
		}
		if x == candidate {
			count++
		} else {
			count--
		}
	}
	return candidate, nil
}

// Verified is like Element but checks the precondition with a second pass.
//
// Returns ErrNoMajority if the vote winner occurs in len(xs)/2 positions or less.
func Verified[T comparable](xs []T) (T, error) {
	candidate, err := Element(xs)
	if err != nil {
		return candidate, err
	}
	if n := occurrences(xs, candidate); n <= len(xs)/2 {
		var zero T
		return zero, fmt.Errorf("%w: candidate %v occurs %d of %d times", ErrNoMajority, candidate, n, len(xs))
	}
	return candidate, nil
}
