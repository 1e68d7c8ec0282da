/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package require

import (
	"fmt"

	"github.com/stretchr/testify/assert"
)

// Constraint is a common function prototype when validating given value.
type Constraint assert.ValueAssertionFunc

// Returns a constraint that checks that error text contains the given substring.
func Has(substr interface{}, msgAndArgs ...interface{}) Constraint {
	return func(t assert.TestingT, v interface{}, _ ...interface{}) bool {
		return assert.Contains(t, fmt.Sprint(v), fmt.Sprint(substr), msgAndArgs...)
	}
}

// Returns a constraint that checks that error text does not contain the given substring.
func NotHas(substr string, msgAndArgs ...interface{}) Constraint {
	return func(t assert.TestingT, v interface{}, _ ...interface{}) bool {
		return assert.NotContains(t, fmt.Sprint(v), substr, msgAndArgs...)
	}
}

// Returns a constraint that checks that error (or one of the errors in the error chain)
// matches the target.
func Is(target error, msgAndArgs ...interface{}) Constraint {
	return func(t assert.TestingT, v interface{}, _ ...interface{}) bool {
		err, ok := v.(error)
		if !ok {
			return assert.Fail(t, fmt.Sprintf("«%#v» is not an error", v), msgAndArgs...)
		}
		return assert.ErrorIs(t, err, target, msgAndArgs...) //nolint:testifylint // Use of require inside require is inappropriate
	}
}

// Returns a constraint that checks that none of the errors in the error chain
// match the target.
func NotIs(target error, msgAndArgs ...interface{}) Constraint {
	return func(t assert.TestingT, v interface{}, _ ...interface{}) bool {
		err, ok := v.(error)
		if !ok {
			return true
		}
		return assert.NotErrorIs(t, err, target, msgAndArgs...) //nolint:testifylint // Use of require inside require is inappropriate
	}
}

// ErrorWith asserts that the given error is not nil and satisfies the given constraints.
//
//	require.ErrorWith(t,
//		err,
//		require.Is(ErrEmptySequence),
//		require.Has("no majority"))
func ErrorWith(t assert.TestingT, e error, c ...Constraint) bool {
	if e == nil {
		return assert.Fail(t, "error expected")
	}

	for _, constraint := range c {
		if !constraint(t, e) {
			return false
		}
	}

	return true
}
