/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package require

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Require is testify require.Assertions extended with error constraints.
type Require struct {
	*require.Assertions
	t *testing.T
}

func New(t *testing.T) *Require {
	return &Require{
		Assertions: require.New(t),
		t:          t,
	}
}

// Returns a constraint that checks that error text contains the given substring.
func (r *Require) Has(substr interface{}, msgAndArgs ...interface{}) Constraint {
	return Has(substr, msgAndArgs...)
}

// Returns a constraint that checks that error text does not contain the given substring.
func (r *Require) NotHas(substr string, msgAndArgs ...interface{}) Constraint {
	return NotHas(substr, msgAndArgs...)
}

// Returns a constraint that checks that error (or one of the errors in the error chain)
// matches the target.
func (r *Require) Is(target error, msgAndArgs ...interface{}) Constraint {
	return Is(target, msgAndArgs...)
}

// Returns a constraint that checks that none of the errors in the error chain
// match the target.
func (r *Require) NotIs(target error, msgAndArgs ...interface{}) Constraint {
	return NotIs(target, msgAndArgs...)
}

// ErrorWith asserts that the given error is not nil and satisfies the given constraints.
//
//	require := require.New(t)
//	require.ErrorWith(
//		err,
//		require.Is(ErrNoMajority),
//		require.Has("occurs 1 of 3 times"))
func (r *Require) ErrorWith(e error, c ...Constraint) {
	if !ErrorWith(r.t, e, c...) {
		r.t.FailNow()
	}
}
