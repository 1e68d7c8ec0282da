/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author Maxim Geraskin
 */

package consecutive

import "golang.org/x/exp/constraints"

// Run is a maximal sequence of integers, each exactly 1 greater than the previous.
//
// Zero value (Len == 0) means no run.
type Run[T constraints.Integer] struct {
	// The smallest value of the run
	First T
	Len   int
}
