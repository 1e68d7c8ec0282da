/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author Maxim Geraskin
 */

package consecutive

import "golang.org/x/exp/constraints"

// succ returns v+1 and false if v is the maximum value of T.
func succ[T constraints.Integer](v T) (next T, ok bool) {
	next = v + 1
	return next, next > v
}

// pred returns v-1 and false if v is the minimum value of T.
func pred[T constraints.Integer](v T) (prev T, ok bool) {
	prev = v - 1
	return prev, prev < v
}
