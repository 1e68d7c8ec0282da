/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package set

import "golang.org/x/exp/constraints"

// Set of distinct ordered values.
//
// The zero value is an empty set ready to use.
// Set is not safe for concurrent mutation.
type Set[V constraints.Ordered] struct {
	m map[V]struct{}
}
