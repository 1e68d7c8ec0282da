/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package set

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Empty returns new empty set.
func Empty[V constraints.Ordered]() Set[V] {
	return Set[V]{}
}

// From returns new set with specified values.
// Duplicates are collapsed.
func From[V constraints.Ordered](values ...V) Set[V] {
	s := Set[V]{m: make(map[V]struct{}, len(values))}
	s.Set(values...)
	return s
}

// Calls enum for each value in set. Order is not defined.
func (s Set[V]) All(enum func(V)) {
	for v := range s.m {
		enum(v)
	}
}

// Returns set values as sorted slice.
// Returns nil if set is empty.
func (s Set[V]) AsArray() []V {
	if len(s.m) == 0 {
		return nil
	}
	a := maps.Keys(s.m)
	slices.Sort(a)
	return a
}

// Clears specified values from set.
func (s *Set[V]) Clear(values ...V) {
	for _, v := range values {
		delete(s.m, v)
	}
}

// Clears all values from set.
func (s *Set[V]) ClearAll() {
	maps.Clear(s.m)
}

// Returns a copy of the set.
func (s Set[V]) Clone() Set[V] {
	return Set[V]{m: maps.Clone(s.m)}
}

// Returns is set contains specified value.
func (s Set[V]) Contains(v V) bool {
	_, ok := s.m[v]
	return ok
}

// Returns is set contains all specified values.
// Returns true if values is empty.
func (s Set[V]) ContainsAll(values ...V) bool {
	for _, v := range values {
		if !s.Contains(v) {
			return false
		}
	}
	return true
}

// Returns is set contains any from specified values.
// Returns true if values is empty.
func (s Set[V]) ContainsAny(values ...V) bool {
	if len(values) == 0 {
		return true
	}
	for _, v := range values {
		if s.Contains(v) {
			return true
		}
	}
	return false
}

// Returns the smallest value from set and true.
// Returns zero value and false if set is empty.
func (s Set[V]) First() (ok bool, value V) {
	for v := range s.m {
		if !ok || v < value {
			value, ok = v, true
		}
	}
	return ok, value
}

// Returns count of values in set.
func (s Set[V]) Len() int {
	return len(s.m)
}

// Sets specified values.
func (s *Set[V]) Set(values ...V) {
	if s.m == nil {
		s.m = make(map[V]struct{}, len(values))
	}
	for _, v := range values {
		s.m[v] = struct{}{}
	}
}

// Renders sorted values in brackets, e.g. `[1 2 3]`.
//
// If values type has `TrimString() string` method, then it is used to render values.
func (s Set[V]) String() string {
	a := s.AsArray()
	ss := make([]string, 0, len(a))
	for _, v := range a {
		if t, ok := any(v).(interface{ TrimString() string }); ok {
			ss = append(ss, t.TrimString())
			continue
		}
		ss = append(ss, fmt.Sprint(v))
	}
	return "[" + strings.Join(ss, " ") + "]"
}
