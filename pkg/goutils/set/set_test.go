/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package set

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type Month uint8

const (
	Month_jan Month = iota
	Month_feb
	Month_mar
	Month_apr
	Month_may
	Month_jun

	Month_count
)

var monthStr = map[Month]string{
	Month_jan: "Month_jan",
	Month_feb: "Month_feb",
	Month_mar: "Month_mar",
	Month_apr: "Month_apr",
	Month_may: "Month_may",
	Month_jun: "Month_jun",
}

func (t Month) String() string {
	if s, ok := monthStr[t]; ok {
		return s
	}
	return fmt.Sprintf("Month(%d)", t)
}

func (t Month) TrimString() string {
	return strings.TrimPrefix(t.String(), "Month_")
}

func TestEmpty(t *testing.T) {
	require := require.New(t)
	require.Zero(Empty[int]().Len())
	require.Zero(Set[string]{}.Len())
}

func TestFrom(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		name string
		set  Set[int]
		want string
	}{
		{"empty", From[int](), "[]"},
		{"one", From(5), "[5]"},
		{"unordered", From(100, 4, 200, 1, 3, 2), "[1 2 3 4 100 200]"},
		{"should shrink duplicates", From(1, 2, 0, 1), "[0 1 2]"},
		{"negatives", From(-1, 0, -3), "[-3 -1 0]"},
		{"extremes", From(math.MaxInt, math.MinInt), fmt.Sprintf("[%d %d]", math.MinInt, math.MaxInt)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(tt.want, tt.set.String(), "From(%v).String() = %v, want %v", tt.set, tt.set.String(), tt.want)
		})
	}

	t.Run("should render TrimString", func(t *testing.T) {
		require.Equal("[feb may]", From(Month_may, Month_feb).String())
		require.Equal("[jan Month(6)]", From(Month_jan, Month_count).String())
	})
}

func TestSet_AsArray(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		name string
		set  Set[int8]
		want []int8
	}{
		{"empty", Empty[int8](), nil},
		{"one", From[int8](7), []int8{7}},
		{"sorted", From[int8](3, -1, 2), []int8{-1, 2, 3}},
		{"bounds", From[int8](math.MaxInt8, math.MinInt8, 0), []int8{math.MinInt8, 0, math.MaxInt8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.set.AsArray()
			require.EqualValues(tt.want, got, "From(%v).AsArray() = %v, want %v", tt.set, got, tt.want)
		})
	}
}

func TestSet_All(t *testing.T) {
	require := require.New(t)

	set := From(1, 2, 3, 2, 1)
	sum, cnt := 0, 0
	set.All(func(v int) {
		sum += v
		cnt++
	})
	require.Equal(6, sum)
	require.Equal(3, cnt)

	Set[int]{}.All(func(int) {
		require.Fail("should not be called for empty set")
	})
}

func TestSet_Clear(t *testing.T) {
	require := require.New(t)

	t.Run("should be ok to clear one value", func(t *testing.T) {
		set := From(4, 5)
		set.Clear(4)
		require.Equal("[5]", set.String())
		require.Equal(1, set.Len())
		require.EqualValues([]int{5}, set.AsArray())
	})

	t.Run("should be ok to clear a few values", func(t *testing.T) {
		set := From(4, 5, 7)
		set.Clear(4, 5)
		require.Equal("[7]", set.String())
	})

	t.Run("should be safe to clear absent values", func(t *testing.T) {
		set := Set[int]{}
		set.Clear(4, 5)
		require.Equal("[]", set.String())

		set = From(1)
		set.Clear(2)
		require.Equal("[1]", set.String())
	})
}

func TestSet_ClearAll(t *testing.T) {
	require := require.New(t)

	t.Run("should clear filled set", func(t *testing.T) {
		set := From(-2, -1, 0, 1, 2)
		set.ClearAll()
		require.Equal("[]", set.String())
		require.Zero(set.Len())
		require.Empty(set.AsArray())
	})

	t.Run("should be safe to clear zero set", func(t *testing.T) {
		set := Set[int]{}
		set.ClearAll()
		require.Zero(set.Len())
	})
}

func TestSet_Clone(t *testing.T) {
	tests := []struct {
		name string
		set  Set[int]
	}{
		{"empty", Set[int]{}},
		{"one", From(1)},
		{"two", From(1, 2)},
	}
	require := require.New(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clone := tt.set.Clone()
			require.Equal(tt.set.String(), clone.String())
			require.Equal(tt.set.Len(), clone.Len())
			require.Equal(tt.set.AsArray(), clone.AsArray())

			clone.Set(100)

			require.NotEqual(tt.set.String(), clone.String())
			require.Equal(tt.set.Len()+1, clone.Len())
			require.False(tt.set.Contains(100))
		})
	}
}

func TestSet_Contains(t *testing.T) {
	tests := []struct {
		name string
		set  Set[int]
		v    int
		want bool
	}{
		{"empty", Set[int]{}, 1, false},
		{"one", From(1), 1, true},
		{"two", From(1, 2), 2, true},
		{"negative", From(1, 2), 3, false},
		{"min int", From(math.MinInt), math.MinInt, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.Contains(tt.v); got != tt.want {
				t.Errorf("Set(%v).Contains(%v) = %v, want %v", tt.set, tt.v, got, tt.want)
			}
		})
	}
}

func TestSet_ContainsAll(t *testing.T) {
	tests := []struct {
		name   string
		set    Set[int]
		values []int
		want   bool
	}{
		{"nil in empty", Set[int]{}, nil, true},
		{"empty in empty", Set[int]{}, []int{}, true},
		{"1 in empty", Set[int]{}, []int{1}, false},
		{"1 in [1]", From(1), []int{1}, true},
		{"1 2 in [1]", From(1), []int{1, 2}, false},
		{"1 2 in [1 2]", From(1, 2), []int{1, 2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.ContainsAll(tt.values...); got != tt.want {
				t.Errorf("Set(%v).ContainsAll(%v) = %v, want %v", tt.set, tt.values, got, tt.want)
			}
		})
	}
}

func TestSet_ContainsAny(t *testing.T) {
	tests := []struct {
		name   string
		set    Set[int]
		values []int
		want   bool
	}{
		{"nil in []", Set[int]{}, nil, true},
		{"[] in []", Set[int]{}, []int{}, true},
		{"1 in []", Set[int]{}, []int{1}, false},
		{"1 in [1]", From(1), []int{1}, true},
		{"1 2 in [1]", From(1), []int{1, 2}, true},
		{"1 2 in [3 4]", From(3, 4), []int{1, 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.ContainsAny(tt.values...); got != tt.want {
				t.Errorf("Set(%v).ContainsAny(%v) = %v, want %v", tt.set, tt.values, got, tt.want)
			}
		})
	}
}

func TestSet_First(t *testing.T) {
	tests := []struct {
		name      string
		set       Set[int]
		want      bool
		wantValue int
	}{
		{"empty", Set[int]{}, false, 0},
		{"one", From(9), true, 9},
		{"two", From(9, 4), true, 4},
		{"negative", From(9, -4, 0), true, -4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gotV := tt.set.First()
			if got != tt.want {
				t.Errorf("Set(%v).First() got = %v, want %v", tt.set, got, tt.want)
			}
			if gotV != tt.wantValue {
				t.Errorf("Set(%v).First() gotV = %v, want %v", tt.set, gotV, tt.wantValue)
			}
		})
	}
}

func TestSet_Len(t *testing.T) {
	tests := []struct {
		name string
		set  Set[string]
		want int
	}{
		{"empty", Set[string]{}, 0},
		{"one", From("a"), 1},
		{"two", From("a", "b"), 2},
		{"duplicates", From("a", "b", "a", "b"), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.Len(); got != tt.want {
				t.Errorf("Set(%v).Len() = %v, want %v", tt.set, got, tt.want)
			}
		})
	}
}

func TestSet_Set(t *testing.T) {
	require := require.New(t)

	set := Set[uint8]{}
	set.Set(0, 63, 64, 127, 128, 255)
	set.Set(63)

	require.Equal("[0 63 64 127 128 255]", set.String())
	require.Equal(6, set.Len())
}
