/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package strconvu

import (
	"fmt"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// IntToString converts any signed integer to its decimal representation.
func IntToString[T constraints.Signed](i T) string {
	return strconv.FormatInt(int64(i), decimalBase)
}

func ParseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, decimalBase, bitSize64)
}

// ParseInts parses each string as a decimal integer of type T.
//
// Error wraps strconv error (strconv.ErrSyntax or strconv.ErrRange) with 1-based index of the bad string.
func ParseInts[T constraints.Signed](ss []string) ([]T, error) {
	var zero T
	bitSize := int(unsafe.Sizeof(zero)) * bitsInByte
	res := make([]T, 0, len(ss))
	for i, s := range ss {
		v, err := strconv.ParseInt(s, decimalBase, bitSize)
		if err != nil {
			return nil, fmt.Errorf("argument #%d: %w", i+1, err)
		}
		res = append(res, T(v))
	}
	return res, nil
}
