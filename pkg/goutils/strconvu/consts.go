/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package strconvu

const (
	decimalBase = 10
	bitSize64   = 64
	bitsInByte  = 8
)
