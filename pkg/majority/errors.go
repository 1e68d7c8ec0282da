/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package majority

import "errors"

var ErrEmptySequence = errors.New("empty sequence has no majority element")

// ErrNoMajority is returned by Verified if no value occurs in more than half of positions.
var ErrNoMajority = errors.New("no majority element")
