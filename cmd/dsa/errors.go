/*
* Copyright (c) 2024-present unTill Software Development Group B.V.
* @author Maxim Geraskin
 */

package main

import "errors"

var ErrInvalidArgument = errors.New("invalid argument")
