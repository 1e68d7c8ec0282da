/*
 * Copyright (c) 2020-present unTill Pro, Ltd. and Contributors
 * @author Maxim Geraskin
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package logger

// TLogLevel s.e.
type TLogLevel int32

type logPrinter struct {
	logLevel TLogLevel
}

type ctxKey struct{}
