/*
 * Copyright (c) 2020-present unTill Pro, Ltd. and Contributors
 * @author Maxim Geraskin
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package logger

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

var globalLogPrinter = logPrinter{logLevel: LogLevelInfo}

func isEnabled(logLevel TLogLevel) bool {
	return TLogLevel(atomic.LoadInt32((*int32)(&globalLogPrinter.logLevel))) >= logLevel
}

func printIfLevel(skipStackFrames int, level TLogLevel, args ...interface{}) {
	if !isEnabled(level) {
		return
	}
	funcName, line := globalLogPrinter.getFuncName(printSkipFrames + skipStackFrames)
	PrintLine(level, globalLogPrinter.getFormattedMsg(getLevelPrefix(level), funcName, line, args...))
}

func getLevelPrefix(level TLogLevel) string {
	switch level {
	case LogLevelError:
		return errorPrefix
	case LogLevelWarning:
		return warningPrefix
	case LogLevelInfo:
		return infoPrefix
	case LogLevelVerbose:
		return verbosePrefix
	case LogLevelTrace:
		return tracePrefix
	}
	return ""
}

// getFuncName returns caller function name without package path, e.g. `cobrau.PrepareRootCmd.func1`
func (p *logPrinter) getFuncName(skip int) (funcName string, line int) {
	pc, _, line, ok := runtime.Caller(skip)
	if !ok {
		return "", 0
	}
	funcName = runtime.FuncForPC(pc).Name()
	if i := strings.LastIndex(funcName, "/"); i >= 0 {
		funcName = funcName[i+1:]
	}
	return funcName, line
}

func (p *logPrinter) getFormattedMsg(msgPrefix string, funcName string, line int, args ...interface{}) string {
	var b strings.Builder
	b.WriteString(time.Now().Format(timeLayout))
	b.WriteString(": ")
	if len(msgPrefix) > 0 {
		b.WriteString(msgPrefix)
		b.WriteString(": ")
	}
	fmt.Fprintf(&b, "[%s:%d]:", funcName, line)
	for _, arg := range args {
		b.WriteByte(' ')
		fmt.Fprint(&b, arg)
	}
	return b.String()
}
