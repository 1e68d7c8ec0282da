/*
* Copyright (c) 2023-present unTill Pro, Ltd.
* @author Maxim Geraskin
 */

package cobrau

const (
	flagVerbose = "verbose"
	flagTrace   = "trace"
)
