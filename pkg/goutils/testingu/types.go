/*
* Copyright (c) 2023-present unTill Pro, Ltd.
* @author Maxim Geraskin
 */

package testingu

// CmdTestCase describes one command line run and its expectations.
//
// Empty pattern in ExpectedStdoutPatterns (ExpectedStderrPatterns) means the output must be empty.
type CmdTestCase struct {
	Name                   string
	Args                   []string
	ExpectedErr            error
	ExpectedErrPatterns    []string
	ExpectedStdoutPatterns []string
	ExpectedStderrPatterns []string
}
