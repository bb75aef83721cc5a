// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package remote

import (
	"errors"
	"fmt"
	"strings"
)

// CommandOut is the result of a remote command.
type CommandOut struct {
	StdOut   string
	StdErr   string
	ExitCode int
}

// ExitError is returned if a remote command exited with a non-zero exit code.
type ExitError struct {
	Command string
	Out     *CommandOut
}

// Error implements error.
func (e *ExitError) Error() string {
	msg := fmt.Sprintf("command %q exited with code %d", e.Command, e.Out.ExitCode)
	if stderr := strings.TrimSpace(e.Out.StdErr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

// IsExitError returns true if err is or wraps an *ExitError.
func IsExitError(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr)
}
