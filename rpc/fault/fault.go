// Package fault extracts numeric error codes from contract fault messages.
//
// Contracts of this repository panic with "<code>: <description>" messages,
// e.g. "5006: already voted". Such messages end up in the FaultException
// field of invocation results and in errors returned by RPC wrappers, quoted
// by the VM or wrapped by the client.
package fault

import (
	"errors"
	"regexp"
	"strconv"
)

// ErrNoCode is returned if the message doesn't contain an error code.
var ErrNoCode = errors.New("no error code in fault message")

var codeRe = regexp.MustCompile(`(?:^|["\s])(\d+): `)

// Code returns the error code contained in the fault message.
func Code(msg string) (int, error) {
	m := codeRe.FindStringSubmatch(msg)
	if m == nil {
		return 0, ErrNoCode
	}

	return strconv.Atoi(m[1])
}

// FromError returns the error code contained in the error message.
func FromError(err error) (int, error) {
	if err == nil {
		return 0, ErrNoCode
	}
	return Code(err.Error())
}

// Is checks whether err carries the given error code.
func Is(err error, code int) bool {
	c, e := FromError(err)
	return e == nil && c == code
}
