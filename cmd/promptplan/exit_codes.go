package main

import (
	"errors"
	"fmt"
)

// Exit codes as specified in the CLI contract
const (
	ExitCodeSuccess       = 0 // Success
	ExitCodeGeneralError  = 1 // General error (invalid arguments, config errors)
	ExitCodeInputError    = 2 // Bad user input (unknown format, invalid share code)
	ExitCodeStorageError  = 3 // Plan storage error (unreadable store dir, write failure)
	ExitCodeInternalError = 4 // Internal error (invalid state transition, etc.)
)

// ExitError wraps an error with an exit code
type ExitError struct {
	Code int
	Err  error
}

func (e ExitError) Error() string {
	return e.Err.Error()
}

func (e ExitError) Unwrap() error {
	return e.Err
}

func exitCode(err error) int {
	var exitErr ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCodeGeneralError
}

// FormatError formats an error message for display
func FormatError(err error, command string) string {
	var exitErr ExitError
	if !errors.As(err, &exitErr) {
		exitErr = ExitError{Code: ExitCodeGeneralError, Err: err}
	}

	msg := fmt.Sprintf("Error: %s\n\n", getErrorType(exitErr.Code))
	msg += fmt.Sprintf("%s\n\n", exitErr.Error())
	msg += fmt.Sprintf("For help, run: promptplan %s --help\n", command)

	return msg
}

func getErrorType(code int) string {
	switch code {
	case ExitCodeInputError:
		return "Invalid Input"
	case ExitCodeStorageError:
		return "Plan Storage Error"
	case ExitCodeInternalError:
		return "Internal Error"
	default:
		return "Error"
	}
}
