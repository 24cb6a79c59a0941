package main

import (
	"context"
	"errors"
	"os"

	"github.com/gorewood/moodlog/internal/importer"
	"github.com/gorewood/moodlog/internal/notion"
	"github.com/gorewood/moodlog/internal/output"
)

// classifyError maps an error from the importer or its collaborators to an
// exit code, keeping the full wrapped message. Errors that already carry a
// code keep it.
func classifyError(err error) *output.ExitError {
	if err == nil {
		return nil
	}

	var parseErr *notion.ParseError
	var exitErr *output.ExitError
	switch {
	case errors.Is(err, importer.ErrPartialFailure):
		return output.NewPartialError(err.Error(), err)
	case errors.As(err, &parseErr):
		return output.NewUserErrorWithCause(err.Error(), err)
	case errors.As(err, &exitErr):
		return &output.ExitError{Code: exitErr.Code, Message: err.Error(), Cause: err}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return output.NewSystemErrorWithCause(err.Error(), err)
	case errors.Is(err, os.ErrNotExist):
		return output.NewUserErrorWithCause(err.Error(), err)
	}
	return output.NewSystemErrorWithCause(err.Error(), err)
}

// fail prints err through printer and returns it classified.
func fail(printer *output.Printer, err error) error {
	exitErr := classifyError(err)
	printer.Error(exitErr)
	return exitErr
}
