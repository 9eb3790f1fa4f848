package main

import (
	"context"
	"errors"

	lawlabel "github.com/alnah/go-lawlabel"
	"github.com/alnah/go-lawlabel/internal/config"
	"github.com/alnah/go-lawlabel/internal/hints"
)

// errorHint returns an actionable suggestion for err, or "" when none
// applies. Appended after the error message so failures point at a fix.
func errorHint(err error) string {
	switch {
	case errors.Is(err, lawlabel.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound()
	case errors.Is(err, lawlabel.ErrTemplateNotFound):
		return hints.ForTemplateNotFound(lawlabel.TemplateNames())
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	case errors.Is(err, lawlabel.ErrInsufficientColumns),
		errors.Is(err, lawlabel.ErrInvalidMapping):
		return hints.ForColumnMapping()
	}
	return ""
}
