package main

import (
	"io"
	"os"
	"time"

	lawlabel "github.com/alnah/go-lawlabel"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, and template loading.
type Environment struct {
	Now       func() time.Time
	Stdout    io.Writer
	Stderr    io.Writer
	Templates lawlabel.TemplateLoader
}

// DefaultEnv returns production environment with embedded templates.
func DefaultEnv() *Environment {
	loader, _ := lawlabel.NewTemplateLoader("") // embedded-only loader cannot fail
	return &Environment{
		Now:       time.Now,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Templates: loader,
	}
}
