package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-lawlabel/internal/config"
	"github.com/alnah/go-lawlabel/internal/dataset"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	setupMaxProcs(os.Args)
	env := DefaultEnv()
	os.Exit(runMain(os.Args, env))
}

// setupMaxProcs configures GOMAXPROCS for container CPU limits.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func setupMaxProcs(args []string) {
	if hasVerboseFlag(args) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, a ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", a...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}
}

// hasVerboseFlag scans args for -v/--verbose before flag parsing happens.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}

// runMain dispatches to the requested command and returns an exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd := args[1]

	if !isCommand(cmd) {
		// Bare dataset argument is shorthand for generate
		if looksLikeDataset(cmd) {
			return runGenerateCommand(args[1:], env)
		}
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch cmd {
	case "generate":
		return runGenerateCommand(args[2:], env)
	case "init":
		return runInitCommand(args[2:], env)
	case "doctor":
		return runDoctorCmd(args[2:], env)
	case "completion":
		if err := runCompletion(args[2:], env); err != nil {
			fmt.Fprintf(env.Stderr, "Error: %v\n", err)
			return exitCodeFor(err)
		}
	case "version":
		fmt.Fprintf(env.Stdout, "go-lawlabel %s\n", Version)
	case "help":
		runHelp(args[2:], env)
	}
	return ExitSuccess
}

// isCommand returns true if name matches a known command.
func isCommand(name string) bool {
	switch name {
	case "generate", "init", "doctor", "completion", "version", "help":
		return true
	}
	return false
}

// looksLikeDataset returns true if the argument has a dataset file extension.
func looksLikeDataset(path string) bool {
	return dataset.Supported(path)
}

// runInitCommand writes a starter config file.
func runInitCommand(args []string, env *Environment) int {
	path := "lawlabel.yaml"
	if len(args) > 0 {
		path = args[0]
	}

	if err := config.WriteDefault(path); err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		return exitCodeFor(err)
	}

	fmt.Fprintf(env.Stdout, "Wrote %s\n", path)
	return ExitSuccess
}
