package main

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-lawlabel/internal/config"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = fmt.Errorf("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagFloat
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	TakesFiles  bool   // accepts file arguments
	FilePattern string // glob for file arguments (e.g., "*.xlsx")
}

// completionMeta holds completion-specific metadata for flags.
// This is the ONLY place where completion hints are defined.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	// Enum flags
	"kind": {Values: config.KindNames()},

	// File flags with glob patterns
	"config":   {FileGlob: "*.yaml,*.yml"},
	"template": {FileGlob: "*.svg"},

	// Directory flags
	"output":       {IsDir: true},
	"template-dir": {IsDir: true},
}

// buildGenerateFlagSet creates a FlagSet with all generate command flags.
// This reuses the same flag registration as parseGenerateFlags.
func buildGenerateFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	f := &generateFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")

	// Flag groups - same as parseGenerateFlags
	addCommonFlags(fs, &f.common)
	addLabelFlags(fs, &f.label)
	addColumnFlags(fs, &f.columns)
	addPageFlags(fs, &f.page)
	addArchiveFlags(fs, &f.archive)

	return fs
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		// Determine base type from pflag type
		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
			fd.Type = flagInt
		case "float32", "float64":
			fd.Type = flagFloat
		default:
			fd.Type = flagString
		}

		// Override type based on completion metadata
		if meta, ok := flagCompletionMeta[f.Name]; ok {
			if len(meta.Values) > 0 {
				fd.Type = flagEnum
				fd.Values = meta.Values
			} else if meta.FileGlob != "" {
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			} else if meta.IsDir {
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSet - single source of truth.
func getCommands() []commandDef {
	generateFlags := extractFlagsFromFlagSet(buildGenerateFlagSet())

	return []commandDef{
		{
			Name:        "generate",
			Desc:        "Generate law labels from spreadsheet datasets",
			Flags:       generateFlags,
			TakesFiles:  true,
			FilePattern: "*.xlsx,*.xlsm,*.csv",
		},
		{
			Name: "init",
			Desc: "Write a starter config file",
		},
		{
			Name: "doctor",
			Desc: "Check system requirements",
			Flags: []flagDef{
				{Long: "json", Type: flagBool, Desc: "output machine-readable JSON"},
			},
		},
		{
			Name:  "version",
			Desc:  "Show version information",
			Flags: nil,
		},
		{
			Name:  "help",
			Desc:  "Show help for a command",
			Flags: nil,
		},
		{
			Name:  "completion",
			Desc:  "Generate shell completion script",
			Flags: nil,
		},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	case ShellPowerShell:
		return generatePowerShell(w)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}

	shell := Shell(args[0])
	return GenerateCompletion(env.Stdout, shell)
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: lawlabel completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(lawlabel completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(lawlabel completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    lawlabel completion fish > ~/.config/fish/completions/lawlabel.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    lawlabel completion powershell | Out-String | Invoke-Expression")
}

// commandNames lists all command names for word-list completion.
func commandNames(cmds []commandDef) []string {
	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, c.Name)
	}
	return names
}

// flagWords lists the completion words for a command's flags.
func flagWords(flags []flagDef) []string {
	var words []string
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return words
}

// bashExtGlob converts a comma-separated glob list to a bash extglob pattern.
func bashExtGlob(globs string) string {
	parts := strings.Split(globs, ",")
	exts := make([]string, 0, len(parts))
	for _, p := range parts {
		exts = append(exts, strings.TrimPrefix(strings.TrimSpace(p), "*."))
	}
	return "*.@(" + strings.Join(exts, "|") + ")"
}

// generateBash writes a bash completion script driven by the command registry.
func generateBash(w io.Writer) error {
	cmds := getCommands()

	fmt.Fprintln(w, "# bash completion for lawlabel")
	fmt.Fprintln(w, "_lawlabel_completions() {")
	fmt.Fprintln(w, "    local cur prev")
	fmt.Fprintln(w, "    cur=\"${COMP_WORDS[COMP_CWORD]}\"")
	fmt.Fprintln(w, "    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "    local commands=\"%s\"\n", strings.Join(commandNames(cmds), " "))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    if [[ ${COMP_CWORD} -eq 1 ]]; then")
	fmt.Fprintln(w, "        COMPREPLY=( $(compgen -W \"${commands}\" -- \"${cur}\") )")
	fmt.Fprintln(w, "        return")
	fmt.Fprintln(w, "    fi")
	fmt.Fprintln(w)

	// Value completion for flags that take enum, file, or directory arguments
	fmt.Fprintln(w, "    case \"${prev}\" in")
	seen := make(map[string]bool)
	for _, c := range cmds {
		for _, f := range c.Flags {
			if seen[f.Long] {
				continue
			}
			seen[f.Long] = true

			pattern := "--" + f.Long
			if f.Short != "" {
				pattern += "|-" + f.Short
			}
			switch f.Type {
			case flagEnum:
				fmt.Fprintf(w, "        %s)\n", pattern)
				fmt.Fprintf(w, "            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", strings.Join(f.Values, " "))
				fmt.Fprintln(w, "            return")
				fmt.Fprintln(w, "            ;;")
			case flagFile:
				fmt.Fprintf(w, "        %s)\n", pattern)
				fmt.Fprintf(w, "            COMPREPLY=( $(compgen -f -X '!%s' -- \"${cur}\") )\n", bashExtGlob(f.FileGlob))
				fmt.Fprintln(w, "            return")
				fmt.Fprintln(w, "            ;;")
			case flagDir:
				fmt.Fprintf(w, "        %s)\n", pattern)
				fmt.Fprintln(w, "            COMPREPLY=( $(compgen -d -- \"${cur}\") )")
				fmt.Fprintln(w, "            return")
				fmt.Fprintln(w, "            ;;")
			}
		}
	}
	fmt.Fprintln(w, "    esac")
	fmt.Fprintln(w)

	// Per-command flag and argument completion
	fmt.Fprintln(w, "    case \"${COMP_WORDS[1]}\" in")
	for _, c := range cmds {
		switch {
		case len(c.Flags) > 0:
			fmt.Fprintf(w, "        %s)\n", c.Name)
			fmt.Fprintln(w, "            if [[ ${cur} == -* ]]; then")
			fmt.Fprintf(w, "                COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", strings.Join(flagWords(c.Flags), " "))
			if c.TakesFiles {
				fmt.Fprintln(w, "            else")
				fmt.Fprintf(w, "                COMPREPLY=( $(compgen -f -X '!%s' -- \"${cur}\") )\n", bashExtGlob(c.FilePattern))
			}
			fmt.Fprintln(w, "            fi")
			fmt.Fprintln(w, "            ;;")
		case c.Name == "completion":
			fmt.Fprintln(w, "        completion)")
			fmt.Fprintln(w, "            COMPREPLY=( $(compgen -W \"bash zsh fish powershell\" -- \"${cur}\") )")
			fmt.Fprintln(w, "            ;;")
		case c.Name == "help":
			fmt.Fprintln(w, "        help)")
			fmt.Fprintln(w, "            COMPREPLY=( $(compgen -W \"${commands}\" -- \"${cur}\") )")
			fmt.Fprintln(w, "            ;;")
		}
	}
	fmt.Fprintln(w, "    esac")
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "complete -F _lawlabel_completions lawlabel")
	return nil
}

// zshGlob converts a comma-separated glob list to a zsh glob pattern.
func zshGlob(globs string) string {
	parts := strings.Split(globs, ",")
	if len(parts) == 1 {
		return strings.TrimSpace(parts[0])
	}
	exts := make([]string, 0, len(parts))
	for _, p := range parts {
		exts = append(exts, strings.TrimPrefix(strings.TrimSpace(p), "*."))
	}
	return "*.(" + strings.Join(exts, "|") + ")"
}

// zshFlagSpecs renders one flag as _arguments specs, one per flag form.
func zshFlagSpecs(f flagDef) []string {
	var action string
	switch f.Type {
	case flagBool:
		// no argument
	case flagEnum:
		action = fmt.Sprintf(":%s:(%s)", f.Long, strings.Join(f.Values, " "))
	case flagFile:
		action = fmt.Sprintf(":file:_files -g \"%s\"", zshGlob(f.FileGlob))
	case flagDir:
		action = ":directory:_files -/"
	default:
		action = ":value:"
	}

	specs := []string{fmt.Sprintf("'--%s[%s]%s'", f.Long, f.Desc, action)}
	if f.Short != "" {
		specs = append(specs, fmt.Sprintf("'-%s[%s]%s'", f.Short, f.Desc, action))
	}
	return specs
}

// zshCommandSpecs builds _arguments specs for a command's flags and arguments.
func zshCommandSpecs(c commandDef) []string {
	var specs []string
	for _, f := range c.Flags {
		specs = append(specs, zshFlagSpecs(f)...)
	}
	if c.TakesFiles {
		specs = append(specs, fmt.Sprintf("'*:file:_files -g \"%s\"'", zshGlob(c.FilePattern)))
	}
	return specs
}

// generateZsh writes a zsh completion script driven by the command registry.
func generateZsh(w io.Writer) error {
	cmds := getCommands()

	fmt.Fprintln(w, "#compdef lawlabel")
	fmt.Fprintln(w, "# zsh completion for lawlabel")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "_lawlabel() {")
	fmt.Fprintln(w, "    local -a commands")
	fmt.Fprintln(w, "    commands=(")
	for _, c := range cmds {
		fmt.Fprintf(w, "        '%s:%s'\n", c.Name, c.Desc)
	}
	fmt.Fprintln(w, "    )")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    _arguments -C \\")
	fmt.Fprintln(w, "        '1: :->command' \\")
	fmt.Fprintln(w, "        '*:: :->args'")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    case $state in")
	fmt.Fprintln(w, "        command)")
	fmt.Fprintln(w, "            _describe 'command' commands")
	fmt.Fprintln(w, "            ;;")
	fmt.Fprintln(w, "        args)")
	fmt.Fprintln(w, "            case $words[1] in")
	for _, c := range cmds {
		specs := zshCommandSpecs(c)
		switch {
		case len(specs) > 0:
			fmt.Fprintf(w, "                %s)\n", c.Name)
			fmt.Fprintln(w, "                    _arguments \\")
			for i, spec := range specs {
				if i < len(specs)-1 {
					fmt.Fprintf(w, "                        %s \\\n", spec)
				} else {
					fmt.Fprintf(w, "                        %s\n", spec)
				}
			}
			fmt.Fprintln(w, "                    ;;")
		case c.Name == "completion":
			fmt.Fprintln(w, "                completion)")
			fmt.Fprintln(w, "                    _arguments '1:shell:(bash zsh fish powershell)'")
			fmt.Fprintln(w, "                    ;;")
		case c.Name == "help":
			fmt.Fprintln(w, "                help)")
			fmt.Fprintln(w, "                    _describe 'command' commands")
			fmt.Fprintln(w, "                    ;;")
		}
	}
	fmt.Fprintln(w, "            esac")
	fmt.Fprintln(w, "            ;;")
	fmt.Fprintln(w, "    esac")
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "_lawlabel \"$@\"")
	return nil
}

// generateFish writes a fish completion script driven by the command registry.
func generateFish(w io.Writer) error {
	cmds := getCommands()

	fmt.Fprintln(w, "# fish completion for lawlabel")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "function __fish_lawlabel_needs_command")
	fmt.Fprintln(w, "    set -l cmd (commandline -opc)")
	fmt.Fprintln(w, "    test (count $cmd) -eq 1")
	fmt.Fprintln(w, "end")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "function __fish_lawlabel_using_command")
	fmt.Fprintln(w, "    set -l cmd (commandline -opc)")
	fmt.Fprintln(w, "    test (count $cmd) -gt 1; and test $argv[1] = $cmd[2]")
	fmt.Fprintln(w, "end")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "# Commands")
	for _, c := range cmds {
		fmt.Fprintf(w, "complete -c lawlabel -f -n __fish_lawlabel_needs_command -a %s -d '%s'\n", c.Name, c.Desc)
	}

	for _, c := range cmds {
		if len(c.Flags) == 0 && c.Name != "completion" && c.Name != "help" {
			continue
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "# %s\n", c.Name)
		cond := fmt.Sprintf("'__fish_lawlabel_using_command %s'", c.Name)
		for _, f := range c.Flags {
			line := fmt.Sprintf("complete -c lawlabel -n %s -l %s", cond, f.Long)
			if f.Short != "" {
				line += " -s " + f.Short
			}
			switch f.Type {
			case flagBool:
				// no argument
			case flagEnum:
				line += fmt.Sprintf(" -x -a '%s'", strings.Join(f.Values, " "))
			case flagDir:
				line += " -x -a '(__fish_complete_directories)'"
			default:
				line += " -r"
			}
			line += fmt.Sprintf(" -d '%s'", f.Desc)
			fmt.Fprintln(w, line)
		}
		if c.Name == "completion" {
			fmt.Fprintf(w, "complete -c lawlabel -f -n %s -a 'bash zsh fish powershell'\n", cond)
		}
		if c.Name == "help" {
			fmt.Fprintf(w, "complete -c lawlabel -f -n %s -a '%s'\n", cond, strings.Join(commandNames(cmds), " "))
		}
	}
	return nil
}

// generatePowerShell writes a PowerShell completion script driven by the
// command registry.
func generatePowerShell(w io.Writer) error {
	cmds := getCommands()

	fmt.Fprintln(w, "# PowerShell completion for lawlabel")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Register-ArgumentCompleter -Native -CommandName lawlabel -ScriptBlock {")
	fmt.Fprintln(w, "    param($wordToComplete, $commandAst, $cursorPosition)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    $elements = $commandAst.CommandElements")
	fmt.Fprintln(w, "    $command = if ($elements.Count -gt 1) { $elements[1].ToString() } else { '' }")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    if ($elements.Count -le 1 -or ($elements.Count -eq 2 -and $command -eq $wordToComplete)) {")
	fmt.Fprintln(w, "        @(")
	for _, c := range cmds {
		fmt.Fprintf(w, "            [System.Management.Automation.CompletionResult]::new('%s', '%s', 'ParameterValue', '%s')\n", c.Name, c.Name, c.Desc)
	}
	fmt.Fprintln(w, "        ) | Where-Object { $_.CompletionText -like \"$wordToComplete*\" }")
	fmt.Fprintln(w, "        return")
	fmt.Fprintln(w, "    }")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    switch ($command) {")
	for _, c := range cmds {
		switch {
		case len(c.Flags) > 0:
			fmt.Fprintf(w, "        '%s' {\n", c.Name)
			fmt.Fprintln(w, "            @(")
			for _, f := range c.Flags {
				long := "--" + f.Long
				fmt.Fprintf(w, "                [System.Management.Automation.CompletionResult]::new('%s', '%s', 'ParameterName', '%s')\n", long, long, f.Desc)
				if f.Short != "" {
					short := "-" + f.Short
					fmt.Fprintf(w, "                [System.Management.Automation.CompletionResult]::new('%s', '%s', 'ParameterName', '%s')\n", short, short, f.Desc)
				}
			}
			fmt.Fprintln(w, "            ) | Where-Object { $_.CompletionText -like \"$wordToComplete*\" }")
			fmt.Fprintln(w, "        }")
		case c.Name == "completion":
			fmt.Fprintln(w, "        'completion' {")
			fmt.Fprintln(w, "            @(")
			for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
				fmt.Fprintf(w, "                [System.Management.Automation.CompletionResult]::new('%s', '%s', 'ParameterValue', '%s')\n", shell, shell, shell)
			}
			fmt.Fprintln(w, "            ) | Where-Object { $_.CompletionText -like \"$wordToComplete*\" }")
			fmt.Fprintln(w, "        }")
		case c.Name == "help":
			fmt.Fprintln(w, "        'help' {")
			fmt.Fprintln(w, "            @(")
			for _, cc := range cmds {
				fmt.Fprintf(w, "                [System.Management.Automation.CompletionResult]::new('%s', '%s', 'ParameterValue', '%s')\n", cc.Name, cc.Name, cc.Desc)
			}
			fmt.Fprintln(w, "            ) | Where-Object { $_.CompletionText -like \"$wordToComplete*\" }")
			fmt.Fprintln(w, "        }")
		}
	}
	fmt.Fprintln(w, "    }")
	fmt.Fprintln(w, "}")
	return nil
}
