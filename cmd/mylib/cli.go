package main

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
)

const (
	SORT_SUBCMD                  = "sort"
	MIN_SUBCMD                   = "min"
	MAX_SUBCMD                   = "max"
	SUM_SUBCMD                   = "sum"
	REVERSED_SUBCMD              = "reversed"
	ENUMERATE_SUBCMD             = "enumerate"
	RANGE_SUBCMD                 = "range"
	BIN_SUBCMD                   = "bin"
	INSTALL_COMPLETIONS_SUBCMD   = "install-completions"
	UNINSTALL_COMPLETIONS_SUBCMD = "uninstall-completions"
	HELP_SUBCMD                  = "help"
)

var (
	SUBCOMMANDS = []string{
		SORT_SUBCMD, MIN_SUBCMD, MAX_SUBCMD, SUM_SUBCMD, REVERSED_SUBCMD, ENUMERATE_SUBCMD, RANGE_SUBCMD, BIN_SUBCMD,
		INSTALL_COMPLETIONS_SUBCMD, UNINSTALL_COMPLETIONS_SUBCMD, HELP_SUBCMD,
	}

	HELP_SUBCMD_EQUIVALENTS = []string{"--help", "-help", "-h"}

	SUBCOMMAND_DESCRIPTIONS = [][2]string{
		{SORT_SUBCMD, "stably sort the elements of a JSON or YAML document (file or stdin)"},
		{MIN_SUBCMD, "print the smallest element of a document"},
		{MAX_SUBCMD, "print the largest element of a document"},
		{SUM_SUBCMD, "print the sum of the numbers of a document"},
		{REVERSED_SUBCMD, "print the elements of a document in reverse order"},
		{ENUMERATE_SUBCMD, "print the (index, element) pairs of a document"},
		{RANGE_SUBCMD, "print the integers of a range: range <stop> | range <start> <stop> [step]"},
		{BIN_SUBCMD, "print the binary representation of an integer"},

		{INSTALL_COMPLETIONS_SUBCMD, "install CLI completions by addding the completion command to the detected rc file (supported shells are bash, zsh and fish)"},
		{UNINSTALL_COMPLETIONS_SUBCMD, "uninstall CLI completions by removing the completion command from the detected rc file"},
		{HELP_SUBCMD, "show the general help or command-specific help"},
	}

	SUBCOMMAND_DESCRIPTION_MAP = map[string]string{}

	MYLIB_CMD_HELP = "commands:\n"
)

func init() {
	for _, entry := range SUBCOMMAND_DESCRIPTIONS {
		cmd, desc := entry[0], entry[1]
		SUBCOMMAND_DESCRIPTION_MAP[cmd] = desc
		MYLIB_CMD_HELP += "\t" + cmd + " - " + desc + "\n"
	}
	MYLIB_CMD_HELP += "\nType `" + COMMAND_NAME + " help <command>` to get command-specific help.\n"
}

// moveFlagsStart returns args with the flags (and their values) moved before the positional arguments,
// the flag package stops parsing at the first positional argument.
func moveFlagsStart(flags *flag.FlagSet, args []string) []string {
	var flagArgs, positionalArgs []string

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			positionalArgs = append(positionalArgs, args[i+1:]...)
			break
		}

		if len(arg) < 2 || arg[0] != '-' || isNegativeNumber(arg) {
			positionalArgs = append(positionalArgs, arg)
			continue
		}

		flagArgs = append(flagArgs, arg)

		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}

		//the value of a non-boolean flag is the next argument.
		f := flags.Lookup(name)
		if f != nil && !isBoolFlag(f) && i+1 < len(args) {
			i++
			flagArgs = append(flagArgs, args[i])
		}
	}

	if len(positionalArgs) == 0 {
		return flagArgs
	}

	//negative numbers should not be parsed as flags.
	return append(append(flagArgs, "--"), positionalArgs...)
}

func isBoolFlag(f *flag.Flag) bool {
	boolFlag, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && boolFlag.IsBoolFlag()
}

func isNegativeNumber(arg string) bool {
	return len(arg) > 1 && arg[0] == '-' && (arg[1] >= '0' && arg[1] <= '9' || arg[1] == '.')
}

func showHelp(flags *flag.FlagSet, args []string, out io.Writer) bool {
	//only show help
	if slices.Contains(args, "-h") || slices.Contains(args, "--help") {

		cmd := flags.Name()
		if desc, ok := SUBCOMMAND_DESCRIPTION_MAP[cmd]; ok {
			fmt.Fprintln(out, desc)
		}

		flags.SetOutput(out)
		fmt.Fprint(out, "\noptions:\n")
		flags.PrintDefaults()

		return true
	}

	return false
}
