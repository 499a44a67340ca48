//go:build unix

package config

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

const (
	UNIX = true
)

func targetSpecificInit() {
	// HOME

	HOME, err := os.UserHomeDir()
	if err == nil {
		if HOME[len(HOME)-1] != '/' {
			HOME += "/"
		}
		USER_HOME = HOME
	}

	readColorEnv()

	if SHOULD_COLORIZE && termenv.NewOutput(os.Stdout).Profile != termenv.Ascii {
		INITIAL_COLORS_SET = true
		INITIAL_DARK_BACKGROUND = termenv.HasDarkBackground()
	}
}

func isTerm256ColorCapable(term string) bool {
	return strings.Contains(term, "256color")
}
