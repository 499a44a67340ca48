//go:build !unix

package config

import (
	"os"
	"strings"
)

const (
	UNIX = false
)

func targetSpecificInit() {
	HOME, err := os.UserHomeDir()
	if err == nil {
		USER_HOME = HOME
	}

	readColorEnv()
}

func isTerm256ColorCapable(term string) bool {
	return strings.Contains(term, "256color") || term == "xterm"
}
