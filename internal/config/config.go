package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/Destroid1669/MyLibrary/internal/codec"
	"github.com/Destroid1669/MyLibrary/internal/prettyprint"
	"github.com/Destroid1669/MyLibrary/internal/utils"
	"github.com/adrg/xdg"
	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"
)

const (
	APP_NAME = "mylib"

	CONFIG_FILE_NAME = "config.yaml"
	CONFIG_RELPATH   = APP_NAME + "/" + CONFIG_FILE_NAME

	DEFAULT_LOG_LEVEL = "warn"
	DEFAULT_FORMAT    = codec.FORMAT_REPR
)

var (
	USER_HOME             string
	FORCE_COLOR           bool
	TRUECOLOR_COLORTERM   bool
	TERM_256COLOR_CAPABLE bool
	NO_COLOR              bool
	SHOULD_COLORIZE       bool

	// set if SHOULD_COLORIZE
	INITIAL_COLORS_SET      bool
	INITIAL_DARK_BACKGROUND bool

	ErrInvalidConfig = errors.New("invalid configuration")
)

func init() {
	targetSpecificInit()
}

// Config holds the settings of the command line tool, the zero value of a field means the default.
type Config struct {
	LogLevel string       `yaml:"log-level"`
	Natural  bool         `yaml:"natural"`
	Reverse  bool         `yaml:"reverse"`
	Format   codec.Format `yaml:"format"`

	//if nil the environment decides.
	Colorize *bool `yaml:"colorize"`
}

func Default() Config {
	return Config{
		LogLevel: DEFAULT_LOG_LEVEL,
		Format:   DEFAULT_FORMAT,
	}
}

// Load searches for the configuration file in the XDG config directories and reads it,
// the default configuration is returned if there is no configuration file.
func Load() (cfg Config, path string, _ error) {
	path, err := xdg.SearchConfigFile(CONFIG_RELPATH)
	if err != nil {
		return Default(), "", nil
	}

	cfg, err = LoadFile(path)
	return cfg, path, err
}

// LoadFile reads the configuration file at path, unknown fields are not allowed.
func LoadFile(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := yaml.UnmarshalWithOptions(content, &cfg, yaml.Strict()); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate returns an error listing all the invalid fields.
func (cfg Config) Validate() error {
	var errs []error

	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("invalid log level %q", cfg.LogLevel))
	}
	if _, ok := codec.GetEncoder(cfg.Format); !ok {
		errs = append(errs, fmt.Errorf("unknown output format %q", cfg.Format))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, utils.CombineErrors(errs...))
}

// ZerologLevel returns the parsed log level, it should only be called on a valid configuration.
func (cfg Config) ZerologLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return level
}

func (cfg Config) ShouldColorize() bool {
	if cfg.Colorize != nil {
		return *cfg.Colorize
	}
	return SHOULD_COLORIZE
}

// PrettyPrintConfig returns the printing configuration matching cfg and the terminal.
func (cfg Config) PrettyPrintConfig() *prettyprint.PrettyPrintConfig {
	colors := &prettyprint.DEFAULT_DARKMODE_PRINT_COLORS
	if INITIAL_COLORS_SET && !INITIAL_DARK_BACKGROUND {
		colors = &prettyprint.DEFAULT_LIGHTMODE_PRINT_COLORS
	}

	return &prettyprint.PrettyPrintConfig{
		MaxDepth: prettyprint.DEFAULT_MAX_DEPTH,
		Colorize: cfg.ShouldColorize(),
		Colors:   colors,
	}
}

func readColorEnv() {
	// FORCE COLOR

	FORCE_COLOR = envFlag("FORCE_COLOR")

	//TERMCOLOR

	TRUECOLOR_COLORTERM = os.Getenv("COLORTERM") == "truecolor"

	//NO_COLOR

	NO_COLOR = envFlag("NO_COLOR")

	//TERM

	TERM_256COLOR_CAPABLE = isTerm256ColorCapable(os.Getenv("TERM"))

	//

	SHOULD_COLORIZE = !NO_COLOR && (FORCE_COLOR || TRUECOLOR_COLORTERM || TERM_256COLOR_CAPABLE)
}

// envFlag reports whether the environment variable is set to a value other than "", "false" and "0".
func envFlag(name string) bool {
	s, ok := os.LookupEnv(name)
	return ok && len(s) != 0 && s != "false" && s != "0"
}
