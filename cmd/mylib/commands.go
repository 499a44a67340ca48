package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Destroid1669/MyLibrary/internal/codec"
	"github.com/Destroid1669/MyLibrary/internal/config"
	"github.com/Destroid1669/MyLibrary/internal/core"
	"github.com/Destroid1669/MyLibrary/internal/prettyprint"
	"github.com/Destroid1669/MyLibrary/internal/utils"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

const (
	STDIN_PATH = "-"
)

var (
	ErrInvalidArguments = errors.New("invalid arguments")

	subcommands = map[string]subcommand{
		SORT_SUBCMD:      {readsDocument: true, setup: setupSortCommand},
		MIN_SUBCMD:       {readsDocument: true, setup: setupMinCommand},
		MAX_SUBCMD:       {readsDocument: true, setup: setupMaxCommand},
		SUM_SUBCMD:       {readsDocument: true, setup: setupSumCommand},
		REVERSED_SUBCMD:  {readsDocument: true, setup: setupReversedCommand},
		ENUMERATE_SUBCMD: {readsDocument: true, setup: setupEnumerateCommand},
		RANGE_SUBCMD:     {setup: setupRangeCommand},
		BIN_SUBCMD:       {setup: setupBinCommand},
	}
)

type subcommand struct {
	//if true the first positional argument is the path of the input document (stdin if absent or "-").
	readsDocument bool

	//setup defines the subcommand-specific flags and returns the function executing the subcommand.
	setup func(flags *flag.FlagSet, cfg config.Config) runFn
}

// A runFn executes a subcommand, input is nil for subcommands that do not read a document.
type runFn func(c *commandContext, input core.Value, args []string) (core.Value, error)

type commandContext struct {
	config config.Config
	logger zerolog.Logger
	in     io.Reader
	out    io.Writer
}

func runSubcommand(name string, args []string, inR io.Reader, outW io.Writer, errW io.Writer) (statusCode int) {
	cmd := subcommands[name]

	defer func() {
		if e := recover(); e != nil {
			printError(errW, utils.ConvertPanicValueToError(e))
			statusCode = ERROR_STATUS_CODE
		}
	}()

	cfg, cfgPath, err := config.Load()
	if err != nil {
		printError(errW, err)
		return ERROR_STATUS_CODE
	}

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(errW)

	var format, logLevel, inputFormat string
	flags.StringVar(&format, "format", string(cfg.Format), "output format: "+joinFormats(codec.EncodingFormats()))
	flags.StringVar(&logLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	if cmd.readsDocument {
		flags.StringVar(&inputFormat, "in-format", "", "format of the input document: "+joinFormats(codec.DecodingFormats())+
			" (default: guessed from the file extension, json for stdin)")
	}

	run := cmd.setup(flags, cfg)

	if showHelp(flags, args, outW) {
		return 0
	}

	if err := flags.Parse(moveFlagsStart(flags, args)); err != nil {
		return ERROR_STATUS_CODE
	}

	cfg.LogLevel = logLevel
	cfg.Format = codec.Format(format)
	if err := cfg.Validate(); err != nil {
		printError(errW, err)
		return ERROR_STATUS_CODE
	}

	c := &commandContext{
		config: cfg,
		logger: newLogger(errW, cfg).With().Str("command", name).Logger(),
		in:     inR,
		out:    outW,
	}

	if cfgPath != "" {
		c.logger.Debug().Str("path", cfgPath).Msg("configuration file loaded")
	}

	positionalArgs := flags.Args()
	var input core.Value

	if cmd.readsDocument {
		path := STDIN_PATH
		if len(positionalArgs) > 0 {
			path, positionalArgs = positionalArgs[0], positionalArgs[1:]
		}

		input, err = c.readDocument(path, codec.Format(inputFormat))
		if err != nil {
			printError(errW, err)
			return ERROR_STATUS_CODE
		}
	}

	result, err := run(c, input, positionalArgs)
	if err != nil {
		printError(errW, err)
		return ERROR_STATUS_CODE
	}

	if err := c.print(result); err != nil {
		printError(errW, err)
		return ERROR_STATUS_CODE
	}
	return 0
}

func newLogger(errW io.Writer, cfg config.Config) zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:        errW,
		NoColor:    !cfg.ShouldColorize(),
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(writer).Level(cfg.ZerologLevel()).With().Timestamp().Logger()
}

// readDocument reads and decodes the document at path (stdin if path is "-"), if format is empty
// it is guessed from the file extension.
func (c *commandContext) readDocument(path string, format codec.Format) (core.Value, error) {
	if format == "" {
		format = guessFormat(path)
	}

	var content []byte
	var err error

	if path == STDIN_PATH {
		if f, ok := c.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			c.logger.Warn().Msg("reading the document from the terminal, end it with Ctrl-D")
		}
		content, err = io.ReadAll(c.in)
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	start := time.Now()
	v, err := codec.Decode(format, string(content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	c.logger.Debug().
		Str("path", path).
		Str("format", string(format)).
		Int("size", len(content)).
		Dur("duration", time.Since(start)).
		Msg("document decoded")

	return v, nil
}

func guessFormat(path string) codec.Format {
	if format, ok := codec.FormatByExtension(filepath.Ext(path)); ok {
		return format
	}
	return codec.FORMAT_JSON
}

func (c *commandContext) print(v core.Value) error {
	if c.config.Format == codec.FORMAT_REPR {
		if err := core.PrettyPrint(v, c.out, c.config.PrettyPrintConfig()); err != nil {
			return err
		}
		_, err := fmt.Fprintln(c.out)
		return err
	}

	encoded, err := codec.Encode(c.config.Format, v)
	if err != nil {
		return err
	}

	if !bytes.HasSuffix(encoded, []byte{'\n'}) {
		encoded = append(encoded, '\n')
	}
	_, err = c.out.Write(encoded)
	return err
}

// printError prints err prefixed by the Python name of its kind (TypeError, ValueError, ...).
func printError(errW io.Writer, err error) {
	kind := errorKind(err)
	if config.SHOULD_COLORIZE {
		kind = string(prettyprint.DEFAULT_DARKMODE_PRINT_COLORS.ErrorColor) + kind + string(prettyprint.ANSI_RESET_SEQUENCE)
	}
	fmt.Fprintf(errW, "%s: %s\n", kind, err)
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, core.ErrType):
		return "TypeError"
	case errors.Is(err, core.ErrValue):
		return "ValueError"
	case errors.Is(err, core.ErrIndex):
		return "IndexError"
	case errors.Is(err, core.ErrZeroDivision):
		return "ZeroDivisionError"
	default:
		return "error"
	}
}

func joinFormats(formats []codec.Format) string {
	return strings.Join(utils.MapSlice(formats, func(f codec.Format) string { return string(f) }), ", ")
}

// parseLiteral parses a JSON literal passed as a flag value or an argument.
func parseLiteral(s string) (core.Value, error) {
	v, err := codec.Decode(codec.FORMAT_JSON, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a valid JSON literal", ErrInvalidArguments, s)
	}
	return v, nil
}
