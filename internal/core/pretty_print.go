package core

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/Destroid1669/MyLibrary/internal/prettyprint"
	"github.com/Destroid1669/MyLibrary/internal/utils"
)

// Repr returns the printable representation of v, without colors: None, True, 1.5, 'a', (1,), [1, 2].
func Repr(v Value) string {
	buff := bytes.Buffer{}
	err := PrettyPrint(v, &buff, &prettyprint.PrettyPrintConfig{
		MaxDepth: prettyprint.DEFAULT_MAX_DEPTH,
	})

	if err != nil {
		panic(err)
	}

	return buff.String()
}

// PrettyPrint writes the representation of v to w.
func PrettyPrint(v Value, w io.Writer, config *prettyprint.PrettyPrintConfig) (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = utils.ConvertPanicValueToError(e)
		}
	}()

	if (config.Colorize && config.Colors == nil) || config.MaxDepth <= 0 {
		newConfig := *config
		if newConfig.Colorize && newConfig.Colors == nil {
			newConfig.Colors = &prettyprint.DEFAULT_DARKMODE_PRINT_COLORS
		}
		if newConfig.MaxDepth <= 0 {
			newConfig.MaxDepth = prettyprint.DEFAULT_MAX_DEPTH
		}
		config = &newConfig
	}

	buffered := bufio.NewWriter(w)
	writer := prettyprint.NewWriter(buffered)
	v.PrettyPrint(writer, config)
	writer.Flush()
	return nil
}

func (NilT) PrettyPrint(w prettyprint.PrettyPrintWriter, config *prettyprint.PrettyPrintConfig) {
	w.WriteColored(config.Colorize, constantColor(config), "None")
}

func (b Bool) PrettyPrint(w prettyprint.PrettyPrintWriter, config *prettyprint.PrettyPrintConfig) {
	s := "False"
	if b {
		s = "True"
	}
	w.WriteColored(config.Colorize, constantColor(config), s)
}

func (i Int) PrettyPrint(w prettyprint.PrettyPrintWriter, config *prettyprint.PrettyPrintConfig) {
	w.WriteColored(config.Colorize, numberColor(config), strconv.FormatInt(int64(i), 10))
}

func (f Float) PrettyPrint(w prettyprint.PrettyPrintWriter, config *prettyprint.PrettyPrintConfig) {
	w.WriteColored(config.Colorize, numberColor(config), formatFloat(float64(f)))
}

func (s Str) PrettyPrint(w prettyprint.PrettyPrintWriter, config *prettyprint.PrettyPrintConfig) {
	w.WriteColored(config.Colorize, stringColor(config), quoteStr(string(s)))
}

func (tuple *Tuple) PrettyPrint(w prettyprint.PrettyPrintWriter, config *prettyprint.PrettyPrintConfig) {
	if w.Depth > config.MaxDepth && len(tuple.elements) > 0 {
		w.WriteString("(")
		w.WriteColored(config.Colorize, discreteColor(config), "...")
		w.WriteString(")")
		return
	}

	w.WriteByte('(')
	prettyPrintElements(w, config, tuple.elements)
	if len(tuple.elements) == 1 {
		w.WriteByte(',')
	}
	w.WriteByte(')')
}

func (list *List) PrettyPrint(w prettyprint.PrettyPrintWriter, config *prettyprint.PrettyPrintConfig) {
	if w.Depth > config.MaxDepth && len(list.elements) > 0 {
		w.WriteString("[")
		w.WriteColored(config.Colorize, discreteColor(config), "...")
		w.WriteString("]")
		return
	}

	w.WriteByte('[')
	prettyPrintElements(w, config, list.elements)
	w.WriteByte(']')
}

func (dict *Dict) PrettyPrint(w prettyprint.PrettyPrintWriter, config *prettyprint.PrettyPrintConfig) {
	if w.Depth > config.MaxDepth && len(dict.keys) > 0 {
		w.WriteString("{")
		w.WriteColored(config.Colorize, discreteColor(config), "...")
		w.WriteString("}")
		return
	}

	w.WriteByte('{')
	for i, key := range dict.keys {
		if i != 0 {
			w.WriteCommaSpace()
		}
		key.PrettyPrint(w, config)
		w.WriteString(": ")
		dict.values[i].PrettyPrint(w.IncrDepth(), config)
	}
	w.WriteByte('}')
}

func prettyPrintElements(w prettyprint.PrettyPrintWriter, config *prettyprint.PrettyPrintConfig, elements []Value) {
	for i, e := range elements {
		if i != 0 {
			w.WriteCommaSpace()
		}
		e.PrettyPrint(w.IncrDepth(), config)
	}
}

// formatFloat formats f the way the language prints floats: 1.0, 0.001, 1e+16, inf, nan.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// quoteStr quotes s with single quotes, or double quotes if s contains single quotes but no double quotes.
func quoteStr(s string) string {
	quote := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	var b strings.Builder
	b.WriteRune(quote)

	for _, r := range s {
		switch {
		case r == quote || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case unicode.IsPrint(r):
			b.WriteRune(r)
		case r < 0x100:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r < 0x10000:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			fmt.Fprintf(&b, `\U%08x`, r)
		}
	}

	b.WriteRune(quote)
	return b.String()
}

func constantColor(config *prettyprint.PrettyPrintConfig) []byte {
	if config.Colors == nil {
		return nil
	}
	return config.Colors.Constant
}

func numberColor(config *prettyprint.PrettyPrintConfig) []byte {
	if config.Colors == nil {
		return nil
	}
	return config.Colors.NumberLiteral
}

func stringColor(config *prettyprint.PrettyPrintConfig) []byte {
	if config.Colors == nil {
		return nil
	}
	return config.Colors.StringLiteral
}

func discreteColor(config *prettyprint.PrettyPrintConfig) []byte {
	if config.Colors == nil {
		return nil
	}
	return config.Colors.DiscreteColor
}
