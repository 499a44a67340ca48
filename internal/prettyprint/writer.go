package prettyprint

import (
	"bufio"
	"fmt"

	"github.com/Destroid1669/MyLibrary/internal/utils"
	"github.com/muesli/termenv"
)

var (
	ANSI_RESET_SEQUENCE = []byte(termenv.CSI + termenv.ResetSeq + "m")

	COMMA_SPACE = []byte{',', ' '}
	THREE_DOTS  = []byte{'.', '.', '.'}
)

type PrettyPrintWriter struct {
	writer *bufio.Writer

	Depth int
}

func NewWriter(writer *bufio.Writer) PrettyPrintWriter {
	return PrettyPrintWriter{
		writer: writer,
	}
}

func (w PrettyPrintWriter) WriteString(str string) {
	utils.Must(w.writer.Write(utils.StringAsBytes(str)))
}

func (w PrettyPrintWriter) WriteStringF(fmtStr string, args ...any) {
	utils.Must(fmt.Fprintf(w.writer, fmtStr, args...))
}

func (w PrettyPrintWriter) WriteBytes(b []byte) {
	utils.Must(w.writer.Write(b))
}

func (w PrettyPrintWriter) WriteManyBytes(b ...[]byte) {
	utils.MustWriteMany(w.writer, b...)
}

func (w PrettyPrintWriter) WriteByte(b byte) {
	utils.PanicIfErr(w.writer.WriteByte(b))
}

func (w PrettyPrintWriter) WriteAnsiReset() {
	utils.Must(w.writer.Write(ANSI_RESET_SEQUENCE))
}

func (w PrettyPrintWriter) WriteCommaSpace() {
	utils.Must(w.writer.Write(COMMA_SPACE))
}

func (w PrettyPrintWriter) WriteThreeDots() {
	utils.Must(w.writer.Write(THREE_DOTS))
}

// WriteColored writes str surrounded by the color sequence and a reset sequence,
// the color is omitted if colorize is false or color is empty.
func (w PrettyPrintWriter) WriteColored(colorize bool, color []byte, str string) {
	if colorize && len(color) > 0 {
		w.WriteBytes(color)
		w.WriteString(str)
		w.WriteAnsiReset()
		return
	}
	w.WriteString(str)
}

func (w PrettyPrintWriter) Flush() {
	utils.PanicIfErr(w.writer.Flush())
}

func (w PrettyPrintWriter) IncrDepth() PrettyPrintWriter {
	new := w
	new.Depth++
	return new
}
