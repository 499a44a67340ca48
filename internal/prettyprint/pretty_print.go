package prettyprint

import "github.com/muesli/termenv"

const (
	DEFAULT_MAX_DEPTH = 7
)

var (
	DEFAULT_DARKMODE_PRINT_COLORS = PrettyPrintColors{
		Constant:      GetFullColorSequence(termenv.ANSIBlue, false),
		StringLiteral: GetFullColorSequence(termenv.ANSI256Color(209), false),
		NumberLiteral: GetFullColorSequence(termenv.ANSIBrightGreen, false),
		DiscreteColor: GetFullColorSequence(termenv.ANSIBrightBlack, false),

		ErrorColor: GetFullColorSequence(termenv.ANSIRed, false),
	}

	DEFAULT_LIGHTMODE_PRINT_COLORS = PrettyPrintColors{
		Constant:      GetFullColorSequence(termenv.ANSI256Color(21), false),
		StringLiteral: GetFullColorSequence(termenv.ANSI256Color(88), false),
		NumberLiteral: GetFullColorSequence(termenv.ANSI256Color(28), false),
		DiscreteColor: GetFullColorSequence(termenv.ANSIBrightBlack, false),

		ErrorColor: GetFullColorSequence(termenv.ANSIRed, false),
	}
)

type PrettyPrintColors struct {
	//values
	Constant, StringLiteral, NumberLiteral,

	//delimiters and elisions
	DiscreteColor,

	ErrorColor []byte
}

type PrettyPrintConfig struct {
	//containers deeper than MaxDepth are printed as [...] or (...)
	MaxDepth int
	Colorize bool
	Colors   *PrettyPrintColors
}

func GetFullColorSequence(color termenv.Color, bg bool) []byte {
	var b = []byte(termenv.CSI)
	b = append(b, []byte(color.Sequence(bg))...)
	b = append(b, 'm')
	return b
}
