package main

import (
	"os"
	"strconv"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

var (
	predictDocumentFiles = predict.Or(predict.Files("*.json"), predict.Files("*.yaml"), predict.Files("*.yml"))
	predictFormats       = predict.Set{"json", "yaml", "repr"}
	predictInputFormats  = predict.Set{"json", "yaml"}
	predictLogLevels     = predict.Set{"trace", "debug", "info", "warn", "error"}

	completer = CreateCompleter(func(c *Completer) *complete.Command {
		documentFlags := func(extra map[string]complete.Predictor) map[string]complete.Predictor {
			flags := map[string]complete.Predictor{
				"in-format": predictInputFormats,
				"format":    predictFormats,
				"log-level": predictLogLevels,
			}
			for name, predictor := range extra {
				flags[name] = predictor
			}
			return flags
		}

		return &complete.Command{
			Sub: map[string]*complete.Command{
				SORT_SUBCMD: {
					Flags: documentFlags(map[string]complete.Predictor{
						"reverse": complete.PredictFunc(c.predictDocumentAfterSwitch),
						"natural": complete.PredictFunc(c.predictDocumentAfterSwitch),
						"key":     predict.Something,
					}),
					Args: predictDocumentFiles,
				},
				MIN_SUBCMD: {
					Flags: documentFlags(map[string]complete.Predictor{
						"key":     predict.Something,
						"default": predict.Something,
					}),
					Args: predictDocumentFiles,
				},
				MAX_SUBCMD: {
					Flags: documentFlags(map[string]complete.Predictor{
						"key":     predict.Something,
						"default": predict.Something,
					}),
					Args: predictDocumentFiles,
				},
				SUM_SUBCMD: {
					Flags: documentFlags(map[string]complete.Predictor{
						"start": predict.Something,
					}),
					Args: predictDocumentFiles,
				},
				REVERSED_SUBCMD: {
					Flags: documentFlags(nil),
					Args:  predictDocumentFiles,
				},
				ENUMERATE_SUBCMD: {
					Flags: documentFlags(map[string]complete.Predictor{
						"start": predict.Something,
					}),
					Args: predictDocumentFiles,
				},
				RANGE_SUBCMD: {
					Flags: map[string]complete.Predictor{
						"format":    predictFormats,
						"log-level": predictLogLevels,
					},
				},
				BIN_SUBCMD:                   {},
				HELP_SUBCMD:                  {Args: predict.Set(SUBCOMMANDS)},
				INSTALL_COMPLETIONS_SUBCMD:   {},
				UNINSTALL_COMPLETIONS_SUBCMD: {},
			},
		}
	})
)

type Completer struct {
	*complete.Command
	currentCompLine  string
	currentCompPoint int //-1 if not retrieved
}

func CreateCompleter(create func(c *Completer) *complete.Command) *Completer {
	c := &Completer{currentCompPoint: -1}
	c.Command = create(c)
	return c
}

func (c *Completer) Complete(name string) {
	c.currentCompLine = os.Getenv("COMP_LINE")
	c.currentCompPoint, _ = strconv.Atoi(os.Getenv("COMP_POINT")) //ignore error because .Complete will also check the value

	if c.currentCompPoint > len(c.currentCompLine) {
		c.currentCompPoint = len(c.currentCompLine)
	}

	c.Command.Complete(name)
}

func (c *Completer) beforeCursorPoint() string {
	if c.currentCompPoint < 0 {
		return ""
	}
	return c.currentCompLine[:c.currentCompPoint]
}

func (c *Completer) predictDocumentAfterSwitch(prefix string) (results []string) {
	s := c.beforeCursorPoint()
	if s == "" {
		return
	}

	switch s[len(s)-1] {
	case '=':
		//The flag is a switch, it does not accept any value.
		return
	default:
		return predictDocumentFiles.Predict(prefix)
	}
}
