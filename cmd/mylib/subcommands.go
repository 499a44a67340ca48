package main

import (
	"flag"
	"fmt"

	"github.com/Destroid1669/MyLibrary/internal/builtins"
	"github.com/Destroid1669/MyLibrary/internal/codec"
	"github.com/Destroid1669/MyLibrary/internal/config"
	"github.com/Destroid1669/MyLibrary/internal/core"
	"github.com/Destroid1669/MyLibrary/internal/hybridsort"
	"github.com/Destroid1669/MyLibrary/internal/utils"
)

func setupSortCommand(flags *flag.FlagSet, cfg config.Config) runFn {
	reverse := flags.Bool("reverse", cfg.Reverse, "sort in descending order, elements with equal keys keep their relative order")
	natural := flags.Bool("natural", cfg.Natural, "compare strings in natural order (item2 < item10)")
	keyPath := flags.String("key", "", "gjson path of the sort key of each element (e.g. user.age), elements without a key are None")

	return func(c *commandContext, input core.Value, _ []string) (core.Value, error) {
		less := core.Less
		if *natural {
			less = core.NaturalLess
		}

		list, err := builtins.SortedWithConfig(input, keyFunc(*keyPath), less, hybridsort.Config{
			Reverse: *reverse,
			Logger:  &c.logger,
		})
		if err != nil {
			return nil, err
		}
		return list, nil
	}
}

func setupMinCommand(flags *flag.FlagSet, cfg config.Config) runFn {
	return setupMinMaxCommand(flags, builtins.Min)
}

func setupMaxCommand(flags *flag.FlagSet, cfg config.Config) runFn {
	return setupMinMaxCommand(flags, builtins.Max)
}

func setupMinMaxCommand(flags *flag.FlagSet, fn func(args []core.Value, opts builtins.MinMaxOptions) (core.Value, error)) runFn {
	keyPath := flags.String("key", "", "gjson path of the key of each element (e.g. user.age)")
	defaultLiteral := flags.String("default", "", "JSON literal printed if the document is empty")

	return func(c *commandContext, input core.Value, _ []string) (core.Value, error) {
		opts := builtins.MinMaxOptions{Key: keyFunc(*keyPath)}

		if *defaultLiteral != "" {
			defaultValue, err := parseLiteral(*defaultLiteral)
			if err != nil {
				return nil, err
			}
			opts.Default = defaultValue
		}

		return fn([]core.Value{input}, opts)
	}
}

func setupSumCommand(flags *flag.FlagSet, cfg config.Config) runFn {
	startLiteral := flags.String("start", "0", "JSON literal of the number the elements are added to")

	return func(c *commandContext, input core.Value, _ []string) (core.Value, error) {
		start, err := parseLiteral(*startLiteral)
		if err != nil {
			return nil, err
		}
		return builtins.Sum(input, start)
	}
}

func setupReversedCommand(flags *flag.FlagSet, cfg config.Config) runFn {
	return func(c *commandContext, input core.Value, _ []string) (core.Value, error) {
		list, err := builtins.Reversed(input)
		if err != nil {
			return nil, err
		}
		return list, nil
	}
}

func setupEnumerateCommand(flags *flag.FlagSet, cfg config.Config) runFn {
	start := flags.Int64("start", 0, "first index")

	return func(c *commandContext, input core.Value, _ []string) (core.Value, error) {
		list, err := builtins.Enumerate(input, core.Int(*start))
		if err != nil {
			return nil, err
		}
		return list, nil
	}
}

func setupRangeCommand(flags *flag.FlagSet, cfg config.Config) runFn {
	return func(c *commandContext, _ core.Value, args []string) (core.Value, error) {
		values, err := utils.MapSliceErr(args, parseLiteral)
		if err != nil {
			return nil, err
		}

		list, err := builtins.Range(values...)
		if err != nil {
			return nil, err
		}
		return list, nil
	}
}

func setupBinCommand(flags *flag.FlagSet, cfg config.Config) runFn {
	return func(c *commandContext, _ core.Value, args []string) (core.Value, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: bin expects exactly one integer", ErrInvalidArguments)
		}

		n, err := parseLiteral(args[0])
		if err != nil {
			return nil, err
		}
		return builtins.Bin(n)
	}
}

func keyFunc(path string) core.KeyFunc {
	if path == "" {
		return nil
	}
	return codec.KeyFromJSONPath(path)
}
