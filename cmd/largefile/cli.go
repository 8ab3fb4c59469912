package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/peteretelej/largefile/internal/config"
	"github.com/peteretelej/largefile/internal/errors"
	"github.com/peteretelej/largefile/internal/ops"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(cfg *config.Config, log zerolog.Logger) *cli.App {
	// Engines are built lazily so --help and --version never touch the
	// filesystem.
	var (
		once sync.Once
		deps *ops.Deps
	)
	getDeps := func() *ops.Deps {
		once.Do(func() { deps = ops.NewDeps(cfg, log) })
		return deps
	}

	app := &cli.App{
		Name:    "largefile",
		Usage:   "Inspect, search, and edit files too large to read whole",
		Version: Version,
		Commands: []*cli.Command{
			overviewCmd(getDeps),
			searchCmd(getDeps),
			readCmd(getDeps),
			editCmd(getDeps),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// overviewCmd creates the overview command.
func overviewCmd(getDeps func() *ops.Deps) *cli.Command {
	return &cli.Command{
		Name:      "overview",
		Usage:     "Show file structure, line count, and search hints",
		ArgsUsage: "<path>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("a file path is required"))
			}
			output, err := ops.Overview(getDeps(), ops.OverviewInput{Path: c.Args().First()})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// searchCmd creates the search command.
func searchCmd(getDeps func() *ops.Deps) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search a file for a pattern with context",
		ArgsUsage: "<path> <pattern>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "fuzzy", Usage: "Include similarity-scored approximate matches"},
			&cli.IntFlag{Name: "max-results", Aliases: []string{"m"}, Usage: "Maximum results to return"},
			&cli.IntFlag{Name: "context", Aliases: []string{"c"}, Value: -1, Usage: "Context lines around each match"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				return outputError(errors.NewInvalidRequest("a file path and a pattern are required"))
			}
			input := ops.SearchInput{
				Path:       c.Args().Get(0),
				Pattern:    c.Args().Get(1),
				Fuzzy:      c.Bool("fuzzy"),
				MaxResults: c.Int("max-results"),
			}
			if ctx := c.Int("context"); ctx >= 0 {
				input.ContextLines = &ctx
			}
			output, err := ops.Search(getDeps(), input)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// readCmd creates the read command.
func readCmd(getDeps func() *ops.Deps) *cli.Command {
	return &cli.Command{
		Name:      "read",
		Usage:     "Read a window of content around a line or pattern",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "line", Aliases: []string{"l"}, Usage: "1-based line number to read from"},
			&cli.StringFlag{Name: "pattern", Aliases: []string{"p"}, Usage: "Pattern locating the content to read"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("a file path is required"))
			}
			output, err := ops.Read(getDeps(), ops.ReadInput{
				Path:          c.Args().First(),
				TargetLine:    c.Int("line"),
				TargetPattern: c.String("pattern"),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// editCmd creates the edit command.
func editCmd(getDeps func() *ops.Deps) *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Replace text in a file (backs up before writing)",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "search", Aliases: []string{"s"}, Required: true, Usage: "Text to find"},
			&cli.StringFlag{Name: "replace", Aliases: []string{"r"}, Required: true, Usage: "Replacement text"},
			&cli.BoolFlag{Name: "fuzzy", Usage: "Replace the closest-matching line when no exact occurrence exists"},
			&cli.BoolFlag{Name: "preview", Usage: "Render the diff without writing"},
			&cli.IntFlag{Name: "max-replacements", Usage: "Maximum exact occurrences to replace (default 1)"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("a file path is required"))
			}
			output, err := ops.Edit(getDeps(), ops.EditInput{
				Path:            c.Args().First(),
				SearchText:      c.String("search"),
				ReplaceText:     c.String("replace"),
				Fuzzy:           c.Bool("fuzzy"),
				Preview:         c.Bool("preview"),
				MaxReplacements: c.Int("max-replacements"),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// outputJSON writes data as indented JSON to stdout.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if lfErr, ok := err.(*errors.Error); ok {
		if lfErr.Suggestion != "" {
			return cli.Exit(fmt.Sprintf("[%s] %s (%s)", lfErr.Code, lfErr.Message, lfErr.Suggestion), 1)
		}
		return cli.Exit(fmt.Sprintf("[%s] %s", lfErr.Code, lfErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
