// Package cli wires the gridplanner command-line surface: `plan`, `schema`, and `version`. It is
// built fresh against github.com/urfave/cli/v2 (the teacher depends on it directly, but carries
// no surviving CLI source file for this domain — its own cli/ tree is a project-scaffolding
// generator, unrelated to grid planning).
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap/zapcore"

	"github.com/malcolmfong01/SC2079-Algo/config"
	"github.com/malcolmfong01/SC2079-Algo/logging"
	"github.com/malcolmfong01/SC2079-Algo/motionplan/gridplanning"
)

// Version is the gridplanner release string, overridden at build time via -ldflags.
var Version = "dev"

// ArenaWidth and ArenaHeight are the planner's fixed arena dimensions.
const (
	ArenaWidth  = 20
	ArenaHeight = 20
)

// NewApp builds the gridplanner urfave/cli application.
func NewApp() *cli.App {
	return &cli.App{
		Name:  "gridplanner",
		Usage: "plan an ordered snapshot tour for a differential-drive robot",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: "debug, info, warn, or error"},
			&cli.StringFlag{Name: "log-file", Usage: "write logs to this file instead of stdout"},
		},
		Commands: []*cli.Command{
			planCommand(),
			schemaCommand(),
			versionCommand(),
		},
	}
}

func planCommand() *cli.Command {
	return &cli.Command{
		Name:      "plan",
		Usage:     "read a request file, plan a tour, write the response file",
		ArgsUsage: "<input_path> <output_path>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Value: "json", Usage: "json or table (table also prints a human-readable command summary)"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.Exit("expected exactly two arguments: <input_path> <output_path>", 1)
			}
			logger, closer, err := buildLogger(c)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			if closer != nil {
				defer closer.Close() //nolint:errcheck
			}
			defer logger.Sync() //nolint:errcheck

			return runPlan(c.Args().Get(0), c.Args().Get(1), c.String("format"), logger)
		},
	}
}

func runPlan(inputPath, outputPath, format string, logger logging.Logger) error {
	req, err := config.Load(inputPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("malformed input: %v", err), 1)
	}

	arena := req.ToArena(ArenaWidth, ArenaHeight)
	start := req.StartPose()
	if !arena.Reachable(start.X, start.Y, false) {
		return cli.Exit(gridplanning.ErrInvalidStart.Error(), 1)
	}

	planner := gridplanning.NewPlanner(arena, gridplanning.Options{Retrying: req.Retrying, Logger: logger})
	groups := gridplanning.Generate(arena, req.Retrying)

	tour, err := planner.Optimize(start, groups)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if tour.Warnings != nil {
		logger.Warnf("planning advisories: %v", tour.Warnings)
	}

	commands := gridplanning.Compile(tour.Path)
	resp := config.FromTour(commands, tour.Distance, tour.Path)

	if err := config.Save(outputPath, resp); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if format == "table" {
		printSummary(tour, commands)
	}
	return nil
}

func printSummary(tour *gridplanning.Tour, commands []string) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Command"})
	for i, cmd := range commands {
		t.AppendRow(table.Row{i + 1, cmd})
	}
	t.Render()

	visited := color.GreenString("%d", len(tour.VisitedIDs))
	fmt.Printf("visited %s obstacle(s), distance %.1f\n", visited, tour.Distance)
}

func schemaCommand() *cli.Command {
	return &cli.Command{
		Name:  "schema",
		Usage: "print the JSON Schema for a request file",
		Action: func(c *cli.Context) error {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(config.Schema())
		},
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "print the gridplanner version",
		Action: func(c *cli.Context) error {
			fmt.Println(Version)
			return nil
		},
	}
}

func buildLogger(c *cli.Context) (logging.Logger, interface{ Close() error }, error) {
	level, err := parseLevel(c.String("log-level"))
	if err != nil {
		return nil, nil, err
	}

	if logFile := c.String("log-file"); logFile != "" {
		appender, closer, err := logging.NewFileAppender(logFile)
		if err != nil {
			return nil, nil, err
		}
		return logging.NewLogger("gridplanner", level, appender), closer, nil
	}
	return logging.NewLogger("gridplanner", level, logging.NewStdoutAppender()), nil, nil
}

func parseLevel(s string) (zapcore.Level, error) {
	var level zapcore.Level
	if err := level.Set(s); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
