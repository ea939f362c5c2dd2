// Command orientpath scores a maze for a traveller who pays for turning.
//
// It reads a maze of '#' walls, '.' floor, one 'S' and one 'E' from a file
// (or stdin), then prints the lowest possible score from S, facing Right, to E
// and the number of cells lying on at least one route with that score.
//
// Flags can also be set from the environment (ORIENTPATH_*), and a .env file
// in the working directory is loaded first if present.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/orientpath/dijkstra"
	"github.com/katalvlaran/orientpath/grid"
	"github.com/katalvlaran/orientpath/maze"
)

// Exit codes.
const (
	exitFailure      = 1
	exitUsage        = 2
	exitInvalidInput = 3
)

// ExitError carries the process exit code for an error returned by run.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func main() {
	// Use a minimal logger until flags are parsed.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// Load .env if it exists; a missing file is not worth mentioning.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("could not load .env file", "error", err)
	}

	if err := run(context.Background(), os.Args, os.Stdin, os.Stdout, os.Stderr); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}
}

// run builds the command and executes it against args (program name first).
// It never calls os.Exit, so tests can drive it directly.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := &cli.Command{
		Name:      "orientpath",
		Usage:     "score a maze where every 90° turn is expensive",
		ArgsUsage: "[MAZE_FILE]",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "maze file to read; '-' or empty reads stdin",
				Sources: cli.EnvVars("ORIENTPATH_INPUT"),
			},
			&cli.Int64Flag{
				Name:    "move-cost",
				Value:   dijkstra.DefaultMoveCost,
				Usage:   "cost of one step (at least 1)",
				Sources: cli.EnvVars("ORIENTPATH_MOVE_COST"),
			},
			&cli.Int64Flag{
				Name:    "turn-cost",
				Value:   dijkstra.DefaultTurnCost,
				Usage:   "cost of one 90° turn",
				Sources: cli.EnvVars("ORIENTPATH_TURN_COST"),
			},
			&cli.StringFlag{
				Name:    "heading",
				Value:   "right",
				Usage:   "heading faced at S: up, right, down or left",
				Sources: cli.EnvVars("ORIENTPATH_HEADING"),
			},
			&cli.IntFlag{
				Name:    "max-states",
				Value:   0,
				Usage:   "abort after discovering this many search states (0 = no limit)",
				Sources: cli.EnvVars("ORIENTPATH_MAX_STATES"),
			},
			&cli.BoolFlag{
				Name:  "render",
				Usage: "print the maze with every optimal-path cell marked 'O'",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "debug, info, warn or error",
				Sources: cli.EnvVars("ORIENTPATH_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   "text",
				Usage:   "text or json",
				Sources: cli.EnvVars("ORIENTPATH_LOG_FORMAT"),
			},
		},
		// Errors are returned to main, which owns the exit code.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return solve(cmd, stdin, stdout, stderr)
		},
	}

	return cmd.Run(ctx, args)
}

// solve is the command action: configure, read, search, report.
func solve(cmd *cli.Command, stdin io.Reader, stdout, stderr io.Writer) error {
	logger, err := newLogger(stderr, cmd.String("log-level"), cmd.String("log-format"))
	if err != nil {
		return &ExitError{Code: exitUsage, Message: err.Error()}
	}

	heading, err := parseHeading(cmd.String("heading"))
	if err != nil {
		return &ExitError{Code: exitUsage, Message: err.Error()}
	}

	path := cmd.String("input")
	if path == "" {
		path = cmd.Args().First()
	}
	m, err := readMaze(path, stdin)
	if err != nil {
		if errors.Is(err, maze.ErrInvalidGrid) {
			return &ExitError{Code: exitInvalidInput, Message: err.Error()}
		}
		return err
	}
	logger.Debug("maze loaded",
		slog.String("source", sourceName(path)),
		slog.Int("rows", m.Rows()),
		slog.Int("cols", m.Cols()),
		slog.String("start", m.Start().String()),
		slog.String("end", m.End().String()))

	began := time.Now()
	res, err := maze.Solve(m,
		dijkstra.WithStartHeading(heading),
		dijkstra.WithMoveCost(cmd.Int64("move-cost")),
		dijkstra.WithTurnCost(cmd.Int64("turn-cost")),
		dijkstra.WithMaxStates(cmd.Int("max-states")),
		dijkstra.WithLogger(logger),
	)
	if err != nil {
		if errors.Is(err, dijkstra.ErrOptionViolation) {
			return &ExitError{Code: exitUsage, Message: err.Error()}
		}
		return fmt.Errorf("search failed: %w", err)
	}
	cells := res.Cells()
	logger.Info("maze solved",
		slog.Duration("took", time.Since(began)),
		slog.Int("explored", res.Explored),
		slog.Int("states", res.Discovered()))

	if res.Reachable() {
		fmt.Fprintf(stdout, "lowest score: %d\n", res.Best)
	} else {
		fmt.Fprintln(stdout, "lowest score: unreachable")
	}
	fmt.Fprintf(stdout, "cells on optimal paths: %d\n", len(cells))

	if cmd.Bool("render") {
		fmt.Fprint(stdout, maze.Render(m, cells))
	}

	return nil
}

// readMaze parses the maze at path, or stdin when path is "" or "-".
func readMaze(path string, stdin io.Reader) (*maze.Maze, error) {
	if path == "" || path == "-" {
		return maze.Read(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open maze: %w", err)
	}
	defer f.Close()

	return maze.Read(f)
}

func sourceName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}

// parseHeading accepts a heading name in any case.
func parseHeading(s string) (grid.Heading, error) {
	for _, h := range grid.Headings {
		if strings.EqualFold(s, h.String()) {
			return h, nil
		}
	}
	return 0, fmt.Errorf("invalid heading %q: want up, right, down or left", s)
}

// newLogger builds the structured logger selected by the level and format flags.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q: want text or json", format)
	}
}
