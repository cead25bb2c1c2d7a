// Command worddiff prints the word-level differences between two texts.
//
// Usage:
//
//	worddiff [flags] ORIGINAL MODIFIED
//
// ORIGINAL and MODIFIED are file paths, or the texts themselves with -literal.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cast"

	"github.com/di-graph/worddiff/internal/config"
	"github.com/di-graph/worddiff/worddiff"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("worddiff", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a YAML configuration file")
	format := fs.String("format", "", "output format: text, html, json or plain")
	view := fs.String("view", "", "side shown by -format plain: modified or original")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn or error")
	maxTokens := fs.String("max-tokens", "", "maximum tokens per input, 0 for no limit")
	maxCells := fs.String("max-cells", "", "maximum LCS table cells for the pair of inputs, 0 for no limit")
	literal := fs.Bool("literal", false, "treat arguments as text instead of file paths")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(stderr, "usage: worddiff [flags] ORIGINAL MODIFIED")
		fs.PrintDefaults()
		return exitUsage
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "worddiff: %v\n", err)
			return exitError
		}
	}

	// Flags given on the command line override the file.
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = config.Format(*format)
		case "view":
			cfg.View = config.View(*view)
		case "log-level":
			cfg.LogLevel = config.LogLevel(*logLevel)
		case "max-tokens":
			n, err := cast.ToIntE(*maxTokens)
			if err != nil {
				flagErr = fmt.Errorf("invalid -max-tokens %q: %w", *maxTokens, err)
			}
			cfg.MaxTokens = n
		case "max-cells":
			n, err := cast.ToIntE(*maxCells)
			if err != nil {
				flagErr = fmt.Errorf("invalid -max-cells %q: %w", *maxCells, err)
			}
			cfg.MaxCells = n
		case "literal":
			cfg.Literal = *literal
		}
	})
	if flagErr == nil {
		flagErr = config.Validate(cfg)
	}
	if flagErr != nil {
		fmt.Fprintf(stderr, "worddiff: %v\n", flagErr)
		return exitUsage
	}

	logger := newLogger(cfg.LogLevel, stderr)

	original, err := readInput(fs.Arg(0), cfg.Literal)
	if err != nil {
		logger.Error("failed to read original", "err", err)
		return exitError
	}
	modified, err := readInput(fs.Arg(1), cfg.Literal)
	if err != nil {
		logger.Error("failed to read modified", "err", err)
		return exitError
	}

	if err := checkSize(cfg, logger, original, modified); err != nil {
		logger.Error("input rejected", "err", err)
		return exitError
	}

	parts := worddiff.ComputeDiff(original, modified)
	groups := worddiff.GroupDiffParts(parts)
	stats := worddiff.Stats(parts)
	logger.Info("diff computed",
		"parts", len(parts),
		"changes", stats.Changes,
		"removed_tokens", stats.RemovedTokens,
		"added_tokens", stats.AddedTokens,
	)

	if err := write(stdout, cfg, parts, groups, stats); err != nil {
		logger.Error("failed to write report", "err", err)
		return exitError
	}
	return exitOK
}

func readInput(arg string, literal bool) (string, error) {
	if literal {
		return arg, nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return "", fmt.Errorf("read %q: %w", arg, err)
	}
	return string(data), nil
}

func checkSize(cfg *config.Config, logger *slog.Logger, original, modified string) error {
	nOriginal := len(worddiff.Tokenize(original))
	nModified := len(worddiff.Tokenize(modified))
	logger.Debug("tokenized inputs", "original_tokens", nOriginal, "modified_tokens", nModified)

	return errors.Join(
		cfg.CheckTokens("original", nOriginal),
		cfg.CheckTokens("modified", nModified),
		cfg.CheckCells(nOriginal, nModified),
	)
}

type report struct {
	Parts  []worddiff.DiffPart    `json:"parts"`
	Groups []worddiff.ChangeGroup `json:"groups"`
	Stats  worddiff.Summary       `json:"stats"`
}

func write(w io.Writer, cfg *config.Config, parts []worddiff.DiffPart, groups []worddiff.ChangeGroup, stats worddiff.Summary) error {
	var err error
	switch cfg.Format {
	case config.FormatJSON:
		if parts == nil {
			parts = []worddiff.DiffPart{}
		}
		if groups == nil {
			groups = []worddiff.ChangeGroup{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(report{Parts: parts, Groups: groups, Stats: stats})
	case config.FormatHTML:
		_, err = fmt.Fprintln(w, worddiff.PrettyHTML(groups))
	case config.FormatPlain:
		view := worddiff.ViewModified
		if cfg.View == config.ViewOriginal {
			view = worddiff.ViewOriginal
		}
		_, err = io.WriteString(w, worddiff.GroupsText(groups, view))
	default:
		_, err = fmt.Fprintln(w, worddiff.PrettyText(groups))
	}
	return err
}

func newLogger(level config.LogLevel, w io.Writer) *slog.Logger {
	var lvl slog.Level
	switch level {
	case config.LogDebug:
		lvl = slog.LevelDebug
	case config.LogWarn:
		lvl = slog.LevelWarn
	case config.LogError:
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
