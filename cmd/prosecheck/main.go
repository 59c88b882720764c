// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/prosecheck"
	"github.com/poiesic/prosecheck/core"
	"github.com/poiesic/prosecheck/inclusive"
	"github.com/poiesic/prosecheck/morphology/openai"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitErr.ExitCode())
		}
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "prosecheck",
		Usage: "Score titles and text against SEO and inclusive language rules",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (default $HOME/.config/prosecheck/config.yaml)",
			},
		},
		Before: setupLogger,
		// exit codes are handled in main so tests can inspect them
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{
			{
				Name:   "title",
				Usage:  "Check whether a title contains its keyphrase",
				Action: titleCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "title",
						Aliases:  []string{"t"},
						Usage:    "Title to assess",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "keyphrase",
						Aliases:  []string{"k"},
						Usage:    "Focus keyphrase; wrap in quotes to require an exact match",
						Required: true,
					},
					localeFlag(),
					&cli.StringFlag{
						Name:  "dict",
						Usage: "Path to BadgerDB forms dictionary directory",
					},
					&cli.StringFlag{
						Name:  "llm-host",
						Usage: "Chat service host URL for LLM morphology",
					},
					&cli.StringFlag{
						Name:  "llm-model",
						Usage: "Chat model name; enables LLM morphology",
					},
				},
			},
			{
				Name:      "inclusive",
				Usage:     "Check text for non-inclusive language",
				ArgsUsage: "[file|-]",
				Action:    inclusiveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "rules",
						Usage: "Path to YAML rule file (default built-in rules)",
					},
					&cli.StringSliceFlag{
						Name:  "category",
						Usage: "Only apply rules in this category (repeatable)",
					},
					localeFlag(),
					&cli.BoolFlag{
						Name:  "strict",
						Usage: "Exit with status 1 when non-inclusive language is found",
					},
				},
			},
			{
				Name:  "forms",
				Usage: "Manage the morphological forms dictionary",
				Subcommands: []*cli.Command{
					{
						Name:      "import",
						Usage:     "Import word forms from a TSV file",
						ArgsUsage: "[file|-]",
						Action:    formsImportCommand,
						Flags: []cli.Flag{
							dictFlag(),
							localeFlag(),
							&cli.IntFlag{
								Name:  "batch-size",
								Usage: "Number of entries to write in each batch",
								Value: 500,
							},
							&cli.IntFlag{
								Name:  "report-interval",
								Usage: "Report progress every N entries",
								Value: 1000,
							},
						},
					},
					{
						Name:      "show",
						Usage:     "Show stored forms for words, or the entry count",
						ArgsUsage: "[word...]",
						Action:    formsShowCommand,
						Flags:     []cli.Flag{dictFlag(), localeFlag()},
					},
					{
						Name:      "delete",
						Usage:     "Delete entries from the dictionary",
						ArgsUsage: "word...",
						Action:    formsDeleteCommand,
						Flags:     []cli.Flag{dictFlag(), localeFlag()},
					},
				},
			},
		},
	}
}

func dictFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "dict",
		Aliases:  []string{"d"},
		Usage:    "Path to BadgerDB forms dictionary directory",
		Required: true,
	}
}

func localeFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "locale",
		Usage: "Content locale, e.g. en_US",
		Value: "en",
	}
}

func titleCommand(c *cli.Context) error {
	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return err
	}

	paper := core.Paper{
		Title:     c.String("title"),
		Keyphrase: c.String("keyphrase"),
		Locale:    c.String("locale"),
	}
	if err := core.ValidatePaper(paper); err != nil {
		return err
	}

	opts := functionWordOptions(cfg)
	if dict := flagOr(c, "dict", cfg.Dictionary); dict != "" {
		opts = append(opts, prosecheck.WithDictionary(dict))
	}
	if model := flagOr(c, "llm-model", cfg.LLM.Model); model != "" {
		llmOpts := []openai.ConfigOption{openai.WithModel(model)}
		if host := flagOr(c, "llm-host", cfg.LLM.Host); host != "" {
			llmOpts = append(llmOpts, openai.WithHost(host))
		}
		if cfg.LLM.Token != "" {
			llmOpts = append(llmOpts, openai.WithToken(cfg.LLM.Token))
		}
		llmConfig := openai.NewConfig(llmOpts...)
		if err := llmConfig.Validate(); err != nil {
			return fmt.Errorf("invalid LLM configuration: %w", err)
		}
		opts = append(opts, prosecheck.WithLLM(llmConfig))
	}

	checker, err := prosecheck.NewChecker(opts...)
	if err != nil {
		return fmt.Errorf("failed to create checker: %w", err)
	}
	defer checker.Close()

	result, rating := checker.RateTitle(c.Context, paper)

	w := c.App.Writer
	fmt.Fprintf(w, "Exact match:        %t\n", result.ExactMatchFound)
	fmt.Fprintf(w, "All words found:    %t\n", result.AllWordsFound)
	fmt.Fprintf(w, "Position:           %d\n", result.Position)
	fmt.Fprintf(w, "Exact match quoted: %t\n", result.ExactMatchKeyphrase)
	fmt.Fprintf(w, "Rating:             %s (%d)\n", rating.Rating, rating.Score)
	fmt.Fprintln(w, rating.Feedback)
	return nil
}

func inclusiveCommand(c *cli.Context) error {
	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return err
	}

	rules := inclusive.DefaultRules()
	if path := flagOr(c, "rules", cfg.Rules); path != "" {
		rules, err = inclusive.LoadRulesFile(path)
		if err != nil {
			return err
		}
	}
	if categories := c.StringSlice("category"); len(categories) > 0 {
		rules = rules.Filter(categories...)
		if rules.Len() == 0 {
			return fmt.Errorf("no rules in categories %s", strings.Join(categories, ", "))
		}
	}

	input, closeInput, err := openInput(c)
	if err != nil {
		return err
	}
	defer closeInput()

	content, err := io.ReadAll(input)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	opts := append(functionWordOptions(cfg), prosecheck.WithRules(rules))
	checker, err := prosecheck.NewChecker(opts...)
	if err != nil {
		return fmt.Errorf("failed to create checker: %w", err)
	}
	defer checker.Close()

	results := checker.AssessInclusive(string(content), c.String("locale"))

	w := c.App.Writer
	if len(results) == 0 {
		fmt.Fprintln(w, "No non-inclusive language found.")
		return nil
	}

	nonInclusive := 0
	for _, result := range results {
		if result.Score == core.ScoreNonInclusive {
			nonInclusive++
		}
		fmt.Fprintf(w, "%s [%s] (%s)\n", result.RuleID, result.Score, result.Category)
		for _, match := range result.Matches {
			fmt.Fprintf(w, "  %q at tokens %d-%d\n", match.Phrase, match.StartToken, match.EndToken)
		}
		fmt.Fprintf(w, "  %s\n", stripMarkup.Replace(result.Feedback))
		if result.LearnMoreURL != "" {
			fmt.Fprintf(w, "  Learn more: %s\n", result.LearnMoreURL)
		}
	}

	if c.Bool("strict") && nonInclusive > 0 {
		return cli.Exit(fmt.Sprintf("found %d non-inclusive rule matches", nonInclusive), 1)
	}
	return nil
}

// stripMarkup removes the inline tags used by rule feedback.
var stripMarkup = strings.NewReplacer("<i>", "", "</i>", "", "<b>", "", "</b>", "")

// openInput opens the first argument as a file, or the app's reader when
// it is empty or "-".
func openInput(c *cli.Context) (io.Reader, func(), error) {
	path := c.Args().First()
	if path == "" || path == "-" {
		return c.App.Reader, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func flagOr(c *cli.Context, name, fallback string) string {
	if v := c.String(name); v != "" {
		return v
	}
	return fallback
}

func functionWordOptions(cfg Config) []prosecheck.Option {
	opts := []prosecheck.Option{prosecheck.WithLogger(slog.Default())}
	for locale, words := range cfg.FunctionWords {
		opts = append(opts, prosecheck.WithFunctionWords(locale, words))
	}
	return opts
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
