// Copyright 2025 The WordGrep Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordgrep CLI, a word-puzzle assistant.

WordGrep filters a dictionary of five-letter words against the feedback
of a Wordle-style puzzle, and optionally ranks the survivors by how many
common letters they contain.

# Usage

Find words matching 'd' at the first spot and 'e' at the last, without
a, b or c, where 'r' is in the word but not second:

	wordgrep grep 'd***e' -i abc -d '*r***'

Rank the survivors by letter frequency and keep the best ten:

	wordgrep grep 'd***e' -i abc -d '*r***' -s 10

Build the frequency table from the word source first:

	wordgrep analyse

Positional patterns are always five characters; '*' means "no
constraint here". Patterns of any other length are ignored rather than
rejected, which loosens the filter instead of failing the run.

# Configuration

The word source defaults to /usr/share/dict/words and the frequency
file to char.freq in the working directory. Both can be moved via a
TOML file or the environment:

	[paths]
	dictionary = "/usr/share/dict/words"
	frequency = "/home/me/.cache/char.freq"

	[server]
	max_limit = 64

DICT_PATH and CHAR_FREQ_PATH override the file values; flags override
both. `wordgrep config` creates the default file under
~/.config/wordgrep and prints its location.

# Serve Mode

`wordgrep serve` loads the dictionary once and answers filter queries
as msgpack values over stdin/stdout, for editors and tooling that call
wordgrep repeatedly:

	{"id": "req_001", "t": "d***e", "x": "abc", "k": 10}
*/
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bastiangx/wordgrep/internal/utils"
	"github.com/bastiangx/wordgrep/pkg/config"
	"github.com/bastiangx/wordgrep/pkg/dictionary"
	"github.com/bastiangx/wordgrep/pkg/filter"
	"github.com/bastiangx/wordgrep/pkg/freq"
	"github.com/bastiangx/wordgrep/pkg/server"
)

const (
	Version = "1.2.0"
	AppName = "wordgrep"
	gh      = "https://github.com/bastiangx/wordgrep"
)

var (
	flagConfig string
	flagDebug  bool
	flagDict   string
	flagFreq   string

	grepIgnoreChars string
	grepElsewhere   []string
	grepTopK        int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           AppName,
		Short:         "Grep for word-puzzle answers",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if flagDebug {
				log.SetLevel(log.DebugLevel)
				log.SetReportTimestamp(true)
			} else {
				log.SetLevel(log.WarnLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config.toml")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Toggle debug mode")
	rootCmd.PersistentFlags().StringVar(&flagDict, "dict", "", "Word source path (overrides config and DICT_PATH)")
	rootCmd.PersistentFlags().StringVar(&flagFreq, "freq", "", "Frequency file path (overrides config and CHAR_FREQ_PATH)")

	rootCmd.AddCommand(newGrepCmd())
	rootCmd.AddCommand(newAnalyseCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// resolveConfig layers flags over env over TOML over defaults.
func resolveConfig() *config.Config {
	cfg := config.Resolve(flagConfig)
	if flagDict != "" {
		cfg.Paths.Dictionary = flagDict
	}
	if flagFreq != "" {
		cfg.Paths.Frequency = flagFreq
	}
	log.Debugf("word source: %s", cfg.Paths.Dictionary)
	log.Debugf("frequency file: %s", cfg.Paths.Frequency)
	return cfg
}

func newGrepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grep [pattern]",
		Short: "Filter the word source against puzzle feedback",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGrep,
	}
	cmd.Flags().StringVarP(&grepIgnoreChars, "ignore-chars", "i", "", "Letters known to be absent from the word")
	cmd.Flags().StringArrayVarP(&grepElsewhere, "different-position", "d", nil, "Pattern of a letter present but not at that spot (repeatable)")
	cmd.Flags().IntVarP(&grepTopK, "score-sort", "s", 0, "Print only the K best words by letter frequency")
	return cmd
}

func runGrep(cmd *cobra.Command, args []string) error {
	cfg := resolveConfig()

	target := ""
	if len(args) > 0 {
		target = args[0]
	}
	f := filter.New(
		filter.ParseIgnoreChars(grepIgnoreChars),
		filter.ParsePositions(target),
		filter.ParseElsewhere(grepElsewhere),
	)

	if !cmd.Flags().Changed("score-sort") {
		return streamGrep(cfg, f)
	}
	return rankedGrep(cfg, f, grepTopK)
}

// streamGrep prints accepted words as they are found.
func streamGrep(cfg *config.Config, f *filter.Filter) error {
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	return dictionary.Scan(cfg.Paths.Dictionary, func(word string) error {
		if !f.Accept(strings.ToLower(word)) {
			return nil
		}
		_, err := fmt.Fprintln(out, word)
		return err
	})
}

// rankedGrep scores every accepted word, then prints the best k.
func rankedGrep(cfg *config.Config, f *filter.Filter, k int) error {
	freqs, err := freq.LoadFile(cfg.Paths.Frequency)
	if err != nil {
		return err
	}

	topk := freq.NewTopK()
	err = dictionary.Scan(cfg.Paths.Dictionary, func(word string) error {
		if f.Accept(strings.ToLower(word)) {
			topk.Add(freq.NewWordScore(word, freqs))
		}
		return nil
	})
	if err != nil {
		return err
	}
	log.Debugf("scored %d words", topk.Len())

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for _, ws := range topk.Drain(k) {
		if _, err := fmt.Fprintln(out, ws.Word); err != nil {
			return err
		}
	}
	return nil
}

func newAnalyseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyse",
		Short: "Build the letter frequency table from the word source",
		Args:  cobra.NoArgs,
		RunE:  runAnalyse,
	}
}

func runAnalyse(_ *cobra.Command, _ []string) error {
	cfg := resolveConfig()

	cf := freq.New()
	if err := dictionary.Analyse(cfg.Paths.Dictionary, cf); err != nil {
		return err
	}
	if err := cf.SaveFile(cfg.Paths.Frequency); err != nil {
		return err
	}

	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)
	log.Infof("scanned %s letters", utils.FormatWithCommas(cf.Total()))
	log.Infof("frequency table written to ( %s )", cfg.Paths.Frequency)
	log.SetLevel(currentLevel)
	return nil
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Answer filter queries over msgpack IPC",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := resolveConfig()

	dict, err := dictionary.Load(cfg.Paths.Dictionary)
	if err != nil {
		return err
	}

	// Ranked queries need the table; plain filtering works without it.
	var freqs *freq.CharFreq
	if utils.FileExists(cfg.Paths.Frequency) {
		freqs, err = freq.LoadFile(cfg.Paths.Frequency)
		if err != nil {
			return err
		}
	} else {
		log.Warnf("no frequency file at %s, ranked queries disabled", cfg.Paths.Frequency)
	}

	srv := server.New(dict, freqs, cfg.Server.MaxLimit)
	return srv.Start()
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create the default config file and print its path",
		Args:  cobra.NoArgs,
		RunE:  runConfig,
	}
}

func runConfig(_ *cobra.Command, _ []string) error {
	path, err := config.DefaultConfigPath()
	if err != nil {
		return fmt.Errorf("determine config path: %w", err)
	}
	config.InitConfig(path)
	fmt.Println(path)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show current version",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			showVersion()
		},
	}
}

// showVersion displays the styled version banner.
func showVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ WordGrep ] Greps word-puzzle answers!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}
