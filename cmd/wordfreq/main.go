// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the wordfreq CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the wordfreq CLI. Without arguments it
// runs the interactive prompt; with arguments it behaves like analyze.
var rootCmd = &cobra.Command{
	Use:   "wordfreq [documents...]",
	Short: "Count the most frequent words in English documents",
	Long: `wordfreq reads a Word document (or plain text, Markdown, HTML, or a URL),
counts its words while skipping common English stop words, and writes the
ranked table to a timestamped result file.

Run without arguments for the interactive prompt: drop a document onto the
terminal window and press Enter.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		setupLogging(verbose)
	},
	RunE: runPrompt,
}

func init() {
	cobra.OnInitialize(initConfig)
	setDefaults(viper.GetViper())

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./wordfreq.yaml or ~/.config/wordfreq/wordfreq.yaml)")
	pf.BoolP("verbose", "v", false, "enable debug logging")
	pf.IntP("top", "n", defaultTopN, "number of ranked words to report (negative for all)")
	pf.String("output-dir", defaultOutputDir, "directory for result files")
	pf.StringSlice("format", []string{defaultFormat}, "report formats: text, yaml, json, pdf")
	pf.StringSlice("stop-words", nil, "additional stop words")
	pf.Bool("no-history", false, "do not record this run in the history database")

	bindFlag(pf.Lookup("top"), "analysis.top_n")
	bindFlag(pf.Lookup("output-dir"), "report.output_dir")
	bindFlag(pf.Lookup("format"), "report.formats")
	bindFlag(pf.Lookup("stop-words"), "analysis.stop_words")

	rootCmd.Flags().Bool("no-wait", false, "exit without waiting for Enter in interactive mode")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("wordfreq")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "wordfreq"))
		}
	}

	viper.SetEnvPrefix("WORDFREQ")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.Debug().Str("file", viper.ConfigFileUsed()).Msg("using config file")
	} else if cfgFile != "" {
		log.Warn().Err(err).Str("file", cfgFile).Msg("could not read config file")
	}
}

func setupLogging(verbose bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
