// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/wordfreq/internal/frequency"
)

var stopwordsCmd = &cobra.Command{
	Use:   "stopwords",
	Short: "Print the active stop words",
	Long: `Stopwords prints the stop-word set used for counting, one word per line in
sorted order. It reflects the built-in English list plus any words added
through analysis.stop_words, analysis.stop_words_file, or --stop-words.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(viper.GetViper())
		if err != nil {
			return err
		}
		analyzer, err := frequency.NewAnalyzer(cfg.Analysis)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, w := range analyzer.StopWords().Sorted() {
			fmt.Fprintln(out, w)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stopwordsCmd)
}
