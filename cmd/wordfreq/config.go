// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/wordfreq/internal/extract"
	"github.com/pdiddy/wordfreq/internal/frequency"
	"github.com/pdiddy/wordfreq/internal/history"
	"github.com/pdiddy/wordfreq/internal/report"
	"github.com/pdiddy/wordfreq/pkg/types"
)

const (
	defaultTopN        = frequency.DefaultTopN
	defaultOutputDir   = "."
	defaultFormat      = string(types.ReportText)
	defaultTimeout     = 60 * time.Second
	defaultMaxRetries  = 5
	defaultMaxFileSize = 50 << 20
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("extraction.http.timeout", defaultTimeout)
	v.SetDefault("extraction.http.user_agent", "wordfreq/"+version)
	v.SetDefault("extraction.http.max_retries", defaultMaxRetries)
	v.SetDefault("extraction.max_file_size", defaultMaxFileSize)
	v.SetDefault("extraction.container_image", extract.DefaultContainerImage)
	v.SetDefault("extraction.disable_container", false)

	v.SetDefault("analysis.top_n", defaultTopN)
	v.SetDefault("analysis.min_length", frequency.DefaultMinLength)
	v.SetDefault("analysis.stop_words", []string{})
	v.SetDefault("analysis.stop_words_file", "")
	v.SetDefault("analysis.replace_stop_words", false)
	v.SetDefault("analysis.fold_diacritics", false)

	v.SetDefault("report.output_dir", defaultOutputDir)
	v.SetDefault("report.prefix", report.DefaultPrefix)
	v.SetDefault("report.formats", []string{defaultFormat})

	v.SetDefault("history.enabled", true)
	v.SetDefault("history.dir", history.DefaultDir)
	v.SetDefault("history.max_results", 20)
}

func bindFlag(f *pflag.Flag, key string) {
	if err := viper.BindPFlag(key, f); err != nil {
		log.Fatal().Err(err).Str("key", key).Msg("binding flag")
	}
}

// loadConfig resolves defaults, the config file, WORDFREQ_* environment
// variables, and flags into a Config.
func loadConfig(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding configuration: %w", err)
	}
	return cfg, nil
}
