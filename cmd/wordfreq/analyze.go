// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/wordfreq/internal/container"
	"github.com/pdiddy/wordfreq/internal/extract"
	"github.com/pdiddy/wordfreq/internal/frequency"
	"github.com/pdiddy/wordfreq/internal/history"
	"github.com/pdiddy/wordfreq/internal/pipeline"
	"github.com/pdiddy/wordfreq/internal/report"
	"github.com/pdiddy/wordfreq/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [documents...]",
	Short: "Rank the most frequent words of one or more documents",
	Long: `Analyze extracts the text of each document, counts its words while skipping
stop words, and writes a result file named
<prefix>_<document>_<YYYYMMDD_HHMMSS>.txt to the output directory.

Documents may be Word (.docx), plain text, Markdown, or HTML files, or
http(s) URLs. PDF and other office formats need docker or podman with the
markitdown image. A failing document does not stop the batch, but the
command exits non-zero when any document failed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolP("quiet", "q", false, "do not echo result tables")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	console := out
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		console = io.Discard
	}

	p, closeFn, err := buildPipeline(cmd.Context(), cmd, cfg, console, args)
	if err != nil {
		return err
	}
	defer closeFn()

	result := p.AnalyzeBatch(cmd.Context(), args, out)
	if result.HasFailures() {
		return fmt.Errorf("%d document(s) failed analysis", result.Failed)
	}
	return nil
}

// buildPipeline wires extraction, analysis, reporting, and history from cfg.
// The container backend is only probed when one of refs needs it. The
// returned function closes the history store.
func buildPipeline(ctx context.Context, cmd *cobra.Command, cfg types.Config, console io.Writer, refs []string) (*pipeline.Pipeline, func(), error) {
	analyzer, err := frequency.NewAnalyzer(cfg.Analysis)
	if err != nil {
		return nil, nil, err
	}
	reporter, err := report.New(cfg.Report, console)
	if err != nil {
		return nil, nil, err
	}

	registry := extract.NewRegistry(cfg.Extraction)
	if !cfg.Extraction.DisableContainer && needsContainer(refs) {
		registerContainer(ctx, registry, cfg.Extraction.ContainerImage)
	}
	fetcher := extract.NewFetcher(cfg.Extraction.HTTP)

	noHistory, _ := cmd.Flags().GetBool("no-history")
	if !cfg.History.Enabled || noHistory {
		return pipeline.New(registry, fetcher, analyzer, reporter, nil), func() {}, nil
	}

	store, err := history.NewStore(cfg.History)
	if err != nil {
		log.Warn().Err(err).Msg("run history disabled")
		return pipeline.New(registry, fetcher, analyzer, reporter, nil), func() {}, nil
	}
	closeFn := func() {
		if err := store.Close(); err != nil {
			log.Warn().Err(err).Msg("closing history database")
		}
	}
	return pipeline.New(registry, fetcher, analyzer, reporter, store), closeFn, nil
}

func needsContainer(refs []string) bool {
	for _, ref := range refs {
		if extract.Detect(ref) == types.FormatContainer {
			return true
		}
	}
	return false
}

// registerContainer adds the markitdown backend when a container runtime
// and the image are available. Without them those formats fail with a
// "no extractor" error at extraction time.
func registerContainer(ctx context.Context, registry *extract.Registry, image string) {
	rt, err := container.DetectRuntime(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("container backend unavailable")
		return
	}
	ce, err := extract.NewContainerExtractor(ctx, rt, image)
	if err != nil {
		log.Warn().Err(err).Msg("container backend unavailable")
		return
	}
	registry.Register(types.FormatContainer, ce)
	log.Debug().Str("runtime", rt.Name()).Str("image", image).Msg("container backend enabled")
}
