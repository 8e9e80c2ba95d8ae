// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/wordfreq/internal/frequency"
	"github.com/pdiddy/wordfreq/internal/history"
	"github.com/pdiddy/wordfreq/internal/report"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect past analyses (list, show, lookup, export, prune)",
	Long: `History queries the SQLite database of completed analyses kept in
history.dir (default .wordfreq/history.db). Every successful analysis is
recorded unless history.enabled is false or --no-history is given.`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.List(cmd.Context(), limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return writeJSON(out, runs)
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded.")
		return nil
	}

	fmt.Fprintf(out, "%-5s  %-19s  %-8s  %-8s  %s\n", "ID", "Generated", "Tokens", "Distinct", "Source")
	fmt.Fprintln(out, strings.Repeat("-", 80))
	for _, r := range runs {
		fmt.Fprintf(out, "%-5d  %-19s  %-8d  %-8d  %s\n",
			r.ID, r.GeneratedAt.Local().Format("2006-01-02 15:04:05"), r.TotalTokens, r.DistinctTokens, r.Source)
	}
	fmt.Fprintf(out, "\n%d runs\n", len(runs))
	return nil
}

// --- show subcommand ---

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print the ranked table of a recorded run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run id %q", args[0])
	}

	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.Get(cmd.Context(), id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return writeJSON(out, run)
	}
	fmt.Fprintf(out, "Source: %s\nResult: %s\n\n", run.Source, run.ResultFile)
	return report.WriteTable(out, run.Words)
}

// --- lookup subcommand ---

var historyLookupCmd = &cobra.Command{
	Use:   "lookup <word>",
	Short: "Show the runs in which a word was ranked",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryLookup,
}

func runHistoryLookup(cmd *cobra.Command, args []string) error {
	word := strings.TrimSpace(frequency.Normalize(args[0]))

	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	occ, err := store.Lookup(cmd.Context(), word, limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return writeJSON(out, occ)
	}
	if len(occ) == 0 {
		fmt.Fprintf(out, "%q was not ranked in any recorded run.\n", word)
		return nil
	}

	fmt.Fprintf(out, "%-5s  %-19s  %-4s  %-6s  %s\n", "Run", "Generated", "Rank", "Count", "Source")
	fmt.Fprintln(out, strings.Repeat("-", 80))
	for _, o := range occ {
		fmt.Fprintf(out, "%-5d  %-19s  %-4d  %-6d  %s\n",
			o.RunID, o.GeneratedAt.Local().Format("2006-01-02 15:04:05"), o.Rank, o.Count, o.Source)
	}
	return nil
}

// --- export subcommand ---

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded runs with their words to YAML or JSON",
	Args:  cobra.NoArgs,
	RunE:  runHistoryExport,
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	if output == "" || output == "-" {
		return store.Export(cmd.Context(), cmd.OutOrStdout(), format, limit)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	if err := store.Export(cmd.Context(), f, format, limit); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", output)
	return nil
}

// --- prune subcommand ---

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete all but the most recent runs",
	Args:  cobra.NoArgs,
	RunE:  runHistoryPrune,
}

func runHistoryPrune(cmd *cobra.Command, args []string) error {
	keep, _ := cmd.Flags().GetInt("keep")

	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	removed, err := store.Prune(cmd.Context(), keep)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d run(s), kept at most %d\n", removed, keep)
	return nil
}

// --- shared helpers ---

func openHistory() (*history.Store, error) {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return nil, err
	}
	return history.NewStore(cfg.History)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	historyCmd.PersistentFlags().Bool("json", false, "output as JSON")

	historyListCmd.Flags().Int("limit", 0, "maximum runs to list (default history.max_results)")
	historyLookupCmd.Flags().Int("limit", 0, "maximum runs to list (default history.max_results)")

	historyExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	historyExportCmd.Flags().StringP("output", "o", "", "write to this file instead of stdout")
	historyExportCmd.Flags().Int("limit", 0, "maximum runs to export (default all)")

	historyPruneCmd.Flags().Int("keep", 50, "number of most recent runs to keep")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyLookupCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyPruneCmd)
	rootCmd.AddCommand(historyCmd)
}
