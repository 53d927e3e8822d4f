// Package main provides the CLI entrypoint for galley.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/inkform/galley/internal/config"
	"github.com/inkform/galley/internal/metrics"
	"github.com/inkform/galley/internal/model"
	"github.com/inkform/galley/internal/report"
	"github.com/inkform/galley/internal/statsui"
	"github.com/inkform/galley/internal/stopwords"
	"github.com/inkform/galley/internal/store"
	"github.com/inkform/galley/internal/syllable"
	"github.com/inkform/galley/internal/tui"
)

const defaultHistoryWindow = 1

var (
	editorLimit      string
	editorLimitValue int
	editorWPM        int
	editorTitle      string

	countWPM int

	statsPlain     bool
	statsTop       int
	statsWPM       int
	statsStopWords string

	snapshotsTitle string
	snapshotsSince string
	snapshotsLast  int

	historyTitle  string
	historySince  string
	historyLast   int
	historyWindow int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "galley [file]",
		Short:         "Terminal drafting pad with live text metrics",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runEditorCmd,
	}

	rootCmd.Flags().StringVar(&editorLimit, "limit", "", "limit kind: words, characters, or paragraphs")
	rootCmd.Flags().IntVar(&editorLimitValue, "limit-value", 0, "limit threshold")
	rootCmd.Flags().IntVar(&editorWPM, "wpm", metrics.DefaultWordsPerMinute, "reading speed for estimates")
	rootCmd.Flags().StringVar(&editorTitle, "title", "", "snapshot title (default: file name)")

	rootCmd.AddCommand(newCountCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newSnapshotsCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runEditorCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "limit", &editorLimit, fileCfg.Editor.Limit)
	applyIntConfig(cmd, "limit-value", &editorLimitValue, fileCfg.Editor.LimitValue)
	applyIntConfig(cmd, "wpm", &editorWPM, fileCfg.Editor.WPM)

	cfg := model.EditorConfig{
		LimitKind:      editorLimit,
		LimitValue:     editorLimitValue,
		WordsPerMinute: editorWPM,
		Title:          editorTitle,
	}
	if err := validateEditorConfig(cfg); err != nil {
		return err
	}

	path := ""
	initial := ""
	if len(args) > 0 && args[0] != "" {
		if args[0] == "-" {
			return fmt.Errorf("the editor needs a file path (use 'galley count -' for stdin)")
		}
		path = args[0]
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		initial = string(data)
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	editor, err := tui.NewModel(cfg, st, path, initial)
	if err != nil {
		return err
	}
	program := tea.NewProgram(editor, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func validateEditorConfig(cfg model.EditorConfig) error {
	if cfg.LimitKind != "" {
		if _, err := metrics.ParseLimitKind(cfg.LimitKind); err != nil {
			return fmt.Errorf("invalid --limit value: %w", err)
		}
		if cfg.LimitValue < 0 {
			return fmt.Errorf("--limit-value must be >= 0")
		}
	}
	if cfg.WordsPerMinute <= 0 {
		return fmt.Errorf("--wpm must be > 0")
	}
	return nil
}

func newCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count [file]",
		Short: "Print counts for a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCountCmd,
	}
	cmd.Flags().IntVar(&countWPM, "wpm", metrics.DefaultWordsPerMinute, "reading speed for estimates")
	return cmd
}

func runCountCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "wpm", &countWPM, fileCfg.Stats.WPM)

	text, err := readInput(args)
	if err != nil {
		return err
	}
	counts := metrics.CountAll(text)
	reading, err := metrics.EstimateReadingTime(counts.Words, countWPM)
	if err != nil {
		return fmt.Errorf("invalid --wpm value: %w", err)
	}
	return report.RenderCounts(cmd.OutOrStdout(), counts, reading)
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Show word statistics and readability",
		Long:  "Show counts, word statistics, and readability scores for a file or stdin.\nReading from stdin implies --plain.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runStatsCmd,
	}
	cmd.Flags().BoolVar(&statsPlain, "plain", false, "print a plain report instead of the TUI")
	cmd.Flags().IntVar(&statsTop, "top", metrics.DefaultTopWords, "rows in the top-words table")
	cmd.Flags().IntVar(&statsWPM, "wpm", metrics.DefaultWordsPerMinute, "reading speed for estimates")
	cmd.Flags().StringVar(&statsStopWords, "stopwords", "", "path to a stop-word list (one word per line)")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "top", &statsTop, fileCfg.Stats.TopWords)
	applyIntConfig(cmd, "wpm", &statsWPM, fileCfg.Stats.WPM)
	applyStringConfig(cmd, "stopwords", &statsStopWords, fileCfg.Stats.StopWords)
	if statsTop <= 0 {
		return fmt.Errorf("--top must be > 0")
	}

	var stopSet map[string]struct{}
	if statsStopWords != "" {
		stopSet, err = stopwords.LoadFile(statsStopWords)
		if err != nil {
			return fmt.Errorf("failed to load stop words: %w", err)
		}
	}

	text, err := readInput(args)
	if err != nil {
		return err
	}

	// The TUI cannot read keys when the text came over stdin.
	if statsPlain || len(args) == 0 || args[0] == "-" {
		return renderPlainStats(cmd.OutOrStdout(), text, stopSet)
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	cfg := model.StatsConfig{
		TopWords:       statsTop,
		WordsPerMinute: statsWPM,
		StopWordsPath:  statsStopWords,
	}
	window := defaultHistoryWindow
	if fileCfg.Stats.Window != nil && *fileCfg.Stats.Window > 0 {
		window = *fileCfg.Stats.Window
	}
	dash := statsui.NewModel(st, cfg, window, text, stopSet)
	program := tea.NewProgram(dash, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	return nil
}

func renderPlainStats(w io.Writer, text string, stopSet map[string]struct{}) error {
	counts := metrics.CountAll(text)
	reading, err := metrics.EstimateReadingTime(counts.Words, statsWPM)
	if err != nil {
		return fmt.Errorf("invalid --wpm value: %w", err)
	}
	if err := report.RenderCounts(w, counts, reading); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	stats := metrics.AnalyzeStatisticsWithStopWords(text, statsTop, stopSet)
	if err := report.RenderStatistics(w, stats); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	scores, ok := metrics.AnalyzeReadability(text, syllable.Estimate)
	return report.RenderReadability(w, scores, ok)
}

func newSnapshotsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshots",
		Short: "List saved snapshots",
		Args:  cobra.NoArgs,
		RunE:  runSnapshotsCmd,
	}
	cmd.Flags().StringVar(&snapshotsTitle, "title", "", "title filter")
	cmd.Flags().StringVar(&snapshotsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&snapshotsLast, "last", 0, "limit to last N snapshots")
	return cmd
}

func runSnapshotsCmd(cmd *cobra.Command, _ []string) error {
	since, err := parseSince(snapshotsSince)
	if err != nil {
		return err
	}
	filter := model.SnapshotFilter{
		Title: snapshotsTitle,
		Since: since,
		Last:  snapshotsLast,
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	snaps, err := st.ListSnapshots(context.Background(), filter)
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}
	return report.RenderSnapshots(cmd.OutOrStdout(), report.LastN(snaps, filter.Last))
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show word-count history",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historyTitle, "title", "", "title filter")
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N snapshots")
	cmd.Flags().IntVar(&historyWindow, "window", defaultHistoryWindow, "moving average window")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "window", &historyWindow, fileCfg.Stats.Window)

	since, err := parseSince(historySince)
	if err != nil {
		return err
	}
	cfg := model.HistoryConfig{
		Title:  historyTitle,
		Since:  since,
		Last:   historyLast,
		Window: historyWindow,
	}
	if cfg.Window < 1 {
		return fmt.Errorf("--window must be >= 1")
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	snaps, err := st.ListSnapshots(context.Background(), model.SnapshotFilter{Title: cfg.Title, Since: cfg.Since, Last: cfg.Last})
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}
	return report.RenderHistory(cmd.OutOrStdout(), report.LastN(snaps, cfg.Last), cfg.Window, 0)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}

func parseSince(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid --since value: %w", err)
	}
	return &parsed, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# galley configuration
# Uncomment a value to enable it. CLI flags override config values.

[editor]
# limit = "words"        # Limit kind: words, characters, or paragraphs
# limit-value = 500      # Limit threshold
# wpm = %d              # Reading speed for estimates

[stats]
# top-words = %d         # Rows in the top-words table
# wpm = %d              # Reading speed for estimates
# stopwords = ""         # Path to a stop-word list, one word per line
# window = %d             # Moving average window for history
`,
		metrics.DefaultWordsPerMinute,
		metrics.DefaultTopWords,
		metrics.DefaultWordsPerMinute,
		defaultHistoryWindow,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
