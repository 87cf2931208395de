// Package main provides the CLI entrypoint for linetype.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/linetype/internal/config"
	"github.com/verte-zerg/linetype/internal/layout"
	"github.com/verte-zerg/linetype/internal/logging"
	"github.com/verte-zerg/linetype/internal/model"
	"github.com/verte-zerg/linetype/internal/session"
	"github.com/verte-zerg/linetype/internal/source"
	"github.com/verte-zerg/linetype/internal/stats"
	"github.com/verte-zerg/linetype/internal/tui"
)

const (
	defaultWidthRatio = 0.8
	defaultColumns    = 80
	defaultLogLevel   = "debug"
)

var (
	practiceWidthRatio float64
	practiceWidth      int
	practiceSymbols    string
	practiceLogFile    string
	practiceLogLevel   string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "linetype <file|text>",
		Short: "Terminal typing practice",
		Long: `Type a text wrapped to the terminal width and get time, speed and error rate.

The argument is read as a file when such a file exists, otherwise it is the text itself.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().Float64Var(&practiceWidthRatio, "width-ratio", defaultWidthRatio, "share of terminal columns used for the text (0-1]")
	rootCmd.Flags().IntVar(&practiceWidth, "width", 0, "text width in columns (overrides --width-ratio)")
	rootCmd.Flags().StringVar(&practiceSymbols, "symbols", session.DefaultSymbols, "punctuation accepted besides letters and digits")
	rootCmd.Flags().StringVar(&practiceLogFile, "log-file", "", "diagnostic log file (disabled when empty)")
	rootCmd.Flags().StringVar(&practiceLogLevel, "log-level", defaultLogLevel, "diagnostic log level")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		_, err := fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
		return err
	}

	cfg, err := loadPracticeConfig(cmd)
	if err != nil {
		return err
	}

	text, err := source.Load(args[0])
	if err != nil {
		return err
	}
	width := resolveWidth(cfg, terminalColumns())
	lines, err := layout.Build(text, width)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeLog(); cerr != nil {
			logErrf("failed to close log: %v\n", cerr)
		}
	}()
	logger.Info().Int("width", width).Int("lines", len(lines)).Msg("layout ready")

	s := session.New(lines, session.KeyPolicy{Symbols: cfg.Symbols}, nil)
	metrics, finished, err := runSessions(s, cfg.Theme, logger)
	if err != nil {
		return err
	}
	if finished {
		return stats.RenderSummary(cmd.OutOrStdout(), metrics)
	}
	return nil
}

// runSessions runs the typing screen until the user declines to try again.
func runSessions(s *session.Session, theme model.Theme, logger zerolog.Logger) (stats.Metrics, bool, error) {
	for attempt := 1; ; attempt++ {
		logger.Info().Int("attempt", attempt).Msg("session ready")
		m := tui.NewModel(s, theme, logger)
		program := tea.NewProgram(m, tea.WithAltScreen())
		final, err := program.Run()
		if err != nil {
			return stats.Metrics{}, false, fmt.Errorf("failed to run TUI: %w", err)
		}
		result, ok := final.(*tui.Model)
		if !ok {
			return stats.Metrics{}, false, nil
		}
		if !result.Retry() {
			return result.Metrics(), result.Finished(), nil
		}
		s.Restart()
	}
}

func loadPracticeConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyFloatConfig(cmd, "width-ratio", &practiceWidthRatio, fileCfg.Practice.WidthRatio)
	applyIntConfig(cmd, "width", &practiceWidth, fileCfg.Practice.Width)
	applyStringConfig(cmd, "symbols", &practiceSymbols, fileCfg.Practice.Symbols)
	applyStringConfig(cmd, "log-file", &practiceLogFile, fileCfg.Log.File)
	applyStringConfig(cmd, "log-level", &practiceLogLevel, fileCfg.Log.Level)

	cfg := model.Config{
		WidthRatio: practiceWidthRatio,
		Width:      practiceWidth,
		Symbols:    practiceSymbols,
		LogFile:    expandHome(practiceLogFile),
		LogLevel:   practiceLogLevel,
		Theme:      themeFromFile(fileCfg.Theme),
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg model.Config) error {
	if cfg.WidthRatio <= 0 || cfg.WidthRatio > 1 {
		return fmt.Errorf("--width-ratio must be in (0, 1]")
	}
	if cfg.Width < 0 {
		return fmt.Errorf("--width must be >= 0")
	}
	if !strings.Contains(cfg.Symbols, " ") {
		return fmt.Errorf("--symbols must include a space")
	}
	return nil
}

func resolveWidth(cfg model.Config, columns int) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	width := int(float64(columns) * cfg.WidthRatio)
	if width < 1 {
		width = 1
	}
	return width
}

func terminalColumns() int {
	columns, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || columns <= 0 {
		return defaultColumns
	}
	return columns
}

func themeFromFile(fileTheme config.ThemeConfig) model.Theme {
	theme := model.DefaultTheme()
	applyString(&theme.Correct, fileTheme.Correct)
	applyString(&theme.Incorrect, fileTheme.Incorrect)
	applyString(&theme.Untyped, fileTheme.Untyped)
	applyString(&theme.Next, fileTheme.Next)
	return theme
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
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
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	theme := model.DefaultTheme()
	return fmt.Sprintf(`# linetype configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# width-ratio = %.2f      # Share of terminal columns used for the text (0-1]
# width = 0               # Text width in columns; 0 uses width-ratio
# symbols = %q  # Punctuation accepted besides letters and digits

[log]
# file = %q
# level = %q

[theme]
# correct = %q
# incorrect = %q
# untyped = %q
# next = %q
`,
		defaultWidthRatio,
		session.DefaultSymbols,
		config.DefaultLogPath(),
		defaultLogLevel,
		theme.Correct,
		theme.Incorrect,
		theme.Untyped,
		theme.Next,
	)
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

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyString(target, value *string) {
	if value == nil || *value == "" {
		return
	}
	*target = *value
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
