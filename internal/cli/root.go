package cli

import (
	goerrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/rileyhilliard/statusbox/internal/config"
	"github.com/rileyhilliard/statusbox/internal/demo"
	"github.com/rileyhilliard/statusbox/internal/errors"
	"github.com/rileyhilliard/statusbox/internal/ui"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile string
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "statusbox",
	Short: "Status boxes and paged lists for Bubble Tea",
	Long: `statusbox renders request state (initial, empty, error, success) with an
optional loading overlay, and paged lists with their loading and retry rows.

Run 'statusbox demo' to try the widgets, and 'statusbox init' to write a
config file that tunes their texts and the simulated data source.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	cobra.OnInitialize(initColors)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .statusbox.yaml, then ~/.config/statusbox/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// initColors honours --no-color and the NO_COLOR convention.
func initColors() {
	if noColor || os.Getenv("NO_COLOR") != "" {
		ui.DisableColors()
	}
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

// formatError renders err for the terminal. Structured errors print as they
// are; cobra's usage errors get a suggestion.
func formatError(err error) string {
	var sbErr *errors.Error
	if goerrors.As(err, &sbErr) {
		return sbErr.Error()
	}

	if isUnknownCommandError(err) {
		suggestion := "Run 'statusbox --help' for usage"
		if name := extractUnknownCommand(err); name != "" {
			if _, ok := demo.FindDemo(name); ok {
				suggestion = fmt.Sprintf("Did you mean 'statusbox demo %s'?", name)
			}
		}
		return errors.New(errors.ErrDemo, err.Error(), suggestion).Error()
	}

	return errors.Wrap(err, "Command failed").Error()
}

// isUnknownCommandError reports whether err is cobra's unknown command or
// unknown flag error.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag")
}

// extractUnknownCommand pulls the command name out of
// `unknown command "foo" for "statusbox"`.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}

// loadConfig finds, loads and validates the config for the --config flag.
// The returned path is empty when only defaults and environment apply.
func loadConfig() (*config.Config, string, error) {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, "", err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}
