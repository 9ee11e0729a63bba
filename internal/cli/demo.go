package cli

import (
	"os"
	"time"

	"github.com/rileyhilliard/statusbox/internal/config"
	"github.com/rileyhilliard/statusbox/internal/demo"
	"github.com/rileyhilliard/statusbox/internal/errors"
	"github.com/rileyhilliard/statusbox/internal/logger"
	"github.com/rileyhilliard/statusbox/internal/ui"
	"github.com/spf13/cobra"
)

// Demo flags, shared by every demo subcommand.
var (
	demoFailEvery    int
	demoDelay        time.Duration
	demoBlockInput   bool
	demoPlaceholders bool
	demoDebugLog     string
)

// demoCmd opens the demo app on its home menu
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Open the interactive demos",
	Long: `Open the interactive demos of the status box and the paged lists.

Without a subcommand a menu lists every demo; esc goes back to it and q quits.
With a subcommand the demo opens directly and esc quits.

Flags override the matching config keys for this run only.

Examples:
  statusbox demo
  statusbox demo box --block-input
  statusbox demo append --fail-every 3 --placeholders
  STATUSBOX_DEBUG=1 statusbox demo prepend --debug-log /tmp/statusbox.log`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd, demo.HomeID)
	},
}

func init() {
	for _, d := range demo.Demos() {
		demoCmd.AddCommand(&cobra.Command{
			Use:   d.ID,
			Short: d.Name,
			Long:  d.Name + "\n\n" + d.Description + ".",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runDemo(cmd, d.ID)
			},
		})
	}

	f := demoCmd.PersistentFlags()
	f.IntVar(&demoFailEvery, "fail-every", 0, "make every Nth page load fail (overrides paging.fail_every)")
	f.DurationVar(&demoDelay, "delay", 0, "simulated load time (overrides demo.load_delay and paging.delay)")
	f.BoolVar(&demoBlockInput, "block-input", false, "swallow input while loading (overrides box.block_input)")
	f.BoolVar(&demoPlaceholders, "placeholders", false, "show placeholder rows while a page loads (overrides paging.placeholders)")
	f.StringVar(&demoDebugLog, "debug-log", "", "log file used when STATUSBOX_DEBUG is set (default "+logger.DefaultLogFile+")")

	rootCmd.AddCommand(demoCmd)
}

// runDemo opens the demo app on the screen with id.
func runDemo(cmd *cobra.Command, id string) error {
	if !ui.IsTerminal(os.Stdout) {
		return errors.NewNotTerminal("statusbox demo")
	}

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	applyDemoFlags(cmd, cfg)
	if err := config.Validate(cfg); err != nil {
		return err
	}

	log := logger.Noop()
	if logger.DebugEnabled() {
		f, err := logger.ToFile(demoDebugLog)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot open the debug log",
				"Point --debug-log at a writable file")
		}
		defer f.Close()
		log = logger.NewEnvLogger("[demo]")
		log.Info("starting demo %q", id)
	}

	return demo.Run(demo.NewEnv(cfg, log), id)
}

// applyDemoFlags copies the demo flags that were set on the command line
// into cfg.
func applyDemoFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("fail-every") {
		cfg.Paging.FailEvery = demoFailEvery
	}
	if flags.Changed("delay") {
		cfg.Demo.LoadDelay = demoDelay
		cfg.Paging.Delay = demoDelay
	}
	if flags.Changed("block-input") {
		cfg.Box.BlockInput = demoBlockInput
	}
	if flags.Changed("placeholders") {
		cfg.Paging.Placeholders = demoPlaceholders
	}
}
