package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/statusbox/internal/config"
	"github.com/rileyhilliard/statusbox/internal/errors"
	"github.com/rileyhilliard/statusbox/internal/ui"
	"github.com/spf13/cobra"
)

// Init command flags
var (
	initForce  bool
	initGlobal bool
	initYes    bool
)

// initCmd creates a new .statusbox.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .statusbox.yaml configuration",
	Long: `Initialize a new statusbox configuration file.

Creates a .statusbox.yaml file in the current directory, or the global
~/.config/statusbox/config.yaml with --global. Prompts for the widget texts
and the behaviour of the simulated data source unless --yes is given or the
CI / STATUSBOX_NON_INTERACTIVE environment variables are set.

Examples:
  statusbox init
  statusbox init --yes
  statusbox init --global --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filepath.Join(".", config.ConfigFileName)
		if initGlobal {
			global, err := config.GlobalPath()
			if err != nil {
				return err
			}
			path = global
		}
		return Init(InitOptions{
			Path:           path,
			Overwrite:      initForce,
			NonInteractive: isNonInteractive(initYes),
			Out:            cmd.OutOrStdout(),
		})
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initGlobal, "global", false, "write the global config instead of ./"+config.ConfigFileName)
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "skip prompts and write the defaults")
	rootCmd.AddCommand(initCmd)
}

// InitOptions holds options for the init command.
type InitOptions struct {
	Path           string    // Where to write the config
	Overwrite      bool      // Overwrite existing config without asking
	NonInteractive bool      // Skip prompts, use defaults
	Out            io.Writer // Progress output; defaults to stdout
}

// isNonInteractive reports whether prompts must be skipped.
func isNonInteractive(yes bool) bool {
	return yes || os.Getenv("CI") != "" || os.Getenv("STATUSBOX_NON_INTERACTIVE") != ""
}

// Init creates a new configuration file.
func Init(opts InitOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	status := ui.NewStatusWriter(out)

	// Check for existing config
	if _, err := os.Stat(opts.Path); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", opts.Path),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", opts.Path)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			status.Skip("Config unchanged", "cancelled")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if !opts.NonInteractive {
		answers := newInitAnswers(cfg)
		if err := answers.form().Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility or use --yes")
		}
		if err := answers.apply(cfg); err != nil {
			return err
		}
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}
	if err := config.Write(opts.Path, cfg); err != nil {
		return err
	}

	status.Success("Created " + opts.Path)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	status.Sub("statusbox demo", "try the widgets with these settings")
	status.Sub("statusbox config", "show the effective settings")
	status.Sub("statusbox config set", "change a single key")

	return nil
}

// initAnswers holds the prompt values as text; huh inputs bind to strings.
type initAnswers struct {
	empty      string
	errorHint  string
	retry      string
	loadDelay  string
	pageSize   string
	failEvery  string
	blockInput bool
}

func newInitAnswers(cfg *config.Config) *initAnswers {
	return &initAnswers{
		empty:      cfg.Hints.Empty,
		errorHint:  cfg.Hints.Error,
		retry:      cfg.Hints.Retry,
		loadDelay:  cfg.Demo.LoadDelay.String(),
		pageSize:   strconv.Itoa(cfg.Paging.PageSize),
		failEvery:  strconv.Itoa(cfg.Paging.FailEvery),
		blockInput: cfg.Box.BlockInput,
	}
}

func (a *initAnswers) form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Empty hint").
				Description("Shown when a request succeeds with nothing to show").
				Value(&a.empty),
			huh.NewInput().
				Title("Error hint").
				Description("Shown when an error carries no message of its own").
				Value(&a.errorHint),
			huh.NewInput().
				Title("Retry hint").
				Description("Shown on list rows whose page failed to load").
				Value(&a.retry).
				Validate(required("retry hint")),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Simulated load time").
				Description("How long the demo loads take (e.g. 500ms, 2s)").
				Value(&a.loadDelay).
				Validate(validDuration),
			huh.NewInput().
				Title("Page size").
				Description("Items per page in the list demos").
				Value(&a.pageSize).
				Validate(validCount(1)),
			huh.NewInput().
				Title("Fail every Nth page load").
				Description("0 never fails; 3 fails every third load so you can try retry").
				Value(&a.failEvery).
				Validate(validCount(0)),
			huh.NewConfirm().
				Title("Block input while loading?").
				Value(&a.blockInput),
		),
	)
}

// apply copies validated answers into cfg.
func (a *initAnswers) apply(cfg *config.Config) error {
	for _, check := range []error{
		required("retry hint")(a.retry),
		validDuration(a.loadDelay),
		validCount(1)(a.pageSize),
		validCount(0)(a.failEvery),
	} {
		if check != nil {
			return errors.WrapWithCode(check, errors.ErrConfig, "Invalid answer", "Run 'statusbox init' again")
		}
	}

	delay, _ := time.ParseDuration(strings.TrimSpace(a.loadDelay))
	pageSize, _ := strconv.Atoi(strings.TrimSpace(a.pageSize))
	failEvery, _ := strconv.Atoi(strings.TrimSpace(a.failEvery))

	cfg.Hints.Empty = a.empty
	cfg.Hints.Error = a.errorHint
	cfg.Hints.Retry = a.retry
	cfg.Demo.LoadDelay = delay
	cfg.Paging.Delay = delay
	cfg.Paging.PageSize = pageSize
	cfg.Paging.FailEvery = failEvery
	cfg.Box.BlockInput = a.blockInput
	return nil
}

func required(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

func validDuration(s string) error {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("not a duration: %q", s)
	}
	if d < 0 {
		return fmt.Errorf("duration can't be negative")
	}
	return nil
}

func validCount(least int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("not a whole number: %q", s)
		}
		if n < least {
			return fmt.Errorf("must be at least %d", least)
		}
		return nil
	}
}
