package cli

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/rileyhilliard/statusbox/internal/config"
	"github.com/rileyhilliard/statusbox/internal/errors"
	"github.com/rileyhilliard/statusbox/internal/ui"
	"github.com/spf13/cobra"
)

var configKeysFlag bool

// configCmd prints the effective configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the configuration statusbox runs with: the config file merged over
the defaults, with STATUSBOX_* environment overrides applied.

Examples:
  statusbox config
  statusbox config --keys
  STATUSBOX_PAGING_FAIL_EVERY=2 statusbox config --keys`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showConfig(cmd.OutOrStdout(), configKeysFlag)
	},
}

// configSetCmd edits a single key of the config file
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one key in the config file",
	Long: `Set a dotted key in the config file, keeping its comments and layout.
The file is validated after the change and restored if the value is invalid.

Examples:
  statusbox config set paging.fail_every 3
  statusbox config set hints.empty "Nothing here yet"
  statusbox config set demo.load_delay 500ms`,
	Args: cobra.ExactArgs(2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return config.Keys(), cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return setConfig(cmd.OutOrStdout(), args[0], args[1])
	},
}

// configPathCmd prints which config file is in use
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Find(cfgFile)
		if err != nil {
			return err
		}
		if path == "" {
			return errors.New(errors.ErrConfig,
				"No config file found",
				"Run 'statusbox init' to create one")
		}
		cmd.Println(path)
		return nil
	},
}

func init() {
	configCmd.Flags().BoolVar(&configKeysFlag, "keys", false, "list every key with its value and environment variable")
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// showConfig writes the effective config as YAML, or as a key table.
func showConfig(w io.Writer, keys bool) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}

	if keys {
		rows, err := configRows(cfg)
		if err != nil {
			return err
		}
		fmt.Fprint(w, ui.RenderConfigTable(rows))
		return nil
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	source := path
	if source == "" {
		source = "built-in defaults"
	}
	fmt.Fprintf(w, "# source: %s\n", source)
	_, err = w.Write(data)
	return err
}

// configRows lists every key of cfg, marking values that differ from the
// defaults.
func configRows(cfg *config.Config) ([]ui.ConfigRow, error) {
	values, err := config.Values(cfg)
	if err != nil {
		return nil, err
	}
	defaults, err := config.Values(config.DefaultConfig())
	if err != nil {
		return nil, err
	}

	keys := config.Keys()
	sort.Strings(keys)

	rows := make([]ui.ConfigRow, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, ui.ConfigRow{
			Key:        key,
			Value:      values[key],
			Env:        config.EnvVar(key),
			Overridden: values[key] != defaults[key],
		})
	}
	return rows, nil
}

// setConfig writes key=value into the config file in use, restoring the
// previous contents if the result does not validate.
func setConfig(w io.Writer, key, value string) error {
	path, err := config.Find(cfgFile)
	if err != nil {
		return err
	}
	if path == "" {
		return errors.New(errors.ErrConfig,
			"No config file found",
			"Run 'statusbox init' first, or pass --config")
	}

	original, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file: "+path,
			"Check file permissions")
	}

	if err := config.Set(path, key, value); err != nil {
		return err
	}

	cfg, err := config.Load(path)
	if err == nil {
		err = config.Validate(cfg)
	}
	if err != nil {
		if restoreErr := os.WriteFile(path, original, 0644); restoreErr != nil {
			return errors.WrapWithCode(restoreErr, errors.ErrConfig,
				"Failed to restore "+path+" after an invalid change",
				"Fix the file by hand")
		}
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Invalid value for %s: %s", key, value),
			"The config file was left unchanged")
	}

	ui.NewStatusWriter(w).Success(fmt.Sprintf("Set %s = %s in %s", key, value, path))
	return nil
}
