package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/statusbox/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".statusbox.yaml"
	// GlobalConfigDir is the directory for global config, relative to home.
	GlobalConfigDir = ".config/statusbox"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix prefixes environment overrides, e.g. STATUSBOX_PAGING_FAIL_EVERY.
	EnvPrefix = "STATUSBOX"
)

// Load reads config from path, merged over the defaults. Environment
// variables named STATUSBOX_<SECTION>_<KEY> override file values.
func Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found: "+path,
				"Run 'statusbox init' to create one, or point --config at an existing file")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file is valid YAML")
	}

	return decode(v, path)
}

// LoadOrDefault finds and loads the config for explicit (the --config flag
// value, may be empty). With no file anywhere it returns the defaults with
// environment overrides applied. The returned path is empty in that case.
func LoadOrDefault(explicit string) (*Config, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}
	if path == "" {
		cfg, err := decode(newViper(), "environment")
		return cfg, "", err
	}
	cfg, err := Load(path)
	return cfg, path, err
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .statusbox.yaml in the current directory
// 3. .statusbox.yaml in parent directories (stops at git root or home)
// 4. ~/.config/statusbox/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		explicit = ExpandTilde(explicit)
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	home, _ := os.UserHomeDir()
	dir := cwd
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if exists(candidate) {
			return candidate, nil
		}
		if exists(filepath.Join(dir, ".git")) {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir || (home != "" && parent == home) {
			break
		}
		dir = parent
	}

	if home != "" {
		global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if exists(global) {
			return global, nil
		}
	}

	return "", nil
}

// GlobalPath returns the path of the global config file.
func GlobalPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine home directory",
			"Set $HOME or pass an explicit path")
	}
	return filepath.Join(home, GlobalConfigDir, GlobalConfigFile), nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// setDefaults registers every key so file values merge over the defaults and
// AutomaticEnv can see each key during Unmarshal.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("version", d.Version)

	v.SetDefault("hints.empty", d.Hints.Empty)
	v.SetDefault("hints.error", d.Hints.Error)
	v.SetDefault("hints.no_more", d.Hints.NoMore)
	v.SetDefault("hints.load_more_error", d.Hints.LoadMoreError)
	v.SetDefault("hints.prepend_error", d.Hints.PrependError)
	v.SetDefault("hints.retry", d.Hints.Retry)

	v.SetDefault("box.block_input", d.Box.BlockInput)

	v.SetDefault("demo.load_delay", d.Demo.LoadDelay.String())
	v.SetDefault("demo.item_count", d.Demo.ItemCount)

	v.SetDefault("paging.page_size", d.Paging.PageSize)
	v.SetDefault("paging.max_pages", d.Paging.MaxPages)
	v.SetDefault("paging.delay", d.Paging.Delay.String())
	v.SetDefault("paging.fail_every", d.Paging.FailEvery)
	v.SetDefault("paging.prefetch_distance", d.Paging.PrefetchDistance)
	v.SetDefault("paging.placeholders", d.Paging.Placeholders)
}

func decode(v *viper.Viper, source string) (*Config, error) {
	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the values in "+source)
	}
	return cfg, nil
}
