package config

import (
	"time"

	"github.com/rileyhilliard/statusbox/pkg/statusbox"
	"github.com/rileyhilliard/statusbox/pkg/statusbox/paging"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .statusbox.yaml configuration file.
type Config struct {
	Version int          `yaml:"version" mapstructure:"version"`
	Hints   HintsConfig  `yaml:"hints" mapstructure:"hints"`
	Box     BoxConfig    `yaml:"box" mapstructure:"box"`
	Demo    DemoConfig   `yaml:"demo" mapstructure:"demo"`
	Paging  PagingConfig `yaml:"paging" mapstructure:"paging"`
}

// HintsConfig holds the texts of the built-in widgets.
type HintsConfig struct {
	Empty         string `yaml:"empty" mapstructure:"empty"`
	Error         string `yaml:"error" mapstructure:"error"`
	NoMore        string `yaml:"no_more" mapstructure:"no_more"`
	LoadMoreError string `yaml:"load_more_error" mapstructure:"load_more_error"`
	PrependError  string `yaml:"prepend_error" mapstructure:"prepend_error"`
	Retry         string `yaml:"retry" mapstructure:"retry"`
}

// BoxConfig holds the registry-wide status box settings.
type BoxConfig struct {
	// BlockInput makes the loading overlay swallow key and mouse input.
	BlockInput bool `yaml:"block_input" mapstructure:"block_input"`
}

// DemoConfig controls the status box demo.
type DemoConfig struct {
	// LoadDelay is how long a simulated load takes.
	LoadDelay time.Duration `yaml:"load_delay" mapstructure:"load_delay"`

	// ItemCount is the number of items a successful load returns.
	ItemCount int `yaml:"item_count" mapstructure:"item_count"`
}

// PagingConfig controls the mock paging source of the list demos.
type PagingConfig struct {
	PageSize int `yaml:"page_size" mapstructure:"page_size"`

	// MaxPages caps the data set; loading past it reports end of list.
	MaxPages int `yaml:"max_pages" mapstructure:"max_pages"`

	Delay time.Duration `yaml:"delay" mapstructure:"delay"`

	// FailEvery makes every Nth load fail. 0 disables failures.
	FailEvery int `yaml:"fail_every" mapstructure:"fail_every"`

	// PrefetchDistance is how close to an edge the visible window must get
	// before the next page is requested.
	PrefetchDistance int `yaml:"prefetch_distance" mapstructure:"prefetch_distance"`

	// Placeholders shows a page of pending rows while a page loads.
	Placeholders bool `yaml:"placeholders" mapstructure:"placeholders"`
}

// MarshalYAML writes durations in their string form so the file stays
// readable and loads back through viper.
func (d DemoConfig) MarshalYAML() (interface{}, error) {
	return struct {
		LoadDelay string `yaml:"load_delay"`
		ItemCount int    `yaml:"item_count"`
	}{d.LoadDelay.String(), d.ItemCount}, nil
}

// MarshalYAML writes durations in their string form.
func (p PagingConfig) MarshalYAML() (interface{}, error) {
	return struct {
		PageSize         int    `yaml:"page_size"`
		MaxPages         int    `yaml:"max_pages"`
		Delay            string `yaml:"delay"`
		FailEvery        int    `yaml:"fail_every"`
		PrefetchDistance int    `yaml:"prefetch_distance"`
		Placeholders     bool   `yaml:"placeholders"`
	}{p.PageSize, p.MaxPages, p.Delay.String(), p.FailEvery, p.PrefetchDistance, p.Placeholders}, nil
}

// BoxHints returns the hints for the status box built-ins.
func (h HintsConfig) BoxHints() statusbox.Hints {
	return statusbox.Hints{
		Empty: h.Empty,
		Error: h.Error,
	}
}

// RowHints returns the hints for the list row built-ins.
func (h HintsConfig) RowHints() paging.RowHints {
	return paging.RowHints{
		Empty:         h.Empty,
		Error:         h.Error,
		NoMore:        h.NoMore,
		LoadMoreError: h.LoadMoreError,
		PrependError:  h.PrependError,
		Retry:         h.Retry,
	}
}

// Registry builds a status box registry with the configured hints and
// input blocking.
func (c *Config) Registry() *statusbox.Registry {
	reg := statusbox.NewRegistry()
	reg.InitDefaultsWith(c.Hints.BoxHints())
	reg.SetBlockInput(c.Box.BlockInput)
	return reg
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	box := statusbox.DefaultHints()
	rows := paging.DefaultRowHints()

	return &Config{
		Version: CurrentConfigVersion,
		Hints: HintsConfig{
			Empty:         box.Empty,
			Error:         box.Error,
			NoMore:        rows.NoMore,
			LoadMoreError: rows.LoadMoreError,
			PrependError:  rows.PrependError,
			Retry:         rows.Retry,
		},
		Box: BoxConfig{
			BlockInput: false,
		},
		Demo: DemoConfig{
			LoadDelay: 2 * time.Second,
			ItemCount: 5,
		},
		Paging: PagingConfig{
			PageSize:         20,
			MaxPages:         10,
			Delay:            1500 * time.Millisecond,
			FailEvery:        0,
			PrefetchDistance: 3,
			Placeholders:     false,
		},
	}
}
