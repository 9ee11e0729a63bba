package config

import (
	"fmt"

	"github.com/rileyhilliard/statusbox/internal/errors"
)

// Validate checks the config for values the demos cannot run with.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but statusbox only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade statusbox or lower 'version' in your config")
	}

	if err := validateDemo(cfg.Demo); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'demo' section in your .statusbox.yaml.")
	}

	if err := validatePaging(cfg.Paging); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'paging' section in your .statusbox.yaml.")
	}

	if cfg.Hints.Retry == "" {
		return errors.New(errors.ErrConfig,
			"hints.retry can't be empty",
			"Error rows need a retry hint so the key binding is discoverable.")
	}

	return nil
}

func validateDemo(d DemoConfig) error {
	if d.LoadDelay < 0 {
		return fmt.Errorf("demo.load_delay can't be negative (got %s)", d.LoadDelay)
	}
	if d.ItemCount < 0 {
		return fmt.Errorf("demo.item_count can't be negative (got %d)", d.ItemCount)
	}
	return nil
}

func validatePaging(p PagingConfig) error {
	if p.PageSize < 1 {
		return fmt.Errorf("paging.page_size must be at least 1 (got %d)", p.PageSize)
	}
	if p.MaxPages < 1 {
		return fmt.Errorf("paging.max_pages must be at least 1 (got %d)", p.MaxPages)
	}
	if p.Delay < 0 {
		return fmt.Errorf("paging.delay can't be negative (got %s)", p.Delay)
	}
	if p.FailEvery < 0 {
		return fmt.Errorf("paging.fail_every can't be negative (got %d)", p.FailEvery)
	}
	if p.PrefetchDistance < 0 {
		return fmt.Errorf("paging.prefetch_distance can't be negative (got %d)", p.PrefetchDistance)
	}
	return nil
}
