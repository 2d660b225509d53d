package config

import (
	"errors"
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port))
	}
	if c.Server.KeyCheckPerMinute < 0 {
		errs = append(errs, fmt.Errorf("server.key_check_per_minute must be >= 0 (got %d)", c.Server.KeyCheckPerMinute))
	}
	if c.Database.TxMaxRetries == 0 {
		errs = append(errs, errors.New("database.tx_max_retries must be > 0"))
	}
	if c.Keys.MaxPerAccount <= 0 {
		errs = append(errs, fmt.Errorf("keys.max_per_account must be > 0 (got %d)", c.Keys.MaxPerAccount))
	}
	if c.Keys.MaxNameLength <= 0 {
		errs = append(errs, fmt.Errorf("keys.max_name_length must be > 0 (got %d)", c.Keys.MaxNameLength))
	}
	if err := c.Sync.validate(); err != nil {
		errs = append(errs, fmt.Errorf("sync: %w", err))
	}
	if err := c.TempCred.validate(); err != nil {
		errs = append(errs, fmt.Errorf("tempcred: %w", err))
	}

	return errors.Join(errs...)
}

func (s *SyncConfig) validate() error {
	if s.TeardownBatchSize <= 0 {
		return fmt.Errorf("teardown_batch_size must be > 0 (got %d)", s.TeardownBatchSize)
	}
	if s.HistoryMaxLimit <= 0 {
		return fmt.Errorf("history_max_limit must be > 0 (got %d)", s.HistoryMaxLimit)
	}
	if s.DeleteRetention < 0 {
		return fmt.Errorf("delete_retention must be >= 0 (got %s)", s.DeleteRetention)
	}
	return nil
}

func (t *TempCredConfig) validate() error {
	if len(t.SigningSecret) < 32 {
		return fmt.Errorf("signing_secret must be at least 32 characters (got %d)", len(t.SigningSecret))
	}
	if t.TTL <= 0 {
		return fmt.Errorf("ttl must be > 0 (got %s)", t.TTL)
	}
	if t.ReapInterval <= 0 {
		return fmt.Errorf("reap_interval must be > 0 (got %s)", t.ReapInterval)
	}
	return nil
}
