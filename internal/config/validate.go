package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLayout(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	if err := c.validateWorkbook(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateLayout() error {
	if c.Layout.TitleColumn < 0 {
		return errors.New("layout.title_column must not be negative")
	}
	if c.Layout.MarkerColumn < 0 {
		return errors.New("layout.marker_column must not be negative")
	}
	if c.Layout.MarkerKeyword == "" {
		return errors.New("layout.marker_keyword must be set")
	}
	return nil
}

func (c *Config) validateMatching() error {
	if c.Matching.Threshold < 0 || c.Matching.Threshold > 100 {
		return fmt.Errorf("matching.threshold must be between 0 and 100, got %d", c.Matching.Threshold)
	}
	return nil
}

func (c *Config) validateWorkbook() error {
	if c.Workbook.PercentagesSheet == "" {
		return errors.New("workbook.percentages_sheet must be set")
	}
	columns := []struct{ key, value string }{
		{"workbook.percentage_column", c.Workbook.PercentageColumn},
		{"workbook.title_column", c.Workbook.TitleColumn},
		{"workbook.net_rental_column", c.Workbook.NetRentalColumn},
		{"workbook.play_week_column", c.Workbook.PlayWeekColumn},
	}
	for _, col := range columns {
		if strings.TrimSpace(col.value) == "" {
			return fmt.Errorf("%s must be set", col.key)
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if strings.TrimSpace(c.Server.Bind) == "" {
		return errors.New("server.bind must be set")
	}
	if c.Server.UploadDir == "" {
		return errors.New("server.upload_dir must be set")
	}
	if c.Server.MaxUploadMiB <= 0 {
		return errors.New("server.max_upload_mib must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
