// Package config loads filmperc settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/filmperc/filmperc-go/pkg/filmperc"
	"github.com/filmperc/filmperc-go/pkg/filmperc/models"
	"github.com/pelletier/go-toml/v2"
)

// Layout locates titles and play-week markers by column position.
type Layout struct {
	TitleColumn   int    `toml:"title_column"`
	MarkerColumn  int    `toml:"marker_column"`
	DropColumn    int    `toml:"drop_column"`
	MarkerKeyword string `toml:"marker_keyword"`
}

// Matching contains fuzzy matching settings.
type Matching struct {
	// Threshold is exclusive: a title matches when its score is above it.
	Threshold int `toml:"threshold"`
}

// Workbook names the sheets and invoice columns to read.
type Workbook struct {
	PercentagesSheet string `toml:"percentages_sheet"`
	// InvoiceSheet empty means the first sheet.
	InvoiceSheet     string `toml:"invoice_sheet"`
	PercentageColumn string `toml:"percentage_column"`
	TitleColumn      string `toml:"title_column"`
	NetRentalColumn  string `toml:"net_rental_column"`
	PlayWeekColumn   string `toml:"play_week_column"`
}

// Server contains HTTP service settings.
type Server struct {
	Bind         string `toml:"bind"`
	UploadDir    string `toml:"upload_dir"`
	MaxUploadMiB int    `toml:"max_upload_mib"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values.
type Config struct {
	Layout   Layout   `toml:"layout"`
	Matching Matching `toml:"matching"`
	Workbook Workbook `toml:"workbook"`
	Server   Server   `toml:"server"`
	Logging  Logging  `toml:"logging"`
}

// Load parses and validates the configuration file at path. A missing file
// yields the defaults; the second return value reports whether it existed.
func Load(path string) (*Config, bool, error) {
	cfg := Default()

	exists := false
	if strings.TrimSpace(path) != "" {
		file, err := os.Open(path)
		switch {
		case err == nil:
			defer file.Close()
			exists = true
			decoder := toml.NewDecoder(file)
			decoder.DisallowUnknownFields()
			if err := decoder.Decode(&cfg); err != nil {
				return nil, false, fmt.Errorf("parse config: %w", err)
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, false, fmt.Errorf("open config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, false, err
	}
	return &cfg, exists, nil
}

func (c *Config) normalize() error {
	c.Layout.MarkerKeyword = strings.TrimSpace(c.Layout.MarkerKeyword)
	c.Workbook.PercentagesSheet = strings.TrimSpace(c.Workbook.PercentagesSheet)
	c.Workbook.InvoiceSheet = strings.TrimSpace(c.Workbook.InvoiceSheet)
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))

	if c.Server.UploadDir != "" {
		dir, err := filepath.Abs(filepath.Clean(c.Server.UploadDir))
		if err != nil {
			return fmt.Errorf("resolve upload dir %q: %w", c.Server.UploadDir, err)
		}
		c.Server.UploadDir = dir
	}
	return nil
}

// SearchOptions converts the layout and matching sections into search options.
func (c *Config) SearchOptions() filmperc.Options {
	return filmperc.Options{
		Layout: models.Layout{
			TitleColumn:   c.Layout.TitleColumn,
			MarkerColumn:  c.Layout.MarkerColumn,
			DropColumn:    c.Layout.DropColumn,
			MarkerKeyword: c.Layout.MarkerKeyword,
		},
		Threshold: c.Matching.Threshold,
	}
}

// InvoiceColumns returns the configured invoice column names.
func (c *Config) InvoiceColumns() filmperc.InvoiceColumns {
	return filmperc.InvoiceColumns{
		Percentage: c.Workbook.PercentageColumn,
		Title:      c.Workbook.TitleColumn,
		NetRental:  c.Workbook.NetRentalColumn,
		PlayWeek:   c.Workbook.PlayWeekColumn,
	}
}

// MaxUploadBytes returns the upload size limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.Server.MaxUploadMiB) << 20
}
