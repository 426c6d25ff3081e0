package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "filmperc.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, exists, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.False(t, exists)

	assert.Equal(t, 0, cfg.Layout.TitleColumn)
	assert.Equal(t, 2, cfg.Layout.MarkerColumn)
	assert.Equal(t, 3, cfg.Layout.DropColumn)
	assert.Equal(t, "Speelweek", cfg.Layout.MarkerKeyword)
	assert.Equal(t, 80, cfg.Matching.Threshold)
	assert.Equal(t, "Percentages", cfg.Workbook.PercentagesSheet)
	assert.Equal(t, "127.0.0.1:5000", cfg.Server.Bind)
	assert.True(t, filepath.IsAbs(cfg.Server.UploadDir))
	assert.Equal(t, "uploads", filepath.Base(cfg.Server.UploadDir))
	assert.Equal(t, int64(32<<20), cfg.MaxUploadBytes())
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, exists, err := Load("  ")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Equal(t, 80, cfg.Matching.Threshold)
}

func TestLoadOverrides(t *testing.T) {
	upload := t.TempDir()
	path := writeConfig(t, `
[layout]
marker_column = 1
drop_column = -1
marker_keyword = " Week "

[matching]
threshold = 90

[workbook]
percentages_sheet = "Blad1"
invoice_sheet = "Facturen"
net_rental_column = "netto"

[server]
bind = ":8080"
upload_dir = "`+filepath.ToSlash(upload)+`"
max_upload_mib = 4

[logging]
format = "JSON"
level = "Debug"
`)

	cfg, exists, err := Load(path)
	require.NoError(t, err)
	assert.True(t, exists)

	assert.Equal(t, 1, cfg.Layout.MarkerColumn)
	assert.Equal(t, -1, cfg.Layout.DropColumn)
	assert.Equal(t, "Week", cfg.Layout.MarkerKeyword)
	assert.Equal(t, "Blad1", cfg.Workbook.PercentagesSheet)
	assert.Equal(t, "Facturen", cfg.Workbook.InvoiceSheet)
	assert.Equal(t, ":8080", cfg.Server.Bind)
	assert.Equal(t, upload, cfg.Server.UploadDir)
	assert.Equal(t, int64(4<<20), cfg.MaxUploadBytes())
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)

	opts := cfg.SearchOptions()
	assert.Equal(t, 90, opts.Threshold)
	assert.Equal(t, 1, opts.Layout.MarkerColumn)
	assert.Equal(t, -1, opts.Layout.DropColumn)
	assert.Equal(t, "Week", opts.Layout.MarkerKeyword)

	cols := cfg.InvoiceColumns()
	assert.Equal(t, "netto", cols.NetRental)
	assert.Equal(t, "frm_perc", cols.Percentage)
	assert.Equal(t, "master_title_description", cols.Title)
	assert.Equal(t, "play_week", cols.PlayWeek)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, "[matching]\ntreshold = 70\n")
	_, _, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	path := writeConfig(t, "[matching\nthreshold = 70\n")
	_, _, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"negative title column", func(c *Config) { c.Layout.TitleColumn = -1 }, "layout.title_column"},
		{"negative marker column", func(c *Config) { c.Layout.MarkerColumn = -2 }, "layout.marker_column"},
		{"no keyword", func(c *Config) { c.Layout.MarkerKeyword = "" }, "layout.marker_keyword"},
		{"threshold above range", func(c *Config) { c.Matching.Threshold = 101 }, "matching.threshold"},
		{"threshold below range", func(c *Config) { c.Matching.Threshold = -1 }, "matching.threshold"},
		{"no percentages sheet", func(c *Config) { c.Workbook.PercentagesSheet = "" }, "workbook.percentages_sheet"},
		{"blank invoice column", func(c *Config) { c.Workbook.TitleColumn = "  " }, "workbook.title_column"},
		{"first blank column wins", func(c *Config) {
			c.Workbook.PercentageColumn = ""
			c.Workbook.PlayWeekColumn = ""
		}, "workbook.percentage_column"},
		{"no bind", func(c *Config) { c.Server.Bind = "" }, "server.bind"},
		{"no upload dir", func(c *Config) { c.Server.UploadDir = "" }, "server.upload_dir"},
		{"zero upload size", func(c *Config) { c.Server.MaxUploadMiB = 0 }, "server.max_upload_mib"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	cfg := Default()
	assert.NoError(t, cfg.Validate())
	cfg.Matching.Threshold = 0
	assert.NoError(t, cfg.Validate())
	cfg.Matching.Threshold = 100
	assert.NoError(t, cfg.Validate())
}
