package config

import (
	"github.com/filmperc/filmperc-go/pkg/filmperc"
	"github.com/filmperc/filmperc-go/pkg/filmperc/matcher"
	"github.com/filmperc/filmperc-go/pkg/filmperc/models"
)

const (
	defaultBind         = "127.0.0.1:5000"
	defaultUploadDir    = "uploads"
	defaultMaxUploadMiB = 32
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	layout := models.DefaultLayout()
	cols := filmperc.DefaultInvoiceColumns()
	return Config{
		Layout: Layout{
			TitleColumn:   layout.TitleColumn,
			MarkerColumn:  layout.MarkerColumn,
			DropColumn:    layout.DropColumn,
			MarkerKeyword: layout.MarkerKeyword,
		},
		Matching: Matching{
			Threshold: matcher.DefaultThreshold,
		},
		Workbook: Workbook{
			PercentagesSheet: filmperc.DefaultPercentagesSheet,
			PercentageColumn: cols.Percentage,
			TitleColumn:      cols.Title,
			NetRentalColumn:  cols.NetRental,
			PlayWeekColumn:   cols.PlayWeek,
		},
		Server: Server{
			Bind:         defaultBind,
			UploadDir:    defaultUploadDir,
			MaxUploadMiB: defaultMaxUploadMiB,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
