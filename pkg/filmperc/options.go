// Package filmperc answers title queries against play-week percentage sheets.
package filmperc

import (
	"github.com/filmperc/filmperc-go/pkg/filmperc/matcher"
	"github.com/filmperc/filmperc-go/pkg/filmperc/models"
	"go.uber.org/zap"
)

// DefaultPercentagesSheet is the sheet holding the play-week blocks.
const DefaultPercentagesSheet = "Percentages"

// Options configures segmentation and matching.
type Options struct {
	// Layout locates titles and play-week markers.
	Layout models.Layout
	// Threshold is the score a title must exceed to match.
	Threshold int
	// Logger receives debug output and label collision warnings.
	// If nil, logging is disabled.
	Logger *zap.Logger
}

// DefaultOptions returns default search options.
func DefaultOptions() Options {
	return Options{
		Layout:    models.DefaultLayout(),
		Threshold: matcher.DefaultThreshold,
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

func (o Options) matcherOptions() matcher.Options {
	return matcher.Options{
		Threshold:   o.Threshold,
		TitleColumn: o.Layout.TitleColumn,
	}
}

// InvoiceColumns names the columns read from an invoice sheet.
type InvoiceColumns struct {
	Percentage string
	Title      string
	NetRental  string
	PlayWeek   string
}

// DefaultInvoiceColumns returns the column names of the invoice export.
func DefaultInvoiceColumns() InvoiceColumns {
	return InvoiceColumns{
		Percentage: "frm_perc",
		Title:      "master_title_description",
		NetRental:  "net_rental",
		PlayWeek:   "play_week",
	}
}

// Names returns the column names in sheet order of importance.
func (c InvoiceColumns) Names() []string {
	return []string{c.Percentage, c.Title, c.NetRental, c.PlayWeek}
}
