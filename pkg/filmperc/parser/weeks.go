package parser

import (
	"fmt"
	"time"
)

// dutchMonths holds the three-letter month abbreviations used in week labels.
var dutchMonths = [...]string{
	time.January:   "jan",
	time.February:  "feb",
	time.March:     "mrt",
	time.April:     "apr",
	time.May:       "mei",
	time.June:      "jun",
	time.July:      "jul",
	time.August:    "aug",
	time.September: "sep",
	time.October:   "okt",
	time.November:  "nov",
	time.December:  "dec",
}

// MonthAbbrev returns the Dutch abbreviation of m.
func MonthAbbrev(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return dutchMonths[m]
}

// WeekLabel renders the marker text for the play week starting on date,
// e.g. "Speelweek 14 jun". The label carries no year.
func WeekLabel(date time.Time, keyword string) string {
	return fmt.Sprintf("%s %d %s", keyword, date.Day(), MonthAbbrev(date.Month()))
}
