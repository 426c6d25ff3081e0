package filmperc

import (
	"errors"
	"testing"

	"github.com/filmperc/filmperc-go/internal/testsupport"
	"github.com/filmperc/filmperc-go/pkg/filmperc/models"
	"github.com/filmperc/filmperc-go/pkg/filmperc/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func percentagesTable(t *testing.T, rows [][]interface{}) *models.Table {
	t.Helper()
	path := testsupport.WriteWorkbook(t, DefaultPercentagesSheet, rows)
	table, err := LoadTable(path, DefaultPercentagesSheet)
	require.NoError(t, err)
	return table
}

func TestParseDate(t *testing.T) {
	for _, input := range []string{"14-06-2024", "1-6-2024", "01-06-2024", "29-02-2024"} {
		_, err := ParseDate(input)
		assert.NoError(t, err, input)
	}

	for _, input := range []string{
		"", "2024-06-14", "14/06/2024", "14-06-24", "32-01-2024", "14-13-2024",
		"31-04-2024", "29-02-2023", "14-06-2024 ", "vandaag",
	} {
		_, err := ParseDate(input)
		var dateErr *DateParseError
		require.ErrorAs(t, err, &dateErr, input)
		assert.Equal(t, input, dateErr.Input)
	}
}

func TestWeekLabelFor(t *testing.T) {
	label, err := WeekLabelFor("14-06-2024", DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "Speelweek 14 jun", label)

	label, err = WeekLabelFor("1-3-2025", DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "Speelweek 1 mrt", label)

	other, err := WeekLabelFor("14-06-2019", DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "Speelweek 14 jun", other)
}

func TestFindAndMatchMisspelledTitle(t *testing.T) {
	table := percentagesTable(t, testsupport.PercentagesRows())

	result, err := FindAndMatch(table, "Avater", "14-06-2024", DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, models.KindMatches, result.Kind)
	assert.Equal(t, "Speelweek 14 jun", result.Label)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, 4, result.Matches[0].Row.R)
	assert.Equal(t, 83, result.Matches[0].Score)

	records := result.Records(table.Header)
	require.Len(t, records, 1)
	assert.Equal(t, map[string]interface{}{
		"Titel":     "Avatar: The Way of Water",
		"Perc":      0.35,
		"Speelweek": 1200.0,
	}, records[0])
}

func TestFindAndMatchOtherWeek(t *testing.T) {
	table := percentagesTable(t, testsupport.PercentagesRows())

	result, err := FindAndMatch(table, "dune part two", "21-06-2024", DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, models.KindMatches, result.Kind)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, 7, result.Matches[0].Row.R)
}

func TestFindAndMatchFallback(t *testing.T) {
	table := percentagesTable(t, testsupport.PercentagesRows())

	result, err := FindAndMatch(table, "Xyzzy Nonexistent Film", "14-06-2024", DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, models.KindFallback, result.Kind)
	assert.Empty(t, result.Matches)
	assert.Contains(t, result.Message, "Xyzzy Nonexistent Film")
	assert.Contains(t, result.Message, "Speelweek 14 jun")
	require.NotNil(t, result.Segment)
	assert.Equal(t, []int{4, 5}, []int{result.Segment.Rows[0].R, result.Segment.Rows[1].R})
	assert.Equal(t, []int{0, 1, 2}, result.Segment.Columns)
	assert.Len(t, result.Records(table.Header), 2)
}

func TestFindAndMatchWeekNotFound(t *testing.T) {
	table := percentagesTable(t, testsupport.PercentagesRows())

	result, err := FindAndMatch(table, "Avatar", "28-06-2024", DefaultOptions())

	var notFound *WeekNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Speelweek 28 jun", notFound.Label)
	assert.Contains(t, err.Error(), "Speelweek 28 jun")
	assert.Equal(t, models.KindNotFound, result.Kind)
	assert.Equal(t, "Speelweek 28 jun", result.Label)
	assert.Contains(t, result.Message, "Speelweek 28 jun")
	assert.Empty(t, result.Records(table.Header))
}

func TestFindAndMatchNoMarkers(t *testing.T) {
	table := percentagesTable(t, [][]interface{}{
		{"Titel", "Perc", "Week"},
		{"Avatar", 0.3, 10},
	})
	_, err := FindAndMatch(table, "Avatar", "14-06-2024", DefaultOptions())
	var notFound *WeekNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestFindAndMatchRejectsBadDateFirst(t *testing.T) {
	result, err := FindAndMatch(nil, "Avatar", "2024-06-14", DefaultOptions())

	var dateErr *DateParseError
	require.ErrorAs(t, err, &dateErr)
	assert.Equal(t, models.MatchResult{}, result)

	var notFound *WeekNotFoundError
	assert.False(t, errors.As(err, &notFound))
}

func TestFindAndMatchIsIdempotent(t *testing.T) {
	table := percentagesTable(t, testsupport.PercentagesRows())

	for _, q := range []struct{ title, date string }{
		{"Avater", "14-06-2024"},
		{"Xyzzy Nonexistent Film", "14-06-2024"},
		{"Avatar", "28-06-2024"},
	} {
		first, err1 := FindAndMatch(table, q.title, q.date, DefaultOptions())
		second, err2 := FindAndMatch(table, q.title, q.date, DefaultOptions())
		assert.Equal(t, first, second)
		assert.Equal(t, err1, err2)
	}
}

func TestFindAndMatchIgnoresYear(t *testing.T) {
	table := percentagesTable(t, testsupport.PercentagesRows())

	a, err := FindAndMatch(table, "Avater", "14-06-2024", DefaultOptions())
	require.NoError(t, err)
	b, err := FindAndMatch(table, "Avater", "14-06-2031", DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestFindAndMatchRepeatedLabelUsesFirst(t *testing.T) {
	table := percentagesTable(t, [][]interface{}{
		{"Titel", "Perc", "Week"},
		{nil, nil, "Speelweek 14 jun"},
		{"Avatar", 0.3, 1},
		{nil, nil, "Speelweek 14 jun"},
		{"Avatar", 0.5, 2},
	})
	core, logs := observer.New(zapcore.WarnLevel)
	opts := DefaultOptions()
	opts.Logger = zap.New(core)

	result, err := FindAndMatch(table, "Avatar", "14-06-2023", opts)
	require.NoError(t, err)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, 3, result.Matches[0].Row.R)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, "Speelweek 14 jun", entry.ContextMap()["label"])
}

func TestSegmentAndMatchWrappers(t *testing.T) {
	table := percentagesTable(t, testsupport.PercentagesRows())
	opts := DefaultOptions()

	segments := Segment(table, opts)
	require.Len(t, segments, 2)
	assert.Equal(t, parser.Segment(table, opts.Layout), segments)

	result := Match(segments[1], "panda", opts)
	require.Equal(t, models.KindMatches, result.Kind)
	assert.Equal(t, 8, result.Matches[0].Row.R)
	assert.Len(t, result.Matches[0].Row.Cells, 3)
}
