// Package matcher finds the rows of a play week whose title resembles a query.
package matcher

import (
	"fmt"

	"github.com/filmperc/filmperc-go/pkg/filmperc/fuzz"
	"github.com/filmperc/filmperc-go/pkg/filmperc/models"
)

// DefaultThreshold is the score a title must exceed to match.
const DefaultThreshold = 80

// Options configures matching.
type Options struct {
	// Threshold is exclusive: a row matches when its score is above it.
	Threshold int
	// TitleColumn is the title position within the cleaned segment.
	TitleColumn int
}

// DefaultOptions returns default matching options.
func DefaultOptions() Options {
	return Options{
		Threshold:   DefaultThreshold,
		TitleColumn: models.DefaultLayout().TitleColumn,
	}
}

// Score returns the best of the partial and token-sort ratios of title against query.
// Both are lower-cased before scoring.
func Score(title, query string) int {
	title, query = fuzz.Lower(title), fuzz.Lower(query)
	return max(fuzz.PartialRatio(title, query), fuzz.TokenSortRatio(title, query))
}

// Match scores every row of seg against query. Rows scoring above the
// threshold are returned in segment order; when none does, the result falls
// back to the whole segment so callers can offer alternatives.
func Match(seg models.Segment, query string, opts Options) models.MatchResult {
	var matches []models.ScoredRow
	for _, row := range seg.Rows {
		score := Score(row.Cell(opts.TitleColumn).String(), query)
		if score > opts.Threshold {
			matches = append(matches, models.ScoredRow{Row: row, Score: score})
		}
	}

	if len(matches) > 0 {
		return models.MatchResult{
			Kind:    models.KindMatches,
			Query:   query,
			Label:   seg.Label,
			Matches: matches,
			Columns: seg.Columns,
		}
	}

	fallback := seg
	return models.MatchResult{
		Kind:    models.KindFallback,
		Query:   query,
		Label:   seg.Label,
		Message: fmt.Sprintf("no exact match found for %q; showing all titles of %s", query, seg.Label),
		Segment: &fallback,
	}
}
