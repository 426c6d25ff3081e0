package filmperc

import (
	"time"

	"github.com/filmperc/filmperc-go/pkg/filmperc/matcher"
	"github.com/filmperc/filmperc-go/pkg/filmperc/models"
	"github.com/filmperc/filmperc-go/pkg/filmperc/parser"
	"go.uber.org/zap"
)

// DateLayout is the accepted query date form. Day and month may omit the leading zero.
const DateLayout = "2-1-2006"

// ParseDate parses a DD-MM-YYYY date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, NewDateParseError(s, err)
	}
	return t, nil
}

// WeekLabelFor returns the play-week label for a DD-MM-YYYY date.
func WeekLabelFor(date string, opts Options) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return parser.WeekLabel(t, opts.Layout.MarkerKeyword), nil
}

// Segment splits table into play weeks.
func Segment(table *models.Table, opts Options) []models.Segment {
	return parser.Segment(table, opts.Layout)
}

// Match cleans seg and matches its titles against query.
func Match(seg models.Segment, query string, opts Options) models.MatchResult {
	return matcher.Match(parser.CleanSegment(seg, opts.Layout), query, opts.matcherOptions())
}

// FindAndMatch looks up the play week of date in table and matches query
// against its titles. A malformed date returns a *DateParseError before the
// table is touched. When no week carries the label, the result has kind
// not_found and the error is a *WeekNotFoundError.
func FindAndMatch(table *models.Table, query, date string, opts Options) (models.MatchResult, error) {
	log := opts.logger()

	label, err := WeekLabelFor(date, opts)
	if err != nil {
		return models.MatchResult{}, err
	}

	segments := Segment(table, opts)
	log.Debug("segmented sheet",
		zap.Int("rows", len(table.Rows)),
		zap.Int("weeks", len(segments)),
		zap.String("label", label))

	for _, dup := range parser.DuplicateLabels(segments) {
		if dup == label {
			log.Warn("play week label occurs more than once; using the first",
				zap.String("label", label))
			break
		}
	}

	for _, seg := range segments {
		if seg.Label != label {
			continue
		}
		result := Match(seg, query, opts)
		log.Debug("matched titles",
			zap.String("query", query),
			zap.String("kind", string(result.Kind)),
			zap.Int("matches", len(result.Matches)))
		return result, nil
	}

	nf := &WeekNotFoundError{Label: label}
	return models.MatchResult{
		Kind:    models.KindNotFound,
		Query:   query,
		Label:   label,
		Message: nf.Error(),
	}, nf
}
