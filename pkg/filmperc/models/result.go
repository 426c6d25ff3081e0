package models

// ResultKind tags the shape of a MatchResult.
type ResultKind string

const (
	// KindMatches carries the rows that cleared the threshold.
	KindMatches ResultKind = "matches"
	// KindFallback carries the whole week because nothing cleared the threshold.
	KindFallback ResultKind = "fallback"
	// KindNotFound means no week carries the requested label.
	KindNotFound ResultKind = "not_found"
)

// ScoredRow is a matched row with its similarity score (0-100).
type ScoredRow struct {
	Row   Row `json:"row"`
	Score int `json:"score"`
}

// MatchResult is the outcome of one title query.
type MatchResult struct {
	Kind    ResultKind  `json:"kind"`
	Query   string      `json:"query"`
	Label   string      `json:"label"`
	Message string      `json:"message,omitempty"`
	Matches []ScoredRow `json:"matches,omitempty"`
	// Segment is the full cleaned week, set for KindFallback.
	Segment *Segment `json:"segment,omitempty"`
	// Columns maps Matches cell positions to source columns.
	Columns []int `json:"-"`
}

// Rows returns the rows the result presents: the matches or the fallback week.
func (m *MatchResult) Rows() []Row {
	switch m.Kind {
	case KindMatches:
		rows := make([]Row, len(m.Matches))
		for i, sr := range m.Matches {
			rows[i] = sr.Row
		}
		return rows
	case KindFallback:
		if m.Segment != nil {
			return m.Segment.Rows
		}
	}
	return nil
}

// Records renders the presented rows as header-keyed maps.
func (m *MatchResult) Records(header []string) []map[string]interface{} {
	switch m.Kind {
	case KindMatches:
		return records(m.Rows(), m.Columns, header)
	case KindFallback:
		if m.Segment != nil {
			return m.Segment.Records(header)
		}
	}
	return []map[string]interface{}{}
}
