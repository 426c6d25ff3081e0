// Package output serializes results for the command line and HTTP layers.
package output

import (
	"encoding/json"

	"github.com/filmperc/filmperc-go/pkg/filmperc/models"
)

// ToJSON encodes v, indented when pretty is set.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// SearchResponse is the serialized form of a title query.
// Rows are keyed by the sheet header; Scores parallels Rows for matches.
type SearchResponse struct {
	Kind    models.ResultKind        `json:"kind"`
	Query   string                   `json:"query"`
	Label   string                   `json:"label"`
	Message string                   `json:"message,omitempty"`
	Scores  []int                    `json:"scores,omitempty"`
	Rows    []map[string]interface{} `json:"rows"`
}

// NewSearchResponse renders result against the sheet header.
func NewSearchResponse(result models.MatchResult, header []string) SearchResponse {
	resp := SearchResponse{
		Kind:    result.Kind,
		Query:   result.Query,
		Label:   result.Label,
		Message: result.Message,
		Rows:    result.Records(header),
	}
	for _, m := range result.Matches {
		resp.Scores = append(resp.Scores, m.Score)
	}
	return resp
}

// WeekSummary describes one play week of a sheet.
type WeekSummary struct {
	Label     string `json:"label"`
	Rows      int    `json:"rows"`
	FirstRow  int    `json:"first_row,omitempty"`
	Duplicate bool   `json:"duplicate,omitempty"`
}

// SummarizeWeeks lists segments in sheet order, flagging repeated labels.
func SummarizeWeeks(segments []models.Segment, duplicates []string) []WeekSummary {
	dup := make(map[string]bool, len(duplicates))
	for _, label := range duplicates {
		dup[label] = true
	}
	out := make([]WeekSummary, 0, len(segments))
	for _, seg := range segments {
		ws := WeekSummary{Label: seg.Label, Rows: len(seg.Rows), Duplicate: dup[seg.Label]}
		if len(seg.Rows) > 0 {
			ws.FirstRow = seg.Rows[0].R
		}
		out = append(out, ws)
	}
	return out
}
