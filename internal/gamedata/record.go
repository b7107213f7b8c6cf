package gamedata

import (
	"fmt"
	"regexp"

	"github.com/pcheek13/MMM-LiveStats/internal/espn"
)

// Supports the ASCII dash and the en-dash the API occasionally emits.
var recordSummaryPattern = regexp.MustCompile(`(\d+)[-–](\d+)`)

// ParseRecord extracts a win/loss record from the upstream record structure:
// a list of record items, each possibly carrying named stat entries or a
// free-text summary. It prefers the aggregate ("total") item, then the first
// item with a summary, then the first item. Wins and losses come from the
// named stats when present, else from a "W-L" pattern in the summary. When
// neither wins nor losses can be determined, the result is nil rather than
// a record full of defaults.
func ParseRecord(recordData any) *Record {
	record, ok := recordData.(map[string]any)
	if !ok {
		return nil
	}
	items := espn.ExtractArray(record, "items")
	if len(items) == 0 {
		return nil
	}

	overall := pickOverallItem(items)
	if overall == nil {
		return nil
	}

	var wins, losses *int
	for _, s := range espn.ExtractArray(overall, "stats") {
		stat, ok := s.(map[string]any)
		if !ok {
			continue
		}
		if _, present := stat["value"]; !present {
			continue
		}
		value := espn.ParseInt(stat["value"])
		switch espn.ExtractString(stat, "name") {
		case "wins":
			wins = &value
		case "losses":
			losses = &value
		}
	}

	summary := espn.ExtractString(overall, "summary")
	if wins == nil || losses == nil {
		if match := recordSummaryPattern.FindStringSubmatch(summary); match != nil {
			w := espn.ParseInt(match[1])
			l := espn.ParseInt(match[2])
			wins, losses = &w, &l
		}
	}

	if wins == nil && losses == nil {
		return nil
	}

	if summary == "" && wins != nil && losses != nil {
		summary = fmt.Sprintf("%d-%d", *wins, *losses)
	}

	return &Record{Wins: wins, Losses: losses, Summary: summary}
}

// pickOverallItem prefers the item typed "total", then the first item with a
// non-empty summary, then the first item. The priority is strict: a "total"
// item wins even when a summary-bearing item precedes it in the list.
func pickOverallItem(items []any) map[string]any {
	var first, withSummary map[string]any
	for _, i := range items {
		item, ok := i.(map[string]any)
		if !ok {
			continue
		}
		if first == nil {
			first = item
		}
		if espn.ExtractString(item, "type") == "total" {
			return item
		}
		if withSummary == nil && espn.ExtractString(item, "summary") != "" {
			withSummary = item
		}
	}
	if withSummary != nil {
		return withSummary
	}
	return first
}
