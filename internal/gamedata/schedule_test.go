package gamedata

import (
	"testing"
	"time"
)

func scheduleEvent(id, date, state string) map[string]any {
	return map[string]any{
		"id":   id,
		"date": date,
		"competitions": []any{
			map[string]any{
				"status": map[string]any{
					"type": map[string]any{"state": state},
				},
			},
		},
	}
}

func TestClassifyScheduleSurfacesAtMostOneLiveEvent(t *testing.T) {
	now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)
	events := []any{
		scheduleEvent("1", "2026-06-01T11:00Z", "in"),
		scheduleEvent("2", "2026-06-01T11:30Z", "in"),
		scheduleEvent("3", "2026-06-03T00:00Z", "pre"),
	}

	classified := ClassifySchedule(events, now, 3)
	if classified.LiveEvent == nil || classified.LiveEvent["id"] != "1" {
		t.Fatalf("expected first in-progress event live, got %v", classified.LiveEvent)
	}
	if len(classified.UpcomingEvents) != 1 || classified.UpcomingEvents[0]["id"] != "3" {
		t.Fatalf("unexpected upcoming list: %v", classified.UpcomingEvents)
	}
}

func TestClassifyScheduleSortsAndTruncatesUpcoming(t *testing.T) {
	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	events := []any{
		scheduleEvent("late", "2026-06-20T00:00Z", "pre"),
		scheduleEvent("early", "2026-06-05T00:00Z", "pre"),
		scheduleEvent("middle", "2026-06-10T00:00Z", "pre"),
	}

	classified := ClassifySchedule(events, now, 2)
	if classified.LiveEvent != nil {
		t.Fatalf("unexpected live event: %v", classified.LiveEvent)
	}
	if len(classified.UpcomingEvents) != 2 {
		t.Fatalf("expected truncation to 2, got %d", len(classified.UpcomingEvents))
	}
	if classified.UpcomingEvents[0]["id"] != "early" || classified.UpcomingEvents[1]["id"] != "middle" {
		t.Fatalf("expected ascending date order, got %v", classified.UpcomingEvents)
	}
}

func TestClassifyScheduleExcludesPastAndFinalEvents(t *testing.T) {
	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	events := []any{
		scheduleEvent("past", "2026-05-20T00:00Z", "pre"),
		// final despite a future date: malformed upstream data
		scheduleEvent("final-future", "2026-06-10T00:00Z", "post"),
		scheduleEvent("undated", "", "pre"),
		scheduleEvent("good", "2026-06-15T00:00Z", "pre"),
	}

	classified := ClassifySchedule(events, now, 5)
	if len(classified.UpcomingEvents) != 1 || classified.UpcomingEvents[0]["id"] != "good" {
		t.Fatalf("unexpected upcoming list: %v", classified.UpcomingEvents)
	}
}

func TestClassifyScheduleToleratesMalformedEntries(t *testing.T) {
	now := time.Now()
	events := []any{
		"not an event",
		map[string]any{"id": "no-competitions"},
		nil,
	}

	classified := ClassifySchedule(events, now, 3)
	if classified.LiveEvent != nil || len(classified.UpcomingEvents) != 0 {
		t.Fatalf("expected empty classification, got %+v", classified)
	}
}

func TestParseEventDate(t *testing.T) {
	if _, ok := ParseEventDate(""); ok {
		t.Fatalf("empty date must not parse")
	}
	if _, ok := ParseEventDate("not a date"); ok {
		t.Fatalf("garbage must not parse")
	}

	parsed, ok := ParseEventDate("2026-06-05T19:30:00Z")
	if !ok || parsed.Hour() != 19 {
		t.Fatalf("RFC3339 parse failed: %v %v", parsed, ok)
	}

	parsed, ok = ParseEventDate("2026-06-05T19:30Z")
	if !ok || parsed.Minute() != 30 {
		t.Fatalf("minute-precision parse failed: %v %v", parsed, ok)
	}
}
