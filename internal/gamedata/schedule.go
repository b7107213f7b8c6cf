package gamedata

import (
	"sort"
	"time"

	"github.com/pcheek13/MMM-LiveStats/internal/espn"
)

// Schedule status states the classifier keys on. Anything that is neither
// in-progress nor final is a candidate for upcoming, so "pre" needs no
// constant of its own.
const (
	stateInProgress = "in"
	statePost       = "post"
)

// ClassifiedSchedule partitions a team's schedule into at most one live
// event and a bounded, date-ordered list of upcoming events.
type ClassifiedSchedule struct {
	LiveEvent      map[string]any
	UpcomingEvents []map[string]any
}

// ClassifySchedule scans the schedule events once. The first event whose
// status state is in-progress becomes the live event; later in-progress
// events are ignored so at most one live event surfaces. Events dated at or
// after now that are neither in-progress nor final collect as upcoming,
// sorted ascending by date and truncated to limit. A past or final event is
// never upcoming, even when its date claims otherwise.
func ClassifySchedule(events []any, now time.Time, limit int) ClassifiedSchedule {
	var classified ClassifiedSchedule

	type dated struct {
		event map[string]any
		date  time.Time
	}
	var upcoming []dated

	for _, e := range events {
		event, ok := e.(map[string]any)
		if !ok {
			continue
		}

		competitions := espn.ExtractArray(event, "competitions")
		if len(competitions) == 0 {
			continue
		}
		competition, ok := competitions[0].(map[string]any)
		if !ok {
			continue
		}

		state := espn.ExtractString(espn.ExtractMap(espn.ExtractMap(competition, "status"), "type"), "state")
		date, hasDate := ParseEventDate(espn.ExtractString(event, "date"))

		if state == stateInProgress {
			if classified.LiveEvent == nil {
				classified.LiveEvent = event
			}
			continue
		}

		if hasDate && !date.Before(now) && state != statePost {
			upcoming = append(upcoming, dated{event: event, date: date})
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].date.Before(upcoming[j].date)
	})
	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}

	classified.UpcomingEvents = make([]map[string]any, 0, len(upcoming))
	for _, u := range upcoming {
		classified.UpcomingEvents = append(classified.UpcomingEvents, u.event)
	}

	return classified
}

// ParseEventDate parses an upstream event date. RFC3339 is the documented
// format, but the API sometimes omits seconds ("2025-11-15T01:00Z").
func ParseEventDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02T15:04Z", value); err == nil {
		return t, true
	}
	return time.Time{}, false
}
