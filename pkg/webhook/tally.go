package webhook

import (
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/stitchbot/stitch/pkg/models"
)

const maxTalliedCategories = 3

// tally walks the event history of a finished stream and picks what the
// final card shows: the title that was up the longest and the top
// categories by watch time. The caller appends the synthetic terminal
// event first; pairwise windows credit each span to the state active
// during it, so the terminal event contributes its predecessor's duration
// and never its own title or category.
func tally(events []models.UpdateEvent) (title string, categoryLabel string) {
	sorted := slices.Clone(events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	titles := make(map[string]time.Duration)
	categories := make(map[string]time.Duration)
	for i := 1; i < len(sorted); i++ {
		window := sorted[i].Timestamp.Sub(sorted[i-1].Timestamp)
		titles[sorted[i-1].Title] += window
		categories[sorted[i-1].Category] += window
	}

	return argmax(titles), renderCategories(categories)
}

// argmax returns the key with the largest duration, breaking exact ties
// lexicographically so the result is deterministic.
func argmax(durations map[string]time.Duration) string {
	var (
		best     string
		bestDur  time.Duration
		haveBest bool
	)
	for key, dur := range durations {
		if !haveBest || dur > bestDur || (dur == bestDur && key < best) {
			best, bestDur, haveBest = key, dur, true
		}
	}
	return best
}

// renderCategories joins the top categories by duration into the card's
// label field, e.g. "» Art ⬩ Gaming".
func renderCategories(durations map[string]time.Duration) string {
	type entry struct {
		name string
		dur  time.Duration
	}
	entries := make([]entry, 0, len(durations))
	for name, dur := range durations {
		entries = append(entries, entry{name, dur})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].dur != entries[j].dur {
			return entries[i].dur > entries[j].dur
		}
		return entries[i].name < entries[j].name
	})

	if len(entries) > maxTalliedCategories {
		entries = entries[:maxTalliedCategories]
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return "» " + strings.Join(names, " ⬩ ")
}
