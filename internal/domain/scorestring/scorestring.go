// Package scorestring parses delimited set-score strings into per-set
// outcomes.
//
// Parsing is deliberately lenient: a segment that does not look like
// "<int>-<int>" is dropped silently and the remaining segments are still
// processed. Callers never see an error from this package; an input with
// no usable segments simply yields an empty slice, which the engine
// treats as its zero-adjustment fallback.
package scorestring

import (
	"strconv"
	"strings"

	"github.com/courtside/deuce/internal/domain/model"
)

const (
	segmentSeparator = ","
	gameSeparator    = "-"

	// evenGameFraction guards the degenerate "0-0" set.
	evenGameFraction = 0.5
)

// Parse turns a comma-separated score string such as "6-2,2-6,6-3" into
// ordered set results. maxSets caps the number of sets parsed; zero or
// negative means no cap.
func Parse(score string, maxSets int) []model.SetResult {
	segments := strings.Split(score, segmentSeparator)
	sets := make([]model.SetResult, 0, len(segments))
	for _, seg := range segments {
		if maxSets > 0 && len(sets) >= maxSets {
			break
		}
		set, ok := parseSegment(seg)
		if !ok {
			continue
		}
		sets = append(sets, set)
	}
	return sets
}

// parseSegment parses one "games-games" pair. The second return is false
// for anything that does not split into exactly two integers.
func parseSegment(seg string) (model.SetResult, bool) {
	parts := strings.Split(seg, gameSeparator)
	if len(parts) != 2 {
		return model.SetResult{}, false
	}
	a, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return model.SetResult{}, false
	}
	b, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return model.SetResult{}, false
	}

	winner := model.Team2
	if a > b {
		winner = model.Team1
	}
	fraction := evenGameFraction
	if a+b > 0 {
		fraction = float64(max(a, b)) / float64(a+b)
	}
	return model.SetResult{Winner: winner, GameFraction: fraction}, true
}

// MatchWinner returns the team winning a strict majority of the given
// sets. With no sets, or an even split, team 2 is reported; callers that
// care about the empty case check len(sets) first.
func MatchWinner(sets []model.SetResult) int {
	team1Sets := 0
	for _, s := range sets {
		if s.Winner == model.Team1 {
			team1Sets++
		}
	}
	if team1Sets > len(sets)-team1Sets {
		return model.Team1
	}
	return model.Team2
}
