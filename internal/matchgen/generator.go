package matchgen

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/courtside/deuce/pkg/logger"
	"github.com/google/uuid"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
)

// PTI bands used to keep generated ratings in a realistic league range.
const (
	ptiMin   = 10.0
	ptiRange = 50.0
)

// Fractions of deliberately degraded score strings.
const (
	partialMalformedFraction = 0.2 // one bad segment among good ones
	fullyMalformedFraction   = 0.1 // nothing parseable; expects fallback
)

var tierLabels = []string{"New", "1-10", "10-30", "30+", "30+ Matches", "veteran"}

var strategies = []string{"", "legacy", "probability"}

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

func randomInt(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

func randomPTI() float64 {
	return ptiMin + getRandomFloat()*ptiRange
}

func randomTier() string {
	return tierLabels[randomInt(len(tierLabels))]
}

// randomScore builds a plausible best-of-three score string. kind selects
// degradation: 0 = clean, 1 = one malformed segment, 2 = fully malformed.
func randomScore(kind int) string {
	if kind == 2 {
		return "abc,6,,x-y"
	}
	numSets := 2 + randomInt(2)
	score := ""
	for i := 0; i < numSets; i++ {
		if i > 0 {
			score += ","
		}
		winnerGames := 6
		loserGames := randomInt(5)
		if randomInt(2) == 0 {
			score += fmt.Sprintf("%d-%d", winnerGames, loserGames)
		} else {
			score += fmt.Sprintf("%d-%d", loserGames, winnerGames)
		}
	}
	if kind == 1 {
		score += ",junk"
	}
	return score
}

// generateMatches creates the requested number of randomized submissions.
func generateMatches(ctx context.Context, config *Config, stats *Stats) []Match {
	logger.Get().Info(ctx, "generating match submissions", logger.Int("numMatches", config.NumMatches))

	matches := make([]Match, config.NumMatches)
	for i := range matches {
		kind := 0
		r := getRandomFloat()
		switch {
		case r < fullyMalformedFraction:
			kind = 2
		case r < fullyMalformedFraction+partialMalformedFraction:
			kind = 1
		}

		matches[i] = Match{
			RequestID:          uuid.New().String(),
			PlayerPTI:          randomPTI(),
			PartnerPTI:         randomPTI(),
			Opp1PTI:            randomPTI(),
			Opp2PTI:            randomPTI(),
			PlayerExp:          randomTier(),
			PartnerExp:         randomTier(),
			Opp1Exp:            randomTier(),
			Opp2Exp:            randomTier(),
			MatchScore:         randomScore(kind),
			Strategy:           strategies[randomInt(len(strategies))],
			AllSegmentsInvalid: kind == 2,
		}
	}

	stats.MatchesGenerated = len(matches)
	return matches
}
