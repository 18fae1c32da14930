package matchgen

import (
	"fmt"
	"math"
)

// roundingEpsilon tolerates float transport noise when checking that a
// value carries at most two decimal places.
const roundingEpsilon = 1e-9

// verifyResponse checks the engine's boundary invariants on one
// response. The service promises a well-formed result for any input, so
// every check here is unconditional.
func verifyResponse(m Match, resp *AdjustmentResponse) error {
	for _, pair := range []struct {
		name string
		v    float64
	}{
		{"spread", resp.Spread},
		{"adjustment", resp.Adjustment},
	} {
		if !isTwoDecimal(pair.v) {
			return fmt.Errorf("%s not rounded to 2 decimals: %v", pair.name, pair.v)
		}
	}

	before := [4]Snapshot{resp.Before.Player, resp.Before.Partner, resp.Before.Opp1, resp.Before.Opp2}
	after := [4]Snapshot{resp.After.Player, resp.After.Partner, resp.After.Opp1, resp.After.Opp2}
	for i := range before {
		for _, s := range []Snapshot{before[i], after[i]} {
			if !isTwoDecimal(s.PTI) || !isTwoDecimal(s.Mu) || !isTwoDecimal(s.Sigma) {
				return fmt.Errorf("snapshot %d not rounded to 2 decimals: %+v", i, s)
			}
			if s.Sigma <= 0 {
				return fmt.Errorf("snapshot %d has non-positive volatility: %v", i, s.Sigma)
			}
		}
		// Volatility never decreases, whichever strategy served the call.
		if after[i].Sigma < before[i].Sigma {
			return fmt.Errorf("snapshot %d volatility decreased: %v -> %v", i, before[i].Sigma, after[i].Sigma)
		}
	}

	if m.AllSegmentsInvalid {
		if resp.Adjustment != 0 {
			return fmt.Errorf("fallback expected zero adjustment, got %v", resp.Adjustment)
		}
		if before != after {
			return fmt.Errorf("fallback expected before == after")
		}
	}

	return nil
}

func isTwoDecimal(v float64) bool {
	scaled := v * 100
	return math.Abs(scaled-math.Round(scaled)) < roundingEpsilon*100
}
