package score

import "math"

// Report is one user's amenity answer set plus their subjective baseline
// rating. A nil answer means "don't know / no opinion" for that amenity; a
// nil BaseScore falls back to the neutral baseline of 5.
type Report struct {
	FreeRefills *bool    `json:"free_refills"`
	BreadBasket *bool    `json:"bread_basket"`
	PayAtTable  *bool    `json:"pay_at_table"`
	Attendant   *bool    `json:"attendant"`
	BaseScore   *float64 `json:"base_score"`
}

// DefaultBase is the baseline used when a report carries no base score.
const DefaultBase = 5.0

// Fixed product-tuned adjustment weights. Keep these exact.
const (
	refillsPoints    = 2.2
	breadBonus       = 1.0
	breadPenalty     = 3.0
	payBonus         = 1.5
	payPenalty       = 0.5
	attendantPenalty = 3.0
)

// Calculate converts one report into a single bounded score.
// PURE scoring logic (no state / no I/O).
//
// Starts from the base score and applies one independent adjustment per
// answered amenity; unanswered amenities contribute nothing. The final value
// is clamped to [0, 10] — the only nonlinearity in the whole calculation.
func Calculate(r Report) float64 {
	s := DefaultBase
	if r.BaseScore != nil {
		s = *r.BaseScore
	}

	if r.FreeRefills != nil {
		if *r.FreeRefills {
			s += refillsPoints
		} else {
			s -= refillsPoints
		}
	}

	if r.BreadBasket != nil {
		if *r.BreadBasket {
			s += breadBonus
		} else {
			s -= breadPenalty
		}
	}

	if r.PayAtTable != nil {
		if *r.PayAtTable {
			s += payBonus
		} else {
			s -= payPenalty
		}
	}

	// An attendant costs points when present; their absence is neutral.
	if r.Attendant != nil && *r.Attendant {
		s -= attendantPenalty
	}

	return Clamp(s)
}

// Average combines a set of scores. With no scores it returns 0 ("no data",
// not an error). When weights are supplied and match the scores in length the
// result is the weighted average Σ(score·weight)/Σ(weight); otherwise the
// plain arithmetic mean.
func Average(scores, weights []float64) float64 {
	if len(scores) == 0 {
		return 0
	}

	if len(weights) == len(scores) {
		var sum, weightSum float64
		for i, s := range scores {
			sum += s * weights[i]
			weightSum += weights[i]
		}
		return sum / weightSum
	}

	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

// Clamp bounds a score to the valid [0, 10] range.
func Clamp(v float64) float64 {
	return math.Max(0, math.Min(10, v))
}

// Color maps a score to its display color band. Total over all inputs, not
// just [0, 10].
func Color(s float64) string {
	switch {
	case s >= 8:
		return "green"
	case s >= 6:
		return "amber"
	case s >= 4:
		return "orange"
	default:
		return "red"
	}
}

// Label maps a score to its display label.
func Label(s float64) string {
	switch {
	case s >= 9:
		return "Excellent"
	case s >= 7:
		return "Very Good"
	case s >= 5:
		return "Good"
	case s >= 3:
		return "Fair"
	default:
		return "Poor"
	}
}
