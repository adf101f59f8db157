package amenity

import (
	"time"

	"github.com/michaeliryami/Refill/internal/core"
	"github.com/michaeliryami/Refill/internal/score"
)

// Tally holds the running yes/no/don't-know counters for one amenity of one
// restaurant. Counters only ever grow.
type Tally struct {
	Yes int
	No  int
	Idk int
}

// Count registers one answer in the matching bucket.
func (t *Tally) Count(answer *bool) {
	switch {
	case answer == nil:
		t.Idk++
	case *answer:
		t.Yes++
	default:
		t.No++
	}
}

// Total is the number of reports received for this amenity, "don't know"
// answers included.
func (t Tally) Total() int {
	return t.Yes + t.No + t.Idk
}

// Status derives the community verdict by strict majority: true when yes
// leads, false when no leads, nil on a tie (the 0/0 case included). Derived
// on read, never stored.
func (t Tally) Status() *bool {
	switch {
	case t.Yes > t.No:
		v := true
		return &v
	case t.No > t.Yes:
		v := false
		return &v
	default:
		return nil
	}
}

// Stat projects the tally into the shared read model.
func (t Tally) Stat() core.AmenityStat {
	return core.AmenityStat{
		Status: t.Status(),
		Yes:    t.Yes,
		No:     t.No,
		Total:  t.Total(),
	}
}

// Record is the persisted per-restaurant row, keyed by the external place
// identifier. Created on the first report, mutated on every later one, never
// deleted.
type Record struct {
	PlaceID   string
	CreatedAt time.Time
	Bread     Tally
	Refill    Tally
	Attendant Tally
	Pay       Tally
	Score     float64
}

// Apply folds one report into the record: every tally advances by exactly one
// bucket, then the running weighted average picks up the report's individual
// score. On a fresh record the report's score becomes the record score — the
// create path and the update path are the same recurrence.
func (r *Record) Apply(rep score.Report) {
	// The refill total doubles as the count of prior reports: all four
	// tallies advance in lockstep, so any one of them holds the report
	// count. A fifth amenity tracked outside this lockstep would silently
	// break the weighting.
	oldCount := r.Refill.Total()

	r.Refill.Count(rep.FreeRefills)
	r.Bread.Count(rep.BreadBasket)
	r.Pay.Count(rep.PayAtTable)
	r.Attendant.Count(rep.Attendant)

	userScore := score.Calculate(rep)
	if oldCount > 0 {
		r.Score = score.Clamp((r.Score*float64(oldCount) + userScore) / float64(oldCount+1))
	} else {
		r.Score = userScore
	}
}

// AmenitySet projects the record's four tallies into the shared read model.
func (r *Record) AmenitySet() core.AmenitySet {
	return core.AmenitySet{
		FreeRefills: r.Refill.Stat(),
		BreadBasket: r.Bread.Stat(),
		PayAtTable:  r.Pay.Stat(),
		Attendant:   r.Attendant.Stat(),
	}
}
