package amenity

import (
	"math"
	"testing"

	"github.com/michaeliryami/Refill/internal/score"
)

func boolPtr(b bool) *bool { return &b }

func floatPtr(f float64) *float64 { return &f }

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// --------------------------------------------------
// Tally
// --------------------------------------------------

func TestTallyCount_Buckets(t *testing.T) {
	var tally Tally

	tally.Count(boolPtr(true))
	tally.Count(boolPtr(false))
	tally.Count(nil)
	tally.Count(boolPtr(true))

	if tally.Yes != 2 || tally.No != 1 || tally.Idk != 1 {
		t.Fatalf("expected {2 1 1}, got {%d %d %d}", tally.Yes, tally.No, tally.Idk)
	}
	if tally.Total() != 4 {
		t.Fatalf("expected total 4, got %d", tally.Total())
	}
}

func TestTallyStatus_StrictMajority(t *testing.T) {
	cases := []struct {
		name  string
		tally Tally
		want  *bool
	}{
		{name: "yes majority", tally: Tally{Yes: 4, No: 1}, want: boolPtr(true)},
		{name: "no majority", tally: Tally{Yes: 1, No: 4}, want: boolPtr(false)},
		{name: "tie", tally: Tally{Yes: 3, No: 3}, want: nil},
		{name: "only idk", tally: Tally{Idk: 5}, want: nil},
		{name: "empty", tally: Tally{}, want: nil},
	}

	for _, c := range cases {
		got := c.tally.Status()
		if c.want == nil {
			if got != nil {
				t.Errorf("%s: expected nil status, got %v", c.name, *got)
			}
			continue
		}
		if got == nil {
			t.Errorf("%s: expected %v, got nil", c.name, *c.want)
			continue
		}
		if *got != *c.want {
			t.Errorf("%s: expected %v, got %v", c.name, *c.want, *got)
		}
	}
}

func TestTallyStatus_IdkNeverBiasesTheVote(t *testing.T) {
	tally := Tally{Yes: 1, No: 0, Idk: 10}
	got := tally.Status()
	if got == nil || !*got {
		t.Fatalf("expected true despite 10 idk answers, got %v", got)
	}
}

// --------------------------------------------------
// Record.Apply — the aggregation recurrence
// --------------------------------------------------

func TestApply_FirstReportCreatesTallies(t *testing.T) {
	rec := &Record{PlaceID: "X"}
	rec.Apply(score.Report{
		FreeRefills: boolPtr(true),
		BreadBasket: boolPtr(true),
		PayAtTable:  boolPtr(true),
		Attendant:   boolPtr(false),
		BaseScore:   floatPtr(9),
	})

	if rec.Refill != (Tally{Yes: 1}) {
		t.Errorf("refill: expected {1 0 0}, got %+v", rec.Refill)
	}
	if rec.Bread != (Tally{Yes: 1}) {
		t.Errorf("bread: expected {1 0 0}, got %+v", rec.Bread)
	}
	if rec.Pay != (Tally{Yes: 1}) {
		t.Errorf("pay: expected {1 0 0}, got %+v", rec.Pay)
	}
	if rec.Attendant != (Tally{No: 1}) {
		t.Errorf("attendant: expected {0 1 0}, got %+v", rec.Attendant)
	}

	// 9 + 2.2 + 1.0 + 1.5 clamps to 10.
	if rec.Score != 10 {
		t.Errorf("expected score 10, got %v", rec.Score)
	}
}

func TestApply_SecondReportRunsWeightedAverage(t *testing.T) {
	rec := &Record{PlaceID: "X"}
	rec.Apply(score.Report{
		FreeRefills: boolPtr(true),
		BreadBasket: boolPtr(true),
		PayAtTable:  boolPtr(true),
		Attendant:   boolPtr(false),
		BaseScore:   floatPtr(9),
	})
	rec.Apply(score.Report{
		FreeRefills: boolPtr(false),
		PayAtTable:  boolPtr(true),
		Attendant:   boolPtr(false),
		BaseScore:   floatPtr(5),
	})

	if rec.Refill != (Tally{Yes: 1, No: 1}) {
		t.Errorf("refill: expected {1 1 0}, got %+v", rec.Refill)
	}
	if rec.Bread != (Tally{Yes: 1, Idk: 1}) {
		t.Errorf("bread: expected {1 0 1}, got %+v", rec.Bread)
	}
	if rec.Pay != (Tally{Yes: 2}) {
		t.Errorf("pay: expected {2 0 0}, got %+v", rec.Pay)
	}
	if rec.Attendant != (Tally{No: 2}) {
		t.Errorf("attendant: expected {0 2 0}, got %+v", rec.Attendant)
	}

	// Second report scores 5 - 2.2 + 1.5 = 4.3; (10*1 + 4.3) / 2 = 7.15.
	if !almostEqual(rec.Score, 7.15) {
		t.Errorf("expected score 7.15, got %v", rec.Score)
	}
}

func TestApply_SequentialReportsMatchClosedFormMean(t *testing.T) {
	rec := &Record{PlaceID: "X"}
	bases := []float64{3, 6, 9}
	for _, b := range bases {
		rec.Apply(score.Report{BaseScore: floatPtr(b)})
	}

	// The incremental recurrence must equal the plain mean of the three
	// individual scores.
	if !almostEqual(rec.Score, 6) {
		t.Fatalf("expected (3+6+9)/3 = 6, got %v", rec.Score)
	}
	if rec.Refill.Total() != 3 {
		t.Fatalf("expected 3 reports counted, got %d", rec.Refill.Total())
	}
}

func TestApply_AllTalliesAdvanceInLockstep(t *testing.T) {
	rec := &Record{PlaceID: "X"}
	rec.Apply(score.Report{FreeRefills: boolPtr(true)})
	rec.Apply(score.Report{Attendant: boolPtr(true)})

	for name, tally := range map[string]Tally{
		"refill":    rec.Refill,
		"bread":     rec.Bread,
		"pay":       rec.Pay,
		"attendant": rec.Attendant,
	} {
		if tally.Total() != 2 {
			t.Errorf("%s: expected total 2, got %d", name, tally.Total())
		}
	}
}

// --------------------------------------------------
// Read-model projection
// --------------------------------------------------

func TestAmenitySet_ProjectsStatsAndStatuses(t *testing.T) {
	rec := &Record{
		PlaceID:   "X",
		Refill:    Tally{Yes: 4, No: 1},
		Bread:     Tally{Yes: 2, No: 2, Idk: 1},
		Pay:       Tally{No: 3, Idk: 2},
		Attendant: Tally{Idk: 5},
	}

	set := rec.AmenitySet()

	if set.FreeRefills.Status == nil || !*set.FreeRefills.Status {
		t.Errorf("refills: expected status true, got %v", set.FreeRefills.Status)
	}
	if set.BreadBasket.Status != nil {
		t.Errorf("bread: expected nil status on tie, got %v", *set.BreadBasket.Status)
	}
	if set.PayAtTable.Status == nil || *set.PayAtTable.Status {
		t.Errorf("pay: expected status false, got %v", set.PayAtTable.Status)
	}
	if set.Attendant.Status != nil {
		t.Errorf("attendant: expected nil status, got %v", *set.Attendant.Status)
	}

	// Totals include don't-know answers.
	if set.BreadBasket.Total != 5 {
		t.Errorf("bread: expected total 5, got %d", set.BreadBasket.Total)
	}
	if set.PayAtTable.Yes != 0 || set.PayAtTable.No != 3 || set.PayAtTable.Total != 5 {
		t.Errorf("pay: expected yes=0 no=3 total=5, got %+v", set.PayAtTable)
	}
}
