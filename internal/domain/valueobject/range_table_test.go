package valueobject

import "testing"

func TestNewRangeTable_RequiresAllGeneratedVitals(t *testing.T) {
	ranges := map[VitalType]VitalRanges{}
	for _, vital := range GeneratedVitals() {
		nr, err := NewNormalRange(1, 2)
		if err != nil {
			t.Fatalf("NewNormalRange failed: %v", err)
		}
		ranges[vital] = NewVitalRanges(nr)
	}

	if _, err := NewRangeTable(ranges); err != nil {
		t.Errorf("NewRangeTable with full map returned error: %v", err)
	}

	delete(ranges, Temperature)
	if _, err := NewRangeTable(ranges); err == nil {
		t.Error("NewRangeTable without temperature should return error")
	}
}

func TestDefaultRangeTable_Completeness(t *testing.T) {
	table := DefaultRangeTable()

	for _, vital := range GeneratedVitals() {
		if _, err := table.Ranges(vital); err != nil {
			t.Errorf("DefaultRangeTable missing ranges for %q: %v", vital, err)
		}
	}

	if _, err := table.Ranges(MeanArterialPressure); err == nil {
		t.Error("MAP should have no configured ranges")
	}
}

func TestDefaultRangeTable_SpO2HasNoHighExcursion(t *testing.T) {
	table := DefaultRangeTable()

	vr, err := table.Ranges(SpO2)
	if err != nil {
		t.Fatalf("Ranges(SpO2) failed: %v", err)
	}

	if _, ok := vr.HighExcursion(); ok {
		t.Error("SpO2 should not have a high excursion range")
	}
	if _, ok := vr.LowExcursion(); !ok {
		t.Error("SpO2 should have a low excursion range")
	}
}

func TestDefaultRangeTable_ExcursionsOutsideNormal(t *testing.T) {
	table := DefaultRangeTable()

	for _, vital := range GeneratedVitals() {
		vr, err := table.Ranges(vital)
		if err != nil {
			t.Fatalf("Ranges(%q) failed: %v", vital, err)
		}

		normal := vr.Normal()
		if low, ok := vr.LowExcursion(); ok {
			if low.High() >= normal.Low() {
				t.Errorf("%q: low excursion overlaps normal range", vital)
			}
		}
		if high, ok := vr.HighExcursion(); ok {
			if high.Low() <= normal.High() {
				t.Errorf("%q: high excursion overlaps normal range", vital)
			}
		}
	}
}
