package faults

import "testing"

func TestSeverityAtBeforeOnsetIsZero(t *testing.T) {
	d := NewDegradationModel(0.1, 1000, 1)
	if s := d.SeverityAt(0); s != 0 {
		t.Errorf("SeverityAt(0) = %v, want 0", s)
	}
	if s := d.SeverityAt(-10); s != 0 {
		t.Errorf("SeverityAt(-10) = %v, want 0", s)
	}
}

func TestSeverityAtEndOfLifeSaturatesAtOne(t *testing.T) {
	d := NewDegradationModel(0.1, 1000, 1)
	if s := d.SeverityAt(1000); s != 1.0 {
		t.Errorf("SeverityAt(totalHours) = %v, want 1.0", s)
	}
	if s := d.SeverityAt(5000); s != 1.0 {
		t.Errorf("SeverityAt(beyond totalHours) = %v, want 1.0", s)
	}
}

func TestSeverityAtIsMonotonicOnAverage(t *testing.T) {
	d := NewDegradationModel(0.05, 1000, 1)
	prev := 0.0
	violations := 0
	for h := 0.0; h < 1000; h += 50 {
		s := d.SeverityAt(h)
		if s < prev-0.05 {
			violations++
		}
		prev = s
	}
	if violations > 2 {
		t.Errorf("severity curve decreased meaningfully %d times; low-noise curve should be nearly monotonic", violations)
	}
}

func TestSeverityAtStaysInUnitRange(t *testing.T) {
	d := NewDegradationModel(0.2, 2000, 99)
	for h := 0.0; h <= 2000; h += 37 {
		s := d.SeverityAt(h)
		if s < 0 || s > 1 {
			t.Fatalf("SeverityAt(%v) = %v, outside [0,1]", h, s)
		}
	}
}

func TestStageAtMapsLifePercentageToStageThresholds(t *testing.T) {
	d := NewDegradationModel(0.1, 1000, 1)
	cases := []struct {
		tHours float64
		total  float64
		want   string
	}{
		{0, 1000, "HEALTHY"},
		{100, 1000, "STAGE1"},
		{650, 1000, "STAGE2"},
		{800, 1000, "STAGE3"},
		{980, 1000, "STAGE4"},
	}
	for _, c := range cases {
		if got := d.StageAt(c.tHours, c.total).String(); got != c.want {
			t.Errorf("StageAt(%v, %v) = %v, want %v", c.tHours, c.total, got, c.want)
		}
	}
}
