package fleet

import "testing"

func TestCharacteristicFrequenciesAreAllPositive(t *testing.T) {
	bg := DefaultGeometry("modern")
	f := Characteristics(bg, 1500)

	for name, hz := range map[string]float64{
		"shaft": f.ShaftHz, "bpfo": f.BPFOHz, "bpfi": f.BPFIHz, "bsf": f.BSFHz, "ftf": f.FTFHz,
	} {
		if hz <= 0 {
			t.Errorf("%s = %v, want > 0", name, hz)
		}
	}
}

func TestBPFIExceedsBPFOForTheSameGeometry(t *testing.T) {
	bg := DefaultGeometry("modern")
	if BPFI(bg, 1500) <= BPFO(bg, 1500) {
		t.Error("BPFI should exceed BPFO when the contact angle is zero and ball count is fixed")
	}
}

func TestDefaultGeometryIsFixedPerEngineVariant(t *testing.T) {
	a := DefaultGeometry("modern")
	b := DefaultGeometry("modern")
	if a != b {
		t.Fatal("DefaultGeometry is not deterministic per variant")
	}
	older := DefaultGeometry("older")
	if a == older {
		t.Fatal("modern and older variants should not share identical bearing geometry")
	}
}
