package storage

import (
	"encoding/csv"
	"os"
	"testing"

	"github.com/fleetsynth/dieselgen/internal/features"
)

func fullFeatureMap() map[string]float64 {
	m := make(map[string]float64, len(features.FeatureColumns()))
	for _, c := range features.FeatureColumns() {
		m[c] = 1.0
	}
	return m
}

func TestRowWriterWritesHeaderMatchingOutputColumns(t *testing.T) {
	dir := t.TempDir()
	w, err := NewRowWriter(dir, 1, 0)
	if err != nil {
		t.Fatalf("NewRowWriter() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	f, err := os.Open(DayFilePath(dir, 1, 0))
	if err != nil {
		t.Fatalf("open day file: %v", err)
	}
	defer f.Close()
	header, err := csv.NewReader(f).Read()
	if err != nil {
		t.Fatalf("read header: %v", err)
	}
	want := features.OutputColumns()
	if len(header) != len(want) {
		t.Fatalf("header has %d columns, want %d", len(header), len(want))
	}
	for i, c := range want {
		if header[i] != c {
			t.Errorf("header[%d] = %q, want %q", i, header[i], c)
		}
	}
}

func TestRowWriterWriteRowColumnCountMatchesHeader(t *testing.T) {
	dir := t.TempDir()
	w, err := NewRowWriter(dir, 1, 0)
	if err != nil {
		t.Fatalf("NewRowWriter() error = %v", err)
	}
	if err := w.WriteRow(60, 1, "modern", 0, 0, fullFeatureMap(), "", "HEALTHY", 99999.0, "NORMAL"); err != nil {
		t.Fatalf("WriteRow() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	f, err := os.Open(DayFilePath(dir, 1, 0))
	if err != nil {
		t.Fatalf("open day file: %v", err)
	}
	defer f.Close()
	r := csv.NewReader(f)
	header, _ := r.Read()
	record, err := r.Read()
	if err != nil {
		t.Fatalf("read data row: %v", err)
	}
	if len(record) != len(header) {
		t.Fatalf("data row has %d fields, header has %d", len(record), len(header))
	}
}

func TestCloseOnASuccessfulWriteReturnsNil(t *testing.T) {
	dir := t.TempDir()
	w, err := NewRowWriter(dir, 2, 0)
	if err != nil {
		t.Fatalf("NewRowWriter() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() on a healthy writer = %v, want nil", err)
	}
}

func TestDayFilePathIsStablePerTruckAndDay(t *testing.T) {
	a := DayFilePath("/out", 5, 3)
	b := DayFilePath("/out", 5, 3)
	if a != b {
		t.Errorf("DayFilePath is not a pure function of its inputs: %q != %q", a, b)
	}
	if DayFilePath("/out", 5, 3) == DayFilePath("/out", 5, 4) {
		t.Error("DayFilePath should differ across day indices")
	}
}
