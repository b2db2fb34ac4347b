package trace

import (
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.gob")

	want := &Trace{Steps: []Step{
		{Op: "add", Width: 8, Operand1: "5", Operand2: "3", Result: "8"},
		{Op: "mul", Width: 8, Operand1: "8", Operand2: "2", Result: "16"},
	}}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(got.Steps) != len(want.Steps) {
		t.Fatalf("Load returned %d steps, want %d", len(got.Steps), len(want.Steps))
	}
	for i := range want.Steps {
		if got.Steps[i] != want.Steps[i] {
			t.Errorf("step %d = %+v, want %+v", i, got.Steps[i], want.Steps[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.gob"))
	if err == nil {
		t.Fatal("Load on a missing file returned no error")
	}
}
