package fuzz

import "testing"

func TestRunFindsNoFailures(t *testing.T) {
	report := Run[uint8](500, 4)
	if report.Checked != 500 {
		t.Errorf("Checked = %d, want 500", report.Checked)
	}
	for _, f := range report.Failures {
		t.Errorf("unexpected property failure: [%s] %s", f.Property, f.Detail)
	}
}

func TestRunDefaultsWorkerCount(t *testing.T) {
	report := Run[uint16](100, 0)
	if report.Checked != 100 {
		t.Errorf("Checked = %d, want 100", report.Checked)
	}
}
