package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/creditpilot/credit-wizard/pkg/model"
)

func TestCalculationRoundTrip(t *testing.T) {
	s := NewAt(t.TempDir())

	if got := s.LoadCalculation(); got != nil {
		t.Fatalf("expected no snapshot, got %+v", got)
	}

	calc := &model.CreditCalculation{
		Summary: model.Summary{LightScenario: "low", HeavyScenario: "high"},
		Calcs:   model.Calculations{PerUnitCredits: 2, MonthlyTotalLight: 20, MonthlyTotalHeavy: 50},
	}
	if err := s.SaveCalculation(calc); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := s.LoadCalculation()
	if got == nil || got.Calcs.MonthlyTotalHeavy != 50 {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
}

func TestLastWriteWins(t *testing.T) {
	s := NewAt(t.TempDir())
	for _, total := range []float64{1, 2, 3} {
		if err := s.SaveCalculation(&model.CreditCalculation{
			Calcs: model.Calculations{MonthlyTotalLight: total},
		}); err != nil {
			t.Fatal(err)
		}
	}
	if got := s.LoadCalculation(); got.Calcs.MonthlyTotalLight != 3 {
		t.Fatalf("expected last write, got %+v", got)
	}
}

func TestCorruptSnapshotDiscarded(t *testing.T) {
	dir := t.TempDir()
	s := NewAt(dir)
	path := filepath.Join(dir, "last_calculation.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := s.LoadCalculation(); got != nil {
		t.Fatalf("corrupt snapshot should be discarded, got %+v", got)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("corrupt snapshot file should be removed")
	}
}

func TestFormDataRoundTrip(t *testing.T) {
	s := NewAt(t.TempDir())
	in := FormData{BusinessIdea: "AI email responder", UnitOfWork: "one email", MonthlyCount: "10000"}
	if err := s.SaveFormData(in); err != nil {
		t.Fatal(err)
	}
	got := s.LoadFormData()
	if got == nil || *got != in {
		t.Fatalf("unexpected form data: %+v", got)
	}
}

func TestClear(t *testing.T) {
	s := NewAt(t.TempDir())
	if err := s.Clear(); err != nil {
		t.Fatalf("clear on empty store: %v", err)
	}

	s.SaveCalculation(&model.CreditCalculation{Calcs: model.Calculations{PerUnitCredits: 1}})
	s.SaveFormData(FormData{BusinessIdea: "x"})
	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if s.LoadCalculation() != nil || s.LoadFormData() != nil {
		t.Fatal("snapshot survived clear")
	}
}
