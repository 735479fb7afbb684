package templates_test

import (
	"testing"

	"resume-builder/internal/templates"
)

func TestRegistryLookup(t *testing.T) {
	r := templates.NewRegistry()

	if _, ok := r.ByID("unknown-id"); ok {
		t.Fatal("expected absent for an unknown id")
	}

	tpl, ok := r.ByID("ats")
	if !ok {
		t.Fatal("expected the ats preset")
	}
	if tpl.Name != "ATS-Friendly" {
		t.Fatalf("unexpected template: %+v", tpl)
	}

	if def := r.Default(); def.ID != "modern" {
		t.Fatalf("expected modern default, got %q", def.ID)
	}
}

func TestRegistryAllIsDefensive(t *testing.T) {
	r := templates.NewRegistry()

	all := r.All()
	if len(all) != 4 {
		t.Fatalf("expected 4 presets, got %d", len(all))
	}

	all[0].ID = "mutated"
	if r.Default().ID != "modern" {
		t.Fatal("mutating the returned slice leaked into the registry")
	}
}

func TestSelectorBroadcast(t *testing.T) {
	s := templates.NewSelector("")

	var seen []string
	cancel := s.Subscribe(func(id string) { seen = append(seen, id) })

	if len(seen) != 1 || seen[0] != "modern" {
		t.Fatalf("expected immediate delivery of the default, got %v", seen)
	}

	s.Set("creative")
	s.Set("minimal")

	if len(seen) != 3 || seen[1] != "creative" || seen[2] != "minimal" {
		t.Fatalf("expected one delivery per Set in order, got %v", seen)
	}
	if s.Current() != "minimal" {
		t.Fatalf("expected minimal, got %q", s.Current())
	}

	cancel()
	s.Set("ats")
	if len(seen) != 3 {
		t.Fatal("cancelled subscription still received a delivery")
	}
}
