package main

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDatasetParsing(t *testing.T) {
	t.Parallel()

	raw := []byte(`
users:
  - email: supervisor@ferme.local
    full_name: Demo Supervisor
    password: changeme-1
    role: SUPERVISOR
  - email: client@ferme.local
    full_name: Demo Client
    password: changeme-2
    role: CLIENT
fields:
  - name: Parcelle Nord
    location: Secteur A
    total_capacity: 1500.5
    soil_type: argileux
activity_types:
  - name: Maraichage
    description: Cultures legumieres de plein champ
`)

	var ds dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		t.Fatalf("unmarshal dataset: %v", err)
	}

	if len(ds.Users) != 2 {
		t.Fatalf("users = %d, want 2", len(ds.Users))
	}
	if ds.Users[0].Role != "SUPERVISOR" || ds.Users[1].Role != "CLIENT" {
		t.Fatalf("unexpected roles: %q, %q", ds.Users[0].Role, ds.Users[1].Role)
	}

	if len(ds.Fields) != 1 {
		t.Fatalf("fields = %d, want 1", len(ds.Fields))
	}
	if ds.Fields[0].TotalCapacity != 1500.5 {
		t.Fatalf("total_capacity = %v, want 1500.5", ds.Fields[0].TotalCapacity)
	}

	if len(ds.ActivityTypes) != 1 {
		t.Fatalf("activity_types = %d, want 1", len(ds.ActivityTypes))
	}
}

func TestDatasetParsing_EmptyDocument(t *testing.T) {
	t.Parallel()

	var ds dataset
	if err := yaml.Unmarshal([]byte(""), &ds); err != nil {
		t.Fatalf("unmarshal empty dataset: %v", err)
	}
	if len(ds.Users) != 0 || len(ds.Fields) != 0 || len(ds.ActivityTypes) != 0 {
		t.Fatal("empty document should produce an empty dataset")
	}
}
