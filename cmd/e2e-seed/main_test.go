package main

import (
	"strings"
	"testing"
)

func TestFixtureID(t *testing.T) {
	tests := []struct {
		kind string
		name string
		want string
	}{
		{"user", "e2e-admin@localhost", "e2e-user-e2e-admin-localhost"},
		{"field", "e2e-field", "e2e-field-e2e-field"},
		{"activity", "E2E Activity", "e2e-activity-e2e-activity"},
	}
	for _, tt := range tests {
		if got := fixtureID(tt.kind, tt.name); got != tt.want {
			t.Errorf("fixtureID(%q, %q) = %q, want %q", tt.kind, tt.name, got, tt.want)
		}
	}
}

func TestFixtureIDDeterministic(t *testing.T) {
	a := fixtureID("user", defaultClientEmail)
	b := fixtureID("user", defaultClientEmail)
	if a != b {
		t.Fatalf("fixtureID not deterministic: %q vs %q", a, b)
	}
}

func TestFixtureIDTruncatesLongNames(t *testing.T) {
	long := strings.Repeat("x", 100)
	got := fixtureID("field", long)
	if len(got) > len("e2e-field-")+40 {
		t.Fatalf("fixtureID too long: %d chars", len(got))
	}
	if !strings.HasPrefix(got, "e2e-field-") {
		t.Fatalf("unexpected prefix: %q", got)
	}
}
