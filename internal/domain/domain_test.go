package domain

import "testing"

func TestProjectStatus_Holding(t *testing.T) {
	tests := []struct {
		status ProjectStatus
		want   bool
	}{
		{ProjectALancer, true},
		{ProjectProgramme, true},
		{ProjectEnCours, true},
		{ProjectFinalise, false},
		{ProjectStatus("BOGUS"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.Holding(); got != tt.want {
				t.Errorf("Holding() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProjectStatus_Valid(t *testing.T) {
	for _, s := range ProjectStatuses() {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if ProjectStatus("EN-COURS").Valid() {
		t.Error("unknown status should not be valid")
	}
	if ProjectStatus("").Valid() {
		t.Error("empty status should not be valid")
	}
}

// TestStatusDelta covers every boundary combination: only crossing the
// FINALISE boundary moves capacity, and the sign matches the direction.
func TestStatusDelta(t *testing.T) {
	const surface = 60.0

	tests := []struct {
		name string
		from ProjectStatus
		to   ProjectStatus
		want float64
	}{
		{"holding to holding", ProjectALancer, ProjectEnCours, 0},
		{"holding to same", ProjectEnCours, ProjectEnCours, 0},
		{"holding to finalise releases", ProjectEnCours, ProjectFinalise, +surface},
		{"programme to finalise releases", ProjectProgramme, ProjectFinalise, +surface},
		{"finalise to holding consumes", ProjectFinalise, ProjectALancer, -surface},
		{"finalise to finalise", ProjectFinalise, ProjectFinalise, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusDelta(tt.from, tt.to, surface); got != tt.want {
				t.Errorf("StatusDelta(%s, %s, %v) = %v, want %v", tt.from, tt.to, surface, got, tt.want)
			}
		})
	}
}

func TestCreationAndDeletionDelta(t *testing.T) {
	const surface = 42.5

	if got := CreationDelta(ProjectALancer, surface); got != -surface {
		t.Errorf("CreationDelta(holding) = %v, want %v", got, -surface)
	}
	if got := CreationDelta(ProjectFinalise, surface); got != 0 {
		t.Errorf("CreationDelta(FINALISE) = %v, want 0", got)
	}
	if got := DeletionDelta(ProjectEnCours, surface); got != +surface {
		t.Errorf("DeletionDelta(holding) = %v, want %v", got, +surface)
	}
	if got := DeletionDelta(ProjectFinalise, surface); got != 0 {
		t.Errorf("DeletionDelta(FINALISE) = %v, want 0", got)
	}

	// Round trip: finalize then reactivate with unchanged surface nets zero.
	release := StatusDelta(ProjectEnCours, ProjectFinalise, surface)
	consume := StatusDelta(ProjectFinalise, ProjectEnCours, surface)
	if release+consume != 0 {
		t.Errorf("finalize+reactivate = %v, want 0", release+consume)
	}
}

func TestReservationStatus_Terminal(t *testing.T) {
	tests := []struct {
		status ReservationStatus
		want   bool
	}{
		{ReservationPending, false},
		{ReservationApproved, true},
		{ReservationRejected, true},
	}

	for _, tt := range tests {
		if got := tt.status.Terminal(); got != tt.want {
			t.Errorf("%s.Terminal() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestDecision_Valid(t *testing.T) {
	if !DecisionApprove.Valid() || !DecisionReject.Valid() {
		t.Error("known decisions should be valid")
	}
	if Decision("PENDING").Valid() {
		t.Error("PENDING is not a decision")
	}
}

func TestRole_Valid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleSupervisor, RoleClient} {
		if !r.Valid() {
			t.Errorf("%s should be valid", r)
		}
	}
	if Role("ROOT").Valid() {
		t.Error("unknown role should not be valid")
	}
}
