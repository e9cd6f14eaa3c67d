// Package domain provides domain models for the farm platform.
//
// Statuses are closed types with exhaustive switches; handlers never
// compare raw strings, so an unknown status can only fail loudly instead
// of falling through to a default.
package domain

// ProjectStatus is the lifecycle state of a capacity-holding project.
type ProjectStatus string

const (
	// Capacity-holding statuses: surface counts against the field.
	ProjectALancer   ProjectStatus = "A_LANCER"
	ProjectProgramme ProjectStatus = "PROGRAMME"
	ProjectEnCours   ProjectStatus = "EN_COURS"

	// ProjectFinalise releases the project's surface back to the field.
	ProjectFinalise ProjectStatus = "FINALISE"
)

// ProjectStatuses lists every valid status.
func ProjectStatuses() []ProjectStatus {
	return []ProjectStatus{ProjectALancer, ProjectProgramme, ProjectEnCours, ProjectFinalise}
}

// Valid reports whether s is a known status.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectALancer, ProjectProgramme, ProjectEnCours, ProjectFinalise:
		return true
	}
	return false
}

// Holding reports whether a project in status s counts its surface
// against the field's free capacity.
func (s ProjectStatus) Holding() bool {
	switch s {
	case ProjectALancer, ProjectProgramme, ProjectEnCours:
		return true
	case ProjectFinalise:
		return false
	}
	return false
}

// HoldingStatuses lists the capacity-holding statuses, for queries that
// sum usage over a field.
func HoldingStatuses() []ProjectStatus {
	return []ProjectStatus{ProjectALancer, ProjectProgramme, ProjectEnCours}
}

// StatusDelta returns the signed free-capacity adjustment for a project
// of the given surface moving from → to. Moves inside the holding group
// are capacity-neutral; only crossing the FINALISE boundary has an effect:
//
//	holding → FINALISE  +surface (release)
//	FINALISE → holding  -surface (re-consume)
func StatusDelta(from, to ProjectStatus, surface float64) float64 {
	switch {
	case from.Holding() && !to.Holding():
		return +surface
	case !from.Holding() && to.Holding():
		return -surface
	default:
		return 0
	}
}

// CreationDelta returns the free-capacity adjustment for creating a
// project directly in the given status.
func CreationDelta(status ProjectStatus, surface float64) float64 {
	if status.Holding() {
		return -surface
	}
	return 0
}

// DeletionDelta returns the free-capacity adjustment for deleting a
// project currently in the given status.
func DeletionDelta(status ProjectStatus, surface float64) float64 {
	if status.Holding() {
		return +surface
	}
	return 0
}
