package domain

// ReservationStatus is the decision state of a capacity request.
// PENDING is the only non-terminal state.
type ReservationStatus string

const (
	ReservationPending  ReservationStatus = "PENDING"
	ReservationApproved ReservationStatus = "APPROVED"
	ReservationRejected ReservationStatus = "REJECTED"
)

// Valid reports whether s is a known status.
func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationApproved, ReservationRejected:
		return true
	}
	return false
}

// Terminal reports whether s admits no further transition.
func (s ReservationStatus) Terminal() bool {
	switch s {
	case ReservationApproved, ReservationRejected:
		return true
	case ReservationPending:
		return false
	}
	return false
}

// Decision is an administrator's ruling on a pending reservation.
type Decision string

const (
	DecisionApprove Decision = "APPROVED"
	DecisionReject  Decision = "REJECTED"
)

// Valid reports whether d is a known decision.
func (d Decision) Valid() bool {
	return d == DecisionApprove || d == DecisionReject
}
