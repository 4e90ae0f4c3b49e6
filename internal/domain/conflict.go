package domain

// ConflictReason identifies the rule a candidate placement violates.
// All conflicts are advisory: they are surfaced to the user but never block
// the underlying mutation.
type ConflictReason string

const (
	ReasonOverlap             ConflictReason = "overlap"
	ReasonCapacityExceeded    ConflictReason = "capacity_exceeded"
	ReasonOutsideServiceHours ConflictReason = "outside_service_hours"
	ReasonTableNotFound       ConflictReason = "table_not_found"
	ReasonInvalidDuration     ConflictReason = "invalid_duration"
)

// ConflictCheck is the structured result of validating a candidate placement
type ConflictCheck struct {
	HasConflict               bool
	ConflictingReservationIDs []string
	Reason                    ConflictReason // empty when HasConflict is false
}

// NoConflict returns a clean check result
func NoConflict() ConflictCheck {
	return ConflictCheck{ConflictingReservationIDs: []string{}}
}
