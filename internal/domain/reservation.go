package domain

import (
	"fmt"
	"time"
)

// ReservationStatus represents the status of a reservation.
// Statuses are unordered and freely settable: any status may be changed to any
// other, there is no transition state machine.
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "PENDING"   // awaiting confirmation
	StatusConfirmed ReservationStatus = "CONFIRMED" // confirmed, not yet seated
	StatusSeated    ReservationStatus = "SEATED"    // currently at the table
	StatusFinished  ReservationStatus = "FINISHED"  // completed
	StatusNoShow    ReservationStatus = "NO_SHOW"   // didn't arrive
	StatusCancelled ReservationStatus = "CANCELLED" // cancelled
)

// Priority represents the priority class of a reservation
type Priority string

const (
	PriorityStandard   Priority = "STANDARD"
	PriorityVIP        Priority = "VIP"
	PriorityLargeGroup Priority = "LARGE_GROUP"
)

// Customer holds the contact record attached to a reservation
type Customer struct {
	Name  string
	Phone string
	Email *string
	Notes *string
}

// Reservation is the mutable entity under scheduling control.
// StartTime and EndTime are timezone-qualified instants in the system's fixed
// offset; DurationMinutes always equals EndTime - StartTime in whole minutes.
type Reservation struct {
	ID              string
	TableID         string
	Customer        Customer
	PartySize       int
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
	Status          ReservationStatus
	Priority        Priority
	Notes           *string
	Source          *string // 'phone', 'web', 'walkin', 'app'
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsActive returns true if the reservation still occupies its table slot
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled && r.Status != StatusNoShow
}

// Overlaps reports whether the [start, end) intervals of two reservations
// intersect. Strict comparison: back-to-back reservations with touching
// endpoints do not overlap.
func (r *Reservation) Overlaps(other *Reservation) bool {
	return r.StartTime.Before(other.EndTime) && other.StartTime.Before(r.EndTime)
}

// Validate checks the field-level invariants that must hold for every stored
// reservation. Overlap and capacity fit are advisory conflicts, not invariants,
// and are deliberately not checked here.
func (r *Reservation) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidReservation)
	}
	if r.TableID == "" {
		return fmt.Errorf("%w: empty tableId", ErrInvalidReservation)
	}
	if r.PartySize < 1 {
		return fmt.Errorf("%w: partySize must be >= 1", ErrInvalidReservation)
	}
	if !r.EndTime.After(r.StartTime) {
		return fmt.Errorf("%w: end must be after start", ErrInvalidReservation)
	}
	minutes := int(r.EndTime.Sub(r.StartTime).Round(time.Minute) / time.Minute)
	if r.DurationMinutes != minutes {
		return fmt.Errorf("%w: durationMinutes=%d does not match interval of %d minutes",
			ErrInvalidReservation, r.DurationMinutes, minutes)
	}
	if r.DurationMinutes%SlotMinutes != 0 {
		return fmt.Errorf("%w: durationMinutes=%d is not a multiple of %d",
			ErrInvalidReservation, r.DurationMinutes, SlotMinutes)
	}
	if r.DurationMinutes < MinDurationMinutes || r.DurationMinutes > MaxDurationMinutes {
		return fmt.Errorf("%w: durationMinutes=%d outside [%d, %d]",
			ErrInvalidReservation, r.DurationMinutes, MinDurationMinutes, MaxDurationMinutes)
	}
	if !isValidStatus(r.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidReservation, r.Status)
	}
	if !isValidPriority(r.Priority) {
		return fmt.Errorf("%w: unknown priority %q", ErrInvalidReservation, r.Priority)
	}
	return nil
}

func isValidStatus(s ReservationStatus) bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

func isValidPriority(p Priority) bool {
	for _, known := range AllPriorities {
		if p == known {
			return true
		}
	}
	return false
}
