package conflict_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/TomyMarengo/Woki-Challenge/internal/conflict"
	"github.com/TomyMarengo/Woki-Challenge/internal/domain"
	"github.com/TomyMarengo/Woki-Challenge/internal/timegrid"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, time.October, 22, hour, minute, 0, 0, timegrid.Location)
}

func reservation(id, tableID string, start, end time.Time) *domain.Reservation {
	return &domain.Reservation{
		ID:              id,
		TableID:         tableID,
		PartySize:       2,
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: int(end.Sub(start) / time.Minute),
		Status:          domain.StatusConfirmed,
		Priority:        domain.PriorityStandard,
	}
}

func TestOverlaps_Symmetric(t *testing.T) {
	a := reservation("A", "T1", at(12, 0), at(13, 30))
	b := reservation("B", "T1", at(13, 0), at(14, 0))

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
}

func TestOverlaps_TouchingEndpointsNeverOverlap(t *testing.T) {
	a := reservation("A", "T1", at(12, 0), at(13, 30))
	b := reservation("B", "T1", at(13, 30), at(15, 0))

	assert.False(t, a.Overlaps(b))
	assert.False(t, b.Overlaps(a))
}

func TestOverlaps_IdenticalIntervalsAlwaysOverlap(t *testing.T) {
	a := reservation("A", "T1", at(12, 0), at(13, 30))
	b := reservation("B", "T1", at(12, 0), at(13, 30))

	assert.True(t, a.Overlaps(b))
}

func TestCheckPlacement_NoConflictOnEmptyTable(t *testing.T) {
	existing := []*domain.Reservation{reservation("A", "T1", at(12, 0), at(13, 30))}

	check := conflict.CheckPlacement("T2", at(12, 0), at(13, 30), existing, "")

	assert.False(t, check.HasConflict)
	assert.Empty(t, check.ConflictingReservationIDs)
}

func TestCheckPlacement_ReportsOverlapIdentifiers(t *testing.T) {
	existing := []*domain.Reservation{reservation("A", "T1", at(12, 0), at(13, 30))}

	check := conflict.CheckPlacement("T1", at(13, 0), at(14, 0), existing, "")

	assert.True(t, check.HasConflict)
	assert.Equal(t, domain.ReasonOverlap, check.Reason)
	assert.Equal(t, []string{"A"}, check.ConflictingReservationIDs)
}

func TestCheckPlacement_ExcludesMovedReservation(t *testing.T) {
	existing := []*domain.Reservation{reservation("A", "T1", at(12, 0), at(13, 30))}

	check := conflict.CheckPlacement("T1", at(13, 0), at(14, 0), existing, "A")

	assert.False(t, check.HasConflict)
}

func TestCheckPlacement_TouchingReservationsDoNotConflict(t *testing.T) {
	existing := []*domain.Reservation{reservation("A", "T1", at(12, 0), at(13, 30))}

	check := conflict.CheckPlacement("T1", at(13, 30), at(15, 0), existing, "")

	assert.False(t, check.HasConflict)
}

func TestCheckPlacement_FlagsStartBeforeOpening(t *testing.T) {
	// 10:00 clamps to slot 0 in pixel math, but placement checking uses the
	// unclamped derivation and must flag the original instant
	check := conflict.CheckPlacement("T1", at(10, 0), at(11, 30), nil, "")

	assert.True(t, check.HasConflict)
	assert.Equal(t, domain.ReasonOutsideServiceHours, check.Reason)
	assert.Empty(t, check.ConflictingReservationIDs)
}

func TestCheckPlacement_EndAtClosingIsWithinHours(t *testing.T) {
	// time.Date normalizes hour 24 to midnight of the next day
	check := conflict.CheckPlacement("T1", at(23, 0), at(24, 0), nil, "")

	assert.False(t, check.HasConflict)
}

func TestCheckPlacement_LastSlotBeforeClosing(t *testing.T) {
	// 23:45-24:00 occupies exactly the final slot
	check := conflict.CheckPlacement("T1", at(23, 45), at(24, 0), nil, "")

	assert.False(t, check.HasConflict)
}

func TestCheckPlacement_FlagsEndPastClosing(t *testing.T) {
	end := time.Date(2025, time.October, 23, 0, 30, 0, 0, timegrid.Location)
	check := conflict.CheckPlacement("T1", at(23, 30), end, nil, "")

	assert.True(t, check.HasConflict)
	assert.Equal(t, domain.ReasonOutsideServiceHours, check.Reason)
}

func TestCheckCapacity_BoundariesAreValid(t *testing.T) {
	table := &domain.Table{ID: "T1", Capacity: domain.Capacity{Min: 2, Max: 6}}

	assert.False(t, conflict.CheckCapacity(2, table).HasConflict)
	assert.False(t, conflict.CheckCapacity(6, table).HasConflict)

	low := conflict.CheckCapacity(1, table)
	assert.True(t, low.HasConflict)
	assert.Equal(t, domain.ReasonCapacityExceeded, low.Reason)

	high := conflict.CheckCapacity(7, table)
	assert.True(t, high.HasConflict)
	assert.Equal(t, domain.ReasonCapacityExceeded, high.Reason)
}

func TestValidateDuration(t *testing.T) {
	assert.True(t, conflict.ValidateDuration(30))
	assert.True(t, conflict.ValidateDuration(240))
	assert.True(t, conflict.ValidateDuration(90))

	assert.False(t, conflict.ValidateDuration(15))  // below floor
	assert.False(t, conflict.ValidateDuration(255)) // above ceiling
	assert.False(t, conflict.ValidateDuration(100)) // not a slot multiple
}

func TestCanPlace_TableNotFound(t *testing.T) {
	res := reservation("A", "T1", at(12, 0), at(13, 30))

	decision := conflict.CanPlace(res, "T99", at(12, 0), at(13, 30), nil, []*domain.Table{
		{ID: "T1", Capacity: domain.Capacity{Min: 2, Max: 4}},
	})

	assert.False(t, decision.Allowed)
	assert.Equal(t, domain.ReasonTableNotFound, decision.Reason)
}

func TestCanPlace_CapacityCheckedBeforePlacement(t *testing.T) {
	res := reservation("A", "T1", at(12, 0), at(13, 30))
	res.PartySize = 10

	tables := []*domain.Table{{ID: "T9", Capacity: domain.Capacity{Min: 6, Max: 8}}}
	existing := []*domain.Reservation{reservation("B", "T9", at(12, 0), at(13, 30))}

	decision := conflict.CanPlace(res, "T9", at(12, 0), at(13, 30), existing, tables)

	assert.False(t, decision.Allowed)
	assert.Equal(t, domain.ReasonCapacityExceeded, decision.Reason)
	assert.Contains(t, decision.Detail, "6-8")
}

func TestCanPlace_AllowedAtClosingBoundary(t *testing.T) {
	res := reservation("A", "T1", at(21, 0), at(22, 0))
	tables := []*domain.Table{{ID: "T1", Capacity: domain.Capacity{Min: 2, Max: 4}}}
	existing := []*domain.Reservation{reservation("B", "T1", at(21, 0), at(23, 0))}

	// Moving to 23:00-24:00 touches B's end and closes the service window:
	// neither is a conflict
	decision := conflict.CanPlace(res, "T1", at(23, 0), at(24, 0), existing, tables)

	assert.True(t, decision.Allowed)
	assert.Empty(t, decision.Reason)
}

func TestCanPlace_Allowed(t *testing.T) {
	res := reservation("A", "T1", at(12, 0), at(13, 30))
	tables := []*domain.Table{{ID: "T2", Capacity: domain.Capacity{Min: 2, Max: 4}}}

	decision := conflict.CanPlace(res, "T2", at(12, 0), at(13, 30), nil, tables)

	assert.True(t, decision.Allowed)
	assert.Empty(t, decision.Reason)
}
