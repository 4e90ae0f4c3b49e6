package seed_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TomyMarengo/Woki-Challenge/internal/domain"
	"github.com/TomyMarengo/Woki-Challenge/internal/seed"
	"github.com/TomyMarengo/Woki-Challenge/internal/timegrid"
)

func TestDefault_EntitiesAreValid(t *testing.T) {
	s := seed.Default()

	assert.Equal(t, "2025-10-22", s.Date)
	assert.Len(t, s.Sectors, 3)
	assert.Len(t, s.Tables, 10)
	assert.Len(t, s.Reservations, 5)

	sectorIDs := make(map[string]struct{})
	for _, sector := range s.Sectors {
		sectorIDs[sector.ID] = struct{}{}
	}
	for _, table := range s.Tables {
		_, ok := sectorIDs[table.SectorID]
		assert.Truef(t, ok, "table %s references unknown sector %s", table.ID, table.SectorID)
	}

	tableIDs := make(map[string]struct{})
	for _, table := range s.Tables {
		tableIDs[table.ID] = struct{}{}
	}
	for _, res := range s.Reservations {
		require.NoErrorf(t, res.Validate(), "reservation %s", res.ID)
		_, ok := tableIDs[res.TableID]
		assert.Truef(t, ok, "reservation %s references unknown table %s", res.ID, res.TableID)
	}
}

func TestDefault_ReservationsWithinServiceHours(t *testing.T) {
	for _, res := range seed.Reservations() {
		startSlot := timegrid.InstantToSlotUnclamped(res.StartTime)
		assert.Truef(t, timegrid.IsWithinServiceHours(startSlot),
			"reservation %s starts outside service hours", res.ID)
	}
}

func TestGenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tableIDs := []string{"T1", "T2", "T3"}

	reservations, err := seed.Generate(rng, tableIDs, 50, seed.Date)
	require.NoError(t, err)
	require.Len(t, reservations, 50)

	seen := make(map[string]struct{})
	for _, res := range reservations {
		require.NoError(t, res.Validate())
		assert.Contains(t, tableIDs, res.TableID)
		assert.Contains(t, res.ID, "RES_GEN_")

		_, dup := seen[res.ID]
		assert.Falsef(t, dup, "duplicate id %s", res.ID)
		seen[res.ID] = struct{}{}

		// Старты на границах 15 минут в пределах дня обслуживания
		assert.Zero(t, res.StartTime.Minute()%15)
		assert.GreaterOrEqual(t, res.StartTime.Hour(), 11)
		assert.LessOrEqual(t, res.StartTime.Hour(), 22)

		assert.GreaterOrEqual(t, res.DurationMinutes, 60)
		assert.LessOrEqual(t, res.DurationMinutes, 180)
		assert.Equal(t, res.StartTime.Add(time.Duration(res.DurationMinutes)*time.Minute), res.EndTime)

		if res.PartySize >= 6 {
			assert.Equal(t, domain.PriorityLargeGroup, res.Priority)
		}
	}
}

func TestGenerate_InvalidDate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := seed.Generate(rng, []string{"T1"}, 1, "October 22")

	assert.Error(t, err)
}
