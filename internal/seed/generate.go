package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/TomyMarengo/Woki-Challenge/internal/domain"
	"github.com/TomyMarengo/Woki-Challenge/internal/timegrid"
	"github.com/TomyMarengo/Woki-Challenge/pkg/ptr"
)

var firstNames = []string{
	"John", "Jane", "Michael", "Emily", "David", "Sarah", "Robert", "Lisa",
	"James", "Mary", "William", "Patricia", "Richard", "Jennifer", "Thomas",
	"Linda", "Charles", "Barbara", "Daniel", "Susan",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Wilson",
	"Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee",
}

var sources = []string{"phone", "web", "walkin", "app"}

var specialRequests = []string{"Window seat", "Quiet area", "Birthday", "Anniversary"}

var generalNotes = []string{"Allergic to nuts", "Vegetarian options needed", "Celebrating anniversary", "Regular customer"}

// Generate создает count случайных бронирований для нагрузочного тестирования
// таймлайна. Старты на границах 15 минут между 11:00 и 23:00, длительности
// 60-180 минут, группы от 6 человек получают приоритет LARGE_GROUP.
func Generate(rng *rand.Rand, tableIDs []string, count int, date string) ([]*domain.Reservation, error) {
	base, err := time.ParseInLocation(domain.DateFormat, date, timegrid.Location)
	if err != nil {
		return nil, fmt.Errorf("seed: invalid date %q: %w", date, err)
	}

	reservations := make([]*domain.Reservation, 0, count)
	for i := 0; i < count; i++ {
		firstName := randomChoice(rng, firstNames)
		lastName := randomChoice(rng, lastNames)

		startHour := randomInt(rng, 11, 22)
		startMinute := randomChoice(rng, []int{0, 15, 30, 45})
		durationMinutes := randomChoice(rng, []int{60, 75, 90, 105, 120, 135, 150, 165, 180})

		start := base.Add(time.Duration(startHour*60+startMinute) * time.Minute)
		end := start.Add(time.Duration(durationMinutes) * time.Minute)

		partySize := randomInt(rng, 1, 10)
		priority := randomChoice(rng, domain.AllPriorities)
		if partySize >= 6 {
			priority = domain.PriorityLargeGroup
		}

		customer := domain.Customer{
			Name:  firstName + " " + lastName,
			Phone: generatePhone(rng),
		}
		if rng.Float64() > 0.3 {
			customer.Email = ptr.Ptr(generateEmail(firstName, lastName))
		}
		if rng.Float64() > 0.8 {
			customer.Notes = ptr.Ptr("Special request: " + randomChoice(rng, specialRequests))
		}

		createdAt := base.AddDate(0, 0, -randomInt(rng, 0, 7)).
			Add(time.Duration(randomInt(rng, 8, 20)*60+randomInt(rng, 0, 59)) * time.Minute)

		res := &domain.Reservation{
			ID:              "RES_GEN_" + uuid.NewString(),
			TableID:         randomChoice(rng, tableIDs),
			Customer:        customer,
			PartySize:       partySize,
			StartTime:       start,
			EndTime:         end,
			DurationMinutes: durationMinutes,
			Status:          randomChoice(rng, domain.AllStatuses),
			Priority:        priority,
			Source:          ptr.Ptr(randomChoice(rng, sources)),
			CreatedAt:       createdAt,
			UpdatedAt:       createdAt,
		}
		if rng.Float64() > 0.7 {
			res.Notes = ptr.Ptr(randomChoice(rng, generalNotes))
		}

		reservations = append(reservations, res)
	}

	return reservations, nil
}

func randomChoice[T any](rng *rand.Rand, options []T) T {
	return options[rng.Intn(len(options))]
}

func randomInt(rng *rand.Rand, min, max int) int {
	return rng.Intn(max-min+1) + min
}

func generatePhone(rng *rand.Rand) string {
	return fmt.Sprintf("+1 %d-%d-%d",
		randomInt(rng, 200, 999), randomInt(rng, 100, 999), randomInt(rng, 1000, 9999))
}

func generateEmail(firstName, lastName string) string {
	return fmt.Sprintf("%s.%s@example.com",
		strings.ToLower(firstName), strings.ToLower(lastName))
}
