package wizard

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/KimLeno1/sky1/internal/models"
)

const occupancyRate = 0.3

var seatColumns = []string{"A", "B", "C", "D", "E", "F"}

type cabinSection struct {
	Name     string
	FirstRow int
	LastRow  int
}

var cabinSections = []cabinSection{
	{Name: "First Class", FirstRow: 1, LastRow: 2},
	{Name: "Business Class", FirstRow: 3, LastRow: 6},
	{Name: "Premium Economy", FirstRow: 7, LastRow: 10},
	{Name: "Economy", FirstRow: 11, LastRow: 25},
}

// sectionName maps the booked cabin class to its seat-map section.
func sectionName(class models.CabinClass) string {
	switch class {
	case models.CabinFirst:
		return "First Class"
	case models.CabinBusiness:
		return "Business Class"
	case models.CabinPremium:
		return "Premium Economy"
	default:
		return "Economy"
	}
}

func sectionForSeat(id string) string {
	row := seatRow(id)
	for _, s := range cabinSections {
		if row >= s.FirstRow && row <= s.LastRow {
			return s.Name
		}
	}
	return ""
}

func seatRow(id string) int {
	if len(id) < 2 {
		return 0
	}
	row, err := strconv.Atoi(id[:len(id)-1])
	if err != nil {
		return 0
	}
	return row
}

// SeatMap is the simulated occupancy of one aircraft: rows 1-25, columns
// A-F, each seat independently taken with probability occupancyRate.
type SeatMap struct {
	taken map[string]bool
}

func NewSeatMap(rng *rand.Rand) *SeatMap {
	taken := make(map[string]bool)
	for row := 1; row <= 25; row++ {
		for _, col := range seatColumns {
			if rng.Float64() < occupancyRate {
				taken[fmt.Sprintf("%d%s", row, col)] = true
			}
		}
	}
	return &SeatMap{taken: taken}
}

func (m *SeatMap) Taken(id string) bool {
	return m.taken[id]
}

// TakenSeats lists occupied seat ids for presentation.
func (m *SeatMap) TakenSeats() []string {
	out := make([]string, 0, len(m.taken))
	for id := range m.taken {
		out = append(out, id)
	}
	return out
}

func validSeat(id string) bool {
	if len(id) < 2 {
		return false
	}
	row := seatRow(id)
	if row < 1 || row > 25 {
		return false
	}
	col := id[len(id)-1:]
	for _, c := range seatColumns {
		if c == col {
			return true
		}
	}
	return false
}
