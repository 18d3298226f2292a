package synthetic

import (
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/tonyloki/-EcoSense-AI/pkg/models/domain"
)

var defaultFacilities = []string{
	"Building A",
	"Building B",
	"Hostel Block C",
	"Lab Block D",
	"Library Block",
	"Sports Complex",
	"Cafeteria",
	"Administration",
}

// Settings control synthetic dataset generation
type Settings struct {
	// Days of hourly data to generate (default: 365)
	Days int
	// Facilities to generate readings for
	Facilities []string
	// Seed for the random source; 0 seeds from the clock
	Seed int64
	// Start of the generated range; zero value means Days before now
	Start time.Time
}

// DefaultSettings returns the default generation parameters
func DefaultSettings() Settings {
	return Settings{
		Days:       365,
		Facilities: defaultFacilities,
	}
}

// Generator produces realistic hourly campus consumption datasets: a
// day/night electricity base load with weekday uplift and occasional
// anomalous spikes, and a water pattern with morning and evening peaks and
// occasional leak-like surges.
type Generator struct {
	settings Settings
	rand     *rand.Rand
}

func NewGenerator(settings Settings) *Generator {
	if settings.Days <= 0 {
		settings.Days = DefaultSettings().Days
	}
	if len(settings.Facilities) == 0 {
		settings.Facilities = defaultFacilities
	}
	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		settings: settings,
		rand:     rand.New(rand.NewSource(seed)),
	}
}

// Electricity generates hourly electricity readings in kWh.
func (g *Generator) Electricity() []domain.ConsumptionRecord {
	return g.generate(func(hour int, weekday bool) float64 {
		var base float64
		if hour >= 6 && hour < 22 {
			base = g.normal(150, 20)
		} else {
			base = g.normal(40, 10)
		}
		if weekday {
			base *= 1.1
		}
		// 10% chance of an anomalous reading
		if g.rand.Float64() < 0.1 {
			base *= g.uniform(1.3, 1.8)
		}
		return base
	})
}

// Water generates hourly water readings in gallons.
func (g *Generator) Water() []domain.ConsumptionRecord {
	peaks := map[int]bool{7: true, 8: true, 9: true, 18: true, 19: true, 20: true}
	return g.generate(func(hour int, _ bool) float64 {
		var base float64
		if peaks[hour] {
			base = g.normal(80, 15)
		} else {
			base = g.normal(20, 5)
		}
		// 5% chance of a leak-like surge
		if g.rand.Float64() < 0.05 {
			base *= g.uniform(2.0, 3.5)
		}
		return base
	})
}

func (g *Generator) generate(consumption func(hour int, weekday bool) float64) []domain.ConsumptionRecord {
	start := g.settings.Start
	if start.IsZero() {
		start = time.Now().AddDate(0, 0, -g.settings.Days)
	}
	start = start.Truncate(24 * time.Hour)

	records := make([]domain.ConsumptionRecord, 0, g.settings.Days*len(g.settings.Facilities)*24)
	for day := 0; day < g.settings.Days; day++ {
		date := start.AddDate(0, 0, day)
		weekday := date.Weekday() != time.Saturday && date.Weekday() != time.Sunday

		for _, facility := range g.settings.Facilities {
			for hour := 0; hour < 24; hour++ {
				value := math.Max(0, consumption(hour, weekday))
				records = append(records, domain.ConsumptionRecord{
					Timestamp: date.Add(time.Duration(hour) * time.Hour),
					Facility:  facility,
					Value:     math.Round(value*100) / 100,
					Hour:      hour,
				})
			}
		}
	}
	return records
}

func (g *Generator) normal(mean, stdDev float64) float64 {
	return g.rand.NormFloat64()*stdDev + mean
}

func (g *Generator) uniform(min, max float64) float64 {
	return min + g.rand.Float64()*(max-min)
}

// WriteCSV writes records in the input table schema understood by the CSV
// store: timestamp, date, hour, consumption value, facility, day of week.
func WriteCSV(path string, resource domain.ResourceType, records []domain.ConsumptionRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"timestamp", "date", "hour", resource.ValueColumn(), "facility", "day_of_week"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.Timestamp.Format("2006-01-02"),
			strconv.Itoa(r.Hour),
			strconv.FormatFloat(r.Value, 'f', 2, 64),
			r.Facility,
			r.Timestamp.Weekday().String(),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
