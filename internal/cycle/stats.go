package cycle

import "github.com/terraincognita07/cyclesync/internal/models"

// Statistics aggregates the logged history. Metrics that need more data than
// the snapshot holds are nil, never zero: fewer than two cycles leaves the
// cycle-length fields unset, zero cycles leaves the period length unset.
type Statistics struct {
	AverageCycleLength  *float64       `json:"average_cycle_length"`
	ShortestCycleLength *int           `json:"shortest_cycle_length"`
	LongestCycleLength  *int           `json:"longest_cycle_length"`
	AveragePeriodLength *float64       `json:"average_period_length"`
	SymptomFrequency    map[string]int `json:"symptom_frequency"`
}

func ComputeStatistics(repo *Repository) Statistics {
	cycles := repo.ListCycles()
	stats := Statistics{SymptomFrequency: symptomFrequency(repo)}

	if lengths := cycleLengths(cycles); len(lengths) > 0 {
		average := averageInts(lengths)
		shortest, longest := minMaxInts(lengths)
		stats.AverageCycleLength = &average
		stats.ShortestCycleLength = &shortest
		stats.LongestCycleLength = &longest
	}

	if len(cycles) > 0 {
		spans := make([]int, 0, len(cycles))
		for _, cycle := range cycles {
			spans = append(spans, DaysBetween(cycle.StartDate, cycle.EndDate)+1)
		}
		average := averageInts(spans)
		stats.AveragePeriodLength = &average
	}

	return stats
}

// cycleLengths is the start-to-start delta sequence; the first cycle has no
// preceding start and contributes nothing.
func cycleLengths(cycles []Cycle) []int {
	if len(cycles) < 2 {
		return nil
	}
	lengths := make([]int, 0, len(cycles)-1)
	for i := 1; i < len(cycles); i++ {
		lengths = append(lengths, DaysBetween(cycles[i-1].StartDate, cycles[i].StartDate))
	}
	return lengths
}

// symptomFrequency reports, per catalog symptom, the percentage of period-day
// entries (non-none flow) that logged it, rounded to the nearest integer.
func symptomFrequency(repo *Repository) map[string]int {
	frequencies := make(map[string]int, len(models.SymptomCatalog()))
	for _, symptom := range models.SymptomCatalog() {
		frequencies[symptom] = 0
	}

	qualifying := 0
	counts := make(map[string]int)
	for _, entry := range repo.ListEntries() {
		if entry.Flow == "" || entry.Flow == models.FlowNone {
			continue
		}
		qualifying++
		seen := make(map[string]bool, len(entry.Symptoms))
		for _, symptom := range entry.Symptoms {
			if seen[symptom] {
				continue
			}
			seen[symptom] = true
			counts[symptom]++
		}
	}
	if qualifying == 0 {
		return frequencies
	}

	for symptom := range frequencies {
		frequencies[symptom] = roundToInt(float64(counts[symptom]) * 100 / float64(qualifying))
	}
	return frequencies
}

func averageInts(values []int) float64 {
	var total int
	for _, value := range values {
		total += value
	}
	return float64(total) / float64(len(values))
}

func minMaxInts(values []int) (int, int) {
	shortest, longest := values[0], values[0]
	for _, value := range values[1:] {
		if value < shortest {
			shortest = value
		}
		if value > longest {
			longest = value
		}
	}
	return shortest, longest
}

func roundToInt(value float64) int {
	return int(value + 0.5)
}
