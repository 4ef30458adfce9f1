package cycle

import (
	"testing"

	"github.com/terraincognita07/cyclesync/internal/models"
)

func TestAddOrUpdateEntryIsIdempotent(t *testing.T) {
	repo := NewRepository()
	entry := makeEntry("2024-03-10", models.FlowMedium, "Cramps")

	repo.AddOrUpdateEntry(entry)
	repo.AddOrUpdateEntry(entry)

	entries := repo.ListEntries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry after duplicate upsert, got %d", len(entries))
	}
	if entries[0].Flow != models.FlowMedium {
		t.Fatalf("expected flow %q, got %q", models.FlowMedium, entries[0].Flow)
	}
}

func TestAddOrUpdateEntryOverwrites(t *testing.T) {
	repo := NewRepository()
	repo.AddOrUpdateEntry(makeEntry("2024-03-10", models.FlowHeavy))
	repo.AddOrUpdateEntry(makeEntry("2024-03-10", models.FlowNone))

	entry, found := repo.GetEntry(mustParseDay("2024-03-10"))
	if !found {
		t.Fatal("expected entry for 2024-03-10")
	}
	if entry.Flow != models.FlowNone {
		t.Fatalf("expected overwritten flow none, got %q", entry.Flow)
	}
}

func TestListEntriesSortsByDate(t *testing.T) {
	repo := NewRepository()
	repo.AddOrUpdateEntry(makeEntry("2024-03-12", models.FlowLight))
	repo.AddOrUpdateEntry(makeEntry("2024-03-10", models.FlowMedium))
	repo.AddOrUpdateEntry(makeEntry("2024-03-11", models.FlowMedium))

	entries := repo.ListEntries()
	expected := []string{"2024-03-10", "2024-03-11", "2024-03-12"}
	for i, entry := range entries {
		if entry.Date.Format("2006-01-02") != expected[i] {
			t.Fatalf("expected entry %d on %s, got %s", i, expected[i], entry.Date.Format("2006-01-02"))
		}
	}
}

func TestListCyclesDerivesConsecutiveRuns(t *testing.T) {
	repo := threeCycleRepo()

	cycles := repo.ListCycles()
	if len(cycles) != 3 {
		t.Fatalf("expected 3 cycles, got %d", len(cycles))
	}

	expected := [][2]string{
		{"2024-01-15", "2024-01-20"},
		{"2024-02-12", "2024-02-17"},
		{"2024-03-10", "2024-03-15"},
	}
	for i, cycle := range cycles {
		start := cycle.StartDate.Format("2006-01-02")
		end := cycle.EndDate.Format("2006-01-02")
		if start != expected[i][0] || end != expected[i][1] {
			t.Fatalf("cycle %d: expected [%s, %s], got [%s, %s]", i, expected[i][0], expected[i][1], start, end)
		}
	}
}

func TestListCyclesSplitsOnNoneFlowDay(t *testing.T) {
	repo := NewRepository()
	repo.AddOrUpdateEntry(makeEntry("2024-03-10", models.FlowMedium))
	repo.AddOrUpdateEntry(makeEntry("2024-03-11", models.FlowNone))
	repo.AddOrUpdateEntry(makeEntry("2024-03-12", models.FlowLight))

	cycles := repo.ListCycles()
	if len(cycles) != 2 {
		t.Fatalf("expected a none-flow day to split the run into 2 cycles, got %d", len(cycles))
	}
}

func TestListCyclesSplitsOnDateGap(t *testing.T) {
	repo := NewRepository()
	repo.AddOrUpdateEntry(makeEntry("2024-03-10", models.FlowMedium))
	repo.AddOrUpdateEntry(makeEntry("2024-03-13", models.FlowMedium))

	cycles := repo.ListCycles()
	if len(cycles) != 2 {
		t.Fatalf("expected an unlogged gap to split the run into 2 cycles, got %d", len(cycles))
	}
	if cycles[0].EndDate.Format("2006-01-02") != "2024-03-10" {
		t.Fatalf("unexpected first cycle end: %s", cycles[0].EndDate.Format("2006-01-02"))
	}
}

func TestListCyclesIgnoresSymptomOnlyEntries(t *testing.T) {
	repo := NewRepository()
	repo.AddOrUpdateEntry(makeEntry("2024-03-09", models.FlowNone, "Headache"))
	repo.AddOrUpdateEntry(makeEntry("2024-03-10", models.FlowSpotting))

	cycles := repo.ListCycles()
	if len(cycles) != 1 {
		t.Fatalf("expected 1 cycle, got %d", len(cycles))
	}
	if cycles[0].StartDate.Format("2006-01-02") != "2024-03-10" {
		t.Fatalf("unexpected cycle start: %s", cycles[0].StartDate.Format("2006-01-02"))
	}
}
