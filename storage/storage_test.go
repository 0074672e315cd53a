package storage

import (
	"testing"
)

func openMemDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestGenerationRoundTrip(t *testing.T) {
	db := openMemDB(t)

	if err := db.CreateRun("run-1", "2026-08-01T00:00:00Z", "{}"); err != nil {
		t.Fatalf("CreateRun: %v", err)
	}

	records := []GenerationRecord{
		{Generation: 0, BestFitness: 10, AverageFitness: 5, AverageNaive: 2, ScanMaxDist: 800},
		{Generation: 1, BestFitness: 12, AverageFitness: 6, AverageNaive: 3, Stagnant: true, DifficultyLevel: 1, ScanMaxDist: 784},
	}
	for _, rec := range records {
		if err := db.InsertGeneration("run-1", rec); err != nil {
			t.Fatalf("InsertGeneration: %v", err)
		}
	}

	got, err := db.ListGenerations("run-1")
	if err != nil {
		t.Fatalf("ListGenerations: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d generations, want 2", len(got))
	}
	if got[1] != records[1] {
		t.Errorf("generation 1 = %+v, want %+v", got[1], records[1])
	}

	other, err := db.ListGenerations("run-2")
	if err != nil {
		t.Fatalf("ListGenerations other run: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("expected no generations for unknown run, got %d", len(other))
	}
}

func TestEloRatingsReplace(t *testing.T) {
	db := openMemDB(t)

	first := []EloRecord{
		{Name: "champ_a", Rating: 1216, Wins: 1},
		{Name: "champ_b", Rating: 1184, Losses: 1},
	}
	if err := db.SaveEloRatings("run-1", first); err != nil {
		t.Fatalf("SaveEloRatings: %v", err)
	}

	second := []EloRecord{
		{Name: "champ_a", Rating: 1230, Wins: 2},
		{Name: "champ_b", Rating: 1170, Losses: 2},
		{Name: "naive", Rating: 1200},
	}
	if err := db.SaveEloRatings("run-1", second); err != nil {
		t.Fatalf("SaveEloRatings replace: %v", err)
	}

	got, err := db.ListEloRatings("run-1")
	if err != nil {
		t.Fatalf("ListEloRatings: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d ratings, want 3", len(got))
	}
	if got[0].Name != "champ_a" {
		t.Errorf("expected highest rating first, got %s", got[0].Name)
	}
}
