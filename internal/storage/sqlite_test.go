package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Parent directories and the file were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.SaveWin("floodfill", 420, 12, 80); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	high, err := store.HighScore("floodfill")
	if err != nil {
		t.Fatal(err)
	}
	if high != 420 {
		t.Errorf("HighScore() after reopen = %d, want 420", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	results := []Result{
		{Score: 400, Moves: 15, Elapsed: 100},
		{Score: 350, Moves: 20, Elapsed: 150},
		{Score: 480, Moves: 9, Elapsed: 20},
	}
	for _, r := range results {
		if _, err := store.SaveScore("floodfill", r); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("floodfill_small", Result{Score: 490}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("floodfill", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Sorted descending, with all fields kept
	want := []Result{results[2], results[0], results[1]}
	for i, w := range want {
		got := scores[i]
		if got.Score != w.Score || got.Moves != w.Moves || got.Elapsed != w.Elapsed {
			t.Errorf("scores[%d] = %+v, want %+v", i, got, w)
		}
		if got.GameID != "floodfill" {
			t.Errorf("scores[%d].GameID = %q", i, got.GameID)
		}
	}

	small, err := store.TopScores("floodfill_small", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(small) != 1 {
		t.Errorf("Expected 1 small-board score, got %d", len(small))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveWin("test", (i+1)*100, 10, 10)
	}

	values, err := store.TopScoreValues("test", 3)
	if err != nil {
		t.Fatalf("TopScoreValues() failed: %v", err)
	}
	if want := []int{500, 400, 300}; !reflect.DeepEqual(values, want) {
		t.Errorf("TopScoreValues() = %v, want %v", values, want)
	}

	// Non-positive limit falls back to 10
	all, err := store.TopScores("test", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 5 {
		t.Errorf("TopScores(0) returned %d entries, want 5", len(all))
	}
}

func TestStoreTiesKeepInsertionOrder(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.SaveScore("test", Result{Score: 300, Moves: 1})
	second, _ := store.SaveScore("test", Result{Score: 300, Moves: 2})

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 2 || scores[0].ID != first || scores[1].ID != second {
		t.Errorf("tie order = %+v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("floodfill")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveWin("floodfill", 100, 5, 5)
	store.SaveWin("floodfill", 300, 5, 5)
	store.SaveWin("floodfill", 200, 5, 5)

	high, err = store.HighScore("floodfill")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveWin("a", 100, 1, 1)
	store.SaveWin("b", 200, 1, 1)

	if err := store.ClearScores("a"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.AllScores("a"); len(scores) != 0 {
		t.Errorf("Expected no scores for a after clear, got %d", len(scores))
	}
	if scores, _ := store.AllScores("b"); len(scores) != 1 {
		t.Errorf("ClearScores removed other games' scores")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("floodfill")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.Wins != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("stats for empty game = %+v", empty)
	}

	store.SaveWin("floodfill", 400, 12, 100)
	store.SaveWin("floodfill", 300, 8, 200)
	store.SaveWin("floodfill", 500, 20, 50)

	stats, err := store.GetGameStats("floodfill")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.Wins != 3 {
		t.Errorf("Wins = %d, want 3", stats.Wins)
	}
	if stats.HighScore != 500 {
		t.Errorf("HighScore = %d, want 500", stats.HighScore)
	}
	if stats.AvgScore != 400 {
		t.Errorf("AvgScore = %v, want 400", stats.AvgScore)
	}
	if stats.FewestMove != 8 {
		t.Errorf("FewestMove = %d, want 8", stats.FewestMove)
	}
	if stats.FastestWin != 50 {
		t.Errorf("FastestWin = %d, want 50", stats.FastestWin)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandHome("~/.floodfill/scores.db")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, home) || !strings.HasSuffix(got, filepath.Join(".floodfill", "scores.db")) {
		t.Errorf("ExpandHome() = %q", got)
	}

	if got, _ := ExpandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("ExpandHome() changed absolute path: %q", got)
	}
}
