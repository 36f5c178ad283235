package scores

import (
	"math/rand"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "leaderboard.json"))
}

func TestLoadMissingFile(t *testing.T) {
	s := newTestStore(t)
	got := s.Load()
	if got == nil || len(got) != 0 {
		t.Errorf("Expected empty non-nil leaderboard, got %#v", got)
	}
}

func TestLoadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"garbage", "not json at all"},
		{"truncated", `[{"name": "a", "score": 3`},
		{"object", `{"name": "a", "score": 3}`},
		{"number", `42`},
		{"empty", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			if err := os.WriteFile(s.Path(), []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if got := s.Load(); len(got) != 0 {
				t.Errorf("Expected empty leaderboard, got %v", got)
			}
		})
	}
}

func TestLoadSkipsBadElements(t *testing.T) {
	s := newTestStore(t)
	content := `[{"name":"ann","score":9}, 7, {"name":"bob"}, {"name":"cy","score":"x"}, {"score":4}]`
	if err := os.WriteFile(s.Path(), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	want := []Entry{{"ann", 9}, {DefaultName, 4}}
	if got := s.Load(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	want := []Entry{{"a", 30}, {"b", 20}, {"c", 20}, {"d", 0}}
	if err := s.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if got := s.Load(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestInsertDefaultName(t *testing.T) {
	s := newTestStore(t)
	s.Insert("", 5)
	got := s.Load()
	want := []Entry{{"Player", 5}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestInsertStableTies(t *testing.T) {
	s := newTestStore(t)
	s.Insert("first", 10)
	s.Insert("low", 1)
	s.Insert("second", 10)
	s.Insert("top", 50)
	want := []Entry{{"top", 50}, {"first", 10}, {"second", 10}, {"low", 1}}
	if got := s.Load(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestInsertKeepsSortedAndCapped(t *testing.T) {
	s := newTestStore(t)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 60; i++ {
		s.Insert("p", rng.Intn(100))
		got := s.Load()
		if len(got) > MaxEntries {
			t.Fatalf("Insert %d: expected at most %d entries, got %d", i, MaxEntries, len(got))
		}
		for j := 1; j < len(got); j++ {
			if got[j-1].Score < got[j].Score {
				t.Fatalf("Insert %d: leaderboard not sorted at %d: %v", i, j, got)
			}
		}
	}
	if got := len(s.Load()); got != MaxEntries {
		t.Errorf("Expected %d entries after 60 inserts, got %d", MaxEntries, got)
	}
}

func TestInsertUnwritableIsSilent(t *testing.T) {
	dir := t.TempDir()
	// A directory in place of the file makes every write fail.
	path := filepath.Join(dir, "board")
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatal(err)
	}
	s := NewStore(path)
	s.Insert("x", 1)
	if got := s.Load(); len(got) != 0 {
		t.Errorf("Expected empty leaderboard, got %v", got)
	}
}

func TestTopN(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < 15; i++ {
		s.Insert("p", i)
	}
	top := s.TopN(DisplayEntries)
	if len(top) != DisplayEntries {
		t.Fatalf("Expected %d entries, got %d", DisplayEntries, len(top))
	}
	if top[0].Score != 14 || top[9].Score != 5 {
		t.Errorf("Unexpected top entries: %v", top)
	}
	if got := s.TopN(0); len(got) != 0 {
		t.Errorf("Expected no entries for n=0, got %v", got)
	}
}

func TestNewStoreDefaultPath(t *testing.T) {
	if got := NewStore("").Path(); got != DefaultFile {
		t.Errorf("Expected %q, got %q", DefaultFile, got)
	}
}
