package scores

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/tidwall/gjson"
)

const (
	DefaultFile = "leaderboard.json"
	DefaultName = "Player"

	// MaxEntries is how many entries survive on disk.
	MaxEntries = 20
	// DisplayEntries is how many entries the leaderboard screen shows.
	DisplayEntries = 10
)

type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Store is a file-backed leaderboard. It assumes a single writer; nothing
// guards against the file being changed by another process.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	if path == "" {
		path = DefaultFile
	}
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// Load returns the stored entries. A missing, unreadable or malformed file
// yields an empty leaderboard.
func (s *Store) Load() []Entry {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []Entry{}
	}
	return decode(data)
}

// decode reads entries straight off the JSON tree so one bad element does
// not throw away the rest of the table.
func decode(data []byte) []Entry {
	entries := []Entry{}
	if !gjson.ValidBytes(data) {
		return entries
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return entries
	}
	root.ForEach(func(_, v gjson.Result) bool {
		if !v.IsObject() {
			return true
		}
		score := v.Get("score")
		if score.Type != gjson.Number || score.Int() < 0 {
			return true
		}
		name := v.Get("name").String()
		if name == "" {
			name = DefaultName
		}
		entries = append(entries, Entry{Name: name, Score: int(score.Int())})
		return true
	})
	return entries
}

// Save writes at most MaxEntries entries, replacing the file.
func (s *Store) Save(entries []Entry) error {
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode leaderboard: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create leaderboard dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write leaderboard: %w", err)
	}
	return nil
}

// Insert adds a score, keeps the table sorted high to low (ties keep their
// insertion order) and persists it. Write failures are logged and dropped.
func (s *Store) Insert(name string, score int) {
	if name == "" {
		name = DefaultName
	}
	if score < 0 {
		score = 0
	}
	entries := append(s.Load(), Entry{Name: name, Score: score})
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if err := s.Save(entries); err != nil {
		log.Printf("scores: %v", err)
	}
}

// TopN returns up to n of the best entries.
func (s *Store) TopN(n int) []Entry {
	entries := s.Load()
	if n < 0 {
		n = 0
	}
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
