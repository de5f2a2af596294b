package prefs

import (
	crand "crypto/rand"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/skytab-app/market/internal/config"
)

// sessionSeed is the session_seed.json structure: the random seed and
// the hour-since-epoch it was minted for. Concurrent processes reading
// the same file within the hour agree on the "recommended" ordering.
type sessionSeed struct {
	Hour int64 `json:"hour"`
	Seed int64 `json:"seed"`
}

// SeedStore caches the hourly ordering seed.
type SeedStore struct {
	path string
}

// NewSeedStore creates a seed store at the default cache path.
func NewSeedStore() *SeedStore {
	return &SeedStore{path: config.SeedCachePath()}
}

// NewSeedStoreAt creates a seed store at an explicit path.
func NewSeedStoreAt(path string) *SeedStore {
	return &SeedStore{path: path}
}

// Seed returns the ordering seed for the hour containing now. A cached
// seed from the same hour wins; otherwise a fresh random seed is minted
// and cached. When storage is unavailable the seed degrades to a
// deterministic hour-derived value, which still rotates hourly.
func (s *SeedStore) Seed(now time.Time) int64 {
	hour := now.Unix() / 3600

	if cached, ok := s.read(); ok && cached.Hour == hour {
		return cached.Seed
	}

	seed, err := randomSeed()
	if err != nil {
		return hour
	}

	s.write(sessionSeed{Hour: hour, Seed: seed})
	return seed
}

// randomSeed generates a seed using crypto/rand.
func randomSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

func (s *SeedStore) read() (sessionSeed, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return sessionSeed{}, false
	}

	var cached sessionSeed
	if err := json.Unmarshal(data, &cached); err != nil {
		return sessionSeed{}, false
	}
	return cached, true
}

func (s *SeedStore) write(seed sessionSeed) {
	if err := config.EnsureDir(filepath.Dir(s.path)); err != nil {
		return
	}

	data, err := json.Marshal(seed)
	if err != nil {
		return
	}

	_ = os.WriteFile(s.path, data, 0644)
}
