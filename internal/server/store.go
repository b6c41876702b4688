package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	. "ClimbArena/internal/game"

	"github.com/google/uuid"
)

var errBadProfileID = errors.New("invalid profile id")

var profileIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// NewProfileID returns a fresh profile id.
func NewProfileID() string { return uuid.New().String() }

// FileProfileStore keeps one JSON file per profile under Dir.
type FileProfileStore struct {
	Dir string
	mu  sync.Mutex
}

func NewFileProfileStore(dir string) *FileProfileStore {
	return &FileProfileStore{Dir: dir}
}

func (s *FileProfileStore) path(id string) (string, error) {
	if !profileIDPattern.MatchString(id) {
		return "", fmt.Errorf("%w: %q", errBadProfileID, id)
	}
	return filepath.Join(s.Dir, id+".json"), nil
}

// Load reads the profile for id. A missing file yields a fresh profile.
func (s *FileProfileStore) Load(id string) (*Profile, error) {
	path, err := s.path(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultProfile(id), nil
		}
		return nil, fmt.Errorf("read profile %q: %w", path, err)
	}
	p := DefaultProfile(id)
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parse profile %q: %w", path, err)
	}
	p.ID = id
	return p, nil
}

// Save writes p atomically.
func (s *FileProfileStore) Save(p *Profile) error {
	if p == nil {
		return nil
	}
	path, err := s.path(p.ID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create profile dir %q: %w", s.Dir, err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profile %q: %w", p.ID, err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write profile %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("commit profile %q: %w", path, err)
	}
	return nil
}

// memoryProfileStore backs tests and runs without a data dir.
type memoryProfileStore struct {
	mu       sync.Mutex
	profiles map[string]Profile
}

func newMemoryProfileStore() *memoryProfileStore {
	return &memoryProfileStore{profiles: map[string]Profile{}}
}

func (s *memoryProfileStore) Load(id string) (*Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[id]
	if !ok {
		return DefaultProfile(id), nil
	}
	cp := p
	cp.Items = append([]Consumable(nil), p.Items...)
	return &cp, nil
}

func (s *memoryProfileStore) Save(p *Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	cp.Items = append([]Consumable(nil), p.Items...)
	s.profiles[p.ID] = cp
	return nil
}
