package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pelletier/go-toml/v2"
)

// ErrNoToken is returned when no credential is stored
var ErrNoToken = errors.New("no stored token")

// Store persists the bearer token shared by every authenticated request
type Store interface {
	Token() (string, bool)
	SetToken(token string) error
	Clear() error
}

// sessionFile is the on-disk layout of the session file
type sessionFile struct {
	Token   string    `toml:"token"`
	SavedAt time.Time `toml:"saved_at"`
}

// FileStore keeps the token in a TOML file and caches it in memory
type FileStore struct {
	mu    sync.RWMutex
	path  string
	token string
}

// OpenFileStore reads the session file at path. A missing file means no token.
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var sf sessionFile
	if err := toml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}
	s.token = sf.Token
	return s, nil
}

// Path returns the session file location
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// SetToken stores token and writes it to disk
func (s *FileStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	data, err := toml.Marshal(sessionFile{Token: token, SavedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	s.token = token
	return nil
}

// Clear forgets the token and removes the session file
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// MemoryStore is a Store that never touches disk
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryStore creates a store holding token ("" for none)
func NewMemoryStore(token string) *MemoryStore {
	return &MemoryStore{token: token}
}

func (s *MemoryStore) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

func (s *MemoryStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

// Expired reports whether token is a JWT whose exp claim lies before now.
// Opaque tokens and tokens without exp are never considered expired; the
// server remains the authority on validity.
func Expired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}

// Require returns the stored token or ErrNoToken
func Require(s Store) (string, error) {
	token, ok := s.Token()
	if !ok {
		return "", ErrNoToken
	}
	return token, nil
}
