package session

// Token persistence for the CLI. The access token is the only piece of client
// state that survives between invocations; it is stored in the OS keyring when
// one is available and in a plain file otherwise.

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/zalando/go-keyring"
)

const (
	serviceName = "bookshelf-cli"
	tokenKey    = "access_token"
)

// Store is the single read/write/clear interface for the current bearer token.
// Get returns the empty string when no token is set or the underlying storage
// is unavailable; absence is a normal state, never an error.
type Store interface {
	Get() string
	Set(token string) error
	Clear() error
}

// KeyringStore keeps the token in the OS keyring.
type KeyringStore struct{}

func NewKeyringStore() *KeyringStore {
	return &KeyringStore{}
}

func (s *KeyringStore) Get() string {
	value, err := keyring.Get(serviceName, tokenKey)
	if err != nil {
		return ""
	}
	return value
}

func (s *KeyringStore) Set(token string) error {
	if err := keyring.Set(serviceName, tokenKey, token); err != nil {
		return fmt.Errorf("failed to store token in keyring: %w", err)
	}
	return nil
}

func (s *KeyringStore) Clear() error {
	err := keyring.Delete(serviceName, tokenKey)
	if err != nil && err != keyring.ErrNotFound {
		return fmt.Errorf("failed to clear token from keyring: %w", err)
	}
	return nil
}

// available reports whether the keyring backend works at all on this host.
func (s *KeyringStore) available() bool {
	_, err := keyring.Get(serviceName, tokenKey)
	return err == nil || err == keyring.ErrNotFound
}

// FileStore keeps the token in a plain file, used when no keyring is present
// (headless hosts, containers).
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Get() string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func (s *FileStore) Set(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}

// MemoryStore holds the token in memory only. Used in tests.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemoryStore) Set(token string) error {
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

// NewDefaultStore picks the keyring when it works and falls back to the given
// token file otherwise.
func NewDefaultStore(tokenFile string) Store {
	ks := NewKeyringStore()
	if ks.available() {
		return ks
	}
	return NewFileStore(tokenFile)
}
