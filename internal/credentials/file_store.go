package credentials

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

const tokenFileMode = 0o600

// FileStore persists the bearer token in a single file. The file is
// read on every Token call; only writes are serialized. A missing file
// means no credential, not an error.
type FileStore struct {
	mu     sync.Mutex
	path   string
	logger *logrus.Logger
}

// NewFileStore creates a FileStore writing to path. The parent
// directory is created on the first SetToken call.
func NewFileStore(path string, logger *logrus.Logger) *FileStore {
	return &FileStore{
		path:   path,
		logger: logger,
	}
}

// Token reads the token from disk. Surrounding whitespace is trimmed
// so a hand-edited file with a trailing newline still works.
func (s *FileStore) Token() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("failed to read token file: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// SetToken writes the token to disk with owner-only permissions.
func (s *FileStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	if err := os.WriteFile(s.path, []byte(token), tokenFileMode); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	s.logger.WithField("path", s.path).Debug("Bearer token persisted")
	return nil
}

// Clear removes the token file. A missing file is treated as success.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}

	s.logger.WithField("path", s.path).Debug("Bearer token cleared")
	return nil
}

// HasToken reports whether a non-empty token file exists.
func (s *FileStore) HasToken() bool {
	_, err := s.Token()
	return err == nil
}
