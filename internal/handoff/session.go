package handoff

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/luminexhq/luminex-cli/internal/model"
)

// slotFile is the on-disk name backing the fixed handoff key.
var slotFile = strings.ReplaceAll(Key, ":", "_") + ".json"

// SessionStore is a file-backed Channel so `luminex verify` and
// `luminex export` can consume the result a previous `luminex compare`
// published. It carries no TTL; the slot simply lives until overwritten
// or removed.
type SessionStore struct {
	dir string
}

// NewSessionStore creates a store rooted at dir, creating it if needed.
func NewSessionStore(dir string) (*SessionStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &SessionStore{dir: dir}, nil
}

// DefaultDir returns the standard slot location under the user cache
// directory.
func DefaultDir() (string, error) {
	cache, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cache, "luminex"), nil
}

// Publish serializes the result into the slot, overwriting any prior
// value.
func (s *SessionStore) Publish(result *model.ComparisonResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(), raw, 0o600)
}

// Consume reads and deserializes the slot. A missing or malformed slot is
// reported as absent, not as an error.
func (s *SessionStore) Consume() (*model.ComparisonResult, bool) {
	raw, err := os.ReadFile(s.path())
	if err != nil {
		return nil, false
	}

	var result model.ComparisonResult
	if err := json.Unmarshal(raw, &result); err != nil {
		slog.Debug("Discarding malformed handoff slot", "path", s.path(), "error", err)
		return nil, false
	}
	return &result, true
}

func (s *SessionStore) path() string {
	return filepath.Join(s.dir, slotFile)
}
