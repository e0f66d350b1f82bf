package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// MetadataFileName is the name of the session metadata document inside the
// logs directory.
const MetadataFileName = "sessions_metadata.json"

// MetadataStore loads and persists the sessions metadata document. The
// document is the sole source of truth; whichever process loaded it last
// owns it for one session lifecycle. No locking: concurrent sessions are
// last-writer-wins.
type MetadataStore struct {
	path string
}

// NewMetadataStore creates a store backed by the document at path.
func NewMetadataStore(path string) *MetadataStore {
	return &MetadataStore{path: path}
}

// Path returns the location of the metadata document.
func (s *MetadataStore) Path() string {
	return s.path
}

// rawMetadata mirrors SessionsMetadata but defers per-record decoding so
// malformed entries can be quarantined instead of failing the whole load.
type rawMetadata struct {
	Sessions []json.RawMessage `json:"sessions"`
}

// Load reads the metadata document. A missing file yields an empty document;
// an unreadable or unparsable file is a fatal condition surfaced as a
// StorageError. Malformed session entries are skipped with a warning.
func (s *MetadataStore) Load() (*SessionsMetadata, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewSessionsMetadata(), nil
		}
		return nil, &StorageError{Path: s.path, Op: "read", Err: err}
	}

	var raw rawMetadata
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &StorageError{Path: s.path, Op: "parse", Err: err}
	}

	meta := NewSessionsMetadata()
	for i, entry := range raw.Sessions {
		var record SessionRecord
		if err := json.Unmarshal(entry, &record); err != nil {
			LogWarn("Skipping malformed session entry %d: %v", i, err)
			continue
		}
		if err := record.Validate(); err != nil {
			LogWarn("Skipping invalid session entry %d: %v", i, err)
			continue
		}
		meta.Add(&record)
	}

	return meta, nil
}

// Save writes the document, pretty-printed, via a temp file and rename so an
// interrupt mid-write cannot leave a truncated document behind.
func (s *MetadataStore) Save(meta *SessionsMetadata) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return &StorageError{Path: s.path, Op: "write", Err: fmt.Errorf("failed to marshal metadata: %w", err)}
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".sessions_metadata-*.tmp")
	if err != nil {
		return &StorageError{Path: s.path, Op: "write", Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &StorageError{Path: s.path, Op: "write", Err: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return &StorageError{Path: s.path, Op: "write", Err: err}
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return &StorageError{Path: s.path, Op: "write", Err: err}
	}

	return os.Chmod(s.path, 0644)
}
