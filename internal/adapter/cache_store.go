package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/gofixer/internal/model"
)

// cacheSchemaVersion is bumped whenever the on-disk layout changes. Files with
// another version are discarded on load.
const cacheSchemaVersion = 1

// CacheStore remembers which units were already clean for a given rule-set
// signature, keyed by the unit identity and a fingerprint of its content.
// Implementations must be safe for concurrent use.
type CacheStore interface {
	IsUpToDate(path m.Path, fingerprint, signature string) bool
	MarkUpToDate(path m.Path, fingerprint, signature string) error
	Flush() error
}

type cacheDocument struct {
	Version   int               `yaml:"version" msgpack:"version"`
	Signature string            `yaml:"signature" msgpack:"signature"`
	Hashes    map[string]string `yaml:"hashes" msgpack:"hashes"`
}

type cacheCodec struct {
	marshal   func(v any) ([]byte, error)
	unmarshal func(data []byte, v any) error
}

var (
	yamlCodec    = cacheCodec{marshal: yaml.Marshal, unmarshal: yaml.Unmarshal}
	msgpackCodec = cacheCodec{marshal: msgpack.Marshal, unmarshal: msgpack.Unmarshal}
)

func codecFor(path string) cacheCodec {
	switch filepath.Ext(path) {
	case ".mp", ".msgpack":
		return msgpackCodec
	default:
		return yamlCodec
	}
}

// FileCacheStore keeps the cache in memory and persists it to a single file
// on Flush. The encoding follows the file extension: ".mp" and ".msgpack"
// use MessagePack, anything else YAML.
type FileCacheStore struct {
	mu    sync.RWMutex
	path  string
	codec cacheCodec
	doc   cacheDocument
	dirty bool
}

// OpenFileCacheStore loads the cache stored at path. A missing, unreadable or
// outdated cache file yields an empty store.
func OpenFileCacheStore(path m.Path) (*FileCacheStore, error) {
	if path == "" {
		return nil, errors.New("cache file path is empty")
	}

	store := &FileCacheStore{
		path:  string(path),
		codec: codecFor(string(path)),
		doc:   cacheDocument{Version: cacheSchemaVersion, Hashes: map[string]string{}},
	}

	data, err := os.ReadFile(store.path)
	if errors.Is(err, os.ErrNotExist) {
		return store, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read cache %s: %w", store.path, err)
	}

	var doc cacheDocument
	if err := store.codec.unmarshal(data, &doc); err != nil || doc.Version != cacheSchemaVersion {
		return store, nil
	}

	if doc.Hashes == nil {
		doc.Hashes = map[string]string{}
	}

	store.doc = doc

	return store, nil
}

// IsUpToDate reports whether path was recorded with the same fingerprint
// under the same signature.
func (s *FileCacheStore) IsUpToDate(path m.Path, fingerprint, signature string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.doc.Signature != signature {
		return false
	}

	stored, ok := s.doc.Hashes[string(path)]

	return ok && stored == fingerprint
}

// MarkUpToDate records fingerprint for path. A new signature drops every
// entry recorded under the previous one.
func (s *FileCacheStore) MarkUpToDate(path m.Path, fingerprint, signature string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc.Signature != signature {
		s.doc.Signature = signature
		s.doc.Hashes = map[string]string{}
	}

	if s.doc.Hashes[string(path)] == fingerprint {
		return nil
	}

	s.doc.Hashes[string(path)] = fingerprint
	s.dirty = true

	return nil
}

// Len returns the number of recorded entries.
func (s *FileCacheStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.doc.Hashes)
}

// Flush writes pending changes to disk through a temporary file and a rename.
func (s *FileCacheStore) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return nil
	}

	data, err := s.codec.marshal(s.doc)
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".gofixer-cache-*")
	if err != nil {
		return fmt.Errorf("create cache temp file: %w", err)
	}

	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)

		return fmt.Errorf("write cache: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close cache: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace cache: %w", err)
	}

	s.dirty = false

	return nil
}

// NullCacheStore never reports a unit as up to date and stores nothing.
type NullCacheStore struct{}

// IsUpToDate always returns false.
func (NullCacheStore) IsUpToDate(m.Path, string, string) bool { return false }

// MarkUpToDate is a no-op.
func (NullCacheStore) MarkUpToDate(m.Path, string, string) error { return nil }

// Flush is a no-op.
func (NullCacheStore) Flush() error { return nil }
