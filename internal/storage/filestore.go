package storage

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Collection names one of the two fixed partitions of stored assets.
type Collection string

const (
	CollectionStyles Collection = "styles"
	CollectionRooms  Collection = "rooms"
)

var (
	// ErrUnknownCollection is returned for any collection other than the two
	// fixed ones.
	ErrUnknownCollection = errors.New("storage: unknown collection")
	// ErrNotFound is returned when an identifier does not resolve to a stored
	// asset.
	ErrNotFound = errors.New("storage: asset not found")
)

// FileStore persists uploaded assets onto the local filesystem, one directory
// per collection. Identifiers are the storage-assigned filenames: a fresh
// UUID per store, so concurrent writes into the same collection never
// collide. Assets are written verbatim and never re-encoded.
type FileStore struct {
	basePath string
}

// NewFileStore initializes a FileStore rooted at basePath and creates the
// directory for every collection, parents included. An error here means the
// filesystem is unusable and is fatal to startup.
func NewFileStore(basePath string) (*FileStore, error) {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" {
		return nil, errors.New("storage: base path is required")
	}
	for _, c := range []Collection{CollectionStyles, CollectionRooms} {
		if err := os.MkdirAll(filepath.Join(basePath, string(c)), 0o755); err != nil {
			return nil, fmt.Errorf("storage: ensure %s dir: %w", c, err)
		}
	}
	return &FileStore{basePath: basePath}, nil
}

// BasePath returns the configured root directory.
func (s *FileStore) BasePath() string {
	if s == nil {
		return ""
	}
	return s.basePath
}

// Store persists the provided bytes as a new file in the collection and
// returns the generated filename as the asset identifier. The content is not
// inspected or validated.
func (s *FileStore) Store(ctx context.Context, collection Collection, data []byte) (string, error) {
	if s == nil {
		return "", errors.New("storage: no store configured")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	dir, err := s.collectionDir(collection)
	if err != nil {
		return "", err
	}
	id := newAssetID()
	if err := os.WriteFile(filepath.Join(dir, id), data, 0o644); err != nil {
		return "", fmt.Errorf("storage: write asset: %w", err)
	}
	return id, nil
}

// List enumerates the identifiers currently present in the collection, in
// directory order. An empty collection yields an empty slice, not an error.
func (s *FileStore) List(ctx context.Context, collection Collection) ([]string, error) {
	if s == nil {
		return nil, errors.New("storage: no store configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir, err := s.collectionDir(collection)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s dir: %w", collection, err)
	}
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ids = append(ids, entry.Name())
	}
	return ids, nil
}

// Read resolves an identifier to the exact bytes that were stored under it.
func (s *FileStore) Read(ctx context.Context, collection Collection, id string) ([]byte, error) {
	if s == nil {
		return nil, errors.New("storage: no store configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir, err := s.collectionDir(collection)
	if err != nil {
		return nil, err
	}
	clean, err := sanitizeID(id)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(dir, clean))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("storage: read asset: %w", err)
	}
	return data, nil
}

func (s *FileStore) collectionDir(collection Collection) (string, error) {
	switch collection {
	case CollectionStyles, CollectionRooms:
		return filepath.Join(s.basePath, string(collection)), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}
}

// newAssetID returns a fresh random identifier. Hex of the raw UUID bytes,
// matching the opaque extension-less names multer-style upload stores use.
func newAssetID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

// sanitizeID rejects identifiers that could escape the collection directory.
func sanitizeID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrNotFound
	}
	if strings.ContainsAny(id, "/\\") || id != filepath.Base(id) {
		return "", ErrNotFound
	}
	return id, nil
}
