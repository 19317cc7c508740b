package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sync"

	"github.com/iliyamo/storefront-client/internal/model"
)

// fileSession is the on-disk layout of the session file.
type fileSession struct {
	Token string      `json:"token,omitempty"`
	User  *model.User `json:"user,omitempty"`
}

// FileStore keeps the session in a single JSON file.  The file is
// written with 0600 permissions since it contains a live bearer token.
// A missing file reads as an empty session.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a FileStore backed by the given path.  The file
// is not created until the first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Token(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, err := f.load()
	if err != nil {
		return "", err
	}
	return s.Token, nil
}

func (f *FileStore) SetToken(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, err := f.load()
	if err != nil {
		return err
	}
	s.Token = token
	return f.save(s)
}

func (f *FileStore) User(ctx context.Context) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, err := f.load()
	if err != nil {
		return nil, err
	}
	return s.User, nil
}

func (f *FileStore) SetUser(ctx context.Context, u *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, err := f.load()
	if err != nil {
		return err
	}
	s.User = u
	return f.save(s)
}

func (f *FileStore) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// load reads and decodes the session file.  A missing file yields an
// empty session; a corrupt file is treated the same way so a damaged
// session degrades to logged-out instead of wedging the client.
func (f *FileStore) load() (fileSession, error) {
	var s fileSession
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, err
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return fileSession{}, nil
	}
	return s, nil
}

func (f *FileStore) save(s fileSession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o600)
}
