package orders

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"sync"
)

// FileStore keeps submitted orders in an append-only JSON file. It is the
// store of record for the shop: a broken or missing file on read starts an
// empty collection, but a failed write surfaces as a PersistenceError.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a store backed by the JSON file at path. The file is
// created on first append.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Append adds the order to the end of the collection and rewrites the file.
func (s *FileStore) Append(ctx context.Context, order Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.load()
	all = append(all, order)

	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return &PersistenceError{Err: err}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return &PersistenceError{Err: err}
	}
	return nil
}

// List returns every persisted order, oldest first.
func (s *FileStore) List(ctx context.Context) ([]Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(), nil
}

// load reads the current collection. Any read or decode failure is logged
// and treated as an empty collection so one corrupt file cannot block new
// orders.
func (s *FileStore) load() []Order {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("read %s: %v, starting empty", s.path, err)
		}
		return nil
	}
	var all []Order
	if err := json.Unmarshal(data, &all); err != nil {
		log.Printf("decode %s: %v, starting empty", s.path, err)
		return nil
	}
	return all
}
