// Package memory provides a process-local DocumentStore used in tests and local development.
package memory

import (
	"context"
	"reflect"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
)

// DocumentStore keeps every collection as an ordered slice of documents.
// Documents are deep-copied on the way in and out so callers never share state with the store.
type DocumentStore struct {
	mu          sync.RWMutex
	collections map[string][]entity.Document
}

// NewDocumentStore creates an empty store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		collections: make(map[string][]entity.Document),
	}
}

var _ repository.DocumentStore = (*DocumentStore)(nil)

func (s *DocumentStore) Find(_ context.Context, collection string, filter repository.Filter, limit int64) ([]entity.Document, error) {
	match, err := newMatcher(filter)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]entity.Document, 0)
	for _, doc := range s.collections[collection] {
		if limit > 0 && int64(len(docs)) >= limit {
			break
		}
		if match(doc) {
			docs = append(docs, doc.Clone())
		}
	}

	return docs, nil
}

func (s *DocumentStore) FindOne(_ context.Context, collection string, filter repository.Filter) (entity.Document, error) {
	match, err := newMatcher(filter)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(collection, match)
	if idx < 0 {
		return nil, repository.ErrDocumentNotFound
	}

	return s.collections[collection][idx].Clone(), nil
}

func (s *DocumentStore) Count(_ context.Context, collection string, filter repository.Filter) (int64, error) {
	match, err := newMatcher(filter)
	if err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, doc := range s.collections[collection] {
		if match(doc) {
			n++
		}
	}

	return n, nil
}

func (s *DocumentStore) InsertOne(_ context.Context, collection string, doc entity.Document) error {
	stored, err := normalize(doc)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.collections[collection] = append(s.collections[collection], stored)

	return nil
}

func (s *DocumentStore) InsertMany(_ context.Context, collection string, docs []entity.Document) error {
	stored := make([]entity.Document, 0, len(docs))
	for _, doc := range docs {
		normalized, err := normalize(doc)
		if err != nil {
			return err
		}
		stored = append(stored, normalized)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.collections[collection] = append(s.collections[collection], stored...)

	return nil
}

func (s *DocumentStore) UpdateOne(_ context.Context, collection string, filter repository.Filter, fields entity.Document, upsert bool) (int64, error) {
	match, err := newMatcher(filter)
	if err != nil {
		return 0, err
	}
	set, err := normalize(fields)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(collection, match)
	if idx >= 0 {
		doc := s.collections[collection][idx]
		for k, v := range set {
			doc[k] = v
		}

		return 1, nil
	}

	if upsert {
		created, err := normalize(entity.Document(filter))
		if err != nil {
			return 0, err
		}
		for k, v := range set {
			created[k] = v
		}
		s.collections[collection] = append(s.collections[collection], created)
	}

	return 0, nil
}

func (s *DocumentStore) DeleteOne(_ context.Context, collection string, filter repository.Filter) (int64, error) {
	match, err := newMatcher(filter)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(collection, match)
	if idx < 0 {
		return 0, nil
	}

	docs := s.collections[collection]
	s.collections[collection] = append(docs[:idx:idx], docs[idx+1:]...)

	return 1, nil
}

func (s *DocumentStore) DeleteMany(_ context.Context, collection string, filter repository.Filter) (int64, error) {
	match, err := newMatcher(filter)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]entity.Document, 0, len(s.collections[collection]))
	var deleted int64
	for _, doc := range s.collections[collection] {
		if match(doc) {
			deleted++

			continue
		}
		kept = append(kept, doc)
	}
	s.collections[collection] = kept

	return deleted, nil
}

func (s *DocumentStore) ReplaceOne(_ context.Context, collection string, filter repository.Filter, doc entity.Document, upsert bool) error {
	match, err := newMatcher(filter)
	if err != nil {
		return err
	}
	replacement, err := normalize(doc)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(collection, match)
	switch {
	case idx >= 0:
		s.collections[collection][idx] = replacement
	case upsert:
		s.collections[collection] = append(s.collections[collection], replacement)
	}

	return nil
}

func (s *DocumentStore) Ping(_ context.Context) error {
	return nil
}

// indexOf must be called with the lock held.
func (s *DocumentStore) indexOf(collection string, match func(entity.Document) bool) int {
	for i, doc := range s.collections[collection] {
		if match(doc) {
			return i
		}
	}

	return -1
}

func newMatcher(filter repository.Filter) (func(entity.Document) bool, error) {
	want, err := normalize(entity.Document(filter))
	if err != nil {
		return nil, errors.Wrap(err, "invalid filter")
	}

	return func(doc entity.Document) bool {
		for k, v := range want {
			got, ok := doc[k]
			if !ok || !reflect.DeepEqual(got, v) {
				return false
			}
		}

		return true
	}, nil
}

// normalize returns a JSON deep copy so stored values have the same shapes
// a network backend would hand back.
func normalize(doc entity.Document) (entity.Document, error) {
	if doc == nil {
		return entity.Document{}, nil
	}

	out := entity.Document{}
	if err := doc.Decode(&out); err != nil {
		return nil, err
	}

	return out, nil
}
