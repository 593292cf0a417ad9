package memory

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCollection = "things"

func newSeededStore(t *testing.T) *DocumentStore {
	t.Helper()

	store := NewDocumentStore()
	require.NoError(t, store.InsertMany(context.Background(), testCollection, []entity.Document{
		{"id": "1", "kind": "nut", "price": 10},
		{"id": "2", "kind": "date", "price": 20.5},
		{"id": "3", "kind": "nut", "tags": []string{"raw"}},
	}))

	return store
}

func TestDocumentStore_FindFilters(t *testing.T) {
	store := newSeededStore(t)

	tests := []struct {
		name   string
		filter repository.Filter
		limit  int64
		want   []string
	}{
		{name: "all", filter: repository.All(), want: []string{"1", "2", "3"}},
		{name: "nil filter", filter: nil, want: []string{"1", "2", "3"}},
		{name: "by id", filter: repository.ByID("2"), want: []string{"2"}},
		{name: "by field", filter: repository.Filter{"kind": "nut"}, want: []string{"1", "3"}},
		{name: "int matches stored number", filter: repository.Filter{"price": 10}, want: []string{"1"}},
		{name: "missing field", filter: repository.Filter{"color": "red"}, want: []string{}},
		{name: "limit", filter: repository.All(), limit: 2, want: []string{"1", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := store.Find(context.Background(), testCollection, tt.filter, tt.limit)
			require.NoError(t, err)

			ids := make([]string, 0, len(docs))
			for _, doc := range docs {
				ids = append(ids, doc.ID())
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestDocumentStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := newSeededStore(t)

	doc, err := store.FindOne(ctx, testCollection, repository.ByID("1"))
	require.NoError(t, err)
	doc["kind"] = "mutated"

	again, err := store.FindOne(ctx, testCollection, repository.ByID("1"))
	require.NoError(t, err)
	assert.Equal(t, "nut", again["kind"])
}

func TestDocumentStore_FindOneMissing(t *testing.T) {
	_, err := NewDocumentStore().FindOne(context.Background(), testCollection, repository.ByID("x"))
	assert.ErrorIs(t, err, repository.ErrDocumentNotFound)
}

func TestDocumentStore_UpdateOne(t *testing.T) {
	ctx := context.Background()
	store := newSeededStore(t)

	matched, err := store.UpdateOne(ctx, testCollection, repository.ByID("2"), entity.Document{"price": 25}, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	doc, err := store.FindOne(ctx, testCollection, repository.ByID("2"))
	require.NoError(t, err)
	assert.Equal(t, 25.0, doc["price"])
	assert.Equal(t, "date", doc["kind"])

	matched, err = store.UpdateOne(ctx, testCollection, repository.ByID("9"), entity.Document{"price": 1}, false)
	require.NoError(t, err)
	assert.Zero(t, matched)

	count, err := store.Count(ctx, testCollection, repository.All())
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestDocumentStore_UpdateOneUpsert(t *testing.T) {
	ctx := context.Background()
	store := NewDocumentStore()

	matched, err := store.UpdateOne(ctx, "settings", repository.ByID("site_settings"), entity.Document{"name": "A"}, true)
	require.NoError(t, err)
	assert.Zero(t, matched)

	doc, err := store.FindOne(ctx, "settings", repository.ByID("site_settings"))
	require.NoError(t, err)
	assert.Equal(t, entity.Document{"id": "site_settings", "name": "A"}, doc)
}

func TestDocumentStore_DeleteOneKeepsOrder(t *testing.T) {
	ctx := context.Background()
	store := newSeededStore(t)

	deleted, err := store.DeleteOne(ctx, testCollection, repository.ByID("2"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	deleted, err = store.DeleteOne(ctx, testCollection, repository.ByID("2"))
	require.NoError(t, err)
	assert.Zero(t, deleted)

	docs, err := store.Find(ctx, testCollection, repository.All(), 0)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "1", docs[0].ID())
	assert.Equal(t, "3", docs[1].ID())
}

func TestDocumentStore_DeleteMany(t *testing.T) {
	ctx := context.Background()
	store := newSeededStore(t)

	deleted, err := store.DeleteMany(ctx, testCollection, repository.Filter{"kind": "nut"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	deleted, err = store.DeleteMany(ctx, testCollection, repository.All())
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestDocumentStore_ReplaceOne(t *testing.T) {
	ctx := context.Background()
	store := newSeededStore(t)

	require.NoError(t, store.ReplaceOne(ctx, testCollection, repository.ByID("1"), entity.Document{"id": "1", "only": true}, false))
	doc, err := store.FindOne(ctx, testCollection, repository.ByID("1"))
	require.NoError(t, err)
	assert.Equal(t, entity.Document{"id": "1", "only": true}, doc)

	require.NoError(t, store.ReplaceOne(ctx, testCollection, repository.ByID("7"), entity.Document{"id": "7"}, false))
	_, err = store.FindOne(ctx, testCollection, repository.ByID("7"))
	assert.ErrorIs(t, err, repository.ErrDocumentNotFound)

	require.NoError(t, store.ReplaceOne(ctx, testCollection, repository.ByID("7"), entity.Document{"id": "7"}, true))
	_, err = store.FindOne(ctx, testCollection, repository.ByID("7"))
	assert.NoError(t, err)
}
