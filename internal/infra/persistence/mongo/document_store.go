package mongo

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const mongoIDField = "_id"

// withoutID hides the driver generated _id from every read.
var withoutID = bson.M{mongoIDField: 0}

// naturalOrder returns documents in insertion order.
var naturalOrder = bson.D{{Key: "$natural", Value: 1}}

// documentStore implements the repository.DocumentStore interface.
type documentStore struct {
	db *mongo.Database
}

// NewDocumentStore is the constructor for documentStore.
func NewDocumentStore(db *mongo.Database) repository.DocumentStore {
	return &documentStore{
		db: db,
	}
}

func (store *documentStore) Find(ctx context.Context, collection string, filter repository.Filter, limit int64) ([]entity.Document, error) {
	opts := options.Find().SetProjection(withoutID).SetSort(naturalOrder)
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := store.db.Collection(collection).Find(ctx, toBSON(filter), opts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find documents in %s", collection)
	}

	var raws []bson.M
	if err := cursor.All(ctx, &raws); err != nil {
		return nil, errors.Wrapf(err, "failed to decode documents in %s", collection)
	}

	docs := make([]entity.Document, 0, len(raws))
	for _, raw := range raws {
		docs = append(docs, toDocument(raw))
	}

	return docs, nil
}

func (store *documentStore) FindOne(ctx context.Context, collection string, filter repository.Filter) (entity.Document, error) {
	var raw bson.M

	err := store.db.Collection(collection).
		FindOne(ctx, toBSON(filter), options.FindOne().SetProjection(withoutID).SetSort(naturalOrder)).
		Decode(&raw)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrDocumentNotFound
		}

		return nil, errors.Wrapf(err, "failed to find document in %s", collection)
	}

	return toDocument(raw), nil
}

func (store *documentStore) Count(ctx context.Context, collection string, filter repository.Filter) (int64, error) {
	n, err := store.db.Collection(collection).CountDocuments(ctx, toBSON(filter))
	if err != nil {
		return 0, errors.Wrapf(err, "failed to count documents in %s", collection)
	}

	return n, nil
}

func (store *documentStore) InsertOne(ctx context.Context, collection string, doc entity.Document) error {
	if _, err := store.db.Collection(collection).InsertOne(ctx, bson.M(doc.Clone())); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert document into "+collection)
	}

	return nil
}

func (store *documentStore) InsertMany(ctx context.Context, collection string, docs []entity.Document) error {
	if len(docs) == 0 {
		return nil
	}

	batch := make([]any, 0, len(docs))
	for _, doc := range docs {
		batch = append(batch, bson.M(doc.Clone()))
	}

	if _, err := store.db.Collection(collection).InsertMany(ctx, batch, options.InsertMany().SetOrdered(true)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert documents into "+collection)
	}

	return nil
}

func (store *documentStore) UpdateOne(ctx context.Context, collection string, filter repository.Filter, fields entity.Document, upsert bool) (int64, error) {
	result, err := store.db.Collection(collection).UpdateOne(ctx,
		toBSON(filter),
		bson.M{"$set": bson.M(fields)},
		options.Update().SetUpsert(upsert),
	)
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to update document in "+collection)
	}

	return result.MatchedCount, nil
}

func (store *documentStore) DeleteOne(ctx context.Context, collection string, filter repository.Filter) (int64, error) {
	result, err := store.db.Collection(collection).DeleteOne(ctx, toBSON(filter))
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to delete document from "+collection)
	}

	return result.DeletedCount, nil
}

func (store *documentStore) DeleteMany(ctx context.Context, collection string, filter repository.Filter) (int64, error) {
	result, err := store.db.Collection(collection).DeleteMany(ctx, toBSON(filter))
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to delete documents from "+collection)
	}

	return result.DeletedCount, nil
}

func (store *documentStore) ReplaceOne(ctx context.Context, collection string, filter repository.Filter, doc entity.Document, upsert bool) error {
	_, err := store.db.Collection(collection).ReplaceOne(ctx,
		toBSON(filter),
		bson.M(doc.Clone()),
		options.Replace().SetUpsert(upsert),
	)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace document in "+collection)
	}

	return nil
}

func (store *documentStore) Ping(ctx context.Context) error {
	return errors.Wrap(store.db.Client().Ping(ctx, readpref.Primary()), "failed to ping MongoDB")
}

func toBSON(filter repository.Filter) bson.M {
	if filter == nil {
		return bson.M{}
	}

	return bson.M(filter)
}

// toDocument converts driver values into the plain maps and slices
// the rest of the application works with. A top-level _id never survives,
// even when a read skipped the projection.
func toDocument(raw bson.M) entity.Document {
	doc := make(entity.Document, len(raw))
	for k, v := range raw {
		if k == mongoIDField {
			continue
		}
		doc[k] = fromBSONValue(v)
	}

	return doc
}

func fromBSONValue(v any) any {
	switch val := v.(type) {
	case bson.M:
		return nestedMap(val)
	case bson.D:
		out := make(map[string]any, len(val))
		for _, elem := range val {
			out[elem.Key] = fromBSONValue(elem.Value)
		}

		return out
	case primitive.A:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = fromBSONValue(item)
		}

		return out
	case primitive.DateTime:
		return entity.FormatTimestamp(val.Time())
	case primitive.ObjectID:
		return val.Hex()
	default:
		return val
	}
}

func nestedMap(raw bson.M) map[string]any {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		out[k] = fromBSONValue(v)
	}

	return out
}
