// Package postgres stores documents as JSONB rows through GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// documentStore implements the repository.DocumentStore interface on a single
// documents table. Filters are JSONB containment checks on the body column.
type documentStore struct {
	db *gorm.DB
}

// NewDocumentStore is the constructor for documentStore.
func NewDocumentStore(db *gorm.DB) repository.DocumentStore {
	return &documentStore{
		db: db,
	}
}

func (store *documentStore) Find(ctx context.Context, collection string, filter repository.Filter, limit int64) ([]entity.Document, error) {
	query, err := scoped(store.db.WithContext(ctx), collection, filter)
	if err != nil {
		return nil, err
	}

	query = query.Order("seq ASC")
	if limit > 0 {
		query = query.Limit(int(limit))
	}

	var rows []*model.DocumentModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to find documents in %s", collection)
	}

	docs := make([]entity.Document, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, toDocument(row))
	}

	return docs, nil
}

func (store *documentStore) FindOne(ctx context.Context, collection string, filter repository.Filter) (entity.Document, error) {
	row, err := first(store.db.WithContext(ctx), collection, filter)
	if err != nil {
		return nil, err
	}

	return toDocument(row), nil
}

func (store *documentStore) Count(ctx context.Context, collection string, filter repository.Filter) (int64, error) {
	query, err := scoped(store.db.WithContext(ctx), collection, filter)
	if err != nil {
		return 0, err
	}

	var n int64
	if err := query.Count(&n).Error; err != nil {
		return 0, errors.Wrapf(err, "failed to count documents in %s", collection)
	}

	return n, nil
}

func (store *documentStore) InsertOne(ctx context.Context, collection string, doc entity.Document) error {
	row := fromDocument(collection, doc)

	if err := store.db.WithContext(ctx).Create(row).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert document into "+collection)
	}

	return nil
}

func (store *documentStore) InsertMany(ctx context.Context, collection string, docs []entity.Document) error {
	if len(docs) == 0 {
		return nil
	}

	rows := make([]*model.DocumentModel, 0, len(docs))
	for _, doc := range docs {
		rows = append(rows, fromDocument(collection, doc))
	}

	if err := store.db.WithContext(ctx).CreateInBatches(rows, insertBatchSize).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert documents into "+collection)
	}

	return nil
}

func (store *documentStore) UpdateOne(ctx context.Context, collection string, filter repository.Filter, fields entity.Document, upsert bool) (int64, error) {
	patch, err := json.Marshal(fields)
	if err != nil {
		return 0, errors.Wrap(err, "failed to encode update fields")
	}

	var matched int64
	err = store.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := first(tx, collection, filter)
		if errors.Is(err, repository.ErrDocumentNotFound) {
			if !upsert {
				return nil
			}

			created := entity.Document{}
			for k, v := range filter {
				created[k] = v
			}
			for k, v := range fields {
				created[k] = v
			}

			return tx.Create(fromDocument(collection, created)).Error
		}
		if err != nil {
			return err
		}

		matched = 1

		return tx.Model(&model.DocumentModel{}).
			Where("seq = ?", row.Seq).
			Update("body", gorm.Expr("body || ?::jsonb", string(patch))).Error
	})
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to update document in "+collection)
	}

	return matched, nil
}

func (store *documentStore) DeleteOne(ctx context.Context, collection string, filter repository.Filter) (int64, error) {
	query, err := scoped(store.db.WithContext(ctx), collection, filter)
	if err != nil {
		return 0, err
	}

	firstSeq := query.Model(&model.DocumentModel{}).Select("seq").Order("seq ASC").Limit(1)

	result := store.db.WithContext(ctx).Where("seq = (?)", firstSeq).Delete(&model.DocumentModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete document from "+collection)
	}

	return result.RowsAffected, nil
}

func (store *documentStore) DeleteMany(ctx context.Context, collection string, filter repository.Filter) (int64, error) {
	query, err := scoped(store.db.WithContext(ctx), collection, filter)
	if err != nil {
		return 0, err
	}

	result := query.Delete(&model.DocumentModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete documents from "+collection)
	}

	return result.RowsAffected, nil
}

func (store *documentStore) ReplaceOne(ctx context.Context, collection string, filter repository.Filter, doc entity.Document, upsert bool) error {
	err := store.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := first(tx, collection, filter)
		if errors.Is(err, repository.ErrDocumentNotFound) {
			if !upsert {
				return nil
			}

			return tx.Create(fromDocument(collection, doc)).Error
		}
		if err != nil {
			return err
		}

		return tx.Model(&model.DocumentModel{}).
			Where("seq = ?", row.Seq).
			Update("body", datatypes.JSONMap(doc)).Error
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace document in "+collection)
	}

	return nil
}

func (store *documentStore) Ping(ctx context.Context) error {
	sqlDB, err := store.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return errors.Wrap(sqlDB.PingContext(ctx), "failed to ping PostgreSQL")
}

const insertBatchSize = 100

// scoped restricts a query to one collection and the filter's fields.
func scoped(db *gorm.DB, collection string, filter repository.Filter) (*gorm.DB, error) {
	query := db.Model(&model.DocumentModel{}).Where("collection = ?", collection)
	if len(filter) == 0 {
		return query, nil
	}

	contains, err := json.Marshal(filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode filter")
	}

	return query.Where("body @> ?::jsonb", string(contains)), nil
}

func first(db *gorm.DB, collection string, filter repository.Filter) (*model.DocumentModel, error) {
	query, err := scoped(db, collection, filter)
	if err != nil {
		return nil, err
	}

	var row model.DocumentModel
	if err := query.Order("seq ASC").First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDocumentNotFound
		}

		return nil, errors.Wrapf(err, "failed to find document in %s", collection)
	}

	return &row, nil
}

func fromDocument(collection string, doc entity.Document) *model.DocumentModel {
	return &model.DocumentModel{
		Collection: collection,
		Body:       datatypes.JSONMap(doc.Clone()),
	}
}

func toDocument(row *model.DocumentModel) entity.Document {
	if row.Body == nil {
		return entity.Document{}
	}

	return entity.Document(row.Body)
}
