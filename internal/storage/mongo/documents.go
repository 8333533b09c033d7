package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pribylovaa/party-one/internal/storage"
)

// Базовые операции документного хранилища: get-document, set-document
// (с merge или без) и list-collection. Типизированные репозитории ниже
// построены на них.

// GetDocument декодирует документ с _id=id в out.
func (m *Mongo) GetDocument(ctx context.Context, coll, id string, out any) error {
	const op = "storage/mongo/GetDocument"

	err := m.db.Collection(coll).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(out)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SetDocument записывает документ с _id=id, создавая его при отсутствии.
// merge=false заменяет документ целиком; merge=true обновляет только
// переданные поля (doc должен кодироваться в документ BSON без _id).
func (m *Mongo) SetDocument(ctx context.Context, coll, id string, doc any, merge bool) error {
	const op = "storage/mongo/SetDocument"

	c := m.db.Collection(coll)
	filter := bson.D{{Key: "_id", Value: id}}

	var err error
	if merge {
		_, err = c.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: doc}}, options.Update().SetUpsert(true))
	} else {
		_, err = c.ReplaceOne(ctx, filter, doc, options.Replace().SetUpsert(true))
	}

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ListCollection декодирует все документы коллекции в out (указатель на срез),
// сортируя по sortKey, если он задан.
func (m *Mongo) ListCollection(ctx context.Context, coll, sortKey string, out any) error {
	const op = "storage/mongo/ListCollection"

	opts := options.Find()
	if sortKey != "" {
		opts.SetSort(bson.D{{Key: sortKey, Value: 1}})
	}

	cur, err := m.db.Collection(coll).Find(ctx, bson.D{}, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeleteDocument удаляет документ; ErrNotFound, если его не было.
func (m *Mongo) DeleteDocument(ctx context.Context, coll, id string) error {
	const op = "storage/mongo/DeleteDocument"

	res, err := m.db.Collection(coll).DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
