// Package mongo — документное хранилище party-one: профили, каталог
// членств, анкеты KYC и заявки на членство.
package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/pribylovaa/party-one/internal/storage"
)

// Коллекции.
const (
	UsersCollection       = "users"
	MembershipsCollection = "memberships"
	KYCCollection         = "kyc"
	RequestsCollection    = "membership_requests"
)

// Mongo — тонкий адаптер для подключения и коллекций MongoDB.
type Mongo struct {
	client      *mongodriver.Client
	db          *mongodriver.Database
	users       *mongodriver.Collection
	memberships *mongodriver.Collection
	kyc         *mongodriver.Collection
	requests    *mongodriver.Collection
}

// New подключается к MongoDB, проверяет соединение и создаёт индексы.
func New(ctx context.Context, uri, database string) (*Mongo, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongo: empty uri")
	}

	cli, err := mongodriver.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := cli.Database(database)
	m := &Mongo{
		client:      cli,
		db:          db,
		users:       db.Collection(UsersCollection),
		memberships: db.Collection(MembershipsCollection),
		kyc:         db.Collection(KYCCollection),
		requests:    db.Collection(RequestsCollection),
	}

	if err := m.ensureIndexes(ctx); err != nil {
		_ = m.Close(ctx)
		return nil, err
	}

	return m, nil
}

// Ping проверяет доступность primary (для /healthz).
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// ensureIndexes:
//   - users: email (для поиска по адресу из partyctl);
//   - memberships: order (порядок каталога);
//   - membership_requests: user_id + created_at(desc).
func (m *Mongo) ensureIndexes(ctx context.Context) error {
	if _, err := m.users.Indexes().CreateOne(ctx, mongodriver.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("email"),
	}); err != nil {
		return fmt.Errorf("mongo ensure indexes: users: %w", err)
	}

	if _, err := m.memberships.Indexes().CreateOne(ctx, mongodriver.IndexModel{
		Keys:    bson.D{{Key: "order", Value: 1}},
		Options: options.Index().SetName("order"),
	}); err != nil {
		return fmt.Errorf("mongo ensure indexes: memberships: %w", err)
	}

	if _, err := m.requests.Indexes().CreateOne(ctx, mongodriver.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
		Options: options.Index().SetName("user_created_desc"),
	}); err != nil {
		return fmt.Errorf("mongo ensure indexes: requests: %w", err)
	}

	return nil
}

var _ storage.DocumentStorage = (*Mongo)(nil)
