package recordstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type recordDocument struct {
	Name      string    `bson:"_id"`
	Payload   []byte    `bson:"payload"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// MongoStore keeps one document per record in the records collection.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

func ConnectMongo(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection("records"),
	}, nil
}

func (s *MongoStore) Get(ctx context.Context, name string) ([]byte, error) {
	var doc recordDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": name}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find record %s: %w", name, err)
	}
	return doc.Payload, nil
}

func (s *MongoStore) Put(ctx context.Context, name string, payload []byte) error {
	update := bson.M{"$set": bson.M{"payload": payload, "updatedAt": time.Now().UTC()}}
	_, err := s.coll.UpdateOne(ctx, bson.M{"_id": name}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert record %s: %w", name, err)
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
