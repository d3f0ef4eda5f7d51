package source

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// deviceDoc is one adjacency document: the device identifier plus its
// observed neighbors, in observation order.
type deviceDoc struct {
	Device    string   `bson:"device"`
	Neighbors []string `bson:"neighbors"`
}

// Mongo reads adjacencies from a MongoDB collection holding one document
// per device ({device, neighbors}). This is the shape a periodic discovery
// collector writes when snapshots need to outlive the collector process.
type Mongo struct {
	client *mongo.Client
	col    *mongo.Collection
}

// DialMongo connects to uri and returns a source over db/collection.
func DialMongo(ctx context.Context, uri, db, collection string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return &Mongo{client: client, col: client.Database(db).Collection(collection)}, nil
}

// Neighbors returns the neighbor list from the device's document.
func (m *Mongo) Neighbors(ctx context.Context, device string) ([]string, error) {
	var doc deviceDoc
	err := m.col.FindOne(ctx, bson.M{"device": device}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDevice, device)
	}
	if err != nil {
		return nil, fmt.Errorf("mongo find %s: %w", device, err)
	}
	return doc.Neighbors, nil
}

// Devices returns every device identifier in the collection, sorted.
func (m *Mongo) Devices(ctx context.Context) ([]string, error) {
	raw, err := m.col.Distinct(ctx, "device", bson.D{})
	if err != nil {
		return nil, fmt.Errorf("mongo distinct: %w", err)
	}
	devices := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			devices = append(devices, s)
		}
	}
	slices.Sort(devices)
	return devices, nil
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error { return m.client.Disconnect(ctx) }

var (
	_ Source     = (*Mongo)(nil)
	_ Enumerator = (*Mongo)(nil)
)
