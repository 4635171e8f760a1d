package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pgedit/studio-api/internal/core/domain"
)

const creditEventCollection = "credit_events"

const defaultHistoryLimit = 50

type MongoCreditEventRepository struct {
	coll *mongo.Collection
}

func NewCreditEventRepository(db *mongo.Database) *MongoCreditEventRepository {
	return &MongoCreditEventRepository{coll: db.Collection(creditEventCollection)}
}

func (r *MongoCreditEventRepository) Insert(ctx context.Context, event *domain.CreditEvent) error {
	if _, err := r.coll.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("insert credit event: %w", err)
	}
	return nil
}

func (r *MongoCreditEventRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.CreditEvent, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list credit events: %w", err)
	}
	defer cur.Close(ctx)

	var events []*domain.CreditEvent
	for cur.Next(ctx) {
		var event domain.CreditEvent
		if err := cur.Decode(&event); err != nil {
			return nil, fmt.Errorf("decode credit event: %w", err)
		}
		events = append(events, &event)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list credit events: %w", err)
	}
	return events, nil
}
