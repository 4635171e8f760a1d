package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pgedit/studio-api/internal/core/domain"
)

const paymentCollection = "payment_requests"

type MongoPaymentRepository struct {
	coll *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *MongoPaymentRepository {
	return &MongoPaymentRepository{coll: db.Collection(paymentCollection)}
}

func (r *MongoPaymentRepository) Insert(ctx context.Context, request *domain.PaymentRequest) error {
	if _, err := r.coll.InsertOne(ctx, request); err != nil {
		return fmt.Errorf("insert payment request: %w", err)
	}
	return nil
}

func (r *MongoPaymentRepository) FindByID(ctx context.Context, id string) (*domain.PaymentRequest, error) {
	var request domain.PaymentRequest
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&request); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("find payment request: %w", err)
	}
	return &request, nil
}

func (r *MongoPaymentRepository) UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPaymentNotFound
	}
	return nil
}

// List returns requests newest first, optionally filtered by status.
func (r *MongoPaymentRepository) List(ctx context.Context, status domain.PaymentStatus) ([]*domain.PaymentRequest, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return r.find(ctx, filter)
}

func (r *MongoPaymentRepository) ListByUser(ctx context.Context, userID string) ([]*domain.PaymentRequest, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *MongoPaymentRepository) find(ctx context.Context, filter bson.M) ([]*domain.PaymentRequest, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list payment requests: %w", err)
	}
	defer cur.Close(ctx)

	var requests []*domain.PaymentRequest
	for cur.Next(ctx) {
		var request domain.PaymentRequest
		if err := cur.Decode(&request); err != nil {
			return nil, fmt.Errorf("decode payment request: %w", err)
		}
		requests = append(requests, &request)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list payment requests: %w", err)
	}
	return requests, nil
}
