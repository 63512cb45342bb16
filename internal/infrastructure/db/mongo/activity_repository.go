package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/katyregal/salon-api/internal/core/domain"
)

const authEventsCollection = "auth_events"

// ActivityRepository appends auth activity records to the audit collection.
type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(authEventsCollection)}
}

func (r *ActivityRepository) Insert(ctx context.Context, activity *domain.AuthActivity) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, activity)
	if err != nil {
		return fmt.Errorf("insert auth activity: %w", err)
	}
	return nil
}
