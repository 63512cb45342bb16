package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/katyregal/salon-api/internal/core/domain"
	"github.com/katyregal/salon-api/internal/core/ports"
)

const servicesCollection = "services"

type CatalogRepository struct {
	coll *mongo.Collection
}

func NewCatalogRepository(db *mongo.Database) *CatalogRepository {
	return &CatalogRepository{coll: db.Collection(servicesCollection)}
}

type mongoService struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	Description     string             `bson:"description"`
	Price           float64            `bson:"price"`
	DurationMinutes int                `bson:"duration"`
	Category        string             `bson:"category"`
	Image           string             `bson:"image"`
	Active          bool               `bson:"active"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

func (r *CatalogRepository) Create(ctx context.Context, s *domain.Service) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoService{
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		Category:        string(s.Category),
		Image:           s.Image,
		Active:          s.Active,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		s.ID = oid.Hex()
	}
	return nil
}

func (r *CatalogRepository) FindByID(ctx context.Context, id string) (*domain.Service, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id can never match a stored record.
		return nil, domain.ErrServiceNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ms mongoService
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ms); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("find service: %w", err)
	}
	return ms.toDomain(), nil
}

func (r *CatalogRepository) Update(ctx context.Context, id string, patch ports.ServicePatch) (*domain.Service, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrServiceNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.DurationMinutes != nil {
		set["duration"] = *patch.DurationMinutes
	}
	if patch.Category != nil {
		set["category"] = string(*patch.Category)
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	if patch.Active != nil {
		set["active"] = *patch.Active
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ms mongoService
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&ms)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("update service: %w", err)
	}
	return ms.toDomain(), nil
}

func (r *CatalogRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrServiceNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrServiceNotFound
	}
	return nil
}

// List returns the full matching set ordered by creation time, newest first.
func (r *CatalogRepository) List(ctx context.Context, filter ports.ListServicesFilter) ([]*domain.Service, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Active != nil {
		query["active"] = *filter.Active
	}
	if filter.Search != "" {
		query["$text"] = bson.M{"$search": filter.Search}
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer cursor.Close(ctx)

	services := make([]*domain.Service, 0)
	for cursor.Next(ctx) {
		var ms mongoService
		if err := cursor.Decode(&ms); err != nil {
			return nil, fmt.Errorf("decode service: %w", err)
		}
		services = append(services, ms.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

func (r *CatalogRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	values, err := r.coll.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("distinct categories: %w", err)
	}

	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	return categories, nil
}

// EnsureIndexes creates the text index used by free-text search plus the
// filter/sort indexes.
func (r *CatalogRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "name", Value: "text"},
			{Key: "description", Value: "text"},
			{Key: "category", Value: "text"},
		}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (ms *mongoService) toDomain() *domain.Service {
	return &domain.Service{
		ID:              ms.ID.Hex(),
		Name:            ms.Name,
		Description:     ms.Description,
		Price:           ms.Price,
		DurationMinutes: ms.DurationMinutes,
		Category:        domain.Category(ms.Category),
		Image:           ms.Image,
		Active:          ms.Active,
		CreatedAt:       ms.CreatedAt.UTC(),
		UpdatedAt:       ms.UpdatedAt.UTC(),
	}
}
