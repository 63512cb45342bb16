// Command seed resets the services collection and loads the stock catalog.
package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/katyregal/salon-api/internal/core/domain"
	mongodb "github.com/katyregal/salon-api/internal/infrastructure/db/mongo"
	"github.com/katyregal/salon-api/internal/pkg/config"
	"github.com/katyregal/salon-api/pkg/logger"
)

var stockServices = []domain.Service{
	{
		Name:            "Classic Haircut",
		Description:     "A traditional haircut service performed by our expert stylists. Includes consultation, wash, cut, and style.",
		Price:           35,
		DurationMinutes: 30,
		Category:        domain.CategoryHair,
		Image:           "https://images.unsplash.com/photo-1560066984-138dadb4c035",
	},
	{
		Name:            "Hair Coloring",
		Description:     "Professional hair coloring service. Choose from a variety of colors or bring your inspiration.",
		Price:           85,
		DurationMinutes: 120,
		Category:        domain.CategoryHair,
		Image:           "https://images.unsplash.com/photo-1562322140-8baeececf3df",
	},
	{
		Name:            "Manicure",
		Description:     "Classic manicure including nail shaping, cuticle care, hand massage, and polish application.",
		Price:           25,
		DurationMinutes: 30,
		Category:        domain.CategoryNails,
		Image:           "https://images.unsplash.com/photo-1604654894610-df63bc536371",
	},
	{
		Name:            "Pedicure",
		Description:     "Relaxing pedicure treatment including foot soak, exfoliation, nail care, massage, and polish.",
		Price:           35,
		DurationMinutes: 45,
		Category:        domain.CategoryNails,
		Image:           "https://images.unsplash.com/photo-1519751138087-5bf79df62d5b",
	},
	{
		Name:            "Basic Facial",
		Description:     "Rejuvenating facial treatment including cleansing, exfoliation, mask, and moisturizing.",
		Price:           60,
		DurationMinutes: 45,
		Category:        domain.CategoryFacial,
		Image:           "https://images.unsplash.com/photo-1570172619644-dfd03ed5d881",
	},
	{
		Name:            "Swedish Massage",
		Description:     "Classic massage technique that uses long, flowing strokes to promote relaxation and wellbeing.",
		Price:           75,
		DurationMinutes: 60,
		Category:        domain.CategoryMassage,
		Image:           "https://images.unsplash.com/photo-1544161515-4ab6ce6db874",
	},
	{
		Name:            "Makeup Application",
		Description:     "Professional makeup application for any occasion, from natural daytime looks to glamorous evening styles.",
		Price:           65,
		DurationMinutes: 45,
		Category:        domain.CategoryMakeup,
		Image:           "https://images.unsplash.com/photo-1522337360788-8b13dee7a37e",
	},
	{
		Name:            "Bridal Makeup",
		Description:     "Complete bridal makeup service including consultation and trial run to ensure your perfect look on your special day.",
		Price:           120,
		DurationMinutes: 90,
		Category:        domain.CategoryMakeup,
		Image:           "https://images.unsplash.com/photo-1503324280674-50695c3ae35f",
	},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if _, err := db.Collection("services").DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatal().Err(err).Msg("failed to clear services collection")
	}

	repo := mongodb.NewCatalogRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create catalog indexes")
	}

	now := time.Now().UTC()
	for i := range stockServices {
		svc := stockServices[i]
		svc.Active = true
		svc.CreatedAt = now
		svc.UpdatedAt = now
		if err := repo.Create(ctx, &svc); err != nil {
			log.Fatal().Err(err).Str("name", svc.Name).Msg("failed to seed service")
		}
		log.Info().Str("id", svc.ID).Str("name", svc.Name).Msg("seeded service")
	}

	log.Info().Int("count", len(stockServices)).Msg("catalog seeded")
}
