package domain

import (
	"errors"
	"fmt"
	"time"
)

// Category classifies a catalog service. The set is fixed.
type Category string

const (
	CategoryHair    Category = "Hair"
	CategoryNails   Category = "Nails"
	CategoryFacial  Category = "Facial"
	CategoryMassage Category = "Massage"
	CategoryMakeup  Category = "Makeup"
	CategoryOther   Category = "Other"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryHair, CategoryNails, CategoryFacial,
	CategoryMassage, CategoryMakeup, CategoryOther,
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// DefaultServiceImage is applied when a service is created without an image.
const DefaultServiceImage = "https://images.unsplash.com/photo-1522335789203-aabd1fc54bc9"

const maxServiceNameLength = 100

var ErrServiceNotFound = errors.New("service not found")
var ErrValidation = errors.New("validation failed")

// Service is a bookable catalog offering. active=false is a soft disable,
// not a delete.
type Service struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"duration"`
	Category        Category  `json:"category"`
	Image           string    `json:"image"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Validate checks the catalog invariants. It is applied on create and
// re-applied after every partial update.
func (s *Service) Validate() error {
	switch {
	case s.Name == "":
		return fmt.Errorf("%w: name is required", ErrValidation)
	case len(s.Name) > maxServiceNameLength:
		return fmt.Errorf("%w: name cannot be more than %d characters", ErrValidation, maxServiceNameLength)
	case s.Description == "":
		return fmt.Errorf("%w: description is required", ErrValidation)
	case s.Price < 0:
		return fmt.Errorf("%w: price cannot be negative", ErrValidation)
	case s.DurationMinutes < 1:
		return fmt.Errorf("%w: duration must be at least 1 minute", ErrValidation)
	case !s.Category.Valid():
		return fmt.Errorf("%w: category must be one of %v", ErrValidation, Categories)
	}
	return nil
}
