package handler

import "time"

// Price and duration are pointers so that a legitimate zero price survives
// the "required" check while a missing field still fails it.
type createServiceRequest struct {
	Name        string   `json:"name"        validate:"required,max=100"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price"       validate:"required,gte=0"`
	Duration    *int     `json:"duration"    validate:"required,gte=1"`
	Category    string   `json:"category"    validate:"required,oneof=Hair Nails Facial Massage Makeup Other"`
	Image       string   `json:"image"`
	Active      *bool    `json:"active"`
}

type updateServiceRequest struct {
	Name        *string  `json:"name"        validate:"omitempty,max=100"`
	Description *string  `json:"description" validate:"omitempty,min=1"`
	Price       *float64 `json:"price"       validate:"omitempty,gte=0"`
	Duration    *int     `json:"duration"    validate:"omitempty,gte=1"`
	Category    *string  `json:"category"    validate:"omitempty,oneof=Hair Nails Facial Massage Makeup Other"`
	Image       *string  `json:"image"`
	Active      *bool    `json:"active"`
}

// serviceResponse is the transport view of a catalog service, kept separate
// from the domain type so the JSON contract is not coupled to internal
// changes.
type serviceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Duration    int       `json:"duration"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type listServicesResponse struct {
	Success bool              `json:"success"`
	Count   int               `json:"count"`
	Data    []serviceResponse `json:"data"`
}

type serviceEnvelope struct {
	Success bool            `json:"success"`
	Data    serviceResponse `json:"data"`
}

type categoriesResponse struct {
	Success bool     `json:"success"`
	Count   int      `json:"count"`
	Data    []string `json:"data"`
}

// deletedResponse mirrors the delete contract: an empty data object.
type deletedResponse struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data"`
}
