package salonclient

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// Service is a catalog offering as returned by the API.
type Service struct {
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

// ListOptions narrows a service listing. Zero values mean "no filter".
type ListOptions struct {
	Category string
	Active   *bool
	Search   string
}

// ServiceInput is the create payload. Price and Duration are pointers so a
// zero price is distinguishable from an omitted one.
type ServiceInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price,omitempty"`
	Duration    *int     `json:"duration,omitempty"`
	Category    string   `json:"category"`
	Image       string   `json:"image,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// ServiceUpdate is a partial update; nil fields are left untouched.
type ServiceUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Duration    *int     `json:"duration,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// ListServices fetches the catalog, optionally filtered.
func (c *Client) ListServices(ctx context.Context, opts ListOptions) ([]Service, error) {
	values := url.Values{}
	if opts.Category != "" {
		values.Set("category", opts.Category)
	}
	if opts.Active != nil {
		values.Set("active", boolString(*opts.Active))
	}
	if opts.Search != "" {
		values.Set("search", opts.Search)
	}

	var services []Service
	if err := c.do(ctx, http.MethodGet, "/api/services"+queryString(values), nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// GetService fetches a single service by id.
func (c *Client) GetService(ctx context.Context, id string) (*Service, error) {
	var service Service
	if err := c.do(ctx, http.MethodGet, "/api/services/"+url.PathEscape(id), nil, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

// Categories fetches the distinct categories in use.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.do(ctx, http.MethodGet, "/api/services/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateService creates a catalog entry. Admin token required.
func (c *Client) CreateService(ctx context.Context, input ServiceInput) (*Service, error) {
	var service Service
	if err := c.do(ctx, http.MethodPost, "/api/services", input, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

// UpdateService applies a partial update. Admin token required.
func (c *Client) UpdateService(ctx context.Context, id string, update ServiceUpdate) (*Service, error) {
	var service Service
	if err := c.do(ctx, http.MethodPut, "/api/services/"+url.PathEscape(id), update, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

// DeleteService removes a catalog entry. Admin token required.
func (c *Client) DeleteService(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/services/"+url.PathEscape(id), nil, nil)
}
