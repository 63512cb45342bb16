package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/katyregal/salon-api/internal/core/domain"
	"github.com/katyregal/salon-api/internal/core/ports"
)

type stubCatalogRepo struct {
	services   map[string]*domain.Service
	nextID     int
	lastFilter ports.ListServicesFilter
	distinct   []string
	distinctN  int
}

func newStubCatalogRepo() *stubCatalogRepo {
	return &stubCatalogRepo{services: make(map[string]*domain.Service)}
}

func (r *stubCatalogRepo) Create(_ context.Context, s *domain.Service) error {
	r.nextID++
	s.ID = "svc_" + strconv.Itoa(r.nextID)
	clone := *s
	r.services[s.ID] = &clone
	return nil
}

func (r *stubCatalogRepo) FindByID(_ context.Context, id string) (*domain.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, domain.ErrServiceNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubCatalogRepo) Update(_ context.Context, id string, patch ports.ServicePatch) (*domain.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, domain.ErrServiceNotFound
	}
	if patch.Name != nil {
		s.Name = *patch.Name
	}
	if patch.Description != nil {
		s.Description = *patch.Description
	}
	if patch.Price != nil {
		s.Price = *patch.Price
	}
	if patch.DurationMinutes != nil {
		s.DurationMinutes = *patch.DurationMinutes
	}
	if patch.Category != nil {
		s.Category = *patch.Category
	}
	if patch.Image != nil {
		s.Image = *patch.Image
	}
	if patch.Active != nil {
		s.Active = *patch.Active
	}
	clone := *s
	return &clone, nil
}

func (r *stubCatalogRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.services[id]; !ok {
		return domain.ErrServiceNotFound
	}
	delete(r.services, id)
	return nil
}

func (r *stubCatalogRepo) List(_ context.Context, filter ports.ListServicesFilter) ([]*domain.Service, error) {
	r.lastFilter = filter
	out := make([]*domain.Service, 0, len(r.services))
	for _, s := range r.services {
		clone := *s
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubCatalogRepo) DistinctCategories(_ context.Context) ([]string, error) {
	r.distinctN++
	return r.distinct, nil
}

type stubCache struct {
	values      []string
	warm        bool
	invalidated int
}

func (c *stubCache) Get(_ context.Context) ([]string, bool, error) {
	if !c.warm {
		return nil, false, nil
	}
	return c.values, true, nil
}

func (c *stubCache) Set(_ context.Context, categories []string) error {
	c.values = categories
	c.warm = true
	return nil
}

func (c *stubCache) Invalidate(_ context.Context) error {
	c.warm = false
	c.values = nil
	c.invalidated++
	return nil
}

func validCreateInput() ports.CreateServiceInput {
	return ports.CreateServiceInput{
		Name:            "Classic Haircut",
		Description:     "Wash, cut and style.",
		Price:           35,
		DurationMinutes: 30,
		Category:        "Hair",
	}
}

func TestCatalogService_Create_Defaults(t *testing.T) {
	repo := newStubCatalogRepo()
	svc := NewCatalogService(repo, nil, zerolog.Nop())

	created, err := svc.CreateService(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
	if !created.Active {
		t.Fatalf("active must default to true")
	}
	if created.Image != domain.DefaultServiceImage {
		t.Fatalf("expected default image, got %q", created.Image)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("timestamps must be set")
	}
}

func TestCatalogService_Create_Validation(t *testing.T) {
	svc := NewCatalogService(newStubCatalogRepo(), nil, zerolog.Nop())

	cases := map[string]func(*ports.CreateServiceInput){
		"negative price": func(in *ports.CreateServiceInput) { in.Price = -1 },
		"zero duration":  func(in *ports.CreateServiceInput) { in.DurationMinutes = 0 },
		"bad category":   func(in *ports.CreateServiceInput) { in.Category = "Spa" },
		"missing name":   func(in *ports.CreateServiceInput) { in.Name = "" },
	}
	for name, mutate := range cases {
		in := validCreateInput()
		mutate(&in)
		if _, err := svc.CreateService(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("%s: expected ErrValidation, got %v", name, err)
		}
	}
}

func TestCatalogService_Create_ZeroPriceAllowed(t *testing.T) {
	svc := NewCatalogService(newStubCatalogRepo(), nil, zerolog.Nop())

	in := validCreateInput()
	in.Price = 0
	if _, err := svc.CreateService(context.Background(), in); err != nil {
		t.Fatalf("zero price must be valid: %v", err)
	}
}

func TestCatalogService_Update_RevalidatesMergedRecord(t *testing.T) {
	repo := newStubCatalogRepo()
	svc := NewCatalogService(repo, nil, zerolog.Nop())

	created, err := svc.CreateService(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	bad := -5.0
	if _, err := svc.UpdateService(context.Background(), created.ID, ports.UpdateServiceInput{Price: &bad}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation on negative price, got %v", err)
	}
	// A rejected update must not leak into the repository.
	current, _ := repo.FindByID(context.Background(), created.ID)
	if current.Price != 35 {
		t.Fatalf("price changed despite validation failure: %v", current.Price)
	}

	newPrice := 40.0
	inactive := false
	updated, err := svc.UpdateService(context.Background(), created.ID, ports.UpdateServiceInput{
		Price:  &newPrice,
		Active: &inactive,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Price != 40 || updated.Active {
		t.Fatalf("partial merge not applied: %+v", updated)
	}
	if updated.Name != "Classic Haircut" {
		t.Fatalf("untouched field changed: %q", updated.Name)
	}
}

func TestCatalogService_Update_NotFound(t *testing.T) {
	svc := NewCatalogService(newStubCatalogRepo(), nil, zerolog.Nop())

	price := 10.0
	if _, err := svc.UpdateService(context.Background(), "missing", ports.UpdateServiceInput{Price: &price}); !errors.Is(err, domain.ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}

func TestCatalogService_Delete_Idempotence(t *testing.T) {
	repo := newStubCatalogRepo()
	svc := NewCatalogService(repo, nil, zerolog.Nop())

	created, _ := svc.CreateService(context.Background(), validCreateInput())
	if err := svc.DeleteService(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.DeleteService(context.Background(), created.ID); !errors.Is(err, domain.ErrServiceNotFound) {
		t.Fatalf("second delete must report not found, got %v", err)
	}
}

func TestCatalogService_List_PassesFilter(t *testing.T) {
	repo := newStubCatalogRepo()
	svc := NewCatalogService(repo, nil, zerolog.Nop())

	active := true
	_, err := svc.ListServices(context.Background(), ports.ListServicesFilter{
		Category: "Hair",
		Active:   &active,
		Search:   "cut",
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.lastFilter.Category != "Hair" || repo.lastFilter.Search != "cut" {
		t.Fatalf("filter not passed through: %+v", repo.lastFilter)
	}
	if repo.lastFilter.Active == nil || !*repo.lastFilter.Active {
		t.Fatalf("active filter not passed through")
	}
}

func TestCatalogService_Categories_CacheMissThenHit(t *testing.T) {
	repo := newStubCatalogRepo()
	repo.distinct = []string{"Hair", "Nails"}
	cache := &stubCache{}
	svc := NewCatalogService(repo, cache, zerolog.Nop())

	first, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("categories failed: %v", err)
	}
	if len(first) != 2 || repo.distinctN != 1 {
		t.Fatalf("expected repository read on miss, got n=%d", repo.distinctN)
	}

	second, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("categories failed: %v", err)
	}
	if len(second) != 2 || repo.distinctN != 1 {
		t.Fatalf("expected cache hit on second read, repo reads=%d", repo.distinctN)
	}
}

func TestCatalogService_Mutations_InvalidateCategoryCache(t *testing.T) {
	repo := newStubCatalogRepo()
	cache := &stubCache{warm: true, values: []string{"Hair"}}
	svc := NewCatalogService(repo, cache, zerolog.Nop())

	created, err := svc.CreateService(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if cache.invalidated != 1 {
		t.Fatalf("create must invalidate the cache, got %d", cache.invalidated)
	}

	if err := svc.DeleteService(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if cache.invalidated != 2 {
		t.Fatalf("delete must invalidate the cache, got %d", cache.invalidated)
	}
}
