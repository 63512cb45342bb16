package handler

import (
	"github.com/katyregal/salon-api/internal/core/domain"
	"github.com/katyregal/salon-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createServiceRequest) ports.CreateServiceInput {
	in := ports.CreateServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Image:       req.Image,
		Active:      req.Active,
	}
	if req.Price != nil {
		in.Price = *req.Price
	}
	if req.Duration != nil {
		in.DurationMinutes = *req.Duration
	}
	return in
}

func toUpdateInput(req updateServiceRequest) ports.UpdateServiceInput {
	return ports.UpdateServiceInput{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.Duration,
		Category:        req.Category,
		Image:           req.Image,
		Active:          req.Active,
	}
}

// --- Domain → HTTP response ---

func toServiceResponse(s *domain.Service) serviceResponse {
	return serviceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Duration:    s.DurationMinutes,
		Category:    string(s.Category),
		Image:       s.Image,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt.UTC(),
		UpdatedAt:   s.UpdatedAt.UTC(),
	}
}

func toServiceListResponse(services []*domain.Service) listServicesResponse {
	items := make([]serviceResponse, len(services))
	for i, s := range services {
		items[i] = toServiceResponse(s)
	}
	return listServicesResponse{Success: true, Count: len(items), Data: items}
}

func toUserPayload(u *domain.User) userPayload {
	return userPayload{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.UTC(),
	}
}

func toAuthData(result *ports.AuthResult) authData {
	return authData{
		userPayload: toUserPayload(result.User),
		Token:       result.Token,
	}
}
