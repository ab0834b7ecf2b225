package service

import (
	"context"

	"helpdesk/internal/domain/model"
	"helpdesk/internal/domain/repository"
)

type BanService struct {
	banRepo repository.BanRepository
}

func NewBanService(banRepo repository.BanRepository) *BanService {
	return &BanService{banRepo: banRepo}
}

// CreateBanRequest carries a caller-chosen id; the table imposes no
// uniqueness on it.
type CreateBanRequest struct {
	ID     int    `json:"id"`
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

func (s *BanService) ListBans(ctx context.Context) ([]model.Ban, error) {
	return s.banRepo.List(ctx)
}

func (s *BanService) GetBan(ctx context.Context, id int) (*model.Ban, error) {
	return s.banRepo.FindByID(ctx, id)
}

func (s *BanService) CreateBan(ctx context.Context, req CreateBanRequest) (*model.Ban, error) {
	ban := model.NewBan(req.ID, req.Email, req.Reason)
	if err := s.banRepo.Create(ctx, ban); err != nil {
		return nil, err
	}
	return ban, nil
}

func (s *BanService) DeleteBan(ctx context.Context, id int) error {
	return s.banRepo.DeleteByID(ctx, id)
}
