package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/overwatch/internal/domain"
	"github.com/alexanderramin/overwatch/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
}

func NewProfileService(profiles repository.ProfileRepo) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) Get(ctx context.Context) (*domain.Profile, error) {
	return s.profiles.Get(ctx)
}

func (s *profileService) Update(ctx context.Context, p *domain.Profile) error {
	if p.EFSTarget < 0 {
		return fmt.Errorf("efs target must not be negative")
	}
	if p.RotLimitMin < 0 {
		return fmt.Errorf("rot limit must not be negative")
	}
	if err := s.profiles.Upsert(ctx, p); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}
