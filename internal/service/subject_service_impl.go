package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/overwatch/internal/domain"
	"github.com/alexanderramin/overwatch/internal/repository"
)

type subjectService struct {
	subjects repository.SubjectRepo
}

func NewSubjectService(subjects repository.SubjectRepo) SubjectService {
	return &subjectService{subjects: subjects}
}

func (s *subjectService) Set(ctx context.Context) (*domain.SubjectSet, error) {
	added, err := s.subjects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading subjects: %w", err)
	}
	return domain.NewSubjectSet(added...), nil
}

func (s *subjectService) Add(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("subject name is required")
	}
	if err := s.subjects.Add(ctx, name); err != nil {
		return fmt.Errorf("adding subject: %w", err)
	}
	return nil
}
