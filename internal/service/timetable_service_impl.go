package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/overwatch/internal/domain"
	"github.com/alexanderramin/overwatch/internal/normalize"
	"github.com/alexanderramin/overwatch/internal/repository"
)

type timetableService struct {
	slots repository.TimetableRepo
}

func NewTimetableService(slots repository.TimetableRepo) TimetableService {
	return &timetableService{slots: slots}
}

func (s *timetableService) AddSlot(ctx context.Context, slot domain.TimetableSlot) error {
	if slot.Task == "" {
		return fmt.Errorf("slot task is required")
	}
	if err := s.slots.Append(ctx, slot.Row()); err != nil {
		return fmt.Errorf("adding timetable slot: %w", err)
	}
	return nil
}

func (s *timetableService) List(ctx context.Context) ([]domain.TimetableSlot, error) {
	rows, err := s.slots.ListRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading timetable: %w", err)
	}
	return normalize.Slots(rows), nil
}

func (s *timetableService) Clear(ctx context.Context) error {
	if err := s.slots.Clear(ctx); err != nil {
		return fmt.Errorf("clearing timetable: %w", err)
	}
	return nil
}
