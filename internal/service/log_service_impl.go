package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/overwatch/internal/domain"
	"github.com/alexanderramin/overwatch/internal/normalize"
	"github.com/alexanderramin/overwatch/internal/protocol"
	"github.com/alexanderramin/overwatch/internal/repository"
	"github.com/google/uuid"
)

type logService struct {
	logs repository.LogRepo
	loc  *time.Location
}

func NewLogService(logs repository.LogRepo, loc *time.Location) LogService {
	return &logService{logs: logs, loc: loc}
}

func (s *logService) Append(ctx context.Context, e domain.LogEntry) (domain.LogEntry, error) {
	now := time.Now().In(s.loc)

	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Date.IsZero() {
		e.Date = protocol.Midnight(now, s.loc)
	}
	if e.Time == "" {
		e.Time = now.Format("15:04:05")
	}
	if e.Kind == "" {
		e.Kind = domain.KindMetric
	}
	// Sector defaults to the protocol active when the entry is created.
	if e.Sector == "" {
		e.Sector = string(protocol.Select(now, s.loc))
	}
	if e.Kind == domain.KindAnomaly {
		if e.Subject == "" {
			e.Subject = domain.AnomalySentinel
		}
		if e.Activity == "" {
			e.Activity = domain.AnomalySentinel
		}
	}

	if err := s.logs.Append(ctx, e.Row()); err != nil {
		return domain.LogEntry{}, fmt.Errorf("recording log entry: %w", err)
	}
	return e, nil
}

func (s *logService) List(ctx context.Context) ([]domain.LogEntry, error) {
	rows, err := s.logs.ListRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading log entries: %w", err)
	}
	return normalize.Entries(rows), nil
}
