package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/overwatch/internal/db"
	"github.com/alexanderramin/overwatch/internal/domain"
	"github.com/alexanderramin/overwatch/internal/repository"
	"github.com/alexanderramin/overwatch/internal/snapshot"
)

type snapshotService struct {
	logs     repository.LogRepo
	slots    repository.TimetableRepo
	subjects repository.SubjectRepo
	profiles repository.ProfileRepo
	uow      db.UnitOfWork
}

func NewSnapshotService(
	logs repository.LogRepo,
	slots repository.TimetableRepo,
	subjects repository.SubjectRepo,
	profiles repository.ProfileRepo,
	uow db.UnitOfWork,
) SnapshotService {
	return &snapshotService{logs: logs, slots: slots, subjects: subjects, profiles: profiles, uow: uow}
}

func (s *snapshotService) Export(ctx context.Context, w io.Writer) error {
	logRows, err := s.logs.ListRows(ctx)
	if err != nil {
		return fmt.Errorf("exporting logs: %w", err)
	}
	slotRows, err := s.slots.ListRows(ctx)
	if err != nil {
		return fmt.Errorf("exporting timetable: %w", err)
	}
	subjects, err := s.subjects.List(ctx)
	if err != nil {
		return fmt.Errorf("exporting subjects: %w", err)
	}
	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return fmt.Errorf("exporting profile: %w", err)
	}

	// Encode empty collections as [] rather than null so a re-import of a
	// fresh export always passes the logs presence check.
	if logRows == nil {
		logRows = []domain.RawRow{}
	}
	if slotRows == nil {
		slotRows = []domain.RawRow{}
	}
	if subjects == nil {
		subjects = []string{}
	}

	doc := &snapshot.Snapshot{
		Version:   snapshot.CurrentVersion,
		Logs:      &logRows,
		Subjects:  subjects,
		Timetable: slotRows,
		Profile: &snapshot.ProfileExport{
			EFSTarget:   profile.EFSTarget,
			RotLimitMin: profile.RotLimitMin,
			AutoAdvise:  profile.AutoAdvise,
			Timezone:    profile.Timezone,
		},
	}
	return snapshot.Encode(w, doc)
}

func (s *snapshotService) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	doc, err := snapshot.Decode(r)
	if err != nil {
		return nil, err
	}
	if errs := snapshot.Validate(doc); len(errs) > 0 {
		return nil, fmt.Errorf("rejecting snapshot: %w", errors.Join(errs...))
	}

	result := &ImportResult{}

	// All-or-nothing: existing state is replaced only if every row loads.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txLogs := repository.NewSQLiteLogRepo(tx)
		txSlots := repository.NewSQLiteTimetableRepo(tx)
		txSubjects := repository.NewSQLiteSubjectRepo(tx)
		txProfiles := repository.NewSQLiteProfileRepo(tx)

		if _, err := tx.ExecContext(ctx, `DELETE FROM logs`); err != nil {
			return fmt.Errorf("clearing logs: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM subjects`); err != nil {
			return fmt.Errorf("clearing subjects: %w", err)
		}
		if err := txSlots.Clear(ctx); err != nil {
			return err
		}

		for _, row := range doc.LogRows() {
			if err := txLogs.Append(ctx, row); err != nil {
				return err
			}
			result.LogCount++
		}
		for _, row := range doc.Timetable {
			if err := txSlots.Append(ctx, row); err != nil {
				return err
			}
			result.SlotCount++
		}
		for _, name := range doc.Subjects {
			if err := txSubjects.Add(ctx, name); err != nil {
				return err
			}
			result.SubjectCount++
		}

		if doc.Profile != nil {
			profile, err := txProfiles.Get(ctx)
			if err != nil {
				return err
			}
			profile.EFSTarget = doc.Profile.EFSTarget
			profile.RotLimitMin = doc.Profile.RotLimitMin
			profile.AutoAdvise = doc.Profile.AutoAdvise
			if doc.Profile.Timezone != "" {
				profile.Timezone = doc.Profile.Timezone
			}
			if err := txProfiles.Upsert(ctx, profile); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
