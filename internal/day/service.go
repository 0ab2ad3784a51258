package day

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"habits-api/internal/apperr"
	"habits-api/internal/config"
	"habits-api/internal/habit"
	util "habits-api/internal/utils"
)

type Service interface {
	GetDay(ctx context.Context, date time.Time) (*DaySummaryResponse, error)
	ToggleHabit(ctx context.Context, habitID uuid.UUID) error
	Summary(ctx context.Context) ([]SummaryRow, error)
}

type service struct {
	repo      Repository
	habitRepo habit.Repository
	now       func() time.Time
}

func NewService(repo Repository, habitRepo habit.Repository) Service {
	return &service{
		repo:      repo,
		habitRepo: habitRepo,
		now:       time.Now,
	}
}

// GetDay reports which habits were scheduled for the date and which of them
// have a completion record on it. The date is matched exactly against stored
// day timestamps; callers submit midnight-normalized dates.
func (s *service) GetDay(ctx context.Context, date time.Time) (*DaySummaryResponse, error) {
	log := config.WithContext(ctx)

	possible, err := s.habitRepo.FindPossibleByDate(date, util.WeekDay(date))
	if err != nil {
		log.WithError(err).Error("Failed to load possible habits")
		return nil, err
	}

	d, err := s.repo.FindByDate(date)
	if err != nil {
		log.WithError(err).Error("Failed to load day")
		return nil, err
	}

	resp := &DaySummaryResponse{PossibleHabits: possible}
	if d != nil {
		completed := make([]CompletedHabit, 0, len(d.DayHabits))
		for _, dh := range d.DayHabits {
			completed = append(completed, CompletedHabit{HabitID: dh.HabitID})
		}
		resp.CompletedHabits = completed
	}
	return resp, nil
}

// ToggleHabit flips the habit's completion record for today: present rows
// are deleted, absent rows inserted. Losing a find-or-create race against a
// concurrent toggle is absorbed here, never surfaced to the caller.
func (s *service) ToggleHabit(ctx context.Context, habitID uuid.UUID) error {
	log := config.WithContext(ctx)

	exists, err := s.habitRepo.Exists(habitID)
	if err != nil {
		log.WithError(err).Error("Failed to check habit existence")
		return err
	}
	if !exists {
		return apperr.NotFoundf("habit %s", habitID)
	}

	today := util.StartOfDay(s.now())

	d, err := s.repo.FindByDate(today)
	if err != nil {
		log.WithError(err).Error("Failed to load day")
		return err
	}
	if d == nil {
		d = &Day{ID: uuid.New(), Date: today}
		if err := s.repo.CreateDay(d); err != nil {
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				log.WithError(err).Error("Failed to create day")
				return err
			}
			// A concurrent toggle created today's row first; use theirs.
			d, err = s.repo.FindByDate(today)
			if err != nil {
				return err
			}
			if d == nil {
				return fmt.Errorf("day row for %s missing after duplicate key", today.Format("2006-01-02"))
			}
		}
	}

	dh, err := s.repo.FindCompletion(d.ID, habitID)
	if err != nil {
		log.WithError(err).Error("Failed to look up completion")
		return err
	}

	if dh != nil {
		if err := s.repo.DeleteCompletion(dh.ID); err != nil {
			log.WithError(err).Error("Failed to delete completion")
			return err
		}
		log.WithField("habit_id", habitID.String()).Info("Habit completion removed")
		return nil
	}

	err = s.repo.CreateCompletion(&DayHabit{ID: uuid.New(), DayID: d.ID, HabitID: habitID})
	if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		log.WithError(err).Error("Failed to create completion")
		return err
	}
	// A duplicate key here means a concurrent toggle already recorded the
	// completion, which is the state this call was driving toward.
	log.WithField("habit_id", habitID.String()).Info("Habit completion recorded")
	return nil
}

func (s *service) Summary(ctx context.Context) ([]SummaryRow, error) {
	log := config.WithContext(ctx)

	rows, err := s.repo.Summary()
	if err != nil {
		log.WithError(err).Error("Failed to build summary")
		return nil, err
	}
	return rows, nil
}
