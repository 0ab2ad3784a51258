package habit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"habits-api/internal/config"
	util "habits-api/internal/utils"
)

type Service interface {
	Create(ctx context.Context, dto CreateHabitDTO) (*Habit, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Create(ctx context.Context, dto CreateHabitDTO) (*Habit, error) {
	log := config.WithContext(ctx)

	if err := dto.Validate(); err != nil {
		return nil, err
	}

	h := &Habit{
		ID:        uuid.New(),
		Title:     dto.Title,
		CreatedAt: util.StartOfDay(s.now()),
	}
	weekDays := make([]HabitWeekDay, 0, len(dto.WeekDays))
	for _, wd := range dto.WeekDays {
		weekDays = append(weekDays, HabitWeekDay{
			ID:      uuid.New(),
			HabitID: h.ID,
			WeekDay: wd,
		})
	}

	if err := s.repo.CreateWithWeekDays(h, weekDays); err != nil {
		log.WithError(err).Error("Failed to create habit")
		return nil, err
	}
	h.WeekDays = weekDays

	log.WithField("habit_id", h.ID.String()).Info("Habit created")
	return h, nil
}
