package service

import (
	"context"
	"errors"
	"log"
	"time"

	errorvalues "github.com/duotrack/duotracker/internal/error_values"
	"github.com/duotrack/duotracker/internal/repository"
	"github.com/duotrack/duotracker/pkg/entity"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type HabitsService struct {
	habitsRepo   repository.HabitsRepositoryI
	progressRepo repository.ProgressRepositoryI
}

func NewHabitsService(habitsRepo repository.HabitsRepositoryI, progressRepo repository.ProgressRepositoryI) *HabitsService {
	if habitsRepo == nil || progressRepo == nil {
		log.Fatal("on habits service provided nil repos")
	}
	return &HabitsService{
		habitsRepo:   habitsRepo,
		progressRepo: progressRepo,
	}
}

func (hs *HabitsService) CreateHabit(ctx context.Context, uid uuid.UUID, req CreateHabitRequest) (*entity.Habit, error) {
	err := validate.Struct(req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errors.New("validation error: ")
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, err
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	h := entity.Habit{
		UserID:    uid,
		Name:      req.Name,
		Frequency: req.Frequency,
	}
	if req.TargetTime != "" {
		h.TargetTime = &req.TargetTime
	}
	id, err := hs.habitsRepo.Create(ctx, &h)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	habit, err := hs.habitsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habit, nil
}

func (hs *HabitsService) GetHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error) {
	habit, err := hs.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return habit, nil
}

func (hs *HabitsService) GetUserHabits(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Habit, error) {
	habits, err := hs.habitsRepo.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habits, nil
}

func (hs *HabitsService) GetProgress(ctx context.Context, habitID, userID uuid.UUID, days int) ([]entity.ProgressEntry, error) {
	habit, err := hs.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	if days < 1 {
		days = 30
	}
	from := dateOnly(time.Now()).AddDate(0, 0, -days)
	entries, err := hs.progressRepo.GetByHabitSince(ctx, habitID, from)
	if err != nil {
		return nil, errors.New("progress repository error: " + err.Error())
	}
	return entries, nil
}

func (hs *HabitsService) GetUserLog(ctx context.Context, uid uuid.UUID, days int) ([]entity.ProgressLogEntry, error) {
	if days < 1 {
		days = 7
	}
	from := dateOnly(time.Now()).AddDate(0, 0, -days)
	log, err := hs.progressRepo.GetUserLog(ctx, uid, from)
	if err != nil {
		return nil, errors.New("progress repository error: " + err.Error())
	}
	return log, nil
}
