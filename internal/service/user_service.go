package service

import (
	"context"
	"errors"
	"log"

	errorvalues "github.com/duotrack/duotracker/internal/error_values"
	"github.com/duotrack/duotracker/internal/repository"
	"github.com/duotrack/duotracker/pkg/entity"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const defaultLeaderboardSize = 10

type UserService struct {
	usersRepo  repository.UsersRepositoryI
	habitsRepo repository.HabitsRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI, habitsRepo repository.HabitsRepositoryI) *UserService {
	if usersRepo == nil || habitsRepo == nil {
		log.Fatal("on user service provided nil repos")
	}
	return &UserService{
		usersRepo:  usersRepo,
		habitsRepo: habitsRepo,
	}
}

// LoginOrCreate keeps the first-login contract: an unknown name registers a
// fresh account, a known one just logs in.
func (us *UserService) LoginOrCreate(ctx context.Context, req *LoginRequest) (*entity.User, error) {
	err := validate.Struct(*req)
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
	user, err := us.usersRepo.FindByName(ctx, req.Name)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, errorvalues.ErrUserNotFound) {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	var email *string
	if req.Email != "" {
		email = &req.Email
	}
	err = us.usersRepo.Create(ctx, &entity.User{
		Name:  req.Name,
		Email: email,
	})
	if err != nil && !errors.Is(err, errorvalues.ErrUserExists) {
		return nil, errors.New("repository creating error: " + err.Error())
	}
	user, err = us.usersRepo.FindByName(ctx, req.Name)
	if err != nil {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.usersRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) Dashboard(ctx context.Context, uid uuid.UUID) (*entity.Dashboard, error) {
	user, err := us.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	habitCount, err := us.habitsRepo.CountByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("repository counting error: " + err.Error())
	}
	return &entity.Dashboard{
		HabitCount:   habitCount,
		XP:           user.XP,
		StreakFreeze: user.StreakFreeze,
	}, nil
}

func (us *UserService) Leaderboard(ctx context.Context, limit int) ([]entity.LeaderboardRow, error) {
	if limit < 1 {
		limit = defaultLeaderboardSize
	}
	rows, err := us.usersRepo.Leaderboard(ctx, limit)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return rows, nil
}
