package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	errorvalues "github.com/duotrack/duotracker/internal/error_values"
	"github.com/duotrack/duotracker/internal/repository"
	"github.com/duotrack/duotracker/pkg/entity"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateHabit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	habitsRepo := repository.NewHabitsRepoWithConn(mock)
	query := regexp.QuoteMeta(`INSERT INTO habits (user_id, name, frequency, target_time) VALUES ($1, $2, $3, $4) RETURNING id;`)
	userID := uuid.New()
	habitID := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		ID           uuid.UUID
		MockPrepFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			ID:    habitID,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(userID, "exercise", "daily", (*string)(nil)).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(habitID))
			},
		},
		{
			Desc:  "fk violation",
			Error: errorvalues.ErrUserNotFound,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(userID, "exercise", "daily", (*string)(nil)).
					WillReturnError(&pgconn.PgError{Code: "23503"})
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("creating habit db error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(userID, "exercise", "daily", (*string)(nil)).
					WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			id, err := habitsRepo.Create(ctx, &entity.Habit{
				UserID:    userID,
				Name:      "exercise",
				Frequency: "daily",
			})
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.ID, id)
			}
		})
	}
}

func TestGetHabitByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	habitsRepo := repository.NewHabitsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT user_id, name, frequency, target_time, streak, longest_streak, last_done_date, created_at FROM habits WHERE id = $1;`)
	habitID := uuid.New()
	userID := uuid.New()
	createdAt := time.Now()
	lastDone := createdAt.AddDate(0, 0, -1)
	targetTime := "19:30"
	testCases := []struct {
		Desc         string
		Error        error
		Result       *entity.Habit
		MockPrepFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			Result: &entity.Habit{
				ID:            habitID,
				UserID:        userID,
				Name:          "exercise",
				Frequency:     "daily",
				TargetTime:    &targetTime,
				Streak:        3,
				LongestStreak: 5,
				LastDoneDate:  &lastDone,
				CreatedAt:     createdAt,
			},
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(habitID).
					WillReturnRows(pgxmock.NewRows([]string{"user_id", "name", "frequency", "target_time", "streak", "longest_streak", "last_done_date", "created_at"}).
						AddRow(userID, "exercise", "daily", &targetTime, 3, 5, &lastDone, createdAt))
			},
		},
		{
			Desc:  "not found",
			Error: errorvalues.ErrHabitNotFound,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(habitID).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("getting habit by id error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(habitID).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			habit, err := habitsRepo.GetByID(ctx, habitID)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.Result, habit)
			}
		})
	}
}

func TestCountHabitsByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	habitsRepo := repository.NewHabitsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT COUNT(*) FROM habits WHERE user_id = $1;`)
	userID := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		CountResult  int
		MockPrepFunc func()
	}{
		{
			Desc:        "successful",
			Error:       nil,
			CountResult: 4,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(userID).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(4))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("error counting habits: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(userID).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			count, err := habitsRepo.CountByUserID(ctx, userID)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.CountResult, count)
			}
		})
	}
}
