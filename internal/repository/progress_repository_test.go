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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProgressEntry(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	progressRepo := repository.NewProgressRepoWithConn(mock)
	query := regexp.QuoteMeta(`INSERT INTO progress (user_id, habit_id, log_date, status, completed_at) VALUES ($1, $2, $3, $4, $5);`)
	userID := uuid.New()
	habitID := uuid.New()
	now := time.Now()
	today := now.Truncate(24 * time.Hour)
	entry := &entity.ProgressEntry{
		UserID:      userID,
		HabitID:     habitID,
		LogDate:     today,
		Status:      entity.StatusDone,
		CompletedAt: &now,
	}
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			MockPrepFunc: func() {
				mock.ExpectExec(query).
					WithArgs(userID, habitID, today, entity.StatusDone, &now).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			Desc:  "duplicate day rejected",
			Error: errorvalues.ErrAlreadyLogged,
			MockPrepFunc: func() {
				mock.ExpectExec(query).
					WithArgs(userID, habitID, today, entity.StatusDone, &now).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
		},
		{
			Desc:  "fk violation",
			Error: errorvalues.ErrHabitNotFound,
			MockPrepFunc: func() {
				mock.ExpectExec(query).
					WithArgs(userID, habitID, today, entity.StatusDone, &now).
					WillReturnError(&pgconn.PgError{Code: "23503"})
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("creating progress entry error: db error"),
			MockPrepFunc: func() {
				mock.ExpectExec(query).
					WithArgs(userID, habitID, today, entity.StatusDone, &now).
					WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := progressRepo.CreateEntry(ctx, entry)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateDoneEntry(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	progressRepo := repository.NewProgressRepoWithConn(mock)
	insertQuery := regexp.QuoteMeta(`INSERT INTO progress (user_id, habit_id, log_date, status, completed_at) VALUES ($1, $2, $3, $4, $5);`)
	streakQuery := regexp.QuoteMeta(`UPDATE habits SET streak = $1, longest_streak = $2, last_done_date = $3 WHERE id = $4;`)
	xpQuery := regexp.QuoteMeta(`UPDATE users SET xp = xp + $1 WHERE id = $2;`)
	userID := uuid.New()
	habitID := uuid.New()
	now := time.Now()
	today := now.Truncate(24 * time.Hour)
	entry := &entity.ProgressEntry{
		UserID:      userID,
		HabitID:     habitID,
		LogDate:     today,
		Status:      entity.StatusDone,
		CompletedAt: &now,
	}
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			MockPrepFunc: func() {
				mock.ExpectBegin()
				mock.ExpectExec(insertQuery).
					WithArgs(userID, habitID, today, entity.StatusDone, &now).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec(streakQuery).
					WithArgs(4, 6, today, habitID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec(xpQuery).
					WithArgs(10, userID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
			},
		},
		{
			Desc:  "duplicate day rolls back before counters",
			Error: errorvalues.ErrAlreadyLogged,
			MockPrepFunc: func() {
				mock.ExpectBegin()
				mock.ExpectExec(insertQuery).
					WithArgs(userID, habitID, today, entity.StatusDone, &now).
					WillReturnError(&pgconn.PgError{Code: "23505"})
				mock.ExpectRollback()
			},
		},
		{
			Desc:  "fk violation rolls back",
			Error: errorvalues.ErrHabitNotFound,
			MockPrepFunc: func() {
				mock.ExpectBegin()
				mock.ExpectExec(insertQuery).
					WithArgs(userID, habitID, today, entity.StatusDone, &now).
					WillReturnError(&pgconn.PgError{Code: "23503"})
				mock.ExpectRollback()
			},
		},
		{
			Desc:  "streak update failure rolls the insert back",
			Error: errors.New("updating habit streak error: db error"),
			MockPrepFunc: func() {
				mock.ExpectBegin()
				mock.ExpectExec(insertQuery).
					WithArgs(userID, habitID, today, entity.StatusDone, &now).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec(streakQuery).
					WithArgs(4, 6, today, habitID).
					WillReturnError(errors.New("db error"))
				mock.ExpectRollback()
			},
		},
		{
			Desc:  "xp credit failure rolls the insert back",
			Error: errors.New("crediting xp error: db error"),
			MockPrepFunc: func() {
				mock.ExpectBegin()
				mock.ExpectExec(insertQuery).
					WithArgs(userID, habitID, today, entity.StatusDone, &now).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec(streakQuery).
					WithArgs(4, 6, today, habitID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec(xpQuery).
					WithArgs(10, userID).
					WillReturnError(errors.New("db error"))
				mock.ExpectRollback()
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := progressRepo.CreateDoneEntry(ctx, entry, 4, 6, 10)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetByHabitSince(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	progressRepo := repository.NewProgressRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT id, user_id, habit_id, log_date, status, completed_at FROM progress WHERE habit_id = $1 AND log_date >= $2 ORDER BY log_date DESC;`)
	userID := uuid.New()
	habitID := uuid.New()
	now := time.Now().Truncate(24 * time.Hour)
	from := now.AddDate(0, 0, -30)
	returned := make([]entity.ProgressEntry, 0, 3)
	for i := range cap(returned) {
		completedAt := now.AddDate(0, 0, -i)
		returned = append(returned, entity.ProgressEntry{
			ID:          i + 1,
			UserID:      userID,
			HabitID:     habitID,
			LogDate:     now.AddDate(0, 0, -i),
			Status:      entity.StatusDone,
			CompletedAt: &completedAt,
		})
	}
	testCases := []struct {
		Desc         string
		Error        error
		Result       []entity.ProgressEntry
		MockPrepFunc func()
	}{
		{
			Desc:   "successful",
			Error:  nil,
			Result: returned,
			MockPrepFunc: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "habit_id", "log_date", "status", "completed_at"})
				for _, e := range returned {
					rows.AddRow(e.ID, e.UserID, e.HabitID, e.LogDate, e.Status, e.CompletedAt)
				}
				mock.ExpectQuery(query).WithArgs(habitID, from).WillReturnRows(rows)
			},
		},
		{
			Desc:   "empty period",
			Error:  nil,
			Result: []entity.ProgressEntry{},
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(habitID, from).
					WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "habit_id", "log_date", "status", "completed_at"}))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("getting progress for period error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(habitID, from).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			result, err := progressRepo.GetByHabitSince(ctx, habitID, from)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.Result, result)
			}
		})
	}
}

func TestDistinctDoneDates(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	progressRepo := repository.NewProgressRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT DISTINCT log_date FROM progress WHERE user_id = $1 AND status = 'done' ORDER BY log_date DESC;`)
	userID := uuid.New()
	today := time.Now().Truncate(24 * time.Hour)
	dates := []time.Time{today, today.AddDate(0, 0, -1), today.AddDate(0, 0, -2)}
	testCases := []struct {
		Desc         string
		Error        error
		Result       []time.Time
		MockPrepFunc func()
	}{
		{
			Desc:   "successful",
			Error:  nil,
			Result: dates,
			MockPrepFunc: func() {
				rows := pgxmock.NewRows([]string{"log_date"})
				for _, d := range dates {
					rows.AddRow(d)
				}
				mock.ExpectQuery(query).WithArgs(userID).WillReturnRows(rows)
			},
		},
		{
			Desc:   "no completions",
			Error:  nil,
			Result: []time.Time{},
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(userID).WillReturnRows(pgxmock.NewRows([]string{"log_date"}))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("getting done dates error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(userID).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			result, err := progressRepo.DistinctDoneDates(ctx, userID)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.Result, result)
			}
		})
	}
}

func TestCountProgressByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	progressRepo := repository.NewProgressRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT COUNT(*) FILTER (WHERE status = 'done'), COUNT(*) FILTER (WHERE status = 'skipped'), COUNT(*) FROM progress WHERE user_id = $1;`)
	userID := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		Result       *entity.ProgressCount
		MockPrepFunc func()
	}{
		{
			Desc:   "successful",
			Error:  nil,
			Result: &entity.ProgressCount{Done: 17, Skipped: 3, Total: 20},
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(userID).
					WillReturnRows(pgxmock.NewRows([]string{"done", "skipped", "total"}).AddRow(17, 3, 20))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("error counting progress: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(userID).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			count, err := progressRepo.CountByUser(ctx, userID)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.Result, count)
			}
		})
	}
}

func TestCountDoneByHabitSince(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	progressRepo := repository.NewProgressRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT COUNT(*) FROM progress WHERE habit_id = $1 AND status = 'done' AND log_date >= $2;`)
	habitID := uuid.New()
	from := time.Now().Truncate(24 * time.Hour).AddDate(0, 0, -14)
	testCases := []struct {
		Desc         string
		Error        error
		CountResult  int
		MockPrepFunc func()
	}{
		{
			Desc:        "successful",
			Error:       nil,
			CountResult: 7,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(habitID, from).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("error counting done progress: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(habitID, from).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			count, err := progressRepo.CountDoneByHabitSince(ctx, habitID, from)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.CountResult, count)
			}
		})
	}
}

func TestGetUserLog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	progressRepo := repository.NewProgressRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT h.name, p.log_date, p.status, p.completed_at FROM progress p JOIN habits h ON p.habit_id = h.id WHERE p.user_id = $1 AND p.log_date >= $2 ORDER BY p.log_date DESC, p.completed_at DESC;`)
	userID := uuid.New()
	now := time.Now()
	today := now.Truncate(24 * time.Hour)
	from := today.AddDate(0, 0, -7)
	expected := []entity.ProgressLogEntry{
		{HabitName: "exercise", LogDate: today, Status: entity.StatusDone, CompletedAt: &now},
		{HabitName: "reading", LogDate: today.AddDate(0, 0, -1), Status: entity.StatusSkipped},
	}
	testCases := []struct {
		Desc         string
		Error        error
		Result       []entity.ProgressLogEntry
		MockPrepFunc func()
	}{
		{
			Desc:   "successful",
			Error:  nil,
			Result: expected,
			MockPrepFunc: func() {
				rows := pgxmock.NewRows([]string{"name", "log_date", "status", "completed_at"})
				for _, e := range expected {
					rows.AddRow(e.HabitName, e.LogDate, e.Status, e.CompletedAt)
				}
				mock.ExpectQuery(query).WithArgs(userID, from).WillReturnRows(rows)
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("getting user log error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(userID, from).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			result, err := progressRepo.GetUserLog(ctx, userID, from)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.Result, result)
			}
		})
	}
}
