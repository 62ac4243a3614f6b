package repository

import (
	"context"
	"errors"
	"log"
	"time"

	errorvalues "github.com/duotrack/duotracker/internal/error_values"
	"github.com/duotrack/duotracker/pkg/cleanup"
	"github.com/duotrack/duotracker/pkg/entity"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProgressRepository struct {
	conn PgConnection
}

func NewProgressRepo(cfg DBConfig) *ProgressRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for progressRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for progressRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ProgressRepository{
		conn: pool,
	}
}

func NewProgressRepoWithConn(conn PgConnection) *ProgressRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for progressRepo: " + err.Error())
	}
	return &ProgressRepository{
		conn: conn,
	}
}

// CreateEntry appends a single progress entry, used for skips. The unique
// (habit_id, log_date) index rejects a second entry for the same day.
func (pr *ProgressRepository) CreateEntry(ctx context.Context, entry *entity.ProgressEntry) error {
	_, err := pr.conn.Exec(
		ctx,
		`INSERT INTO progress (user_id, habit_id, log_date, status, completed_at) VALUES ($1, $2, $3, $4, $5);`,
		entry.UserID,
		entry.HabitID,
		entry.LogDate,
		entry.Status,
		entry.CompletedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrAlreadyLogged
			// FK violation
			case "23503":
				return errorvalues.ErrHabitNotFound
			}
		}
		return errors.New("creating progress entry error: " + err.Error())
	}
	return nil
}

// CreateDoneEntry runs a completion in one transaction: the progress insert,
// the habit's streak counters and the user's xp credit commit together. When
// the unique (habit_id, log_date) index rejects the insert the whole
// transaction rolls back and no counter changes.
func (pr *ProgressRepository) CreateDoneEntry(ctx context.Context, entry *entity.ProgressEntry, streak, longest, xp int) error {
	tx, err := pr.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning completion tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	_, err = tx.Exec(
		ctx,
		`INSERT INTO progress (user_id, habit_id, log_date, status, completed_at) VALUES ($1, $2, $3, $4, $5);`,
		entry.UserID,
		entry.HabitID,
		entry.LogDate,
		entry.Status,
		entry.CompletedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrAlreadyLogged
			// FK violation
			case "23503":
				return errorvalues.ErrHabitNotFound
			}
		}
		return errors.New("creating progress entry error: " + err.Error())
	}
	ct, err := tx.Exec(ctx, `UPDATE habits SET streak = $1, longest_streak = $2, last_done_date = $3 WHERE id = $4;`,
		streak, longest, entry.LogDate, entry.HabitID,
	)
	if err != nil {
		return errors.New("updating habit streak error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	ct, err = tx.Exec(ctx, `UPDATE users SET xp = xp + $1 WHERE id = $2;`, xp, entry.UserID)
	if err != nil {
		return errors.New("crediting xp error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing completion tx error: " + err.Error())
	}
	return nil
}

func (pr *ProgressRepository) GetByHabitSince(ctx context.Context, habitID uuid.UUID, from time.Time) ([]entity.ProgressEntry, error) {
	rows, err := pr.conn.Query(
		ctx,
		`SELECT id, user_id, habit_id, log_date, status, completed_at FROM progress WHERE habit_id = $1 AND log_date >= $2 ORDER BY log_date DESC;`,
		habitID,
		from,
	)
	if err != nil {
		return nil, errors.New("getting progress for period error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.ProgressEntry, 0)
	for rows.Next() {
		entry := entity.ProgressEntry{}
		err = rows.Scan(&entry.ID, &entry.UserID, &entry.HabitID, &entry.LogDate, &entry.Status, &entry.CompletedAt)
		if err != nil {
			return nil, errors.New("progress row parsing error: " + err.Error())
		}
		result = append(result, entry)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected progress rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (pr *ProgressRepository) DistinctDoneDates(ctx context.Context, uid uuid.UUID) ([]time.Time, error) {
	rows, err := pr.conn.Query(
		ctx,
		`SELECT DISTINCT log_date FROM progress WHERE user_id = $1 AND status = 'done' ORDER BY log_date DESC;`,
		uid,
	)
	if err != nil {
		return nil, errors.New("getting done dates error: " + err.Error())
	}
	defer rows.Close()
	dates := make([]time.Time, 0)
	for rows.Next() {
		var d time.Time
		if err = rows.Scan(&d); err != nil {
			return nil, errors.New("done date parsing error: " + err.Error())
		}
		dates = append(dates, d)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected done dates rows error: " + rows.Err().Error())
	}
	return dates, nil
}

func (pr *ProgressRepository) CountByUser(ctx context.Context, uid uuid.UUID) (*entity.ProgressCount, error) {
	row := pr.conn.QueryRow(
		ctx,
		`SELECT COUNT(*) FILTER (WHERE status = 'done'), COUNT(*) FILTER (WHERE status = 'skipped'), COUNT(*) FROM progress WHERE user_id = $1;`,
		uid,
	)
	var count entity.ProgressCount
	if err := row.Scan(&count.Done, &count.Skipped, &count.Total); err != nil {
		return nil, errors.New("error counting progress: " + err.Error())
	}
	return &count, nil
}

func (pr *ProgressRepository) CountDoneByHabitSince(ctx context.Context, habitID uuid.UUID, from time.Time) (int, error) {
	row := pr.conn.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM progress WHERE habit_id = $1 AND status = 'done' AND log_date >= $2;`,
		habitID,
		from,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting done progress: " + err.Error())
	}
	return count, nil
}

func (pr *ProgressRepository) GetUserLog(ctx context.Context, uid uuid.UUID, from time.Time) ([]entity.ProgressLogEntry, error) {
	rows, err := pr.conn.Query(
		ctx,
		`SELECT h.name, p.log_date, p.status, p.completed_at FROM progress p JOIN habits h ON p.habit_id = h.id WHERE p.user_id = $1 AND p.log_date >= $2 ORDER BY p.log_date DESC, p.completed_at DESC;`,
		uid,
		from,
	)
	if err != nil {
		return nil, errors.New("getting user log error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.ProgressLogEntry, 0)
	for rows.Next() {
		entry := entity.ProgressLogEntry{}
		err = rows.Scan(&entry.HabitName, &entry.LogDate, &entry.Status, &entry.CompletedAt)
		if err != nil {
			return nil, errors.New("log row parsing error: " + err.Error())
		}
		result = append(result, entry)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected log rows error: " + rows.Err().Error())
	}
	return result, nil
}
