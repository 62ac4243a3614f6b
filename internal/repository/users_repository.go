package repository

import (
	"context"
	"errors"
	"log"

	errorvalues "github.com/duotrack/duotracker/internal/error_values"
	"github.com/duotrack/duotracker/pkg/cleanup"
	"github.com/duotrack/duotracker/pkg/entity"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(cfg DBConfig) *UsersRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for usersRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &UsersRepository{
		conn: pool,
	}
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	_, err := ur.conn.Exec(ctx, `INSERT INTO users (name, email) VALUES ($1, $2);`, user.Name, user.Email)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrUserExists
			}
		}
		return errors.New("creating user db error: " + err.Error())
	}
	return nil
}

func (ur *UsersRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(ctx, `SELECT id, name, email, xp, streak_freeze, created_at FROM users WHERE name = $1;`, name)
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.XP, &user.StreakFreeze, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by name error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(ctx, `SELECT id, name, email, xp, streak_freeze, created_at FROM users WHERE id = $1;`, uid)
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.XP, &user.StreakFreeze, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return &user, nil
}

// The xp >= cost guard makes debit-and-credit a single atomic statement:
// either both columns change or neither does.
func (ur *UsersRepository) BuyStreakFreeze(ctx context.Context, uid uuid.UUID, cost int) error {
	ct, err := ur.conn.Exec(
		ctx,
		`UPDATE users SET xp = xp - $1, streak_freeze = streak_freeze + 1 WHERE id = $2 AND xp >= $1;`,
		cost,
		uid,
	)
	if err != nil {
		return errors.New("buying streak freeze error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrInsufficientXP
	}
	return nil
}

func (ur *UsersRepository) ConsumeStreakFreeze(ctx context.Context, uid uuid.UUID) (bool, error) {
	ct, err := ur.conn.Exec(
		ctx,
		`UPDATE users SET streak_freeze = streak_freeze - 1 WHERE id = $1 AND streak_freeze > 0;`,
		uid,
	)
	if err != nil {
		return false, errors.New("consuming streak freeze error: " + err.Error())
	}
	return ct.RowsAffected() > 0, nil
}

func (ur *UsersRepository) Leaderboard(ctx context.Context, limit int) ([]entity.LeaderboardRow, error) {
	rows, err := ur.conn.Query(ctx, `SELECT name, xp FROM users ORDER BY xp DESC LIMIT $1;`, limit)
	if err != nil {
		return nil, errors.New("getting leaderboard error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.LeaderboardRow, 0, limit)
	for rows.Next() {
		var r entity.LeaderboardRow
		if err = rows.Scan(&r.Name, &r.XP); err != nil {
			return nil, errors.New("leaderboard row parsing error: " + err.Error())
		}
		result = append(result, r)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected leaderboard rows error: " + rows.Err().Error())
	}
	return result, nil
}
