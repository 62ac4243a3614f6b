package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/duotrack/duotracker/pkg/entity"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type UsersRepositoryI interface {
	// Creates new user in database. Name and optional Email are necessary
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Used by login-or-create
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Used by authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Atomically debits cost XP and credits one streak freeze.
	// Returns ErrInsufficientXP when the balance doesn't cover the cost
	BuyStreakFreeze(ctx context.Context, uid uuid.UUID, cost int) error
	// Atomically consumes one banked streak freeze if any is left.
	// Reports whether a token was actually consumed
	ConsumeStreakFreeze(ctx context.Context, uid uuid.UUID) (bool, error)
	// Top users ordered by xp descending
	Leaderboard(ctx context.Context, limit int) ([]entity.LeaderboardRow, error)
}

type HabitsRepositoryI interface {
	// Creates new habit. UserID, Name, Frequency and optional TargetTime are necessary
	Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error)
	// Searches habit with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)
	// Lists habits owned by user with uid. Requires pagination params provided
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Habit, error)
	// Returns count of habits owned by user
	CountByUserID(ctx context.Context, uid uuid.UUID) (int, error)
}

type ProgressRepositoryI interface {
	// Appends a progress entry. The unique (habit_id, log_date) constraint
	// rejects a second entry for the same day with ErrAlreadyLogged
	CreateEntry(ctx context.Context, entry *entity.ProgressEntry) error
	// Inserts a done entry and persists the habit's streak counters and the
	// xp credit in one transaction. A rejected insert rolls everything back,
	// so a duplicate day leaves counters untouched
	CreateDoneEntry(ctx context.Context, entry *entity.ProgressEntry, streak, longest, xp int) error
	// Entries for a habit with log_date on or after from, newest first
	GetByHabitSince(ctx context.Context, habitID uuid.UUID, from time.Time) ([]entity.ProgressEntry, error)
	// Distinct days the user completed anything, newest first
	DistinctDoneDates(ctx context.Context, uid uuid.UUID) ([]time.Time, error)
	// Done/skipped/total entry counts for a user
	CountByUser(ctx context.Context, uid uuid.UUID) (*entity.ProgressCount, error)
	// Count of done entries for a habit since a date
	CountDoneByHabitSince(ctx context.Context, habitID uuid.UUID, from time.Time) (int, error)
	// Activity log joined with habit names, newest first
	GetUserLog(ctx context.Context, uid uuid.UUID, from time.Time) ([]entity.ProgressLogEntry, error)
}

type FinanceRepositoryI interface {
	// Creates or overwrites the user's finance profile
	UpsertProfile(ctx context.Context, profile *entity.FinanceProfile) error
	// Fetches the profile, ErrFinanceNotFound when absent
	GetProfile(ctx context.Context, uid uuid.UUID) (*entity.FinanceProfile, error)
	// Appends a payment to the ledger
	InsertPayment(ctx context.Context, uid uuid.UUID, amount float64, date time.Time) error
	// Sum of all payments, 0 when none
	SumPayments(ctx context.Context, uid uuid.UUID) (float64, error)
	// Payment history, newest first
	GetPayments(ctx context.Context, uid uuid.UUID) ([]entity.Payment, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
