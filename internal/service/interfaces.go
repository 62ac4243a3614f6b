package service

import (
	"context"

	"github.com/duotrack/duotracker/pkg/entity"
	"github.com/google/uuid"
)

type LoginRequest struct {
	Name  string `validate:"required,alphanum_underscore,min=3,max=100"`
	Email string `validate:"omitempty,email"`
}

type CreateHabitRequest struct {
	Name       string `validate:"required,min=1,max=100"`
	Frequency  string `validate:"required,oneof=daily weekly"`
	TargetTime string `validate:"omitempty,datetime=15:04"`
}

type SaveFinanceRequest struct {
	Salary float64 `validate:"gte=0"`
	EMI    float64 `validate:"gte=0"`
	Debt   float64 `validate:"gte=0"`
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

// MarkDoneResult reports the habit streak after a completion and the xp
// credited for it.
type MarkDoneResult struct {
	Streak int `json:"streak"`
	XPGain int `json:"xp_gain"`
}

type UserServiceI interface {
	// Validates credentials, fetches the user or creates one on first login
	LoginOrCreate(ctx context.Context, req *LoginRequest) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// Habit count plus xp and banked freezes for the summary panel
	Dashboard(ctx context.Context, uid uuid.UUID) (*entity.Dashboard, error)
	// Top users by xp descending
	Leaderboard(ctx context.Context, limit int) ([]entity.LeaderboardRow, error)
}

type HabitsServiceI interface {
	CreateHabit(ctx context.Context, uid uuid.UUID, req CreateHabitRequest) (*entity.Habit, error)
	GetHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error)
	GetUserHabits(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Habit, error)
	// Recent entries for one habit, for progress charts
	GetProgress(ctx context.Context, habitID, userID uuid.UUID, days int) ([]entity.ProgressEntry, error)
	// Activity log across all habits for the trailing days window
	GetUserLog(ctx context.Context, uid uuid.UUID, days int) ([]entity.ProgressLogEntry, error)
}

type StreakServiceI interface {
	// Records today's completion, advances the habit streak and credits xp.
	// A second call the same day returns ErrAlreadyLogged without mutation
	MarkDone(ctx context.Context, habitID, userID uuid.UUID) (*MarkDoneResult, error)
	// Records today as skipped; streak erosion happens lazily in DailyStreak
	MarkSkipped(ctx context.Context, habitID, userID uuid.UUID) error
	// Consecutive-day streak across all habits, spending banked freezes to
	// bridge missed days. Consumed freezes are persisted before returning
	DailyStreak(ctx context.Context, uid uuid.UUID) (int, error)
	// Exchanges cost xp for one streak freeze, ErrInsufficientXP otherwise
	BuyFreeze(ctx context.Context, uid uuid.UUID, cost int) error
	// Lifetime done/skipped/total counts, feeds the badge tier
	ProgressCounts(ctx context.Context, uid uuid.UUID) (*entity.ProgressCount, error)
}

type AnalyticsServiceI interface {
	// Median completion hour over the trailing window as "HH:00", falling
	// back to the habit's target time, then to the default reminder time
	SuggestReminderTime(ctx context.Context, habitID uuid.UUID, windowDays int) (string, error)
	// Disengagement score in [0,1] with a HIGH/MEDIUM/LOW label.
	// An unknown habit yields (0, "unknown") rather than an error
	PredictDropoutRisk(ctx context.Context, habitID uuid.UUID, windowDays int) (float64, string, error)
}

type FinanceServiceI interface {
	SaveProfile(ctx context.Context, uid uuid.UUID, req SaveFinanceRequest) error
	RecordPayment(ctx context.Context, uid uuid.UUID, amount float64) error
	Payments(ctx context.Context, uid uuid.UUID) ([]entity.Payment, error)
	Summary(ctx context.Context, uid uuid.UUID) (*entity.FinanceSummary, error)
}
