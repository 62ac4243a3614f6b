package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        *string   `json:"email,omitempty"`
	XP           int       `json:"xp"`
	StreakFreeze int       `json:"streak_freeze"`
	CreatedAt    time.Time `json:"created_at"`
}

type Habit struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"uid"`
	Name          string     `json:"name"`
	Frequency     string     `json:"frequency"`
	TargetTime    *string    `json:"target_time,omitempty"`
	Streak        int        `json:"streak"`
	LongestStreak int        `json:"longest_streak"`
	LastDoneDate  *time.Time `json:"last_done_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Habit frequencies and progress statuses as stored.
const (
	FrequencyDaily  = "daily"
	FrequencyWeekly = "weekly"

	StatusDone    = "done"
	StatusSkipped = "skipped"
)

// ProgressEntry is append-only: one row per habit per calendar day,
// enforced by a unique (habit_id, log_date) constraint.
type ProgressEntry struct {
	ID          int        `json:"id"`
	UserID      uuid.UUID  `json:"uid"`
	HabitID     uuid.UUID  `json:"habit_id"`
	LogDate     time.Time  `json:"log_date"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type FinanceProfile struct {
	UserID uuid.UUID `json:"uid"`
	Salary float64   `json:"salary"`
	EMI    float64   `json:"emi"`
	Debt   float64   `json:"debt"`
}

type Payment struct {
	ID          int       `json:"id"`
	UserID      uuid.UUID `json:"uid"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
}

type Dashboard struct {
	HabitCount   int `json:"habit_count"`
	XP           int `json:"xp"`
	StreakFreeze int `json:"streak_freeze"`
}

type ProgressCount struct {
	Done    int `json:"done_count"`
	Skipped int `json:"skipped_count"`
	Total   int `json:"total_count"`
}

type LeaderboardRow struct {
	Name string `json:"name"`
	XP   int    `json:"xp"`
}

type ProgressLogEntry struct {
	HabitName   string     `json:"habit_name"`
	LogDate     time.Time  `json:"log_date"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// FinanceSummary is derived, never stored. MonthsToClear is nil when the
// profile has no EMI: there is no meaningful month count to report.
type FinanceSummary struct {
	Salary        float64 `json:"salary"`
	EMI           float64 `json:"emi"`
	Debt          float64 `json:"debt"`
	TotalPaid     float64 `json:"total_paid"`
	RemainingDebt float64 `json:"remaining_debt"`
	MonthsToClear *int    `json:"months_to_clear"`
}
